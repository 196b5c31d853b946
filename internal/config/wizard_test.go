package config

import "testing"

func TestWizardValidators(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(string) error
		input   string
		wantErr bool
	}{
		{"registrar with placeholder", validateRegistrarURL, "https://r.example/?q={domain}", false},
		{"registrar without placeholder", validateRegistrarURL, "https://r.example/", true},
		{"page size", validatePositive, " 12 ", false},
		{"page size zero", validatePositive, "0", true},
		{"page size text", validatePositive, "nine", true},
		{"port", validatePort, "8080", false},
		{"port zero", validatePort, "0", true},
		{"port too big", validatePort, "70000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("got error %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
