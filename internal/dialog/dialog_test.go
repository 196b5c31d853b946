package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/domain-showcase/internal/catalog"
)

func TestSetOpenClose(t *testing.T) {
	s := NewSet(DefaultSwipe())

	require.True(t, s.Open(FAQ))
	assert.True(t, s.IsOpen(FAQ))
	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, FAQ, active)

	assert.False(t, s.Open(ID("settings")))

	assert.Equal(t, time.Duration(0), s.Close(FAQ, 1280))
	assert.False(t, s.IsOpen(FAQ))
	_, ok = s.Active()
	assert.False(t, ok)
}

func TestCloseDelayOnMobile(t *testing.T) {
	s := NewSet(DefaultSwipe())
	s.Open(Contact)

	assert.Equal(t, 300*time.Millisecond, s.Close(Contact, 768))
	// Closing again is a no-op.
	assert.Equal(t, time.Duration(0), s.Close(Contact, 768))
}

func TestParse(t *testing.T) {
	for _, id := range IDs {
		got, ok := Parse(string(id))
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
	_, ok := Parse("domainModal")
	assert.False(t, ok)
}

func TestSwipeDismiss(t *testing.T) {
	sw := DefaultSwipe()

	tests := []struct {
		name      string
		start     float64
		end       float64
		scrollTop float64
		want      bool
	}{
		{name: "long drag down at top", start: 200, end: 320, scrollTop: 0, want: true},
		{name: "exactly threshold", start: 200, end: 300, scrollTop: 0, want: false},
		{name: "short drag", start: 200, end: 260, scrollTop: 0, want: false},
		{name: "drag up", start: 300, end: 100, scrollTop: 0, want: false},
		{name: "content scrolled", start: 200, end: 400, scrollTop: 40, want: false},
		{name: "within top slack", start: 200, end: 400, scrollTop: 4, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sw.Dismiss(tt.start, tt.end, tt.scrollTop))
		})
	}

	assert.Equal(t, 30.0, sw.Offset(10, 40, 0))
	assert.Equal(t, 0.0, sw.Offset(40, 10, 0))
	assert.True(t, sw.Enabled(375))
	assert.False(t, sw.Enabled(1024))
	assert.False(t, sw.Enabled(0))
}

func TestAccordionSingleOpen(t *testing.T) {
	a := NewAccordion(3)
	assert.Equal(t, -1, a.Open())

	a.Toggle(1)
	assert.True(t, a.IsOpen(1))

	a.Toggle(2)
	assert.False(t, a.IsOpen(1))
	assert.True(t, a.IsOpen(2))

	a.Toggle(2)
	assert.Equal(t, -1, a.Open())

	a.Toggle(7)
	a.Toggle(-1)
	assert.Equal(t, -1, a.Open())
}

func TestNewDetail(t *testing.T) {
	it := catalog.NewItem("fuzz.chat", 0)
	link := func(d string) string { return "https://reg.example/?q=" + d }

	d := NewDetail(it, "Make an offer", link)
	assert.Equal(t, "fuzz.chat", d.Name)
	assert.Equal(t, "Make an offer", d.Price)
	assert.Equal(t, NoDescription, d.Description)
	assert.Equal(t, "https://reg.example/?q=fuzz.chat", d.NextURL)

	it.Price = "$1,200"
	it.Description = "Short chat brand."
	d = NewDetail(it, "Make an offer", nil)
	assert.Equal(t, "$1,200", d.Price)
	assert.Equal(t, "Short chat brand.", d.Description)
	assert.Empty(t, d.NextURL)
}
