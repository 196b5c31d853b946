package dialog

// Accordion tracks the FAQ answers; at most one is open.
type Accordion struct {
	n    int
	open int
}

// NewAccordion returns an Accordion over n entries, all closed.
func NewAccordion(n int) *Accordion {
	return &Accordion{n: n, open: -1}
}

// Toggle opens entry i and closes the rest, or closes i if it was open.
// Indexes out of range are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.n {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// IsOpen reports whether entry i is expanded.
func (a *Accordion) IsOpen(i int) bool { return a.open >= 0 && a.open == i }

// Open returns the expanded entry, or -1.
func (a *Accordion) Open() int { return a.open }

// Len is the number of entries.
func (a *Accordion) Len() int { return a.n }
