// Package dialog models the landing page's modal dialogs: which one is
// open, the domain detail it shows, the FAQ accordion, and the
// swipe-to-dismiss rule used on narrow screens.
package dialog

import "time"

// ID names a dialog.
type ID string

const (
	Domain  ID = "domain"
	FAQ     ID = "faq"
	Contact ID = "contact"
	Blog    ID = "blog"
)

// IDs lists every known dialog.
var IDs = []ID{Domain, FAQ, Contact, Blog}

// Parse maps a query value to a dialog ID.
func Parse(s string) (ID, bool) {
	for _, id := range IDs {
		if string(id) == s {
			return id, true
		}
	}
	return "", false
}

// Set tracks which dialogs are open. Unknown IDs are ignored.
type Set struct {
	swipe Swipe
	open  map[ID]bool
}

// NewSet returns a Set with every dialog closed.
func NewSet(swipe Swipe) *Set {
	return &Set{swipe: swipe, open: make(map[ID]bool, len(IDs))}
}

// Open shows the dialog. It reports false for an unknown ID.
func (s *Set) Open(id ID) bool {
	if _, ok := Parse(string(id)); !ok {
		return false
	}
	s.open[id] = true
	return true
}

// Close hides the dialog and returns how long the client should let the
// closing animation run: the swipe close delay on narrow viewports, zero
// otherwise. Closing a dialog that is not open is a no-op.
func (s *Set) Close(id ID, viewportWidth int) time.Duration {
	if !s.open[id] {
		return 0
	}
	delete(s.open, id)
	if s.swipe.Enabled(viewportWidth) {
		return s.swipe.CloseDelay
	}
	return 0
}

// IsOpen reports whether the dialog is showing.
func (s *Set) IsOpen(id ID) bool { return s.open[id] }

// Active returns the first open dialog in IDs order.
func (s *Set) Active() (ID, bool) {
	for _, id := range IDs {
		if s.open[id] {
			return id, true
		}
	}
	return "", false
}

// Swipe returns the gesture parameters the Set was built with.
func (s *Set) Swipe() Swipe { return s.swipe }
