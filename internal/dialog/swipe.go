package dialog

import "time"

// Swipe holds the swipe-to-dismiss parameters. The page script reads them
// from data attributes; Dismiss is the same rule on the server side.
type Swipe struct {
	// Threshold is how far, in pixels, a downward drag must travel.
	Threshold float64
	// TopSlack is the largest scrollTop at which a drag may start.
	TopSlack float64
	// Breakpoint is the widest viewport, in pixels, that gets gestures
	// and the closing animation.
	Breakpoint int
	CloseDelay time.Duration
}

// DefaultSwipe matches the page stylesheet's transition.
func DefaultSwipe() Swipe {
	return Swipe{
		Threshold:  100,
		TopSlack:   5,
		Breakpoint: 768,
		CloseDelay: 300 * time.Millisecond,
	}
}

// Enabled reports whether a viewport this wide is treated as mobile.
// A width of zero means unknown and is treated as desktop.
func (s Swipe) Enabled(viewportWidth int) bool {
	return viewportWidth > 0 && viewportWidth <= s.Breakpoint
}

// Offset is the drag translation to apply while the finger is at y. It is
// zero unless the content is scrolled to the top and the drag points down.
func (s Swipe) Offset(startY, y, scrollTop float64) float64 {
	if scrollTop >= s.TopSlack {
		return 0
	}
	if d := y - startY; d > 0 {
		return d
	}
	return 0
}

// Dismiss reports whether a gesture from startY to endY closes the dialog.
func (s Swipe) Dismiss(startY, endY, scrollTop float64) bool {
	return s.Offset(startY, endY, scrollTop) > s.Threshold
}
