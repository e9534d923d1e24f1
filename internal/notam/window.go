package notam

import (
	"fmt"
	"strings"
	"time"
)

// Window is the look-ahead period used when filtering NOTAMs by time.
type Window string

const (
	Window6h  Window = "6h"
	Window12h Window = "12h"
	Window24h Window = "24h"
	WindowAll Window = "All"
)

// ParseWindow converts a selector into a Window. "all" is accepted in any case.
func ParseWindow(s string) (Window, error) {
	switch w := Window(strings.TrimSpace(s)); w {
	case Window6h, Window12h, Window24h, WindowAll:
		return w, nil
	}
	if strings.EqualFold(strings.TrimSpace(s), string(WindowAll)) {
		return WindowAll, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
}

// Duration returns the window length. bounded is false for WindowAll.
func (w Window) Duration() (d time.Duration, bounded bool) {
	switch w {
	case Window6h:
		return 6 * time.Hour, true
	case Window12h:
		return 12 * time.Hour, true
	case Window24h:
		return 24 * time.Hour, true
	}
	return 0, false
}

// VisibilityState describes where a NOTAM sits relative to now and a window.
type VisibilityState string

const (
	ActiveNow           VisibilityState = "active_now"
	FutureInWindow      VisibilityState = "future_in_window"
	FutureOutsideWindow VisibilityState = "future_outside_window"
	Expired             VisibilityState = "expired"
)
