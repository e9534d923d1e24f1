// Package timefilter decides which NOTAMs are relevant for a look-ahead
// window and how each one should be shown.
package timefilter

import (
	"strings"
	"time"

	"notam_parser/internal/notam"
)

// cancelMarker marks a cancellation NOTAM, which is never shown.
const cancelMarker = "CNL NOTAM"

// defaultWindow applies when a caller passes a window value that is neither
// bounded nor All.
const defaultWindow = 24 * time.Hour

// Result pairs a NOTAM with its visibility state.
type Result struct {
	Notam notam.Notam           `json:"notam"`
	State notam.VisibilityState `json:"visibilityState"`
}

// Options tune Filter and Notams.
type Options struct {
	// IncludeExpired keeps NOTAMs whose end time has passed.
	IncludeExpired bool
}

// windowEnd returns now plus the window length. bounded is false for All.
func windowEnd(w notam.Window, now time.Time) (end time.Time, bounded bool) {
	if w == notam.WindowAll {
		return time.Time{}, false
	}
	d, ok := w.Duration()
	if !ok {
		d = defaultWindow
	}
	return now.Add(d), true
}

// State returns the visibility of n at now for window w.
func State(n notam.Notam, w notam.Window, now time.Time) notam.VisibilityState {
	if n.ValidFrom == nil || n.ValidTo == nil {
		return notam.Expired
	}
	from, to := *n.ValidFrom, *n.ValidTo

	if !to.After(now) {
		return notam.Expired
	}
	if !from.After(now) {
		return notam.ActiveNow
	}

	end, bounded := windowEnd(w, now)
	if !bounded || from.Before(end) {
		return notam.FutureInWindow
	}
	return notam.FutureOutsideWindow
}

func cancelled(n notam.Notam) bool {
	return strings.Contains(strings.ToUpper(n.RawText), cancelMarker)
}

func expired(n notam.Notam, now time.Time) bool {
	return n.ValidTo != nil && !n.ValidTo.After(now)
}

// inWindow reports whether n overlaps [now, end).
func inWindow(n notam.Notam, now, end time.Time) bool {
	if n.IsPermanent {
		return n.ValidFrom != nil && n.ValidFrom.Before(end)
	}
	if n.ValidFrom == nil || n.ValidTo == nil {
		return false
	}
	return n.ValidFrom.Before(end) && n.ValidTo.After(now)
}

// Notams returns the NOTAMs that are relevant for window w, in input order.
// Cancellations are always dropped. With IncludeExpired, expired NOTAMs are
// appended after the in-window ones.
func Notams(notams []notam.Notam, w notam.Window, now time.Time, opts Options) []notam.Notam {
	live := make([]notam.Notam, 0, len(notams))
	for _, n := range notams {
		if !cancelled(n) {
			live = append(live, n)
		}
	}

	end, bounded := windowEnd(w, now)
	if !bounded {
		if opts.IncludeExpired {
			return live
		}
		out := make([]notam.Notam, 0, len(live))
		for _, n := range live {
			if State(n, w, now) != notam.Expired {
				out = append(out, n)
			}
		}
		return out
	}

	out := make([]notam.Notam, 0, len(live))
	for _, n := range live {
		if inWindow(n, now, end) {
			out = append(out, n)
		}
	}
	if opts.IncludeExpired {
		for _, n := range live {
			if expired(n, now) && !inWindow(n, now, end) {
				out = append(out, n)
			}
		}
	}
	return out
}

// Filter is Notams with the visibility state of each NOTAM attached.
func Filter(notams []notam.Notam, w notam.Window, now time.Time, opts Options) []Result {
	kept := Notams(notams, w, now, opts)
	out := make([]Result, len(kept))
	for i, n := range kept {
		out[i] = Result{Notam: n, State: State(n, w, now)}
	}
	return out
}
