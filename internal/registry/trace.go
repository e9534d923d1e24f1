package registry

import "notam_parser/internal/patterns"

// TraceResult describes one sniffer's look at a block.
type TraceResult struct {
	SnifferName string                 `json:"sniffer"`
	Priority    int                    `json:"priority"`
	QuickCheck  *QuickCheck            `json:"quickCheck,omitempty"`
	Formats     []patterns.FormatTrace `json:"formats,omitempty"`
	Checks      []Check                `json:"checks,omitempty"`
	Verdict     *Verdict               `json:"verdict,omitempty"`
}

// Matched reports whether the sniffer rejected the block.
func (t *TraceResult) Matched() bool {
	return t != nil && t.Verdict != nil
}

// QuickCheck contains the result of a sniffer's quick check.
type QuickCheck struct {
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

// Check is one heuristic measurement a sniffer made, such as a line count or
// a keyword hit.
type Check struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern,omitempty"`
	Matched bool   `json:"matched"`
	Value   string `json:"value,omitempty"`
}

// Traceable is implemented by sniffers that can explain their verdict.
type Traceable interface {
	SniffWithTrace(text string) *TraceResult
}

// Trace runs every sniffer against text, whether or not an earlier one
// rejected it. Sniffers that are not Traceable get a minimal trace.
func (r *Registry) Trace(text string) []*TraceResult {
	var out []*TraceResult
	for _, s := range r.ordered() {
		if ts, ok := s.(Traceable); ok {
			tr := ts.SniffWithTrace(text)
			tr.Priority = s.Priority()
			out = append(out, tr)
			continue
		}
		tr := &TraceResult{
			SnifferName: s.Name(),
			Priority:    s.Priority(),
			QuickCheck:  &QuickCheck{Passed: s.QuickCheck(text)},
		}
		if tr.QuickCheck.Passed {
			tr.Verdict = s.Sniff(text)
		}
		out = append(out, tr)
	}
	return out
}
