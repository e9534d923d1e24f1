// Package flightplan detects ICAO flight plan text (FPL messages and their
// item 18 indicators) that sometimes sits alongside NOTAMs in a briefing.
package flightplan

import (
	"strings"

	"notam_parser/internal/patterns"
	"notam_parser/internal/registry"
)

const (
	Reason     = "Flight plan format detected"
	Confidence = 0.9
)

// Indicators, any one of which marks a block as a flight plan.
var formats = []patterns.Format{
	{Name: "fpl_header", Pattern: `FPL-(?P<callsign>{FPL_ID})-(?P<rules>{FPL_RULE})`, Fields: []string{"callsign", "rules"}},
	{Name: "departure", Pattern: `\bDEP/(?P<icao>{ICAO})\b`, Fields: []string{"icao"}},
	{Name: "destination", Pattern: `\bDEST/(?P<icao>{ICAO})\b`, Fields: []string{"icao"}},
	{Name: "elapsed_time", Pattern: `\bEET/(?P<point>{ICAO})\b`, Fields: []string{"point"}},
	{Name: "operator", Pattern: `\bOPR/(?P<operator>[A-Z])`, Fields: []string{"operator"}},
	{Name: "remarks", Pattern: `\bRMK/(?P<remark>[A-Z])`, Fields: []string{"remark"}},
	{Name: "registration", Pattern: `\bREG/(?P<reg>{REG})`, Fields: []string{"reg"}},
}

var compiler = patterns.MustCompile(formats, nil)

// Sniffer rejects flight plans.
type Sniffer struct{}

func init() {
	registry.Register(&Sniffer{})
}

func (s *Sniffer) Name() string  { return "flightplan" }
func (s *Sniffer) Priority() int { return 10 }

// QuickCheck passes text with a slash or a dash; every indicator needs one.
func (s *Sniffer) QuickCheck(text string) bool {
	return strings.ContainsAny(text, "/-")
}

func (s *Sniffer) Sniff(text string) *registry.Verdict {
	if compiler.Parse(text) == nil {
		return nil
	}
	return &registry.Verdict{Sniffer: s.Name(), Reason: Reason, Confidence: Confidence}
}

// SniffWithTrace reports which indicators matched.
func (s *Sniffer) SniffWithTrace(text string) *registry.TraceResult {
	tr := &registry.TraceResult{
		SnifferName: s.Name(),
		QuickCheck:  &registry.QuickCheck{Passed: s.QuickCheck(text)},
	}
	if !tr.QuickCheck.Passed {
		tr.QuickCheck.Reason = "no slash or dash"
		return tr
	}
	pt := compiler.ParseWithTrace(text)
	tr.Formats = pt.Formats
	if pt.Match != nil {
		tr.Verdict = &registry.Verdict{Sniffer: s.Name(), Reason: Reason, Confidence: Confidence}
	}
	return tr
}
