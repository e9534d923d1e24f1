// Package procedure detects instrument procedure descriptions (SID, STAR and
// approach plates) that are not NOTAMs.
package procedure

import (
	"regexp"
	"strings"

	"notam_parser/internal/registry"
)

const (
	Reason     = "Instrument procedure detected"
	Confidence = 0.85

	// NOTAMs often mention one of these; procedures mention several.
	minIndicators = 2
)

type indicator struct {
	name string
	re   *regexp.Regexp
}

var indicators = []indicator{
	{"procedure_type", regexp.MustCompile(`(?i)\b(?:SID|STAR|IAP)\b`)},
	{"transition", regexp.MustCompile(`(?i)\bTransition\b`)},
	{"initial_approach", regexp.MustCompile(`(?i)\bInitial\s+(?:Approach|Fix)\b`)},
	{"final_approach", regexp.MustCompile(`(?i)\bFinal\s+Approach\s+(?:Fix|Course)\b`)},
	{"missed_approach", regexp.MustCompile(`(?i)\bMissed\s+Approach\s+(?:Point|Procedure)\b`)},
}

var quickWords = []string{"SID", "STAR", "IAP", "TRANSITION", "INITIAL", "FINAL", "MISSED"}

// Sniffer rejects procedure text.
type Sniffer struct{}

func init() {
	registry.Register(&Sniffer{})
}

func (s *Sniffer) Name() string  { return "procedure" }
func (s *Sniffer) Priority() int { return 40 }

func (s *Sniffer) QuickCheck(text string) bool {
	upper := strings.ToUpper(text)
	for _, w := range quickWords {
		if strings.Contains(upper, w) {
			return true
		}
	}
	return false
}

func (s *Sniffer) Sniff(text string) *registry.Verdict {
	n := 0
	for _, ind := range indicators {
		if ind.re.MatchString(text) {
			n++
		}
	}
	if n < minIndicators {
		return nil
	}
	return &registry.Verdict{Sniffer: s.Name(), Reason: Reason, Confidence: Confidence}
}

func (s *Sniffer) SniffWithTrace(text string) *registry.TraceResult {
	tr := &registry.TraceResult{
		SnifferName: s.Name(),
		QuickCheck:  &registry.QuickCheck{Passed: s.QuickCheck(text)},
	}
	if !tr.QuickCheck.Passed {
		tr.QuickCheck.Reason = "no procedure words"
		return tr
	}
	for _, ind := range indicators {
		m := ind.re.FindString(text)
		tr.Checks = append(tr.Checks, registry.Check{
			Name:    ind.name,
			Pattern: ind.re.String(),
			Matched: m != "",
			Value:   m,
		})
	}
	tr.Verdict = s.Sniff(text)
	return tr
}
