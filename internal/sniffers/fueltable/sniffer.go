// Package fueltable detects fuel and performance tables from flight planning
// packs.
package fueltable

import (
	"fmt"
	"regexp"
	"strings"

	"notam_parser/internal/patterns"
	"notam_parser/internal/registry"
)

const (
	Reason     = "Fuel/performance table detected"
	Confidence = 0.9

	// A table needs this many lines carrying at least minNumbers numbers.
	minTableLines = 3
	minNumbers    = 3
)

var fuelKeywords = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bFUEL\b`),
	regexp.MustCompile(`(?i)\bGALLONS?\b`),
	regexp.MustCompile(`(?i)\bLITRE?S?\b`),
	regexp.MustCompile(`(?i)\bENDURANCE\b`),
}

// Sniffer rejects fuel tables.
type Sniffer struct{}

func init() {
	registry.Register(&Sniffer{})
}

func (s *Sniffer) Name() string  { return "fueltable" }
func (s *Sniffer) Priority() int { return 20 }

func (s *Sniffer) QuickCheck(text string) bool {
	upper := strings.ToUpper(text)
	return strings.Contains(upper, "FUEL") || strings.Contains(upper, "GALLON") ||
		strings.Contains(upper, "LITR") || strings.Contains(upper, "ENDURANCE")
}

func hasKeyword(text string) (string, bool) {
	for _, re := range fuelKeywords {
		if m := re.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}

func tableLines(text string) int {
	n := 0
	for _, line := range patterns.NonEmptyLines(text) {
		if patterns.CountNumbers(line) >= minNumbers {
			n++
		}
	}
	return n
}

func (s *Sniffer) Sniff(text string) *registry.Verdict {
	if _, ok := hasKeyword(text); !ok {
		return nil
	}
	if tableLines(text) < minTableLines {
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
		tr.QuickCheck.Reason = "no fuel keyword"
		return tr
	}

	kw, ok := hasKeyword(text)
	tr.Checks = append(tr.Checks, registry.Check{Name: "fuel_keyword", Matched: ok, Value: kw})
	n := tableLines(text)
	tr.Checks = append(tr.Checks, registry.Check{
		Name:    "table_lines",
		Matched: n >= minTableLines,
		Value:   fmt.Sprintf("%d lines with %d+ numbers", n, minNumbers),
	})
	if ok && n >= minTableLines {
		tr.Verdict = &registry.Verdict{Sniffer: s.Name(), Reason: Reason, Confidence: Confidence}
	}
	return tr
}
