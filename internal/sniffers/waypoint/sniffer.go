// Package waypoint detects navigation log and waypoint tables: blocks where
// most lines are coordinates, tracks or columns of numbers.
package waypoint

import (
	"fmt"
	"regexp"
	"strings"

	"notam_parser/internal/patterns"
	"notam_parser/internal/registry"
)

const (
	Reason     = "Waypoint/navigation data detected"
	Confidence = 0.85

	// A block is a table when more than this share of its lines are data.
	dataShare  = 0.5
	minNumbers = 3
)

var (
	coordinateRe = regexp.MustCompile(`(?i)\d{2,4}[NS]\s*\d{2,5}[EW]`)
	trackRe      = regexp.MustCompile(`\b\d{3}°?\b`)
)

// Sniffer rejects waypoint tables.
type Sniffer struct{}

func init() {
	registry.Register(&Sniffer{})
}

func (s *Sniffer) Name() string  { return "waypoints" }
func (s *Sniffer) Priority() int { return 30 }

// QuickCheck passes any text containing a digit.
func (s *Sniffer) QuickCheck(text string) bool {
	return strings.ContainsAny(text, "0123456789")
}

func isDataLine(line string) bool {
	return patterns.CountNumbers(line) >= minNumbers || coordinateRe.MatchString(line) || trackRe.MatchString(line)
}

func count(text string) (data, total int) {
	lines := patterns.NonEmptyLines(text)
	for _, line := range lines {
		if isDataLine(line) {
			data++
		}
	}
	return data, len(lines)
}

func (s *Sniffer) Sniff(text string) *registry.Verdict {
	data, total := count(text)
	if total == 0 || float64(data)/float64(total) <= dataShare {
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
		tr.QuickCheck.Reason = "no digits"
		return tr
	}
	data, total := count(text)
	tr.Checks = append(tr.Checks, registry.Check{
		Name:    "data_lines",
		Matched: total > 0 && float64(data)/float64(total) > dataShare,
		Value:   fmt.Sprintf("%d of %d", data, total),
	})
	tr.Verdict = s.Sniff(text)
	return tr
}
