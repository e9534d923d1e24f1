// Package patterns provides the shared NOTAM regex vocabulary, a grok-style
// pattern compiler and coordinate helpers.
package patterns

import (
	"regexp"
	"strings"
)

// Identifier patterns.
var (
	// NotamIDLinePattern matches a line that opens a NOTAM: ID followed by a
	// NOTAM type marker. "!" covers US domestic prefixes.
	NotamIDLinePattern = regexp.MustCompile(`(?i)^[A-Z!]+\d+/\d+\s+NOTAM[NRC]?\b`)

	// NotamIDStartPattern matches an ID at the very start of a block.
	NotamIDStartPattern = regexp.MustCompile(`(?i)^([A-Z]+\d+/\d+)`)

	// NotamIDPattern matches an ID anywhere.
	NotamIDPattern = regexp.MustCompile(`(?i)\b([A-Z]+\d+/\d+)\b`)

	// NotamIDMarkerPattern is the looser ID test used for confidence scoring.
	NotamIDMarkerPattern = regexp.MustCompile(`(?im)(?:^|\n)\s*[A-Z]+\d+/\d+(?:\s+NOTAM[NRC])?`)

	// QCodePattern matches a five letter Q-code. Callers upper-case first.
	QCodePattern = regexp.MustCompile(`\bQ[A-Z]{4}\b`)

	// QCodeAnyCasePattern is QCodePattern for text that has not been upper-cased.
	QCodeAnyCasePattern = regexp.MustCompile(`(?i)\bQ[A-Z]{4}\b`)
)

// Field markers.
var (
	// FieldMarkerPattern finds A) to G) and Q) markers preceded by whitespace
	// or the start of text. The letter is group 1.
	FieldMarkerPattern = regexp.MustCompile(`(?:^|\s)([A-GQ])\)`)

	fieldPresence = map[byte]*regexp.Regexp{
		'A': regexp.MustCompile(`\bA\)`),
		'B': regexp.MustCompile(`\bB\)`),
		'C': regexp.MustCompile(`\bC\)`),
		'D': regexp.MustCompile(`\bD\)`),
		'E': regexp.MustCompile(`\bE\)`),
		'F': regexp.MustCompile(`\bF\)`),
		'G': regexp.MustCompile(`\bG\)`),
	}
)

// Page furniture and headings.
var (
	footerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^NOTAMs?\s+\d+\s+of\s+\d+$`),
		regexp.MustCompile(`(?i)^--\s*\d+\s+of\s+\d+\s*--$`),
	}
	shortNumberPattern = regexp.MustCompile(`^\d+$`)

	// TypeHeadingPattern matches an upper-case heading line such as
	// "RUNWAY" or "OBSTACLE ERECTED". Case sensitive.
	TypeHeadingPattern = regexp.MustCompile(`^[A-Z\s]+$`)

	// TypeMarkerPattern matches an injected "[TYPE: ...]" marker line.
	TypeMarkerPattern = regexp.MustCompile(`^\[TYPE:\s*([^\]]+)\]`)

	// DecorativeLinePattern matches separator rules like "-----" or "=====".
	DecorativeLinePattern = regexp.MustCompile(`^[-=*]{3,}$`)

	paragraphBreakPattern = regexp.MustCompile(`\n\s*\n`)
)

// MaxTypeHeadingLen bounds the length of a type heading line.
const MaxTypeHeadingLen = 100

// IsPageFooter reports whether a trimmed line is page furniture: "NOTAMs 7 of 9",
// "-- 16 of 24 --" or a bare page number of up to three digits.
func IsPageFooter(line string) bool {
	for _, re := range footerPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return len(line) <= 3 && shortNumberPattern.MatchString(line)
}

// IsNotamIDLine reports whether a trimmed line opens a new NOTAM.
func IsNotamIDLine(line string) bool {
	return NotamIDLinePattern.MatchString(line)
}

// IsTypeHeading reports whether a trimmed line has the shape of a type heading.
func IsTypeHeading(line string) bool {
	return line != "" && len(line) < MaxTypeHeadingLen && TypeHeadingPattern.MatchString(line)
}

// TypeMarker formats a heading as the marker line the categorizer reads.
func TypeMarker(heading string) string {
	return "[TYPE: " + heading + "]"
}

// HasQCode reports whether text carries a Q-code in any case.
func HasQCode(text string) bool {
	return QCodeAnyCasePattern.MatchString(text)
}

// HasField reports whether text contains the marker for field letter (A-G).
func HasField(text string, letter byte) bool {
	re, ok := fieldPresence[letter]
	return ok && re.MatchString(text)
}

// SplitParagraphs splits text on blank lines and returns the trimmed,
// non-empty paragraphs.
func SplitParagraphs(text string) []string {
	var out []string
	for _, p := range paragraphBreakPattern.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var numberTokenPattern = regexp.MustCompile(`\b\d+\b`)

// CountNumbers returns the number of standalone digit runs in s.
func CountNumbers(s string) int {
	return len(numberTokenPattern.FindAllStringIndex(s, -1))
}

// NonEmptyLines splits text on newlines and returns the trimmed lines that
// are not blank.
func NonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
