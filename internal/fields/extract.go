// Package fields pulls ICAO fields A) to G) out of an accepted NOTAM block
// and builds the parsed NOTAM record.
package fields

import (
	"strings"

	"notam_parser/internal/notam"
	"notam_parser/internal/patterns"
)

// Fields holds the raw, trimmed contents of each ICAO field.
type Fields struct {
	A, B, C, D, E, F, G string
}

type marker struct {
	letter    byte
	start     int  // index of the letter
	content   int  // index just after ")"
	lineStart bool // only whitespace precedes the marker on its line
}

func findMarkers(text string) []marker {
	var out []marker
	for _, m := range patterns.FieldMarkerPattern.FindAllStringSubmatchIndex(text, -1) {
		start := m[2]
		out = append(out, marker{
			letter:    text[start],
			start:     start,
			content:   m[3] + 1,
			lineStart: atLineStart(text, start),
		})
	}
	return out
}

func atLineStart(text string, i int) bool {
	for i > 0 {
		i--
		switch text[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}

// ends reports whether next closes a field opened by letter.
func ends(letter byte, next marker) bool {
	switch letter {
	case 'A', 'B', 'C', 'D':
		// Any later field or the Q) line, even on the same line ("B) x C) y").
		return next.letter == 'Q' || next.letter > letter
	case 'E':
		// Body text can quote markers; only a new line starting F) or G) ends it.
		return next.lineStart && (next.letter == 'F' || next.letter == 'G')
	case 'F':
		return next.letter == 'G'
	case 'G':
		return next.lineStart
	}
	return false
}

// Extract returns the ICAO fields of block. Each field is taken from the
// first occurrence of its marker; markers inside an earlier field's text are
// part of that text. Missing fields are empty.
func Extract(block string) Fields {
	markers := findMarkers(block)
	seen := make(map[byte]bool, 7)
	covered := 0
	var f Fields

	for i, m := range markers {
		if m.letter == 'Q' || seen[m.letter] || m.start < covered {
			continue
		}
		seen[m.letter] = true

		end := len(block)
		for _, next := range markers[i+1:] {
			if ends(m.letter, next) {
				end = next.start
				break
			}
		}
		covered = end
		value := strings.TrimSpace(block[m.content:end])

		switch m.letter {
		case 'A':
			f.A = value
		case 'B':
			f.B = value
		case 'C':
			f.C = value
		case 'D':
			f.D = value
		case 'E':
			f.E = value
		case 'F':
			f.F = value
		case 'G':
			f.G = value
		}
	}
	return f
}

// QCode returns the first Q-code in text, upper-cased, or "".
func QCode(text string) string {
	return patterns.QCodePattern.FindString(strings.ToUpper(text))
}

// NotamID returns the block's identifier. It prefers an ID at the start of
// the block, then any ID, then the first word of field A, then notam.Unknown.
func NotamID(text, fieldA string) string {
	if m := patterns.NotamIDStartPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := patterns.NotamIDPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if words := strings.Fields(fieldA); len(words) > 0 {
		return words[0]
	}
	return notam.Unknown
}
