// Package splitter cuts NOTAM section text into candidate blocks, one per
// NOTAM where the text carries identifier lines.
package splitter

import (
	"strings"

	"notam_parser/internal/patterns"
)

type line struct {
	raw  string
	trim string
	// afterBreak is set when the line follows the start of text or a blank
	// line. Dropped page footers do not count: they often fall mid-field.
	afterBreak bool
}

// clean drops page footers and records where paragraph breaks were.
func clean(text string) []line {
	var out []line
	brk := true
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimRight(raw, "\r")
		trim := strings.TrimSpace(raw)
		if trim != "" && patterns.IsPageFooter(trim) {
			continue
		}
		out = append(out, line{raw: raw, trim: trim, afterBreak: brk})
		brk = trim == ""
	}
	return out
}

// heading returns the type heading a line carries, either as a bare upper-case
// heading or as an injected marker.
func heading(trim string) (string, bool) {
	if m := patterns.TypeMarkerPattern.FindStringSubmatch(trim); m != nil && len(m[0]) == len(trim) {
		return strings.TrimSpace(m[1]), true
	}
	if patterns.IsTypeHeading(trim) {
		return trim, true
	}
	return "", false
}

// headingRun collects the heading lines starting at i. It reports the index
// of the ID line that follows them, or ok=false when the run is not directly
// followed by one.
func headingRun(lines []line, i int) (names []string, next int, ok bool) {
	for j := i; j < len(lines); j++ {
		if lines[j].trim == "" {
			continue
		}
		if patterns.IsNotamIDLine(lines[j].trim) {
			return names, j, len(names) > 0
		}
		h, isHead := heading(lines[j].trim)
		if !isHead {
			return nil, 0, false
		}
		names = append(names, h)
	}
	return nil, 0, false
}

// Split returns the candidate blocks of text in input order. Blocks are
// trimmed and never empty.
//
// A line of the form "C4621/25 NOTAMN" opens a block. Text before the first
// such line is split into blank-line paragraphs, and so is the whole text when
// there are none. Upper-case heading lines that start a paragraph and sit
// directly above an ID line are carried into that block as one
// "[TYPE: ...]" first line.
func Split(text string) []string {
	lines := clean(text)

	var (
		preamble []string
		current  []string
		blocks   []string
		pending  string
		inBlocks bool
	)

	flush := func() {
		if b := strings.TrimSpace(strings.Join(current, "\n")); b != "" {
			blocks = append(blocks, b)
		}
		current = nil
	}
	add := func(raw string) {
		if inBlocks {
			current = append(current, raw)
		} else {
			preamble = append(preamble, raw)
		}
	}

	for i := 0; i < len(lines); i++ {
		l := lines[i]
		if l.trim == "" {
			add(l.raw)
			continue
		}

		if patterns.IsNotamIDLine(l.trim) {
			flush()
			inBlocks = true
			if pending != "" {
				current = append(current, patterns.TypeMarker(pending))
				pending = ""
			}
			current = append(current, l.raw)
			continue
		}

		if l.afterBreak {
			if names, next, ok := headingRun(lines, i); ok {
				pending = strings.Join(names, " ")
				i = next - 1
				continue
			}
		}

		add(l.raw)
	}
	flush()

	return append(patterns.SplitParagraphs(strings.Join(preamble, "\n")), blocks...)
}
