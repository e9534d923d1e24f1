// Package section locates the NOTAM part of a briefing document so later
// stages never see flight plans, weather or fuel tables.
package section

import (
	"regexp"
	"strings"
	"unicode"

	"notam_parser/internal/patterns"
)

// Kind classifies a located section.
type Kind string

const (
	KindNotams  Kind = "notams"
	KindUnknown Kind = "unknown"
)

// maxHeadingLen bounds a heading line.
const maxHeadingLen = 100

// Boundary is one located section. Start and End are byte offsets into the
// input; the heading line itself is not included.
type Boundary struct {
	Start   int    `json:"startIndex"`
	End     int    `json:"endIndex"`
	Kind    Kind   `json:"sectionType"`
	Heading string `json:"heading,omitempty"`
}

// Stats summarises a detection run.
type Stats struct {
	TotalSections       int `json:"totalSections"`
	NotamSections       int `json:"notamSections"`
	FullTextLength      int `json:"fullTextLength"`
	ExtractedTextLength int `json:"extractedTextLength"`
}

// Result is the output of Detect.
type Result struct {
	Sections      []Boundary `json:"sections"`
	ExtractedText string     `json:"extractedText"`
	Stats         Stats      `json:"stats"`
}

var (
	notamHeadings = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^NOTAMs?$`),
		regexp.MustCompile(`(?i)^NOTICES?\s+TO\s+(?:AIR)?MEN$`),
		regexp.MustCompile(`(?i)^NOTAM\s+INFORMATION$`),
		regexp.MustCompile(`(?i)-+\s*NOTAMs?\s*-+`),
	}

	endMarkers = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^FLIGHT\s+PLAN$`),
		regexp.MustCompile(`(?i)^WEATHER$`),
		regexp.MustCompile(`(?i)^METEOROLOGICAL\s+INFORMATION$`),
		regexp.MustCompile(`(?i)^WINDS?\s+ALOFT$`),
		regexp.MustCompile(`(?i)^FUEL\s+PLANNING$`),
		regexp.MustCompile(`(?i)^FUEL$`),
		regexp.MustCompile(`(?i)^WEIGHT\s+AND\s+BALANCE$`),
		regexp.MustCompile(`(?i)^NAVIGATION\s+LOG$`),
		regexp.MustCompile(`(?i)^ROUTE\s+(?:OF\s+)?FLIGHT$`),
	}

	// Lines that can never be headings.
	idRe          = regexp.MustCompile(`[A-Z]+\d+/\d+`)
	qLineRe       = regexp.MustCompile(`Q\)\s*[A-Z]{4}/Q[A-Z]{4}`)
	fieldLineRe   = regexp.MustCompile(`^[A-G]\)\s`)
	pageCounterRe = regexp.MustCompile(`\d+\s+of\s+\d+`)

	decoratedRe = regexp.MustCompile(`^[-=*]{3,}|[-=*]{3,}$`)
)

func excluded(line string) bool {
	return idRe.MatchString(line) ||
		qLineRe.MatchString(line) ||
		fieldLineRe.MatchString(line) ||
		pageCounterRe.MatchString(line)
}

// headingShaped reports whether a trimmed line looks like a section heading:
// short, mostly upper case or decorated with rules.
func headingShaped(line string) bool {
	if line == "" || len(line) > maxHeadingLen || excluded(line) {
		return false
	}

	var letters, upper int
	for _, r := range line {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters > 3 && float64(upper)/float64(letters) > 0.6 {
		return true
	}
	return decoratedRe.MatchString(line)
}

// notamHeading returns the heading text when a trimmed line opens a NOTAM
// section.
func notamHeading(line string) (string, bool) {
	if excluded(line) {
		return "", false
	}
	for _, re := range notamHeadings {
		if m := re.FindString(line); m != "" {
			return m, true
		}
	}
	return "", false
}

func isEndMarker(line string) bool {
	for _, re := range endMarkers {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// document is the input split into lines with their byte offsets.
type document struct {
	text    string
	lines   []string // trimmed
	offsets []int    // byte offset of each line start
}

func newDocument(text string) document {
	raw := strings.Split(text, "\n")
	d := document{
		text:    text,
		lines:   make([]string, len(raw)),
		offsets: make([]int, len(raw)),
	}
	off := 0
	for i, l := range raw {
		d.lines[i] = strings.TrimSpace(l)
		d.offsets[i] = off
		off += len(l) + 1
	}
	return d
}

// offset returns the byte offset of line i, or len(text) past the last line.
func (d document) offset(i int) int {
	if i >= len(d.offsets) {
		return len(d.text)
	}
	return d.offsets[i]
}

func (d document) findStart(from int) (int, string) {
	for i := from; i < len(d.lines); i++ {
		if h, ok := notamHeading(d.lines[i]); ok {
			return i, h
		}
	}
	return -1, ""
}

func (d document) findEnd(heading int) int {
	i := heading + 1
	for i < len(d.lines) && d.lines[i] != "" && patterns.DecorativeLinePattern.MatchString(d.lines[i]) {
		i++
	}
	for ; i < len(d.lines); i++ {
		line := d.lines[i]
		if headingShaped(line) {
			if _, ok := notamHeading(line); ok {
				return i
			}
		}
		if isEndMarker(line) {
			return i
		}
	}
	return len(d.lines)
}

// Detect finds every NOTAM section in text. When no section heading is
// present the whole text is returned as ExtractedText.
func Detect(text string) Result {
	res := Result{Sections: []Boundary{}}
	if strings.TrimSpace(text) == "" {
		res.Stats.FullTextLength = len(text)
		return res
	}

	d := newDocument(text)
	for from := 0; from < len(d.lines); {
		start, heading := d.findStart(from)
		if start < 0 {
			break
		}
		end := d.findEnd(start)
		res.Sections = append(res.Sections, Boundary{
			Start:   d.offset(start + 1),
			End:     d.offset(end),
			Kind:    KindNotams,
			Heading: heading,
		})
		from = end
	}

	if len(res.Sections) == 0 {
		res.ExtractedText = text
	} else {
		bodies := make([]string, 0, len(res.Sections))
		for _, s := range res.Sections {
			if body := strings.TrimSpace(text[s.Start:s.End]); body != "" {
				bodies = append(bodies, body)
			}
		}
		res.ExtractedText = strings.Join(bodies, "\n\n")
	}

	res.Stats = Stats{
		TotalSections:       len(res.Sections),
		NotamSections:       countKind(res.Sections, KindNotams),
		FullTextLength:      len(text),
		ExtractedTextLength: len(res.ExtractedText),
	}
	return res
}

func countKind(sections []Boundary, k Kind) int {
	n := 0
	for _, s := range sections {
		if s.Kind == k {
			n++
		}
	}
	return n
}

// Extract returns only the NOTAM text of a document.
func Extract(text string) string {
	return Detect(text).ExtractedText
}
