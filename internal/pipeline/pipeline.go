// Package pipeline runs the full NOTAM parsing pipeline: section detection,
// block splitting, validation, field extraction and categorization.
package pipeline

import (
	"time"

	"notam_parser/internal/fields"
	"notam_parser/internal/notam"
	"notam_parser/internal/section"
	"notam_parser/internal/splitter"
	"notam_parser/internal/validate"
)

// Global warning texts.
const (
	WarnNoContent      = "No NOTAM content found in input"
	notamWarningPrefix = "NOTAM parsing: "
)

// Result is the output of one pipeline run.
type Result struct {
	Notams          []notam.Notam   `json:"notams"`
	Warnings        []string        `json:"warnings"`
	ValidationStats validate.Stats  `json:"validationStats"`
	Sections        *section.Result `json:"sections,omitempty"`
}

// Parser runs the pipeline. It keeps no per-call state and is safe for
// concurrent use.
type Parser struct {
	validator *validate.Validator
}

// New creates a Parser that validates blocks with v.
func New(v *validate.Validator) *Parser {
	return &Parser{validator: v}
}

// Default returns a Parser using every registered sniffer.
func Default() *Parser {
	return New(validate.Default())
}

// ParseText parses pasted NOTAM text. Dates are resolved against now, so the
// same input and now always give the same result.
func (p *Parser) ParseText(text string, now time.Time) Result {
	res := Result{
		Notams:   []notam.Notam{},
		Warnings: []string{},
	}

	blocks := splitter.Split(text)
	if len(blocks) == 0 {
		res.Warnings = append(res.Warnings, WarnNoContent)
		res.ValidationStats = validate.Stats{RejectionReasons: map[string]int{}}
		return res
	}

	batch := p.validator.ValidateBlocks(blocks)
	res.ValidationStats = batch.Stats

	for _, block := range batch.Accepted {
		n := fields.Parse(block, now)
		res.Notams = append(res.Notams, n)
		for _, w := range n.Warnings {
			res.Warnings = append(res.Warnings, notamWarningPrefix+w)
		}
	}
	return res
}

// ParseDocument parses text extracted from a briefing document. Only the
// NOTAM sections are parsed; the detection result is attached.
func (p *Parser) ParseDocument(text string, now time.Time) Result {
	sections := section.Detect(text)
	res := p.ParseText(sections.ExtractedText, now)
	res.Sections = &sections
	return res
}
