// Package validate decides whether a candidate text block is plausibly a
// NOTAM before fields are extracted from it.
package validate

import (
	"fmt"
	"math"
	"strings"

	"notam_parser/internal/patterns"
	"notam_parser/internal/registry"
	_ "notam_parser/internal/sniffers" // registers the anti-pattern sniffers
)

const (
	// MinBlockLength is the shortest trimmed block considered at all.
	MinBlockLength = 20

	ReasonTooShort = "Text too short (< 20 chars)"
	ReasonUnknown  = "Unknown"

	tooShortConfidence  = 1.0
	structureConfidence = 0.95
)

// Result is the outcome of validating one block.
type Result struct {
	Valid      bool    `json:"isValid"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
}

// Structure records which NOTAM markers a block carries.
type Structure struct {
	QCode      bool `json:"qCode"`
	NotamID    bool `json:"notamId"`
	HasA       bool `json:"hasA"`
	HasB       bool `json:"hasB"`
	HasC       bool `json:"hasC"`
	HasE       bool `json:"hasE"`
	HasF       bool `json:"hasF"`
	HasG       bool `json:"hasG"`
	FieldCount int  `json:"fieldCount"`
}

// DetectStructure inspects text for Q-code, ID and field markers. D is not
// counted towards FieldCount.
func DetectStructure(text string) Structure {
	s := Structure{
		QCode:   patterns.HasQCode(text),
		NotamID: patterns.NotamIDMarkerPattern.MatchString(text),
		HasA:    patterns.HasField(text, 'A'),
		HasB:    patterns.HasField(text, 'B'),
		HasC:    patterns.HasField(text, 'C'),
		HasE:    patterns.HasField(text, 'E'),
		HasF:    patterns.HasField(text, 'F'),
		HasG:    patterns.HasField(text, 'G'),
	}
	for _, present := range []bool{s.HasA, s.HasB, s.HasC, s.HasE, s.HasF, s.HasG} {
		if present {
			s.FieldCount++
		}
	}
	return s
}

// Confidence scores an accepted block from its markers, capped at 1.0.
func (s Structure) Confidence() float64 {
	c := 0.5
	if s.QCode {
		c += 0.2
	}
	if s.NotamID {
		c += 0.15
	}
	if s.HasA {
		c += 0.05
	}
	if s.HasB {
		c += 0.05
	}
	if s.HasC {
		c += 0.05
	}
	if s.HasE {
		c += 0.1
	}
	if s.FieldCount >= 3 {
		c += 0.1
	}
	return math.Min(c, 1.0)
}

// Validator runs the length check, the sniffer registry and the structure
// check in that order. It holds no per-call state and is safe to share.
type Validator struct {
	sniffers *registry.Registry
}

// New creates a Validator backed by r.
func New(r *registry.Registry) *Validator {
	return &Validator{sniffers: r}
}

// Default returns a Validator using every registered sniffer.
func Default() *Validator {
	return New(registry.Default())
}

// Validate classifies one block. The first failing check wins.
func (v *Validator) Validate(block string) Result {
	trimmed := strings.TrimSpace(block)
	if len(trimmed) < MinBlockLength {
		return Result{Reason: ReasonTooShort, Confidence: tooShortConfidence}
	}

	if verdict := v.sniffers.Dispatch(trimmed); verdict != nil {
		return Result{Reason: verdict.Reason, Confidence: verdict.Confidence}
	}

	s := DetectStructure(trimmed)
	if !s.QCode && !(s.HasA && s.HasE) {
		return Result{
			Reason: fmt.Sprintf("Missing required structure (Q-code: %t, Field A: %t, Field E: %t)",
				s.QCode, s.HasA, s.HasE),
			Confidence: structureConfidence,
		}
	}

	return Result{Valid: true, Confidence: s.Confidence()}
}

// Explanation is a full account of how a block was judged.
type Explanation struct {
	Result    Result                  `json:"result"`
	Structure Structure               `json:"structure"`
	Sniffers  []*registry.TraceResult `json:"sniffers"`
}

// Explain validates block and also reports every sniffer's view of it.
func (v *Validator) Explain(block string) Explanation {
	trimmed := strings.TrimSpace(block)
	return Explanation{
		Result:    v.Validate(block),
		Structure: DetectStructure(trimmed),
		Sniffers:  v.sniffers.Trace(trimmed),
	}
}
