package fields

import (
	"fmt"
	"strings"
	"time"

	"notam_parser/internal/categorize"
	"notam_parser/internal/icaotime"
	"notam_parser/internal/notam"
)

// Warning texts attached to a NOTAM when a required field is absent.
const (
	WarnMissingA = "Field A (location) missing"
	WarnMissingB = "Field B (start date/time) missing"
	WarnMissingC = "Field C (end date/time) missing"
	WarnMissingE = "Field E (NOTAM body) missing"
)

// Parse builds a NOTAM record from one accepted block. Dates are resolved
// against now. Malformed or missing fields become warnings; Parse never fails.
func Parse(block string, now time.Time) notam.Notam {
	raw := strings.TrimSpace(block)
	f := Extract(raw)

	n := notam.Notam{
		QCode:    QCode(raw),
		FieldA:   f.A,
		FieldB:   f.B,
		FieldC:   f.C,
		FieldD:   f.D,
		FieldE:   f.E,
		FieldF:   f.F,
		FieldG:   f.G,
		RawText:  raw,
		Warnings: []string{},
		QLine:    DecodeQLine(raw),
	}

	if f.A == "" {
		n.Warnings = append(n.Warnings, WarnMissingA)
	}

	if f.B != "" {
		if r := icaotime.Parse(f.B, icaotime.Start, now); r.Time != nil {
			n.ValidFrom = r.Time
		} else {
			n.Warnings = append(n.Warnings, fmt.Sprintf("Could not parse Field B (start date/time): %q", f.B))
		}
	} else {
		n.Warnings = append(n.Warnings, WarnMissingB)
	}

	if f.C != "" {
		if r := icaotime.Parse(f.C, icaotime.End, now); r.Time != nil {
			n.ValidTo = r.Time
			n.IsPermanent = r.Permanent
		} else {
			n.Warnings = append(n.Warnings, fmt.Sprintf("Could not parse Field C (end date/time): %q", f.C))
		}
	} else {
		n.Warnings = append(n.Warnings, WarnMissingC)
	}

	if f.E == "" {
		n.Warnings = append(n.Warnings, WarnMissingE)
	}

	n.NotamID = NotamID(raw, f.A)
	n.Group = categorize.AssignGroup(n.QCode, n.NotamID, n.FieldE, raw)
	return n
}
