// Package qcode maps NOTAM Q-code subjects to operational groups.
package qcode

import "notam_parser/internal/notam"

// subjects maps the two-letter subject (Q-code letters 2 and 3) to a group.
var subjects = map[string]notam.Group{}

func assign(g notam.Group, codes ...string) {
	for _, c := range codes {
		subjects[c] = g
	}
}

func init() {
	assign(notam.Runways, "MR", "MS", "MT", "MU", "MW", "MD")
	assign(notam.Taxiways, "MX", "MY", "MK", "MN", "MP")
	assign(notam.InstrumentProcedures,
		"IC", "ID", "IG", "II", "IL", "IM", "IN", "IO", "IS", "IT", "IU", "IW", "IX", "IY",
		"NA", "NB", "NC", "ND", "NF", "NL", "NM", "NN", "NO", "NT", "NV",
		"PA", "PB", "PC", "PD", "PE", "PH", "PI", "PK", "PU",
		"AA", "AC", "AD", "AE", "AF", "AH", "AL", "AN", "AO", "AP", "AR", "AT", "AU", "AV", "AX", "AZ",
		"RA", "RD", "RM", "RO", "RP", "RR", "RT",
		"GA", "GW",
	)
	assign(notam.AirportServices, "FA", "FF", "FU", "FM")
	assign(notam.Lighting,
		"LA", "LB", "LC", "LD", "LE", "LF", "LG", "LH", "LI", "LJ", "LK", "LL",
		"LM", "LP", "LR", "LS", "LT", "LU", "LV", "LW", "LX", "LY", "LZ",
	)
	assign(notam.Hazards,
		"OB", "OL",
		"WA", "WB", "WC", "WD", "WE", "WF", "WG", "WH", "WJ", "WL",
		"WM", "WP", "WR", "WS", "WT", "WU", "WV", "WW", "WY", "WZ",
	)
	assign(notam.Admin, "PF", "PL", "PN", "PO", "PR", "PT", "PX", "PZ")
}

// Subject returns the two-letter subject of a Q-code, or "" if the code is
// not five characters starting with Q.
func Subject(code string) string {
	if len(code) != 5 || code[0] != 'Q' {
		return ""
	}
	return code[1:3]
}

// Lookup returns the group for a Q-code. Malformed or unmapped codes are Other.
func Lookup(code string) notam.Group {
	if g, ok := subjects[Subject(code)]; ok {
		return g
	}
	return notam.Other
}

// Known reports whether the Q-code's subject is mapped to a group.
func Known(code string) bool {
	_, ok := subjects[Subject(code)]
	return ok
}
