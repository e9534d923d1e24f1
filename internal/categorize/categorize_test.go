package categorize

import (
	"testing"

	"notam_parser/internal/notam"
)

func TestIsFIR(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"E1234/25", true},
		{"l0001/25", true},
		{" F0042/25", true},
		{"H0100/25", true},
		{"G0001/25", true},
		{"W0001/25", true},
		{"C4621/25", false},
		{"A0001/25", false},
		{notam.Unknown, false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsFIR(tt.id); got != tt.want {
			t.Errorf("IsFIR(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestGroupFIR(t *testing.T) {
	tests := []struct {
		name string
		id   string
		e    string
		raw  string
		want notam.Group
	}{
		{"E airspace", "E0001/25", "RESTRICTED AREA R123 ACT", "", notam.FIRAirspaceRestrictions},
		{"L atc", "L0002/25", "RADAR COVERAGE REDUCED", "", notam.FIRAtcNavigation},
		{"F obstacle", "F0003/25", "WIND TURBINE ERECTED", "", notam.FIRObstaclesCharts},
		{"H infrastructure", "H0004/25", "IAIP AMENDMENT", "", notam.FIRInfrastructure},
		{"G always admin", "G0005/25", "RESTRICTED AREA ACT", "", notam.FIRAdministrative},
		{"W always admin", "W0006/25", "", "", notam.FIRAdministrative},
		{"drone fallback", "E0007/25", "MULTI-ROTOR UA OPS", "", notam.FIRDroneOperations},
		{"L falls back to airspace", "L0008/25", "DANGER AREA D456", "", notam.FIRAirspaceRestrictions},
		{"raw text when E empty", "F0009/25", "", "F0009/25 NOTAMN\nMAST 300FT", notam.FIRObstaclesCharts},
		{"nothing matches", "E0010/25", "SOMETHING QUIET", "", notam.Other},
		{"lower case content", "E0011/25", "danger area active", "", notam.FIRAirspaceRestrictions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupFIR(tt.id, tt.e, tt.raw); got != tt.want {
				t.Errorf("GroupFIR() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupFromHeading(t *testing.T) {
	tests := []struct {
		heading string
		want    notam.Group
		ok      bool
	}{
		{"RUNWAY", notam.Runways, true},
		{"TAXIWAY", notam.Taxiways, true},
		{"AERODROME LIGHTING", notam.Lighting, true},
		{"OBSTACLE", notam.Hazards, true},
		{"AERIAL SURVEY", notam.Hazards, true},
		{"UNMANNED AIRCRAFT", notam.Hazards, true},
		{"INSTRUMENT PROCEDURE", notam.InstrumentProcedures, true},
		{"AIRSPACE", notam.InstrumentProcedures, true},
		{"NAVIGATION AIDS", notam.InstrumentProcedures, true},
		{"AERODROME", notam.AirportServices, true},
		{"APRON", notam.AirportServices, true},
		{"COMMUNICATIONS", notam.AirportServices, true},
		{"runway", notam.Runways, true},
		{"GENERAL", "", false},
	}
	for _, tt := range tests {
		got, ok := GroupFromHeading(tt.heading)
		if got != tt.want || ok != tt.ok {
			t.Errorf("GroupFromHeading(%q) = %q, %v, want %q, %v", tt.heading, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTypeHeading(t *testing.T) {
	h, ok := TypeHeading("[TYPE: AERODROME]\nC1/25 NOTAMN")
	if !ok || h != "AERODROME" {
		t.Errorf("TypeHeading() = %q, %v, want %q, true", h, ok, "AERODROME")
	}
	if _, ok := TypeHeading("C1/25 NOTAMN\n[TYPE: AERODROME]"); ok {
		t.Error("TypeHeading() matched a marker that is not at the start")
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		qCode     string
		id        string
		e         string
		raw       string
		want      notam.Group
		wantRoute Route
	}{
		{
			name:      "heading beats q-code",
			qCode:     "QMRLC",
			id:        "C1/25",
			e:         "TWY A CLSD",
			raw:       "[TYPE: TAXIWAY]\nC1/25 NOTAMN",
			want:      notam.Taxiways,
			wantRoute: RouteTypeHeading,
		},
		{
			name:      "unmapped heading falls through",
			qCode:     "QMXLC",
			id:        "C1/25",
			raw:       "[TYPE: GENERAL]\nC1/25 NOTAMN",
			want:      notam.Taxiways,
			wantRoute: RouteQCode,
		},
		{
			name:      "FIR ignores q-code",
			qCode:     "QMRLC",
			id:        "E0042/25",
			e:         "RESTRICTED AREA ACT",
			want:      notam.FIRAirspaceRestrictions,
			wantRoute: RouteFIR,
		},
		{
			name:      "q-code wins over keywords",
			qCode:     "QMRLC",
			id:        "C2/25",
			e:         "TAXIWAY CLOSED",
			want:      notam.Runways,
			wantRoute: RouteQCode,
		},
		{
			name:      "keyword scoring without q-code",
			id:        "C3/25",
			e:         "TWY B CLOSED",
			want:      notam.Taxiways,
			wantRoute: RouteKeywords,
		},
		{
			name:      "nothing recognisable",
			id:        notam.Unknown,
			e:         "ZZZ",
			want:      notam.Other,
			wantRoute: RouteKeywords,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.qCode, tt.id, tt.e, tt.raw)
			if d.Group != tt.want {
				t.Errorf("Group = %q, want %q", d.Group, tt.want)
			}
			if d.Route != tt.wantRoute {
				t.Errorf("Route = %q, want %q", d.Route, tt.wantRoute)
			}
			if got := AssignGroup(tt.qCode, tt.id, tt.e, tt.raw); got != d.Group {
				t.Errorf("AssignGroup() = %q, Decide().Group = %q", got, d.Group)
			}
		})
	}
}

func TestDecideDetail(t *testing.T) {
	tests := []struct {
		name   string
		qCode  string
		id     string
		e      string
		raw    string
		want   notam.Group
		detail string
	}{
		{"heading", "", "C1/25", "", "[TYPE: TAXIWAY]\nC1/25 NOTAMN", notam.Taxiways, "TAXIWAY"},
		{"fir id", "", "E0042/25", "RESTRICTED AREA ACT", "", notam.FIRAirspaceRestrictions, "E0042/25"},
		{"mapped q-code", "QMRLC", "C1/25", "", "", notam.Runways, "QMRLC"},
		{"unmapped q-code", "QZZZZ", "C1/25", "RWY CLSD", "", notam.Other, "QZZZZ (unmapped subject)"},
		{"keyword score", "", "C1/25", "CRANE CRANE", "", notam.Hazards, "score 5.0"},
		{"no keywords", "", "C1/25", "ZZZ", "", notam.Other, "no keywords"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.qCode, tt.id, tt.e, tt.raw)
			if d.Group != tt.want || d.Detail != tt.detail {
				t.Errorf("Decide() = %q/%q, want %q/%q", d.Group, d.Detail, tt.want, tt.detail)
			}
		})
	}
}
