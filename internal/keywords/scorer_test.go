package keywords

import (
	"testing"

	"notam_parser/internal/notam"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want notam.Group
	}{
		{"runway closed", "RWY 01/19 CLSD DUE TO MAINT", notam.Runways},
		{"runway super phrase", "RUNWAY 16/34 UNSERVICEABLE", notam.Runways},
		{"taxiway", "TAXIWAY B CLOSED BTN TWY A AND C", notam.Taxiways},
		{"crane", "CRANE ERECTED 500M NORTH OF AD", notam.Hazards},
		{"atis weights favour admin", "ATIS FREQ CHANGED", notam.Admin},
		{"fuel", "FUEL NOT AVAILABLE", notam.AirportServices},
		{"ils", "ILS 16 U/S", notam.InstrumentProcedures},
		{"ils on runway ties to runways", "ILS RWY 16 U/S", notam.Runways},
		{"lowercase", "crane operating", notam.Hazards},
		{"tie goes to runways", "ACR", notam.Runways},
		{"nothing", "SEE REMARKS", notam.Other},
		{"empty", "", notam.Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q (scores %v)", tt.text, got, tt.want, Scores(tt.text))
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		group notam.Group
		want  float64
	}{
		{"phrase consumes component", "RUNWAY LIGHTS U/S", notam.Lighting, 8},
		{"repeat counts once", "CRANE CRANE", notam.Hazards, 5},
		{"word boundary", "STARTED", notam.InstrumentProcedures, 0},
		{"super phrase", "RUNWAY 09/27 U/S", notam.Runways, 8},
		{"declared distance", "DECLARED DISTANCES CHANGED FOR RUNWAY 05", notam.Runways, 8},
		{"unweighted keyword", "MISSING", notam.Runways, 1},
		{"other has no table", "RWY CLOSED", notam.Other, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := 0.0
			for _, gs := range Scores(tt.text) {
				if gs.Group == tt.group {
					got = gs.Score
				}
			}
			if got != tt.want {
				t.Errorf("score of %s in %q = %v, want %v", tt.group, tt.text, got, tt.want)
			}
		})
	}
}

func TestScoresOrder(t *testing.T) {
	scores := Scores("RWY")
	if len(scores) != 8 {
		t.Fatalf("len(Scores) = %d, want 8", len(scores))
	}
	for i := 1; i < len(scores); i++ {
		if scores[i-1].Group.Priority() > scores[i].Group.Priority() {
			t.Errorf("Scores not in priority order at %d", i)
		}
	}
	if scores[0].Group != notam.Runways || scores[0].Score != 5 {
		t.Errorf("Scores()[0] = %+v, want runways 5", scores[0])
	}
}

func TestTermsSortedLongestFirst(t *testing.T) {
	for _, s := range scorers {
		for i := 1; i < len(s.terms); i++ {
			if len(s.terms[i-1].text) < len(s.terms[i].text) {
				t.Errorf("%s: %q before %q", s.group, s.terms[i-1].text, s.terms[i].text)
			}
		}
	}
}
