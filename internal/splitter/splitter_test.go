package splitter

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "blank line separated",
			text: "A1234/24 NOTAMN\nA) YBBN\nE) RWY 01/19 CLSD\n\nA5678/24 NOTAMN\nA) YSSY\nE) TWY A CLSD",
			want: []string{
				"A1234/24 NOTAMN\nA) YBBN\nE) RWY 01/19 CLSD",
				"A5678/24 NOTAMN\nA) YSSY\nE) TWY A CLSD",
			},
		},
		{
			name: "dense",
			text: "C4621/25 NOTAMN\nE) First\nD3201/25 NOTAMR\nE) Second\nE0042/25 NOTAMC\nE) Third",
			want: []string{
				"C4621/25 NOTAMN\nE) First",
				"D3201/25 NOTAMR\nE) Second",
				"E0042/25 NOTAMC\nE) Third",
			},
		},
		{
			name: "footers dropped",
			text: "A1234/24 NOTAMN\nE) First NOTAM\nNOTAMs 1 of 9\n-- 16 of 24 --\nB5678/24 NOTAMN\nE) Second NOTAM\n12\nNOTAMs 2 of 9",
			want: []string{
				"A1234/24 NOTAMN\nE) First NOTAM",
				"B5678/24 NOTAMN\nE) Second NOTAM",
			},
		},
		{
			name: "ID inside field E does not split",
			text: "A1234/24 NOTAMN\nE) RWY CLSD. REPLACES A0999/24 NOTAMN. SEE B1111/24 NOTAMR.",
			want: []string{"A1234/24 NOTAMN\nE) RWY CLSD. REPLACES A0999/24 NOTAMN. SEE B1111/24 NOTAMR."},
		},
		{
			name: "type headings",
			text: "OBSTACLE ERECTED\nC0820/25 NOTAMN\nE) CRANE\n\nNOTAMs 1 of 9\n\nTAXIWAY\nC0744/25 NOTAMR C0645/25\nE) TWY B CLSD",
			want: []string{
				"[TYPE: OBSTACLE ERECTED]\nC0820/25 NOTAMN\nE) CRANE",
				"[TYPE: TAXIWAY]\nC0744/25 NOTAMR C0645/25\nE) TWY B CLSD",
			},
		},
		{
			name: "upper case body line is not a heading",
			text: "C1/25 NOTAMN\nE) RWY 16 CLSD\nDUE WIP\nC2/25 NOTAMN\nE) TWY A CLSD",
			want: []string{
				"C1/25 NOTAMN\nE) RWY 16 CLSD\nDUE WIP",
				"C2/25 NOTAMN\nE) TWY A CLSD",
			},
		},
		{
			name: "upper case line after footer stays in body",
			text: "C1/25 NOTAMN\nE) RWY 16 CLSD\n-- 3 of 9 --\nAERODROME\nC2/25 NOTAMN\nE) APRON CLSD",
			want: []string{
				"C1/25 NOTAMN\nE) RWY 16 CLSD\nAERODROME",
				"C2/25 NOTAMN\nE) APRON CLSD",
			},
		},
		{
			name: "heading after footer and blank line",
			text: "C1/25 NOTAMN\nE) RWY 16 CLSD\n-- 3 of 9 --\n\nAERODROME\nC2/25 NOTAMN\nE) APRON CLSD",
			want: []string{
				"C1/25 NOTAMN\nE) RWY 16 CLSD",
				"[TYPE: AERODROME]\nC2/25 NOTAMN\nE) APRON CLSD",
			},
		},
		{
			name: "stacked headings are joined",
			text: "C1/25 NOTAMN\nE) RWY 16 CLSD\n\nAERODROME\nRUNWAY\nC2/25 NOTAMN\nE) RWY 34 CLSD",
			want: []string{
				"C1/25 NOTAMN\nE) RWY 16 CLSD",
				"[TYPE: AERODROME RUNWAY]\nC2/25 NOTAMN\nE) RWY 34 CLSD",
			},
		},
		{
			name: "stacked upper case body lines stay in body",
			text: "C1/25 NOTAMN\nE) RWY 16 CLSD\nAERODROME\nRUNWAY\nC2/25 NOTAMN\nE) RWY 34 CLSD",
			want: []string{
				"C1/25 NOTAMN\nE) RWY 16 CLSD\nAERODROME\nRUNWAY",
				"C2/25 NOTAMN\nE) RWY 34 CLSD",
			},
		},
		{
			name: "preamble paragraphs",
			text: "FPL-ABC123-IS\nFlight plan content\n\nWAYPOINT DATA\nYBBN 120 45\nA1234/24 NOTAMN\nE) Valid NOTAM",
			want: []string{
				"FPL-ABC123-IS\nFlight plan content",
				"WAYPOINT DATA\nYBBN 120 45",
				"A1234/24 NOTAMN\nE) Valid NOTAM",
			},
		},
		{
			name: "no ID lines falls back to paragraphs",
			text: "A) YBBN\nE) FIRST\n\n\n  \nA) YSSY\nE) SECOND\n",
			want: []string{"A) YBBN\nE) FIRST", "A) YSSY\nE) SECOND"},
		},
		{
			name: "crlf line endings",
			text: "A1/25 NOTAMN\r\nE) ONE\r\nB2/25 NOTAMN\r\nE) TWO\r\n",
			want: []string{"A1/25 NOTAMN\nE) ONE", "B2/25 NOTAMN\nE) TWO"},
		},
		{
			name: "bang prefix",
			text: "!YBBN 01/001 NOTAMN\nE) TEXT\n!A12/345 NOTAM\nE) MORE",
			want: []string{"!YBBN 01/001 NOTAMN\nE) TEXT", "!A12/345 NOTAM\nE) MORE"},
		},
		{
			name: "empty",
			text: "  \n\n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestSplitIsIdempotent(t *testing.T) {
	text := "RUNWAY\nC1/25 NOTAMN\nA) YBBN\nE) RWY 16 CLSD\n\nAERODROME\nTAXIWAY\nC2/25 NOTAMN\nA) YBBN\nE) TWY A CLSD"
	for _, block := range Split(text) {
		again := Split(block)
		if len(again) != 1 || again[0] != block {
			t.Errorf("Split(%q) = %q, want the block unchanged", block, again)
		}
	}
}

func TestSplitKeepsEveryLine(t *testing.T) {
	text := "C1/25 NOTAMN\nQ) YBBB/QMRLC/IV/NBO/A/000/999\nA) YBBN B) 2501010000 C) PERM\nE) LINE ONE\nLINE TWO"
	got := Split(text)
	if len(got) != 1 {
		t.Fatalf("len(Split()) = %d, want 1", len(got))
	}
	for _, l := range strings.Split(text, "\n") {
		if !strings.Contains(got[0], l) {
			t.Errorf("block lost line %q", l)
		}
	}
}
