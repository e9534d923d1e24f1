package flightplan

import "testing"

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"fpl header", "(FPL-VJT534-IS\n-C56X/M-SDFGHIRWY/LB1", true},
		{"lower case header", "(fpl-abc123-is", true},
		{"departure", "DOF/250115 DEP/YMML", true},
		{"destination", "DEST/YSSY", true},
		{"eet", "EET/YBBB 0030", true},
		{"eet glued to time", "EET/YBBB0030", false},
		{"operator", "OPR/VIRGIN", true},
		{"remarks", "RMK/TCAS EQUIPPED", true},
		{"registration", "REG/VH-VJT", true},
		{"notam", "A1234/24 NOTAMN\nA) YSSY B) 2501010000 C) 2501020000\nE) RWY 07/25 CLSD", false},
		{"dep without icao", "DEP/12", false},
	}

	s := &Sniffer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.QuickCheck(tt.text) && s.Sniff(tt.text) != nil
			if got != tt.want {
				t.Errorf("flight plan detected = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestSniffVerdict(t *testing.T) {
	v := (&Sniffer{}).Sniff("FPL-VJT534-IS DEP/YMML DEST/YSSY")
	if v == nil {
		t.Fatal("Sniff() = nil")
	}
	if v.Reason != "Flight plan format detected" || v.Confidence != 0.9 {
		t.Errorf("Sniff() = %+v", v)
	}
}

func TestSniffWithTrace(t *testing.T) {
	tr := (&Sniffer{}).SniffWithTrace("DEP/YMML DEST/YSSY")
	if !tr.Matched() {
		t.Fatal("trace not matched")
	}
	matched := map[string]bool{}
	for _, f := range tr.Formats {
		matched[f.Name] = f.Matched
	}
	if !matched["departure"] || !matched["destination"] || matched["fpl_header"] {
		t.Errorf("format matches = %v", matched)
	}

	tr = (&Sniffer{}).SniffWithTrace("NOTHING HERE AT ALL")
	if tr.QuickCheck.Passed || tr.Matched() {
		t.Errorf("trace = %+v, want quick check failure", tr)
	}
}
