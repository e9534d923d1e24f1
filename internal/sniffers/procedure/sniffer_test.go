package procedure

import "testing"

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"star with transition", "RIVET 3 STAR\nTransition from TESAT", true},
		{"approach plate", "ILS Y RWY 16R\nInitial Approach Fix BOREE\nMissed Approach Point MAPT", true},
		{"single mention", "E) ILS RWY 16 U/S. MISSED APPROACH NOT AFFECTED", false},
		{"sid only", "SID AMENDED", false},
		{"word inside word", "CONSIDERATION OF STARTING", false},
	}

	s := &Sniffer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.QuickCheck(tt.text) && s.Sniff(tt.text) != nil
			if got != tt.want {
				t.Errorf("procedure detected = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestSniffWithTrace(t *testing.T) {
	tr := (&Sniffer{}).SniffWithTrace("SID and STAR with a Transition")
	if !tr.Matched() {
		t.Fatal("trace not matched")
	}
	if len(tr.Checks) != 5 {
		t.Fatalf("len(Checks) = %d, want 5", len(tr.Checks))
	}
	if !tr.Checks[0].Matched || !tr.Checks[1].Matched || tr.Checks[2].Matched {
		t.Errorf("checks = %+v", tr.Checks)
	}
}
