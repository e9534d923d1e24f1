package pipeline

import (
	"strings"
	"testing"
)

func FuzzParseText(f *testing.F) {
	f.Add(foreFlightDense)
	f.Add("")
	f.Add("A) B) C) D) E) F) G)")
	f.Add("Q) YBBB/QMRLC/IV/NBO/A/000/999/9999S99999E999")
	f.Add("[TYPE: RUNWAY]\nA1/25 NOTAMN\nB) 9913322561 C) PERM")
	f.Add("NOTAMs\n---\nNOTAMs 1 of 2\n12\nFUEL")

	p := Default()
	f.Fuzz(func(t *testing.T, text string) {
		res := p.ParseText(text, now)
		if res.Notams == nil || res.Warnings == nil || res.ValidationStats.RejectionReasons == nil {
			t.Fatal("nil collection in result")
		}
		for _, n := range res.Notams {
			if strings.TrimSpace(n.RawText) == "" {
				t.Fatalf("empty RawText for %q", text)
			}
			if n.Warnings == nil {
				t.Fatal("nil Warnings")
			}
			if n.Group == "" {
				t.Fatal("empty Group")
			}
		}
		stats := res.ValidationStats
		if stats.AcceptedBlocks+stats.RejectedBlocks != stats.TotalBlocks {
			t.Fatalf("stats do not add up: %+v", stats)
		}
		if stats.AcceptedBlocks != len(res.Notams) {
			t.Fatalf("AcceptedBlocks = %d, len(Notams) = %d", stats.AcceptedBlocks, len(res.Notams))
		}
		p.ParseDocument(text, now)
	})
}
