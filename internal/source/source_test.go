package source

import (
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html><head><title>Briefing</title><style>p { color: red }</style>
<script>var x = "C9999/25 NOTAMN";</script></head>
<body>
<h2>NOTAMs</h2>
<div class="notam"><pre>C4621/25 NOTAMN
Q) YBBB/QMRLC/IV/NBO/A/000/999/2714S15302E005
A) YBBN
B) 2501151200
C) 2501151800
E) RWY 01/19 CLSD</pre></div>
<div class="notam">D3201/25 NOTAMR<br>A) YSSY<br/>B) 2501151400<br>C) 2501152000<br>E) TWY&nbsp;A CLSD</div>
<table><tr><td>FUEL</td><td>1200</td></tr></table>
</body></html>`

func TestFromHTML(t *testing.T) {
	got, err := FromHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}

	for _, want := range []string{
		"NOTAMs\n",
		"C4621/25 NOTAMN\nQ) YBBB/QMRLC/IV/NBO/A/000/999/2714S15302E005\nA) YBBN",
		"D3201/25 NOTAMR\nA) YSSY\nB) 2501151400\nC) 2501152000\nE) TWY A CLSD",
		"FUEL 1200",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FromHTML() missing %q in:\n%s", want, got)
		}
	}
	for _, bad := range []string{"C9999/25", "color: red", "\n\n\n"} {
		if strings.Contains(got, bad) {
			t.Errorf("FromHTML() contains %q", bad)
		}
	}
}

func TestFromText(t *testing.T) {
	got, err := FromText(strings.NewReader("A1/25 NOTAMN\r\nE) RWY 16 CLSD\r\n"))
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}
	if got != "A1/25 NOTAMN\nE) RWY 16 CLSD\n" {
		t.Errorf("FromText() = %q", got)
	}
}

func TestKindFor(t *testing.T) {
	tests := map[string]Kind{
		"briefing.html": HTML,
		"BRIEFING.HTM":  HTML,
		"notams.txt":    Text,
		"-":             Text,
		"":              Text,
	}
	for name, want := range tests {
		if got := KindFor(name); got != want {
			t.Errorf("KindFor(%q) = %q, want %q", name, got, want)
		}
	}
}
