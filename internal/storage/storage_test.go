package storage

import (
	"time"

	"notam_parser/internal/pipeline"
)

var now = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

const briefingText = `C4621/25 NOTAMN
Q) YBBB/QMRLC/IV/NBO/A/000/999/2714S15302E005
A) YBBN
B) 2501151200
C) 2501151800
E) RWY 01/19 CLSD WEF 1200 TO 1800 FOR MAINT

D3201/25 NOTAMR
Q) YSSS/QMXLC/IV/NBO/A/000/999/3349S15113E005
A) YSSY
B) 2501151400
C) 2501152000
E) TWY A CLSD BTN TWY B AND TWY C

E0042/25 NOTAMN
Q) YMML/QICAS/IV/NBO/A/000/999/3753S14502E005
A) YMML
B) 2501151600
C) PERM
E) ILS RWY 16 U/S`

func testBriefing(source string, receivedAt time.Time) Briefing {
	return NewBriefing(source, briefingText, pipeline.Default().ParseText(briefingText, now), receivedAt)
}
