package fields

import (
	"strconv"

	"notam_parser/internal/notam"
	"notam_parser/internal/patterns"
)

var qLineCompiler = patterns.MustCompile([]patterns.Format{
	{
		Name: "qline",
		Pattern: `Q\)\s*(?P<fir>{ICAO}){SEP}(?P<code>{QCODE}){SEP}(?P<traffic>{TRAFFIC}){SEP}` +
			`(?P<purpose>{PURPOSE}){SEP}(?P<scope>{SCOPE}){SEP}(?P<lower>{FL}){SEP}(?P<upper>{FL})` +
			`(?:{SEP}(?P<position>{QLAT}[NS]{QLON}[EW]{RADIUS}))?`,
		Fields: []string{"fir", "code", "traffic", "purpose", "scope", "lower", "upper", "position"},
	},
}, map[string]string{
	"SEP": `\s*/\s*`,
})

// DecodeQLine decodes the Q) line of block, or returns nil when the block has
// no well-formed Q) line.
func DecodeQLine(block string) *notam.QLine {
	m := qLineCompiler.Parse(block)
	if m == nil {
		return nil
	}

	q := &notam.QLine{
		FIR:     m.GetCapture("fir", ""),
		Code:    m.GetCapture("code", ""),
		Traffic: m.GetCapture("traffic", ""),
		Purpose: m.GetCapture("purpose", ""),
		Scope:   m.GetCapture("scope", ""),
	}
	q.Lower, _ = strconv.Atoi(m.GetCapture("lower", "0"))
	q.Upper, _ = strconv.Atoi(m.GetCapture("upper", "0"))

	if pos := m.GetCapture("position", ""); pos != "" {
		if lat, lon, radius, ok := patterns.ParseQPosition(pos); ok {
			q.Latitude, q.Longitude, q.RadiusNM = lat, lon, radius
		}
	}
	return q
}
