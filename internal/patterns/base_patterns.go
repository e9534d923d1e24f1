package patterns

// BasePatterns defines reusable regex components for grok-style pattern composition.
// These are referenced in format patterns using {PATTERN_NAME} syntax.
var BasePatterns = map[string]string{
	// Locations.
	"ICAO": `[A-Z]{4}`,

	// NOTAM identifiers: series letter(s), number, year. e.g. A1234/24
	"NOTAM_ID": `[A-Z]+\d+/\d+`,
	"QCODE":    `Q[A-Z]{4}`,

	// ICAO date-time group, YYMMDDHHMM.
	"DTG": `\d{10}`,

	// Q-line qualifiers.
	"TRAFFIC": `[IVK]{1,2}`,
	"PURPOSE": `[NBOMK]{1,3}`,
	"SCOPE":   `[AEWK]{1,2}`,
	"FL":      `\d{3}`,

	// Q-line position: DDMM[NS]DDDMM[EW] followed by a 3-digit radius in NM.
	"QLAT":   `\d{4}`,
	"QLON":   `\d{5}`,
	"RADIUS": `\d{3}`,

	// Coordinates as written in field E text.
	"LAT_DIR": `[NS]`,
	"LON_DIR": `[EW]`,
	"LAT":     `\d{2,6}`,
	"LON":     `\d{2,7}`,

	// Flight plan items.
	"FPL_ID":   `[A-Z0-9]+`,
	"FPL_RULE": `[A-Z]`,
	"REG":      `[A-Z0-9-]+`,
}
