package categorize

import (
	"strings"

	"notam_parser/internal/notam"
)

// firPrefixes are the ID first characters that mark a FIR (en-route) NOTAM.
const firPrefixes = "ELFHGW"

var (
	firAirspaceKeywords = []string{
		"AIRSPACE", "RESTRICTED", "MILITARY FLYING", "MIL FLYING", "DANGER AREA",
		"PROHIBITED AREA", "SPECIAL USE AIRSPACE", "RESTRICTED AREA",
		"MILITARY EXERCISE", "MIL NON-FLYING", "TEMPO RESTRICTED AREA",
		"EMERGENCY EXERCIS",
	}
	firATCKeywords = []string{
		"RADAR COVERAGE", "A/G FAC", "ATC", "NAVIGATION", "FREQUENCY",
		"MELBOURNE CENTRE", "APPROACH", "DEPARTURE", "CONTROL", "TOWER",
	}
	firObstacleKeywords = []string{
		"MAST", "WIND TURBINE", "OBST", "OBSTACLE", "AIP CHARTS AMD", "CHART",
		"UNLIT", "LIT", "MET MAST", "COMMUNICATION TOWER", "BLDG",
		"GRID LOWEST SAFE ALTITUDE", "LSALT",
	}
	firInfrastructureKeywords = []string{
		"AIRPORT", "AERODROME", "RUNWAY", "TAXIWAY", "INTEGRATED AIP", "IAIP",
		"FACILITY", "TERMINAL", "WESTERN SYDNEY INTERNATIONAL", "NANCY-BIRD WALTON",
	}
	firDroneKeywords = []string{
		"UA OPS", "MULTI-ROTOR", "FIXED-WING", "UNMANNED AIRCRAFT", "DRONE",
		"UAS", "RPAS",
	}
)

// IsFIR reports whether notamID belongs to a FIR NOTAM series.
func IsFIR(notamID string) bool {
	id := strings.ToUpper(strings.TrimSpace(notamID))
	return id != "" && strings.IndexByte(firPrefixes, id[0]) >= 0
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// GroupFIR classifies a FIR NOTAM. The ID prefix selects the keyword set
// checked first; content checks follow when the prefix set finds nothing.
func GroupFIR(notamID, fieldE, rawText string) notam.Group {
	content := fieldE
	if content == "" {
		content = rawText
	}
	content = strings.ToUpper(content)

	var prefix byte
	if id := strings.ToUpper(strings.TrimSpace(notamID)); id != "" {
		prefix = id[0]
	}

	switch {
	case prefix == 'E' && containsAny(content, firAirspaceKeywords):
		return notam.FIRAirspaceRestrictions
	case prefix == 'L' && containsAny(content, firATCKeywords):
		return notam.FIRAtcNavigation
	case prefix == 'F' && containsAny(content, firObstacleKeywords):
		return notam.FIRObstaclesCharts
	case prefix == 'H' && containsAny(content, firInfrastructureKeywords):
		return notam.FIRInfrastructure
	case prefix == 'G' || prefix == 'W':
		return notam.FIRAdministrative
	}

	switch {
	case containsAny(content, firDroneKeywords):
		return notam.FIRDroneOperations
	case containsAny(content, firAirspaceKeywords):
		return notam.FIRAirspaceRestrictions
	case containsAny(content, firATCKeywords):
		return notam.FIRAtcNavigation
	case containsAny(content, firObstacleKeywords):
		return notam.FIRObstaclesCharts
	}
	return notam.Other
}
