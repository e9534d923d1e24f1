package keywords

import "notam_parser/internal/notam"

// groupTables holds the per-group keyword lists and weights used for text
// scoring, in priority order. Keywords without a weight score 1.0.
var groupTables = []groupTable{
	{
		group: notam.Runways,
		keywords: []string{
			"RWY", "RWY CLOSED", "RUNWAY CLOSED", "RWY U/S", "RUNWAY U/S", "RUNWAY UNSERVICEABLE",
			"RWY UNSERVICEABLE", "DISPLACED", "MISSING", "BRAKING ACTION", "CONTAMINANTS", "TORA",
			"TODA", "ASDA", "LDA", "DECLARED DISTANCE", "THRESHOLD", "DISPLACED THRESHOLD",
			"RUNWAY LENGTH", "RUNWAY WIDTH", "RUNWAY LIGHTING", "RUNWAY LIGHTS", "HIRL",
			"HIGH INTENSITY RUNWAY LIGHTING", "REIL", "PAPI", "PRECISION APPROACH PATH INDICATOR",
			"VASI", "VASIS", "RUNWAY END IDENTIFIER LIGHTS", "THRESHOLD LIGHTS",
			"TOUCHDOWN ZONE LIGHTS", "ACR", "PCR", "AIRCRAFT CLASSIFICATION RATING",
			"PAVEMENT CLASSIFICATION RATING",
		},
		weights: map[string]float64{
			"RWY":                  5.0,
			"RWY CLOSED":           10.0,
			"RUNWAY CLOSED":        10.0,
			"RWY U/S":              8.0,
			"RUNWAY U/S":           8.0,
			"RWY UNSERVICEABLE":    8.0,
			"RUNWAY UNSERVICEABLE": 8.0,
			"HIRL":                 4.0,
			"PAPI":                 4.0,
			"VASI":                 4.0,
			"ACR":                  3.0,
			"PCR":                  3.0,
			"LIGHTING":             0.5,
			"LIGHTS":               0.5,
		},
	},
	{
		group: notam.Taxiways,
		keywords: []string{
			"TAXIWAY", "TWY", "TAXIWAY CLOSED", "TAXIWAY U/S", "TAXIWAY UNSERVICEABLE", "APRON",
			"PARKING", "AIRCRAFT STAND", "STAND", "GATE", "PARKING AREA", "APRON CLOSED",
			"PARKING CLOSED", "STAND CLOSED", "GATE CLOSED", "TAXIWAY LIGHTING", "TAXIWAY LIGHTS",
			"TAXIWAY CENTERLINE", "TAXIWAY EDGE", "MOVEMENT AREA", "MANOEUVRING AREA",
			"OPERATIONAL AREA", "ACR", "PCR", "AIRCRAFT CLASSIFICATION RATING",
			"PAVEMENT CLASSIFICATION RATING",
		},
		weights: map[string]float64{
			"TAXIWAY":               5.0,
			"TWY":                   5.0,
			"TAXIWAY CLOSED":        8.0,
			"TAXIWAY U/S":           6.0,
			"TAXIWAY UNSERVICEABLE": 6.0,
			"APRON":                 5.0,
			"PARKING":               5.0,
			"AIRCRAFT STAND":        5.0,
			"APRON CLOSED":          8.0,
			"PARKING CLOSED":        8.0,
			"STAND CLOSED":          8.0,
			"GATE CLOSED":           8.0,
			"ACR":                   3.0,
			"PCR":                   3.0,
			"LIGHTING":              0.5,
			"LIGHTS":                0.5,
		},
	},
	{
		group: notam.InstrumentProcedures,
		keywords: []string{
			"ILS", "INSTRUMENT LANDING SYSTEM", "LOCALIZER", "GLIDE PATH", "GLIDEPATH",
			"INNER MARKER", "MIDDLE MARKER", "OUTER MARKER", "MARKER", "VOR", "NDB",
			"NON-DIRECTIONAL BEACON", "DME", "DISTANCE MEASURING EQUIPMENT", "TACAN", "VORTAC",
			"OMEGA", "DECCA", "INSTRUMENT APPROACH", "MINIMA", "DA", "MDA", "DECISION ALTITUDE",
			"MINIMUM DESCENT ALTITUDE", "MINIMUMS", "MINIMUM", "CATEGORY", "CAT I", "CAT II",
			"CAT III", "MLS", "MICROWAVE LANDING SYSTEM", "NAVAID", "NAVIGATION AID",
			"RADIO NAVIGATION", "SID", "STANDARD INSTRUMENT DEPARTURE", "STAR",
			"STANDARD ARRIVAL", "DEPARTURE PROCEDURE", "ARRIVAL PROCEDURE",
			"INSTRUMENT PROCEDURE", "VISUAL PROCEDURE", "MISSED APPROACH", "HOLDING PROCEDURE",
			"HOLDING PATTERN", "TRANSITION", "TRANSITION PROCEDURE", "RNAV", "RNP", "PBN",
			"PRECISION", "NON-PRECISION", "CIRCLING", "VISUAL APPROACH", "CONTACT APPROACH",
			"RESTRICTED", "PROHIBITED", "DANGER AREA", "RESTRICTED AREA", "PROHIBITED AREA",
			"TEMPORARY", "TRA", "TEMPORARY RESERVED AIRSPACE", "MILITARY", "MIL", "MOA",
			"MILITARY OPERATING AREA", "EXERCISE", "TRAINING", "PRACTICE", "AEROBATICS",
			"AEROBATIC", "GPS", "GNSS", "GLOBAL POSITIONING SYSTEM", "SATELLITE", "SATELLITES",
			"POSITIONING", "AIRSPACE", "CONTROL AREA", "CONTROL ZONE",
			"FLIGHT INFORMATION REGION", "UPPER CONTROL AREA", "TERMINAL CONTROL AREA", "ATZ",
			"AERODROME TRAFFIC ZONE", "AIRSPACE RESERVATION", "AIRSPACE ACTIVATION",
			"AIRSPACE DEACTIVATION", "PAPI UNAVAILABLE", "RNAV NOT AVAILABLE",
		},
		weights: map[string]float64{
			"ILS":                       5.0,
			"VOR":                       3.0,
			"NDB":                       3.0,
			"DME":                       3.0,
			"LOCALIZER":                 3.0,
			"GLIDE PATH":                3.0,
			"SID":                       3.0,
			"STAR":                      3.0,
			"RNAV":                      3.0,
			"GPS":                       3.0,
			"RESTRICTED":                4.0,
			"PROHIBITED":                4.0,
			"MILITARY":                  4.0,
			"MOA":                       4.0,
			"AIRSPACE":                  3.0,
			"MINIMUMS":                  2.0,
			"MINIMUM":                   2.0,
			"INSTRUMENT LANDING SYSTEM": 5.0,
			"INSTRUMENT APPROACH":       4.0,
			"NAVIGATION AID":            3.0,
			"NAVAID":                    3.0,
			"UNSERVICEABLE":             0.1,
		},
	},
	{
		group: notam.AirportServices,
		keywords: []string{
			"AIRPORT CLOSED", "AERODROME CLOSED", "NOT AVBL", "NOT AVAILABLE", "AVAILABLE",
			"AVBL", "OPERATIONAL", "OPR", "OPERATING", "OPERATION", "ATC", "AIR TRAFFIC CONTROL",
			"TWR", "TOWER", "GND", "GROUND", "APP", "ATIS",
			"AUTOMATIC TERMINAL INFORMATION SERVICE", "FIS", "FLIGHT INFORMATION SERVICE", "FUEL",
			"FUEL NOT AVAILABLE", "FUEL UNAVAILABLE", "AVGAS", "JET A1", "FIRE", "FIRE FIGHTING",
			"RESCUE", "FIRE CATEGORY", "FIRE SERVICE", "DRONE", "DRONES", "DRONE HAZARD",
			"BIRD HAZARD", "FACILITY", "FACILITIES", "LIGHTING", "LIGHTS", "AERODROME BEACON",
			"APPROACH LIGHTING", "APPROACH LIGHTS", "ALS", "APPROACH LIGHTING SYSTEM",
			"CENTERLINE", "CENTER LINE", "EDGE LIGHTS", "SEQUENCED FLASHING", "PILOT CONTROLLED",
			"HIGH INTENSITY", "MEDIUM INTENSITY", "LOW INTENSITY", "HELICOPTER", "HELIPORT",
			"HELIPORT LIGHTING", "HELICOPTER APPROACH", "PPR", "PRIOR PERMISSION REQUIRED",
			"CURFEW", "NOISE ABATEMENT",
		},
		weights: map[string]float64{
			"AIRPORT CLOSED":           10.0,
			"AERODROME CLOSED":         10.0,
			"FUEL":                     5.0,
			"FIRE":                     4.0,
			"ATC":                      3.0,
			"TWR":                      3.0,
			"TOWER":                    3.0,
			"GROUND":                   3.0,
			"ATIS":                     1.0,
			"AERODROME BEACON":         3.0,
			"APPROACH LIGHTING":        3.0,
			"APPROACH LIGHTING SYSTEM": 3.0,
			"CENTERLINE":               2.0,
			"CENTER LINE":              2.0,
			"EDGE LIGHTS":              2.0,
			"SEQUENCED FLASHING":       2.0,
			"PILOT CONTROLLED":         2.0,
			"HIGH INTENSITY":           2.0,
			"MEDIUM INTENSITY":         2.0,
			"LOW INTENSITY":            2.0,
			"LIGHTING":                 0.5,
			"LIGHTS":                   0.5,
			"UNSERVICEABLE":            0.1,
		},
	},
	{
		group: notam.Lighting,
		keywords: []string{
			"LIGHTING", "LIGHTS", "LIGHT", "LGT", "LGT U/S", "LIGHT U/S", "LIGHTING U/S",
			"RUNWAY LIGHTING", "RUNWAY LIGHTS", "HIRL", "HIGH INTENSITY RUNWAY LIGHTING", "REIL",
			"RUNWAY END IDENTIFIER LIGHTS", "THRESHOLD LIGHTS", "TOUCHDOWN ZONE LIGHTS", "PAPI",
			"PRECISION APPROACH PATH INDICATOR", "VASI", "VASIS", "APPROACH LIGHTING",
			"APPROACH LIGHTS", "ALS", "APPROACH LIGHTING SYSTEM", "TAXIWAY LIGHTING",
			"TAXIWAY LIGHTS", "CENTERLINE LIGHTS", "EDGE LIGHTS", "CENTER LINE LIGHTS",
			"CENTERLINE LIGHTING", "EDGE LIGHTING", "STOPWAY LIGHTS", "STOPWAY LIGHTING",
			"STOP LIGHTS", "AERODROME BEACON", "BEACON", "ROTATING BEACON",
			"PILOT CONTROLLED LIGHTING", "PCL", "PILOT CONTROLLED", "SEQUENCED FLASHING LIGHTS",
			"SFL", "SEQUENCED FLASHING", "LANDING DIRECTION INDICATOR", "LDI",
			"LANDING DIRECTION", "RUNWAY ALIGNMENT INDICATOR", "RAI", "RUNWAY ALIGNMENT",
			"HELICOPTER APPROACH PATH INDICATOR", "HAPI", "HELICOPTER APPROACH",
			"HELIPORT LIGHTING", "HELIPORT LIGHTS", "LOW INTENSITY", "MEDIUM INTENSITY",
			"HIGH INTENSITY", "CAT II", "CAT III", "CATEGORY II", "CATEGORY III", "LIGHT FAILURE",
			"LIGHT OUT", "LIGHTS OUT", "LIGHTING FAILURE", "TEMPORARY LIGHTING", "TEMP LIGHTING",
			"TEMP LIGHTS", "BLUE LIGHTS", "BLUE LIGHTING", "YELLOW LIGHTS", "YELLOW LIGHTING",
			"WHITE LIGHTS", "WHITE LIGHTING", "RED LIGHTS", "RED LIGHTING", "GREEN LIGHTS",
			"GREEN LIGHTING", "AMBER LIGHTS", "AMBER LIGHTING",
		},
		weights: map[string]float64{
			"RUNWAY LIGHTING":                    8.0,
			"RUNWAY LIGHTS":                      8.0,
			"HIRL":                               7.0,
			"HIGH INTENSITY RUNWAY LIGHTING":     7.0,
			"PAPI":                               6.0,
			"PRECISION APPROACH PATH INDICATOR":  6.0,
			"VASI":                               6.0,
			"VASIS":                              6.0,
			"REIL":                               6.0,
			"RUNWAY END IDENTIFIER LIGHTS":       6.0,
			"APPROACH LIGHTING":                  5.0,
			"APPROACH LIGHTS":                    5.0,
			"ALS":                                5.0,
			"APPROACH LIGHTING SYSTEM":           5.0,
			"TAXIWAY LIGHTING":                   4.0,
			"TAXIWAY LIGHTS":                     4.0,
			"CENTERLINE LIGHTS":                  4.0,
			"CENTER LINE LIGHTS":                 4.0,
			"EDGE LIGHTS":                        4.0,
			"AERODROME BEACON":                   3.0,
			"BEACON":                             3.0,
			"ROTATING BEACON":                    3.0,
			"PILOT CONTROLLED LIGHTING":          3.0,
			"PCL":                                3.0,
			"SEQUENCED FLASHING LIGHTS":          3.0,
			"SFL":                                3.0,
			"LANDING DIRECTION INDICATOR":        3.0,
			"LDI":                                3.0,
			"RUNWAY ALIGNMENT INDICATOR":         3.0,
			"RAI":                                3.0,
			"HELICOPTER APPROACH PATH INDICATOR": 3.0,
			"HAPI":                               3.0,
			"HELIPORT LIGHTING":                  3.0,
			"HELIPORT LIGHTS":                    3.0,
			"LIGHT FAILURE":                      2.0,
			"LIGHT OUT":                          2.0,
			"LIGHTS OUT":                         2.0,
			"LIGHTING FAILURE":                   2.0,
			"TEMPORARY LIGHTING":                 2.0,
			"TEMP LIGHTING":                      2.0,
			"TEMP LIGHTS":                        2.0,
			"HIGH INTENSITY":                     2.0,
			"MEDIUM INTENSITY":                   2.0,
			"LOW INTENSITY":                      2.0,
			"LIGHTING":                           0.5,
			"LIGHTS":                             0.5,
			"LIGHT":                              0.5,
			"LGT":                                0.5,
			"UNSERVICEABLE":                      0.1,
		},
	},
	{
		group: notam.Hazards,
		keywords: []string{
			"OBSTACLE", "OBSTACLES", "CRANE", "CRANES", "CONSTRUCTION", "BUILDING", "TOWER",
			"TOWERS", "MAST", "MASTS", "ANTENNA", "ANTENNAE", "UNLIT", "UNLIGHTED",
			"LIGHT FAILURE", "OBSTACLE LIGHT", "OBSTACLE LIGHTS", "HAZARD", "HAZARDS", "DANGER",
			"DANGEROUS", "WILDLIFE", "BIRD STRIKE", "BIRD STRIKES", "ANIMAL", "ANIMALS", "WORK",
			"WORKING", "REPAIR", "REPAIRS", "BIRD HAZARD",
		},
		weights: map[string]float64{
			"CRANE":         5.0,
			"CRANES":        5.0,
			"OBSTACLE":      3.0,
			"OBSTACLES":     3.0,
			"HAZARD":        2.0,
			"HAZARDS":       2.0,
			"BIRD STRIKE":   4.0,
			"BIRD HAZARD":   4.0,
			"WILDLIFE":      3.0,
			"CONSTRUCTION":  3.0,
			"WORK":          2.0,
			"WORKING":       2.0,
			"REPAIR":        2.0,
			"REPAIRS":       2.0,
			"MAINTENANCE":   2.0,
			"UNSERVICEABLE": 0.1,
		},
	},
	{
		group: notam.Admin,
		keywords: []string{
			"CURFEW", "NOISE ABATEMENT", "NOISE RESTRICTION", "PPR", "PRIOR PERMISSION REQUIRED",
			"SLOT", "SLOTS", "SLOT RESTRICTION", "RESTRICTION", "RESTRICTIONS", "LIMITATION",
			"LIMITATIONS", "ADMINISTRATION", "ADMINISTRATIVE", "ADMINISTRATIVE PROCEDURE",
			"FREQUENCY", "FREQUENCIES", "ATIS", "INFORMATION SERVICE", "PROCEDURAL", "OIP", "AIP",
			"AERONAUTICAL INFORMATION PUBLICATION",
		},
		weights: map[string]float64{
			"CURFEW":                               3.0,
			"PPR":                                  3.0,
			"PRIOR PERMISSION REQUIRED":            3.0,
			"SLOT":                                 3.0,
			"SLOT RESTRICTION":                     3.0,
			"NOISE ABATEMENT":                      2.0,
			"NOISE RESTRICTION":                    2.0,
			"ADMINISTRATION":                       2.0,
			"ADMINISTRATIVE":                       2.0,
			"ADMINISTRATIVE PROCEDURE":             3.0,
			"FREQUENCY":                            5.0,
			"FREQUENCIES":                          5.0,
			"ATIS":                                 5.0,
			"OIP":                                  2.0,
			"AIP":                                  2.0,
			"AERONAUTICAL INFORMATION PUBLICATION": 2.0,
			"PROCEDURAL":                           2.0,
			"INFORMATION SERVICE":                  2.0,
			"RESTRICTION":                          0.1,
			"RESTRICTIONS":                         0.1,
			"LIMITATION":                           0.1,
			"LIMITATIONS":                          0.1,
		},
	},
	{
		group: notam.Other,
	},
}
