package notam

import "fmt"

// Group is the operational category a NOTAM is filed under.
type Group string

// Airport groups, ordered by priority.
const (
	Runways              Group = "runways"
	Taxiways             Group = "taxiways"
	InstrumentProcedures Group = "instrumentProcedures"
	AirportServices      Group = "airportServices"
	Lighting             Group = "lighting"
	Hazards              Group = "hazards"
	Admin                Group = "admin"
	Other                Group = "other"
)

// FIR groups.
const (
	FIRAirspaceRestrictions Group = "firAirspaceRestrictions"
	FIRAtcNavigation        Group = "firAtcNavigation"
	FIRObstaclesCharts      Group = "firObstaclesCharts"
	FIRInfrastructure       Group = "firInfrastructure"
	FIRDroneOperations      Group = "firDroneOperations"
	FIRAdministrative       Group = "firAdministrative"
)

type groupInfo struct {
	priority int
	label    string
}

var groupInfos = map[Group]groupInfo{
	Runways:                 {1, "Runways"},
	Taxiways:                {2, "Taxiways"},
	InstrumentProcedures:    {3, "Instrument Procedures"},
	AirportServices:         {4, "Airport Services"},
	Lighting:                {5, "Lighting"},
	Hazards:                 {6, "Hazards"},
	Admin:                   {7, "Administrative"},
	Other:                   {8, "Other"},
	FIRAirspaceRestrictions: {9, "FIR Airspace Restrictions"},
	FIRAtcNavigation:        {10, "FIR ATC/Navigation"},
	FIRObstaclesCharts:      {11, "FIR Obstacles/Charts"},
	FIRInfrastructure:       {12, "FIR Infrastructure"},
	FIRDroneOperations:      {13, "FIR Drone Operations"},
	FIRAdministrative:       {14, "FIR Administrative"},
}

var allGroups = []Group{
	Runways, Taxiways, InstrumentProcedures, AirportServices,
	Lighting, Hazards, Admin, Other,
	FIRAirspaceRestrictions, FIRAtcNavigation, FIRObstaclesCharts,
	FIRInfrastructure, FIRDroneOperations, FIRAdministrative,
}

// Groups returns every group in priority order. The slice is a copy.
func Groups() []Group {
	out := make([]Group, len(allGroups))
	copy(out, allGroups)
	return out
}

// Priority returns the group's rank; lower is more important. Unknown groups rank last.
func (g Group) Priority() int {
	if info, ok := groupInfos[g]; ok {
		return info.priority
	}
	return len(allGroups) + 1
}

// Label returns the display name for the group.
func (g Group) Label() string {
	if info, ok := groupInfos[g]; ok {
		return info.label
	}
	return string(g)
}

// IsFIR reports whether the group is one of the FIR-only categories.
func (g Group) IsFIR() bool {
	return g.Priority() > 8 && g.Valid()
}

// Valid reports whether g is a known group.
func (g Group) Valid() bool {
	_, ok := groupInfos[g]
	return ok
}

// ParseGroup converts a group name into a Group.
func ParseGroup(s string) (Group, error) {
	g := Group(s)
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGroup, s)
	}
	return g, nil
}
