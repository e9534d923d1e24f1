// Package categorize assigns each parsed NOTAM to one operational group.
package categorize

import (
	"fmt"
	"strings"

	"notam_parser/internal/keywords"
	"notam_parser/internal/notam"
	"notam_parser/internal/patterns"
	"notam_parser/internal/qcode"
)

// Route names the rule that decided a group.
type Route string

const (
	RouteTypeHeading Route = "type_heading"
	RouteFIR         Route = "fir"
	RouteQCode       Route = "qcode"
	RouteKeywords    Route = "keywords"
)

// Decision is a group together with how it was reached.
type Decision struct {
	Group  notam.Group `json:"group"`
	Route  Route       `json:"route"`
	Detail string      `json:"detail,omitempty"`
}

type headingRule struct {
	words []string
	group notam.Group
}

// headingRules are checked in order; the first rule with a matching word wins.
var headingRules = []headingRule{
	{[]string{"RUNWAY", "RWY"}, notam.Runways},
	{[]string{"TAXIWAY", "TWY"}, notam.Taxiways},
	{[]string{"LIGHTING", "LIGHTS"}, notam.Lighting},
	{[]string{"OBSTACLE"}, notam.Hazards},
	{[]string{"AERIAL", "SURVEY"}, notam.Hazards},
	{[]string{"UNMANNED", "DRONE", "UA "}, notam.Hazards},
	{[]string{"PROCEDURE"}, notam.InstrumentProcedures},
	{[]string{"AIRSPACE"}, notam.InstrumentProcedures},
	{[]string{"NAVIGATION", "NAV"}, notam.InstrumentProcedures},
	{[]string{"AERODROME"}, notam.AirportServices},
	{[]string{"APRON"}, notam.AirportServices},
	{[]string{"COMMUNICATION", "COM"}, notam.AirportServices},
}

// TypeHeading returns the heading carried by a leading "[TYPE: ...]" marker.
func TypeHeading(rawText string) (string, bool) {
	m := patterns.TypeMarkerPattern.FindStringSubmatch(rawText)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// GroupFromHeading maps a section heading to a group.
func GroupFromHeading(heading string) (notam.Group, bool) {
	h := strings.ToUpper(heading)
	for _, r := range headingRules {
		if containsAny(h, r.words) {
			return r.group, true
		}
	}
	return "", false
}

// Decide runs the grouping rules in order: type heading, FIR series,
// Q-code table, keyword scoring.
func Decide(qCode, notamID, fieldE, rawText string) Decision {
	if heading, ok := TypeHeading(rawText); ok {
		if g, ok := GroupFromHeading(heading); ok {
			return Decision{Group: g, Route: RouteTypeHeading, Detail: heading}
		}
	}

	if IsFIR(notamID) {
		return Decision{Group: GroupFIR(notamID, fieldE, rawText), Route: RouteFIR, Detail: notamID}
	}

	if qCode != "" {
		detail := qCode
		if !qcode.Known(qCode) {
			detail += " (unmapped subject)"
		}
		return Decision{Group: qcode.Lookup(qCode), Route: RouteQCode, Detail: detail}
	}

	text := fieldE
	if text == "" {
		text = rawText
	}
	g := keywords.Classify(text)
	return Decision{Group: g, Route: RouteKeywords, Detail: keywordDetail(text, g)}
}

// keywordDetail reports the winning group's score.
func keywordDetail(text string, g notam.Group) string {
	for _, gs := range keywords.Scores(text) {
		if gs.Group == g {
			return fmt.Sprintf("score %.1f", gs.Score)
		}
	}
	return "no keywords"
}

// AssignGroup returns the operational group for a NOTAM.
func AssignGroup(qCode, notamID, fieldE, rawText string) notam.Group {
	return Decide(qCode, notamID, fieldE, rawText).Group
}
