// Package icaotime parses and formats the ICAO YYMMDDHHMM date-time used in
// NOTAM fields B and C.
package icaotime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PermanentHorizon is how far past now a PERM end date is placed.
const PermanentHorizon = 10 // years

// centuryWindow is the maximum distance in years between a parsed date and now
// before the century is shifted.
const centuryWindow = 50

// Field identifies which NOTAM field a value came from. Only the end field
// accepts PERM.
type Field int

const (
	Start Field = iota // Field B
	End                // Field C
)

// Result is the outcome of parsing one date-time value.
type Result struct {
	Time      *time.Time
	Permanent bool
}

var dateTimeRe = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})$`)

// Parse decodes value relative to now. Malformed or out-of-range values give
// a zero Result; Parse never panics.
func Parse(value string, field Field, now time.Time) Result {
	v := strings.ToUpper(strings.TrimSpace(value))

	if field == End && (v == "PERM" || v == "PERMANENT") {
		t := now.UTC().AddDate(PermanentHorizon, 0, 0)
		return Result{Time: &t, Permanent: true}
	}

	m := dateTimeRe.FindStringSubmatch(v)
	if m == nil {
		return Result{}
	}

	yy, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	nowYear := now.UTC().Year()
	year := nowYear/100*100 + yy
	switch diff := year - nowYear; {
	case diff > centuryWindow:
		year -= 100
	case diff < -centuryWindow:
		year += 100
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalises overflow (month 13, Feb 30); reject anything that moved.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day || t.Hour() != hour || t.Minute() != minute {
		return Result{}
	}
	return Result{Time: &t}
}
