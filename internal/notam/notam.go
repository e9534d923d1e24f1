// Package notam provides the NOTAM record types shared by every pipeline stage.
package notam

import (
	"errors"
	"time"
)

// Unknown is the NOTAM ID used when no identifier can be found in a block.
const Unknown = "UNKNOWN"

var (
	// ErrUnknownGroup is returned when a group name is not one of the 14 known groups.
	ErrUnknownGroup = errors.New("unknown operational group")

	// ErrUnknownWindow is returned when a time window selector is not 6h, 12h, 24h or All.
	ErrUnknownWindow = errors.New("unknown time window")
)

// Notam is a single parsed NOTAM. Stages build a new value rather than
// mutating one they were handed.
type Notam struct {
	NotamID string `json:"notamId"`
	QCode   string `json:"qCode,omitempty"`

	// Raw ICAO fields, trimmed. Empty when absent. D is kept verbatim.
	FieldA string `json:"fieldA"`
	FieldB string `json:"fieldB"`
	FieldC string `json:"fieldC"`
	FieldD string `json:"fieldD"`
	FieldE string `json:"fieldE"`
	FieldF string `json:"fieldF"`
	FieldG string `json:"fieldG"`

	ValidFrom   *time.Time `json:"validFrom"`
	ValidTo     *time.Time `json:"validTo"`
	IsPermanent bool       `json:"isPermanent"`

	RawText  string   `json:"rawText"`
	Warnings []string `json:"warnings"`
	Group    Group    `json:"group"`

	QLine *QLine `json:"qLine,omitempty"`
}

// QLine is the decoded Q) line: FIR/QCODE/TRAFFIC/PURPOSE/SCOPE/LOWER/UPPER/COORDS.
type QLine struct {
	FIR       string  `json:"fir"`
	Code      string  `json:"code"`
	Traffic   string  `json:"traffic"`
	Purpose   string  `json:"purpose"`
	Scope     string  `json:"scope"`
	Lower     int     `json:"lower"` // Flight level.
	Upper     int     `json:"upper"` // Flight level.
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	RadiusNM  int     `json:"radiusNm,omitempty"`
}

// HasPosition reports whether the Q-line carried a coordinate/radius group.
func (q *QLine) HasPosition() bool {
	return q != nil && (q.Latitude != 0 || q.Longitude != 0)
}

// Location returns field A, or Unknown when the NOTAM carries none.
func (n Notam) Location() string {
	if n.FieldA == "" {
		return Unknown
	}
	return n.FieldA
}
