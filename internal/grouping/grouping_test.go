package grouping

import (
	"reflect"
	"testing"
	"time"

	"notam_parser/internal/notam"
)

func at(h int) *time.Time {
	t := time.Date(2025, 1, 15, h, 0, 0, 0, time.UTC)
	return &t
}

func TestByLocationAndCategory(t *testing.T) {
	in := []notam.Notam{
		{NotamID: "3", FieldA: "YSSY", Group: notam.Runways, ValidFrom: at(14)},
		{NotamID: "1", FieldA: "YBBN", Group: notam.Taxiways, ValidFrom: at(12)},
		{NotamID: "2", FieldA: "YSSY", Group: notam.Runways, ValidFrom: at(10)},
		{NotamID: "4", FieldA: "", Group: notam.Other},
		{NotamID: "5", FieldA: "YSSY", Group: notam.Runways},
		{NotamID: "6", FieldA: "YSSY", Group: notam.FIRAdministrative, ValidFrom: at(1)},
		{NotamID: "7", FieldA: "YSSY", Group: notam.Lighting, ValidFrom: at(1)},
	}
	g := ByLocationAndCategory(in)

	if got, want := g.Locations(), []string{notam.Unknown, "YBBN", "YSSY"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Locations() = %v, want %v", got, want)
	}
	if got, want := g.Categories("YSSY"), []notam.Group{notam.Runways, notam.Lighting, notam.FIRAdministrative}; !reflect.DeepEqual(got, want) {
		t.Errorf("Categories(YSSY) = %v, want %v", got, want)
	}
	if got := g.Categories("NOWHERE"); len(got) != 0 {
		t.Errorf("Categories(NOWHERE) = %v, want none", got)
	}

	var order []string
	for _, n := range g["YSSY"][notam.Runways] {
		order = append(order, n.NotamID)
	}
	if want := []string{"5", "2", "3"}; !reflect.DeepEqual(order, want) {
		t.Errorf("runway order = %v, want %v", order, want)
	}

	if g.Count() != len(in) {
		t.Errorf("Count() = %d, want %d", g.Count(), len(in))
	}
}

func TestSections(t *testing.T) {
	g := ByLocationAndCategory([]notam.Notam{
		{NotamID: "1", FieldA: "YSSY", Group: notam.Hazards},
		{NotamID: "2", FieldA: "YBBN", Group: notam.Admin},
		{NotamID: "3", FieldA: "YBBN", Group: notam.Runways},
	})
	got := g.Sections()
	want := []struct {
		loc   string
		label string
	}{
		{"YBBN", "Runways"},
		{"YBBN", "Administrative"},
		{"YSSY", "Hazards"},
	}
	if len(got) != len(want) {
		t.Fatalf("len(Sections()) = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Location != w.loc || got[i].Label != w.label {
			t.Errorf("Sections()[%d] = %s/%s, want %s/%s", i, got[i].Location, got[i].Label, w.loc, w.label)
		}
	}
}

func TestEmpty(t *testing.T) {
	g := ByLocationAndCategory(nil)
	if len(g.Locations()) != 0 || g.Count() != 0 {
		t.Errorf("empty input gave %v", g)
	}
	if s := g.Sections(); s == nil || len(s) != 0 {
		t.Errorf("Sections() = %v, want empty slice", s)
	}
}
