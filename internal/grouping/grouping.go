// Package grouping arranges parsed NOTAMs by location and category for
// display.
package grouping

import (
	"sort"

	"notam_parser/internal/notam"
)

// Grouped maps location (field A) to group to NOTAMs.
type Grouped map[string]map[notam.Group][]notam.Notam

// ByLocationAndCategory groups notams by location and category. Within a
// category NOTAMs are ordered by start time; undated ones come first.
func ByLocationAndCategory(notams []notam.Notam) Grouped {
	g := Grouped{}
	for _, n := range notams {
		loc := n.Location()
		if g[loc] == nil {
			g[loc] = map[notam.Group][]notam.Notam{}
		}
		g[loc][n.Group] = append(g[loc][n.Group], n)
	}

	for _, cats := range g {
		for _, list := range cats {
			sort.SliceStable(list, func(i, j int) bool {
				a, b := list[i].ValidFrom, list[j].ValidFrom
				if a == nil || b == nil {
					return a == nil && b != nil
				}
				return a.Before(*b)
			})
		}
	}
	return g
}

// Locations returns the locations in g sorted alphabetically.
func (g Grouped) Locations() []string {
	locs := make([]string, 0, len(g))
	for loc := range g {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	return locs
}

// Categories returns the non-empty groups at loc in display order.
func (g Grouped) Categories(loc string) []notam.Group {
	var out []notam.Group
	for _, c := range notam.Groups() {
		if len(g[loc][c]) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of NOTAMs in g.
func (g Grouped) Count() int {
	n := 0
	for _, cats := range g {
		for _, list := range cats {
			n += len(list)
		}
	}
	return n
}

// Section is one category under a location, flattened for rendering.
type Section struct {
	Location string        `json:"location"`
	Group    notam.Group   `json:"group"`
	Label    string        `json:"label"`
	Notams   []notam.Notam `json:"notams"`
}

// Sections flattens g into display order: locations alphabetically, then
// categories by priority.
func (g Grouped) Sections() []Section {
	out := []Section{}
	for _, loc := range g.Locations() {
		for _, c := range g.Categories(loc) {
			out = append(out, Section{Location: loc, Group: c, Label: c.Label(), Notams: g[loc][c]})
		}
	}
	return out
}
