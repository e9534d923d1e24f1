// Package keywords scores free NOTAM text against weighted per-group keyword
// tables and picks the best airport group.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"notam_parser/internal/notam"
)

// superPhraseWeight is scored for each runway super-phrase that matches.
const superPhraseWeight = 8.0

// Runway phrases scored ahead of the keyword table.
var runwayPhrases = []*regexp.Regexp{
	regexp.MustCompile(`RUNWAY [0-9/ ]+UNSERVICEABLE`),
	regexp.MustCompile(`RUNWAY [0-9/ ]+U/S`),
	regexp.MustCompile(`DECLARED DISTANCE(S)? .*RUNWAY`),
}

type groupTable struct {
	group    notam.Group
	keywords []string
	weights  map[string]float64
}

type term struct {
	text   string
	weight float64
	re     *regexp.Regexp
}

type scorer struct {
	group   notam.Group
	phrases []*regexp.Regexp
	terms   []term
}

// scorers is built once from groupTables and never modified afterwards.
var scorers = buildScorers(groupTables)

func buildScorers(tables []groupTable) []scorer {
	out := make([]scorer, 0, len(tables))
	for _, tbl := range tables {
		s := scorer{group: tbl.group}
		if tbl.group == notam.Runways {
			s.phrases = runwayPhrases
		}
		for _, kw := range tbl.keywords {
			w, ok := tbl.weights[kw]
			if !ok {
				w = 1.0
			}
			s.terms = append(s.terms, term{
				text:   kw,
				weight: w,
				re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
			})
		}
		// Phrases before their component words.
		sort.SliceStable(s.terms, func(i, j int) bool {
			return len(s.terms[i].text) > len(s.terms[j].text)
		})
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].group.Priority() < out[j].group.Priority()
	})
	return out
}

// span is a consumed byte range [start, end).
type span struct{ start, end int }

type consumed []span

func (c consumed) overlaps(start, end int) bool {
	for _, s := range c {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

func (s scorer) score(upper string) float64 {
	var (
		total float64
		used  consumed
	)

	for _, re := range s.phrases {
		locs := re.FindAllStringIndex(upper, -1)
		if len(locs) == 0 {
			continue
		}
		total += superPhraseWeight
		for _, loc := range locs {
			used = append(used, span{loc[0], loc[1]})
		}
	}

	for _, t := range s.terms {
		hit := false
		for _, loc := range t.re.FindAllStringIndex(upper, -1) {
			if !used.overlaps(loc[0], loc[1]) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		total += t.weight
		// Every occurrence is consumed, bounded or not.
		for off := 0; ; {
			i := strings.Index(upper[off:], t.text)
			if i < 0 {
				break
			}
			start := off + i
			used = append(used, span{start, start + len(t.text)})
			off = start + len(t.text)
		}
	}
	return total
}

// GroupScore is one group's text score.
type GroupScore struct {
	Group notam.Group `json:"group"`
	Score float64     `json:"score"`
}

// Scores returns the score of every airport group for text, in priority order.
func Scores(text string) []GroupScore {
	upper := strings.ToUpper(text)
	out := make([]GroupScore, len(scorers))
	for i, s := range scorers {
		out[i] = GroupScore{Group: s.group, Score: s.score(upper)}
	}
	return out
}

// Classify returns the highest scoring airport group. Ties go to the group
// with the lower priority number; a zero score is Other.
func Classify(text string) notam.Group {
	best, bestScore := notam.Other, 0.0
	for _, gs := range Scores(text) {
		if gs.Score > bestScore {
			best, bestScore = gs.Group, gs.Score
		}
	}
	return best
}
