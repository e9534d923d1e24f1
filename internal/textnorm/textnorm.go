// Package textnorm cleans text pulled out of PDFs, web pages and pastes so
// the pipeline sees plain ASCII-friendly lines.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// invisible reports format characters such as zero-width spaces and BOMs
// that PDF extractors leave between letters.
func invisible(r rune) bool {
	return unicode.Is(unicode.Cf, r)
}

func fold(r rune) rune {
	switch r {
	case '\u2010', '\u2011', '\u2012', '\u2013', '\u2014', '\u2015', '\u2212':
		return '-'
	case '\u2018', '\u2019', '\u201b':
		return '\''
	case '\u201c', '\u201d', '\u201f':
		return '"'
	case '\u00a0', '\u2007', '\u202f':
		return ' '
	}
	return r
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Clean applies NFKC, drops invisible format characters, folds typographic
// dashes, quotes and spaces to ASCII and normalises line endings to "\n".
func Clean(s string) string {
	// Transformers carry buffers, so each call builds its own chain.
	t := transform.Chain(norm.NFKC, runes.Remove(runes.Predicate(invisible)), runes.Map(fold))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return lineEndings.Replace(out)
}
