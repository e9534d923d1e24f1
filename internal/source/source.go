// Package source turns briefing inputs (plain text or saved HTML pages) into
// clean text for the pipeline.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"notam_parser/internal/textnorm"
)

// Kind is the input format.
type Kind string

const (
	Text Kind = "text"
	HTML Kind = "html"
)

// KindFor guesses the format from a file name.
func KindFor(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return HTML
	}
	return Text
}

// Read reads r as kind and returns normalised text.
func Read(r io.Reader, kind Kind) (string, error) {
	if kind == HTML {
		return FromHTML(r)
	}
	return FromText(r)
}

// FromText reads plain text.
func FromText(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return textnorm.Clean(string(b)), nil
}

const blockElements = "p, div, li, tr, pre, table, section, article, header, footer, h1, h2, h3, h4, h5, h6, blockquote, hr"

var (
	extraBlankLines = regexp.MustCompile(`\n{3,}`)
	trailingSpace   = regexp.MustCompile(`[ \t]+\n`)
)

// FromHTML extracts the visible text of an HTML page. Line breaks and block
// elements become newlines so that NOTAM field lines survive.
func FromHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("td, th").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	text := textnorm.Clean(doc.Find("body").Text())
	if text == "" {
		text = textnorm.Clean(doc.Text())
	}
	text = trailingSpace.ReplaceAllString(text, "\n")
	text = extraBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text), nil
}
