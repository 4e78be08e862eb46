// ABOUTME: HTML utilities for stripping markup down to visible text
// ABOUTME: Used to measure visible length of HTML-capable fields

package html

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// StripTags removes all markup from an HTML fragment and returns the
// visible text with whitespace collapsed.
func StripTags(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		// goquery only fails on reader errors, which strings.Reader
		// never produces; fall back to the raw input regardless.
		return strings.TrimSpace(fragment)
	}

	doc.Find("script,style").Remove()
	return collapseWhitespace(doc.Text())
}

// VisibleLength returns the number of visible characters in an HTML
// fragment after tags are stripped.
func VisibleLength(fragment string) int {
	return utf8.RuneCountInString(StripTags(fragment))
}

// collapseWhitespace trims the text and squeezes runs of whitespace
// into single spaces.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
