// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package richtext extracts plain text and link targets from the HTML
// fragments the editor stores in title and note fields.
package richtext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noteBoilerplate is appended by the editor template to many notes and
// carries no content.
const noteBoilerplate = "if you think this can be improved in any way please say"

// Text strips all markup from a rich-text fragment and returns the plain
// text. Line breaks survive as newlines; inline formatting is dropped.
// Malformed fragments degrade to the input unchanged rather than failing
// the conversion.
func Text(richText string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(richText))
	if err != nil {
		return strings.TrimSpace(richText)
	}
	doc.Find("br").ReplaceWithHtml("\n")
	return strings.TrimSpace(doc.Text())
}

// URL returns the first embedded hyperlink target in a rich-text
// fragment, or the empty string when the fragment contains none.
func URL(richText string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(richText))
	if err != nil {
		return ""
	}
	href, _ := doc.Find("a[href]").First().Attr("href")
	return href
}

// TrimNote removes the editor's note boilerplate phrase from plain note
// text and trims the surrounding whitespace.
func TrimNote(note string) string {
	return strings.TrimSpace(strings.ReplaceAll(note, noteBoilerplate, ""))
}
