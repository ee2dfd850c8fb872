// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emoji classifies the emoji taxonomy markers used in node
// titles and renders emoji as embeddable image tags for HTML contexts.
package emoji

import (
	"fmt"
	"regexp"
	"unicode/utf16"
)

// Pattern matches a single emoji codepoint outside the Basic
// Multilingual Plane, the range the editor's markers come from. It is
// the rune-based equivalent of the UTF-16 surrogate-pair matcher the
// renderer uses.
var Pattern = regexp.MustCompile(`[\x{10000}-\x{10FFFF}]`)

// categories maps each recognized marker to its taxonomy label.
var categories = map[string]string{
	"\U0001F5FA": "mindmap",       // world map
	"\U0001F310": "wiki",          // globe with meridians
	"\U0001F4D6": "free book",     // open book
	"\U0001F4D5": "non-free book", // closed book
	"\U0001F4C3": "paper",         // page with curl
	"\U0001F440": "video",         // eyes
	"\U0001F58A": "article",       // pen
	"\U0001F5C3": "blog",          // card file box
	"\U0001F419": "github",        // octopus
	"\U0001F47E": "interactive",   // alien monster
	"\U0001F58C": "image",         // paintbrush
	"\U0001F3A4": "podcast",       // microphone
	"\U0001F4E7": "newsletter",    // e-mail
	"\U0001F4AC": "chat",          // speech balloon
	"\U0001F3A5": "youtube",       // movie camera
	"\U0001F916": "reddit",        // robot
}

// Icons that look wrong at emojione's generic path get pinned URLs.
var specialIcons = map[string]string{
	"\U0001F419": "https://github.githubassets.com/images/modules/logos_page/GitHub-Mark.png",
	"\U0001F916": "https://www.redditstatic.com/desktop2x/img/favicon/favicon-96x96.png",
	"\U0001F5C2": "https://twemoji.maxcdn.com/2/72x72/1f5c2.png",
}

const iconCDN = "https://cdnjs.cloudflare.com/ajax/libs/emojione/2.2.7/assets/png"

// Category returns the taxonomy label for a marker emoji, or the empty
// string when the emoji is not a recognized marker.
func Category(emoji string) string {
	return categories[emoji]
}

// ToHTML replaces every emoji in text with an <img> tag pointing at a
// CDN-hosted icon. Rendering is independent of classification: emoji
// with no category still get an icon.
func ToHTML(text string) string {
	return Pattern.ReplaceAllStringFunc(text, func(emoji string) string {
		if src, ok := specialIcons[emoji]; ok {
			return imgTag(src, emoji)
		}
		return imgTag(fmt.Sprintf("%s/%s.png", iconCDN, iconName(emoji)), emoji)
	})
}

// iconName derives the CDN filename from the emoji's UTF-16 encoding:
// mask each surrogate half to its low 10 bits, combine, and prefix the
// lowercase hex with "1". For plane-1 emoji this reproduces the
// codepoint's hex form.
func iconName(emoji string) string {
	runes := []rune(emoji)
	units := utf16.Encode(runes)
	if len(units) < 2 {
		return fmt.Sprintf("%x", runes[0])
	}
	lead := uint32(units[0]) & 0x3FF
	trail := uint32(units[1]) & 0x3FF
	return fmt.Sprintf("1%04x", lead<<10|trail)
}

func imgTag(src, alt string) string {
	return fmt.Sprintf(`<img class="map-emoji" src=%q alt=%q>`, src, alt)
}
