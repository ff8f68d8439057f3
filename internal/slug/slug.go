// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slug turns topic names and headings into file names and anchors.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transliterations spells out letters that have no canonical decomposition,
// and the ampersand.
var transliterations = strings.NewReplacer(
	"&", " and ",
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ı", "i",
)

// Make returns the lower-case slug of s. Letters such as ß and æ are spelled
// out, "&" becomes "and", accented letters lose their marks, ASCII letters
// and digits are kept, runs of whitespace and hyphens become a
// single hyphen, and every other character is dropped. The result contains
// only [a-z0-9-] and never starts or ends with a hyphen.
func Make(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	folded = transliterations.Replace(folded)

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
			r = unicode.ToLower(r)
		case r == '-' || unicode.IsSpace(r):
			pendingSep = true
			continue
		default:
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// Anchor returns the in-document link target for a heading text.
func Anchor(heading string) string {
	return "#" + Make(heading)
}
