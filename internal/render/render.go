// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a topic's generated articles into one markdown
// document with an anchor-linked table of contents.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/topicbook/internal/slug"
	"github.com/pdiddy/topicbook/pkg/types"
)

var (
	// topHeadingLine matches a level-1 heading line including its line break.
	// The marker is followed by a space, a tab, or the end of the line.
	topHeadingLine = regexp.MustCompile(`(?m)^#(?:[ \t].*)?(?:\n|$)`)

	// topHeadingPrefix matches the marker of every remaining level-1 heading.
	topHeadingPrefix = regexp.MustCompile(`(?m)^#([ \t]|$)`)

	lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

	// blankRuns matches two or more consecutive blank lines.
	blankRuns = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)
)

// Heading returns the numbered heading text shared by an article's table of
// contents entry and its section, e.g. "01. Intro". pos is 0-based.
func Heading(pos int, title string) string {
	return fmt.Sprintf("%02d. %s", pos+1, title)
}

// Document renders the topic heading, the table of contents, and one level-2
// section per article in order. Numbering follows slice position, not
// Article.Index.
func Document(topic string, articles []types.Article) string {
	var toc, body []string
	for i, a := range articles {
		h := Heading(i, a.Title)
		toc = append(toc, fmt.Sprintf("- [%s](%s)", h, slug.Anchor(h)))
		body = append(body, "## "+h+"\n"+DemoteHeadings(a.Content))
	}

	doc := "# " + topic + "\n\n" +
		strings.Join(toc, "\n") + "\n\n" +
		strings.Join(body, "\n\n")
	return Normalize(doc)
}

// DemoteHeadings removes the first level-1 heading line of an article and
// rewrites every other level-1 heading as level 2, so the article nests
// under its generated section heading. Line endings are converted to "\n".
// Code fences are not special-cased: a line starting with "# " inside a fence
// is demoted too.
func DemoteHeadings(markdown string) string {
	markdown = lineBreaks.Replace(markdown)
	if loc := topHeadingLine.FindStringIndex(markdown); loc != nil {
		markdown = markdown[:loc[0]] + markdown[loc[1]:]
	}
	return topHeadingPrefix.ReplaceAllString(markdown, "##$1")
}

// Normalize collapses every run of blank lines to a single blank line, trims
// surrounding whitespace, and ends the text with exactly one newline. CRLF
// and lone CR line endings become "\n" first.
func Normalize(doc string) string {
	doc = lineBreaks.Replace(doc)
	doc = blankRuns.ReplaceAllString(doc, "\n\n")
	return strings.TrimSpace(doc) + "\n"
}
