// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readme rewrites the topic link block of a README file.
package readme

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/topicbook/internal/fileutil"
	"github.com/pdiddy/topicbook/internal/slug"
	"github.com/pdiddy/topicbook/pkg/types"
)

const (
	StartMarker = "<!-- TOPICS START -->"
	EndMarker   = "<!-- TOPICS END -->"
)

// blockPattern matches the marker region. The body may not contain '<', so
// the match cannot run past the first end marker.
var blockPattern = regexp.MustCompile(regexp.QuoteMeta(StartMarker) + `[^<]+` + regexp.QuoteMeta(EndMarker))

// Block renders the replacement region, markers included, with links
// relative to the README at readmePath.
func Block(topics []string, readmePath, topicsDir string) string {
	var b strings.Builder
	b.WriteString(StartMarker + "\n\n")
	for _, t := range topics {
		fmt.Fprintf(&b, "- [%s](%s)\n", t, Link(readmePath, topicsDir, t))
	}
	b.WriteString("\n" + EndMarker)
	return b.String()
}

// Link returns the link from the README at readmePath to a topic's document,
// using the same slug as the generator's output path. Both paths are taken
// relative to the working directory unless absolute. The link starts with
// "./" unless it climbs out of the README's directory.
func Link(readmePath, topicsDir, topic string) string {
	dir, err := relDir(filepath.Dir(readmePath), topicsDir)
	if err != nil {
		dir = topicsDir
	}
	p := path.Join(filepath.ToSlash(dir), slug.Make(topic)+".md")
	if strings.HasPrefix(p, "../") || path.IsAbs(p) {
		return p
	}
	return "./" + p
}

// relDir returns target relative to base. A relative path is resolved
// against the working directory when the other one is absolute.
func relDir(base, target string) (string, error) {
	if filepath.IsAbs(base) != filepath.IsAbs(target) {
		var err error
		if base, err = filepath.Abs(base); err != nil {
			return "", err
		}
		if target, err = filepath.Abs(target); err != nil {
			return "", err
		}
	}
	return filepath.Rel(base, target)
}

// Splice replaces the first marker region in text with a fresh block.
func Splice(text string, topics []string, readmePath, topicsDir string) (string, error) {
	loc := blockPattern.FindStringIndex(text)
	if loc == nil {
		return "", types.ErrMarkerNotFound
	}
	return text[:loc[0]] + Block(topics, readmePath, topicsDir) + text[loc[1]:], nil
}

// Sync rewrites the marker region of the README at readmePath. The file is
// left untouched when the region is missing or already up to date. It
// reports whether the file changed.
func Sync(readmePath string, topics []string, topicsDir string, w io.Writer) (bool, error) {
	info, err := os.Stat(readmePath)
	if err != nil {
		return false, fmt.Errorf("%w: %v", types.ErrIO, err)
	}
	data, err := os.ReadFile(readmePath)
	if err != nil {
		return false, fmt.Errorf("%w: reading %s: %v", types.ErrIO, readmePath, err)
	}

	updated, err := Splice(string(data), topics, readmePath, topicsDir)
	if err != nil {
		return false, fmt.Errorf("%s: %w", readmePath, err)
	}

	if updated == string(data) {
		fmt.Fprintf(w, "unchanged %s\n", readmePath)
		return false, nil
	}

	if err := fileutil.WriteFileAtomic(readmePath, []byte(updated), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("%w: writing %s: %v", types.ErrIO, readmePath, err)
	}
	fmt.Fprintf(w, "updated %s (%d topics)\n", readmePath, len(topics))
	return true, nil
}
