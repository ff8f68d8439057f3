// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readme

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/topicbook/pkg/types"
)

const sampleReadme = `# Learning notes

Generated topics:

<!-- TOPICS START -->
- [Old](./topics/old.md)
<!-- TOPICS END -->

Footer text.
`

func TestSplice(t *testing.T) {
	got, err := Splice(sampleReadme, []string{"Graph Theory", "C++ Templates"}, "README.md", "topics")
	require.NoError(t, err)

	want := `# Learning notes

Generated topics:

<!-- TOPICS START -->

- [Graph Theory](./topics/graph-theory.md)
- [C++ Templates](./topics/c-templates.md)

<!-- TOPICS END -->

Footer text.
`
	assert.Equal(t, want, got)
}

func TestSpliceIdempotent(t *testing.T) {
	topics := []string{"Graph Theory", "Compilers"}
	once, err := Splice(sampleReadme, topics, "README.md", "topics")
	require.NoError(t, err)
	twice, err := Splice(once, topics, "README.md", "topics")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestSpliceEmptyTopics(t *testing.T) {
	got, err := Splice(sampleReadme, nil, "README.md", "topics")
	require.NoError(t, err)
	assert.Contains(t, got, StartMarker+"\n\n\n"+EndMarker)

	again, err := Splice(got, nil, "README.md", "topics")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSpliceMissingMarkers(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no markers", "# Readme\n"},
		{"start only", "<!-- TOPICS START -->\n- x\n"},
		{"empty region", "<!-- TOPICS START --><!-- TOPICS END -->"},
		{"region contains a tag", "<!-- TOPICS START -->\n<b>x</b>\n<!-- TOPICS END -->"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Splice(tt.text, []string{"Go"}, "README.md", "topics")
			assert.ErrorIs(t, err, types.ErrMarkerNotFound)
		})
	}
}

func TestLink(t *testing.T) {
	tests := []struct {
		name      string
		readme    string
		topicsDir string
		topic     string
		want      string
	}{
		{"default layout", "README.md", "topics", "Graph Theory", "./topics/graph-theory.md"},
		{"nested topics dir", "README.md", "docs/topics/", "Go", "./docs/topics/go.md"},
		{"dot prefix", "README.md", "./topics", "Go", "./topics/go.md"},
		{"topics beside the README", "README.md", ".", "Go", "./go.md"},
		{"parent topics dir", "README.md", "../topics", "Go", "../topics/go.md"},
		{"nested README", "docs/README.md", "topics", "Go", "../topics/go.md"},
		{"nested README and topics", "docs/README.md", "docs/topics", "Go", "./topics/go.md"},
		{"deeply nested README", "a/b/README.md", "topics", "Go", "../../topics/go.md"},
		{"absolute paths", "/srv/book/README.md", "/srv/book/topics", "Graph Theory", "./topics/graph-theory.md"},
		{"absolute nested README", "/srv/book/docs/README.md", "/srv/book/topics", "Go", "../topics/go.md"},
		{"absolute unrelated dirs", "/srv/book/README.md", "/data/topics", "Go", "../../data/topics/go.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Link(tt.readme, tt.topicsDir, tt.topic))
		})
	}
}

func TestLinkMixedAbsoluteAndRelative(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	tests := []struct {
		name      string
		readme    string
		topicsDir string
		want      string
	}{
		{"relative README, absolute topics", "README.md", filepath.Join(dir, "topics"), "./topics/go.md"},
		{"absolute README, relative topics", filepath.Join(dir, "docs", "README.md"), "topics", "../topics/go.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Link(tt.readme, tt.topicsDir, "Go"))
		})
	}
}

func TestSync(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleReadme), 0o600))

	var out bytes.Buffer
	changed, err := Sync(path, []string{"Graph Theory"}, filepath.Join(dir, "topics"), &out)
	require.NoError(t, err)
	assert.True(t, changed)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(first), "- [Graph Theory](./topics/graph-theory.md)")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	changed, err = Sync(path, []string{"Graph Theory"}, filepath.Join(dir, "topics"), &out)
	require.NoError(t, err)
	assert.False(t, changed)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, out.String(), "unchanged")
}

func TestSyncNestedReadme(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	path := filepath.Join(dir, "docs", "README.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleReadme), 0o644))

	_, err := Sync(path, []string{"Graph Theory"}, filepath.Join(dir, "topics"), &bytes.Buffer{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- [Graph Theory](../topics/graph-theory.md)")
}

func TestSyncMissingMarkersLeavesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# Readme\n"), 0o644))

	_, err := Sync(path, []string{"Go"}, filepath.Join(dir, "topics"), &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMarkerNotFound)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Readme\n", string(data))
}

func TestSyncMissingFile(t *testing.T) {
	_, err := Sync(filepath.Join(t.TempDir(), "README.md"), nil, "topics", &bytes.Buffer{})
	assert.ErrorIs(t, err, types.ErrIO)
}
