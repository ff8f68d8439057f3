// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topics loads the ordered list of topic names shared by the
// generator and the README syncer.
package topics

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/topicbook/internal/slug"
	"github.com/pdiddy/topicbook/pkg/types"
)

// Load reads a YAML sequence of topic names from path. Order and duplicates
// are preserved; each entry is trimmed. A missing file, a document that is
// not a sequence of strings, or an entry with an empty slug is a
// configuration error.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading topics %s: %v", types.ErrConfig, path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML sequence of topic names.
func Parse(data []byte) ([]string, error) {
	var raw []string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing topics: %v", types.ErrConfig, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: topics file is empty", types.ErrConfig)
	}

	list := make([]string, 0, len(raw))
	for i, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, fmt.Errorf("%w: topic %d is blank", types.ErrConfig, i+1)
		}
		if slug.Make(t) == "" {
			return nil, fmt.Errorf("%w: topic %q has no letters or digits to build a file name from", types.ErrConfig, t)
		}
		list = append(list, t)
	}
	return list, nil
}
