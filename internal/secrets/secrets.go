// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves API credentials from the environment or from a
// directory of plain-text files. In the directory, each file is one secret:
// the filename is the key name and the trimmed file contents are the value.
//
// Supported key files: openai-api-key.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/topicbook/pkg/types"
)

const (
	// OpenAIKeyEnv is the environment variable holding the OpenAI API key.
	OpenAIKeyEnv = "OPENAI_API_KEY"

	// OpenAIKeyFile is the secrets-directory file holding the OpenAI API key.
	OpenAIKeyFile = "openai-api-key"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files are logged and skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("could not read secret", slog.String("name", name), slog.Any("error", err))
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// OpenAIKey returns the OpenAI API key. The environment variable wins over
// the secrets directory; a key found in neither place is a config error.
func OpenAIKey(loaded map[string]string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(OpenAIKeyEnv)); v != "" {
		return v, nil
	}
	if v, ok := loaded[OpenAIKeyFile]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s is not set and .secrets/%s is missing", types.ErrConfig, OpenAIKeyEnv, OpenAIKeyFile)
}
