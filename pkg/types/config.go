// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Defaults applied when a config key is unset.
const (
	DefaultTopicsFile  = "scripts/topics.yaml"
	DefaultTopicsDir   = "topics"
	DefaultReadme      = "README.md"
	DefaultModel       = "gpt-4o"
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultMaxArticles = 20
	DefaultTimeout     = 5 * time.Minute
)

// AIConfig holds settings for the chat-completions API.
type AIConfig struct {
	// Model is the chat model identifier (e.g. "gpt-4o").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey authenticates against the API. Loaded from the environment or
	// .secrets/, never from the config file.
	APIKey string `json:"-" yaml:"-" mapstructure:"-"`

	// BaseURL is the API root; requests go to BaseURL + "/chat/completions".
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds a single API request.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Validate checks that the API settings are usable.
func (c AIConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.APIKey, validation.Required.Error("OPENAI_API_KEY is not set")),
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// GenerationConfig holds settings for the article generator.
type GenerationConfig struct {
	AIConfig `yaml:",inline" mapstructure:",squash"`

	// TopicsFile is the YAML list of topic names.
	TopicsFile string `json:"topics_file" yaml:"topics_file" mapstructure:"topics_file"`

	// TopicsDir receives one markdown document per topic.
	TopicsDir string `json:"topics_dir" yaml:"topics_dir" mapstructure:"topics_dir"`

	// MaxArticles is the hard article ceiling per topic. Generation stops once
	// the article count exceeds it.
	MaxArticles int `json:"max_articles" yaml:"max_articles" mapstructure:"max_articles"`
}

// Validate checks the generator settings, including the embedded API settings.
func (c GenerationConfig) Validate() error {
	if err := c.AIConfig.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.TopicsFile, validation.Required),
		validation.Field(&c.TopicsDir, validation.Required),
		validation.Field(&c.MaxArticles, validation.Required, validation.Min(1)),
	)
}

// ReadmeConfig holds settings for the README syncer.
type ReadmeConfig struct {
	// TopicsFile is the YAML list of topic names.
	TopicsFile string `json:"topics_file" yaml:"topics_file" mapstructure:"topics_file"`

	// TopicsDir is the directory the README links point into.
	TopicsDir string `json:"topics_dir" yaml:"topics_dir" mapstructure:"topics_dir"`

	// Readme is the README file to rewrite.
	Readme string `json:"readme" yaml:"readme" mapstructure:"readme"`
}

// Validate checks the syncer settings.
func (c ReadmeConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TopicsFile, validation.Required),
		validation.Field(&c.TopicsDir, validation.Required),
		validation.Field(&c.Readme, validation.Required),
	)
}
