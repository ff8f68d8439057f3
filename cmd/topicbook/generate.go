// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/topicbook/internal/generate"
	"github.com/pdiddy/topicbook/internal/secrets"
	"github.com/pdiddy/topicbook/internal/topics"
	"github.com/pdiddy/topicbook/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a markdown document for every topic that has none",
	Long: `Generate reads the topic list and, for each topic without a document in
the topics directory, asks the chat model for a series of articles until it
calls "done" or the article cap is exceeded. The articles are written as one
markdown document with a table of contents. Existing documents are never
touched; delete one to regenerate it.

The API key is read from OPENAI_API_KEY (a .env file is honored) or from
.secrets/openai-api-key.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("model", "", "chat model identifier (default gpt-4o)")
	generateCmd.Flags().String("base-url", "", "chat-completions API root (default https://api.openai.com/v1)")
	generateCmd.Flags().Int("max-articles", 0, "article cap per topic (default 20)")
	generateCmd.Flags().Duration("timeout", 0, "timeout for one API request (default 5m)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := generationConfig()
	if err != nil {
		return err
	}

	list, err := topics.Load(cfg.TopicsFile)
	if err != nil {
		return err
	}

	logger := slog.Default().With(slog.String("run", uuid.NewString()))
	logger.Info("starting generation",
		slog.Int("topics", len(list)),
		slog.String("model", cfg.Model),
		slog.String("topics_dir", cfg.TopicsDir))

	backend := generate.NewOpenAIBackend(cfg.AIConfig)
	summary, err := generate.GenerateAll(cmd.Context(), backend, list, cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d generated, %d skipped\n", summary.Generated, summary.Skipped)
	return nil
}

// generationConfig assembles and validates the generator settings from
// flags, environment, and config file.
func generationConfig() (types.GenerationConfig, error) {
	key, err := secrets.OpenAIKey(loadedSecrets)
	if err != nil {
		return types.GenerationConfig{}, err
	}

	cfg := types.GenerationConfig{
		AIConfig: types.AIConfig{
			Model:   nonZero(viper.GetString("model"), types.DefaultModel),
			APIKey:  key,
			BaseURL: nonZero(viper.GetString("base_url"), types.DefaultBaseURL),
			Timeout: viper.GetDuration("timeout"),
		},
		TopicsFile:  viper.GetString("topics_file"),
		TopicsDir:   viper.GetString("topics_dir"),
		MaxArticles: viper.GetInt("max_articles"),
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = types.DefaultTimeout
	}
	if cfg.MaxArticles == 0 {
		cfg.MaxArticles = types.DefaultMaxArticles
	}

	if err := cfg.Validate(); err != nil {
		return types.GenerationConfig{}, fmt.Errorf("%w: %v", types.ErrConfig, err)
	}
	return cfg, nil
}

// nonZero returns v, or fallback when v is empty. Flags default to the zero
// value so that an unset flag does not shadow the config file.
func nonZero(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
