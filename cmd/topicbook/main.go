// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the topicbook CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/topicbook/internal/secrets"
	"github.com/pdiddy/topicbook/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the topicbook CLI.
var rootCmd = &cobra.Command{
	Use:   "topicbook",
	Short: "Generate a markdown article series per topic with a chat model",
	Long: `topicbook turns a list of topics into one markdown book per topic.

generate asks a chat model for a series of articles on each topic that has no
document yet and writes topics/<slug>.md with a table of contents. readme
rewrites the topic list between the TOPICS markers in README.md.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			slog.Debug("loaded secrets", slog.Any("keys", keys))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./topicbook.yaml or ~/.config/topicbook/topicbook.yaml)")
	rootCmd.PersistentFlags().String("topics-file", types.DefaultTopicsFile, "YAML list of topic names")
	rootCmd.PersistentFlags().String("topics-dir", types.DefaultTopicsDir, "directory holding one markdown document per topic")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	bindFlags()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("topicbook")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "topicbook"))
		}
	}

	viper.SetEnvPrefix("TOPICBOOK")
	viper.AutomaticEnv()

	viper.SetDefault("model", types.DefaultModel)
	viper.SetDefault("base_url", types.DefaultBaseURL)
	viper.SetDefault("max_articles", types.DefaultMaxArticles)
	viper.SetDefault("timeout", types.DefaultTimeout)
	viper.SetDefault("readme", types.DefaultReadme)

	if err := viper.ReadInConfig(); err == nil {
		slog.Info("using config file", slog.String("path", viper.ConfigFileUsed()))
	}

	if viper.GetBool("verbose") {
		setupLogger(slog.LevelDebug)
	}
}

// bindFlags registers every flag that has a configuration key.
func bindFlags() {
	bindFlag("topics_file", rootCmd.PersistentFlags().Lookup("topics-file"))
	bindFlag("topics_dir", rootCmd.PersistentFlags().Lookup("topics-dir"))
	bindFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	bindFlag("model", generateCmd.Flags().Lookup("model"))
	bindFlag("base_url", generateCmd.Flags().Lookup("base-url"))
	bindFlag("max_articles", generateCmd.Flags().Lookup("max-articles"))
	bindFlag("timeout", generateCmd.Flags().Lookup("timeout"))
	bindFlag("readme", readmeCmd.Flags().Lookup("readme"))
}

// bindFlag ties a cobra flag to a viper key so the flag overrides the config
// file and environment.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

func setupLogger(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func main() {
	setupLogger(slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("topicbook failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
