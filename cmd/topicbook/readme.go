// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/topicbook/internal/readme"
	"github.com/pdiddy/topicbook/internal/topics"
	"github.com/pdiddy/topicbook/pkg/types"
)

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Rewrite the README topic list from the topic file",
	Long: `Readme replaces everything between <!-- TOPICS START --> and
<!-- TOPICS END --> in the README with one link per topic, pointing at the
document generate writes for it. The markers must already exist.`,
	RunE: runReadme,
}

func init() {
	readmeCmd.Flags().String("readme", "", "README file to rewrite (default README.md)")

	rootCmd.AddCommand(readmeCmd)
}

func runReadme(cmd *cobra.Command, args []string) error {
	cfg := types.ReadmeConfig{
		TopicsFile: viper.GetString("topics_file"),
		TopicsDir:  viper.GetString("topics_dir"),
		Readme:     nonZero(viper.GetString("readme"), types.DefaultReadme),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", types.ErrConfig, err)
	}

	list, err := topics.Load(cfg.TopicsFile)
	if err != nil {
		return err
	}

	_, err = readme.Sync(cfg.Readme, list, cfg.TopicsDir, cmd.OutOrStdout())
	return err
}
