// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate drives the per-topic article loop against a chat model
// and writes one markdown document per topic.
package generate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/pdiddy/topicbook/internal/fileutil"
	"github.com/pdiddy/topicbook/internal/render"
	"github.com/pdiddy/topicbook/internal/slug"
	"github.com/pdiddy/topicbook/pkg/types"
)

// Summary holds counts from a generation run.
type Summary struct {
	Generated int
	Skipped   int
}

// Total returns the number of topics processed.
func (s Summary) Total() int {
	return s.Generated + s.Skipped
}

// TopicPath returns the document path for topic under dir.
func TopicPath(dir, topic string) string {
	return filepath.Join(dir, slug.Make(topic)+".md")
}

// GenerateAll processes topics in order. A topic whose document already
// exists is skipped; otherwise its articles are generated, rendered, and
// written in one atomic step. The first error stops the run, and no document
// is written for the topic in progress.
func GenerateAll(ctx context.Context, backend Capability, topics []string, cfg types.GenerationConfig, logger *slog.Logger, w io.Writer) (Summary, error) {
	if err := os.MkdirAll(cfg.TopicsDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("%w: creating topics directory: %v", types.ErrIO, err)
	}

	var summary Summary
	for _, topic := range topics {
		target := TopicPath(cfg.TopicsDir, topic)

		exists, err := fileutil.Exists(target)
		if err != nil {
			return summary, fmt.Errorf("%w: stat %s: %v", types.ErrIO, target, err)
		}
		if exists {
			fmt.Fprintf(w, "skipped %s\n", target)
			summary.Skipped++
			continue
		}

		fmt.Fprintf(w, "generating %s\n", topic)

		articles, err := Generate(ctx, backend, topic, cfg.MaxArticles, logger)
		if err != nil {
			return summary, err
		}

		doc := render.Document(topic, articles)
		if err := fileutil.WriteFileAtomic(target, []byte(doc), 0o644); err != nil {
			return summary, fmt.Errorf("%w: writing %s: %v", types.ErrIO, target, err)
		}

		fmt.Fprintf(w, "generated %s (%d articles)\n", target, len(articles))
		summary.Generated++
	}

	return summary, nil
}

// Generate runs the conversation for one topic until the model calls done or
// the article count exceeds maxArticles, and returns the articles in order.
// Each step builds a new slice; articles are numbered by position.
func Generate(ctx context.Context, backend Capability, topic string, maxArticles int, logger *slog.Logger) ([]types.Article, error) {
	if maxArticles <= 0 {
		maxArticles = types.DefaultMaxArticles
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("topic", topic))

	var articles []types.Article
	for {
		msgs, err := Messages(topic, articles, maxArticles)
		if err != nil {
			return nil, err
		}

		action, err := backend.Converse(ctx, msgs, Tools)
		if err != nil {
			return nil, fmt.Errorf("topic %q, article %d: %w", topic, len(articles)+1, err)
		}

		next, done, err := step(articles, action)
		if err != nil {
			return nil, fmt.Errorf("topic %q, article %d: %w", topic, len(articles)+1, err)
		}
		if done {
			logger.Info("topic complete", slog.Int("articles", len(articles)))
			return articles, nil
		}

		articles = next
		last := articles[len(articles)-1]
		logger.Info("article generated",
			slog.Int("index", last.Index),
			slog.String("title", last.Title))

		if len(articles) > maxArticles {
			logger.Warn("article cap reached", slog.Int("max_articles", maxArticles))
			return articles, nil
		}
	}
}

// step applies one model action to the article list. It returns the next
// list and whether generation is finished.
func step(articles []types.Article, action Action) ([]types.Article, bool, error) {
	switch a := action.(type) {
	case ReportArticle:
		next := append(slices.Clip(articles), types.Article{
			Index:   len(articles) + 1,
			Title:   a.Title,
			Content: a.Content,
		})
		return next, false, nil
	case Done:
		return articles, true, nil
	default:
		return nil, false, fmt.Errorf("%w: unexpected action %T", types.ErrProtocol, action)
	}
}
