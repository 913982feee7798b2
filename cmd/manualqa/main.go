// Copyright 2025 Mobidoc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mobidoc/manualqa"
	"github.com/mobidoc/manualqa/ai"
	"github.com/mobidoc/manualqa/ingestion"
	"github.com/mobidoc/manualqa/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "manualqa",
		Usage: "Section retrieval over segmented vehicle manuals",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "load",
				Usage:  "Load a manual and warm its embedding cache",
				Action: loadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the embedding cache directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "manual",
						Aliases:  []string{"m"},
						Usage:    "Path to the segmented manual JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "collection",
						Aliases: []string{"c"},
						Usage:   "Collection name for the manual",
						Value:   "manuals",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for embedding calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Load a manual and rank its sections against a query",
				Action:    searchCommand,
				ArgsUsage: "QUERY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the embedding cache directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "manual",
						Aliases:  []string{"m"},
						Usage:    "Path to the segmented manual JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "collection",
						Aliases: []string{"c"},
						Usage:   "Collection name for the manual",
						Value:   "manuals",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"k"},
						Usage:   "Number of sections to return",
						Value:   5,
					},
				},
			},
			{
				Name:   "clear-cache",
				Usage:  "Delete the persisted embedding cache for a collection",
				Action: clearCacheCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the embedding cache directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "collection",
						Aliases:  []string{"c"},
						Usage:    "Collection name to clear",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadCommand(c *cli.Context) error {
	ctx := context.Background()

	svc, err := newService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	pipeline, err := svc.NewIngestionPipeline(
		ingestion.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	collection := c.String("collection")
	doc, err := pipeline.LoadManualFile(ctx, collection, c.String("manual"))
	if err != nil {
		return fmt.Errorf("failed to load manual: %w", err)
	}
	pipeline.Wait()

	stats := svc.Store().Stats()[collection]
	fmt.Fprintf(os.Stderr, "Loaded %s: %d sections (embedded: %v)\n",
		doc.Source, stats.Sections, stats.Embedded)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	svc, err := newService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	pipeline, err := svc.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	collection := c.String("collection")
	if _, err := pipeline.LoadManualFile(ctx, collection, c.String("manual")); err != nil {
		return fmt.Errorf("failed to load manual: %w", err)
	}
	pipeline.Wait()

	searcher, err := svc.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	results, err := searcher.Rank(ctx, query, collection, c.Int("top"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d sections\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: [%.3f] %s (%s, pages %d-%d)\n",
			i+1, hit.Score, hit.Section.Title, hit.Section.Number,
			hit.Section.Pages.Start, hit.Section.Pages.End)
		fmt.Printf("   title=%.3f keyword=%.3f semantic=%.3f bonus=%.3f\n",
			hit.Details.Title, hit.Details.Keyword, hit.Details.Semantic, hit.Details.Bonus)
	}
	return nil
}

func clearCacheCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCacheRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create cache repository: %w", err)
	}
	defer repo.Close()

	collection := c.String("collection")
	if err := repo.DeleteCache(ctx, collection); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Cleared embedding cache for %q\n", collection)
	return nil
}

func newService(c *cli.Context) (*manualqa.Service, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	svc, err := manualqa.NewService(c.String("db"), manualqa.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open service: %w", err)
	}
	return svc, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
