// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
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

	"github.com/urfave/cli/v2"

	"github.com/newsvec/newsvec"
	"github.com/newsvec/newsvec/ai"
	"github.com/newsvec/newsvec/classify"
	"github.com/newsvec/newsvec/ingestion"
	"github.com/newsvec/newsvec/migrate"
	"github.com/newsvec/newsvec/scrape"
	"github.com/newsvec/newsvec/search"
)

func main() {
	app := &cli.App{
		Name:  "newsvec",
		Usage: "News article vector store with scraping, categorization and search",
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
				Name:   "scrape",
				Usage:  "Scrape configured sources and store embedded articles",
				Action: scrapeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "sources",
						Aliases:  []string{"s"},
						Usage:    "Path to YAML source configuration",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path for the JSON article dump",
						Value:   "articles.json",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "classifier-host",
						Usage: "Classifier service host URL (defaults to embedding-host)",
					},
					&cli.StringFlag{
						Name:  "classifier-model",
						Usage: "Classifier model name",
						Value: "qwen2.5:3b",
					},
					&cli.IntFlag{
						Name:  "dimensions",
						Usage: "Embedding vector dimensions",
						Value: ai.DefaultEmbeddingDimensions,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of articles to classify per batch",
						Value: classify.DefaultBatchSize,
					},
					&cli.DurationFlag{
						Name:  "source-delay",
						Usage: "Pause between consecutive sources",
						Value: ingestion.DefaultSourceDelay,
					},
					&cli.DurationFlag{
						Name:  "fetch-timeout",
						Usage: "Timeout for a single page load",
						Value: scrape.DefaultFetchTimeout,
					},
					&cli.DurationFlag{
						Name:  "settle-delay",
						Usage: "Grace period after a page load",
						Value: scrape.DefaultSettleDelay,
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Search stored articles by text similarity",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Query text",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: search.DefaultLimit,
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Restrict results to one category",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.IntFlag{
						Name:  "dimensions",
						Usage: "Embedding vector dimensions",
						Value: ai.DefaultEmbeddingDimensions,
					},
				},
			},
			{
				Name:   "migrate",
				Usage:  "Upgrade legacy category metadata in place",
				Action: migrateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "dimensions",
						Usage: "Embedding vector dimensions",
						Value: ai.DefaultEmbeddingDimensions,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func scrapeCommand(c *cli.Context) error {
	ctx := context.Background()

	sources, err := scrape.LoadConfig(c.String("sources"))
	if err != nil {
		return fmt.Errorf("failed to load source config: %w", err)
	}

	classifierHost := c.String("classifier-host")
	if classifierHost == "" {
		classifierHost = c.String("embedding-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithClassifierHost(classifierHost),
		ai.WithClassifierModel(c.String("classifier-model")),
		ai.WithEmbeddingDimensions(c.Int("dimensions")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	store, err := newsvec.Open(c.String("db"),
		newsvec.WithAIConfig(aiConfig),
		newsvec.WithClassifierOptions(classify.WithBatchSize(c.Int("batch-size"))),
	)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	// Bring legacy metadata up to date before adding new records.
	if _, err := store.Migrate(ctx, migrate.WithProgress(os.Stderr)); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fetcher := scrape.NewPageFetcher(
		scrape.WithFetchTimeout(c.Duration("fetch-timeout")),
		scrape.WithSettleDelay(c.Duration("settle-delay")),
	)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Sources: %d\n", len(sources.Sources))
	fmt.Fprintln(os.Stderr)

	articles, err := store.Ingest(ctx, sources.Sources, fetcher,
		ingestion.WithSourceDelay(c.Duration("source-delay")))
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	if err := ingestion.WriteArticles(c.String("output"), articles); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Stored %d articles, wrote %s\n", len(articles), c.String("output"))
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		// Classification is not needed for search.
		ai.WithClassifierHost(c.String("embedding-host")),
		ai.WithClassifierModel("dummy"),
		ai.WithEmbeddingDimensions(c.Int("dimensions")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	store, err := newsvec.Open(c.String("db"), newsvec.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	matches, err := store.Search(ctx, c.String("query"), c.Int("limit"), c.String("category"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(matches) == 0 {
		fmt.Println("no results")
		return nil
	}

	for i, match := range matches {
		fmt.Printf("%d. [%.4f] %s\n", i+1, match.Distance, match.Metadata.Headline)
		fmt.Printf("   %s | %s\n", match.Metadata.Category, match.Metadata.URL)
	}
	return nil
}

func migrateCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingDimensions(c.Int("dimensions")),
	)

	store, err := newsvec.Open(c.String("db"), newsvec.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	migrated, err := store.Migrate(ctx, migrate.WithProgress(os.Stderr))
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Migrated %d records\n", migrated)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
