// Copyright 2025 Poiesic Systems
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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/docstore"
	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/ingestion"
	"github.com/poiesic/docstore/search"
	"github.com/urfave/cli/v2"
)

func main() {
	// .env must be loaded before flags read their EnvVars
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("error loading .env file: %v", err)
	}

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dataFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "data",
		Aliases:  []string{"d"},
		Usage:    "Path to a JSON or NDJSON file of documents to load",
		Required: true,
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "docstore",
		Usage:     "In-memory document store with multi-criteria search",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "Storage backend (badger, memory)",
				Value:   string(docstore.BackendBadger),
				EnvVars: []string{"DOCSTORE_BACKEND"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Load documents and print the one with the given ID",
				ArgsUsage: "ID",
				Action:    getCommand,
				Flags:     []cli.Flag{dataFlag()},
			},
			{
				Name:   "search",
				Usage:  "Load documents and print those matching any criterion",
				Action: searchCommand,
				Flags: []cli.Flag{
					dataFlag(),
					&cli.StringSliceFlag{
						Name:  "title-prefix",
						Usage: "Match documents whose title starts with `PREFIX` (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "contains",
						Usage: "Match documents whose content contains `TEXT`, ignoring case (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "author",
						Usage: "Match documents by author `ID` (repeatable)",
					},
					&cli.TimestampFlag{
						Name:   "from",
						Usage:  "Start of the created range, RFC 3339",
						Layout: time.RFC3339,
					},
					&cli.TimestampFlag{
						Name:   "to",
						Usage:  "End of the created range, RFC 3339",
						Layout: time.RFC3339,
					},
				},
			},
			{
				Name:   "import",
				Usage:  "Load documents and report how many were stored",
				Action: importCommand,
				Flags: []cli.Flag{
					dataFlag(),
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent savers (0 uses the default)",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N documents (0 disables progress)",
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum save attempts per document",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 100 * time.Millisecond,
					},
				},
			},
			{
				Name:   "demo",
				Usage:  "Save three sample documents and search them by author",
				Action: demoCommand,
			},
		},
	}
}

// openStore creates an empty store for the configured backend.
func openStore(c *cli.Context) (*docstore.Store, error) {
	opts := []docstore.ConfigOption{
		docstore.WithBackend(docstore.Backend(c.String("backend"))),
	}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, docstore.WithImportWorkers(workers))
	}

	store, err := docstore.NewStore(docstore.WithConfig(docstore.NewConfig(opts...)))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}

// loadStore opens a store and imports the --data file into it.
func loadStore(ctx context.Context, c *cli.Context) (*docstore.Store, error) {
	store, err := openStore(c)
	if err != nil {
		return nil, err
	}

	importer, err := store.NewImporter()
	if err != nil {
		store.Close()
		return nil, err
	}
	defer importer.Release()

	result, err := importer.ImportFile(ctx, c.String("data"))
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	if result.Failed > 0 {
		slog.Warn("some documents were skipped", "failed", result.Failed)
	}
	return store, nil
}

func getCommand(c *cli.Context) error {
	ctx := context.Background()

	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("document ID is required")
	}

	store, err := loadStore(ctx, c)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("document %q not found", id)
	}
	return writeJSON(c.App.Writer, doc)
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := loadStore(ctx, c)
	if err != nil {
		return err
	}
	defer store.Close()

	req := &core.SearchRequest{
		CreatedFrom: c.Timestamp("from"),
		CreatedTo:   c.Timestamp("to"),
	}
	if c.IsSet("title-prefix") {
		req.TitlePrefixes = c.StringSlice("title-prefix")
	}
	if c.IsSet("contains") {
		req.ContainsContents = c.StringSlice("contains")
	}
	if c.IsSet("author") {
		req.AuthorIDs = c.StringSlice("author")
	}

	results, err := store.SearchWithMonitor(ctx, req, search.NewLogMonitor(slog.Default()))
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, results)
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	if c.Int("max-retries") <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	opts := []ingestion.Option{
		ingestion.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
	}
	if interval := c.Int("report-interval"); interval > 0 {
		opts = append(opts, ingestion.WithProgress(c.App.ErrWriter, interval))
	}

	importer, err := store.NewImporter(opts...)
	if err != nil {
		return err
	}
	defer importer.Release()

	result, err := importer.ImportFile(ctx, c.String("data"))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Imported %d of %d documents (%d failed), %d stored\n",
		result.Saved, result.Total, result.Failed, count)
	for _, f := range result.Failures {
		fmt.Fprintf(c.App.Writer, "  document %d: %v\n", f.Index, f.Err)
	}
	return nil
}

func demoCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	green := &core.Author{ID: "1", Name: "Green"}
	black := &core.Author{ID: "2", Name: "Black"}
	docs := []*core.Document{
		{
			Title:   "Function",
			Content: "adventures in the galaxy",
			Author:  green,
			Created: time.Now().UTC(),
		},
		{
			Title:   "Poem",
			Content: "creation of famous authors",
			Author:  green,
			Created: time.Date(2022, 10, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:      core.NewDocumentID(),
			Title:   "Biography",
			Content: "Life of famous women",
			Author:  black,
			Created: time.Date(2020, 11, 10, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, doc := range docs {
		if _, err := store.Save(ctx, doc); err != nil {
			return err
		}
	}

	results, err := store.Search(ctx, &core.SearchRequest{AuthorIDs: []string{green.ID, black.ID}})
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, results)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
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
