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

package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/docstore/core"
)

// Saver persists a single document and returns the stored version.
type Saver interface {
	Save(ctx context.Context, doc *core.Document) (*core.Document, error)
}

// Failure describes a document that could not be saved.
type Failure struct {
	// Index is the position of the document in the input.
	Index int
	// ID is the document ID at the time of failure, possibly empty.
	ID  string
	Err error
}

// Result summarizes an import.
type Result struct {
	Total    int
	Saved    int
	Failed   int
	Failures []Failure // ordered by Index
}

// Importer saves batches of documents concurrently.
type Importer struct {
	store          Saver
	pool           *ants.Pool
	progress       io.Writer
	reportInterval int
	maxAttempts    int
	retryDelay     time.Duration
	logger         *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithPoolSize sets the worker pool size for concurrent saves.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(i *Importer) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		if i.pool != nil {
			i.pool.Release()
		}
		i.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		i.logger = logger
		return nil
	}
}

// WithProgress writes progress to w every reportInterval documents.
// Progress is off by default.
func WithProgress(w io.Writer, reportInterval int) Option {
	return func(i *Importer) error {
		i.progress = w
		i.reportInterval = reportInterval
		return nil
	}
}

// WithRetry retries failed saves up to maxAttempts times in total, with
// exponential backoff starting at baseDelay. Invalid documents are never
// retried. Default is a single attempt.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(i *Importer) error {
		if maxAttempts < 1 {
			maxAttempts = 1
		}
		i.maxAttempts = maxAttempts
		i.retryDelay = baseDelay
		return nil
	}
}

// NewImporter creates an importer that saves through store.
func NewImporter(store Saver, opts ...Option) (*Importer, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	i := &Importer{
		store:       store,
		pool:        pool,
		maxAttempts: 1,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(i); optErr != nil {
			i.Release()
			return nil, optErr
		}
	}

	return i, nil
}

// Import saves every document and waits for all saves to finish.
// Per-document failures are collected in the Result. The returned error is
// non-nil only when the import could not run to completion, for example
// because ctx was cancelled.
func (i *Importer) Import(ctx context.Context, docs []*core.Document) (*Result, error) {
	result := &Result{Total: len(docs)}

	var tracker *ProgressTracker
	if i.progress != nil {
		tracker = NewProgressTracker(i.progress, len(docs), i.reportInterval)
		tracker.Start()
		defer tracker.Finish()
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	record := func(index int, doc *core.Document, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err == nil {
			result.Saved++
			return
		}
		id := ""
		if doc != nil {
			id = doc.ID
		}
		result.Failed++
		result.Failures = append(result.Failures, Failure{Index: index, ID: id, Err: err})
		i.logger.Warn("document not imported", "index", index, "id", id, "err", err)
	}

	var runErr error
	for index, doc := range docs {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		wg.Add(1)
		err := i.pool.Submit(func() {
			defer wg.Done()
			err := saveWithRetry(ctx, func() error {
				_, err := i.store.Save(ctx, doc)
				return err
			}, i.maxAttempts, i.retryDelay, i.logger)
			record(index, doc, err)
			if tracker != nil {
				tracker.Done()
			}
		})
		if err != nil {
			wg.Done()
			runErr = fmt.Errorf("submitting document %d: %w", index, err)
			break
		}
	}
	wg.Wait()

	sort.Slice(result.Failures, func(a, b int) bool {
		return result.Failures[a].Index < result.Failures[b].Index
	})

	i.logger.Info("import finished",
		"total", result.Total, "saved", result.Saved, "failed", result.Failed)
	return result, runErr
}

// ImportReader decodes documents from r and imports them.
func (i *Importer) ImportReader(ctx context.Context, r io.Reader) (*Result, error) {
	docs, err := DecodeDocuments(r)
	if err != nil {
		return nil, err
	}
	return i.Import(ctx, docs)
}

// ImportFile imports the documents stored in the file at path.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	i.logger.Debug("importing documents", "path", path)
	return i.ImportReader(ctx, f)
}

// Release releases the worker pool.
// The importer should not be used after calling Release.
func (i *Importer) Release() {
	if i.pool != nil {
		i.pool.Release()
	}
}
