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

package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/ingestion"
	"github.com/poiesic/docstore/search"
	"github.com/poiesic/docstore/storage"
	"github.com/poiesic/docstore/storage/badger"
	"github.com/poiesic/docstore/storage/memory"
)

// Store keeps documents and answers lookups and searches over them.
// It is safe for concurrent use. Saves are exclusive, reads are shared.
type Store struct {
	mu         sync.RWMutex
	repository storage.DocumentRepository
	searcher   *search.Searcher
	config     *Config
	logger     *slog.Logger
}

var _ ingestion.Saver = (*Store)(nil)

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	config     *Config
	repository storage.DocumentRepository
	logger     *slog.Logger
}

// WithConfig sets the store configuration.
// Default is DefaultConfig().
func WithConfig(cfg *Config) Option {
	return func(o *storeOptions) {
		o.config = cfg
	}
}

// WithRepository makes the store use repo instead of opening the configured
// backend. The store takes ownership and closes repo on Close.
func WithRepository(repo storage.DocumentRepository) Option {
	return func(o *storeOptions) {
		o.repository = repo
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *storeOptions) {
		o.logger = logger
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) (*Store, error) {
	options := &storeOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.config == nil {
		options.config = DefaultConfig()
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	if err := options.config.Validate(); err != nil {
		return nil, err
	}

	repo := options.repository
	if repo == nil {
		var err error
		repo, err = openRepository(options.config.Backend, options.logger)
		if err != nil {
			return nil, err
		}
	}

	searcher, err := search.NewSearcher(repo, search.WithLogger(options.logger))
	if err != nil {
		repo.Close()
		return nil, err
	}

	return &Store{
		repository: repo,
		searcher:   searcher,
		config:     options.config,
		logger:     options.logger,
	}, nil
}

func openRepository(backend Backend, logger *slog.Logger) (storage.DocumentRepository, error) {
	switch backend {
	case BackendMemory:
		return memory.NewDocumentRepository(), nil
	case BackendBadger:
		return badger.NewMemoryRepositoryWithLogger(logger)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// Save validates doc and stores it, replacing any document with the same ID.
//
// A document without an ID is given a generated one, which is written to doc
// after the document has been stored. Save returns the stored document as
// read back from the repository. Validation failures wrap
// core.ErrInvalidArgument.
func (s *Store) Save(ctx context.Context, doc *core.Document) (*core.Document, error) {
	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := doc.ID
	record := doc
	if id == "" {
		id = core.NewDocumentID()
		record = doc.Clone()
		record.ID = id
	}

	if err := s.repository.PutDocument(ctx, record); err != nil {
		s.logger.Error("error storing document", "id", id, "err", err)
		return nil, fmt.Errorf("saving document %s: %w", id, err)
	}
	// The caller only sees a generated ID once the document is stored
	doc.ID = id

	stored, err := s.repository.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error("saved document is missing", "id", id)
			return nil, fmt.Errorf("%w: %w: %s", core.ErrInternal, core.ErrDocumentNotStored, id)
		}
		return nil, fmt.Errorf("reading back document %s: %w", id, err)
	}

	s.logger.Debug("document saved", "id", stored.ID)
	return stored, nil
}

// Search returns every document matching at least one populated criterion
// of req, without duplicates. A nil or empty request yields an empty slice.
func (s *Store) Search(ctx context.Context, req *core.SearchRequest) ([]*core.Document, error) {
	return s.SearchWithMonitor(ctx, req, nil)
}

// SearchWithMonitor is Search with progress callbacks.
func (s *Store) SearchWithMonitor(ctx context.Context, req *core.SearchRequest, monitor search.Monitor) ([]*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searcher.SearchWithMonitor(ctx, req, monitor)
}

// FindByID returns the document with the given ID, or nil when there is none.
func (s *Store) FindByID(ctx context.Context, id string) (*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.repository.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repository.CountDocuments(ctx)
}

// Close releases the repository. Stored documents are discarded.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repository.Close(); err != nil {
		s.logger.Error("error closing repository", "err", err)
		return err
	}
	return nil
}

// NewImporter creates an importer that saves into this store. The pool
// size defaults to Config.ImportWorkers. The caller must Release it.
func (s *Store) NewImporter(opts ...ingestion.Option) (*ingestion.Importer, error) {
	defaults := []ingestion.Option{
		ingestion.WithPoolSize(s.config.ImportWorkers),
		ingestion.WithLogger(s.logger),
	}
	return ingestion.NewImporter(s, append(defaults, opts...)...)
}
