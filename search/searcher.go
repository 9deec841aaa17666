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

package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/storage"
)

// Searcher evaluates search requests against a document repository.
type Searcher struct {
	repository storage.DocumentRepository
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(repository storage.DocumentRepository, opts ...Option) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Searcher{
		repository: repository,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns every document matched by at least one populated criterion
// of req. The result is never nil.
func (s *Searcher) Search(ctx context.Context, req *core.SearchRequest) ([]*core.Document, error) {
	return s.SearchWithMonitor(ctx, req, nil)
}

// SearchWithMonitor is Search with progress callbacks.
func (s *Searcher) SearchWithMonitor(ctx context.Context, req *core.SearchRequest, monitor Monitor) ([]*core.Document, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	filters := FiltersFor(req)
	monitor.Start(req, filters)

	results := []*core.Document{}
	if len(filters) == 0 {
		monitor.Finish(results)
		return results, nil
	}

	seen := make(map[string]struct{})
	err := s.repository.ScanDocuments(ctx, func(doc *core.Document) error {
		if _, ok := seen[doc.ID]; ok {
			return nil
		}
		for _, f := range filters {
			if f.Match(doc) {
				monitor.FilterMatched(f.Name(), doc)
				seen[doc.ID] = struct{}{}
				results = append(results, doc)
				break
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("error scanning documents", "err", err)
		return nil, err
	}

	monitor.Finish(results)
	return results, nil
}
