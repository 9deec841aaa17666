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

// Package memory provides a slice-backed storage.DocumentRepository.
//
// Documents are kept in insertion order. Replacing a document moves it to
// the end of the order, so scans return the most recently saved version last.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/poiesic/docstore/core"
	"github.com/poiesic/docstore/storage"
)

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// DocumentRepository is an in-memory implementation of storage.DocumentRepository.
type DocumentRepository struct {
	mu        sync.RWMutex
	documents []*core.Document
	closed    bool
}

// NewDocumentRepository creates an empty in-memory repository.
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// PutDocument stores a copy of doc, replacing any document with the same ID.
func (r *DocumentRepository) PutDocument(ctx context.Context, doc *core.Document) error {
	if doc == nil || doc.ID == "" {
		return storage.ErrMissingID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return storage.ErrStorageClosed
	}

	r.documents = slices.DeleteFunc(r.documents, func(existing *core.Document) bool {
		return existing.ID == doc.ID
	})
	stored := doc.Clone()
	// Persisted times carry no monotonic reading
	stored.Created = stored.Created.Round(0)
	r.documents = append(r.documents, stored)
	return nil
}

// GetDocument returns a copy of the document with the given ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, id string) (*core.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, storage.ErrStorageClosed
	}

	for _, doc := range r.documents {
		if doc.ID == id {
			return doc.Clone(), nil
		}
	}
	return nil, storage.ErrNotFound
}

// ScanDocuments calls fn with a copy of every document in insertion order.
// The read lock is held for the duration of the scan, so fn must not write
// to the repository.
func (r *DocumentRepository) ScanDocuments(ctx context.Context, fn func(*core.Document) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return storage.ErrStorageClosed
	}

	for _, doc := range r.documents {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(doc.Clone()); err != nil {
			return err
		}
	}
	return nil
}

// CountDocuments returns the number of stored documents.
func (r *DocumentRepository) CountDocuments(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return 0, storage.ErrStorageClosed
	}
	return len(r.documents), nil
}

// Close drops all documents. Further calls fail with storage.ErrStorageClosed.
func (r *DocumentRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.documents = nil
	return nil
}
