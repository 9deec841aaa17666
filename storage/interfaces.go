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

package storage

import (
	"context"

	"github.com/poiesic/docstore/core"
)

// DocumentRepository stores documents keyed by ID.
type DocumentRepository interface {
	// PutDocument inserts a document, replacing any stored document with the same ID.
	// The document must have a non-empty ID (ErrMissingID otherwise).
	PutDocument(ctx context.Context, doc *core.Document) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id string) (*core.Document, error)

	// ScanDocuments calls fn for every stored document.
	// Iteration stops on the first error returned by fn, which is passed through.
	// Order is backend specific but stable between calls without writes.
	ScanDocuments(ctx context.Context, fn func(*core.Document) error) error

	// CountDocuments returns the number of stored documents.
	CountDocuments(ctx context.Context) (int, error)

	// Close releases the repository's resources.
	Close() error
}
