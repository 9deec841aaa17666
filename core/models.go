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

package core

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// DocumentIDLength is the length of identifiers generated by NewDocumentID.
const DocumentIDLength = 8

// IDFromContent derives a short hex identifier from text using BLAKE2b hashing.
// Identical text produces identical IDs.
func IDFromContent(text string) string {
	h, _ := blake2b.New(DocumentIDLength/2, nil) // 4 bytes = 8 hex chars
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// NewDocumentID returns a fresh identifier derived from a random UUID.
// Collisions are unlikely but not ruled out.
func NewDocumentID() string {
	return IDFromContent(uuid.NewString())
}

// Author identifies who wrote a Document.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Document is the record kept by the store.
// An empty ID means the store has not assigned one yet.
// Empty Title or Content means the field is absent.
type Document struct {
	ID      string    `json:"id,omitempty"`
	Title   string    `json:"title,omitempty"`
	Content string    `json:"content,omitempty"`
	Author  *Author   `json:"author,omitempty"`
	Created time.Time `json:"created"` // Caller supplied, never touched by the store
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := *d
	if d.Author != nil {
		author := *d.Author
		clone.Author = &author
	}
	return &clone
}

// AuthorID returns the author's ID, or "" when the document has no author.
func (d *Document) AuthorID() string {
	if d.Author == nil {
		return ""
	}
	return d.Author.ID
}

// SearchRequest holds independent, optional search criteria.
//
// A nil slice means the criterion is absent. A non-nil empty slice is a
// present but empty list, which is treated differently (see package search).
// The created range only applies when both bounds are set.
type SearchRequest struct {
	TitlePrefixes    []string
	ContainsContents []string
	AuthorIDs        []string
	CreatedFrom      *time.Time
	CreatedTo        *time.Time
}

// HasCreatedRange reports whether both created bounds are set.
func (r *SearchRequest) HasCreatedRange() bool {
	return r.CreatedFrom != nil && r.CreatedTo != nil
}

// IsEmpty reports whether no criterion would contribute to a search.
func (r *SearchRequest) IsEmpty() bool {
	return r.TitlePrefixes == nil &&
		r.ContainsContents == nil &&
		r.AuthorIDs == nil &&
		!r.HasCreatedRange()
}
