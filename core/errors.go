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

import "errors"

// Error kinds surfaced by the document store.
var (
	// ErrInvalidArgument indicates the caller passed a value the store cannot accept.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInternal indicates a broken store invariant.
	ErrInternal = errors.New("internal error")
)

// Domain validation errors
var (
	// ErrNilDocument indicates Save was called without a document.
	ErrNilDocument = errors.New("the document cannot be empty")

	// ErrMissingAuthor indicates the document has no Author.
	ErrMissingAuthor = errors.New("the document must contain the author")

	// ErrDocumentNotStored indicates a saved document could not be read back.
	ErrDocumentNotStored = errors.New("the document was not created")
)
