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

// Package storage provides the storage abstraction layer for docstore.
//
// This package defines the repository interface that decouples document
// storage from the store's identity and search rules. Two backends are
// provided and can be used interchangeably:
//
//   - storage/badger keeps documents in BadgerDB running in in-memory mode,
//     serialized with MUS.
//   - storage/memory keeps documents in a plain slice.
//
// Neither backend persists anything across process restarts.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//	repo, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repo.Close()
//
//	err = repo.PutDocument(ctx, doc)
//	doc, err = repo.GetDocument(ctx, "a1b2c3d4")
//
// Repositories copy documents on the way in and on the way out, so callers
// never share memory with stored state.
package storage
