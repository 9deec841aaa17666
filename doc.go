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

// Package docstore is an in-memory document store.
//
// A Store accepts documents through Save, which validates them, assigns an
// identifier when none is set and replaces any document with the same ID.
// Documents are looked up with FindByID and queried with Search, which
// returns the union of the documents matched by each populated criterion of
// a core.SearchRequest.
//
// Example:
//
//	store, err := docstore.NewStore()
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	saved, err := store.Save(ctx, &core.Document{
//		Title:  "Poem",
//		Author: &core.Author{ID: "1", Name: "Green"},
//	})
//
// Nothing is written to disk. All documents are discarded on Close.
package docstore
