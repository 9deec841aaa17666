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

package badger

import "log/slog"

// NewMemoryRepository opens a private in-memory backend and returns a
// repository that owns it. Closing the repository closes the backend.
func NewMemoryRepository() (*DocumentRepository, error) {
	return NewMemoryRepositoryWithLogger(nil)
}

// NewMemoryRepositoryWithLogger is NewMemoryRepository with a custom logger
// for BadgerDB's internal messages.
func NewMemoryRepositoryWithLogger(logger *slog.Logger) (*DocumentRepository, error) {
	backend, err := OpenBackend(logger)
	if err != nil {
		return nil, err
	}

	repo := NewDocumentRepository(backend)
	repo.ownsBackend = true
	return repo, nil
}
