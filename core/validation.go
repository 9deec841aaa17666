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
	"fmt"
)

// ValidateDocument checks that a Document can be saved.
// Returns an error wrapping ErrInvalidArgument if the document is nil
// or has no Author. Nothing else is validated.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, ErrNilDocument)
	}

	if doc.Author == nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, ErrMissingAuthor)
	}

	return nil
}
