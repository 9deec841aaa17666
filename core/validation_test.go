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
	"errors"
	"testing"
	"time"
)

func TestValidateDocument(t *testing.T) {
	created := time.Now().Add(-1 * time.Hour)

	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc: &Document{
				ID:      "doc-1",
				Title:   "Biography",
				Content: "Life of famous women",
				Author:  &Author{ID: "2", Name: "Black"},
				Created: created,
			},
			wantErr: nil,
		},
		{
			name: "valid document without id",
			doc: &Document{
				Title:  "Function",
				Author: &Author{ID: "1", Name: "Green"},
			},
			wantErr: nil,
		},
		{
			name: "valid document with only an author",
			doc: &Document{
				Author: &Author{},
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrNilDocument,
		},
		{
			name: "missing author",
			doc: &Document{
				ID:    "doc-1",
				Title: "Orphan",
			},
			wantErr: ErrMissingAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateDocument() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ValidateDocument() error = %v, want it to wrap %v", err, ErrInvalidArgument)
			}
		})
	}
}
