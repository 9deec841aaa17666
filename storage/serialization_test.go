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
	"testing"
	"time"

	"github.com/poiesic/docstore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalDocument(t *testing.T) {
	original := &core.Document{
		ID:      "a1b2c3d4",
		Title:   "Biography",
		Content: "Life of famous women 世界",
		Author:  &core.Author{ID: "2", Name: "Black"},
		Created: time.Date(2020, 11, 10, 0, 0, 0, 0, time.UTC),
	}

	data, err := MarshalDocument(original)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestUnmarshalDocument_PreservesZone(t *testing.T) {
	tests := []struct {
		name string
		loc  *time.Location
	}{
		{"utc", time.UTC},
		{"local", time.Local},
		{"named fixed zone", time.FixedZone("UTC+3", 3*60*60)},
		{"unnamed fixed zone", time.FixedZone("", -(9*60*60 + 30*60))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := time.Date(2022, 10, 10, 3, 0, 0, 500, tt.loc)

			data, err := MarshalDocument(&core.Document{
				ID:      "tz",
				Author:  &core.Author{ID: "1"},
				Created: created,
			})
			require.NoError(t, err)

			decoded, err := UnmarshalDocument(data)
			require.NoError(t, err)
			assert.Equal(t, created, decoded.Created)
			name, offset := decoded.Created.Zone()
			wantName, wantOffset := created.Zone()
			assert.Equal(t, wantName, name)
			assert.Equal(t, wantOffset, offset)
		})
	}
}

func TestUnmarshalDocument_NilAuthor(t *testing.T) {
	original := &core.Document{ID: "anon", Title: "Untitled"}

	data, err := MarshalDocument(original)
	require.NoError(t, err)

	decoded, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestUnmarshalDocument_ZeroCreated(t *testing.T) {
	data, err := MarshalDocument(&core.Document{ID: "zero", Author: &core.Author{ID: "1"}})
	require.NoError(t, err)

	decoded, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.True(t, decoded.Created.IsZero())
	assert.Equal(t, time.Time{}, decoded.Created)
}

func TestMarshalDocument_Nil(t *testing.T) {
	_, err := MarshalDocument(nil)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestUnmarshalDocument_Invalid(t *testing.T) {
	valid, err := MarshalDocument(&core.Document{ID: "a1b2c3d4", Author: &core.Author{ID: "1"}})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"unterminated length", []byte{0xc1, 0xc1, 0xc1}},
		{"length past end", []byte{0xa3, 'a', 'b', 'c'}},
		{"truncated document", valid[:len(valid)-1]},
		{"trailing bytes", append(append([]byte{}, valid...), 0x00)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalDocument(tt.data)
			assert.ErrorIs(t, err, ErrSerializationFailed)
		})
	}
}
