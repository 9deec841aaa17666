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

package search

import (
	"testing"
	"time"

	"github.com/poiesic/docstore/core"
	"github.com/stretchr/testify/assert"
)

func ptr(t time.Time) *time.Time { return &t }

func TestFiltersFor(t *testing.T) {
	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      *core.SearchRequest
		expected []string
	}{
		{"nil request", nil, nil},
		{"empty request", &core.SearchRequest{}, nil},
		{
			name:     "empty lists are present",
			req:      &core.SearchRequest{AuthorIDs: []string{}, ContainsContents: []string{}, TitlePrefixes: []string{}},
			expected: []string{FilterAuthor, FilterContent, FilterTitlePrefix},
		},
		{"only from", &core.SearchRequest{CreatedFrom: &from}, nil},
		{"only to", &core.SearchRequest{CreatedTo: &to}, nil},
		{
			name:     "full range",
			req:      &core.SearchRequest{CreatedFrom: &from, CreatedTo: &to},
			expected: []string{FilterCreated},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, f := range FiltersFor(tt.req) {
				names = append(names, f.Name())
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestAuthorFilter(t *testing.T) {
	doc := &core.Document{Author: &core.Author{ID: "1", Name: "Green"}}

	tests := []struct {
		name     string
		ids      []string
		doc      *core.Document
		expected bool
	}{
		{"member", []string{"2", "1"}, doc, true},
		{"not a member", []string{"2"}, doc, false},
		{"empty list matches nothing", []string{}, doc, false},
		{"match is by id not name", []string{"Green"}, doc, false},
		{"document without author", []string{"1"}, &core.Document{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, newAuthorFilter(tt.ids).Match(tt.doc))
		})
	}
}

func TestContentFilter(t *testing.T) {
	doc := &core.Document{Content: "Life of famous women"}

	tests := []struct {
		name     string
		needles  []string
		doc      *core.Document
		expected bool
	}{
		{"substring", []string{"famous"}, doc, true},
		{"case-insensitive needle", []string{"FAMOUS"}, doc, true},
		{"case-insensitive content", []string{"life"}, doc, true},
		{"any needle", []string{"galaxy", "women"}, doc, true},
		{"no needle matches", []string{"galaxy"}, doc, false},
		{"empty list matches", []string{}, doc, true},
		{"absent content with needles", []string{"x"}, &core.Document{}, false},
		{"absent content with empty list", []string{}, &core.Document{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, newContentFilter(tt.needles).Match(tt.doc))
		})
	}
}

func TestTitlePrefixFilter(t *testing.T) {
	doc := &core.Document{Title: "Poem"}

	tests := []struct {
		name     string
		prefixes []string
		doc      *core.Document
		expected bool
	}{
		{"prefix", []string{"Po"}, doc, true},
		{"whole title", []string{"Poem"}, doc, true},
		{"case-sensitive", []string{"po"}, doc, false},
		{"any prefix", []string{"Bio", "Poe"}, doc, true},
		{"not a prefix", []string{"oem"}, doc, false},
		{"empty list matches", []string{}, doc, true},
		{"absent title matches", []string{"Bio"}, &core.Document{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := titlePrefixFilter{prefixes: tt.prefixes}
			assert.Equal(t, tt.expected, f.Match(tt.doc))
		})
	}
}

func TestCreatedRangeFilter(t *testing.T) {
	from := time.Date(2022, 10, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 10, 11, 0, 0, 0, 0, time.UTC)
	f := createdRangeFilter{from: from, to: to}

	tests := []struct {
		name     string
		created  time.Time
		expected bool
	}{
		{"lower bound inclusive", from, true},
		{"upper bound inclusive", to, true},
		{"inside", from.Add(time.Hour), true},
		{"before", from.Add(-time.Nanosecond), false},
		{"after", to.Add(time.Nanosecond), false},
		{"same instant in another zone", from.In(time.FixedZone("UTC+3", 3*60*60)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Match(&core.Document{Created: tt.created}))
		})
	}
}
