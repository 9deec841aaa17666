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
	"strings"
	"time"

	"github.com/poiesic/docstore/core"
)

// Filter is a predicate over documents built from one search criterion.
type Filter interface {
	// Name identifies the criterion in logs and monitor callbacks.
	Name() string
	Match(doc *core.Document) bool
}

// Filter names reported to monitors.
const (
	FilterAuthor      = "author"
	FilterContent     = "content"
	FilterTitlePrefix = "title-prefix"
	FilterCreated     = "created"
)

// FiltersFor builds one filter per populated criterion of req.
// Absent criteria contribute no filter. A nil request yields no filters.
func FiltersFor(req *core.SearchRequest) []Filter {
	if req == nil || req.IsEmpty() {
		return nil
	}

	var filters []Filter
	if req.AuthorIDs != nil {
		filters = append(filters, newAuthorFilter(req.AuthorIDs))
	}
	if req.ContainsContents != nil {
		filters = append(filters, newContentFilter(req.ContainsContents))
	}
	if req.TitlePrefixes != nil {
		filters = append(filters, titlePrefixFilter{prefixes: req.TitlePrefixes})
	}
	if req.HasCreatedRange() {
		filters = append(filters, createdRangeFilter{from: *req.CreatedFrom, to: *req.CreatedTo})
	}
	return filters
}

// authorFilter matches documents whose author ID is in the set.
// An empty set matches nothing.
type authorFilter struct {
	ids map[string]struct{}
}

func newAuthorFilter(ids []string) authorFilter {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return authorFilter{ids: set}
}

func (f authorFilter) Name() string { return FilterAuthor }

func (f authorFilter) Match(doc *core.Document) bool {
	if doc.Author == nil {
		return false
	}
	_, ok := f.ids[doc.Author.ID]
	return ok
}

// contentFilter matches documents whose content contains any of the needles,
// ignoring case. An empty needle list matches every document, including
// documents without content.
type contentFilter struct {
	needles []string
}

func newContentFilter(needles []string) contentFilter {
	lowered := make([]string, len(needles))
	for i, n := range needles {
		lowered[i] = strings.ToLower(n)
	}
	return contentFilter{needles: lowered}
}

func (f contentFilter) Name() string { return FilterContent }

func (f contentFilter) Match(doc *core.Document) bool {
	if len(f.needles) == 0 {
		return true
	}
	if doc.Content == "" {
		return false
	}

	content := strings.ToLower(doc.Content)
	for _, needle := range f.needles {
		if strings.Contains(content, needle) {
			return true
		}
	}
	return false
}

// titlePrefixFilter matches documents whose title starts with any of the
// prefixes, case-sensitively. Documents without a title match, as does every
// document when the prefix list is empty.
type titlePrefixFilter struct {
	prefixes []string
}

func (f titlePrefixFilter) Name() string { return FilterTitlePrefix }

func (f titlePrefixFilter) Match(doc *core.Document) bool {
	if doc.Title == "" || len(f.prefixes) == 0 {
		return true
	}
	for _, prefix := range f.prefixes {
		if strings.HasPrefix(doc.Title, prefix) {
			return true
		}
	}
	return false
}

// createdRangeFilter matches documents created within [from, to].
type createdRangeFilter struct {
	from, to time.Time
}

func (f createdRangeFilter) Name() string { return FilterCreated }

func (f createdRangeFilter) Match(doc *core.Document) bool {
	return !doc.Created.Before(f.from) && !doc.Created.After(f.to)
}
