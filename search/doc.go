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

// Package search evaluates multi-criteria document searches.
//
// Each populated criterion of a core.SearchRequest becomes a Filter:
//   - author IDs match by membership
//   - content needles match case-insensitively by substring
//   - title prefixes match case-sensitively
//   - a created range matches inclusively on both ends
//
// The Searcher runs every filter over a single repository scan and returns
// the union of their matches. A document appears once even when several
// filters match it. Results follow the repository's scan order.
package search
