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
	"log/slog"

	"github.com/poiesic/docstore/core"
)

// Monitor receives callbacks while a search runs.
type Monitor interface {
	Start(req *core.SearchRequest, filters []Filter)
	FilterMatched(filter string, doc *core.Document)
	Finish(results []*core.Document)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.SearchRequest, _ []Filter)  {}
func (n *noopMonitor) FilterMatched(_ string, _ *core.Document) {}
func (n *noopMonitor) Finish(_ []*core.Document)                {}

// LogMonitor writes search progress to a logger at debug level.
type LogMonitor struct {
	logger *slog.Logger
}

var _ Monitor = (*LogMonitor)(nil)

// NewLogMonitor creates a LogMonitor. A nil logger uses slog.Default().
func NewLogMonitor(logger *slog.Logger) *LogMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMonitor{logger: logger}
}

func (m *LogMonitor) Start(_ *core.SearchRequest, filters []Filter) {
	names := make([]string, len(filters))
	for i, f := range filters {
		names[i] = f.Name()
	}
	m.logger.Debug("search started", "filters", names)
}

func (m *LogMonitor) FilterMatched(filter string, doc *core.Document) {
	m.logger.Debug("filter matched", "filter", filter, "id", doc.ID, "author", doc.AuthorID())
}

func (m *LogMonitor) Finish(results []*core.Document) {
	m.logger.Debug("search finished", "results", len(results))
}
