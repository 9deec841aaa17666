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

package docstore

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Backend names a repository implementation.
type Backend string

const (
	// BackendBadger keeps documents in BadgerDB running in in-memory mode.
	BackendBadger Backend = "badger"
	// BackendMemory keeps documents in a plain slice.
	BackendMemory Backend = "memory"
)

// Config holds configuration for a Store.
type Config struct {
	// Backend selects the repository implementation.
	// Default: BackendBadger
	Backend Backend

	// ImportWorkers is the worker pool size used by importers created with
	// Store.NewImporter.
	// Default: runtime.NumCPU() / 2, at least 1
	ImportWorkers int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBackend sets the repository implementation.
func WithBackend(backend Backend) ConfigOption {
	return func(c *Config) {
		c.Backend = backend
	}
}

// WithImportWorkers sets the importer pool size.
func WithImportWorkers(workers int) ConfigOption {
	return func(c *Config) {
		c.ImportWorkers = workers
	}
}

// DefaultConfig returns a Config backed by in-memory BadgerDB.
func DefaultConfig() *Config {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	return &Config{
		Backend:       BackendBadger,
		ImportWorkers: workers,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithBackend(BackendMemory),
//	    WithImportWorkers(8),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the backend name in canonical form.
func (c *Config) Normalize() {
	c.Backend = Backend(strings.ToLower(strings.TrimSpace(string(c.Backend))))
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration first.
func (c *Config) Validate() error {
	c.Normalize()

	switch c.Backend {
	case BackendBadger, BackendMemory:
	case "":
		return errors.New("docstore config: Backend is required")
	default:
		return fmt.Errorf("docstore config: unknown Backend %q", c.Backend)
	}
	if c.ImportWorkers < 1 {
		return errors.New("docstore config: ImportWorkers must be at least 1")
	}
	return nil
}
