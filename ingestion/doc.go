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

// Package ingestion loads documents in bulk.
//
// An Importer decodes documents from a JSON array or a newline-delimited
// JSON stream and saves each one through a Saver on a bounded worker pool.
// Documents that fail validation are reported in the Result and do not
// abort the import.
//
// Saves run concurrently, so when one batch holds several documents with the
// same ID the one saved last wins.
package ingestion
