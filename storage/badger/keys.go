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

const (
	documentPrefix = "docrec:"
)

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id string) []byte {
	buf := make([]byte, len(documentPrefix)+len(id))
	offset := copy(buf, documentPrefix)
	copy(buf[offset:], id)
	return buf
}

// documentIDFromKey strips the document prefix from a key.
func documentIDFromKey(key []byte) string {
	return string(key[len(documentPrefix):])
}
