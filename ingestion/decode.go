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

package ingestion

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/poiesic/docstore/core"
)

// DecodeDocuments reads documents from r. The input is either a single JSON
// array of documents or a sequence of JSON documents, typically one per line.
// A leading UTF-8 byte order mark is ignored. Empty input yields an empty
// slice.
func DecodeDocuments(r io.Reader) ([]*core.Document, error) {
	br := bufio.NewReader(r)
	if err := skipBOM(br); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	first, err := peekNonSpace(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []*core.Document{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}

	decoder := json.NewDecoder(br)
	if first == '[' {
		var docs []*core.Document
		if err := decoder.Decode(&docs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
		}
		if docs == nil {
			docs = []*core.Document{}
		}
		return docs, nil
	}

	docs := []*core.Document{}
	for line := 1; ; line++ {
		var doc core.Document
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrDecodeFailed, line, err)
		}
		docs = append(docs, &doc)
	}
	return docs, nil
}

// peekNonSpace skips leading whitespace and returns the next byte without
// consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(rune(b[0])) {
			return b[0], nil
		}
		if _, err := br.ReadByte(); err != nil {
			return 0, err
		}
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func skipBOM(br *bufio.Reader) error {
	b, err := br.Peek(len(utf8BOM))
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if bytes.Equal(b, utf8BOM) {
		_, err = br.Discard(len(utf8BOM))
		return err
	}
	return nil
}
