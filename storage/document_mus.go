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
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/docstore/core"
)

// Location kinds recorded alongside a Created timestamp.
const (
	zoneUTC int64 = iota
	zoneLocal
	zoneFixed
)

// DocumentMUS is the MUS serializer for core.Document.
var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v core.Document, bs []byte) (n int) {
	n = ord.String.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Content, bs[n:])
	n += ord.Bool.Marshal(v.Author != nil, bs[n:])
	if v.Author != nil {
		n += ord.String.Marshal(v.Author.ID, bs[n:])
		n += ord.String.Marshal(v.Author.Name, bs[n:])
	}
	return n + CreatedMUS.Marshal(v.Created, bs[n:])
}

func (s documentMUS) Unmarshal(bs []byte) (v core.Document, n int, err error) {
	v.ID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var hasAuthor bool
	hasAuthor, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if hasAuthor {
		author := &core.Author{}
		author.ID, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		author.Name, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		v.Author = author
	}
	v.Created, n1, err = CreatedMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v core.Document) (size int) {
	size = ord.String.Size(v.ID)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Content)
	size += ord.Bool.Size(v.Author != nil)
	if v.Author != nil {
		size += ord.String.Size(v.Author.ID)
		size += ord.String.Size(v.Author.Name)
	}
	return size + CreatedMUS.Size(v.Created)
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

// CreatedMUS serializes a time.Time as unix seconds and nanoseconds
// followed by its location. UTC and Local are restored as themselves; any
// other location comes back as a fixed zone with the same name and offset.
// The monotonic clock reading is not stored.
var CreatedMUS = createdMUS{}

type createdMUS struct{}

func (s createdMUS) Marshal(v time.Time, bs []byte) (n int) {
	kind, name, offset := zoneOf(v)
	n = varint.Int64.Marshal(v.Unix(), bs)
	n += varint.Int64.Marshal(int64(v.Nanosecond()), bs[n:])
	n += varint.Int64.Marshal(kind, bs[n:])
	if kind == zoneFixed {
		n += ord.String.Marshal(name, bs[n:])
		n += varint.Int64.Marshal(int64(offset), bs[n:])
	}
	return n
}

func (s createdMUS) Unmarshal(bs []byte) (v time.Time, n int, err error) {
	sec, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	nsec, n1, err := varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	kind, n1, err := varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if nsec < 0 || nsec >= int64(time.Second) {
		err = fmt.Errorf("nanoseconds out of range: %d", nsec)
		return
	}

	t := time.Unix(sec, nsec)
	switch kind {
	case zoneUTC:
		v = t.UTC()
	case zoneLocal:
		v = t.In(time.Local)
	case zoneFixed:
		var (
			name   string
			offset int64
		)
		name, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		offset, n1, err = varint.Int64.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		v = t.In(time.FixedZone(name, int(offset)))
	default:
		err = fmt.Errorf("unknown zone kind %d", kind)
	}
	return
}

func (s createdMUS) Size(v time.Time) (size int) {
	kind, name, offset := zoneOf(v)
	size = varint.Int64.Size(v.Unix())
	size += varint.Int64.Size(int64(v.Nanosecond()))
	size += varint.Int64.Size(kind)
	if kind == zoneFixed {
		size += ord.String.Size(name)
		size += varint.Int64.Size(int64(offset))
	}
	return size
}

func (s createdMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

func zoneOf(t time.Time) (kind int64, name string, offset int) {
	switch t.Location() {
	case time.UTC:
		return zoneUTC, "", 0
	case time.Local:
		return zoneLocal, "", 0
	}
	name, offset = t.Zone()
	return zoneFixed, name, offset
}
