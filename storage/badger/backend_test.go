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

import (
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend(nil)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
	assert.NotNil(t, backend.logger)
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend(nil)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestWithTx(t *testing.T) {
	backend, err := OpenBackend(nil)
	require.NoError(t, err)
	defer backend.Close()

	t.Run("committed write is visible", func(t *testing.T) {
		err := backend.WithTx(func(tx *badger.Txn) error {
			if err := tx.Set([]byte("k1"), []byte("v1")); err != nil {
				return err
			}
			return tx.Commit()
		}, true)
		require.NoError(t, err)

		var value []byte
		err = backend.WithTx(func(tx *badger.Txn) error {
			item, err := tx.Get([]byte("k1"))
			if err != nil {
				return err
			}
			value, err = item.ValueCopy(nil)
			return err
		}, false)
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), value)
	})

	t.Run("uncommitted write is discarded", func(t *testing.T) {
		err := backend.WithTx(func(tx *badger.Txn) error {
			return tx.Set([]byte("k2"), []byte("v2"))
		}, true)
		require.NoError(t, err)

		err = backend.WithTx(func(tx *badger.Txn) error {
			_, err := tx.Get([]byte("k2"))
			return err
		}, false)
		assert.True(t, errors.Is(err, badger.ErrKeyNotFound))
	})

	t.Run("failed transaction", func(t *testing.T) {
		testErr := assert.AnError
		err := backend.WithTx(func(tx *badger.Txn) error {
			return testErr
		}, false)
		assert.Equal(t, testErr, err)
	})
}

func TestDocumentKeys(t *testing.T) {
	key := makeDocumentKey("a1b2c3d4")
	assert.Equal(t, []byte("docrec:a1b2c3d4"), key)
	assert.Equal(t, "a1b2c3d4", documentIDFromKey(key))
	assert.Equal(t, "", documentIDFromKey(makeDocumentKey("")))
}
