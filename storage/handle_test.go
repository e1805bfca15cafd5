// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
	"github.com/bitmark-inc/chaindb/storage/mocks"
)

func TestPoolPutGetDelete(t *testing.T) {
	h, pools := openMemory(t)
	defer h.Close()

	key := []byte("key")

	value, err := pools.Alpha.Get(key)
	assert.Nil(t, err, "get missing")
	assert.Nil(t, value, "missing value")

	assert.Nil(t, pools.Alpha.Put(key, []byte("one")), "put")

	value, err = pools.Alpha.Get(key)
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte("one"), value, "value")

	found, err := pools.Alpha.Has(key)
	assert.Nil(t, err, "has")
	assert.True(t, found, "has key")

	// same key in another pool is separate
	found, err = pools.Beta.Has(key)
	assert.Nil(t, err, "has")
	assert.False(t, found, "key leaked into other pool")

	assert.Nil(t, pools.Alpha.Delete(key), "delete")
	assert.Nil(t, pools.Alpha.Delete(key), "delete absent key")

	found, err = pools.Alpha.Has(key)
	assert.Nil(t, err, "has")
	assert.False(t, found, "key still present")
}

func TestPoolAfterClose(t *testing.T) {
	h, pools := openMemory(t)
	assert.Nil(t, h.Close(), "close")
	assert.Nil(t, h.Close(), "second close")

	_, err := pools.Alpha.Get([]byte("k"))
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err, "get after close")
	err = pools.Alpha.Put([]byte("k"), []byte("v"))
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err, "put after close")
}

func TestLastElement(t *testing.T) {
	h, pools := openMemory(t)
	defer h.Close()

	for _, k := range []string{"b", "c", "a"} {
		assert.Nil(t, pools.Alpha.Put([]byte(k), []byte("v"+k)), "put")
	}
	assert.Nil(t, pools.Beta.Put([]byte("z"), []byte("vz")), "put")

	e, found, err := pools.Alpha.LastElement()
	assert.Nil(t, err, "last element")
	assert.True(t, found, "found")
	assert.Equal(t, []byte("c"), e.Key, "key")
	assert.Equal(t, []byte("vc"), e.Value, "value")
}

func TestBatchCommit(t *testing.T) {
	h, pools := openMemory(t)
	defer h.Close()

	assert.Nil(t, pools.Alpha.Put([]byte("old"), []byte("x")), "put")

	b := h.NewBatch()
	b.Put(pools.Alpha, []byte("new"), []byte("y"))
	b.Delete(pools.Alpha, []byte("old"))
	assert.Equal(t, 2, b.Len(), "queued")

	// nothing visible before commit
	found, _ := pools.Alpha.Has([]byte("new"))
	assert.False(t, found, "visible before commit")

	assert.Nil(t, b.Commit(), "commit")
	assert.Equal(t, 0, b.Len(), "reset after commit")

	found, _ = pools.Alpha.Has([]byte("new"))
	assert.True(t, found, "new missing")
	found, _ = pools.Alpha.Has([]byte("old"))
	assert.False(t, found, "old still present")
}

func TestBatchCommitFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failure := errors.New("disk full")
	db := mocks.NewMockDatabase(ctl)
	db.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte{0, 0, 0, 1}, nil).Times(1)
	db.EXPECT().Write(gomock.Any(), gomock.Any()).Return(failure).Times(1)

	h, err := storage.NewHandle("mock", db, storage.Options{Version: 1})
	assert.Nil(t, err, "new handle")

	b := h.NewBatch()
	b.Put(h.Pool('a'), []byte("k"), []byte("v"))
	err = b.Commit()
	assert.Equal(t, failure, errors.Cause(err), "commit error")
	assert.Equal(t, 1, b.Len(), "batch kept after failure")
}

func TestCursorFetch(t *testing.T) {
	h, pools := openMemory(t)
	defer h.Close()

	for _, k := range []string{"k1", "k2", "k3", "k4", "k5"} {
		assert.Nil(t, pools.Alpha.Put([]byte(k), []byte(k)), "put")
	}
	assert.Nil(t, pools.Beta.Put([]byte("k0"), []byte("other")), "put")

	cursor := pools.Alpha.NewFetchCursor()
	data, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(data), "count")
	assert.Equal(t, []byte("k1"), data[0].Key, "first")

	data, err = cursor.Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 3, len(data), "rest")
	assert.Equal(t, []byte("k3"), data[0].Key, "continues after previous")
	assert.Equal(t, []byte("k5"), data[2].Key, "last")

	data, err = pools.Alpha.NewFetchCursor().Seek([]byte("k4")).Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(data), "after seek")

	_, err = cursor.Fetch(0)
	assert.True(t, fault.IsErrInvalid(err), "zero count: %v", err)
}

func TestCursorMap(t *testing.T) {
	h, pools := openMemory(t)
	defer h.Close()

	for _, k := range []string{"x", "y", "z"} {
		assert.Nil(t, pools.Beta.Put([]byte(k), []byte("v")), "put")
	}

	keys := []string{}
	err := pools.Beta.NewFetchCursor().Map(context.Background(), func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, []string{"x", "y", "z"}, keys, "keys in order")

	stop := errors.New("stop")
	n := 0
	err = pools.Beta.NewFetchCursor().Map(context.Background(), func(key []byte, value []byte) error {
		n += 1
		return stop
	})
	assert.Equal(t, stop, err, "callback error")
	assert.Equal(t, 1, n, "stopped after first")
}

func TestCursorMapCancelled(t *testing.T) {
	h, pools := openMemory(t)
	defer h.Close()

	assert.Nil(t, pools.Alpha.Put([]byte("k"), []byte("v")), "put")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := pools.Alpha.NewFetchCursor().Map(ctx, func(key []byte, value []byte) error {
		called = true
		return nil
	})
	assert.True(t, fault.IsErrProcess(err), "cancelled: %v", err)
	assert.False(t, called, "callback ran after cancel")
}
