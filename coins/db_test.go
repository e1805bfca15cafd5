// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins_test

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/coins"
	"github.com/bitmark-inc/chaindb/storage"
)

func TestEmptyDatabase(t *testing.T) {
	db, _, handle := newTestDB(t)
	defer handle.Close()

	best, err := db.BestBlock()
	assert.Nil(t, err, "best block")
	assert.True(t, best.IsZero(), "best block of empty database")

	c, err := db.Get(hashOf("missing"))
	assert.Nil(t, err, "get")
	assert.Nil(t, c, "coins of missing tx")

	found, err := db.Exists(hashOf("missing"))
	assert.Nil(t, err, "exists")
	assert.False(t, found, "missing tx exists")
}

func TestFlush(t *testing.T) {
	db, _, handle := newTestDB(t)
	defer handle.Close()

	txA := hashOf("a")
	txB := hashOf("b")
	txC := hashOf("c")
	best := hashOf("block 1")

	entries := coins.CacheMap{
		txA: {Coins: sampleCoins(1, 10), Dirty: true},
		txB: {Coins: sampleCoins(1, 20, 30), Dirty: true},
		txC: {Coins: sampleCoins(1, 40), Dirty: false},
	}

	err := db.Flush(entries, best)
	assert.Nil(t, err, "flush")
	assert.Equal(t, 0, len(entries), "map drained")

	c, err := db.Get(txB)
	assert.Nil(t, err, "get")
	assert.Equal(t, sampleCoins(1, 20, 30), c, "coins of b")

	found, _ := db.Exists(txC)
	assert.False(t, found, "clean entry written")

	actualBest, _ := db.BestBlock()
	assert.Equal(t, best, actualBest, "best block")

	// prune a, change b, zero best block keeps previous
	entries = coins.CacheMap{
		txA: {Coins: sampleCoins(1, coins.NullValue), Dirty: true},
		txB: {Coins: sampleCoins(1, 20, coins.NullValue), Dirty: true},
	}
	err = db.Flush(entries, chainhash.Hash{})
	assert.Nil(t, err, "second flush")

	found, _ = db.Exists(txA)
	assert.False(t, found, "pruned entry still stored")

	c, _ = db.Get(txB)
	assert.Equal(t, sampleCoins(1, 20, coins.NullValue), c, "coins of b after spend")

	actualBest, _ = db.BestBlock()
	assert.Equal(t, best, actualBest, "best block after zero hash flush")
}

func TestFlushNilEntry(t *testing.T) {
	db, _, handle := newTestDB(t)
	defer handle.Close()

	txA := hashOf("a")
	txB := hashOf("b")
	err := db.Flush(coins.CacheMap{txA: {Coins: sampleCoins(1, 10), Dirty: true}}, hashOf("block 1"))
	require.Nil(t, err, "flush")

	entries := coins.CacheMap{
		txA: nil,
		txB: {Coins: sampleCoins(1, 20), Dirty: true},
	}
	err = db.Flush(entries, hashOf("block 2"))
	assert.Nil(t, err, "flush with nil entry")
	assert.Equal(t, 0, len(entries), "map drained")

	c, _ := db.Get(txA)
	assert.Equal(t, sampleCoins(1, 10), c, "nil entry left stored coins unchanged")
	found, _ := db.Exists(txB)
	assert.True(t, found, "dirty entry written")
}

func TestFlushFailureIsAtomic(t *testing.T) {
	db, database, handle := newTestDB(t)
	defer handle.Close()

	first := hashOf("block 1")
	err := db.Flush(coins.CacheMap{hashOf("a"): {Coins: sampleCoins(1, 10), Dirty: true}}, first)
	require.Nil(t, err, "flush")

	database.fail = true
	entries := coins.CacheMap{
		hashOf("a"): {Coins: sampleCoins(1, coins.NullValue), Dirty: true},
		hashOf("b"): {Coins: sampleCoins(2, 5), Dirty: true},
	}
	err = db.Flush(entries, hashOf("block 2"))
	assert.Equal(t, errWriteFailed, errors.Cause(err), "flush error")
	assert.Equal(t, 0, len(entries), "map drained on failure")

	found, _ := db.Exists(hashOf("a"))
	assert.True(t, found, "erase applied")
	found, _ = db.Exists(hashOf("b"))
	assert.False(t, found, "write applied")
	best, _ := db.BestBlock()
	assert.Equal(t, first, best, "best block changed")
}

func TestFlushSurvivesRestart(t *testing.T) {
	dir := filepath.Join(testingDirName, "restart")
	options := storage.Options{Version: 1, Wipe: true}

	handle, err := storage.Open(dir, options)
	require.Nil(t, err, "open")
	db, err := coins.New(handle)
	require.Nil(t, err, "new")

	tx := hashOf("persistent")
	best := hashOf("block 9")
	err = db.Flush(coins.CacheMap{tx: {Coins: sampleCoins(9, 1, 2, 3), Dirty: true}}, best)
	require.Nil(t, err, "flush")
	require.Nil(t, handle.Close(), "close")

	options.Wipe = false
	handle, err = storage.Open(dir, options)
	require.Nil(t, err, "reopen")
	defer handle.Close()
	db, err = coins.New(handle)
	require.Nil(t, err, "new")

	c, err := db.Get(tx)
	assert.Nil(t, err, "get")
	assert.Equal(t, sampleCoins(9, 1, 2, 3), c, "coins after restart")

	actualBest, err := db.BestBlock()
	assert.Nil(t, err, "best block")
	assert.Equal(t, best, actualBest, "best block after restart")
}

func TestNewWithoutHandle(t *testing.T) {
	_, err := coins.New(nil)
	assert.NotNil(t, err, "nil handle")
}
