// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/coins"
	"github.com/bitmark-inc/chaindb/fault"
)

func TestTags(t *testing.T) {
	assert.Equal(t, map[string]string{"c": "Coins", "B": "BestBlock"}, coins.Tags(), "tags")
}

func TestDecode(t *testing.T) {
	db, _, handle := newTestDB(t)
	defer handle.Close()

	txId := hashOf("decode")
	c := sampleCoins(9, 100, coins.NullValue, 300)
	best := hashOf("best")
	err := db.Flush(coins.CacheMap{txId: {Coins: c, Dirty: true}}, best)
	require.Nil(t, err, "flush")

	elements, err := handle.Pool('c').NewFetchCursor().Fetch(10)
	require.Nil(t, err, "fetch coins")
	require.Equal(t, 1, len(elements), "coin records")

	d, err := coins.Decode(append([]byte{'c'}, elements[0].Key...), elements[0].Value)
	require.Nil(t, err, "decode coins")
	record, ok := d.(coins.Record)
	require.True(t, ok, "record type: %T", d)
	assert.Equal(t, txId, record.TxId, "txid")
	assert.Equal(t, c, record.Coins, "coins")

	elements, err = handle.Pool('B').NewFetchCursor().Fetch(10)
	require.Nil(t, err, "fetch best block")
	require.Equal(t, 1, len(elements), "best block records")

	d, err = coins.Decode([]byte{'B'}, elements[0].Value)
	require.Nil(t, err, "decode best block")
	assert.Equal(t, best, d.(chainhash.Hash), "best block")

	_, err = coins.Decode([]byte{'x', 1}, nil)
	assert.Equal(t, fault.ErrKeyNotInRange, errors.Cause(err), "unknown tag")

	_, err = coins.Decode([]byte{'c', 1, 2}, elements[0].Value)
	assert.Equal(t, fault.ErrInvalidHashLength, errors.Cause(err), "short key")

	_, err = coins.Decode([]byte{'B'}, []byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidHashLength, errors.Cause(err), "short best block")
}
