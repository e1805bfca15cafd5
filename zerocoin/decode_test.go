// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zerocoin_test

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/chaindb/codec"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
	"github.com/bitmark-inc/chaindb/zerocoin"
)

func TestTags(t *testing.T) {
	expected := map[string]string{
		"m": "Mint",
		"s": "Spend",
		"2": "Accumulator",
	}
	assert.Equal(t, expected, zerocoin.Tags(), "tags")
}

// the only record of a pool with its tag restored
func onlyRecord(t *testing.T, handle *storage.Handle, tag byte) ([]byte, []byte) {
	elements, err := handle.Pool(tag).NewFetchCursor().Fetch(10)
	require.Nil(t, err, "fetch: %c", tag)
	require.Equal(t, 1, len(elements), "records: %c", tag)
	return append([]byte{tag}, elements[0].Key...), elements[0].Value
}

func TestDecode(t *testing.T) {
	db, _, handle := newTestDB(t)
	defer handle.Close()

	commitment := big.NewInt(0x1234567)
	serial := big.NewInt(0x7654321)
	mintTx := hashOf("mint tx")
	spendTx := hashOf("spend tx")
	value := new(big.Int).Lsh(big.NewInt(3), 300)

	require.Nil(t, db.WriteMints([]zerocoin.Mint{{Commitment: commitment, TxId: mintTx}}), "mint")
	require.Nil(t, db.WriteSpends([]zerocoin.Spend{{Serial: serial, TxId: spendTx}}), "spend")
	require.Nil(t, db.WriteAccumulatorValue(0xdeadbeef, value), "accumulator")

	key, record := onlyRecord(t, handle, 'm')
	d, err := zerocoin.Decode(key, record)
	require.Nil(t, err, "decode mint")
	assert.Equal(t, zerocoin.TxIdRecord{Hash: codec.HashBig(commitment), TxId: mintTx}, d, "mint")

	key, record = onlyRecord(t, handle, 's')
	d, err = zerocoin.Decode(key, record)
	require.Nil(t, err, "decode spend")
	assert.Equal(t, zerocoin.TxIdRecord{Hash: codec.HashBig(serial), TxId: spendTx}, d, "spend")

	key, record = onlyRecord(t, handle, '2')
	d, err = zerocoin.Decode(key, record)
	require.Nil(t, err, "decode accumulator")
	accumulator, ok := d.(zerocoin.AccumulatorRecord)
	require.True(t, ok, "accumulator type: %T", d)
	assert.Equal(t, uint32(0xdeadbeef), accumulator.Checksum, "checksum")
	assert.Equal(t, 0, value.Cmp(accumulator.Value), "value")

	_, err = zerocoin.Decode(key, record[:len(record)-1])
	assert.True(t, fault.IsErrRecord(err), "truncated accumulator: %s", err)

	_, err = zerocoin.Decode([]byte{'c'}, record)
	assert.Equal(t, fault.ErrKeyNotInRange, errors.Cause(err), "unknown tag")
}
