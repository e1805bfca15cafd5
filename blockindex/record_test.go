// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockindex_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chaindb/blockindex"
	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
	"github.com/bitmark-inc/chaindb/coins"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/zerocoin"
)

func TestDiskBlockIndexPackUnpack(t *testing.T) {
	d := sampleRecord(chainhash.Sum([]byte("block")), 1234)
	d.Prev = chainhash.Sum([]byte("prev"))
	d.Flags = blockindex.FlagProofOfStake | blockindex.FlagStakeModifier
	d.StakeModifier = 0xfedcba9876543210
	d.StakeTime = 1500000123
	d.PrevoutStake = coins.OutPoint{TxId: chainhash.Sum([]byte("stake")), Index: 1}
	d.ProofOfStakeHash = chainhash.Sum([]byte("pos"))
	d.AccumulatorCheckpoint = chainhash.Sum([]byte("checkpoint"))

	actual, err := blockindex.UnpackDiskBlockIndex(d.Hash, d.Pack())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, d, actual, "round trip")
	assert.True(t, actual.IsProofOfStake(), "proof of stake")
}

// the fields shared by every record version
func writeBaseFields(w *codec.Writer, prev chainhash.Hash) {
	w.Hash(prev)
	w.Hash(chainhash.Hash{})
	for i := 0; i < 6; i += 1 {
		w.Uint32(uint32(i)) // height ... txCount
	}
	w.Int32(1)
	w.Hash(chainhash.Hash{})
	w.Uint32(1400000000)
	w.Uint32(0x1e0fffff)
	w.Uint32(42)
	w.Int64(0)
	w.Int64(0)
	w.Uint32(0)
	w.Varint(0)
	w.Uint32(0)
	w.Hash(chainhash.Hash{})
	w.Uint32(0)
	w.Hash(chainhash.Hash{})
}

// a version 1 record has no zerocoin fields
func TestUnpackVersionOne(t *testing.T) {
	w := codec.NewWriter()
	prev := chainhash.Sum([]byte("prev"))
	writeBaseFields(w, prev)

	hash := chainhash.Sum([]byte("old block"))
	d, err := blockindex.UnpackDiskBlockIndex(hash, w.Record(1))
	assert.Nil(t, err, "unpack")
	assert.Equal(t, hash, d.Hash, "hash from key")
	assert.Equal(t, prev, d.Prev, "prev")
	assert.Equal(t, uint32(5), d.TxCount, "tx count")
	assert.Equal(t, uint32(42), d.Nonce, "nonce")
	assert.True(t, d.IsProofOfWork(), "proof of work")
	assert.True(t, d.AccumulatorCheckpoint.IsZero(), "checkpoint")
	assert.Nil(t, d.ZerocoinSupply, "supply")

	// the same payload claiming version 2 is short
	_, err = blockindex.UnpackDiskBlockIndex(hash, w.Record(2))
	assert.True(t, fault.IsErrDeserialize(err), "missing v2 fields: %v", err)

	_, err = blockindex.UnpackDiskBlockIndex(hash, w.Record(3))
	assert.Equal(t, fault.ErrRecordVersion, errors.Cause(err), "future version")
}

func TestPackSkipsInvalidDenominations(t *testing.T) {
	d := sampleRecord(chainhash.Sum([]byte("block")), 5)
	d.ZerocoinSupply[zerocoin.Denomination(2)] = 7
	d.MintDenominations = append(d.MintDenominations, zerocoin.Denomination(3))

	actual, err := blockindex.UnpackDiskBlockIndex(d.Hash, d.Pack())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, map[zerocoin.Denomination]int64{
		zerocoin.DenominationOne:  3,
		zerocoin.DenominationFive: 1,
	}, actual.ZerocoinSupply, "supply")
	assert.Equal(t, []zerocoin.Denomination{zerocoin.DenominationOne}, actual.MintDenominations, "mints")
	assert.Equal(t, fault.ErrInvalidDenomination, errors.Cause(d.Validate()), "validate")
}

func TestUnpackRejectsBadDenominations(t *testing.T) {
	hash := chainhash.Sum([]byte("bad block"))

	items := []struct {
		supply [][2]int64
		mints  []int64
	}{
		{supply: [][2]int64{{2, 7}}},
		{supply: [][2]int64{{0, 1}}},
		{supply: [][2]int64{{5, 1}, {5, 2}}},
		{mints: []int64{1, 3}},
	}

	for i, item := range items {
		w := codec.NewWriter()
		writeBaseFields(w, chainhash.Sum([]byte("prev")))
		w.Hash(chainhash.Hash{})
		w.Varint(uint64(len(item.supply)))
		for _, s := range item.supply {
			w.Int64(s[0])
			w.Int64(s[1])
		}
		w.Varint(uint64(len(item.mints)))
		for _, m := range item.mints {
			w.Int64(m)
		}

		_, err := blockindex.UnpackDiskBlockIndex(hash, w.Record(2))
		assert.Equal(t, fault.ErrRecordValueOutOfRange, errors.Cause(err), "%d: unpack", i)
		assert.True(t, fault.IsErrDeserialize(err), "%d: deserialize class", i)
	}
}

func TestFileInfo(t *testing.T) {
	f := &blockindex.FileInfo{}
	f.AddBlock(10, 1000)
	f.AddBlock(8, 1200)
	f.AddBlock(12, 900)
	f.Size = 4096

	assert.Equal(t, uint32(3), f.Blocks, "blocks")
	assert.Equal(t, uint32(8), f.HeightFirst, "height first")
	assert.Equal(t, uint32(12), f.HeightLast, "height last")
	assert.Equal(t, uint64(900), f.TimeFirst, "time first")
	assert.Equal(t, uint64(1200), f.TimeLast, "time last")
	assert.Equal(t, "FileInfo(blocks=3, size=4096, heights=8...12, times=900...1200)", f.String(), "string")

	actual, err := blockindex.UnpackFileInfo(f.Pack())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, f, actual, "round trip")

	_, err = blockindex.UnpackFileInfo(f.Pack()[:4])
	assert.True(t, fault.IsErrDeserialize(err), "truncated: %v", err)
}

func TestTxPosition(t *testing.T) {
	p := &blockindex.TxPosition{File: 3, BlockPos: 65536, TxOffset: 81}
	actual, err := blockindex.UnpackTxPosition(p.Pack())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, p, actual, "round trip")
}
