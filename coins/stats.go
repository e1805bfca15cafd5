// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
)

// HeightLookup - find the height of an indexed block
type HeightLookup interface {
	Height(hash chainhash.Hash) (uint32, bool)
}

// Stats - summary and digest of the whole coin set
type Stats struct {
	BestBlock          chainhash.Hash `json:"bestBlock"`
	Height             uint32         `json:"height"`
	BestBlockUnindexed bool           `json:"bestBlockUnindexed"`
	Transactions       uint64         `json:"transactions"`
	TransactionOutputs uint64         `json:"transactionOutputs"`
	SerializedSize     uint64         `json:"serializedSize"`
	Digest             chainhash.Hash `json:"digest"`
	TotalAmount        int64          `json:"totalAmount"`
}

// Stats - scan every coin record in key order and compute the digest
//
// digest input:
//
//   best block
//   for each record:
//     txId ++ int32(version) ++ 'c'|'n' ++ uint32(height)
//     for each unspent output i: varint64(i+1) ++ int64(value) ++ bytes(script)
//     varint64(0)
//
// heights may be nil; the height is zero when the best block cannot
// be found in it
func (db *DB) Stats(ctx context.Context, heights HeightLookup) (*Stats, error) {

	best, err := db.BestBlock()
	if nil != err {
		return nil, err
	}

	stats := &Stats{
		BestBlock: best,
	}

	digest := sha3.New256()
	digest.Write(best[:])

	cursor := db.pools.Coins.NewFetchCursor()
	err = cursor.Map(ctx, func(key []byte, value []byte) error {
		var txId chainhash.Hash
		if err := chainhash.FromBytes(&txId, key); nil != err {
			return errors.Wrapf(err, "coins key: %x", key)
		}
		c, err := unpackWithKey(txId, value)
		if nil != err {
			return err
		}

		w := codec.NewWriter()
		w.Hash(txId)
		w.Int32(c.Version)
		if c.CoinBase {
			w.Byte('c')
		} else {
			w.Byte('n')
		}
		w.Uint32(c.Height)

		stats.Transactions += 1

		for i, out := range c.Outputs {
			if out.IsNull() {
				continue
			}
			stats.TransactionOutputs += 1
			w.Varint(uint64(i) + 1)
			out.pack(w)
			stats.TotalAmount += out.Value
		}
		w.Varint(0)

		stats.SerializedSize += chainhash.Size + uint64(len(value))
		digest.Write(w.Payload())
		return nil
	})
	if nil != err {
		return nil, err
	}

	if !best.IsZero() {
		height, ok := uint32(0), false
		if nil != heights {
			height, ok = heights.Height(best)
		}
		if ok {
			stats.Height = height
		} else {
			stats.BestBlockUnindexed = true
			db.log.Warnf("stats: best block: %s is not in the block index, height reported as zero", best)
		}
	}

	copy(stats.Digest[:], digest.Sum(nil))
	return stats, nil
}
