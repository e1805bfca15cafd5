// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zerocoin

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
)

// Tags - prefix tag to pool name of the zerocoin database
func Tags() map[string]string {
	return storage.Tags(&pools{})
}

// TxIdRecord - a decoded mint or spend record
type TxIdRecord struct {
	Hash chainhash.Hash `json:"hash"`
	TxId chainhash.Hash `json:"txid"`
}

// AccumulatorRecord - a decoded accumulator value
type AccumulatorRecord struct {
	Checksum uint32   `json:"checksum"`
	Value    *big.Int `json:"value"`
}

// Decode - a printable form of one zerocoin record
//
// key must include its tag byte
func Decode(key []byte, value []byte) (interface{}, error) {
	switch {
	case codec.TagMint.Has(key), codec.TagSpend.Has(key):
		tag := codec.Tag(key[0])
		hash, err := tag.HashFromKey(key)
		if nil != err {
			return nil, errors.Wrapf(err, "%s key: %x", tag, key)
		}
		txId, err := unpackTxId(value)
		if nil != err {
			return nil, errors.Wrapf(err, "%s: %s", tag, hash)
		}
		return TxIdRecord{Hash: hash, TxId: txId}, nil

	case codec.TagAccumulator.Has(key):
		checksum, err := codec.TagAccumulator.Uint32FromKey(key)
		if nil != err {
			return nil, errors.Wrapf(err, "accumulator key: %x", key)
		}
		v, err := unpackAccumulatorValue(value)
		if nil != err {
			return nil, errors.Wrapf(err, "accumulator checksum: %08x", checksum)
		}
		return AccumulatorRecord{Checksum: checksum, Value: v}, nil

	default:
		return nil, errors.Wrapf(fault.ErrKeyNotInRange, "zerocoin key: %x", key)
	}
}
