// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
)

// Tags - prefix tag to pool name of the chainstate database
func Tags() map[string]string {
	return storage.Tags(&pools{})
}

// Record - a decoded coin record
type Record struct {
	TxId  chainhash.Hash `json:"txid"`
	Coins *Coins         `json:"coins"`
}

// Decode - a printable form of one chainstate record
//
// key must include its tag byte
func Decode(key []byte, value []byte) (interface{}, error) {
	switch {
	case codec.TagCoins.Has(key):
		txId, err := codec.TagCoins.HashFromKey(key)
		if nil != err {
			return nil, errors.Wrapf(err, "coins key: %x", key)
		}
		c, err := unpackWithKey(txId, value)
		if nil != err {
			return nil, err
		}
		return Record{TxId: txId, Coins: c}, nil

	case codec.TagBestBlock.Has(key):
		var best chainhash.Hash
		if err := chainhash.FromBytes(&best, value); nil != err {
			return nil, errors.Wrap(err, "best block")
		}
		return best, nil

	default:
		return nil, errors.Wrapf(fault.ErrKeyNotInRange, "chainstate key: %x", key)
	}
}
