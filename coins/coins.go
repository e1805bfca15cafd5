// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
)

// record format version
const coinsVersion = 1

// NullValue - the value of a spent output
const NullValue = -1

// TxOut - one transaction output
type TxOut struct {
	Value  int64  `json:"value"`
	Script []byte `json:"script"`
}

// IsNull - true for a spent output
func (out TxOut) IsNull() bool {
	return NullValue == out.Value
}

// SetNull - mark the output as spent
func (out *TxOut) SetNull() {
	out.Value = NullValue
	out.Script = nil
}

// write the output fields
func (out TxOut) pack(w *codec.Writer) {
	w.Int64(out.Value)
	w.Bytes(out.Script)
}

// Coins - the unspent outputs of one transaction
type Coins struct {
	Version  int32   `json:"version"`
	CoinBase bool    `json:"coinBase"`
	Height   uint32  `json:"height"`
	Outputs  []TxOut `json:"outputs"`
}

// IsPruned - true when every output has been spent
func (c *Coins) IsPruned() bool {
	for _, out := range c.Outputs {
		if !out.IsNull() {
			return false
		}
	}
	return true
}

// IsAvailable - check that output n exists and is unspent
func (c *Coins) IsAvailable(n uint32) bool {
	return int(n) < len(c.Outputs) && !c.Outputs[n].IsNull()
}

// Spend - mark output n as spent, false if it was not available
func (c *Coins) Spend(n uint32) bool {
	if !c.IsAvailable(n) {
		return false
	}
	c.Outputs[n].SetNull()
	c.trim()
	return true
}

// remove trailing spent outputs
func (c *Coins) trim() {
	for len(c.Outputs) > 0 && c.Outputs[len(c.Outputs)-1].IsNull() {
		c.Outputs = c.Outputs[:len(c.Outputs)-1]
	}
}

// Pack - encode as a versioned record
//
//   int32(version) ++ bool(coinbase) ++ uint32(height)
//   ++ varint64(count) ++ count * (int64(value) ++ bytes(script))
func (c *Coins) Pack() []byte {
	w := codec.NewWriter()
	w.Int32(c.Version)
	w.Bool(c.CoinBase)
	w.Uint32(c.Height)
	w.Varint(uint64(len(c.Outputs)))
	for _, out := range c.Outputs {
		out.pack(w)
	}
	return w.Record(coinsVersion)
}

// Unpack - decode a record produced by Pack
func Unpack(record []byte) (*Coins, error) {
	r, err := codec.Open(record, coinsVersion)
	if nil != err {
		return nil, err
	}

	c := &Coins{
		Version:  r.Int32(),
		CoinBase: r.Bool(),
		Height:   r.Uint32(),
	}

	count := r.Varint()

	// each output is at least two bytes
	capacity := count
	if capacity > uint64(r.Remaining()/2) {
		capacity = uint64(r.Remaining() / 2)
	}
	c.Outputs = make([]TxOut, 0, capacity)
	for i := uint64(0); i < count && nil == r.Err(); i += 1 {
		out := TxOut{
			Value:  r.Int64(),
			Script: r.Bytes(),
		}
		if 0 == len(out.Script) {
			out.Script = nil
		}
		c.Outputs = append(c.Outputs, out)
	}

	if err := r.Finish(); nil != err {
		return nil, err
	}
	return c, nil
}

// OutPoint - reference to one output of a transaction
type OutPoint struct {
	TxId  chainhash.Hash `json:"txid"`
	Index uint32         `json:"index"`
}

// String - txid:index
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxId, o.Index)
}

// CacheEntry - an in-memory coin record with its modification state
type CacheEntry struct {
	Coins *Coins
	Dirty bool
}

// CacheMap - the pending coin changes of the caller, by txId
type CacheMap map[chainhash.Hash]*CacheEntry

// unpack with key context
func unpackWithKey(txId chainhash.Hash, record []byte) (*Coins, error) {
	c, err := Unpack(record)
	if nil != err {
		return nil, errors.Wrapf(err, "coins: %s", txId)
	}
	return c, nil
}
