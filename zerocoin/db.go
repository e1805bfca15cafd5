// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zerocoin

import (
	"math/big"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
)

// record format versions
const (
	txIdVersion        = 1
	accumulatorVersion = 1
)

// the pools of the zerocoin database
type pools struct {
	Mint        *storage.PoolHandle `prefix:"m"`
	Spend       *storage.PoolHandle `prefix:"s"`
	Accumulator *storage.PoolHandle `prefix:"2"`
}

// DB - the zerocoin database
type DB struct {
	handle *storage.Handle
	pools  pools
	log    *logger.L
}

// Mint - a commitment and the transaction that created it
type Mint struct {
	Commitment *big.Int
	TxId       chainhash.Hash
}

// Spend - a serial number and the transaction that revealed it
type Spend struct {
	Serial *big.Int
	TxId   chainhash.Hash
}

// New - attach to an open zerocoin database
func New(handle *storage.Handle) (*DB, error) {
	if nil == handle {
		return nil, fault.ErrDatabaseIsNotSet
	}
	db := &DB{
		handle: handle,
		log:    logger.New("zerocoin"),
	}
	if err := handle.Bind(&db.pools); nil != err {
		return nil, err
	}
	return db, nil
}

func packTxId(txId chainhash.Hash) []byte {
	w := codec.NewWriter()
	w.Hash(txId)
	return w.Record(txIdVersion)
}

func unpackTxId(record []byte) (chainhash.Hash, error) {
	r, err := codec.Open(record, txIdVersion)
	if nil != err {
		return chainhash.Hash{}, err
	}
	txId := r.Hash()
	return txId, r.Finish()
}

// read a txId record, absent gives false
func readTxId(pool *storage.PoolHandle, hash chainhash.Hash) (chainhash.Hash, bool, error) {
	record, err := pool.Get(hash[:])
	if nil != err {
		return chainhash.Hash{}, false, err
	}
	if nil == record {
		return chainhash.Hash{}, false, nil
	}
	txId, err := unpackTxId(record)
	if nil != err {
		return chainhash.Hash{}, false, errors.Wrapf(err, "%c: %s", pool.Prefix(), hash)
	}
	return txId, true, nil
}

// WriteMints - record the minting transaction of each commitment
//
// nothing is written if any commitment was already minted by a
// different transaction; rewriting the same transaction is allowed
func (db *DB) WriteMints(mints []Mint) error {
	batch := db.handle.NewBatch()
	pending := make(map[chainhash.Hash]chainhash.Hash, len(mints))

	for _, mint := range mints {
		hash := codec.HashBig(mint.Commitment)

		if txId, ok := pending[hash]; ok {
			if txId != mint.TxId {
				return errors.Wrapf(fault.ErrMintExists, "commitment: %s  tx: %s and tx: %s", hash, txId, mint.TxId)
			}
			continue
		}

		txId, found, err := readTxId(db.pools.Mint, hash)
		if nil != err {
			return err
		}
		if found && txId != mint.TxId {
			return errors.Wrapf(fault.ErrMintExists, "commitment: %s  minted by tx: %s  not tx: %s", hash, txId, mint.TxId)
		}

		pending[hash] = mint.TxId
		batch.Put(db.pools.Mint, hash[:], packTxId(mint.TxId))
	}

	db.log.Debugf("writing %d mints", batch.Len())
	return batch.Commit()
}

// ReadMint - the minting transaction of a commitment hash
func (db *DB) ReadMint(hash chainhash.Hash) (chainhash.Hash, bool, error) {
	return readTxId(db.pools.Mint, hash)
}

// ReadMintByValue - the minting transaction of a commitment
func (db *DB) ReadMintByValue(commitment *big.Int) (chainhash.Hash, bool, error) {
	return db.ReadMint(codec.HashBig(commitment))
}

// EraseMintHash - remove the mint record of a commitment hash
func (db *DB) EraseMintHash(hash chainhash.Hash) error {
	return db.pools.Mint.Delete(hash[:])
}

// EraseMint - remove the mint record of a commitment
func (db *DB) EraseMint(commitment *big.Int) error {
	return db.EraseMintHash(codec.HashBig(commitment))
}

// WriteSpends - record the spending transaction of each serial number
func (db *DB) WriteSpends(spends []Spend) error {
	batch := db.handle.NewBatch()
	for _, spend := range spends {
		hash := codec.HashBig(spend.Serial)
		batch.Put(db.pools.Spend, hash[:], packTxId(spend.TxId))
	}

	db.log.Debugf("writing %d spends", batch.Len())
	return batch.Commit()
}

// ReadSpend - the spending transaction of a serial number hash
func (db *DB) ReadSpend(hash chainhash.Hash) (chainhash.Hash, bool, error) {
	return readTxId(db.pools.Spend, hash)
}

// ReadSpendBySerial - the spending transaction of a serial number
func (db *DB) ReadSpendBySerial(serial *big.Int) (chainhash.Hash, bool, error) {
	return db.ReadSpend(codec.HashBig(serial))
}

// IsSpent - check whether a serial number has been spent
func (db *DB) IsSpent(serial *big.Int) (bool, error) {
	hash := codec.HashBig(serial)
	return db.pools.Spend.Has(hash[:])
}

// EraseSpendHash - remove the spend record of a serial number hash
func (db *DB) EraseSpendHash(hash chainhash.Hash) error {
	return db.pools.Spend.Delete(hash[:])
}

// EraseSpend - remove the spend record of a serial number
func (db *DB) EraseSpend(serial *big.Int) error {
	return db.EraseSpendHash(codec.HashBig(serial))
}

// WriteAccumulatorValue - store the accumulator value for a checksum
func (db *DB) WriteAccumulatorValue(checksum uint32, value *big.Int) error {
	w := codec.NewWriter()
	w.Big(value)
	db.log.Debugf("write accumulator checksum: %08x", checksum)
	return db.pools.Accumulator.Put(codec.Uint32Payload(checksum), w.Record(accumulatorVersion))
}

// ReadAccumulatorValue - the accumulator value for a checksum, nil if absent
func (db *DB) ReadAccumulatorValue(checksum uint32) (*big.Int, error) {
	record, err := db.pools.Accumulator.Get(codec.Uint32Payload(checksum))
	if nil != err {
		return nil, err
	}
	if nil == record {
		return nil, nil
	}

	value, err := unpackAccumulatorValue(record)
	if nil != err {
		return nil, errors.Wrapf(err, "accumulator checksum: %08x", checksum)
	}
	return value, nil
}

func unpackAccumulatorValue(record []byte) (*big.Int, error) {
	r, err := codec.Open(record, accumulatorVersion)
	if nil != err {
		return nil, err
	}
	value := r.Big()
	return value, r.Finish()
}

// EraseAccumulatorValue - remove the accumulator value for a checksum
func (db *DB) EraseAccumulatorValue(checksum uint32) error {
	return db.pools.Accumulator.Delete(codec.Uint32Payload(checksum))
}
