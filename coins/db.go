// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins

import (
	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
)

// the pools of the chainstate database
type pools struct {
	Coins     *storage.PoolHandle `prefix:"c"`
	BestBlock *storage.PoolHandle `prefix:"B"`
}

// DB - the coin database
type DB struct {
	handle *storage.Handle
	pools  pools
	log    *logger.L
}

// New - attach to an open chainstate database
func New(handle *storage.Handle) (*DB, error) {
	if nil == handle {
		return nil, fault.ErrDatabaseIsNotSet
	}
	db := &DB{
		handle: handle,
		log:    logger.New("coins"),
	}
	if err := handle.Bind(&db.pools); nil != err {
		return nil, err
	}
	return db, nil
}

// Get - read the coins of a transaction
//
// returns nil, nil if the transaction has no unspent outputs
func (db *DB) Get(txId chainhash.Hash) (*Coins, error) {
	record, err := db.pools.Coins.Get(txId[:])
	if nil != err {
		return nil, err
	}
	if nil == record {
		return nil, nil
	}
	return unpackWithKey(txId, record)
}

// Exists - check whether a transaction has a coin record
func (db *DB) Exists(txId chainhash.Hash) (bool, error) {
	return db.pools.Coins.Has(txId[:])
}

// BestBlock - the block hash the coin set is consistent with
//
// the zero hash is returned if none has been written
func (db *DB) BestBlock() (chainhash.Hash, error) {
	var best chainhash.Hash
	record, err := db.pools.BestBlock.Get(nil)
	if nil != err {
		return best, err
	}
	if nil == record {
		return best, nil
	}
	if err := chainhash.FromBytes(&best, record); nil != err {
		return best, errors.Wrap(err, "best block")
	}
	return best, nil
}

// Flush - write all dirty entries and the best block in one batch
//
// the map is emptied whether or not the write succeeds; pruned
// entries are erased; a nil entry is treated as unchanged; a zero
// best block leaves the stored one unchanged
func (db *DB) Flush(entries CacheMap, best chainhash.Hash) error {
	batch := db.handle.NewBatch()

	count := 0
	changed := 0
	for txId, entry := range entries {
		if nil != entry && entry.Dirty {
			if nil == entry.Coins || entry.Coins.IsPruned() {
				batch.Delete(db.pools.Coins, txId[:])
			} else {
				batch.Put(db.pools.Coins, txId[:], entry.Coins.Pack())
			}
			changed += 1
		}
		count += 1
		delete(entries, txId)
	}

	if !best.IsZero() {
		batch.Put(db.pools.BestBlock, nil, best[:])
	}

	db.log.Debugf("committing %d changed transactions (out of %d) to coin database", changed, count)

	if err := batch.Commit(); nil != err {
		db.log.Errorf("coin database commit error: %s", err)
		return err
	}
	return nil
}
