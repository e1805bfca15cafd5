// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/chaindb/fault"
)

// Batch - a set of puts and deletes applied in one write
type Batch struct {
	handle *Handle
	batch  *leveldb.Batch
}

// NewBatch - start an empty batch
func (h *Handle) NewBatch() *Batch {
	return &Batch{
		handle: h,
		batch:  new(leveldb.Batch),
	}
}

// Put - queue a store of key/value in the pool
func (b *Batch) Put(pool *PoolHandle, key []byte, value []byte) {
	b.batch.Put(pool.prefixKey(key), value)
}

// Delete - queue a removal of key from the pool
func (b *Batch) Delete(pool *PoolHandle, key []byte) {
	b.batch.Delete(pool.prefixKey(key))
}

// Len - number of queued operations
func (b *Batch) Len() int {
	return b.batch.Len()
}

// Reset - discard all queued operations
func (b *Batch) Reset() {
	b.batch.Reset()
}

// Commit - write all queued operations atomically
//
// the batch is reset only when the write succeeds
func (b *Batch) Commit() error {
	b.handle.RLock()
	defer b.handle.RUnlock()
	if nil == b.handle.database {
		return fault.ErrDatabaseIsNotSet
	}
	if err := b.handle.database.Write(b.batch, nil); nil != err {
		return errors.Wrapf(err, "commit batch of: %d", b.batch.Len())
	}
	b.batch.Reset()
	return nil
}
