// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

//go:generate mockgen -source=database.go -destination=mocks/database.go -package=mocks

// Database - the subset of *leveldb.DB used by a Handle
type Database interface {
	Get(key []byte, ro *ldb_opt.ReadOptions) ([]byte, error)
	Has(key []byte, ro *ldb_opt.ReadOptions) (bool, error)
	Put(key []byte, value []byte, wo *ldb_opt.WriteOptions) error
	Delete(key []byte, wo *ldb_opt.WriteOptions) error
	Write(batch *leveldb.Batch, wo *ldb_opt.WriteOptions) error
	NewIterator(slice *ldb_util.Range, ro *ldb_opt.ReadOptions) iterator.Iterator
	Close() error
}
