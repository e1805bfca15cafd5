// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockindex

import (
	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
)

const scalarVersion = 1

// values of a named flag
const (
	flagTrue  = '1'
	flagFalse = '0'
)

// the pools of the block index database
type pools struct {
	BlockIndex *storage.PoolHandle `prefix:"b"`
	FileInfo   *storage.PoolHandle `prefix:"f"`
	LastFile   *storage.PoolHandle `prefix:"l"`
	Reindexing *storage.PoolHandle `prefix:"R"`
	TxIndex    *storage.PoolHandle `prefix:"t"`
	Flag       *storage.PoolHandle `prefix:"F"`
	Int        *storage.PoolHandle `prefix:"I"`
}

// DB - the block index database
type DB struct {
	handle *storage.Handle
	pools  pools
	log    *logger.L
}

// New - attach to an open block index database
func New(handle *storage.Handle) (*DB, error) {
	if nil == handle {
		return nil, fault.ErrDatabaseIsNotSet
	}
	db := &DB{
		handle: handle,
		log:    logger.New("blockindex"),
	}
	if err := handle.Bind(&db.pools); nil != err {
		return nil, err
	}
	return db, nil
}

// WriteBlockIndex - store a block index record under its hash
func (db *DB) WriteBlockIndex(d *DiskBlockIndex) error {
	if d.Hash.IsZero() {
		return fault.ErrZeroHashBlockIndexNode
	}
	if err := d.Validate(); nil != err {
		return err
	}
	return db.pools.BlockIndex.Put(d.Hash[:], d.Pack())
}

// ReadBlockIndex - a single block index record, nil if absent
func (db *DB) ReadBlockIndex(hash chainhash.Hash) (*DiskBlockIndex, error) {
	record, err := db.pools.BlockIndex.Get(hash[:])
	if nil != err || nil == record {
		return nil, err
	}
	return UnpackDiskBlockIndex(hash, record)
}

// WriteFileInfo - store the summary of a block file
func (db *DB) WriteFileInfo(file uint32, info *FileInfo) error {
	return db.pools.FileInfo.Put(codec.Uint32Payload(file), info.Pack())
}

// ReadFileInfo - the summary of a block file, nil if absent
func (db *DB) ReadFileInfo(file uint32) (*FileInfo, error) {
	record, err := db.pools.FileInfo.Get(codec.Uint32Payload(file))
	if nil != err || nil == record {
		return nil, err
	}
	info, err := UnpackFileInfo(record)
	if nil != err {
		return nil, errors.Wrapf(err, "file info: %d", file)
	}
	return info, nil
}

// HighestFileInfo - the largest file number that has a summary
//
// second result is false if there are no file summaries
func (db *DB) HighestFileInfo() (uint32, bool, error) {
	element, found, err := db.pools.FileInfo.LastElement()
	if nil != err || !found {
		return 0, false, err
	}
	file, err := codec.TagFileInfo.Uint32FromKey(append([]byte{byte(codec.TagFileInfo)}, element.Key...))
	if nil != err {
		return 0, false, errors.Wrapf(err, "file info key: %x", element.Key)
	}
	return file, true, nil
}

// WriteLastFile - store the number of the last block file
func (db *DB) WriteLastFile(file uint32) error {
	w := codec.NewWriter()
	w.Uint32(file)
	return db.pools.LastFile.Put(nil, w.Record(scalarVersion))
}

// ReadLastFile - the number of the last block file
//
// second result is false if none was written
func (db *DB) ReadLastFile() (uint32, bool, error) {
	record, err := db.pools.LastFile.Get(nil)
	if nil != err || nil == record {
		return 0, false, err
	}
	file, err := unpackLastFile(record)
	if nil != err {
		return 0, false, errors.Wrap(err, "last file")
	}
	return file, true, nil
}

// WriteReindexing - set or clear the reindexing marker
func (db *DB) WriteReindexing(reindexing bool) error {
	if !reindexing {
		return db.pools.Reindexing.Delete(nil)
	}
	w := codec.NewWriter()
	w.Byte(flagTrue)
	return db.pools.Reindexing.Put(nil, w.Record(scalarVersion))
}

// ReadReindexing - true if the reindexing marker is present
func (db *DB) ReadReindexing() (bool, error) {
	return db.pools.Reindexing.Has(nil)
}

// WriteTxIndex - store a set of transaction positions in one batch
func (db *DB) WriteTxIndex(entries []TxIndexEntry) error {
	batch := db.handle.NewBatch()
	for _, entry := range entries {
		batch.Put(db.pools.TxIndex, entry.TxId[:], entry.Position.Pack())
	}
	db.log.Debugf("writing %d transaction positions", batch.Len())
	return batch.Commit()
}

// ReadTxIndex - the position of a transaction, nil if absent
func (db *DB) ReadTxIndex(txId chainhash.Hash) (*TxPosition, error) {
	record, err := db.pools.TxIndex.Get(txId[:])
	if nil != err || nil == record {
		return nil, err
	}
	position, err := UnpackTxPosition(record)
	if nil != err {
		return nil, errors.Wrapf(err, "tx index: %s", txId)
	}
	return position, nil
}

// WriteFlag - store a named boolean
func (db *DB) WriteFlag(name string, value bool) error {
	w := codec.NewWriter()
	if value {
		w.Byte(flagTrue)
	} else {
		w.Byte(flagFalse)
	}
	return db.pools.Flag.Put(codec.StringPayload(name), w.Record(scalarVersion))
}

// ReadFlag - a named boolean
//
// second result is false if the flag was never written
func (db *DB) ReadFlag(name string) (bool, bool, error) {
	record, err := db.pools.Flag.Get(codec.StringPayload(name))
	if nil != err || nil == record {
		return false, false, err
	}
	value, err := unpackFlag(record)
	if nil != err {
		return false, false, errors.Wrapf(err, "flag: %q", name)
	}
	return value, true, nil
}

// WriteInt - store a named integer
func (db *DB) WriteInt(name string, value int32) error {
	w := codec.NewWriter()
	w.Int32(value)
	return db.pools.Int.Put(codec.StringPayload(name), w.Record(scalarVersion))
}

// ReadInt - a named integer
//
// second result is false if the integer was never written
func (db *DB) ReadInt(name string) (int32, bool, error) {
	record, err := db.pools.Int.Get(codec.StringPayload(name))
	if nil != err || nil == record {
		return 0, false, err
	}
	value, err := unpackInt(record)
	if nil != err {
		return 0, false, errors.Wrapf(err, "int: %q", name)
	}
	return value, true, nil
}

func unpackLastFile(record []byte) (uint32, error) {
	r, err := codec.Open(record, scalarVersion)
	if nil != err {
		return 0, err
	}
	file := r.Uint32()
	return file, r.Finish()
}

func unpackFlag(record []byte) (bool, error) {
	r, err := codec.Open(record, scalarVersion)
	if nil != err {
		return false, err
	}
	b := r.Byte()
	return flagTrue == b, r.Finish()
}

func unpackInt(record []byte) (int32, error) {
	r, err := codec.Open(record, scalarVersion)
	if nil != err {
		return 0, err
	}
	value := r.Int32()
	return value, r.Finish()
}
