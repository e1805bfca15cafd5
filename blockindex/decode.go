// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockindex

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
)

// Tags - prefix tag to pool name of the block index database
func Tags() map[string]string {
	return storage.Tags(&pools{})
}

// FileInfoRecord - a decoded block file summary
type FileInfoRecord struct {
	File uint32    `json:"file"`
	Info *FileInfo `json:"info"`
}

// TxIndexRecord - a decoded transaction position
type TxIndexRecord struct {
	TxId     chainhash.Hash `json:"txid"`
	Position *TxPosition    `json:"position"`
}

// NamedRecord - a decoded named flag or integer
type NamedRecord struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// Decode - a printable form of one block index database record
//
// key must include its tag byte
func Decode(key []byte, value []byte) (interface{}, error) {
	switch {
	case codec.TagBlockIndex.Has(key):
		hash, err := codec.TagBlockIndex.HashFromKey(key)
		if nil != err {
			return nil, errors.Wrapf(err, "block index key: %x", key)
		}
		return UnpackDiskBlockIndex(hash, value)

	case codec.TagFileInfo.Has(key):
		file, err := codec.TagFileInfo.Uint32FromKey(key)
		if nil != err {
			return nil, errors.Wrapf(err, "file info key: %x", key)
		}
		info, err := UnpackFileInfo(value)
		if nil != err {
			return nil, errors.Wrapf(err, "file info: %d", file)
		}
		return FileInfoRecord{File: file, Info: info}, nil

	case codec.TagLastFile.Has(key):
		file, err := unpackLastFile(value)
		if nil != err {
			return nil, errors.Wrap(err, "last file")
		}
		return file, nil

	case codec.TagReindexing.Has(key):
		reindexing, err := unpackFlag(value)
		if nil != err {
			return nil, errors.Wrap(err, "reindexing")
		}
		return reindexing, nil

	case codec.TagTxIndex.Has(key):
		txId, err := codec.TagTxIndex.HashFromKey(key)
		if nil != err {
			return nil, errors.Wrapf(err, "tx index key: %x", key)
		}
		position, err := UnpackTxPosition(value)
		if nil != err {
			return nil, errors.Wrapf(err, "tx index: %s", txId)
		}
		return TxIndexRecord{TxId: txId, Position: position}, nil

	case codec.TagFlag.Has(key):
		name, err := codec.TagFlag.StringFromKey(key)
		if nil != err {
			return nil, errors.Wrapf(err, "flag key: %x", key)
		}
		flag, err := unpackFlag(value)
		if nil != err {
			return nil, errors.Wrapf(err, "flag: %q", name)
		}
		return NamedRecord{Name: name, Value: flag}, nil

	case codec.TagInt.Has(key):
		name, err := codec.TagInt.StringFromKey(key)
		if nil != err {
			return nil, errors.Wrapf(err, "int key: %x", key)
		}
		n, err := unpackInt(value)
		if nil != err {
			return nil, errors.Wrapf(err, "int: %q", name)
		}
		return NamedRecord{Name: name, Value: n}, nil

	default:
		return nil, errors.Wrapf(fault.ErrKeyNotInRange, "block index key: %x", key)
	}
}
