// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/chaindb/fault"
)

// PoolHandle - all keys of one prefix byte
type PoolHandle struct {
	prefix byte
	limit  []byte
	handle *Handle
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Pool - a handle for the keys starting with prefix
func (h *Handle) Pool(prefix byte) *PoolHandle {
	limit := []byte(nil)
	if prefix < 0xff {
		limit = []byte{prefix + 1}
	}
	return &PoolHandle{
		prefix: prefix,
		limit:  limit,
		handle: h,
	}
}

// Prefix - the key prefix byte of the pool
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}

// Range - key range covering the whole pool
func (p *PoolHandle) Range() ldb_util.Range {
	return ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	p.handle.RLock()
	defer p.handle.RUnlock()
	if nil == p.handle.database {
		return fault.ErrDatabaseIsNotSet
	}
	err := p.handle.database.Put(p.prefixKey(key), value, nil)
	if nil != err {
		return errors.Wrapf(err, "put: %c/%x", p.prefix, key)
	}
	return nil
}

// Delete - remove a key from the database, absent keys are not an error
func (p *PoolHandle) Delete(key []byte) error {
	p.handle.RLock()
	defer p.handle.RUnlock()
	if nil == p.handle.database {
		return fault.ErrDatabaseIsNotSet
	}
	err := p.handle.database.Delete(p.prefixKey(key), nil)
	if nil != err {
		return errors.Wrapf(err, "delete: %c/%x", p.prefix, key)
	}
	return nil
}

// Get - read a value for a given key
//
// a missing key returns nil value and nil error
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	p.handle.RLock()
	defer p.handle.RUnlock()
	if nil == p.handle.database {
		return nil, fault.ErrDatabaseIsNotSet
	}
	value, err := p.handle.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, errors.Wrapf(err, "get: %c/%x", p.prefix, key)
	}
	return value, nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	p.handle.RLock()
	defer p.handle.RUnlock()
	if nil == p.handle.database {
		return false, fault.ErrDatabaseIsNotSet
	}
	found, err := p.handle.database.Has(p.prefixKey(key), nil)
	if nil != err {
		return false, errors.Wrapf(err, "has: %c/%x", p.prefix, key)
	}
	return found, nil
}

// LastElement - get the last element in a pool
func (p *PoolHandle) LastElement() (Element, bool, error) {
	maxRange := p.Range()

	p.handle.RLock()
	defer p.handle.RUnlock()
	if nil == p.handle.database {
		return Element{}, false, fault.ErrDatabaseIsNotSet
	}

	iter := p.handle.database.NewIterator(&maxRange, nil)

	found := false
	result := Element{}
	if iter.Last() {
		result = copyElement(iter.Key(), iter.Value())
		found = true
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return Element{}, false, errors.Wrapf(err, "last element: %c", p.prefix)
	}
	return result, found, nil
}

// contents of iterator slices must not be modified, and are
// only valid until the next call to Next
func copyElement(key []byte, value []byte) Element {
	dataKey := make([]byte, len(key)-1) // strip the prefix
	copy(dataKey, key[1:])              // ...

	dataValue := make([]byte, len(value))
	copy(dataValue, value)

	return Element{
		Key:   dataKey,
		Value: dataValue,
	}
}
