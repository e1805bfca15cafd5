// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/chaindb/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: p.Range(),
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// to increment the key
var one = big.NewInt(1)

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrNotInitialised
	}
	if count <= 0 {
		return nil, errors.Wrapf(fault.ErrInvalidCount, "fetch count: %d", count)
	}

	cursor.pool.handle.RLock()
	defer cursor.pool.handle.RUnlock()
	if nil == cursor.pool.handle.database {
		return nil, fault.ErrDatabaseIsNotSet
	}

	iter := cursor.pool.handle.database.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {
		results = append(results, copyElement(iter.Key(), iter.Value()))
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	if n > 0 {
		lastKey := results[n-1].Key
		keyLen := len(lastKey)
		next := big.Int{}
		next.SetBytes(lastKey).Add(&next, one)
		nextBytes := next.Bytes()

		start := make([]byte, keyLen+1)
		start[0] = cursor.pool.prefix
		if len(nextBytes) > keyLen {
			// every key byte was 0xff so step past them
			start = append(start[:1], nextBytes...)
		} else {
			copy(start[1+keyLen-len(nextBytes):], nextBytes)
		}
		cursor.maxRange.Start = start
	}
	return results, err
}

// Map - run a function on all elements in the range
//
// the context is checked before each element, cancellation stops
// the scan with fault.ErrInterrupted
func (cursor *FetchCursor) Map(ctx context.Context, f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrNotInitialised
	}

	cursor.pool.handle.RLock()
	defer cursor.pool.handle.RUnlock()
	if nil == cursor.pool.handle.database {
		return fault.ErrDatabaseIsNotSet
	}

	iter := cursor.pool.handle.database.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {
		if ctxErr := ctx.Err(); nil != ctxErr {
			err = errors.Wrapf(fault.ErrInterrupted, "scan: %c: %s", cursor.pool.prefix, ctxErr)
			break iterating
		}

		e := copyElement(iter.Key(), iter.Value())
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
