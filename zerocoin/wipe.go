// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zerocoin

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
)

// kinds of record that can be wiped
const (
	WipeMints  = "mints"
	WipeSpends = "spends"
)

// Wipe - erase every record of one kind
//
// the keys are collected first and then erased one at a time; an
// erase failure is logged and the remaining keys are still erased.
// returns the number of records erased
func (db *DB) Wipe(ctx context.Context, kind string) (int, error) {
	var pool *storage.PoolHandle
	switch kind {
	case WipeMints:
		pool = db.pools.Mint
	case WipeSpends:
		pool = db.pools.Spend
	default:
		return 0, errors.Wrapf(fault.ErrUnknownWipeKind, "kind: %q", kind)
	}

	hashes := make(map[chainhash.Hash]struct{})
	err := pool.NewFetchCursor().Map(ctx, func(key []byte, value []byte) error {
		var hash chainhash.Hash
		if err := chainhash.FromBytes(&hash, key); nil != err {
			db.log.Warnf("wipe %s: skipping malformed key: %x", kind, key)
			return nil
		}
		hashes[hash] = struct{}{}
		return nil
	})
	if nil != err {
		return 0, err
	}

	db.log.Infof("wipe %s: erasing %d records", kind, len(hashes))

	erased := 0
	for hash := range hashes {
		if ctxErr := ctx.Err(); nil != ctxErr {
			return erased, errors.Wrapf(fault.ErrInterrupted, "wipe %s: %s", kind, ctxErr)
		}
		if err := pool.Delete(hash[:]); nil != err {
			db.log.Errorf("wipe %s: erase: %s  error: %s", kind, hash, err)
			continue
		}
		erased += 1
	}

	db.log.Infof("wipe %s: erased %d of %d records", kind, erased, len(hashes))
	return erased, nil
}
