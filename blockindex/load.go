// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockindex

import (
	"context"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/fault"
)

//go:generate mockgen -source=load.go -destination=mocks/load.go -package=mocks

// ProofOfWork - check a block hash against its compact target
type ProofOfWork func(hash chainhash.Hash, bits uint32) bool

// CheckpointLoader - fill the accumulator cache for a checkpoint
type CheckpointLoader interface {
	LoadFromDB(checkpoint chainhash.Hash) error
}

// Params - chain parameters needed while loading
type Params interface {
	ZerocoinV2StartHeight() uint32
}

// Load - rebuild the in-memory index from every block index record
//
// records are visited in key (hash) order; proof of work blocks must
// pass pow; each new non-zero accumulator checkpoint at or above the
// zerocoin v2 start height is passed to checkpoints. Any failure
// leaves the index incomplete and it must not be used
//
// returns the number of records loaded
func (db *DB) Load(ctx context.Context, index *Index, checkpoints CheckpointLoader, pow ProofOfWork, params Params) (int, error) {

	if nil == index || nil == pow || nil == params {
		return 0, fault.ErrNotInitialised
	}

	v2Start := params.ZerocoinV2StartHeight()

	var previousCheckpoint chainhash.Hash
	count := 0
	checkpointCount := 0

	cursor := db.pools.BlockIndex.NewFetchCursor()
	err := cursor.Map(ctx, func(key []byte, value []byte) error {
		var hash chainhash.Hash
		if err := chainhash.FromBytes(&hash, key); nil != err {
			return errors.Wrapf(fault.ErrRecordTruncated, "block index key: %x", key)
		}
		if hash.IsZero() {
			return fault.ErrZeroHashBlockIndexNode
		}

		d, err := UnpackDiskBlockIndex(hash, value)
		if nil != err {
			return err
		}

		node := index.set(d)
		count += 1

		if node.IsProofOfWork() && !pow(node.Hash, node.Bits) {
			db.log.Criticalf("load: proof of work failed: block: %s  height: %d  bits: %08x", node.Hash, node.Height, node.Bits)
			return errors.Wrapf(fault.ErrProofOfWork, "block: %s  height: %d", node.Hash, node.Height)
		}

		checkpoint := node.AccumulatorCheckpoint
		if !checkpoint.IsZero() && checkpoint != previousCheckpoint {
			// checkpoints before v2 are obsolete
			if node.Height >= v2Start && nil != checkpoints {
				if err := checkpoints.LoadFromDB(checkpoint); nil != err {
					return errors.Wrapf(err, "block: %s  checkpoint: %s", node.Hash, checkpoint)
				}
				checkpointCount += 1
			}
			previousCheckpoint = checkpoint
		}
		return nil
	})
	if nil != err {
		db.log.Errorf("load: after: %d records  error: %s", count, err)
		return count, err
	}

	db.log.Infof("load: %d block index records  %d nodes  %d checkpoints", count, index.Len(), checkpointCount)
	return count, nil
}
