// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accumulator - in-memory cache of accumulator checkpoint values
//
// a checkpoint is the concatenation of one 32 bit checksum per
// denomination, the first denomination in the most significant word
package accumulator

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/counter"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/zerocoin"
)

//go:generate mockgen -source=checkpoints.go -destination=mocks/value_reader.go -package=mocks

// ValueReader - source of stored accumulator values
type ValueReader interface {
	ReadAccumulatorValue(checksum uint32) (*big.Int, error)
}

// Checkpoints - accumulator values by checksum
type Checkpoints struct {
	store ValueReader
	cache *cache.Cache
	log   *logger.L

	missing counter.Counter
}

// New - empty cache backed by store
func New(store ValueReader) *Checkpoints {
	return &Checkpoints{
		store: store,
		cache: cache.New(cache.NoExpiration, 0),
		log:   logger.New("accumulator"),
	}
}

// Checksum - the checksum of one denomination within a checkpoint
func Checksum(checkpoint chainhash.Hash, denomination zerocoin.Denomination) (uint32, error) {
	position := denomination.Index()
	if position < 0 {
		return 0, errors.Wrapf(fault.ErrInvalidDenomination, "denomination: %d", denomination)
	}
	offset := 4 * (len(zerocoin.Denominations) - 1 - position)
	return binary.LittleEndian.Uint32(checkpoint[offset : offset+4]), nil
}

func cacheKey(checksum uint32) string {
	return fmt.Sprintf("%08x", checksum)
}

// LoadFromDB - read the value of every denomination of a checkpoint
//
// checksums without a stored value are logged and counted; only a
// failure to read the store is an error
func (c *Checkpoints) LoadFromDB(checkpoint chainhash.Hash) error {
	for _, denomination := range zerocoin.Denominations {
		checksum, err := Checksum(checkpoint, denomination)
		if nil != err {
			return err
		}
		if _, found := c.cache.Get(cacheKey(checksum)); found {
			continue
		}

		value, err := c.store.ReadAccumulatorValue(checksum)
		if nil != err {
			return errors.Wrapf(err, "checkpoint: %s  denomination: %s", checkpoint, denomination)
		}
		if nil == value {
			c.missing.Increment()
			c.log.Warnf("checkpoint: %s  denomination: %s  checksum: %08x has no value", checkpoint, denomination, checksum)
			continue
		}
		c.cache.Set(cacheKey(checksum), value, cache.NoExpiration)
	}
	c.log.Debugf("loaded checkpoint: %s  cached values: %d", checkpoint, c.cache.ItemCount())
	return nil
}

// Get - the cached value of a checksum
func (c *Checkpoints) Get(checksum uint32) (*big.Int, bool) {
	item, found := c.cache.Get(cacheKey(checksum))
	if !found {
		return nil, false
	}
	return new(big.Int).Set(item.(*big.Int)), true
}

// Count - number of cached values
func (c *Checkpoints) Count() int {
	return c.cache.ItemCount()
}

// Missing - number of checksums that had no stored value
func (c *Checkpoints) Missing() int {
	return c.missing.Int()
}

// Clear - drop all cached values
func (c *Checkpoints) Clear() {
	c.cache.Flush()
	c.missing.Reset()
}
