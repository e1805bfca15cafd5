// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/fault"
)

// Target - expand a compact value into a 256 bit target
//
//   bits = exponent(8 bits) ++ sign(1 bit) ++ mantissa(23 bits)
//   target = mantissa * 256^(exponent-3)
//
// negative and overflowing values are rejected
func Target(bits uint32) (*big.Int, error) {
	exponent := uint(bits >> 24)
	mantissa := bits & 0x007fffff

	if 0 != mantissa && 0 != bits&0x00800000 {
		return nil, errors.Wrapf(fault.ErrInvalidDifficulty, "difficulty bits: 0x%08x is negative", bits)
	}
	if 0 != mantissa && (exponent > 34 ||
		(mantissa > 0xff && exponent > 33) ||
		(mantissa > 0xffff && exponent > 32)) {
		return nil, errors.Wrapf(fault.ErrInvalidDifficulty, "difficulty bits: 0x%08x overflows", bits)
	}

	target := new(big.Int)
	if exponent <= 3 {
		target.SetUint64(uint64(mantissa >> (8 * (3 - exponent))))
	} else {
		target.SetUint64(uint64(mantissa))
		target.Lsh(target, 8*(exponent-3))
	}
	return target, nil
}

// HashValue - a block hash as a number, the hash bytes are little endian
func HashValue(hash chainhash.Hash) *big.Int {
	buffer := make([]byte, chainhash.Size)
	for i, b := range hash {
		buffer[chainhash.Size-1-i] = b
	}
	return new(big.Int).SetBytes(buffer)
}

// CheckProofOfWork - true if the hash does not exceed the target of bits
// and the target is within the limit
func CheckProofOfWork(hash chainhash.Hash, bits uint32, limit *big.Int) bool {
	target, err := Target(bits)
	if nil != err || 0 == target.Sign() {
		return false
	}
	if nil != limit && target.Cmp(limit) > 0 {
		return false
	}
	return HashValue(hash).Cmp(target) <= 0
}
