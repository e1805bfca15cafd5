// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/fault"
)

// the default uint32 value
const DefaultUint32 = 0x1d00ffff

// Difficulty - a compact target and its pool difficulty
type Difficulty struct {
	sync.RWMutex

	big   big.Int // master value 256 bit integer in target form
	pdiff float64 // cache: pool difficulty
	bits  uint32  // cache: compact form
}

// constOne is for "pdiff" calculation as defined by:
//   https://en.bitcoin.it/wiki/Difficulty#How_is_difficulty_calculated.3F_What_is_the_difference_between_bdiff_and_pdiff.3F
//
// pool difficulty of 1
var constOne = []byte{
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// number of decimal places
const constScale = 1000000000000

var scale big.Int // 10 times bigger for rounding
var one big.Int   // for reciprocal calculation

// on startup
func init() {
	one.SetBytes(constOne)
	scale.SetUint64(10 * constScale)
}

// New - difficulty from a compact value
func New(bits uint32) (*Difficulty, error) {
	d := new(Difficulty)
	if err := d.SetBits(bits); nil != err {
		return nil, err
	}
	return d, nil
}

// Pdiff - 1/difficulty as normal floating-point value
func (difficulty *Difficulty) Pdiff() float64 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.pdiff
}

// Bits - difficulty as short packed value
func (difficulty *Difficulty) Bits() uint32 {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.bits
}

// String - the big endian hex encoded short packed value
func (difficulty *Difficulty) String() string {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return fmt.Sprintf("%08x", difficulty.bits)
}

// GoString - for the %#v format use 256 bit value
func (difficulty *Difficulty) GoString() string {
	return fmt.Sprintf("%064x", difficulty.BigInt())
}

// BigInt - the target as a big.Int
func (difficulty *Difficulty) BigInt() *big.Int {
	difficulty.RLock()
	defer difficulty.RUnlock()
	d := new(big.Int)
	return d.Set(&difficulty.big)
}

// reset difficulty to 1.0
// ensure write locked before calling this
func (difficulty *Difficulty) internalSetToUnity() {
	difficulty.big.Set(&one)
	difficulty.pdiff = 1.0
	difficulty.bits = DefaultUint32
}

// SetBits - set from a 32 bit word (bits)
func (difficulty *Difficulty) SetBits(u uint32) error {

	// quick setup for default
	if DefaultUint32 == u {
		difficulty.Lock()
		defer difficulty.Unlock()
		difficulty.internalSetToUnity()
		return nil
	}

	d, err := Target(u)
	if nil != err {
		return err
	}
	if 0 == d.Sign() {
		return errors.Wrapf(fault.ErrInvalidDifficulty, "difficulty bits: 0x%08x is zero target", u)
	}

	// compute 1/d
	q := new(big.Int)
	r := new(big.Int)
	q.DivMod(&one, d, r)
	r.Mul(r, &scale) // note: big scale == 10 * constScale
	r.Div(r, d)

	result := float64(q.Uint64())
	result += float64((r.Uint64()+5)/10) / constScale

	// modify cache
	difficulty.Lock()
	defer difficulty.Unlock()

	difficulty.big.Set(d)
	difficulty.pdiff = result
	difficulty.bits = u

	return nil
}
