// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/difficulty"
	"github.com/bitmark-inc/chaindb/fault"
)

// names of all chains
const (
	Main    = "main"
	Testing = "testing"
	Local   = "local"
)

// Params - the parameters of one chain used by the storage layer
type Params struct {
	Name string

	// first height whose accumulator checkpoints are loaded
	ZerocoinV2Start uint32

	// compact form of the easiest allowed target
	PowLimitBits uint32

	powLimit *big.Int
}

var params = map[string]*Params{
	Main: {
		Name:            Main,
		ZerocoinV2Start: 1153160,
		PowLimitBits:    0x1e0fffff,
	},
	Testing: {
		Name:            Testing,
		ZerocoinV2Start: 444020,
		PowLimitBits:    0x1e0fffff,
	},
	Local: {
		Name:            Local,
		ZerocoinV2Start: 300,
		PowLimitBits:    0x207fffff,
	},
}

func init() {
	for name, p := range params {
		limit, err := difficulty.Target(p.PowLimitBits)
		if nil != err {
			panic("chain: " + name + ": invalid pow limit")
		}
		p.powLimit = limit
	}
}

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Main, Testing, Local:
		return true
	default:
		return false
	}
}

// ParamsFor - the parameters of a chain
func ParamsFor(name string) (*Params, error) {
	p, ok := params[name]
	if !ok {
		return nil, errors.Wrapf(fault.ErrInvalidChain, "chain: %q", name)
	}
	return p, nil
}

// ZerocoinV2StartHeight - first height whose accumulator checkpoints are used
func (p *Params) ZerocoinV2StartHeight() uint32 {
	return p.ZerocoinV2Start
}

// PowLimit - the easiest allowed target
func (p *Params) PowLimit() *big.Int {
	return new(big.Int).Set(p.powLimit)
}

// CheckProofOfWork - check a block hash against bits and the chain limit
func (p *Params) CheckProofOfWork(hash chainhash.Hash, bits uint32) bool {
	return difficulty.CheckProofOfWork(hash, bits, p.powLimit)
}
