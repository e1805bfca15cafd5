// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chaindb/chain"
	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/fault"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Main, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "chain: %s", name)

		p, err := chain.ParamsFor(name)
		assert.Nil(t, err, "params: %s", name)
		assert.Equal(t, name, p.Name, "name")
		assert.True(t, p.PowLimit().Sign() > 0, "pow limit: %s", name)
	}

	assert.False(t, chain.Valid("bitcoin"), "unknown chain")
	_, err := chain.ParamsFor("bitcoin")
	assert.True(t, fault.IsErrInvalid(err), "unknown chain params: %v", err)
}

func TestCheckProofOfWork(t *testing.T) {
	p, _ := chain.ParamsFor(chain.Local)
	assert.Equal(t, uint32(300), p.ZerocoinV2StartHeight(), "v2 start")

	var easy chainhash.Hash
	easy[0] = 1
	assert.True(t, p.CheckProofOfWork(easy, 0x207fffff), "hash below limit")

	mainParams, _ := chain.ParamsFor(chain.Main)
	assert.False(t, mainParams.CheckProofOfWork(easy, 0x207fffff), "target above main limit")
}
