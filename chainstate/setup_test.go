// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstate_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/chaindb/blockindex"
	"github.com/bitmark-inc/chaindb/chain"
	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/chainstate"
)

const (
	testingDirName = "testing"

	// easiest target of the local chain
	localBits = 0x207fffff
)

func TestMain(m *testing.M) {
	setupTestLogger()
	result := m.Run()
	teardownTestLogger()
	os.Exit(result)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// configuration for the local chain below a fresh temporary directory
func testConfiguration(t *testing.T, memory bool) (*chainstate.Configuration, string) {
	dir, err := ioutil.TempDir("", "chainstate")
	require.Nil(t, err, "temp dir")

	config := chainstate.DefaultConfiguration()
	config.DataDirectory = dir
	config.Chain = chain.Local
	config.CacheSize = 8
	config.Memory = memory
	require.Nil(t, config.Normalise(), "normalise")

	return config, dir
}

// a block hash that passes the local chain proof of work
func blockHash(n byte) chainhash.Hash {
	var h chainhash.Hash
	h[0] = n
	h[1] = 0x5a
	return h
}

// genesis plus count-1 proof of work blocks
func writeChain(t *testing.T, db *blockindex.DB, count int) []chainhash.Hash {
	hashes := make([]chainhash.Hash, count)
	for i := range hashes {
		hashes[i] = blockHash(byte(i + 1))
	}
	for i, hash := range hashes {
		d := &blockindex.DiskBlockIndex{
			Hash:    hash,
			Height:  uint32(i),
			Version: 4,
			Time:    1500000000 + uint32(i)*60,
			Bits:    localBits,
			TxCount: 1,
		}
		if i > 0 {
			d.Prev = hashes[i-1]
		}
		if i < count-1 {
			d.Next = hashes[i+1]
		}
		require.Nil(t, db.WriteBlockIndex(d), "write block: %d", i)
	}
	return hashes
}
