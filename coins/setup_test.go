// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/coins"
	"github.com/bitmark-inc/chaindb/storage"
)

const (
	testingDirName = "testing"
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

// a database whose batch writes can be made to fail
type failingDatabase struct {
	*leveldb.DB
	fail bool
}

var errWriteFailed = errors.New("write failed")

func (f *failingDatabase) Write(batch *leveldb.Batch, wo *ldb_opt.WriteOptions) error {
	if f.fail {
		return errWriteFailed
	}
	return f.DB.Write(batch, wo)
}

func newTestDB(t *testing.T) (*coins.DB, *failingDatabase, *storage.Handle) {
	ldb, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	require.Nil(t, err, "leveldb open")

	database := &failingDatabase{DB: ldb}
	handle, err := storage.NewHandle("coins-test", database, storage.Options{Version: 1})
	require.Nil(t, err, "new handle")

	db, err := coins.New(handle)
	require.Nil(t, err, "coins new")

	return db, database, handle
}

func hashOf(s string) chainhash.Hash {
	return chainhash.Sum([]byte(s))
}

func sampleCoins(height uint32, values ...int64) *coins.Coins {
	c := &coins.Coins{
		Version:  1,
		CoinBase: 0 == height%2,
		Height:   height,
	}
	for i, v := range values {
		out := coins.TxOut{
			Value:  v,
			Script: []byte{0x76, 0xa9, byte(i)},
		}
		if coins.NullValue == v {
			out.SetNull()
		}
		c.Outputs = append(c.Outputs, out)
	}
	return c
}
