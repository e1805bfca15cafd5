// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstate

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/accumulator"
	"github.com/bitmark-inc/chaindb/blockindex"
	"github.com/bitmark-inc/chaindb/chain"
	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/coins"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/storage"
	"github.com/bitmark-inc/chaindb/zerocoin"
)

// database directories relative to the data directory
const (
	CoinsDirectory      = "chainstate"
	BlockIndexDirectory = "blocks/index"
	ZerocoinDirectory   = "zerocoin"
)

// format version written to all three databases
const databaseVersion = 1

// named flag recording that the transaction index is maintained
const TxIndexFlag = "txindex"

// State - the three open databases and the in-memory state built from them
type State struct {
	sync.Mutex

	Params      *chain.Params
	Coins       *coins.DB
	BlockIndex  *blockindex.DB
	Zerocoin    *zerocoin.DB
	Index       *blockindex.Index
	Checkpoints *accumulator.Checkpoints
	Invalid     coins.InvalidOutPoints

	handles []*storage.Handle
	loaded  bool
	log     *logger.L
}

// Summary - what Load found
type Summary struct {
	Records       int                   `json:"records"`
	Nodes         int                   `json:"nodes"`
	Stubs         int                   `json:"stubs"`
	Checkpoints   int                   `json:"checkpoints"`
	Missing       int                   `json:"missingAccumulatorValues"`
	LastFile      uint32                `json:"lastFile"`
	HasLastFile   bool                  `json:"hasLastFile"`
	HighestFile   uint32                `json:"highestFileInfo"`
	Files         []blockindex.FileInfo `json:"files"`
	Reindexing    bool                  `json:"reindexing"`
	TxIndex       bool                  `json:"txIndex"`
	Tip           chainhash.Hash        `json:"tip"`
	TipHeight     uint32                `json:"tipHeight"`
	BestBlock     chainhash.Hash        `json:"bestBlock"`
	BestUnindexed bool                  `json:"bestBlockUnindexed"`
}

// Open - open (or create) all databases described by the configuration
//
// the configuration must already be normalised
func Open(config *Configuration) (*State, error) {
	if nil == config {
		return nil, fault.ErrNotInitialised
	}

	params, err := chain.ParamsFor(config.Chain)
	if nil != err {
		return nil, err
	}

	invalid, err := readInvalidOutPoints(config.InvalidFile)
	if nil != err {
		return nil, err
	}

	s := &State{
		Params:  params,
		Index:   blockindex.NewIndex(),
		Invalid: invalid,
		log:     logger.New("chainstate"),
	}

	// coins get three quarters of the cache
	cache := config.CacheSize << 20
	blockIndexCache := cache / 8
	zerocoinCache := cache / 8
	coinsCache := cache - blockIndexCache - zerocoinCache

	open := func(directory string, cacheSize int) (*storage.Handle, error) {
		h, err := storage.Open(filepath.Join(config.DataDirectory, directory), storage.Options{
			CacheSize: cacheSize,
			Memory:    config.Memory,
			Wipe:      config.Wipe,
			ReadOnly:  config.ReadOnly,
			Version:   databaseVersion,
		})
		if nil != err {
			return nil, err
		}
		s.handles = append(s.handles, h)
		return h, nil
	}

	coinsHandle, err := open(CoinsDirectory, coinsCache)
	if nil != err {
		s.Close()
		return nil, err
	}
	if s.Coins, err = coins.New(coinsHandle); nil != err {
		s.Close()
		return nil, err
	}

	blockIndexHandle, err := open(BlockIndexDirectory, blockIndexCache)
	if nil != err {
		s.Close()
		return nil, err
	}
	if s.BlockIndex, err = blockindex.New(blockIndexHandle); nil != err {
		s.Close()
		return nil, err
	}

	zerocoinHandle, err := open(ZerocoinDirectory, zerocoinCache)
	if nil != err {
		s.Close()
		return nil, err
	}
	if s.Zerocoin, err = zerocoin.New(zerocoinHandle); nil != err {
		s.Close()
		return nil, err
	}

	s.Checkpoints = accumulator.New(s.Zerocoin)

	s.log.Infof("opened chain: %s  data directory: %q  memory: %t", params.Name, config.DataDirectory, config.Memory)
	return s, nil
}

func readInvalidOutPoints(fileName string) (coins.InvalidOutPoints, error) {
	if "" == fileName {
		return coins.LoadInvalidOutPoints(coins.DefaultInvalidOutPoints)
	}
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, errors.Wrapf(err, "invalid outpoints file: %q", fileName)
	}
	return coins.LoadInvalidOutPoints(string(data))
}

// Load - rebuild the block index and accumulator cache at startup
//
// may only succeed once; a failed load discards the partial index
// and checkpoint cache so it can be retried
func (s *State) Load(ctx context.Context) (*Summary, error) {
	s.Lock()
	defer s.Unlock()

	if nil == s.BlockIndex {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if s.loaded {
		return nil, fault.ErrAlreadyInitialised
	}

	summary, err := s.load(ctx)
	if nil != err {
		s.Index = blockindex.NewIndex()
		s.Checkpoints.Clear()
		return nil, err
	}

	s.loaded = true
	s.log.Infof("load: tip: %s  height: %d  best block: %s", summary.Tip, summary.TipHeight, summary.BestBlock)
	return summary, nil
}

func (s *State) load(ctx context.Context) (*Summary, error) {
	records, err := s.BlockIndex.Load(ctx, s.Index, s.Checkpoints, s.Params.CheckProofOfWork, s.Params)
	if nil != err {
		return nil, err
	}

	summary := &Summary{
		Records:     records,
		Nodes:       s.Index.Len(),
		Stubs:       len(s.Index.Stubs()),
		Checkpoints: s.Checkpoints.Count(),
		Missing:     s.Checkpoints.Missing(),
	}

	summary.LastFile, summary.HasLastFile, err = s.BlockIndex.ReadLastFile()
	if nil != err {
		return nil, err
	}
	if summary.HasLastFile {
		for file := uint32(0); file <= summary.LastFile; file += 1 {
			info, err := s.BlockIndex.ReadFileInfo(file)
			if nil != err {
				return nil, err
			}
			if nil == info {
				s.log.Warnf("load: file: %d has no info", file)
				continue
			}
			summary.Files = append(summary.Files, *info)
		}
		s.log.Infof("load: last block file: %d  %d file infos", summary.LastFile, len(summary.Files))
	}

	highest, found, err := s.BlockIndex.HighestFileInfo()
	if nil != err {
		return nil, err
	}
	if found {
		summary.HighestFile = highest
		if !summary.HasLastFile || highest > summary.LastFile {
			s.log.Warnf("load: file info: %d is beyond the last block file", highest)
		}
	}

	summary.Reindexing, err = s.BlockIndex.ReadReindexing()
	if nil != err {
		return nil, err
	}
	if summary.Reindexing {
		s.log.Warn("load: reindexing was interrupted")
	}

	summary.TxIndex, _, err = s.BlockIndex.ReadFlag(TxIndexFlag)
	if nil != err {
		return nil, err
	}

	if tip := s.Index.Tip(); nil != tip {
		summary.Tip = tip.Hash
		summary.TipHeight = tip.Height
	}

	summary.BestBlock, err = s.Coins.BestBlock()
	if nil != err {
		return nil, err
	}
	if !summary.BestBlock.IsZero() {
		if _, ok := s.Index.Height(summary.BestBlock); !ok {
			summary.BestUnindexed = true
			s.log.Warnf("load: coin best block: %s is not in block index", summary.BestBlock)
		}
	}

	return summary, nil
}

// Stats - coin set statistics with heights taken from the block index
//
// without a prior Load the height of the best block is unknown
func (s *State) Stats(ctx context.Context) (*coins.Stats, error) {
	if nil == s.Coins {
		return nil, fault.ErrDatabaseIsNotSet
	}
	return s.Coins.Stats(ctx, s.Index)
}

// IsInvalid - check an output against the invalid outpoint list
func (s *State) IsInvalid(o coins.OutPoint) bool {
	return s.Invalid.IsInvalid(o)
}

// Close - close every open database
//
// the first error is returned but all databases are closed
func (s *State) Close() error {
	var first error
	for i := len(s.handles) - 1; i >= 0; i -= 1 {
		if err := s.handles[i].Close(); nil != err && nil == first {
			first = err
		}
	}
	s.handles = nil
	if nil != s.Checkpoints {
		s.Checkpoints.Clear()
	}
	if nil != s.log {
		s.log.Info("closed")
	}
	return first
}
