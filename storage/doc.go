// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain an on-disk data store
//
// Each Handle owns one LevelDB database split into a series of
// pools.  Each pool is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available pools:
//
//   type pools struct {
//           Coins     *storage.PoolHandle `prefix:"c"`
//           BestBlock *storage.PoolHandle `prefix:"B"`
//   }
//
// Notes:
// 1. each pool has a single byte prefix (see codec for the layout of keys)
// 2. the database version is stored under a key starting with 0x00
//    so it is outside every pool
// 3. a Batch is applied atomically; nothing is visible until Commit
// 4. cursors poll a context so that long scans can be abandoned
package storage
