// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coins - the unspent transaction output set
//
// one record per transaction that still has at least one unspent
// output, plus the hash of the block the set is consistent with
//
//   c ++ txId  - Coins record
//   B          - best block hash
//
// changes are accumulated in a CacheMap by the caller and written with
// Flush, which applies the coin changes and the new best block as one
// batch
package coins
