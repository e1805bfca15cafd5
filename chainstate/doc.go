// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainstate - open the node's three databases together
//
// the databases live below the data directory:
//
//   chainstate/    coins and best block
//   blocks/index/  block index, file info, tx index, flags
//   zerocoin/      mints, spends, accumulator values
//
// Load rebuilds the in-memory block index and the accumulator
// checkpoint cache; it must complete before the index is used.
package chainstate
