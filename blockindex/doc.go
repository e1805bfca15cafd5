// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockindex - block index database and its in-memory graph
//
//   b ++ block hash      - DiskBlockIndex
//   f ++ file number     - FileInfo
//   l                    - last block file number
//   R                    - reindexing in progress (present or absent)
//   t ++ txId            - TxPosition
//   F ++ name            - named flag
//   I ++ name            - named integer
//
// at startup Load scans every block index record into an Index; the
// previous and next links of a node are block hashes so records can
// be loaded in any order
package blockindex
