// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - keys and values of the chain state databases
//
// Every key is a single kind byte followed by a kind specific payload,
// so each kind occupies the contiguous key range [tag, tag+1)
//
// Notes:
// 1. ++        = concatenation of byte data
// 2. hash      = 32 byte little endian hash as stored in chainhash.Hash
// 3. uint32    = big endian uint32 (4 bytes) so numeric order is key order
// 4. string    = varint64(length) ++ bytes
// 5. varint64  = 7 bits per byte, low order first, see PutVarint64
//
// Keys:
//
//   c ++ txId                  - coin record                 (chainstate)
//   B                          - best block hash             (chainstate)
//   b ++ block hash            - block index record          (blocks/index)
//   f ++ file number(uint32)   - block file information      (blocks/index)
//   l                          - last block file number      (blocks/index)
//   R                          - reindexing in progress      (blocks/index)
//   t ++ txId                  - transaction disk position   (blocks/index)
//   F ++ name(string)          - named flag '1' or '0'       (blocks/index)
//   I ++ name(string)          - named integer               (blocks/index)
//   m ++ commitment hash       - minting txId                (zerocoin)
//   s ++ serial hash           - spending txId               (zerocoin)
//   2 ++ checksum(uint32)      - accumulator value           (zerocoin)
//
// Values:
//
//   varint64(format version) ++ varint64(length of payload) ++ payload
//
// A record whose version is newer than the reader supports, whose
// length does not match or whose payload ends early is rejected with
// a fault.RecordError; fields are only ever appended to a payload so
// a reader can decide from the version which fields are present.
package codec
