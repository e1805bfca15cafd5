// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zerocoin - commitment (mint), serial (spend) and accumulator records
//
//   m ++ HashBig(commitment)  - txId that minted the commitment
//   s ++ HashBig(serial)      - txId that spent the serial number
//   2 ++ checksum             - accumulator value
//
// every mint and spend operation accepts either the large integer
// value or its canonical hash; the value forms hash with
// codec.HashBig and then use the hash forms
package zerocoin
