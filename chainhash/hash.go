// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/chaindb/fault"
)

// Size - number of bytes in a hash
const Size = 32

// Hash - block, transaction and commitment identifier
//
// stored as little endian byte array
// represented as big endian hex value for print
// represented as little endian hex text for JSON encoding
type Hash [Size]byte

// Zero - the null hash
var Zero Hash

// Sum - canonical hash of a byte slice
func Sum(record []byte) Hash {
	return sha3.Sum256(record)
}

// IsZero - true for the null hash
func (h Hash) IsZero() bool {
	return h == Zero
}

// Bytes - copy of the raw little endian bytes
func (h Hash) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, h[:])
	return b
}

// internal function to return a reversed byte order copy of a hash
func reversed(h Hash) []byte {
	result := make([]byte, Size)
	for i := 0; i < Size; i += 1 {
		result[i] = h[Size-1-i]
	}
	return result
}

// String - big endian hex for the fmt package (for %s)
func (h Hash) String() string {
	return hex.EncodeToString(reversed(h))
}

// GoString - big endian hex for the fmt package (for %#v)
func (h Hash) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(reversed(h)) + ">"
}

// Scan - convert a big endian hex representation to a hash for use
// by the fmt package scan routines
func (h *Hash) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(Size) {
		return fault.ErrInvalidHashLength
	}

	buffer := make([]byte, Size)
	if _, err := hex.Decode(buffer, token); nil != err {
		return err
	}
	for i, v := range buffer {
		h[Size-1-i] = v
	}
	return nil
}

// MarshalText - convert hash to little endian hex text
func (h Hash) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Size))
	hex.Encode(buffer, h[:])
	return buffer, nil
}

// UnmarshalText - convert little endian hex text into a hash
func (h *Hash) UnmarshalText(s []byte) error {
	if Size != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidHashLength
	}
	_, err := hex.Decode(h[:], s)
	return err
}

// FromBytes - convert and validate a little endian byte slice
func FromBytes(h *Hash, buffer []byte) error {
	if Size != len(buffer) {
		return fault.ErrInvalidHashLength
	}
	copy(h[:], buffer)
	return nil
}

// FromString - parse big endian hex as printed by String
func FromString(s string) (Hash, error) {
	var h Hash
	if len(s) != hex.EncodedLen(Size) {
		return h, fault.ErrInvalidHashLength
	}
	_, err := fmt.Sscan(s, &h)
	return h, err
}
