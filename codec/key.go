// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/fault"
)

// Tag - the kind byte at the front of every key
type Tag byte

// record kinds, see doc.go for layout
const (
	TagCoins       Tag = 'c'
	TagBestBlock   Tag = 'B'
	TagBlockIndex  Tag = 'b'
	TagFileInfo    Tag = 'f'
	TagLastFile    Tag = 'l'
	TagReindexing  Tag = 'R'
	TagTxIndex     Tag = 't'
	TagFlag        Tag = 'F'
	TagInt         Tag = 'I'
	TagMint        Tag = 'm'
	TagSpend       Tag = 's'
	TagAccumulator Tag = '2'
)

// Range - start (included) and limit (excluded) of all keys of a tag
func (t Tag) Range() ([]byte, []byte) {
	start := []byte{byte(t)}
	if 0xff == t {
		return start, nil
	}
	return start, []byte{byte(t) + 1}
}

// Key - a key consisting of only the tag
func (t Tag) Key() []byte {
	return []byte{byte(t)}
}

// HashKey - tag ++ hash
func (t Tag) HashKey(h chainhash.Hash) []byte {
	key := make([]byte, 1, 1+chainhash.Size)
	key[0] = byte(t)
	return append(key, h[:]...)
}

// Uint32Key - tag ++ big endian uint32
func (t Tag) Uint32Key(n uint32) []byte {
	return append([]byte{byte(t)}, Uint32Payload(n)...)
}

// StringKey - tag ++ varint64(length) ++ name
func (t Tag) StringKey(name string) []byte {
	return append([]byte{byte(t)}, StringPayload(name)...)
}

// Uint32Payload - the key payload of a number: big endian uint32
func Uint32Payload(n uint32) []byte {
	payload := make([]byte, 4)
	binary.BigEndian.PutUint32(payload, n)
	return payload
}

// StringPayload - the key payload of a name: varint64(length) ++ name
func StringPayload(name string) []byte {
	payload := make([]byte, 0, Varint64MaximumBytes+len(name))
	payload = PutVarint64(payload, uint64(len(name)))
	return append(payload, name...)
}

// Has - check that key belongs to this tag
func (t Tag) Has(key []byte) bool {
	return len(key) > 0 && byte(t) == key[0]
}

// HashFromKey - recover the hash part of a tag ++ hash key
func (t Tag) HashFromKey(key []byte) (chainhash.Hash, error) {
	var h chainhash.Hash
	if !t.Has(key) {
		return h, fault.ErrKeyNotInRange
	}
	if err := chainhash.FromBytes(&h, key[1:]); nil != err {
		return h, err
	}
	return h, nil
}

// Uint32FromKey - recover the number part of a tag ++ uint32 key
func (t Tag) Uint32FromKey(key []byte) (uint32, error) {
	if !t.Has(key) {
		return 0, fault.ErrKeyNotInRange
	}
	if 5 != len(key) {
		return 0, fault.ErrRecordTruncated
	}
	return binary.BigEndian.Uint32(key[1:]), nil
}

// StringFromKey - recover the name part of a tag ++ string key
func (t Tag) StringFromKey(key []byte) (string, error) {
	if !t.Has(key) {
		return "", fault.ErrKeyNotInRange
	}
	length, n := Varint64(key[1:])
	if 0 == n || uint64(len(key)-1-n) != length {
		return "", fault.ErrRecordTruncated
	}
	return string(key[1+n:]), nil
}

// String - the tag as printable text
func (t Tag) String() string {
	return string([]byte{byte(t)})
}
