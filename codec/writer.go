// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"math/big"

	"github.com/bitmark-inc/chaindb/chainhash"
)

// Writer - accumulate the payload of a value record
type Writer struct {
	buffer []byte
}

// NewWriter - empty payload
func NewWriter() *Writer {
	return &Writer{
		buffer: make([]byte, 0, 64),
	}
}

// Varint - unsigned integer as varint64
func (w *Writer) Varint(value uint64) {
	w.buffer = PutVarint64(w.buffer, value)
}

// Int64 - signed integer as zig-zag varint64
func (w *Writer) Int64(value int64) {
	w.buffer = PutVarint64(w.buffer, zigzag(value))
}

// Uint32 - unsigned 32 bit integer as varint64
func (w *Writer) Uint32(value uint32) {
	w.Varint(uint64(value))
}

// Int32 - signed 32 bit integer as zig-zag varint64
func (w *Writer) Int32(value int32) {
	w.Int64(int64(value))
}

// Byte - a single raw byte
func (w *Writer) Byte(b byte) {
	w.buffer = append(w.buffer, b)
}

// Bool - one byte 0x00 or 0x01
func (w *Writer) Bool(b bool) {
	if b {
		w.Byte(1)
	} else {
		w.Byte(0)
	}
}

// Hash - fixed 32 bytes
func (w *Writer) Hash(h chainhash.Hash) {
	w.buffer = append(w.buffer, h[:]...)
}

// Bytes - varint64(length) ++ data
func (w *Writer) Bytes(data []byte) {
	w.Varint(uint64(len(data)))
	w.buffer = append(w.buffer, data...)
}

// Text - varint64(length) ++ text
func (w *Writer) Text(s string) {
	w.Bytes([]byte(s))
}

// Big - sign byte ++ varint64(length) ++ big endian magnitude
func (w *Writer) Big(value *big.Int) {
	w.buffer = appendBig(w.buffer, value)
}

// Payload - the bytes written so far without an envelope
func (w *Writer) Payload() []byte {
	return w.buffer
}

// Record - wrap the payload in the versioned envelope
//
//   varint64(version) ++ varint64(length) ++ payload
func (w *Writer) Record(version uint64) []byte {
	record := make([]byte, 0, 2*Varint64MaximumBytes+len(w.buffer))
	record = PutVarint64(record, version)
	record = PutVarint64(record, uint64(len(w.buffer)))
	return append(record, w.buffer...)
}

func appendBig(buffer []byte, value *big.Int) []byte {
	sign := byte(0)
	magnitude := []byte{}
	if nil != value {
		if value.Sign() < 0 {
			sign = 1
		}
		magnitude = value.Bytes()
	}
	buffer = append(buffer, sign)
	buffer = PutVarint64(buffer, uint64(len(magnitude)))
	return append(buffer, magnitude...)
}

// EncodeBig - canonical byte form of a large integer
func EncodeBig(value *big.Int) []byte {
	return appendBig(nil, value)
}

// HashBig - canonical hash of a large integer
//
// used as the key of commitment (pubcoin) and serial number records
func HashBig(value *big.Int) chainhash.Hash {
	return chainhash.Sum(EncodeBig(value))
}
