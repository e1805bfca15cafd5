// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"math"
	"math/big"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/fault"
)

// Reader - decode the payload of a value record
//
// the first failure is kept and every later read returns a zero
// value, so a decoder can read all fields and check Finish once
type Reader struct {
	buffer  []byte
	offset  int
	version uint64
	err     error
}

// Open - check the envelope of a record and return a reader for its payload
//
// records newer than maximumVersion are rejected
func Open(record []byte, maximumVersion uint64) (*Reader, error) {
	version, n := Varint64(record)
	if 0 == n {
		return nil, fault.ErrRecordTruncated
	}
	if version > maximumVersion {
		return nil, fault.ErrRecordVersion
	}
	record = record[n:]

	length, n := Varint64(record)
	if 0 == n {
		return nil, fault.ErrRecordTruncated
	}
	record = record[n:]

	if uint64(len(record)) < length {
		return nil, fault.ErrRecordTruncated
	}
	if uint64(len(record)) > length {
		return nil, fault.ErrRecordTrailingData
	}

	return &Reader{
		buffer:  record,
		version: version,
	}, nil
}

// Version - format version from the envelope
func (r *Reader) Version() uint64 {
	return r.version
}

// Remaining - bytes not yet read
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// Err - first error seen
func (r *Reader) Err() error {
	return r.err
}

// Finish - the first error, or an error if the payload was not
// completely consumed
func (r *Reader) Finish() error {
	if nil != r.err {
		return r.err
	}
	if r.offset != len(r.buffer) {
		return fault.ErrRecordTrailingData
	}
	return nil
}

func (r *Reader) fail(err error) {
	if nil == r.err {
		r.err = err
	}
}

func (r *Reader) take(count int) []byte {
	if nil != r.err {
		return nil
	}
	if count < 0 || r.Remaining() < count {
		r.fail(fault.ErrRecordTruncated)
		return nil
	}
	b := r.buffer[r.offset : r.offset+count]
	r.offset += count
	return b
}

// Varint - unsigned varint64
func (r *Reader) Varint() uint64 {
	if nil != r.err {
		return 0
	}
	value, n := Varint64(r.buffer[r.offset:])
	if 0 == n {
		r.fail(fault.ErrRecordTruncated)
		return 0
	}
	r.offset += n
	return value
}

// Int64 - signed zig-zag varint64
func (r *Reader) Int64() int64 {
	return unzigzag(r.Varint())
}

// Uint32 - varint64 that must fit 32 bits
func (r *Reader) Uint32() uint32 {
	value := r.Varint()
	if value > math.MaxUint32 {
		r.fail(fault.ErrRecordValueOutOfRange)
		return 0
	}
	return uint32(value)
}

// Int32 - zig-zag varint64 that must fit 32 bits
func (r *Reader) Int32() int32 {
	value := r.Int64()
	if value > math.MaxInt32 || value < math.MinInt32 {
		r.fail(fault.ErrRecordValueOutOfRange)
		return 0
	}
	return int32(value)
}

// Byte - a single raw byte
func (r *Reader) Byte() byte {
	b := r.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

// Bool - one byte that must be 0x00 or 0x01
func (r *Reader) Bool() bool {
	switch r.Byte() {
	case 0:
		return false
	case 1:
		return true
	default:
		r.fail(fault.ErrRecordValueOutOfRange)
		return false
	}
}

// Hash - fixed 32 bytes
func (r *Reader) Hash() chainhash.Hash {
	var h chainhash.Hash
	if b := r.take(chainhash.Size); nil != b {
		copy(h[:], b)
	}
	return h
}

// Bytes - varint64(length) ++ data, the result is a copy
func (r *Reader) Bytes() []byte {
	length := r.Varint()
	if nil != r.err {
		return nil
	}
	if length > uint64(r.Remaining()) {
		r.fail(fault.ErrRecordTruncated)
		return nil
	}
	b := r.take(int(length))
	if nil == b {
		return nil
	}
	data := make([]byte, len(b))
	copy(data, b)
	return data
}

// Text - varint64(length) ++ text
func (r *Reader) Text() string {
	return string(r.Bytes())
}

// Big - sign byte ++ varint64(length) ++ big endian magnitude
func (r *Reader) Big() *big.Int {
	sign := r.Byte()
	magnitude := r.Bytes()
	if nil != r.err {
		return nil
	}
	if sign > 1 {
		r.fail(fault.ErrRecordValueOutOfRange)
		return nil
	}
	value := new(big.Int).SetBytes(magnitude)
	if 1 == sign {
		value.Neg(value)
	}
	return value
}
