// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"testing"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xfffffffffffffffe, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestPutVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := PutVarint64(nil, item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: PutVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), 0xff, 0x97, 0x23)
		value, count := Varint64(b)
		if value != item.value {
			t.Errorf("%d: Varint64(%x) -> %d  expected: %d", i, b, value, item.value)
		}
		if count != len(item.encoded) {
			t.Errorf("%d: Varint64(%x) used %d bytes  expected: %d", i, b, count, len(item.encoded))
		}
	}
}

func TestVarint64Truncated(t *testing.T) {
	for i, item := range varint64TruncatedTests {
		value, count := Varint64(item)
		if 0 != value || 0 != count {
			t.Errorf("%d: Varint64(%x) -> %d, %d  expected: 0, 0", i, item, value, count)
		}
	}
}

func TestZigzag(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 2, -2, 500, -500, 1 << 62, -1 << 63} {
		if back := unzigzag(zigzag(n)); back != n {
			t.Errorf("zigzag(%d) round trip -> %d", n, back)
		}
	}
	if 1 != zigzag(-1) {
		t.Errorf("zigzag(-1) -> %d  expected: 1", zigzag(-1))
	}
}
