// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/fault"
)

func TestScanFmt(t *testing.T) {

	// big endian
	stringHash := "00000000440b921e1b77c6c0487ae5616de67f788f44ae2a5af6e2194d16b6f8"

	var h chainhash.Hash
	n, err := fmt.Sscan(stringHash, &h)
	if nil != err {
		t.Fatalf("hex to hash error: %v", err)
	}
	if 1 != n {
		t.Fatalf("scanned %d items expected to scan 1", n)
	}

	// bytes as little endian format
	expected := chainhash.Hash{
		0xf8, 0xb6, 0x16, 0x4d,
		0x19, 0xe2, 0xf6, 0x5a,
		0x2a, 0xae, 0x44, 0x8f,
		0x78, 0x7f, 0xe6, 0x6d,
		0x61, 0xe5, 0x7a, 0x48,
		0xc0, 0xc6, 0x77, 0x1b,
		0x1e, 0x92, 0x0b, 0x44,
		0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, expected, h, "little endian bytes")
	assert.Equal(t, stringHash, h.String(), "string")
	assert.Equal(t, "<SHA3-256:"+stringHash+">", fmt.Sprintf("%#v", h), "go string")
}

func TestSum(t *testing.T) {
	h := chainhash.Sum([]byte("hello world"))

	// printf '%s' 'hello world' | sha3sum -a 256 | awk '{for(i=length($1);i>0;i-=2)x=x substr($1,i-1,2);print x}'
	expected, err := chainhash.FromString("38394ef2fb3b1ca394fd72d9a1fb71caf322769ec8aa9909047343567ecc4b64")
	assert.Nil(t, err, "from string")
	assert.Equal(t, expected, h, "sha3 of hello world")
	assert.False(t, h.IsZero(), "non-zero")
	assert.True(t, chainhash.Zero.IsZero(), "zero")
}

func TestJSON(t *testing.T) {
	h := chainhash.Sum([]byte("json"))

	buffer, err := json.Marshal(h)
	assert.Nil(t, err, "marshal")

	var back chainhash.Hash
	err = json.Unmarshal(buffer, &back)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, h, back, "round trip")
}

func TestFromBytes(t *testing.T) {
	var h chainhash.Hash
	err := chainhash.FromBytes(&h, []byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidHashLength, err, "short buffer")

	b := make([]byte, chainhash.Size)
	b[0] = 0x42
	err = chainhash.FromBytes(&h, b)
	assert.Nil(t, err, "full buffer")
	assert.Equal(t, byte(0x42), h[0], "first byte")

	_, err = chainhash.FromString("1234")
	assert.Equal(t, fault.ErrInvalidHashLength, err, "short string")
}
