// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/chaindb/difficulty"
	"github.com/bitmark-inc/chaindb/fault"
)

// test difficulty one
func TestFloatOne(t *testing.T) {

	expected := 1.0

	d, err := difficulty.New(difficulty.DefaultUint32)
	if nil != err {
		t.Fatalf("new error: %s", err)
	}
	actual := d.Pdiff()

	if actual != expected {
		t.Errorf("actual: %f  expected: %f  diff: %g", actual, expected, actual-expected)
	}
}

// test 32 bit word
func TestUint32(t *testing.T) {

	d, _ := difficulty.New(difficulty.DefaultUint32)

	value := uint32(0x1b0404cb)
	expected := 16307.669773817162

	if err := d.SetBits(value); nil != err {
		t.Fatalf("set bits error: %s", err)
	}
	actual := d.Pdiff()

	if actual != expected {
		t.Errorf("actual: %f  expected: %f  diff: %g", actual, expected, actual-expected)
	}

	hexActual := d.String()
	hexExpected := fmt.Sprintf("%08x", value)

	if hexActual != hexExpected {
		t.Errorf("hex: actual: %q  expected: %q", hexActual, hexExpected)
	}

	// a second test

	value = uint32(0x1c2ac4af)
	expected = 5.985742435503

	if err := d.SetBits(value); nil != err {
		t.Fatalf("set bits error: %s", err)
	}
	actual = d.Pdiff()

	if actual != expected {
		t.Errorf("actual: %f  expected: %f  diff: %g", actual, expected, actual-expected)
	}

	hexActual = d.String()
	hexExpected = fmt.Sprintf("%08x", value)

	if hexActual != hexExpected {
		t.Errorf("hex: actual: %q  expected: %q", hexActual, hexExpected)
	}
}

// test invalid compact values
func TestInvalidBits(t *testing.T) {
	for _, bits := range []uint32{0x00000000, 0x04923456, 0xff123456} {
		_, err := difficulty.New(bits)
		if !fault.IsErrInvalid(err) {
			t.Errorf("bits: 0x%08x  expected invalid error, actual: %v", bits, err)
		}
	}
}
