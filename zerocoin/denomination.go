// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zerocoin

import (
	"strconv"
)

// Denomination - face value of a zerocoin in whole coins
type Denomination int64

// all valid denominations
const (
	DenominationError        Denomination = 0
	DenominationOne          Denomination = 1
	DenominationFive         Denomination = 5
	DenominationTen          Denomination = 10
	DenominationFifty        Denomination = 50
	DenominationOneHundred   Denomination = 100
	DenominationFiveHundred  Denomination = 500
	DenominationOneThousand  Denomination = 1000
	DenominationFiveThousand Denomination = 5000
)

// Denominations - valid denominations in ascending order
var Denominations = []Denomination{
	DenominationOne,
	DenominationFive,
	DenominationTen,
	DenominationFifty,
	DenominationOneHundred,
	DenominationFiveHundred,
	DenominationOneThousand,
	DenominationFiveThousand,
}

// Valid - check for one of the defined denominations
func (d Denomination) Valid() bool {
	for _, v := range Denominations {
		if d == v {
			return true
		}
	}
	return false
}

// Index - position in Denominations, -1 if not valid
func (d Denomination) Index() int {
	for i, v := range Denominations {
		if d == v {
			return i
		}
	}
	return -1
}

// String - decimal value
func (d Denomination) String() string {
	return strconv.FormatInt(int64(d), 10)
}
