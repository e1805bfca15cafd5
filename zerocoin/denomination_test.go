// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zerocoin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chaindb/zerocoin"
)

func TestDenominations(t *testing.T) {
	assert.Equal(t, 8, len(zerocoin.Denominations), "count")
	assert.True(t, zerocoin.DenominationFifty.Valid(), "fifty")
	assert.False(t, zerocoin.Denomination(2).Valid(), "two")
	assert.False(t, zerocoin.DenominationError.Valid(), "error")
	assert.Equal(t, 7, zerocoin.DenominationFiveThousand.Index(), "index")
	assert.Equal(t, -1, zerocoin.Denomination(3).Index(), "bad index")
	assert.Equal(t, "500", zerocoin.DenominationFiveHundred.String(), "string")
}
