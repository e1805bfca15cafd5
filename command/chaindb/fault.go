// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/chaindb/fault"
)

// common errors - keep in alphabetic order
const (
	ErrBlockNotFound    = fault.NotFoundError("block not found")
	ErrCoinsNotFound    = fault.NotFoundError("transaction has no unspent outputs")
	ErrInvalidHex       = fault.InvalidError("invalid hex value")
	ErrInvalidIndex     = fault.InvalidError("invalid output index")
	ErrMissingParameter = fault.InvalidError("missing required parameter")
	ErrNameNotFound     = fault.NotFoundError("name not found")
	ErrRecordNotFound   = fault.NotFoundError("record not found")
)
