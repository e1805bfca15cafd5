// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/chaindb/coins"
)

func runInvalid(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := hashOption(c, "txid")
	if nil != err {
		return err
	}

	index := c.Int("index")
	if index < 0 {
		return errors.Wrapf(ErrInvalidIndex, "--index: %d", index)
	}

	o := coins.OutPoint{
		TxId:  txId,
		Index: uint32(index),
	}

	result := struct {
		OutPoint string `json:"outpoint"`
		Invalid  bool   `json:"invalid"`
	}{
		OutPoint: o.String(),
		Invalid:  m.state.IsInvalid(o),
	}
	return printJson(m.w, result)
}
