// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/chaindb/blockindex"
	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/difficulty"
)

// a block index record with its target expanded
type blockResult struct {
	*blockindex.DiskBlockIndex
	BitsHex    string  `json:"bitsHex,omitempty"`
	Target     string  `json:"target,omitempty"`
	Difficulty float64 `json:"difficulty,omitempty"`
}

// invalid bits leave the difficulty fields empty
func newBlockResult(d *blockindex.DiskBlockIndex) *blockResult {
	result := &blockResult{
		DiskBlockIndex: d,
	}
	diff, err := difficulty.New(d.Bits)
	if nil != err {
		return result
	}
	result.BitsHex = diff.String()
	result.Target = fmt.Sprintf("%#v", diff)
	result.Difficulty = diff.Pdiff()
	return result
}

func runBlock(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hash, err := hashOption(c, "hash")
	if nil != err {
		return err
	}

	d, err := m.state.BlockIndex.ReadBlockIndex(hash)
	if nil != err {
		return err
	}
	if nil == d {
		return errors.Wrapf(ErrBlockNotFound, "block: %s", hash)
	}

	return printJson(m.w, newBlockResult(d))
}

func runCoins(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := hashOption(c, "txid")
	if nil != err {
		return err
	}

	coins, err := m.state.Coins.Get(txId)
	if nil != err {
		return err
	}
	if nil == coins {
		return errors.Wrapf(ErrCoinsNotFound, "txid: %s", txId)
	}

	return printJson(m.w, coins)
}

type txIdResult struct {
	Value string         `json:"value"`
	TxId  chainhash.Hash `json:"txid"`
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	commitment, err := bigOption(c, "commitment")
	if nil != err {
		return err
	}

	txId, found, err := m.state.Zerocoin.ReadMintByValue(commitment)
	if nil != err {
		return err
	}
	if !found {
		return errors.Wrapf(ErrRecordNotFound, "commitment: %x", commitment)
	}

	return printJson(m.w, txIdResult{Value: commitment.Text(16), TxId: txId})
}

func runSpend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	serial, err := bigOption(c, "serial")
	if nil != err {
		return err
	}

	txId, found, err := m.state.Zerocoin.ReadSpendBySerial(serial)
	if nil != err {
		return err
	}
	if !found {
		return errors.Wrapf(ErrRecordNotFound, "serial: %x", serial)
	}

	return printJson(m.w, txIdResult{Value: serial.Text(16), TxId: txId})
}

// required hash option in big endian hex
func hashOption(c *cli.Context, name string) (chainhash.Hash, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return chainhash.Hash{}, errors.Wrapf(ErrMissingParameter, "--%s", name)
	}
	return chainhash.FromString(s)
}

// required big number option in hex
func bigOption(c *cli.Context, name string) (*big.Int, error) {
	s := strings.TrimPrefix(strings.TrimSpace(c.String(name)), "0x")
	if "" == s {
		return nil, errors.Wrapf(ErrMissingParameter, "--%s", name)
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidHex, "--%s: %q", name, s)
	}
	return n, nil
}
