// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type flagResult struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

type intResult struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

func runFlag(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := strings.TrimSpace(c.String("name"))
	if "" == name {
		return errors.Wrap(ErrMissingParameter, "--name")
	}

	if s := c.String("set"); "" != s {
		value, err := strconv.ParseBool(s)
		if nil != err {
			return errors.Wrapf(err, "--set: %q", s)
		}
		if err := m.state.BlockIndex.WriteFlag(name, value); nil != err {
			return err
		}
		return printJson(m.w, flagResult{Name: name, Value: value})
	}

	value, found, err := m.state.BlockIndex.ReadFlag(name)
	if nil != err {
		return err
	}
	if !found {
		return errors.Wrapf(ErrNameNotFound, "flag: %q", name)
	}
	return printJson(m.w, flagResult{Name: name, Value: value})
}

func runInt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := strings.TrimSpace(c.String("name"))
	if "" == name {
		return errors.Wrap(ErrMissingParameter, "--name")
	}

	if s := c.String("set"); "" != s {
		value, err := strconv.ParseInt(s, 10, 32)
		if nil != err {
			return errors.Wrapf(err, "--set: %q", s)
		}
		if err := m.state.BlockIndex.WriteInt(name, int32(value)); nil != err {
			return err
		}
		return printJson(m.w, intResult{Name: name, Value: int32(value)})
	}

	value, found, err := m.state.BlockIndex.ReadInt(name)
	if nil != err {
		return err
	}
	if !found {
		return errors.Wrapf(ErrNameNotFound, "int: %q", name)
	}
	return printJson(m.w, intResult{Name: name, Value: value})
}
