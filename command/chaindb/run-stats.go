// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// heights come from the block index
	if _, err := m.state.Load(m.ctx); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "scanning coin database\n")
	}

	stats, err := m.state.Stats(m.ctx)
	if nil != err {
		return err
	}

	return printJson(m.w, stats)
}
