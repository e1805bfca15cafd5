// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func runWipe(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	kind := c.String("kind")
	if "" == kind {
		return errors.Wrap(ErrMissingParameter, "--kind")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "wiping: %s\n", kind)
	}

	count, err := m.state.Zerocoin.Wipe(m.ctx, kind)
	if nil != err {
		return err
	}

	result := struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
	}{
		Kind:  kind,
		Count: count,
	}
	return printJson(m.w, result)
}
