// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	summary, err := m.state.Load(m.ctx)
	if nil != err {
		return err
	}

	info := struct {
		Chain         string      `json:"chain"`
		DataDirectory string      `json:"dataDirectory"`
		Summary       interface{} `json:"summary"`
	}{
		Chain:         m.config.Chain,
		DataDirectory: m.config.DataDirectory,
		Summary:       summary,
	}

	return printJson(m.w, info)
}
