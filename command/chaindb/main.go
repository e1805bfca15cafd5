// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/chaindb/chainstate"
	"github.com/bitmark-inc/chaindb/fault"
)

type metadata struct {
	config  *chainstate.Configuration
	state   *chainstate.State
	ctx     context.Context
	cancel  context.CancelFunc
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "chaindb"
	app.Usage = "inspect and maintain the chain state databases"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "chaindb.conf",
			Usage: " configuration `FILE`",
		},
		cli.StringSliceFlag{
			Name:  "define, d",
			Usage: " set arg.`KEY=VALUE` for the configuration file",
		},
		cli.BoolFlag{
			Name:  "read-only, r",
			Usage: " open the databases read only",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "info",
			Usage:     "load the block index and show a summary",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "stats",
			Usage:     "scan the coin database and show totals and digest",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runStats,
		},
		{
			Name:      "block",
			Usage:     "show a block index record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, b",
					Value: "",
					Usage: "*block `HASH`",
				},
			},
			Action: runBlock,
		},
		{
			Name:      "coins",
			Usage:     "show the unspent outputs of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `TXID`",
				},
			},
			Action: runCoins,
		},
		{
			Name:      "mint",
			Usage:     "show the transaction that minted a commitment",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "commitment, m",
					Value: "",
					Usage: "*commitment value `HEX`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "spend",
			Usage:     "show the transaction that spent a serial",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "serial, s",
					Value: "",
					Usage: "*serial number `HEX`",
				},
			},
			Action: runSpend,
		},
		{
			Name:      "flag",
			Usage:     "read or write a named flag",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*flag `NAME`",
				},
				cli.StringFlag{
					Name:  "set, s",
					Value: "",
					Usage: " new value `BOOL`",
				},
			},
			Action: runFlag,
		},
		{
			Name:      "int",
			Usage:     "read or write a named integer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*integer `NAME`",
				},
				cli.StringFlag{
					Name:  "set, s",
					Value: "",
					Usage: " new value `INT`",
				},
			},
			Action: runInt,
		},
		{
			Name:      "wipe",
			Usage:     "erase every mint or spend record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: "*records to erase `KIND` [mints|spends]",
				},
			},
			Action: runWipe,
		},
		{
			Name:      "invalid",
			Usage:     "check an output against the invalid outpoint list",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `TXID`",
				},
				cli.IntFlag{
					Name:  "index, i",
					Value: 0,
					Usage: " output `INDEX`",
				},
			},
			Action: runInvalid,
		},
		{
			Name:  "version",
			Usage: "display chaindb version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the databases
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		variables := make(map[string]string)
		for _, d := range c.GlobalStringSlice("define") {
			s := strings.SplitN(d, "=", 2)
			if 2 != len(s) {
				return fmt.Errorf("define: %q is not KEY=VALUE", d)
			}
			variables[strings.TrimSpace(s[0])] = strings.TrimSpace(s[1])
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := chainstate.ReadConfiguration(file, variables)
		if nil != err {
			return err
		}
		if c.GlobalBool("read-only") {
			config.ReadOnly = true
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		log := logger.New("main")
		log.Infof("chaindb version: %s  chain: %s", version, config.Chain)

		state, err := chainstate.Open(config)
		if nil != err {
			log.Criticalf("open error: %s", err)
			fault.Finalise()
			logger.Finalise()
			return err
		}

		// interrupt long scans on a signal
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			ch := make(chan os.Signal, 1)
			signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
			sig := <-ch
			log.Infof("received signal: %v", sig)
			cancel()
		}()

		c.App.Metadata["config"] = &metadata{
			config:  config,
			state:   state,
			ctx:     ctx,
			cancel:  cancel,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// close the databases
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.cancel()
		err := m.state.Close()
		fault.Finalise()
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
