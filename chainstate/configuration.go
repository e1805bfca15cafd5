// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chain"
	"github.com/bitmark-inc/chaindb/configuration"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultCacheSize = 100 // MiB

	defaultLogDirectory = "log"
	defaultLogFile      = "chaindb.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - settings for opening the databases
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	CacheSize     int                  `gluamapper:"cache_size" json:"cache_size"` // MiB
	Memory        bool                 `gluamapper:"memory" json:"memory"`
	Wipe          bool                 `gluamapper:"wipe" json:"wipe"`
	ReadOnly      bool                 `gluamapper:"read_only" json:"read_only"`
	InvalidFile   string               `gluamapper:"invalid_outpoints" json:"invalid_outpoints"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// DefaultConfiguration - settings used for anything a file does not set
func DefaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Main,
		CacheSize:     defaultCacheSize,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// ReadConfiguration - read decode and verify a Lua configuration file
//
// variables are made available to the file as arg.<name>
func ReadConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := DefaultConfiguration()

	if err := configuration.ParseConfigurationFileWithVariables(configurationFileName, variables, options); nil != err {
		return nil, err
	}

	if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	if err := options.Normalise(); nil != err {
		return nil, err
	}

	// create log directory if it does not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, errors.Wrapf(err, "log directory: %q", options.Logging.Directory)
	}

	return options, nil
}

// Normalise - validate the settings and make every path absolute
//
// the data directory must already exist
func (c *Configuration) Normalise() error {

	c.Chain = strings.ToLower(c.Chain)
	if !chain.Valid(c.Chain) {
		return errors.Wrapf(fault.ErrInvalidChain, "chain: %q", c.Chain)
	}

	if c.CacheSize < 0 {
		return errors.Wrapf(fault.ErrInvalidCacheSize, "cache size: %d MiB", c.CacheSize)
	}

	// ensure absolute data directory
	if "" == c.DataDirectory || "~" == c.DataDirectory {
		return errors.Wrapf(fault.ErrInvalidDataDirectory, "path: %q", c.DataDirectory)
	}
	dataDirectory, err := filepath.Abs(c.DataDirectory)
	if nil != err {
		return errors.Wrapf(fault.ErrInvalidDataDirectory, "path: %q  error: %s", c.DataDirectory, err)
	}
	c.DataDirectory = dataDirectory

	// this directory must exist - i.e. must be created prior to running
	if !util.IsDirectory(c.DataDirectory) {
		return errors.Wrapf(fault.ErrInvalidDataDirectory, "path: %q is not a directory", c.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != c.InvalidFile {
		c.InvalidFile = util.EnsureAbsolute(c.DataDirectory, c.InvalidFile)
	}

	c.Logging.Directory = util.EnsureAbsolute(c.DataDirectory, c.Logging.Directory)

	// log file must be a plain name
	switch filepath.Dir(c.Logging.File) {
	case "", ".":
	default:
		return errors.Wrapf(fault.ErrInvalidFileName, "log file: %q is not plain name", c.Logging.File)
	}

	return nil
}
