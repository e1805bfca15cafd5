// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must return a table, e.g.
//
//   local M = {}
//   M.data_directory = arg[0]:match("(.*/)")
//   M.chain = "testing"
//   M.cache_size = 64
//   return M
//
// the global "arg" table holds the configuration file name as arg[0]
// and any extra variables passed by the caller as named fields.
package configuration
