// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/chaindb/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/blocks/index", util.EnsureAbsolute("/data/", "./blocks/../blocks/index"), "cleaned")
}

func TestIsDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "file")
	require.Nil(t, ioutil.WriteFile(fileName, []byte("x"), 0600), "write file")

	assert.True(t, util.IsDirectory(dir), "directory")
	assert.False(t, util.IsDirectory(fileName), "file")
	assert.False(t, util.IsDirectory(filepath.Join(dir, "missing")), "missing")
}

func TestHexDump(t *testing.T) {
	data := []byte("chain\x00state\xff")
	data = append(data, bytes.Repeat([]byte{'z'}, 30)...)

	buffer := &bytes.Buffer{}
	util.HexDump(buffer, "<", ">", data)

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	require.Equal(t, 2, len(lines), "line count")

	assert.True(t, strings.HasPrefix(lines[0], "<0000  63 68 61 69 6e 00 73 74"), "first line: %q", lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "|chain.state.zzzzzzzzzzzzzzzzzzzz|>"), "first ascii: %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "<0020  7a 7a 7a 7a 7a 7a 7a 7a 7a 7a    "), "second line: %q", lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "|zzzzzzzzzz|>"), "second ascii: %q", lines[1])
}
