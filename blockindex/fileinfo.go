// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockindex

import (
	"fmt"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
)

const (
	fileInfoVersion   = 1
	txPositionVersion = 1
)

// FileInfo - summary of one block file
type FileInfo struct {
	Blocks      uint32 `json:"blocks"`
	Size        uint32 `json:"size"`
	UndoSize    uint32 `json:"undoSize"`
	HeightFirst uint32 `json:"heightFirst"`
	HeightLast  uint32 `json:"heightLast"`
	TimeFirst   uint64 `json:"timeFirst"`
	TimeLast    uint64 `json:"timeLast"`
}

// AddBlock - extend the height and time ranges to cover a block
func (f *FileInfo) AddBlock(height uint32, time uint64) {
	if 0 == f.Blocks || height < f.HeightFirst {
		f.HeightFirst = height
	}
	if 0 == f.Blocks || time < f.TimeFirst {
		f.TimeFirst = time
	}
	f.Blocks += 1
	if height > f.HeightLast {
		f.HeightLast = height
	}
	if time > f.TimeLast {
		f.TimeLast = time
	}
}

// String - one line summary
func (f *FileInfo) String() string {
	return fmt.Sprintf("FileInfo(blocks=%d, size=%d, heights=%d...%d, times=%d...%d)",
		f.Blocks, f.Size, f.HeightFirst, f.HeightLast, f.TimeFirst, f.TimeLast)
}

// Pack - encode as a versioned record
func (f *FileInfo) Pack() []byte {
	w := codec.NewWriter()
	w.Uint32(f.Blocks)
	w.Uint32(f.Size)
	w.Uint32(f.UndoSize)
	w.Uint32(f.HeightFirst)
	w.Uint32(f.HeightLast)
	w.Varint(f.TimeFirst)
	w.Varint(f.TimeLast)
	return w.Record(fileInfoVersion)
}

// UnpackFileInfo - decode a record produced by Pack
func UnpackFileInfo(record []byte) (*FileInfo, error) {
	r, err := codec.Open(record, fileInfoVersion)
	if nil != err {
		return nil, err
	}
	f := &FileInfo{
		Blocks:      r.Uint32(),
		Size:        r.Uint32(),
		UndoSize:    r.Uint32(),
		HeightFirst: r.Uint32(),
		HeightLast:  r.Uint32(),
		TimeFirst:   r.Varint(),
		TimeLast:    r.Varint(),
	}
	if err := r.Finish(); nil != err {
		return nil, err
	}
	return f, nil
}

// TxPosition - where a transaction is stored on disk
type TxPosition struct {
	File     uint32 `json:"file"`
	BlockPos uint32 `json:"blockPos"`
	TxOffset uint32 `json:"txOffset"`
}

// TxIndexEntry - a transaction and its position
type TxIndexEntry struct {
	TxId     chainhash.Hash
	Position TxPosition
}

// Pack - encode as a versioned record
func (p *TxPosition) Pack() []byte {
	w := codec.NewWriter()
	w.Uint32(p.File)
	w.Uint32(p.BlockPos)
	w.Uint32(p.TxOffset)
	return w.Record(txPositionVersion)
}

// UnpackTxPosition - decode a record produced by Pack
func UnpackTxPosition(record []byte) (*TxPosition, error) {
	r, err := codec.Open(record, txPositionVersion)
	if nil != err {
		return nil, err
	}
	p := &TxPosition{
		File:     r.Uint32(),
		BlockPos: r.Uint32(),
		TxOffset: r.Uint32(),
	}
	if err := r.Finish(); nil != err {
		return nil, err
	}
	return p, nil
}
