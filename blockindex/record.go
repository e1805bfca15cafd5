// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockindex

import (
	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/codec"
	"github.com/bitmark-inc/chaindb/coins"
	"github.com/bitmark-inc/chaindb/fault"
	"github.com/bitmark-inc/chaindb/zerocoin"
)

// block index record versions
//   1: header, position and proof of stake fields
//   2: appends the zerocoin fields
const (
	blockIndexVersionBase     = 1
	blockIndexVersionZerocoin = 2
	blockIndexVersion         = blockIndexVersionZerocoin
)

// FlagProofOfStake - set in Flags for a proof of stake block
const FlagProofOfStake uint32 = 1 << 0

// other block flags
const (
	FlagStakeEntropy  uint32 = 1 << 1
	FlagStakeModifier uint32 = 1 << 2
)

// Status bits
const (
	StatusValidTree         uint32 = 2
	StatusValidTransactions uint32 = 3
	StatusValidChain        uint32 = 4
	StatusValidScripts      uint32 = 5
	StatusValidMask         uint32 = 7
	StatusHaveData          uint32 = 8
	StatusHaveUndo          uint32 = 16
	StatusFailedValid       uint32 = 32
	StatusFailedChild       uint32 = 64
)

// DiskBlockIndex - stored form of one block index entry
//
// the Hash comes from the record key and is not part of the value
type DiskBlockIndex struct {
	Hash    chainhash.Hash `json:"hash"`
	Prev    chainhash.Hash `json:"prev"`
	Next    chainhash.Hash `json:"next"`
	Height  uint32         `json:"height"`
	File    uint32         `json:"file"`
	DataPos uint32         `json:"dataPos"`
	UndoPos uint32         `json:"undoPos"`
	Status  uint32         `json:"status"`
	TxCount uint32         `json:"txCount"`

	// header
	Version    int32          `json:"version"`
	MerkleRoot chainhash.Hash `json:"merkleRoot"`
	Time       uint32         `json:"time"`
	Bits       uint32         `json:"bits"`
	Nonce      uint32         `json:"nonce"`

	// proof of stake
	Mint             int64          `json:"mint"`
	MoneySupply      int64          `json:"moneySupply"`
	Flags            uint32         `json:"flags"`
	StakeModifier    uint64         `json:"stakeModifier"`
	StakeTime        uint32         `json:"stakeTime"`
	PrevoutStake     coins.OutPoint `json:"prevoutStake"`
	ProofOfStakeHash chainhash.Hash `json:"proofOfStakeHash"`

	// zerocoin
	AccumulatorCheckpoint chainhash.Hash                  `json:"accumulatorCheckpoint"`
	ZerocoinSupply        map[zerocoin.Denomination]int64 `json:"zerocoinSupply"`
	MintDenominations     []zerocoin.Denomination         `json:"mintDenominations"`
}

// IsProofOfWork - true unless the proof of stake flag is set
func (d *DiskBlockIndex) IsProofOfWork() bool {
	return 0 == d.Flags&FlagProofOfStake
}

// IsProofOfStake - true if the proof of stake flag is set
func (d *DiskBlockIndex) IsProofOfStake() bool {
	return !d.IsProofOfWork()
}

// Validate - check the zerocoin denominations before the record is stored
func (d *DiskBlockIndex) Validate() error {
	for denomination := range d.ZerocoinSupply {
		if !denomination.Valid() {
			return errors.Wrapf(fault.ErrInvalidDenomination, "block index: %s  supply denomination: %d", d.Hash, denomination)
		}
	}
	for _, denomination := range d.MintDenominations {
		if !denomination.Valid() {
			return errors.Wrapf(fault.ErrInvalidDenomination, "block index: %s  mint denomination: %d", d.Hash, denomination)
		}
	}
	return nil
}

// Pack - encode the value of the record
//
// only valid supply denominations are encoded, in ascending order
func (d *DiskBlockIndex) Pack() []byte {
	w := codec.NewWriter()

	w.Hash(d.Prev)
	w.Hash(d.Next)
	w.Uint32(d.Height)
	w.Uint32(d.File)
	w.Uint32(d.DataPos)
	w.Uint32(d.UndoPos)
	w.Uint32(d.Status)
	w.Uint32(d.TxCount)

	w.Int32(d.Version)
	w.Hash(d.MerkleRoot)
	w.Uint32(d.Time)
	w.Uint32(d.Bits)
	w.Uint32(d.Nonce)

	w.Int64(d.Mint)
	w.Int64(d.MoneySupply)
	w.Uint32(d.Flags)
	w.Varint(d.StakeModifier)
	w.Uint32(d.StakeTime)
	w.Hash(d.PrevoutStake.TxId)
	w.Uint32(d.PrevoutStake.Index)
	w.Hash(d.ProofOfStakeHash)

	// version 2
	w.Hash(d.AccumulatorCheckpoint)
	supply := make([]zerocoin.Denomination, 0, len(zerocoin.Denominations))
	for _, denomination := range zerocoin.Denominations {
		if _, ok := d.ZerocoinSupply[denomination]; ok {
			supply = append(supply, denomination)
		}
	}
	w.Varint(uint64(len(supply)))
	for _, denomination := range supply {
		w.Int64(int64(denomination))
		w.Int64(d.ZerocoinSupply[denomination])
	}
	mints := make([]zerocoin.Denomination, 0, len(d.MintDenominations))
	for _, denomination := range d.MintDenominations {
		if denomination.Valid() {
			mints = append(mints, denomination)
		}
	}
	w.Varint(uint64(len(mints)))
	for _, denomination := range mints {
		w.Int64(int64(denomination))
	}

	return w.Record(blockIndexVersion)
}

// UnpackDiskBlockIndex - decode a record, hash is taken from the key
func UnpackDiskBlockIndex(hash chainhash.Hash, record []byte) (*DiskBlockIndex, error) {
	r, err := codec.Open(record, blockIndexVersion)
	if nil != err {
		return nil, errors.Wrapf(err, "block index: %s", hash)
	}

	d := &DiskBlockIndex{
		Hash:    hash,
		Prev:    r.Hash(),
		Next:    r.Hash(),
		Height:  r.Uint32(),
		File:    r.Uint32(),
		DataPos: r.Uint32(),
		UndoPos: r.Uint32(),
		Status:  r.Uint32(),
		TxCount: r.Uint32(),

		Version:    r.Int32(),
		MerkleRoot: r.Hash(),
		Time:       r.Uint32(),
		Bits:       r.Uint32(),
		Nonce:      r.Uint32(),

		Mint:          r.Int64(),
		MoneySupply:   r.Int64(),
		Flags:         r.Uint32(),
		StakeModifier: r.Varint(),
		StakeTime:     r.Uint32(),
		PrevoutStake: coins.OutPoint{
			TxId:  r.Hash(),
			Index: r.Uint32(),
		},
		ProofOfStakeHash: r.Hash(),
	}

	if r.Version() >= blockIndexVersionZerocoin {
		d.AccumulatorCheckpoint = r.Hash()

		count := r.Varint()
		if count > uint64(len(zerocoin.Denominations)) {
			return nil, errors.Wrapf(fault.ErrRecordValueOutOfRange, "block index: %s  supply count: %d", hash, count)
		}
		if count > 0 {
			d.ZerocoinSupply = make(map[zerocoin.Denomination]int64, count)
		}
		for i := uint64(0); i < count && nil == r.Err(); i += 1 {
			denomination := zerocoin.Denomination(r.Int64())
			n := r.Int64()
			if nil != r.Err() {
				break
			}
			if !denomination.Valid() {
				return nil, errors.Wrapf(fault.ErrRecordValueOutOfRange, "block index: %s  supply denomination: %d", hash, denomination)
			}
			if _, ok := d.ZerocoinSupply[denomination]; ok {
				return nil, errors.Wrapf(fault.ErrRecordValueOutOfRange, "block index: %s  duplicate supply denomination: %d", hash, denomination)
			}
			d.ZerocoinSupply[denomination] = n
		}

		count = r.Varint()
		if count > uint64(r.Remaining()) {
			return nil, errors.Wrapf(fault.ErrRecordTruncated, "block index: %s  mint count: %d", hash, count)
		}
		for i := uint64(0); i < count && nil == r.Err(); i += 1 {
			denomination := zerocoin.Denomination(r.Int64())
			if nil == r.Err() && !denomination.Valid() {
				return nil, errors.Wrapf(fault.ErrRecordValueOutOfRange, "block index: %s  mint denomination: %d", hash, denomination)
			}
			d.MintDenominations = append(d.MintDenominations, denomination)
		}
	}

	if err := r.Finish(); nil != err {
		return nil, errors.Wrapf(err, "block index: %s", hash)
	}
	return d, nil
}
