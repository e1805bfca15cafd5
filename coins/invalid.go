// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coins

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
)

// DefaultInvalidOutPoints - built-in list, a single placeholder entry
const DefaultInvalidOutPoints = `[
 {
   "txid": "0000000000000000000000000000000000000000000000000000000000000000",
   "index": 0
 }
]`

// InvalidOutPoints - outputs that must never be spent
type InvalidOutPoints map[OutPoint]struct{}

type invalidOutPoint struct {
	TxId  string `json:"txid"`
	Index uint32 `json:"index"`
}

// LoadInvalidOutPoints - parse a JSON list of {"txid", "index"} objects
//
// entries with an empty txid are ignored
func LoadInvalidOutPoints(jsonText string) (InvalidOutPoints, error) {
	var list []invalidOutPoint
	if err := json.Unmarshal([]byte(jsonText), &list); nil != err {
		return nil, errors.Wrap(err, "invalid outpoints")
	}

	result := make(InvalidOutPoints, len(list))
	for i, item := range list {
		if "" == item.TxId {
			continue
		}
		txId, err := chainhash.FromString(item.TxId)
		if nil != err {
			return nil, errors.Wrapf(err, "invalid outpoints: entry: %d", i)
		}
		result[OutPoint{TxId: txId, Index: item.Index}] = struct{}{}
	}
	return result, nil
}

// IsInvalid - check whether an output is in the list
func (invalid InvalidOutPoints) IsInvalid(o OutPoint) bool {
	_, ok := invalid[o]
	return ok
}
