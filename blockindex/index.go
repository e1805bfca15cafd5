// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockindex

import (
	"bytes"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/chaindb/chainhash"
	"github.com/bitmark-inc/chaindb/fault"
)

// Node - one block in the in-memory index
//
// a node that has only been referenced as some other block's
// previous or next block is a stub until its own record is loaded
type Node struct {
	DiskBlockIndex
	Loaded bool
}

// Index - all block nodes by hash
type Index struct {
	sync.RWMutex
	nodes map[chainhash.Hash]*Node
}

// NewIndex - an empty index
func NewIndex() *Index {
	return &Index{
		nodes: make(map[chainhash.Hash]*Node),
	}
}

// return the node for hash, creating a stub if necessary
//
// the zero hash means no block so it never has a node
// must hold write lock
func (index *Index) insert(hash chainhash.Hash) *Node {
	if hash.IsZero() {
		return nil
	}
	node, ok := index.nodes[hash]
	if !ok {
		node = &Node{}
		node.Hash = hash
		index.nodes[hash] = node
	}
	return node
}

// set - copy a decoded record onto its node
func (index *Index) set(d *DiskBlockIndex) *Node {
	index.Lock()
	defer index.Unlock()

	node := index.insert(d.Hash)
	index.insert(d.Prev)
	index.insert(d.Next)

	node.DiskBlockIndex = *d
	node.Loaded = true
	return node
}

// Lookup - find a node by hash
func (index *Index) Lookup(hash chainhash.Hash) (*Node, bool) {
	index.RLock()
	defer index.RUnlock()
	node, ok := index.nodes[hash]
	return node, ok
}

// Height - height of a loaded block
func (index *Index) Height(hash chainhash.Hash) (uint32, bool) {
	node, ok := index.Lookup(hash)
	if !ok || !node.Loaded {
		return 0, false
	}
	return node.Height, true
}

// Prev - the loaded previous node, nil for genesis
func (index *Index) Prev(node *Node) (*Node, error) {
	if node.Prev.IsZero() {
		return nil, nil
	}
	prev, ok := index.Lookup(node.Prev)
	if !ok || !prev.Loaded {
		return nil, errors.Wrapf(fault.ErrUnresolvableReference, "block: %s  previous: %s", node.Hash, node.Prev)
	}
	return prev, nil
}

// Len - number of nodes including stubs
func (index *Index) Len() int {
	index.RLock()
	defer index.RUnlock()
	return len(index.nodes)
}

// Stubs - hashes referenced by some record but not loaded themselves
func (index *Index) Stubs() []chainhash.Hash {
	index.RLock()
	defer index.RUnlock()
	stubs := []chainhash.Hash{}
	for hash, node := range index.nodes {
		if !node.Loaded {
			stubs = append(stubs, hash)
		}
	}
	sortHashes(stubs)
	return stubs
}

// Tip - the loaded node with the greatest height
//
// equal heights are decided by the smaller hash so the result does
// not depend on load order; nil for an empty index
func (index *Index) Tip() *Node {
	index.RLock()
	defer index.RUnlock()

	var tip *Node
	for _, node := range index.nodes {
		if !node.Loaded {
			continue
		}
		if nil == tip || node.Height > tip.Height ||
			(node.Height == tip.Height && bytes.Compare(node.Hash[:], tip.Hash[:]) < 0) {
			tip = node
		}
	}
	return tip
}

// ActiveChain - the nodes from genesis up to tip following previous links
func (index *Index) ActiveChain(tip *Node) ([]*Node, error) {
	if nil == tip {
		return nil, nil
	}
	chain := make([]*Node, tip.Height+1)
	n := len(chain)
	for node := tip; nil != node; {
		if 0 == n {
			return nil, errors.Wrapf(fault.ErrInvalidChain, "block: %s  previous link below genesis", node.Hash)
		}
		n -= 1
		chain[n] = node

		prev, err := index.Prev(node)
		if nil != err {
			return nil, err
		}
		if nil != prev && prev.Height+1 != node.Height {
			return nil, errors.Wrapf(fault.ErrInvalidChain, "block: %s  height: %d  previous height: %d", node.Hash, node.Height, prev.Height)
		}
		node = prev
	}
	if 0 != n {
		return nil, errors.Wrapf(fault.ErrInvalidChain, "chain ends at height: %d", n)
	}
	return chain, nil
}

func sortHashes(hashes []chainhash.Hash) {
	sort.Slice(hashes, func(i, j int) bool {
		return bytes.Compare(hashes[i][:], hashes[j][:]) < 0
	})
}
