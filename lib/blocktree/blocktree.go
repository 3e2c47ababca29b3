// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package blocktree

import (
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
	"github.com/disiqueira/gotree"
)

// Hash common.Hash
type Hash = common.Hash

// BlockTree represents the current state with all possible blocks
// that have been imported but not yet finalised
type BlockTree struct {
	root   *node
	leaves *leafMap
	sync.RWMutex
}

// NewBlockTreeFromRoot initialises a blocktree with a root block. The root
// block is always the most recently finalised block, ie. the genesis block
// if the node is just starting.
func NewBlockTreeFromRoot(root *types.Header) *BlockTree {
	n := &node{
		hash:        root.Hash(),
		parent:      nil,
		children:    []*node{},
		number:      root.Number,
		arrivalTime: time.Now(),
	}

	return &BlockTree{
		root:   n,
		leaves: newLeafMap(n),
	}
}

// GenesisHash returns the hash of the root block
func (bt *BlockTree) GenesisHash() Hash {
	bt.RLock()
	defer bt.RUnlock()
	return bt.root.hash
}

// AddBlock inserts the block as child of its parent node
// Note: Assumes block has no children
func (bt *BlockTree) AddBlock(header *types.Header, arrivalTime time.Time) error {
	bt.Lock()
	defer bt.Unlock()

	parent := bt.getNode(header.ParentHash)
	if parent == nil {
		return ErrParentNotFound
	}

	if n := bt.getNode(header.Hash()); n != nil {
		return ErrBlockExists
	}

	if header.Number != parent.number+1 {
		return fmt.Errorf("%w: expected %d, got %d", errUnexpectedNumber, parent.number+1, header.Number)
	}

	n := &node{
		hash:        header.Hash(),
		parent:      parent,
		children:    []*node{},
		number:      header.Number,
		arrivalTime: arrivalTime,
	}
	parent.addChild(n)
	bt.leaves.replace(parent, n)

	return nil
}

// getNode finds and returns a node based on its Hash. Returns nil if not found.
func (bt *BlockTree) getNode(h Hash) *node {
	if bt.root.hash == h {
		return bt.root
	}

	for _, leaf := range bt.leaves.nodes() {
		if leaf.hash == h {
			return leaf
		}
	}

	for _, child := range bt.root.children {
		if n := child.getNode(h); n != nil {
			return n
		}
	}

	return nil
}

// HasBlock returns true if the block with the given hash is in the tree
func (bt *BlockTree) HasBlock(h Hash) bool {
	bt.RLock()
	defer bt.RUnlock()
	return bt.getNode(h) != nil
}

// String utilises github.com/disiqueira/gotree to create a printable tree
func (bt *BlockTree) String() string {
	bt.RLock()
	defer bt.RUnlock()

	tree := gotree.New(bt.root.string())

	for _, child := range bt.root.children {
		sub := tree.Add(child.string())
		child.createTree(sub)
	}

	var leaves string
	for _, leaf := range bt.leaves.nodes() {
		leaves = leaves + fmt.Sprintf("%s\n", leaf.hash)
	}

	metadata := fmt.Sprintf("Leaves:\n %s", leaves)

	return fmt.Sprintf("%s\n%s\n", metadata, tree.Print())
}

// SubChain returns the path from the node with Hash start to the node with Hash end
func (bt *BlockTree) SubChain(start, end Hash) ([]Hash, error) {
	bt.RLock()
	defer bt.RUnlock()

	sn := bt.getNode(start)
	if sn == nil {
		return nil, ErrStartNodeNotFound
	}

	en := bt.getNode(end)
	if en == nil {
		return nil, ErrEndNodeNotFound
	}

	sc, err := sn.subChain(en)
	if err != nil {
		return nil, err
	}

	var hashes []Hash
	for _, node := range sc {
		hashes = append(hashes, node.hash)
	}
	return hashes, nil
}

// DeepestBlockHash returns the hash of the deepest block in the blocktree.
// If there are multiple deepest blocks, it returns the one with the earliest arrival time.
func (bt *BlockTree) DeepestBlockHash() Hash {
	bt.RLock()
	defer bt.RUnlock()

	if bt.leaves == nil {
		return Hash{}
	}

	deepest := bt.leaves.deepestLeaf()
	if deepest == nil {
		return Hash{}
	}

	return deepest.hash
}

// IsDescendantOf returns true if the child is a descendant of parent, false otherwise.
// it returns an error if either the child or parent are not in the blocktree.
func (bt *BlockTree) IsDescendantOf(parent, child Hash) (bool, error) {
	bt.RLock()
	defer bt.RUnlock()

	pn := bt.getNode(parent)
	if pn == nil {
		return false, ErrStartNodeNotFound
	}

	cn := bt.getNode(child)
	if cn == nil {
		return false, ErrEndNodeNotFound
	}

	return cn.isDescendantOf(pn), nil
}

// Leaves returns the leaves of the blocktree as an array
func (bt *BlockTree) Leaves() []Hash {
	bt.RLock()
	defer bt.RUnlock()

	nodes := bt.leaves.nodes()
	leaves := make([]Hash, len(nodes))

	for i, n := range nodes {
		leaves[i] = n.hash
	}

	return leaves
}

// HighestCommonAncestor returns the highest block that is an ancestor of both a and b
func (bt *BlockTree) HighestCommonAncestor(a, b Hash) (Hash, error) {
	bt.RLock()
	defer bt.RUnlock()

	an := bt.getNode(a)
	if an == nil {
		return common.Hash{}, ErrNodeNotFound
	}

	bn := bt.getNode(b)
	if bn == nil {
		return common.Hash{}, ErrNodeNotFound
	}

	ancestor := an.highestCommonAncestor(bn)
	if ancestor == nil {
		return common.Hash{}, ErrNodeNotFound
	}

	return ancestor.hash, nil
}
