// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package blocktree

import (
	"sync"
)

// leafMap provides quick lookup for existing leaves
type leafMap struct {
	smap *sync.Map // map[common.Hash]*node
}

func newLeafMap(n *node) *leafMap {
	smap := &sync.Map{}
	for _, child := range n.getLeaves(nil) {
		smap.Store(child.hash, child)
	}

	return &leafMap{
		smap: smap,
	}
}

func (ls *leafMap) store(key Hash, value *node) {
	ls.smap.Store(key, value)
}

// replace deletes the old node from the map and inserts the new one
func (ls *leafMap) replace(oldNode, newNode *node) {
	ls.smap.Delete(oldNode.hash)
	ls.store(newNode.hash, newNode)
}

// deepestLeaf searches the stored leaves to the find the one with the greatest number.
// If there are two leaves with the same number, choose the one with the earliest arrival time.
func (ls *leafMap) deepestLeaf() *node {
	var deepest *node

	ls.smap.Range(func(h, n interface{}) bool {
		if n == nil {
			return true
		}

		node := n.(*node)

		if deepest == nil || node.number > deepest.number {
			deepest = node
		} else if node.number == deepest.number && node.arrivalTime.Before(deepest.arrivalTime) {
			deepest = node
		}

		return true
	})

	return deepest
}

func (ls *leafMap) nodes() []*node {
	nodes := []*node{}

	ls.smap.Range(func(h, n interface{}) bool {
		node := n.(*node)
		nodes = append(nodes, node)
		return true
	})

	return nodes
}
