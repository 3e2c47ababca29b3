// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package blocktree

import (
	"fmt"
	"time"

	"github.com/disiqueira/gotree"
)

// node is an element in the BlockTree
type node struct {
	hash        Hash      // Block hash
	parent      *node     // Parent Node
	children    []*node   // Nodes of children blocks
	number      uint64    // block number
	arrivalTime time.Time // Arrival time of the block
}

// addChild appends node to n's list of children
func (n *node) addChild(node *node) {
	n.children = append(n.children, node)
}

// string returns stringified hash and number of node
func (n *node) string() string {
	return fmt.Sprintf("{hash: %s, number: %d}", n.hash, n.number)
}

// createTree adds all the nodes children to the existing printable tree.
// Note: this is strictly for BlockTree.String()
func (n *node) createTree(tree gotree.Tree) {
	for _, child := range n.children {
		sub := tree.Add(child.string())
		child.createTree(sub)
	}
}

// getNode recursively searches for a node with a given hash
func (n *node) getNode(h Hash) *node {
	if n == nil {
		return nil
	}

	if n.hash == h {
		return n
	}

	for _, child := range n.children {
		if n := child.getNode(h); n != nil {
			return n
		}
	}

	return nil
}

// subChain searches for a chain with head n and descendant going from child -> parent
func (n *node) subChain(descendant *node) ([]*node, error) {
	if descendant == nil {
		return nil, ErrNilDescendant
	}

	var path []*node

	if n.hash == descendant.hash {
		path = append(path, n)
		return path, nil
	}

	for curr := descendant; curr != nil; curr = curr.parent {
		path = append([]*node{curr}, path...)
		if curr.hash == n.hash {
			return path, nil
		}
	}

	return nil, ErrDescendantNotFound
}

// isDescendantOf traverses the tree following all possible paths until it determines if n is a descendant of parent
func (n *node) isDescendantOf(parent *node) bool {
	if parent == nil || n == nil {
		return false
	}

	// NOTE: here we assume the nodes exists in tree
	if n.hash == parent.hash {
		return true
	} else if len(parent.children) == 0 {
		return false
	} else {
		for _, child := range parent.children {
			if n.isDescendantOf(child) {
				return true
			}
		}
	}
	return false
}

func (n *node) highestCommonAncestor(other *node) *node {
	for curr := n; curr != nil; curr = curr.parent {
		if curr.hash == other.hash {
			return curr
		}

		if other.isDescendantOf(curr) {
			return curr
		}
	}

	return nil
}

// getLeaves returns all nodes that are leaf nodes with the current node as its ancestor
func (n *node) getLeaves(leaves []*node) []*node {
	if n == nil {
		return leaves
	}

	if leaves == nil {
		leaves = []*node{}
	}

	if len(n.children) == 0 {
		leaves = append(leaves, n)
	}

	for _, child := range n.children {
		leaves = child.getLeaves(leaves)
	}

	return leaves
}
