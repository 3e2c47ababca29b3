// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/txpool/lib/common"
)

type blockIDKind uint8

const (
	blockIDHash blockIDKind = iota
	blockIDNumber
)

// BlockID identifies a block in the chain, either by hash or by number.
// The zero value identifies the block with the all-zero hash.
type BlockID struct {
	kind   blockIDKind
	hash   common.Hash
	number uint64
}

// NewBlockIDFromHash returns a BlockID for the given block hash
func NewBlockIDFromHash(hash common.Hash) BlockID {
	return BlockID{
		kind: blockIDHash,
		hash: hash,
	}
}

// NewBlockIDFromNumber returns a BlockID for the given block number
func NewBlockIDFromNumber(number uint64) BlockID {
	return BlockID{
		kind:   blockIDNumber,
		number: number,
	}
}

// Hash returns the block hash and true if the BlockID holds a hash
func (id BlockID) Hash() (common.Hash, bool) {
	return id.hash, id.kind == blockIDHash
}

// Number returns the block number and true if the BlockID holds a number
func (id BlockID) Number() (uint64, bool) {
	return id.number, id.kind == blockIDNumber
}

// String returns the formatted BlockID string
func (id BlockID) String() string {
	if id.kind == blockIDNumber {
		return fmt.Sprintf("number %d", id.number)
	}

	return fmt.Sprintf("hash %s", id.hash)
}
