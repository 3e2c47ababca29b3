// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/txpool/lib/common"
)

// Block defines a state block
type Block struct {
	Header Header
	Body   Body
}

// NewBlock returns a new Block
func NewBlock(header Header, body Body) Block {
	return Block{
		Header: header,
		Body:   body,
	}
}

// String returns the formatted Block string
func (b *Block) String() string {
	return fmt.Sprintf("header: %v\nbody: %v",
		&b.Header, b.Body)
}

// Empty returns a boolean indicating is the Block is empty
func (b *Block) Empty() bool {
	return b.Header.ParentHash == common.EmptyHash &&
		b.Header.StateRoot == common.EmptyHash &&
		b.Header.ExtrinsicsRoot == common.EmptyHash &&
		b.Header.Number == 0 &&
		len(b.Body) == 0
}

// DeepCopy returns a copy of the block
func (b *Block) DeepCopy() (Block, error) {
	head, err := b.Header.DeepCopy()
	if err != nil {
		return Block{}, err
	}

	return Block{
		Header: *head,
		Body:   b.Body.DeepCopy(),
	}, nil
}
