// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package watcher

import (
	"context"

	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
)

// Fetcher reads the chain head and the pending transactions from the
// remote node
type Fetcher interface {
	GetHeader(hash *common.Hash) (*types.Header, error)
	GetBlock(hash *common.Hash) (*types.Block, error)
	PendingExtrinsics() ([]types.Extrinsic, error)
}

// BlockState is the part of the block state the watcher imports into
type BlockState interface {
	BestBlockHash() common.Hash
	HasHeader(hash common.Hash) (bool, error)
	AddBlock(block *types.Block) error
}

// TransactionQueue is the pool surface the watcher submits pending
// transactions to
type TransactionQueue interface {
	SubmitAt(ctx context.Context, id types.BlockID, exts []types.Extrinsic, retried bool) error
	Exists(ext types.Extrinsic) bool
}
