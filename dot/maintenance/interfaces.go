// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package maintenance

import (
	"context"

	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
	"github.com/ChainSafe/txpool/lib/fetcher"
	"github.com/ChainSafe/txpool/lib/transaction"
)

// Maintainer keeps a transaction queue in sync with the chain as new best
// blocks arrive. Maintain blocks until all work derived from the given block
// is done; it never fails, collaborator errors are logged and skipped.
type Maintainer interface {
	Maintain(ctx context.Context, id types.BlockID, retracted []common.Hash, queue TransactionQueue)
}

// TransactionQueue is the pool surface the maintainers operate on
type TransactionQueue interface {
	SubmitAt(ctx context.Context, id types.BlockID, exts []types.Extrinsic, retried bool) error
	Prune(ctx context.Context, id, parent types.BlockID, exts []types.Extrinsic) error
	PruneKnown(id types.BlockID, hashes []common.Hash) error
	RevalidateReady(ctx context.Context, id types.BlockID) error
	Status() transaction.PoolStatus
	HashOf(ext types.Extrinsic) common.Hash
}

// BlockState is the part of the block state the maintainers read
type BlockState interface {
	GetBlockByBlockID(id types.BlockID) (*types.Block, error)
	GetHeaderByBlockID(id types.BlockID) (*types.Header, error)
}

// Fetcher fetches block bodies not stored locally from a remote node
type Fetcher interface {
	RemoteBody(ctx context.Context, req *fetcher.RemoteBodyRequest) ([]types.Extrinsic, error)
}

// ServiceBlockState is the block state surface the maintenance service
// watches for imported blocks
type ServiceBlockState interface {
	BestBlockHash() common.Hash
	HighestCommonAncestor(a, b common.Hash) (common.Hash, error)
	SubChain(start, end common.Hash) ([]common.Hash, error)
	GetImportedBlockNotifierChannel() chan *types.Block
	FreeImportedBlockNotifierChannel(ch chan *types.Block)
}
