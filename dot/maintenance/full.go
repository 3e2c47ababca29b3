// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package maintenance

import (
	"context"
	"errors"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
)

// FullMaintainer maintains a transaction queue against a chain whose block
// bodies are stored locally
type FullMaintainer struct {
	blockState BlockState
}

// NewFullMaintainer returns a maintainer reading blocks from the given state
func NewFullMaintainer(blockState BlockState) *FullMaintainer {
	return &FullMaintainer{
		blockState: blockState,
	}
}

// Maintain moves the user transactions of the retracted blocks back into the
// queue, then prunes the transactions included in the new best block.
// Resubmission runs even when the queue is empty; pruning is skipped then,
// based on the queue status sampled before resubmission.
func (m *FullMaintainer) Maintain(ctx context.Context, id types.BlockID,
	retracted []common.Hash, queue TransactionQueue) {
	empty := queue.Status().IsEmpty()

	var resubmit []types.Extrinsic
	for _, hash := range retracted {
		block, err := m.blockState.GetBlockByBlockID(types.NewBlockIDFromHash(hash))
		if err != nil {
			if errors.Is(err, chaindb.ErrKeyNotFound) {
				logger.Trace("retracted block not found", "block", hash)
			} else {
				logger.Warn("failed to get retracted block", "block", hash, "error", err)
			}
			continue
		}

		// inherents are produced by the chain itself and must not re-enter
		// the queue
		for _, ext := range block.Body {
			if ext.IsSigned() {
				resubmit = append(resubmit, ext)
			}
		}
	}

	if len(resubmit) > 0 {
		if err := queue.SubmitAt(ctx, id, resubmit, true); err != nil {
			logger.Warn("failed to resubmit retracted transactions", "at", id, "error", err)
		}
	}

	if empty {
		return
	}

	block, err := m.blockState.GetBlockByBlockID(id)
	if err != nil {
		if errors.Is(err, chaindb.ErrKeyNotFound) {
			logger.Trace("block to prune against not found", "at", id)
		} else {
			logger.Warn("failed to get block", "at", id, "error", err)
		}
		return
	}

	parent := types.NewBlockIDFromHash(block.Header.ParentHash)
	if err := queue.Prune(ctx, id, parent, block.Body); err != nil {
		logger.Warn("failed to prune included transactions", "at", id, "error", err)
	}
}
