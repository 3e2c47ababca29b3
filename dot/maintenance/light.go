// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package maintenance

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
	"github.com/ChainSafe/txpool/lib/fetcher"
)

const (
	defaultRevalidateTimePeriod         = time.Minute
	defaultRevalidateBlockPeriod uint64 = 20
)

// LightMaintainer maintains a transaction queue for a light client, fetching
// block bodies from a remote node on demand
type LightMaintainer struct {
	blockState BlockState
	fetcher    Fetcher
	status     *revalidationStatus

	// revalidation periods; a nil period disables that trigger
	timePeriod  *time.Duration
	blockPeriod *uint64
}

// NewLightMaintainer returns a light maintainer revalidating the ready queue
// by the given periods. A nil period disables that trigger.
func NewLightMaintainer(blockState BlockState, fetcher Fetcher,
	revalidateTimePeriod *time.Duration, revalidateBlockPeriod *uint64) *LightMaintainer {
	return &LightMaintainer{
		blockState:  blockState,
		fetcher:     fetcher,
		status:      new(revalidationStatus),
		timePeriod:  revalidateTimePeriod,
		blockPeriod: revalidateBlockPeriod,
	}
}

// NewLightMaintainerWithDefaults returns a light maintainer with the default
// revalidation periods of 60 seconds and 20 blocks
func NewLightMaintainerWithDefaults(blockState BlockState, fetcher Fetcher) *LightMaintainer {
	timePeriod := defaultRevalidateTimePeriod
	blockPeriod := defaultRevalidateBlockPeriod
	return NewLightMaintainer(blockState, fetcher, &timePeriod, &blockPeriod)
}

// Maintain prunes the transactions included in the new best block through a
// remote body fetch and revalidates the ready queue when the revalidation
// period has elapsed. The two run concurrently, neither gated on the other.
// Retracted blocks are ignored: their bodies are not available to a light
// client.
func (m *LightMaintainer) Maintain(ctx context.Context, id types.BlockID,
	_ []common.Hash, queue TransactionQueue) {
	if queue.Status().IsEmpty() {
		m.status.clear()
		return
	}

	header, err := m.blockState.GetHeaderByBlockID(id)
	if err != nil {
		if errors.Is(err, chaindb.ErrKeyNotFound) {
			logger.Trace("header to maintain against not found", "at", id)
		} else {
			logger.Warn("failed to get header", "at", id, "error", err)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		m.pruneRemote(ctx, id, header, queue)
	}()

	go func() {
		defer wg.Done()
		m.revalidate(ctx, id, header.Number, queue)
	}()

	wg.Wait()
}

func (m *LightMaintainer) pruneRemote(ctx context.Context, id types.BlockID,
	header *types.Header, queue TransactionQueue) {
	exts, err := m.fetcher.RemoteBody(ctx, &fetcher.RemoteBodyRequest{Header: header})
	if err != nil {
		logger.Warn("failed to fetch remote block body", "block", header.Hash(), "error", err)
		return
	}

	hashes := make([]common.Hash, len(exts))
	for i, ext := range exts {
		hashes[i] = queue.HashOf(ext)
	}

	if err := queue.PruneKnown(id, hashes); err != nil {
		logger.Warn("failed to prune known transactions", "at", id, "error", err)
	}
}

func (m *LightMaintainer) revalidate(ctx context.Context, id types.BlockID,
	block uint64, queue TransactionQueue) {
	if !m.status.isRequired(block, m.timePeriod, m.blockPeriod) {
		return
	}

	if err := queue.RevalidateReady(ctx, id); err != nil {
		logger.Warn("failed to revalidate ready transactions", "at", id, "error", err)
	}

	// cleared even when revalidation failed
	m.status.clear()
}
