// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
	"github.com/ChainSafe/txpool/lib/utils"
	"github.com/stretchr/testify/require"
)

// NewInMemoryDB creates a new in-memory database
func NewInMemoryDB(t *testing.T) chaindb.Database {
	db, err := utils.SetupDatabase(t.TempDir(), true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// AddBlocksToState adds depth empty blocks on top of the current best block,
// returning the added headers in ascending number order
func AddBlocksToState(t *testing.T, blockState *BlockState, depth uint64) []*types.Header {
	t.Helper()

	best, err := blockState.BestBlockHeader()
	require.NoError(t, err)

	headers := make([]*types.Header, 0, depth)
	previousHash := best.Hash()

	for i := best.Number + 1; i <= best.Number+depth; i++ {
		header := types.NewHeader(previousHash, common.EmptyHash, common.EmptyHash, i, nil)
		err := blockState.AddBlock(&types.Block{
			Header: *header,
			Body:   *types.NewBody(nil),
		})
		require.NoError(t, err)

		headers = append(headers, header)
		previousHash = header.Hash()
	}

	return headers
}
