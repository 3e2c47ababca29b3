// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package fetcher

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
)

// ChainBlockHeaderDigest holds the hex-encoded digest logs of a header response
type ChainBlockHeaderDigest struct {
	Logs []string `json:"logs"`
}

// ChainBlockHeaderResponse is the header of a chain RPC response
type ChainBlockHeaderResponse struct {
	ParentHash     string                 `json:"parentHash"`
	Number         string                 `json:"number"`
	StateRoot      string                 `json:"stateRoot"`
	ExtrinsicsRoot string                 `json:"extrinsicsRoot"`
	Digest         ChainBlockHeaderDigest `json:"digest"`
}

// ChainBlock holds the header and the hex-encoded extrinsics of a block response
type ChainBlock struct {
	Header ChainBlockHeaderResponse `json:"header"`
	Body   []string                 `json:"body"`
}

// ChainBlockResponse is the response of a chain_getBlock call
type ChainBlockResponse struct {
	Block ChainBlock `json:"block"`
}

// HeaderResponseToHeader converts a chain RPC header response into a header
func HeaderResponseToHeader(resp *ChainBlockHeaderResponse) (*types.Header, error) {
	parentHash, err := common.HexToHash(resp.ParentHash)
	if err != nil {
		return nil, fmt.Errorf("malformed parent hash: %w", err)
	}

	number, err := parseHexNumber(resp.Number)
	if err != nil {
		return nil, fmt.Errorf("malformed block number: %w", err)
	}

	stateRoot, err := common.HexToHash(resp.StateRoot)
	if err != nil {
		return nil, fmt.Errorf("malformed state root: %w", err)
	}

	extrinsicsRoot, err := common.HexToHash(resp.ExtrinsicsRoot)
	if err != nil {
		return nil, fmt.Errorf("malformed extrinsics root: %w", err)
	}

	digest := make([][]byte, len(resp.Digest.Logs))
	for i, log := range resp.Digest.Logs {
		digest[i], err = common.HexToBytes(log)
		if err != nil {
			return nil, fmt.Errorf("malformed digest log: %w", err)
		}
	}

	return types.NewHeader(parentHash, stateRoot, extrinsicsRoot, number, digest), nil
}

// parseHexNumber parses the hex block number of a chain RPC response. Both
// the zero-padded byte form ("0x01") and the plain hex number form ("0x1")
// are accepted.
func parseHexNumber(in string) (uint64, error) {
	s := strings.TrimPrefix(in, "0x")
	if s == "" {
		return 0, nil
	}

	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return 0, fmt.Errorf("malformed hex number: %q", in)
	}

	return n.Uint64(), nil
}
