// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package fetcher retrieves chain data a node does not store locally from a
// remote node over the substrate JSON-RPC API.
package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var (
	// ErrNilHeader is returned when a remote body request carries no header
	ErrNilHeader = errors.New("request header is nil")

	// ErrBodyMismatch is returned when a fetched body does not hash to the
	// extrinsics root of the header it was requested for
	ErrBodyMismatch = errors.New("fetched body does not match the extrinsics root")

	// ErrHeaderNotFound is returned when the remote node does not know the
	// requested header
	ErrHeaderNotFound = errors.New("header not found on remote node")

	// ErrBlockNotFound is returned when the remote node does not know the
	// requested block
	ErrBlockNotFound = errors.New("block not found on remote node")
)

const (
	// defaultRetryCount is the number of fetch attempts made when the
	// request does not specify one
	defaultRetryCount uint32 = 3
	defaultRetryDelay        = 2 * time.Second
)

// RPCClient is the part of the substrate RPC client used by the fetcher
type RPCClient interface {
	Call(result interface{}, method string, args ...interface{}) error
}

// RemoteBodyRequest asks for the extrinsics of the block the given header
// commits to
type RemoteBodyRequest struct {
	Header *types.Header
	// RetryCount caps the fetch attempts for this request. When nil the
	// fetcher default of 3 attempts applies.
	RetryCount *uint32
}

// Fetcher fetches remote chain data through an RPC client
type Fetcher struct {
	client     RPCClient
	retryDelay time.Duration
}

// NewFetcher returns a Fetcher calling through the given RPC client
func NewFetcher(client RPCClient) *Fetcher {
	return &Fetcher{
		client:     client,
		retryDelay: defaultRetryDelay,
	}
}

// RemoteBody fetches the body of the block the request header commits to and
// verifies it against the header's extrinsics root. Failed attempts are
// retried up to the request's retry count with a fixed delay in between.
func (f *Fetcher) RemoteBody(ctx context.Context, req *RemoteBodyRequest) ([]types.Extrinsic, error) {
	if req == nil || req.Header == nil {
		return nil, ErrNilHeader
	}

	attempts := defaultRetryCount
	if req.RetryCount != nil {
		attempts = *req.RetryCount
	}

	hash := req.Header.Hash()

	var lastErr error
	for i := uint32(0); i < attempts; i++ {
		if i > 0 {
			if err := f.waitRetry(ctx); err != nil {
				return nil, err
			}
		}

		exts, err := f.blockBody(hash)
		if err != nil {
			lastErr = err
			continue
		}

		bodyHash, err := types.NewBody(exts).Hash()
		if err != nil {
			return nil, err
		}

		if bodyHash != req.Header.ExtrinsicsRoot {
			lastErr = fmt.Errorf("%w: got %s, expected %s",
				ErrBodyMismatch, bodyHash, req.Header.ExtrinsicsRoot)
			continue
		}

		return exts, nil
	}

	return nil, lastErr
}

// GetHeader fetches the header with the given hash from the remote node.
// A nil hash fetches the current best header.
func (f *Fetcher) GetHeader(hash *common.Hash) (*types.Header, error) {
	var res ChainBlockHeaderResponse
	if err := f.callWithOptionalHash(&res, "chain_getHeader", hash); err != nil {
		return nil, err
	}

	if res.ParentHash == "" {
		return nil, ErrHeaderNotFound
	}

	return HeaderResponseToHeader(&res)
}

// GetBlock fetches the block with the given hash from the remote node.
// A nil hash fetches the current best block.
func (f *Fetcher) GetBlock(hash *common.Hash) (*types.Block, error) {
	var res ChainBlockResponse
	if err := f.callWithOptionalHash(&res, "chain_getBlock", hash); err != nil {
		return nil, err
	}

	if res.Block.Header.ParentHash == "" {
		return nil, ErrBlockNotFound
	}

	header, err := HeaderResponseToHeader(&res.Block.Header)
	if err != nil {
		return nil, err
	}

	exts, err := decodeBody(res.Block.Body)
	if err != nil {
		return nil, err
	}

	return &types.Block{Header: *header, Body: *types.NewBody(exts)}, nil
}

// GetBlockHash fetches the canonical chain block hash for the given number.
// A nil number fetches the best block hash.
func (f *Fetcher) GetBlockHash(number *uint64) (common.Hash, error) {
	var res string
	var err error
	if number == nil {
		err = f.client.Call(&res, "chain_getBlockHash")
	} else {
		err = f.client.Call(&res, "chain_getBlockHash", *number)
	}
	if err != nil {
		return common.EmptyHash, fmt.Errorf("cannot call chain_getBlockHash: %w", err)
	}

	if res == "" {
		return common.EmptyHash, ErrBlockNotFound
	}

	return common.HexToHash(res)
}

// PendingExtrinsics fetches the extrinsics currently pending in the remote
// node's transaction pool
func (f *Fetcher) PendingExtrinsics() ([]types.Extrinsic, error) {
	var res []string
	if err := f.client.Call(&res, "author_pendingExtrinsics"); err != nil {
		return nil, fmt.Errorf("cannot call author_pendingExtrinsics: %w", err)
	}

	return decodeBody(res)
}

// SystemChain fetches the chain name of the remote node
func (f *Fetcher) SystemChain() (string, error) {
	var res string
	if err := f.client.Call(&res, "system_chain"); err != nil {
		return "", fmt.Errorf("cannot call system_chain: %w", err)
	}
	return res, nil
}

// SystemName fetches the implementation name of the remote node
func (f *Fetcher) SystemName() (string, error) {
	var res string
	if err := f.client.Call(&res, "system_name"); err != nil {
		return "", fmt.Errorf("cannot call system_name: %w", err)
	}
	return res, nil
}

// SystemVersion fetches the implementation version of the remote node
func (f *Fetcher) SystemVersion() (string, error) {
	var res string
	if err := f.client.Call(&res, "system_version"); err != nil {
		return "", fmt.Errorf("cannot call system_version: %w", err)
	}
	return res, nil
}

func (f *Fetcher) blockBody(hash common.Hash) ([]types.Extrinsic, error) {
	var res ChainBlockResponse
	if err := f.client.Call(&res, "chain_getBlock", hash.String()); err != nil {
		return nil, fmt.Errorf("cannot call chain_getBlock: %w", err)
	}

	if res.Block.Header.ParentHash == "" {
		return nil, ErrBlockNotFound
	}

	return decodeBody(res.Block.Body)
}

func (f *Fetcher) callWithOptionalHash(result interface{}, method string, hash *common.Hash) error {
	var err error
	if hash == nil {
		err = f.client.Call(result, method)
	} else {
		err = f.client.Call(result, method, hash.String())
	}
	if err != nil {
		return fmt.Errorf("cannot call %s: %w", method, err)
	}
	return nil
}

func (f *Fetcher) waitRetry(ctx context.Context) error {
	timer := time.NewTimer(f.retryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// decodeBody converts the hex extrinsic list of a chain RPC response into
// extrinsics. Each entry is the SCALE encoding of one extrinsic.
func decodeBody(in []string) ([]types.Extrinsic, error) {
	exts := make([]types.Extrinsic, len(in))
	for i, enc := range in {
		data, err := common.HexToBytes(enc)
		if err != nil {
			return nil, fmt.Errorf("malformed extrinsic hex string: %w", err)
		}

		var ext []byte
		if err := scale.NewDecoder(bytes.NewReader(data)).Decode(&ext); err != nil {
			return nil, fmt.Errorf("malformed extrinsic bytes: %w", err)
		}

		exts[i] = types.NewExtrinsic(ext)
	}

	return exts, nil
}
