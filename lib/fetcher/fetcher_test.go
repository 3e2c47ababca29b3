// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package fetcher

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var errRemote = errors.New("remote node unavailable")

func encodeExtrinsicHex(t *testing.T, ext types.Extrinsic) string {
	t.Helper()

	var buffer bytes.Buffer
	err := scale.NewEncoder(&buffer).Encode([]byte(ext))
	require.NoError(t, err)
	return common.BytesToHex(buffer.Bytes())
}

func headerToResponse(t *testing.T, header *types.Header) ChainBlockHeaderResponse {
	t.Helper()

	logs := make([]string, len(header.Digest))
	for i, d := range header.Digest {
		logs[i] = common.BytesToHex(d)
	}

	return ChainBlockHeaderResponse{
		ParentHash:     header.ParentHash.String(),
		Number:         common.BytesToHex(new(big.Int).SetUint64(header.Number).Bytes()),
		StateRoot:      header.StateRoot.String(),
		ExtrinsicsRoot: header.ExtrinsicsRoot.String(),
		Digest:         ChainBlockHeaderDigest{Logs: logs},
	}
}

func TestFetcher_RemoteBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockRPCClient(ctrl)

	exts := []types.Extrinsic{{0x83, 1, 2, 3}, {0x84, 4, 5, 6}}
	root, err := types.NewBody(exts).Hash()
	require.NoError(t, err)

	header := types.NewHeader(common.EmptyHash, common.EmptyHash, root, 1, nil)

	bodyHex := make([]string, len(exts))
	for i, ext := range exts {
		bodyHex[i] = encodeExtrinsicHex(t, ext)
	}

	client.EXPECT().Call(gomock.Any(), "chain_getBlock", header.Hash().String()).DoAndReturn(
		func(result interface{}, _ string, _ ...interface{}) error {
			*result.(*ChainBlockResponse) = ChainBlockResponse{Block: ChainBlock{
				Header: headerToResponse(t, header),
				Body:   bodyHex,
			}}
			return nil
		})

	f := NewFetcher(client)
	got, err := f.RemoteBody(context.Background(), &RemoteBodyRequest{Header: header})
	require.NoError(t, err)
	require.Equal(t, exts, got)
}

func TestFetcher_RemoteBody_NilHeader(t *testing.T) {
	f := NewFetcher(nil)

	_, err := f.RemoteBody(context.Background(), &RemoteBodyRequest{})
	require.ErrorIs(t, err, ErrNilHeader)

	_, err = f.RemoteBody(context.Background(), nil)
	require.ErrorIs(t, err, ErrNilHeader)
}

func TestFetcher_RemoteBody_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockRPCClient(ctrl)

	header := types.NewHeader(common.EmptyHash, common.EmptyHash, common.Hash{0xff}, 1, nil)

	client.EXPECT().Call(gomock.Any(), "chain_getBlock", header.Hash().String()).DoAndReturn(
		func(result interface{}, _ string, _ ...interface{}) error {
			*result.(*ChainBlockResponse) = ChainBlockResponse{Block: ChainBlock{
				Header: headerToResponse(t, header),
				Body:   []string{encodeExtrinsicHex(t, types.Extrinsic{1, 2, 3})},
			}}
			return nil
		})

	f := NewFetcher(client)
	retries := uint32(1)

	_, err := f.RemoteBody(context.Background(), &RemoteBodyRequest{Header: header, RetryCount: &retries})
	require.ErrorIs(t, err, ErrBodyMismatch)
}

func TestFetcher_RemoteBody_Retries(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockRPCClient(ctrl)

	exts := []types.Extrinsic{{0x83, 9}}
	root, err := types.NewBody(exts).Hash()
	require.NoError(t, err)

	header := types.NewHeader(common.EmptyHash, common.EmptyHash, root, 1, nil)

	gomock.InOrder(
		client.EXPECT().Call(gomock.Any(), "chain_getBlock", header.Hash().String()).Return(errRemote),
		client.EXPECT().Call(gomock.Any(), "chain_getBlock", header.Hash().String()).DoAndReturn(
			func(result interface{}, _ string, _ ...interface{}) error {
				*result.(*ChainBlockResponse) = ChainBlockResponse{Block: ChainBlock{
					Header: headerToResponse(t, header),
					Body:   []string{encodeExtrinsicHex(t, exts[0])},
				}}
				return nil
			}),
	)

	f := NewFetcher(client)
	f.retryDelay = time.Millisecond

	got, err := f.RemoteBody(context.Background(), &RemoteBodyRequest{Header: header})
	require.NoError(t, err)
	require.Equal(t, exts, got)
}

func TestFetcher_RemoteBody_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockRPCClient(ctrl)

	header := types.NewHeader(common.EmptyHash, common.EmptyHash, common.EmptyHash, 1, nil)

	client.EXPECT().Call(gomock.Any(), "chain_getBlock", header.Hash().String()).Return(errRemote)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(client)
	_, err := f.RemoteBody(ctx, &RemoteBodyRequest{Header: header})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFetcher_GetHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockRPCClient(ctrl)

	header := types.NewHeader(common.Hash{1}, common.Hash{2}, common.Hash{3}, 42, [][]byte{{6, 7}})

	client.EXPECT().Call(gomock.Any(), "chain_getHeader").DoAndReturn(
		func(result interface{}, _ string, _ ...interface{}) error {
			*result.(*ChainBlockHeaderResponse) = headerToResponse(t, header)
			return nil
		})

	f := NewFetcher(client)
	got, err := f.GetHeader(nil)
	require.NoError(t, err)
	require.Equal(t, header, got)
}

func TestFetcher_GetHeader_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockRPCClient(ctrl)

	hash := common.Hash{9}
	client.EXPECT().Call(gomock.Any(), "chain_getHeader", hash.String()).Return(nil)

	f := NewFetcher(client)
	_, err := f.GetHeader(&hash)
	require.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestFetcher_GetBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockRPCClient(ctrl)

	exts := []types.Extrinsic{{0x83, 1, 2, 3}}
	body := types.NewBody(exts)
	root, err := body.Hash()
	require.NoError(t, err)

	header := types.NewHeader(common.Hash{1}, common.Hash{2}, root, 7, nil)

	client.EXPECT().Call(gomock.Any(), "chain_getBlock", header.Hash().String()).DoAndReturn(
		func(result interface{}, _ string, _ ...interface{}) error {
			*result.(*ChainBlockResponse) = ChainBlockResponse{Block: ChainBlock{
				Header: headerToResponse(t, header),
				Body:   []string{encodeExtrinsicHex(t, exts[0])},
			}}
			return nil
		})

	f := NewFetcher(client)
	hash := header.Hash()

	block, err := f.GetBlock(&hash)
	require.NoError(t, err)
	require.Equal(t, &types.Block{Header: *header, Body: *body}, block)
}

func TestFetcher_GetBlockHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockRPCClient(ctrl)

	expected := common.Hash{5}
	client.EXPECT().Call(gomock.Any(), "chain_getBlockHash", uint64(0)).DoAndReturn(
		func(result interface{}, _ string, _ ...interface{}) error {
			*result.(*string) = expected.String()
			return nil
		})

	f := NewFetcher(client)
	number := uint64(0)

	hash, err := f.GetBlockHash(&number)
	require.NoError(t, err)
	require.Equal(t, expected, hash)
}

func TestFetcher_PendingExtrinsics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockRPCClient(ctrl)

	exts := []types.Extrinsic{{0x83, 1}, {0x84, 2}}
	pending := make([]string, len(exts))
	for i, ext := range exts {
		pending[i] = encodeExtrinsicHex(t, ext)
	}

	client.EXPECT().Call(gomock.Any(), "author_pendingExtrinsics").DoAndReturn(
		func(result interface{}, _ string, _ ...interface{}) error {
			*result.(*[]string) = pending
			return nil
		})

	f := NewFetcher(client)
	got, err := f.PendingExtrinsics()
	require.NoError(t, err)
	require.Equal(t, exts, got)
}

func TestParseHexNumber(t *testing.T) {
	testCases := []struct {
		in       string
		expected uint64
		wantErr  bool
	}{
		{in: "0x", expected: 0},
		{in: "0x01", expected: 1},
		{in: "0x1", expected: 1},
		{in: "0x2a", expected: 42},
		{in: "zz", wantErr: true},
	}

	for _, tc := range testCases {
		n, err := parseHexNumber(tc.in)
		if tc.wantErr {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.expected, n, tc.in)
	}
}
