// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package telemetry

import (
	"github.com/ChainSafe/txpool/lib/common"
)

// blockImportTM holds a `block.import` telemetry message
type blockImportTM struct {
	BestHash *common.Hash `json:"best"`
	Height   uint64       `json:"height"`
	Origin   string       `json:"origin"`
}

// NewBlockImportTM creates a new block import telemetry message
func NewBlockImportTM(bestHash *common.Hash, height uint64, origin string) Message {
	return &blockImportTM{
		BestHash: bestHash,
		Height:   height,
		Origin:   origin,
	}
}

func (*blockImportTM) messageType() string {
	return blockImportMsg
}
