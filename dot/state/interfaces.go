// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"github.com/ChainSafe/txpool/dot/telemetry"
	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/transaction"
)

// Telemetry is the telemetry client to send telemetry messages.
type Telemetry interface {
	SendMessage(msg telemetry.Message)
}

// Validator checks the validity of a transaction against chain state
// at the given block.
type Validator interface {
	ValidateTransaction(id types.BlockID, ext types.Extrinsic) (*transaction.Validity, error)
}
