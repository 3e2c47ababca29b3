// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package telemetry

// Message is a telemetry message. Its implementations live in this
// package, one file per message, and are named after the value their
// messageType method returns.
type Message interface {
	messageType() string
}

const (
	blockImportMsg     = "block.import"
	systemConnectedMsg = "system.connected"
	txPoolImportMsg    = "txpool.import"
)

// TelemetryEndpoint is a websocket telemetry endpoint with its verbosity level
type TelemetryEndpoint struct {
	Endpoint  string
	Verbosity int
}
