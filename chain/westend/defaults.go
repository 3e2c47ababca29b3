// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package westend

import (
	"github.com/ChainSafe/txpool/dot/telemetry"
	"github.com/ChainSafe/txpool/lib/utils"

	log "github.com/ChainSafe/log15"
)

var (
	// GlobalConfig

	// DefaultName is the node name
	DefaultName = "Txpool"
	// DefaultID is the chain id
	DefaultID = "westend"
	// DefaultBasePath is the node base directory path
	DefaultBasePath = utils.BasePath("westend")
	// DefaultLvl is the default log level
	DefaultLvl = log.LvlInfo
	// DefaultMetricsPort is the metrics server port
	DefaultMetricsPort = uint32(9876)
	// DefaultTelemetryURLs is the default telemetry endpoints
	DefaultTelemetryURLs = []telemetry.TelemetryEndpoint{
		{Endpoint: "wss://telemetry.polkadot.io/submit/", Verbosity: 1},
	}

	// WatcherConfig

	// DefaultEndpoint is the westend node the transaction pool follows
	DefaultEndpoint = "wss://westend-rpc.polkadot.io"
	// DefaultPollInterval is the best block poll interval in seconds
	DefaultPollInterval = uint32(6)
	// DefaultRevalidateTime is the ready queue revalidation period in seconds
	DefaultRevalidateTime = uint32(60)
	// DefaultRevalidateBlocks is the ready queue revalidation period in blocks
	DefaultRevalidateBlocks = uint32(20)
)
