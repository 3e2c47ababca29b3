// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"github.com/ChainSafe/txpool/lib/utils"

	log "github.com/ChainSafe/log15"
)

var (
	// GlobalConfig

	// DefaultName is the node name
	DefaultName = "Txpool"
	// DefaultID is the chain id
	DefaultID = "dev"
	// DefaultBasePath is the node base directory path
	DefaultBasePath = utils.BasePath("dev")
	// DefaultLvl is the default log level
	DefaultLvl = log.LvlDebug
	// DefaultMetricsPort is the metrics server port
	DefaultMetricsPort = uint32(9876)

	// WatcherConfig

	// DefaultEndpoint is the local development node the transaction pool follows
	DefaultEndpoint = "ws://127.0.0.1:9944"
	// DefaultPollInterval is the best block poll interval in seconds
	DefaultPollInterval = uint32(1)
	// DefaultRevalidateTime is the ready queue revalidation period in seconds
	DefaultRevalidateTime = uint32(60)
	// DefaultRevalidateBlocks is the ready queue revalidation period in blocks
	DefaultRevalidateBlocks = uint32(20)
)
