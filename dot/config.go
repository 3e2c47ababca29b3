// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"encoding/json"
	"time"

	"github.com/ChainSafe/txpool/chain/dev"
	"github.com/ChainSafe/txpool/chain/kusama"
	"github.com/ChainSafe/txpool/chain/polkadot"
	"github.com/ChainSafe/txpool/chain/westend"
	"github.com/ChainSafe/txpool/dot/telemetry"
	"github.com/ChainSafe/txpool/dot/types"

	log "github.com/ChainSafe/log15"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global  GlobalConfig
	Log     LogConfig
	Watcher WatcherConfig
	System  types.SystemInfo
}

// GlobalConfig is used for every node command
type GlobalConfig struct {
	Name           string
	ID             string
	BasePath       string
	LogLvl         log.Lvl
	PublishMetrics bool
	MetricsPort    uint32
	NoTelemetry    bool
	TelemetryURLs  []telemetry.TelemetryEndpoint
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	StateLvl       log.Lvl
	WatcherLvl     log.Lvl
	MaintenanceLvl log.Lvl
}

// WatcherConfig holds the configuration for the chain watcher and the
// transaction queue maintenance
type WatcherConfig struct {
	Endpoint         string
	PollInterval     time.Duration
	Full             bool          // maintain from local block data instead of remote fetches
	RevalidateTime   time.Duration // 0 disables timed revalidation
	RevalidateBlocks uint32        // 0 disables block count revalidation
}

// String will return the json representation for a Config
func (c *Config) String() string {
	out, _ := json.MarshalIndent(c, "", "\t")
	return string(out)
}

// WestendConfig returns a westend node configuration
func WestendConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			Name:          westend.DefaultName,
			ID:            westend.DefaultID,
			BasePath:      westend.DefaultBasePath,
			LogLvl:        westend.DefaultLvl,
			MetricsPort:   westend.DefaultMetricsPort,
			TelemetryURLs: westend.DefaultTelemetryURLs,
		},
		Log: LogConfig{
			StateLvl:       westend.DefaultLvl,
			WatcherLvl:     westend.DefaultLvl,
			MaintenanceLvl: westend.DefaultLvl,
		},
		Watcher: WatcherConfig{
			Endpoint:         westend.DefaultEndpoint,
			PollInterval:     time.Second * time.Duration(westend.DefaultPollInterval),
			RevalidateTime:   time.Second * time.Duration(westend.DefaultRevalidateTime),
			RevalidateBlocks: westend.DefaultRevalidateBlocks,
		},
	}
}

// PolkadotConfig returns a polkadot node configuration
func PolkadotConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			Name:          polkadot.DefaultName,
			ID:            polkadot.DefaultID,
			BasePath:      polkadot.DefaultBasePath,
			LogLvl:        polkadot.DefaultLvl,
			MetricsPort:   polkadot.DefaultMetricsPort,
			TelemetryURLs: polkadot.DefaultTelemetryURLs,
		},
		Log: LogConfig{
			StateLvl:       polkadot.DefaultLvl,
			WatcherLvl:     polkadot.DefaultLvl,
			MaintenanceLvl: polkadot.DefaultLvl,
		},
		Watcher: WatcherConfig{
			Endpoint:         polkadot.DefaultEndpoint,
			PollInterval:     time.Second * time.Duration(polkadot.DefaultPollInterval),
			RevalidateTime:   time.Second * time.Duration(polkadot.DefaultRevalidateTime),
			RevalidateBlocks: polkadot.DefaultRevalidateBlocks,
		},
	}
}

// KusamaConfig returns a kusama node configuration
func KusamaConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			Name:          kusama.DefaultName,
			ID:            kusama.DefaultID,
			BasePath:      kusama.DefaultBasePath,
			LogLvl:        kusama.DefaultLvl,
			MetricsPort:   kusama.DefaultMetricsPort,
			TelemetryURLs: kusama.DefaultTelemetryURLs,
		},
		Log: LogConfig{
			StateLvl:       kusama.DefaultLvl,
			WatcherLvl:     kusama.DefaultLvl,
			MaintenanceLvl: kusama.DefaultLvl,
		},
		Watcher: WatcherConfig{
			Endpoint:         kusama.DefaultEndpoint,
			PollInterval:     time.Second * time.Duration(kusama.DefaultPollInterval),
			RevalidateTime:   time.Second * time.Duration(kusama.DefaultRevalidateTime),
			RevalidateBlocks: kusama.DefaultRevalidateBlocks,
		},
	}
}

// DevConfig returns a configuration for a local development node
func DevConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			Name:        dev.DefaultName,
			ID:          dev.DefaultID,
			BasePath:    dev.DefaultBasePath,
			LogLvl:      dev.DefaultLvl,
			MetricsPort: dev.DefaultMetricsPort,
			NoTelemetry: true,
		},
		Log: LogConfig{
			StateLvl:       dev.DefaultLvl,
			WatcherLvl:     dev.DefaultLvl,
			MaintenanceLvl: dev.DefaultLvl,
		},
		Watcher: WatcherConfig{
			Endpoint:         dev.DefaultEndpoint,
			PollInterval:     time.Second * time.Duration(dev.DefaultPollInterval),
			RevalidateTime:   time.Second * time.Duration(dev.DefaultRevalidateTime),
			RevalidateBlocks: dev.DefaultRevalidateBlocks,
		},
	}
}
