// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Node flags
var (
	// ForceFlag disables all confirm prompts ("Y" to all)
	ForceFlag = cli.BoolFlag{
		Name:  "force",
		Usage: "Disable all confirm prompts (the same as answering \"Y\" to all)",
	}
)

// Global node configuration flags
var (
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	LogStateLevelFlag = cli.StringFlag{
		Name:  "log-state",
		Usage: "State package log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	LogWatcherLevelFlag = cli.StringFlag{
		Name:  "log-watcher",
		Usage: "Watcher package log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	LogMaintenanceLevelFlag = cli.StringFlag{
		Name:  "log-maintenance",
		Usage: "Maintenance package log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}

	// NameFlag node implementation name
	NameFlag = cli.StringFlag{
		Name:  "name",
		Usage: "Node implementation name",
	}
	// ChainFlag is chain id used to load default configuration for specified chain
	ChainFlag = cli.StringFlag{
		Name:  "chain",
		Usage: "Chain id used to load default configuration for specified chain",
	}
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// BasePathFlag data directory for node
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory for the node",
	}

	// PublishMetricsFlag publishes node metrics to prometheus.
	PublishMetricsFlag = cli.BoolFlag{
		Name:  "publish-metrics",
		Usage: "Publish node metrics",
	}
	// MetricsPortFlag set metric listen port
	MetricsPortFlag = cli.UintFlag{
		Name:  "metrics-port",
		Usage: "Set metric listening port",
	}

	// NoTelemetryFlag stops publishing telemetry to the default endpoints
	NoTelemetryFlag = cli.BoolFlag{
		Name:  "no-telemetry",
		Usage: "Disable connecting to the Substrate telemetry server",
	}

	// TelemetryURLFlag is URL of the telemetry server to connect to.
	// This flag can be passed multiple times as a means to specify multiple
	// telemetry endpoints. Verbosity levels range from 0-9, with 0 denoting the
	// least verbosity.
	// Expected format is 'URL VERBOSITY', e.g. `--telemetry-url 'wss://foo/bar 0'`.
	TelemetryURLFlag = cli.StringSliceFlag{
		Name: "telemetry-url",
		Usage: `The URL of the telemetry server to connect to, this flag can be
		passed multiple times, the verbosity levels range from 0-9, with 0 denoting
		least verbosity.
		Expected format --telemetry-url 'wss://foo/bar 0'`,
	}
)

// Watcher service configuration flags
var (
	// EndpointFlag websocket RPC endpoint of the node to follow
	EndpointFlag = cli.StringFlag{
		Name:  "endpoint",
		Usage: "Websocket RPC endpoint of the node to follow",
	}
	// PollIntervalFlag interval between best block polls
	PollIntervalFlag = cli.UintFlag{
		Name:  "poll-interval",
		Usage: "Set interval in seconds between best block polls",
	}
	// FullFlag maintains the queue from local block data
	FullFlag = cli.BoolFlag{
		Name:  "full",
		Usage: "Maintain the transaction queue from local block data instead of remote body fetches",
	}
	// RevalidateTimeFlag seconds between ready queue revalidations
	RevalidateTimeFlag = cli.UintFlag{
		Name:  "revalidate-time",
		Usage: "Set seconds between ready queue revalidations, 0 to disable",
	}
	// RevalidateBlocksFlag imported blocks between ready queue revalidations
	RevalidateBlocksFlag = cli.UintFlag{
		Name:  "revalidate-blocks",
		Usage: "Set imported blocks between ready queue revalidations, 0 to disable",
	}
)

// flag sets that are shared by multiple commands
var (
	// GlobalFlags are flags that are valid for use with the root command and all subcommands
	GlobalFlags = []cli.Flag{
		LogFlag,
		LogStateLevelFlag,
		LogWatcherLevelFlag,
		LogMaintenanceLevelFlag,
		NameFlag,
		ChainFlag,
		ConfigFlag,
		BasePathFlag,
	}

	// StartupFlags are flags that are valid for use with the root command and the export subcommand
	StartupFlags = []cli.Flag{
		// watcher flags
		EndpointFlag,
		PollIntervalFlag,
		FullFlag,
		RevalidateTimeFlag,
		RevalidateBlocksFlag,

		// metrics flag
		PublishMetricsFlag,
		MetricsPortFlag,

		// telemetry flags
		NoTelemetryFlag,
		TelemetryURLFlag,
	}
)

// local flag sets for the root txpool command and all subcommands
var (
	// RootFlags are the flags that are valid for use with the root txpool command
	RootFlags = append(GlobalFlags, StartupFlags...)

	// ExportFlags are the flags that are valid for use with the export subcommand
	ExportFlags = append([]cli.Flag{
		ForceFlag,
	}, append(GlobalFlags, StartupFlags...)...)
)

// FixFlagOrder allow us to use various flag order formats (ie, `txpool export
// --config config.toml` and `txpool --config config.toml export`). FixFlagOrder
// only fixes global flags, all local flags must come after the subcommand (ie,
// `txpool --force --config config.toml export` will not recognise `--force` but
// `txpool export --force --config config.toml` will work as expected).
func FixFlagOrder(f func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		const trace = "trace"

		// loop through all flags (global and local)
		for _, flagName := range ctx.FlagNames() {

			// check if flag is set as global or local flag
			if ctx.GlobalIsSet(flagName) {
				// log global flag if log equals trace
				if ctx.String(LogFlag.Name) == trace {
					logger.Trace("[cmd] global flag set with name: " + flagName)
				}
			} else if ctx.IsSet(flagName) {
				// check if global flag using set as global flag
				err := ctx.GlobalSet(flagName, ctx.String(flagName))
				if err == nil {
					// log fixed global flag if log equals trace
					if ctx.String(LogFlag.Name) == trace {
						logger.Trace("[cmd] global flag fixed with name: " + flagName)
					}
				} else {
					// if not global flag, log local flag if log equals trace
					if ctx.String(LogFlag.Name) == trace {
						logger.Trace("[cmd] local flag set with name: " + flagName)
					}
				}
			}
		}

		return f(ctx)
	}
}
