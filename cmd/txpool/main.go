// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/ChainSafe/txpool/dot"
	"github.com/ChainSafe/txpool/lib/utils"

	log "github.com/ChainSafe/log15"
	"github.com/urfave/cli"
)

const (
	exportCommandName = "export"
)

// app is the cli application
var app = cli.NewApp()

var logger log.Logger = log.New("pkg", "cmd")

var (
	// exportCommand defines the "export" subcommand (ie, `txpool export`)
	exportCommand = cli.Command{
		Action:    FixFlagOrder(exportAction),
		Name:      exportCommandName,
		Usage:     "Export configuration values to TOML configuration file",
		ArgsUsage: "",
		Flags:     ExportFlags,
		Category:  "EXPORT",
		Description: "The export command exports configuration values from the command flags to a TOML configuration file.\n" +
			"\tUsage: txpool export --config config.toml --chain westend\n",
	}
)

// init initialises the cli application
func init() {
	app.Action = txpoolAction
	app.Copyright = "Copyright 2021 ChainSafe Systems Authors"
	app.Name = "txpool"
	app.Usage = "Official txpool command-line interface"
	app.Author = "ChainSafe Systems 2021"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		exportCommand,
	}
	app.Flags = RootFlags
}

// main runs the cli application
func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// txpoolAction is the root action for the txpool command, creates a node
// configuration from the flag values, then creates and starts the node and
// node services
func txpoolAction(ctx *cli.Context) error {
	// check for unknown command arguments
	if arguments := ctx.Args(); len(arguments) > 0 {
		return fmt.Errorf("failed to read command argument: %q", arguments[0])
	}

	// setup cmd logger, the node services resolve their own log levels from
	// the configuration in createDotConfig
	if _, err := setupLogger(ctx); err != nil {
		logger.Error("failed to setup logger", "error", err)
		return err
	}

	// create new dot configuration (the dot configuration is created within the
	// cli application from the flag values provided)
	cfg, err := createDotConfig(ctx)
	if err != nil {
		logger.Error("failed to create node configuration", "error", err)
		return err
	}

	// expand data directory and update node configuration (performed separately
	// from createDotConfig because dot config should not include expanded path)
	cfg.Global.BasePath = utils.ExpandDir(cfg.Global.BasePath)

	// create node services
	node, err := dot.NewNode(cfg)
	if err != nil {
		logger.Error("failed to create node services", "error", err)
		return err
	}

	logger.Info("starting node...", "name", cfg.Global.Name)

	// start node
	if err := node.Start(); err != nil {
		return err
	}

	return nil
}

// exportAction is the action for the "export" subcommand, exports the
// configuration from the flag values to a toml configuration file at the
// path set by the --config flag
func exportAction(ctx *cli.Context) error {
	// check for unknown command arguments
	if arguments := ctx.Args(); len(arguments) > 0 {
		return fmt.Errorf("failed to read command argument: %q", arguments[0])
	}

	// setup logger
	if _, err := setupLogger(ctx); err != nil {
		logger.Error("failed to setup logger", "error", err)
		return err
	}

	// use --config value as the export destination
	config := ctx.String(ConfigFlag.Name)
	if config == "" {
		return fmt.Errorf("export destination undefined: must provide --config")
	}

	cfg, err := createExportConfig(ctx)
	if err != nil {
		logger.Error("failed to create export configuration", "error", err)
		return err
	}

	if utils.PathExists(config) {
		logger.Warn("toml configuration file already exists", "config", config)

		// --force disables the confirm prompt to overwrite the existing file
		force := ctx.Bool(ForceFlag.Name)
		if force || confirmMessage("Are you sure you want to overwrite the file? [Y/n]") {
			logger.Warn("overwriting toml configuration file", "config", config)
		} else {
			logger.Warn("exiting without exporting toml configuration file")
			return nil
		}
	}

	tomlCfg := dotConfigToToml(cfg)
	dot.ExportTomlConfig(tomlCfg, config)

	logger.Info("exported toml configuration file", "config", config)
	return nil
}
