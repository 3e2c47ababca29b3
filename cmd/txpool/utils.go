// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/ChainSafe/txpool/dot"

	log "github.com/ChainSafe/log15"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

const confirmCharacter = "Y"

// setupLogger sets up the cmd logger, the --log flag sets the level and
// defaults to info
func setupLogger(ctx *cli.Context) (log.Lvl, error) {
	handler := log.StreamHandler(os.Stdout, log.TerminalFormat())
	handler = log.CallerFileHandler(handler)

	lvl := log.LvlInfo
	if lvlStr := ctx.String(LogFlag.Name); lvlStr != "" {
		var err error
		if lvl, err = parseLogLevelString(lvlStr); err != nil {
			return 0, err
		}
	}

	logger.SetHandler(log.LvlFilterHandler(lvl, handler))
	return lvl, nil
}

// confirmMessage prompts user to confirm message and returns true if "Y"
func confirmMessage(msg string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println(msg)
	fmt.Print("> ")
	for {
		text, _ := reader.ReadString('\n')
		text = strings.ReplaceAll(text, "\n", "")
		return strings.Compare(confirmCharacter, strings.ToUpper(text)) == 0
	}
}

// newTestConfig returns a new test configuration using a temporary basepath
func newTestConfig(t *testing.T) *dot.Config {
	dir := t.TempDir()

	cfg := &dot.Config{
		Global: dot.GlobalConfig{
			Name:           dot.WestendConfig().Global.Name,
			ID:             dot.WestendConfig().Global.ID,
			BasePath:       dir,
			LogLvl:         log.LvlInfo,
			PublishMetrics: dot.WestendConfig().Global.PublishMetrics,
			MetricsPort:    dot.WestendConfig().Global.MetricsPort,
			NoTelemetry:    dot.WestendConfig().Global.NoTelemetry,
			TelemetryURLs:  dot.WestendConfig().Global.TelemetryURLs,
		},
		Log: dot.LogConfig{
			StateLvl:       log.LvlInfo,
			WatcherLvl:     log.LvlInfo,
			MaintenanceLvl: log.LvlInfo,
		},
		Watcher: dot.WestendConfig().Watcher,
		System:  dot.WestendConfig().System,
	}

	return cfg
}

// newTestConfigWithFile returns a new test configuration and a temporary configuration file
func newTestConfigWithFile(t *testing.T) (*dot.Config, *os.File) {
	cfg := newTestConfig(t)

	file, err := os.CreateTemp(cfg.Global.BasePath, "config-")
	require.NoError(t, err)

	tomlCfg := dotConfigToToml(cfg)
	dot.ExportTomlConfig(tomlCfg, file.Name())
	return cfg, file
}

// newTestContext creates a cli context for a test given a set of flags and values
func newTestContext(description string, flags []string, values []interface{}) (*cli.Context, error) {
	set := flag.NewFlagSet(description, 0)

	for i := range values {
		switch v := values[i].(type) {
		case bool:
			set.Bool(flags[i], v, "")
		case string:
			set.String(flags[i], v, "")
		case uint:
			set.Uint(flags[i], v, "")
		case []string:
			set.Var(&cli.StringSlice{}, flags[i], "")
		default:
			return nil, fmt.Errorf("unexpected cli value type: %T", values[i])
		}
	}

	context := cli.NewContext(app, set, nil)

	// mark the flags as set so that value lookups and IsSet checks behave
	// the same as when the values are parsed from the command line
	for i := range values {
		switch v := values[i].(type) {
		case bool:
			if err := context.Set(flags[i], strconv.FormatBool(v)); err != nil {
				return nil, fmt.Errorf("failed to set cli flag: %s, err: %s", flags[i], err)
			}
		case string:
			if err := context.Set(flags[i], v); err != nil {
				return nil, fmt.Errorf("failed to set cli flag: %s, err: %s", flags[i], err)
			}
		case uint:
			if err := context.Set(flags[i], fmt.Sprint(v)); err != nil {
				return nil, fmt.Errorf("failed to set cli flag: %s, err: %s", flags[i], err)
			}
		case []string:
			for _, str := range v {
				if err := context.Set(flags[i], str); err != nil {
					return nil, fmt.Errorf("failed to set cli flag: %s, err: %s", flags[i], err)
				}
			}
		}
	}

	return context, nil
}
