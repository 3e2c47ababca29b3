// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ChainSafe/txpool/dot"
	ctoml "github.com/ChainSafe/txpool/dot/config/toml"
	"github.com/ChainSafe/txpool/dot/telemetry"

	log "github.com/ChainSafe/log15"
	"github.com/urfave/cli"
)

// DefaultCfg is the default configuration for the node
var DefaultCfg = dot.WestendConfig

// loadConfigFile loads the toml configuration file at the --config path into
// the provided toml configuration
func loadConfigFile(ctx *cli.Context, cfg *ctoml.Config) error {
	cfgPath := ctx.String(ConfigFlag.Name)
	if cfgPath == "" {
		return nil
	}

	logger.Info("loading toml configuration...", "config", cfgPath)
	return dot.LoadConfig(cfg, cfgPath)
}

// setupConfigFromChain loads the toml configuration file and the default dot
// configuration for the chain set by the --chain flag
func setupConfigFromChain(ctx *cli.Context) (*ctoml.Config, *dot.Config, error) {
	tomlCfg := &ctoml.Config{}
	cfg := DefaultCfg()

	err := loadConfigFile(ctx, tomlCfg)
	if err != nil {
		logger.Error("failed to load toml configuration", "error", err)
		return nil, nil, err
	}

	// check --chain flag and load configuration from defaults.go, the chain
	// defaults replace any toml configuration values
	if id := ctx.String(ChainFlag.Name); id != "" {
		switch id {
		case "westend":
			logger.Info("loading default configuration...", "chain", id)
			tomlCfg = &ctoml.Config{}
			cfg = dot.WestendConfig()
		case "polkadot":
			logger.Info("loading default configuration...", "chain", id)
			tomlCfg = &ctoml.Config{}
			cfg = dot.PolkadotConfig()
		case "kusama":
			logger.Info("loading default configuration...", "chain", id)
			tomlCfg = &ctoml.Config{}
			cfg = dot.KusamaConfig()
		case "dev":
			logger.Info("loading default configuration...", "chain", id)
			tomlCfg = &ctoml.Config{}
			cfg = dot.DevConfig()
		default:
			return nil, nil, fmt.Errorf("unknown chain id provided: %s", id)
		}
	}

	return tomlCfg, cfg, nil
}

// createDotConfig creates a new dot configuration from the provided flag values
func createDotConfig(ctx *cli.Context) (*dot.Config, error) {
	tomlCfg, cfg, err := setupConfigFromChain(ctx)
	if err != nil {
		logger.Error("failed to set chain configuration", "error", err)
		return nil, err
	}

	// set log config
	err = setLogConfig(ctx, tomlCfg, &cfg.Global, &cfg.Log)
	if err != nil {
		logger.Error("failed to set log configuration", "error", err)
		return nil, err
	}

	// set global configuration values
	if err := setDotGlobalConfig(ctx, tomlCfg, &cfg.Global); err != nil {
		logger.Error("failed to set global node configuration", "error", err)
		return nil, err
	}

	// set watcher configuration values
	setDotWatcherConfig(ctx, tomlCfg.Watcher, &cfg.Watcher)

	// set system info
	setSystemInfoConfig(ctx, cfg)

	return cfg, nil
}

// createExportConfig creates a new dot configuration from the provided flag
// values, the --config value is used as the export destination and is not
// loaded into the configuration
func createExportConfig(ctx *cli.Context) (*dot.Config, error) {
	cfg := DefaultCfg() // start with default configuration
	tomlCfg := &ctoml.Config{}

	// check --chain flag and load configuration from defaults.go
	if id := ctx.String(ChainFlag.Name); id != "" {
		switch id {
		case "westend":
			cfg = dot.WestendConfig()
		case "polkadot":
			cfg = dot.PolkadotConfig()
		case "kusama":
			cfg = dot.KusamaConfig()
		case "dev":
			cfg = dot.DevConfig()
		default:
			return nil, fmt.Errorf("unknown chain id provided: %s", id)
		}
	}

	// set log config
	err := setLogConfig(ctx, tomlCfg, &cfg.Global, &cfg.Log)
	if err != nil {
		logger.Error("failed to set log configuration", "error", err)
		return nil, err
	}

	// set global configuration values
	if err := setDotGlobalConfig(ctx, tomlCfg, &cfg.Global); err != nil {
		logger.Error("failed to set global node configuration", "error", err)
		return nil, err
	}

	// set watcher configuration values
	setDotWatcherConfig(ctx, tomlCfg.Watcher, &cfg.Watcher)

	// set system info
	setSystemInfoConfig(ctx, cfg)

	return cfg, nil
}

// getLogLevel obtains the log level in the following order:
// 1. Try to obtain it from the flag value corresponding to flagName.
// 2. Try to obtain it from the TOML value given, if step 1. failed.
// 3. Return the default value given if both previous steps failed.
// For steps 1 and 2, it tries to parse the level as an integer to convert it
// to a level, and also tries to parse it as a string.
func getLogLevel(ctx *cli.Context, flagName, tomlValue string, defaultLevel log.Lvl) (log.Lvl, error) {
	if flagValue := ctx.String(flagName); flagValue != "" {
		return parseLogLevelString(flagValue)
	}

	if tomlValue == "" {
		return defaultLevel, nil
	}

	return parseLogLevelString(tomlValue)
}

var ErrLogLevelIntegerOutOfRange = errors.New("log level integer can only be between 0 and 5 included")

func parseLogLevelString(logLevelString string) (log.Lvl, error) {
	levelInt, err := strconv.Atoi(logLevelString)
	if err == nil { // level given as an integer
		if levelInt < 0 || levelInt > 5 {
			return 0, fmt.Errorf("%w: log level given: %d", ErrLogLevelIntegerOutOfRange, levelInt)
		}
		return log.Lvl(levelInt), nil
	}

	logLevel, err := log.LvlFromString(logLevelString)
	if err != nil {
		return 0, fmt.Errorf("cannot parse log level string: %w", err)
	}

	return logLevel, nil
}

// setLogConfig sets the global and per package log levels, a package level
// defaults to the global level when neither its flag nor its toml value is set
func setLogConfig(ctx *cli.Context, tomlConfig *ctoml.Config, globalCfg *dot.GlobalConfig, logCfg *dot.LogConfig) (err error) {
	if tomlConfig == nil {
		tomlConfig = new(ctoml.Config)
	}

	globalCfg.LogLvl, err = getLogLevel(ctx, LogFlag.Name, tomlConfig.Global.LogLvl, globalCfg.LogLvl)
	if err != nil {
		return fmt.Errorf("cannot get global log level: %w", err)
	}
	tomlConfig.Global.LogLvl = globalCfg.LogLvl.String()

	levelsData := []struct {
		name      string
		flagName  string
		tomlValue string
		levelPtr  *log.Lvl // pointer to value to modify
	}{
		{
			name:      "state",
			flagName:  LogStateLevelFlag.Name,
			tomlValue: tomlConfig.Log.StateLvl,
			levelPtr:  &logCfg.StateLvl,
		},
		{
			name:      "watcher",
			flagName:  LogWatcherLevelFlag.Name,
			tomlValue: tomlConfig.Log.WatcherLvl,
			levelPtr:  &logCfg.WatcherLvl,
		},
		{
			name:      "maintenance",
			flagName:  LogMaintenanceLevelFlag.Name,
			tomlValue: tomlConfig.Log.MaintenanceLvl,
			levelPtr:  &logCfg.MaintenanceLvl,
		},
	}

	for _, levelData := range levelsData {
		level, err := getLogLevel(ctx, levelData.flagName, levelData.tomlValue, globalCfg.LogLvl)
		if err != nil {
			return fmt.Errorf("cannot get %s log level: %w", levelData.name, err)
		}
		*levelData.levelPtr = level
	}

	logger.Debug("set log configuration", "--log", ctx.String(LogFlag.Name), "global", globalCfg.LogLvl)
	return nil
}

// setDotGlobalConfig sets dot.GlobalConfig using flag values from the cli context
func setDotGlobalConfig(ctx *cli.Context, tomlConfig *ctoml.Config, cfg *dot.GlobalConfig) error {
	setDotGlobalConfigFromToml(tomlConfig, cfg)
	if err := setDotGlobalConfigFromFlags(ctx, cfg); err != nil {
		return fmt.Errorf("could not set global config from flags: %w", err)
	}

	setDotGlobalConfigName(ctx, tomlConfig, cfg)

	logger.Debug("global configuration", "name", cfg.Name, "id", cfg.ID, "basepath", cfg.BasePath)

	return nil
}

// setDotGlobalConfigFromToml will apply the toml configs to dot global config
func setDotGlobalConfigFromToml(tomlCfg *ctoml.Config, cfg *dot.GlobalConfig) {
	if tomlCfg != nil {
		if tomlCfg.Global.ID != "" {
			cfg.ID = tomlCfg.Global.ID
		}

		if tomlCfg.Global.BasePath != "" {
			cfg.BasePath = tomlCfg.Global.BasePath
		}

		if tomlCfg.Global.LogLvl != "" {
			level, err := parseLogLevelString(tomlCfg.Global.LogLvl)
			if err == nil {
				cfg.LogLvl = level
			}
		}

		if tomlCfg.Global.PublishMetrics {
			cfg.PublishMetrics = true
		}

		if tomlCfg.Global.MetricsPort != 0 {
			cfg.MetricsPort = tomlCfg.Global.MetricsPort
		}

		if tomlCfg.Global.NoTelemetry {
			cfg.NoTelemetry = true
		}

		if len(tomlCfg.Global.TelemetryURLs) != 0 {
			telemetryEndpoints, err := parseTelemetryURLs(tomlCfg.Global.TelemetryURLs)
			if err == nil {
				cfg.TelemetryURLs = telemetryEndpoints
			}
		}
	}
}

// setDotGlobalConfigFromFlags sets dot.GlobalConfig using flag values from the cli context
func setDotGlobalConfigFromFlags(ctx *cli.Context, cfg *dot.GlobalConfig) error {
	// check --basepath flag and update node configuration
	if basepath := ctx.String(BasePathFlag.Name); basepath != "" {
		cfg.BasePath = basepath
	}

	// check if cfg.BasePath has been set, if not set to default
	if cfg.BasePath == "" {
		cfg.BasePath = DefaultCfg().Global.BasePath
	}

	// check --log flag
	logLevel, err := parseLogLevelString(ctx.String(LogFlag.Name))
	if err == nil {
		cfg.LogLvl = logLevel
	}

	// check --publish-metrics flag and update node configuration
	if publish := ctx.Bool(PublishMetricsFlag.Name); publish {
		cfg.PublishMetrics = true
	}

	// check --metrics-port flag and update node configuration
	if port := ctx.Uint(MetricsPortFlag.Name); port != 0 {
		cfg.MetricsPort = uint32(port)
	}

	// check --no-telemetry flag and update node configuration
	if noTelemetry := ctx.Bool(NoTelemetryFlag.Name); noTelemetry {
		cfg.NoTelemetry = true
	}

	// check --telemetry-url flag and update node configuration
	if urls := ctx.StringSlice(TelemetryURLFlag.Name); len(urls) != 0 {
		telemetryEndpoints, err := parseTelemetryURLs(urls)
		if err != nil {
			return err
		}
		cfg.TelemetryURLs = telemetryEndpoints
	}

	return nil
}

// setDotGlobalConfigName sets the node name, the --name flag value is
// considered first, then the toml configuration, then a random name
func setDotGlobalConfigName(ctx *cli.Context, tomlCfg *ctoml.Config, cfg *dot.GlobalConfig) {
	if name := ctx.String(NameFlag.Name); name != "" {
		cfg.Name = name
		return
	}

	if tomlCfg.Global.Name != "" {
		cfg.Name = tomlCfg.Global.Name
		return
	}

	cfg.Name = dot.RandomNodeName()
}

// parseTelemetryURLs converts 'URL VERBOSITY' formatted values into telemetry endpoints
func parseTelemetryURLs(values []string) ([]telemetry.TelemetryEndpoint, error) {
	var telemetryEndpoints []telemetry.TelemetryEndpoint
	for _, telemetryURL := range values {
		splits := strings.Split(telemetryURL, " ")
		if len(splits) != 2 {
			return nil, fmt.Errorf("%s must be in the format 'URL VERBOSITY'", TelemetryURLFlag.Name)
		}

		verbosity, err := strconv.Atoi(splits[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse verbosity from %s: %w", TelemetryURLFlag.Name, err)
		}

		telemetryEndpoints = append(telemetryEndpoints, telemetry.TelemetryEndpoint{
			Endpoint:  splits[0],
			Verbosity: verbosity,
		})
	}

	return telemetryEndpoints, nil
}

// setDotWatcherConfig sets dot.WatcherConfig using flag values from the cli context
func setDotWatcherConfig(ctx *cli.Context, tomlCfg ctoml.WatcherConfig, cfg *dot.WatcherConfig) {
	if tomlCfg.Endpoint != "" {
		cfg.Endpoint = tomlCfg.Endpoint
	}

	if tomlCfg.PollInterval != 0 {
		cfg.PollInterval = time.Second * time.Duration(tomlCfg.PollInterval)
	}

	if tomlCfg.Full {
		cfg.Full = true
	}

	if tomlCfg.RevalidateTime != 0 {
		cfg.RevalidateTime = time.Second * time.Duration(tomlCfg.RevalidateTime)
	}

	if tomlCfg.RevalidateBlocks != 0 {
		cfg.RevalidateBlocks = tomlCfg.RevalidateBlocks
	}

	// check --endpoint flag and update node configuration
	if endpoint := ctx.String(EndpointFlag.Name); endpoint != "" {
		cfg.Endpoint = endpoint
	}

	// check --poll-interval flag and update node configuration
	if interval := ctx.Uint(PollIntervalFlag.Name); interval != 0 {
		cfg.PollInterval = time.Second * time.Duration(interval)
	}

	// check --full flag and update node configuration
	if full := ctx.Bool(FullFlag.Name); full {
		cfg.Full = true
	}

	// an explicit zero disables the revalidation trigger, so the revalidation
	// flags only apply when set
	if ctx.IsSet(RevalidateTimeFlag.Name) || ctx.GlobalIsSet(RevalidateTimeFlag.Name) {
		cfg.RevalidateTime = time.Second * time.Duration(ctx.Uint(RevalidateTimeFlag.Name))
	}

	if ctx.IsSet(RevalidateBlocksFlag.Name) || ctx.GlobalIsSet(RevalidateBlocksFlag.Name) {
		cfg.RevalidateBlocks = uint32(ctx.Uint(RevalidateBlocksFlag.Name))
	}

	logger.Debug(
		"watcher configuration",
		"endpoint", cfg.Endpoint,
		"poll-interval", cfg.PollInterval,
		"full", cfg.Full,
		"revalidate-time", cfg.RevalidateTime,
		"revalidate-blocks", cfg.RevalidateBlocks,
	)
}

// setSystemInfoConfig sets the system configuration values from the cli application
func setSystemInfoConfig(ctx *cli.Context, cfg *dot.Config) {
	// load system information
	if ctx.App != nil {
		cfg.System.SystemName = ctx.App.Name
		cfg.System.SystemVersion = ctx.App.Version
	}
}

// dotConfigToToml converts dot configuration to toml configuration
func dotConfigToToml(dcfg *dot.Config) *ctoml.Config {
	cfg := &ctoml.Config{}

	cfg.Global = ctoml.GlobalConfig{
		Name:           dcfg.Global.Name,
		ID:             dcfg.Global.ID,
		BasePath:       dcfg.Global.BasePath,
		LogLvl:         dcfg.Global.LogLvl.String(),
		PublishMetrics: dcfg.Global.PublishMetrics,
		MetricsPort:    dcfg.Global.MetricsPort,
		NoTelemetry:    dcfg.Global.NoTelemetry,
	}

	for _, endpoint := range dcfg.Global.TelemetryURLs {
		cfg.Global.TelemetryURLs = append(cfg.Global.TelemetryURLs,
			fmt.Sprintf("%s %d", endpoint.Endpoint, endpoint.Verbosity))
	}

	cfg.Log = ctoml.LogConfig{
		StateLvl:       dcfg.Log.StateLvl.String(),
		WatcherLvl:     dcfg.Log.WatcherLvl.String(),
		MaintenanceLvl: dcfg.Log.MaintenanceLvl.String(),
	}

	cfg.Watcher = ctoml.WatcherConfig{
		Endpoint:         dcfg.Watcher.Endpoint,
		PollInterval:     uint32(dcfg.Watcher.PollInterval / time.Second),
		Full:             dcfg.Watcher.Full,
		RevalidateTime:   uint32(dcfg.Watcher.RevalidateTime / time.Second),
		RevalidateBlocks: dcfg.Watcher.RevalidateBlocks,
	}

	return cfg
}
