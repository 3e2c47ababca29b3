// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

// Config is a collection of configurations throughout the system
type Config struct {
	Global  GlobalConfig  `toml:"global,omitempty"`
	Log     LogConfig     `toml:"log,omitempty"`
	Watcher WatcherConfig `toml:"watcher,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	Name           string   `toml:"name,omitempty"`
	ID             string   `toml:"id,omitempty"`
	BasePath       string   `toml:"basepath,omitempty"`
	LogLvl         string   `toml:"log,omitempty"`
	PublishMetrics bool     `toml:"publish-metrics,omitempty"`
	MetricsPort    uint32   `toml:"metrics-port,omitempty"`
	NoTelemetry    bool     `toml:"no-telemetry,omitempty"`
	TelemetryURLs  []string `toml:"telemetry-urls,omitempty"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	StateLvl       string `toml:"state,omitempty"`
	WatcherLvl     string `toml:"watcher,omitempty"`
	MaintenanceLvl string `toml:"maintenance,omitempty"`
}

// WatcherConfig is to marshal/unmarshal toml watcher config vars
type WatcherConfig struct {
	Endpoint         string `toml:"endpoint,omitempty"`
	PollInterval     uint32 `toml:"poll-interval,omitempty"`
	Full             bool   `toml:"full,omitempty"`
	RevalidateTime   uint32 `toml:"revalidate-time,omitempty"`
	RevalidateBlocks uint32 `toml:"revalidate-blocks,omitempty"`
}
