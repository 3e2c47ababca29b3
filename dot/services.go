// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"time"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/txpool/dot/maintenance"
	"github.com/ChainSafe/txpool/dot/metrics"
	"github.com/ChainSafe/txpool/dot/state"
	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/dot/watcher"
	"github.com/ChainSafe/txpool/lib/fetcher"
	"github.com/ChainSafe/txpool/lib/transaction"
	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
)

// acceptAllValidator admits every transaction with a default validity. The
// remote node already validated everything it reports as pending, so the
// local queue does not second-guess it.
type acceptAllValidator struct{}

func (acceptAllValidator) ValidateTransaction(_ types.BlockID, _ types.Extrinsic) (*transaction.Validity, error) {
	return transaction.NewValidity(0, nil, nil, 0, true), nil
}

// createFetcher connects to the remote node the pool follows
func createFetcher(cfg *Config) (*fetcher.Fetcher, error) {
	logger.Info("connecting to remote node...", "endpoint", cfg.Watcher.Endpoint)

	api, err := gsrpc.NewSubstrateAPI(cfg.Watcher.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to remote node: %w", err)
	}

	return fetcher.NewFetcher(api.Client), nil
}

// createBlockState roots the local chain view at the remote best block. The
// watcher only ever extends from there, older blocks are of no interest to
// the pool.
func createBlockState(db chaindb.Database, f *fetcher.Fetcher,
	telemetryMailer state.Telemetry) (*state.BlockState, error) {
	root, err := f.GetHeader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remote best header: %w", err)
	}

	logger.Info("rooting local chain view at remote best block",
		"number", root.Number, "hash", root.Hash())

	blockState, err := state.NewBlockStateFromGenesis(db, root, telemetryMailer)
	if err != nil {
		return nil, fmt.Errorf("failed to create block state: %w", err)
	}

	return blockState, nil
}

// createTransactionState creates the local transaction queue
func createTransactionState(telemetryMailer state.Telemetry) *state.TransactionState {
	logger.Debug("creating transaction state...")
	return state.NewTransactionState(acceptAllValidator{}, telemetryMailer)
}

// createWatcherService creates the service mirroring the remote chain and
// pending transactions into the local state
func createWatcherService(cfg *Config, f *fetcher.Fetcher, blockState *state.BlockState,
	txState *state.TransactionState) (*watcher.Service, error) {
	logger.Debug("creating watcher service...")

	srvc, err := watcher.NewService(&watcher.Config{
		LogLvl:           cfg.Log.WatcherLvl,
		Fetcher:          f,
		BlockState:       blockState,
		TransactionQueue: txState,
		PollInterval:     cfg.Watcher.PollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher service: %w", err)
	}

	return srvc, nil
}

// createMaintenanceService creates the service keeping the transaction queue
// in sync with imported blocks
func createMaintenanceService(cfg *Config, f *fetcher.Fetcher, blockState *state.BlockState,
	txState *state.TransactionState) (*maintenance.Service, error) {
	logger.Debug("creating maintenance service...")

	var maintainer maintenance.Maintainer
	if cfg.Watcher.Full {
		maintainer = maintenance.NewFullMaintainer(blockState)
	} else {
		var timePeriod *time.Duration
		if cfg.Watcher.RevalidateTime > 0 {
			t := cfg.Watcher.RevalidateTime
			timePeriod = &t
		}

		var blockPeriod *uint64
		if cfg.Watcher.RevalidateBlocks > 0 {
			b := uint64(cfg.Watcher.RevalidateBlocks)
			blockPeriod = &b
		}

		maintainer = maintenance.NewLightMaintainer(blockState, f, timePeriod, blockPeriod)
	}

	srvc, err := maintenance.NewService(&maintenance.Config{
		LogLvl:           cfg.Log.MaintenanceLvl,
		BlockState:       blockState,
		TransactionQueue: txState,
		Maintainer:       maintainer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create maintenance service: %w", err)
	}

	return srvc, nil
}

// createMetricsService polls the gauge sources and serves the metrics
// endpoints
func createMetricsService(cfg *Config, blockState *state.BlockState,
	txState *state.TransactionState) *metrics.Collector {
	c := metrics.NewCollector()
	c.AddGauge(blockState)
	c.AddGauge(txState)

	address := fmt.Sprintf(":%d", cfg.Global.MetricsPort)
	logger.Info("Enabling stand-alone metrics HTTP endpoint", "address", address)
	metrics.PublishMetrics(address)

	return c
}
