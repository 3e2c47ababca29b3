// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/ChainSafe/chaindb"
	log "github.com/ChainSafe/log15"
	"github.com/ChainSafe/txpool/dot/telemetry"
	"github.com/ChainSafe/txpool/lib/services"
	"github.com/ChainSafe/txpool/lib/utils"
)

var logger = log.New("pkg", "dot")

// Node is a container for all the components of the transaction pool node
type Node struct {
	Name     string
	Services *services.ServiceRegistry // registry of all node services
	db       chaindb.Database
	wg       sync.WaitGroup
	started  chan struct{}
}

// setupLogger sets up the node logger
func setupLogger(cfg *Config) {
	h := log.StreamHandler(os.Stdout, log.TerminalFormat())
	h = log.CallerFileHandler(h)
	logger.SetHandler(log.LvlFilterHandler(cfg.Global.LogLvl, h))
}

// NewNode creates a node from the provided node configuration
func NewNode(cfg *Config) (*Node, error) {
	setupLogger(cfg)

	logger.Info(
		"🕸️ initialising node services...",
		"name", cfg.Global.Name,
		"id", cfg.Global.ID,
		"basepath", cfg.Global.BasePath,
		"endpoint", cfg.Watcher.Endpoint,
	)

	var nodeSrvcs []services.Service

	conns := make([]*telemetry.TelemetryEndpoint, len(cfg.Global.TelemetryURLs))
	for i := range cfg.Global.TelemetryURLs {
		conns[i] = &cfg.Global.TelemetryURLs[i]
	}

	telemetryMailer, err := telemetry.BootstrapMailer(context.Background(),
		conns, !cfg.Global.NoTelemetry, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to bootstrap telemetry: %w", err)
	}

	f, err := createFetcher(cfg)
	if err != nil {
		return nil, err
	}

	db, err := utils.SetupDatabase(utils.ExpandDir(cfg.Global.BasePath), false)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	blockState, err := createBlockState(db, f, telemetryMailer)
	if err != nil {
		return nil, err
	}

	txState := createTransactionState(telemetryMailer)

	maintenanceSrvc, err := createMaintenanceService(cfg, f, blockState, txState)
	if err != nil {
		return nil, err
	}
	nodeSrvcs = append(nodeSrvcs, maintenanceSrvc)

	watcherSrvc, err := createWatcherService(cfg, f, blockState, txState)
	if err != nil {
		return nil, err
	}
	nodeSrvcs = append(nodeSrvcs, watcherSrvc)

	if cfg.Global.PublishMetrics {
		c := createMetricsService(cfg, blockState, txState)
		nodeSrvcs = append(nodeSrvcs, c)
	}

	node := &Node{
		Name:     cfg.Global.Name,
		Services: services.NewServiceRegistry(),
		db:       db,
		started:  make(chan struct{}),
	}

	for _, srvc := range nodeSrvcs {
		node.Services.RegisterService(srvc)
	}

	if cfg.Global.NoTelemetry {
		return node, nil
	}

	genesisNumber := uint64(0)
	genesisHash, err := f.GetBlockHash(&genesisNumber)
	if err != nil {
		logger.Debug("problem fetching genesis hash for telemetry", "error", err)
		return node, nil
	}

	chain, err := f.SystemChain()
	if err != nil {
		logger.Debug("problem fetching chain name for telemetry", "error", err)
		return node, nil
	}

	telemetryMailer.SendMessage(telemetry.NewSystemConnectedTM(
		false,
		chain,
		&genesisHash,
		cfg.System.SystemName,
		cfg.Global.Name,
		cfg.Global.ID,
		strconv.FormatInt(time.Now().UnixNano(), 10),
		cfg.System.SystemVersion))

	return node, nil
}

// Start starts all node services
func (n *Node) Start() error {
	logger.Info("🕸️ starting node services...")

	n.Services.StartAll()

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		<-sigc
		logger.Info("signal interrupt, shutting down...")
		n.Stop()
		os.Exit(130)
	}()

	n.wg.Add(1)
	close(n.started)
	n.wg.Wait()
	return nil
}

// Stop stops all node services and closes the database
func (n *Node) Stop() {
	n.Services.StopAll()

	if n.db != nil {
		if err := n.db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}

	n.wg.Done()
}
