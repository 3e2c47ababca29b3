// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package watcher

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
	"github.com/ChainSafe/txpool/lib/services"

	log "github.com/ChainSafe/log15"
)

var (
	_      services.Service = &Service{}
	logger log.Logger       = log.New("pkg", "watcher")
)

var (
	// ErrNilFetcher is returned when the service config has no fetcher
	ErrNilFetcher = errors.New("cannot have nil fetcher")
	// ErrNilBlockState is returned when the service config has no block state
	ErrNilBlockState = errors.New("cannot have nil block state")
	// ErrNilTransactionQueue is returned when the service config has no transaction queue
	ErrNilTransactionQueue = errors.New("cannot have nil transaction queue")
)

// DefaultPollInterval is the poll interval used when none is configured
const DefaultPollInterval = 6 * time.Second

// maxBackfill bounds how far behind the remote best block the watcher walks
// to find a locally known ancestor
const maxBackfill = 128

var errNoKnownAncestor = errors.New("no locally known ancestor within the backfill limit")

// Service polls the remote node for its best block and its pending
// transactions and imports both into the local state. Imported blocks are
// announced on the block state's imported channel.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc
	sync.Mutex

	fetcher      Fetcher
	blockState   BlockState
	queue        TransactionQueue
	pollInterval time.Duration
}

// Config holds the configuration for the watcher Service
type Config struct {
	LogLvl log.Lvl

	Fetcher          Fetcher
	BlockState       BlockState
	TransactionQueue TransactionQueue
	PollInterval     time.Duration
}

// NewService returns a new watcher service following the remote node behind
// the given fetcher
func NewService(cfg *Config) (*Service, error) {
	if cfg.Fetcher == nil {
		return nil, ErrNilFetcher
	}

	if cfg.BlockState == nil {
		return nil, ErrNilBlockState
	}

	if cfg.TransactionQueue == nil {
		return nil, ErrNilTransactionQueue
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	h := log.StreamHandler(os.Stdout, log.TerminalFormat())
	h = log.CallerFileHandler(h)
	logger.SetHandler(log.LvlFilterHandler(cfg.LogLvl, h))

	ctx, cancel := context.WithCancel(context.Background())
	srv := &Service{
		ctx:          ctx,
		cancel:       cancel,
		fetcher:      cfg.Fetcher,
		blockState:   cfg.BlockState,
		queue:        cfg.TransactionQueue,
		pollInterval: cfg.PollInterval,
	}

	return srv, nil
}

// Start begins polling the remote node
func (s *Service) Start() error {
	go s.pollLoop()
	return nil
}

// Stop stops polling the remote node
func (s *Service) Stop() error {
	s.Lock()
	defer s.Unlock()

	s.cancel()
	return nil
}

func (s *Service) pollLoop() {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	s.poll()

	for {
		select {
		case <-ticker.C:
			s.poll()
		case <-s.ctx.Done():
			return
		}
	}
}

// poll imports the blocks between the local and the remote best block, then
// mirrors the remote pending transactions into the local queue. The pending
// set changes between blocks, so it is refreshed on every round.
func (s *Service) poll() {
	header, err := s.fetcher.GetHeader(nil)
	if err != nil {
		logger.Warn("failed to fetch best header", "error", err)
		return
	}

	hash := header.Hash()
	has, err := s.blockState.HasHeader(hash)
	if err != nil {
		logger.Warn("failed to check local header", "block", hash, "error", err)
		return
	}

	if !has {
		if err = s.importChain(hash); err != nil {
			logger.Warn("failed to import remote chain", "best", hash, "error", err)
		}
	}

	s.importPending()
}

// importChain walks the remote chain backwards from the given hash until a
// locally known ancestor, then imports the missing blocks oldest first so
// that every parent is present when its child is added.
func (s *Service) importChain(hash common.Hash) error {
	blocks, err := s.missingBlocks(hash)
	if err != nil {
		return err
	}

	for _, block := range blocks {
		if err = s.blockState.AddBlock(block); err != nil {
			return err
		}

		logger.Debug("imported block", "number", block.Header.Number, "hash", block.Header.Hash())
	}

	return nil
}

func (s *Service) missingBlocks(hash common.Hash) ([]*types.Block, error) {
	var blocks []*types.Block

	for len(blocks) < maxBackfill {
		block, err := s.fetcher.GetBlock(&hash)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)

		has, err := s.blockState.HasHeader(block.Header.ParentHash)
		if err != nil {
			return nil, err
		}
		if has {
			// reverse to oldest first
			for i, j := 0, len(blocks)-1; i < j; i, j = i+1, j-1 {
				blocks[i], blocks[j] = blocks[j], blocks[i]
			}
			return blocks, nil
		}

		hash = block.Header.ParentHash
	}

	return nil, errNoKnownAncestor
}

// importPending submits the remote node's pending transactions to the local
// queue, skipping those already tracked
func (s *Service) importPending() {
	exts, err := s.fetcher.PendingExtrinsics()
	if err != nil {
		logger.Warn("failed to fetch pending extrinsics", "error", err)
		return
	}

	var fresh []types.Extrinsic
	for _, ext := range exts {
		if !s.queue.Exists(ext) {
			fresh = append(fresh, ext)
		}
	}

	if len(fresh) == 0 {
		return
	}

	bestID := types.NewBlockIDFromHash(s.blockState.BestBlockHash())
	if err = s.queue.SubmitAt(s.ctx, bestID, fresh, false); err != nil {
		logger.Warn("failed to submit pending extrinsics", "at", bestID, "error", err)
	}
}
