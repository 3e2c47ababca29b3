// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package maintenance

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
	"github.com/ChainSafe/txpool/lib/services"

	log "github.com/ChainSafe/log15"
)

var (
	_      services.Service = &Service{}
	logger log.Logger       = log.New("pkg", "maintenance")
)

var (
	// ErrNilBlockState is returned when the service config has no block state
	ErrNilBlockState = errors.New("cannot have nil block state")
	// ErrNilTransactionQueue is returned when the service config has no transaction queue
	ErrNilTransactionQueue = errors.New("cannot have nil transaction queue")
	// ErrNilMaintainer is returned when the service config has no maintainer
	ErrNilMaintainer = errors.New("cannot have nil maintainer")
)

// Service watches imported blocks and runs the configured maintainer against
// the transaction queue for every new best block
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc
	sync.Mutex

	blockState ServiceBlockState
	queue      TransactionQueue
	maintainer Maintainer

	imported chan *types.Block // for asynchronous block handling
	bestHash common.Hash       // chain head as of the last handled block
}

// Config holds the configuration for the maintenance Service
type Config struct {
	LogLvl log.Lvl

	BlockState       ServiceBlockState
	TransactionQueue TransactionQueue
	Maintainer       Maintainer
}

// NewService returns a new maintenance service watching the given block state
func NewService(cfg *Config) (*Service, error) {
	if cfg.BlockState == nil {
		return nil, ErrNilBlockState
	}

	if cfg.TransactionQueue == nil {
		return nil, ErrNilTransactionQueue
	}

	if cfg.Maintainer == nil {
		return nil, ErrNilMaintainer
	}

	h := log.StreamHandler(os.Stdout, log.TerminalFormat())
	h = log.CallerFileHandler(h)
	logger.SetHandler(log.LvlFilterHandler(cfg.LogLvl, h))

	ctx, cancel := context.WithCancel(context.Background())
	srv := &Service{
		ctx:        ctx,
		cancel:     cancel,
		blockState: cfg.BlockState,
		queue:      cfg.TransactionQueue,
		maintainer: cfg.Maintainer,
	}

	return srv, nil
}

// Start begins watching imported blocks
func (s *Service) Start() error {
	s.imported = s.blockState.GetImportedBlockNotifierChannel()
	s.bestHash = s.blockState.BestBlockHash()

	go s.handleBlocksAsync()
	return nil
}

// Stop stops watching imported blocks
func (s *Service) Stop() error {
	s.Lock()
	defer s.Unlock()

	s.cancel()
	s.blockState.FreeImportedBlockNotifierChannel(s.imported)
	return nil
}

// handleBlocksAsync runs the maintainer for each imported block; the
// maintenance does not need to complete before the next block can be
// imported.
func (s *Service) handleBlocksAsync() {
	for {
		select {
		case block := <-s.imported:
			if block == nil {
				continue
			}

			s.handleBlock(block)
		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Service) handleBlock(block *types.Block) {
	hash := block.Header.Hash()
	if s.blockState.BestBlockHash() != hash {
		logger.Trace("imported block is not the new best, skipping maintenance", "block", hash)
		return
	}

	prev := s.bestHash
	s.bestHash = hash

	retracted, err := s.retractedFrom(prev, hash)
	if err != nil {
		logger.Warn("failed to determine retracted blocks", "previous", prev, "block", hash, "error", err)
	}

	logger.Debug("maintaining transaction pool", "block", hash, "retracted", len(retracted))
	s.maintainer.Maintain(s.ctx, types.NewBlockIDFromHash(hash), retracted, s.queue)
}

// retractedFrom returns the hashes of the blocks no longer on the canonical
// chain after the chain head moved from prev to curr
func (s *Service) retractedFrom(prev, curr common.Hash) ([]common.Hash, error) {
	ancestor, err := s.blockState.HighestCommonAncestor(prev, curr)
	if err != nil {
		return nil, err
	}

	// if the highest common ancestor of the previous chain head and current chain
	// head is the previous chain head, then the current chain head is a descendant
	// of the previous and thus they are on the same chain
	if ancestor == prev {
		return nil, nil
	}

	subchain, err := s.blockState.SubChain(ancestor, prev)
	if err != nil {
		return nil, err
	}

	// subchain contains the ancestor as well so we need to remove it
	if len(subchain) > 0 {
		subchain = subchain[1:]
	}

	return subchain, nil
}
