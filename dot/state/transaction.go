// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"context"
	"errors"
	"sync"

	"github.com/ChainSafe/txpool/dot/telemetry"
	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
	"github.com/ChainSafe/txpool/lib/transaction"
)

const (
	readyQueueTransactionsMetrics = "txpool/ready/queue/transaction/metrics"
	futurePoolTransactionsMetrics = "txpool/future/pool/transaction/metrics"
	blocktreeLeavesMetrics        = "txpool/blocktree_leaves/metrics"
)

// TransactionState represents the queue of transactions
type TransactionState struct {
	queue *transaction.PriorityQueue
	pool  *transaction.Pool

	validator Validator
	telemetry Telemetry

	// notifierChannels are used to notify transaction status. It maps a channel to
	// hex string of the extrinsic it is supposed to notify about.
	notifierChannels map[chan transaction.Status]string
	notifierLock     sync.RWMutex
}

// NewTransactionState returns a new TransactionState
func NewTransactionState(validator Validator, telemetry Telemetry) *TransactionState {
	return &TransactionState{
		queue:            transaction.NewPriorityQueue(),
		pool:             transaction.NewPool(),
		validator:        validator,
		telemetry:        telemetry,
		notifierChannels: make(map[chan transaction.Status]string),
	}
}

// SubmitAt validates each extrinsic against chain state at the given block and
// adds the valid ones to the ready queue, or to the pool when their validity
// requirements are not met yet. Invalid extrinsics are dropped.
// retried marks re-insertions of transactions that were already in the queue
// once: duplicates are then tolerated and the status notification is
// Retracted instead of Ready.
func (s *TransactionState) SubmitAt(ctx context.Context, id types.BlockID,
	exts []types.Extrinsic, retried bool) error {
	for _, ext := range exts {
		if err := ctx.Err(); err != nil {
			return err
		}

		validity, err := s.validator.ValidateTransaction(id, ext)
		if err != nil {
			logger.Trace("dropping invalid transaction", "at", id, "hash", ext.Hash(), "error", err)
			continue
		}

		vt := transaction.NewValidTransaction(ext, validity)

		if retried {
			s.notifyStatus(ext, transaction.Retracted)
		}

		if len(validity.Requires) > 0 {
			s.pool.Insert(vt)
			if !retried {
				s.notifyStatus(ext, transaction.Future)
			}
			continue
		}

		if _, err = s.queue.Push(vt); err != nil {
			if errors.Is(err, transaction.ErrTransactionExists) {
				logger.Trace("transaction already in queue", "hash", ext.Hash())
				continue
			}
			return err
		}

		if !retried {
			s.notifyStatus(ext, transaction.Ready)
		}
	}

	s.reportImported()
	return nil
}

// Prune removes every extrinsic included in the given block from the ready
// queue and the pool, then re-checks the remaining pool transactions at that
// block and moves the ones whose requirements are now met to the ready queue.
func (s *TransactionState) Prune(ctx context.Context, id, parent types.BlockID,
	exts []types.Extrinsic) error {
	logger.Trace("pruning included transactions", "at", id, "parent", parent, "count", len(exts))

	for _, ext := range exts {
		s.notifyStatus(ext, transaction.InBlock)
		s.RemoveExtrinsic(ext)
	}

	for _, vt := range s.pool.Transactions() {
		if err := ctx.Err(); err != nil {
			return err
		}

		validity, err := s.validator.ValidateTransaction(id, vt.Extrinsic)
		if err != nil {
			s.pool.Remove(vt.Extrinsic.Hash())
			s.notifyStatus(vt.Extrinsic, transaction.Invalid)
			continue
		}

		if len(validity.Requires) > 0 {
			continue
		}

		vt.Validity = validity
		hash, err := s.queue.Push(vt)
		if err != nil && errors.Is(err, transaction.ErrTransactionExists) {
			// transaction is already in queue, remove it from the pool
			s.pool.Remove(vt.Extrinsic.Hash())
			continue
		} else if err != nil {
			return err
		}

		s.pool.Remove(vt.Extrinsic.Hash())
		s.notifyStatus(vt.Extrinsic, transaction.Ready)
		logger.Trace("moved transaction to queue", "hash", hash)
	}

	s.reportImported()
	return nil
}

// PruneKnown removes the transactions with the given extrinsic hashes from
// the ready queue and the pool. No validation is performed.
func (s *TransactionState) PruneKnown(id types.BlockID, hashes []common.Hash) error {
	logger.Trace("pruning known transactions", "at", id, "count", len(hashes))

	for _, hash := range hashes {
		s.queue.RemoveHash(hash)
		s.pool.Remove(hash)
	}

	s.reportImported()
	return nil
}

// RevalidateReady re-validates every transaction in the ready queue against
// chain state at the given block. Now-invalid transactions are removed,
// still-valid ones get their validity refreshed.
func (s *TransactionState) RevalidateReady(ctx context.Context, id types.BlockID) error {
	for _, vt := range s.queue.Pending() {
		if err := ctx.Err(); err != nil {
			return err
		}

		validity, err := s.validator.ValidateTransaction(id, vt.Extrinsic)
		if err != nil {
			s.queue.RemoveExtrinsic(vt.Extrinsic)
			s.notifyStatus(vt.Extrinsic, transaction.Invalid)
			logger.Trace("dropped invalid ready transaction", "hash", vt.Extrinsic.Hash(), "error", err)
			continue
		}

		if validity.Priority != vt.Validity.Priority {
			// priority changed, remove and re-insert to keep the queue ordered
			s.queue.RemoveExtrinsic(vt.Extrinsic)
			vt.Validity = validity
			if _, err := s.queue.Push(vt); err != nil && !errors.Is(err, transaction.ErrTransactionExists) {
				return err
			}
			continue
		}

		vt.Validity = validity
	}

	return nil
}

// Status returns the current number of ready and future transactions
func (s *TransactionState) Status() transaction.PoolStatus {
	return transaction.PoolStatus{
		Ready:  uint(s.queue.Len()),
		Future: uint(s.pool.Len()),
	}
}

// HashOf returns the hash of the given extrinsic
func (s *TransactionState) HashOf(ext types.Extrinsic) common.Hash {
	return ext.Hash()
}

// Push pushes a transaction to the queue, ordered by priority
func (s *TransactionState) Push(vt *transaction.ValidTransaction) (common.Hash, error) {
	s.notifyStatus(vt.Extrinsic, transaction.Ready)
	return s.queue.Push(vt)
}

// Pop removes and returns the head of the queue
func (s *TransactionState) Pop() *transaction.ValidTransaction {
	return s.queue.Pop()
}

// Peek returns the head of the queue without removing it
func (s *TransactionState) Peek() *transaction.ValidTransaction {
	return s.queue.Peek()
}

// Pending returns the current transactions in the queue and pool
func (s *TransactionState) Pending() []*transaction.ValidTransaction {
	return append(s.queue.Pending(), s.pool.Transactions()...)
}

// PendingInPool returns the current transactions in the pool
func (s *TransactionState) PendingInPool() []*transaction.ValidTransaction {
	return s.pool.Transactions()
}

// Exists returns true if the given extrinsic is in the queue or the pool
func (s *TransactionState) Exists(ext types.Extrinsic) bool {
	hash := ext.Hash()
	return s.queue.Exists(hash) || s.pool.Get(hash) != nil
}

// RemoveExtrinsic removes an extrinsic from the queue and pool
func (s *TransactionState) RemoveExtrinsic(ext types.Extrinsic) {
	s.pool.Remove(ext.Hash())
	s.queue.RemoveExtrinsic(ext)
}

// RemoveExtrinsicFromPool removes an extrinsic from the pool
func (s *TransactionState) RemoveExtrinsicFromPool(ext types.Extrinsic) {
	s.pool.Remove(ext.Hash())
}

// AddToPool adds a transaction to the pool
func (s *TransactionState) AddToPool(vt *transaction.ValidTransaction) common.Hash {
	s.notifyStatus(vt.Extrinsic, transaction.Future)

	hash := s.pool.Insert(vt)
	s.reportImported()
	return hash
}

func (s *TransactionState) reportImported() {
	s.telemetry.SendMessage(telemetry.NewTxpoolImportTM(
		uint(s.queue.Len()), uint(s.pool.Len())))
}

// GetStatusNotifierChannel creates and returns a status notifier channel.
func (s *TransactionState) GetStatusNotifierChannel(ext types.Extrinsic) chan transaction.Status {
	s.notifierLock.Lock()
	defer s.notifierLock.Unlock()

	ch := make(chan transaction.Status, defaultBufferSize)
	s.notifierChannels[ch] = ext.String()
	return ch
}

// FreeStatusNotifierChannel deletes given status notifier channel from our map.
func (s *TransactionState) FreeStatusNotifierChannel(ch chan transaction.Status) {
	s.notifierLock.Lock()
	defer s.notifierLock.Unlock()

	delete(s.notifierChannels, ch)
}

func (s *TransactionState) notifyStatus(ext types.Extrinsic, status transaction.Status) {
	s.notifierLock.Lock()
	defer s.notifierLock.Unlock()

	if len(s.notifierChannels) == 0 {
		return
	}

	var wg sync.WaitGroup
	for ch, extrinsicStrWithCh := range s.notifierChannels {
		if extrinsicStrWithCh != ext.String() {
			continue
		}
		wg.Add(1)
		go func(ch chan transaction.Status) {
			defer wg.Done()

			select {
			case ch <- status:
			default:
			}
		}(ch)
	}
	wg.Wait()
}

// CollectGauge exports metrics related to the ready queue and the pool
func (s *TransactionState) CollectGauge() map[string]int64 {
	return map[string]int64{
		readyQueueTransactionsMetrics: int64(s.queue.Len()),
		futurePoolTransactionsMetrics: int64(s.pool.Len()),
	}
}
