// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package transaction

import (
	"container/heap"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/common"
)

// ErrTransactionExists is returned when trying to add a transaction to the queue that already exists
var ErrTransactionExists = errors.New("transaction is already in queue")

const defaultPollInterval = 10 * time.Millisecond

type node struct {
	data     *ValidTransaction
	priority uint64
	order    uint64
	index    int
}

type priorityQueue []*node

func (pq priorityQueue) Len() int {
	return len(pq)
}

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority == pq[j].priority {
		return pq[i].order < pq[j].order
	}

	return pq[i].priority > pq[j].priority
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*node)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// PriorityQueue is a thread safe priority queue for transactions. Transactions
// with a higher priority are popped first; among equal priorities the
// transaction pushed first is popped first.
type PriorityQueue struct {
	pq           priorityQueue
	txs          map[common.Hash]*node
	currOrder    uint64
	pollInterval time.Duration
	sync.Mutex
}

// NewPriorityQueue creates new instance of PriorityQueue
func NewPriorityQueue() *PriorityQueue {
	spq := &PriorityQueue{
		txs:          make(map[common.Hash]*node),
		pq:           make(priorityQueue, 0),
		pollInterval: defaultPollInterval,
	}

	heap.Init(&spq.pq)
	return spq
}

// Push inserts a valid transaction into the queue
func (spq *PriorityQueue) Push(txn *ValidTransaction) (common.Hash, error) {
	spq.Lock()
	defer spq.Unlock()

	hash := txn.Extrinsic.Hash()
	if _, has := spq.txs[hash]; has {
		return common.EmptyHash, ErrTransactionExists
	}

	item := &node{
		data:     txn,
		priority: txn.Validity.Priority,
		order:    spq.currOrder,
	}
	spq.currOrder++

	heap.Push(&spq.pq, item)
	spq.txs[hash] = item
	readyTxsGauge.Set(float64(len(spq.txs)))
	return hash, nil
}

// Pop removes the transaction with the highest priority from the queue and returns it.
// If the queue is empty, it returns nil.
func (spq *PriorityQueue) Pop() *ValidTransaction {
	spq.Lock()
	defer spq.Unlock()

	if spq.pq.Len() == 0 {
		return nil
	}

	item := heap.Pop(&spq.pq).(*node)
	delete(spq.txs, item.data.Extrinsic.Hash())
	readyTxsGauge.Set(float64(len(spq.txs)))
	return item.data
}

// PopWithTimer returns the next valid transaction from the queue.
// When the timer expires, it returns nil.
func (spq *PriorityQueue) PopWithTimer(timer *time.Timer) (transaction *ValidTransaction) {
	transaction = spq.Pop()
	if transaction != nil {
		return transaction
	}

	pollTicker := time.NewTicker(spq.pollInterval)
	defer pollTicker.Stop()

	for {
		select {
		case <-timer.C:
			return nil
		case <-pollTicker.C:
			transaction = spq.Pop()
			if transaction != nil {
				return transaction
			}
		}
	}
}

// Peek returns the transaction with the highest priority without removing it
// from the queue, or nil if the queue is empty
func (spq *PriorityQueue) Peek() *ValidTransaction {
	spq.Lock()
	defer spq.Unlock()

	if spq.pq.Len() == 0 {
		return nil
	}

	return spq.pq[0].data
}

// Pending returns all the transactions currently in the queue in priority order
func (spq *PriorityQueue) Pending() []*ValidTransaction {
	spq.Lock()
	defer spq.Unlock()

	nodes := make([]*node, len(spq.pq))
	copy(nodes, spq.pq)
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].priority == nodes[j].priority {
			return nodes[i].order < nodes[j].order
		}

		return nodes[i].priority > nodes[j].priority
	})

	pending := make([]*ValidTransaction, len(nodes))
	for i, n := range nodes {
		pending[i] = n.data
	}

	return pending
}

// RemoveExtrinsic removes an extrinsic from the queue, if it is present
func (spq *PriorityQueue) RemoveExtrinsic(ext types.Extrinsic) {
	spq.RemoveHash(ext.Hash())
}

// RemoveHash removes the transaction with the given extrinsic hash from the
// queue, if it is present
func (spq *PriorityQueue) RemoveHash(hash common.Hash) {
	spq.Lock()
	defer spq.Unlock()

	item, has := spq.txs[hash]
	if !has {
		return
	}

	heap.Remove(&spq.pq, item.index)
	delete(spq.txs, hash)
	readyTxsGauge.Set(float64(len(spq.txs)))
}

// Exists returns true if an extrinsic with the given hash is in the queue
func (spq *PriorityQueue) Exists(hash common.Hash) bool {
	spq.Lock()
	defer spq.Unlock()

	_, has := spq.txs[hash]
	return has
}

// Len returns the number of transactions in the queue
func (spq *PriorityQueue) Len() int {
	spq.Lock()
	defer spq.Unlock()

	return len(spq.txs)
}
