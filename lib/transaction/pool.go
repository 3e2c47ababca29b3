package transaction

import (
	"sync"

	"github.com/ChainSafe/txpool/lib/common"
)

// Pool represents the transaction pool
type Pool struct {
	transactions map[common.Hash]*ValidTransaction
	mu           sync.RWMutex
}

// NewPool returns a new empty Pool
func NewPool() *Pool {
	return &Pool{
		transactions: make(map[common.Hash]*ValidTransaction),
	}
}

// Transactions returns all the transactions in the pool
func (p *Pool) Transactions() []*ValidTransaction {
	p.mu.RLock()
	defer p.mu.RUnlock()

	txs := make([]*ValidTransaction, len(p.transactions))
	i := 0

	for _, tx := range p.transactions {
		txs[i] = tx
		i++
	}
	return txs
}

// Insert inserts a transaction into the pool
func (p *Pool) Insert(tx *ValidTransaction) common.Hash {
	hash := tx.Extrinsic.Hash()
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transactions[hash] = tx
	futureTxsGauge.Set(float64(len(p.transactions)))
	return hash
}

// Remove removes a transaction from the pool
func (p *Pool) Remove(hash common.Hash) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.transactions, hash)
	futureTxsGauge.Set(float64(len(p.transactions)))
}

// Get returns the transaction with the given hash, or nil if it is not in the pool
func (p *Pool) Get(hash common.Hash) *ValidTransaction {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.transactions[hash]
}

// Len returns the number of transactions in the pool
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.transactions)
}
