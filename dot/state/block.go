// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/chaindb"
	log "github.com/ChainSafe/log15"
	"github.com/ChainSafe/txpool/dot/telemetry"
	"github.com/ChainSafe/txpool/dot/types"
	"github.com/ChainSafe/txpool/lib/blocktree"
	"github.com/ChainSafe/txpool/lib/common"
)

var logger log.Logger = log.New("pkg", "state")

var blockPrefix = "block"

var (
	// Data prefixes
	headerPrefix      = []byte("hdr") // headerPrefix + hash -> header
	blockBodyPrefix   = []byte("blb") // blockBodyPrefix + hash -> body
	headerHashPrefix  = []byte("hsh") // headerHashPrefix + encodedBlockNum -> hash
	arrivalTimePrefix = []byte("arr") // arrivalTimePrefix + hash -> arrivalTime
)

// encodeBlockNumber encodes a block number as big endian uint64
func encodeBlockNumber(number uint64) []byte {
	enc := make([]byte, 8)
	binary.BigEndian.PutUint64(enc, number)
	return enc
}

// headerKey = headerPrefix + hash
func headerKey(hash common.Hash) []byte {
	return append(headerPrefix, hash.ToBytes()...)
}

// headerHashKey = headerHashPrefix + num (uint64 big endian)
func headerHashKey(number uint64) []byte {
	return append(headerHashPrefix, encodeBlockNumber(number)...)
}

// blockBodyKey = blockBodyPrefix + hash
func blockBodyKey(hash common.Hash) []byte {
	return append(blockBodyPrefix, hash.ToBytes()...)
}

// arrivalTimeKey = arrivalTimePrefix + hash
func arrivalTimeKey(hash common.Hash) []byte {
	return append(arrivalTimePrefix, hash.ToBytes()...)
}

// BlockState defines fields for manipulating the state of blocks, such as
// the BlockTree and the stored headers and bodies
type BlockState struct {
	bt *blocktree.BlockTree
	db chaindb.Database
	sync.RWMutex
	genesisHash common.Hash
	telemetry   Telemetry

	// block notifiers
	imported     map[chan *types.Block]struct{}
	importedLock sync.RWMutex
}

// NewBlockState will create a new BlockState backed by the database and the
// given blocktree
func NewBlockState(db chaindb.Database, bt *blocktree.BlockTree, telemetry Telemetry) (*BlockState, error) {
	if bt == nil {
		return nil, fmt.Errorf("block tree is nil")
	}

	bs := &BlockState{
		bt:        bt,
		db:        chaindb.NewTable(db, blockPrefix),
		telemetry: telemetry,
		imported:  make(map[chan *types.Block]struct{}),
	}

	genesisHeader, err := bs.GetHeaderByNumber(0)
	if err != nil {
		return nil, fmt.Errorf("failed to get genesis header: %w", err)
	}

	bs.genesisHash = genesisHeader.Hash()
	return bs, nil
}

// NewBlockStateFromGenesis initialises a BlockState from a genesis header,
// saving it to the database
func NewBlockStateFromGenesis(db chaindb.Database, header *types.Header,
	telemetry Telemetry) (*BlockState, error) {
	bs := &BlockState{
		bt:          blocktree.NewBlockTreeFromRoot(header),
		db:          chaindb.NewTable(db, blockPrefix),
		telemetry:   telemetry,
		imported:    make(map[chan *types.Block]struct{}),
		genesisHash: header.Hash(),
	}

	if err := bs.setArrivalTime(header.Hash(), time.Now()); err != nil {
		return nil, err
	}

	if err := bs.SetHeader(header); err != nil {
		return nil, err
	}

	if err := bs.db.Put(headerHashKey(header.Number), header.Hash().ToBytes()); err != nil {
		return nil, err
	}

	if err := bs.SetBlockBody(header.Hash(), types.NewBody(nil)); err != nil {
		return nil, err
	}

	return bs, nil
}

// GenesisHash returns the hash of the genesis block
func (bs *BlockState) GenesisHash() common.Hash {
	return bs.genesisHash
}

// HasHeader returns if the db contains a header with the given hash
func (bs *BlockState) HasHeader(hash common.Hash) (bool, error) {
	return bs.db.Has(headerKey(hash))
}

// GetHeader returns the header for a given hash
func (bs *BlockState) GetHeader(hash common.Hash) (*types.Header, error) {
	if has, _ := bs.HasHeader(hash); !has {
		return nil, chaindb.ErrKeyNotFound
	}

	data, err := bs.db.Get(headerKey(hash))
	if err != nil {
		return nil, err
	}

	header, err := types.NewHeaderFromEncoded(data)
	if err != nil {
		return nil, err
	}

	header.Hash()
	return header, nil
}

// SetHeader will set the header into DB
func (bs *BlockState) SetHeader(header *types.Header) error {
	enc, err := header.Encode()
	if err != nil {
		return err
	}

	return bs.db.Put(headerKey(header.Hash()), enc)
}

// GetHashByNumber returns the block hash on our best chain with the given number
func (bs *BlockState) GetHashByNumber(num uint64) (common.Hash, error) {
	bh, err := bs.db.Get(headerHashKey(num))
	if err != nil {
		return common.Hash{}, fmt.Errorf("cannot get block %d: %w", num, err)
	}

	return common.NewHash(bh), nil
}

// GetHeaderByNumber returns the block header on our best chain with the given number
func (bs *BlockState) GetHeaderByNumber(num uint64) (*types.Header, error) {
	hash, err := bs.GetHashByNumber(num)
	if err != nil {
		return nil, err
	}

	return bs.GetHeader(hash)
}

// HasBlockBody returns true if the db contains the block body
func (bs *BlockState) HasBlockBody(hash common.Hash) (bool, error) {
	return bs.db.Has(blockBodyKey(hash))
}

// GetBlockBody will return the body for a given hash
func (bs *BlockState) GetBlockBody(hash common.Hash) (*types.Body, error) {
	data, err := bs.db.Get(blockBodyKey(hash))
	if err != nil {
		return nil, err
	}

	return types.NewBodyFromEncoded(data)
}

// SetBlockBody will add a block body to the db
func (bs *BlockState) SetBlockBody(hash common.Hash, body *types.Body) error {
	enc, err := body.Encode()
	if err != nil {
		return err
	}

	return bs.db.Put(blockBodyKey(hash), enc)
}

// GetBlockByHash returns a block for a given hash
func (bs *BlockState) GetBlockByHash(hash common.Hash) (*types.Block, error) {
	header, err := bs.GetHeader(hash)
	if err != nil {
		return nil, err
	}

	body, err := bs.GetBlockBody(hash)
	if err != nil {
		return nil, err
	}

	return &types.Block{Header: *header, Body: *body}, nil
}

// GetBlockByNumber returns the block on our best chain with the given number
func (bs *BlockState) GetBlockByNumber(num uint64) (*types.Block, error) {
	hash, err := bs.GetHashByNumber(num)
	if err != nil {
		return nil, err
	}

	return bs.GetBlockByHash(hash)
}

// GetHeaderByBlockID resolves the block ID to a stored header.
// Misses surface chaindb.ErrKeyNotFound.
func (bs *BlockState) GetHeaderByBlockID(id types.BlockID) (*types.Header, error) {
	if hash, ok := id.Hash(); ok {
		return bs.GetHeader(hash)
	}

	num, _ := id.Number()
	return bs.GetHeaderByNumber(num)
}

// GetBlockByBlockID resolves the block ID to a stored block.
// Misses surface chaindb.ErrKeyNotFound.
func (bs *BlockState) GetBlockByBlockID(id types.BlockID) (*types.Block, error) {
	if hash, ok := id.Hash(); ok {
		return bs.GetBlockByHash(hash)
	}

	num, _ := id.Number()
	return bs.GetBlockByNumber(num)
}

// AddBlock adds a block to the blocktree and the DB with arrival time as
// current unix time
func (bs *BlockState) AddBlock(block *types.Block) error {
	bs.Lock()
	defer bs.Unlock()
	return bs.AddBlockWithArrivalTime(block, time.Now())
}

// AddBlockWithArrivalTime adds a block to the blocktree and the DB with the
// given arrival time
func (bs *BlockState) AddBlockWithArrivalTime(block *types.Block, arrivalTime time.Time) error {
	err := bs.setArrivalTime(block.Header.Hash(), arrivalTime)
	if err != nil {
		return err
	}

	prevHead := bs.bt.DeepestBlockHash()

	// add block to blocktree
	err = bs.bt.AddBlock(&block.Header, arrivalTime)
	if err != nil {
		return err
	}

	// add the header to the DB
	err = bs.SetHeader(&block.Header)
	if err != nil {
		return err
	}
	hash := block.Header.Hash()

	// only set number->hash mapping for our current chain
	var onChain bool
	if onChain, err = bs.isBlockOnCurrentChain(&block.Header); onChain && err == nil {
		err = bs.db.Put(headerHashKey(block.Header.Number), hash.ToBytes())
		if err != nil {
			return err
		}
	}

	err = bs.SetBlockBody(hash, &block.Body)
	if err != nil {
		return err
	}

	// check if there was a re-org, if so, re-set the canonical number->hash mapping
	err = bs.handleAddedBlock(prevHead, bs.bt.DeepestBlockHash())
	if err != nil {
		return err
	}

	bs.telemetry.SendMessage(telemetry.NewBlockImportTM(&hash,
		block.Header.Number, "NetworkBroadcast"))

	go bs.notifyImported(block)
	return bs.db.Flush()
}

// handleAddedBlock re-sets the canonical number->hash mapping if there was a chain re-org.
// prev is the previous best block hash before the new block was added to the blocktree.
// curr is the current best block hash.
func (bs *BlockState) handleAddedBlock(prev, curr common.Hash) error {
	ancestor, err := bs.HighestCommonAncestor(prev, curr)
	if err != nil {
		return err
	}

	if ancestor == prev {
		return nil
	}

	subchain, err := bs.SubChain(ancestor, curr)
	if err != nil {
		return err
	}

	batch := bs.db.NewBatch()
	for _, hash := range subchain {
		header, err := bs.GetHeader(hash)
		if err != nil {
			return fmt.Errorf("failed to get header in subchain: %w", err)
		}

		err = batch.Put(headerHashKey(header.Number), hash.ToBytes())
		if err != nil {
			return err
		}
	}

	return batch.Flush()
}

func (bs *BlockState) isBlockOnCurrentChain(header *types.Header) (bool, error) {
	bestBlock, err := bs.BestBlockHeader()
	if err != nil {
		return false, err
	}

	// if the new block is ahead of our best block, then it is on our current chain.
	if header.Number > bestBlock.Number {
		return true, nil
	}

	return bs.IsDescendantOf(header.Hash(), bestBlock.Hash())
}

// BestBlockHash returns the hash of the head of the current chain
func (bs *BlockState) BestBlockHash() common.Hash {
	if bs.bt == nil {
		return common.Hash{}
	}

	return bs.bt.DeepestBlockHash()
}

// BestBlockHeader returns the block header of the current head of the chain
func (bs *BlockState) BestBlockHeader() (*types.Header, error) {
	return bs.GetHeader(bs.BestBlockHash())
}

// BestBlockNumber returns the block number of the current head of the chain
func (bs *BlockState) BestBlockNumber() (uint64, error) {
	header, err := bs.BestBlockHeader()
	if err != nil {
		return 0, err
	}

	return header.Number, nil
}

// BestBlock returns the current head of the chain
func (bs *BlockState) BestBlock() (*types.Block, error) {
	return bs.GetBlockByHash(bs.BestBlockHash())
}

// SubChain returns the sub-blockchain between the starting hash and the
// ending hash using the block tree
func (bs *BlockState) SubChain(start, end common.Hash) ([]common.Hash, error) {
	if bs.bt == nil {
		return nil, fmt.Errorf("blocktree is nil")
	}

	return bs.bt.SubChain(start, end)
}

// IsDescendantOf returns true if child is a descendant of parent, false otherwise.
// it returns an error if parent or child are not in the blocktree.
func (bs *BlockState) IsDescendantOf(parent, child common.Hash) (bool, error) {
	if bs.bt == nil {
		return false, fmt.Errorf("blocktree is nil")
	}

	return bs.bt.IsDescendantOf(parent, child)
}

// HighestCommonAncestor returns the block with the highest number that is an
// ancestor of both a and b
func (bs *BlockState) HighestCommonAncestor(a, b common.Hash) (common.Hash, error) {
	return bs.bt.HighestCommonAncestor(a, b)
}

// Leaves returns the leaves of the blocktree as an array
func (bs *BlockState) Leaves() []common.Hash {
	return bs.bt.Leaves()
}

// BlocktreeAsString returns the blocktree as a string
func (bs *BlockState) BlocktreeAsString() string {
	return bs.bt.String()
}

// HasArrivalTime returns true if the db contains the block's arrival time
func (bs *BlockState) HasArrivalTime(hash common.Hash) (bool, error) {
	return bs.db.Has(arrivalTimeKey(hash))
}

// GetArrivalTime returns the arrival time of a block given its hash
func (bs *BlockState) GetArrivalTime(hash common.Hash) (time.Time, error) {
	arrivalTime, err := bs.db.Get(arrivalTimeKey(hash))
	if err != nil {
		return time.Time{}, err
	}

	ns := binary.LittleEndian.Uint64(arrivalTime)
	return time.Unix(0, int64(ns)), nil
}

func (bs *BlockState) setArrivalTime(hash common.Hash, arrivalTime time.Time) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(arrivalTime.UnixNano()))
	return bs.db.Put(arrivalTimeKey(hash), buf)
}

// CollectGauge exports the number of blocktree leaves
func (bs *BlockState) CollectGauge() map[string]int64 {
	return map[string]int64{
		blocktreeLeavesMetrics: int64(len(bs.Leaves())),
	}
}
