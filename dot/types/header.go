// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/txpool/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Header is a state block header
type Header struct {
	ParentHash     common.Hash
	Number         uint64
	StateRoot      common.Hash
	ExtrinsicsRoot common.Hash
	Digest         [][]byte

	hash common.Hash
}

// NewHeader creates a new block header and sets its hash field
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint64, digest [][]byte) *Header {
	if digest == nil {
		digest = [][]byte{}
	}

	header := &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}

	header.Hash()
	return header
}

// Encode returns the SCALE encoding of the header, fields in declaration order
func (h *Header) Encode() ([]byte, error) {
	var buffer bytes.Buffer
	encoder := scale.NewEncoder(&buffer)

	for _, field := range []interface{}{
		h.ParentHash, h.Number, h.StateRoot, h.ExtrinsicsRoot, h.Digest,
	} {
		if err := encoder.Encode(field); err != nil {
			return nil, err
		}
	}

	return buffer.Bytes(), nil
}

// NewHeaderFromEncoded decodes a SCALE encoded header
func NewHeaderFromEncoded(in []byte) (*Header, error) {
	decoder := scale.NewDecoder(bytes.NewReader(in))
	header := new(Header)

	for _, field := range []interface{}{
		&header.ParentHash, &header.Number, &header.StateRoot, &header.ExtrinsicsRoot, &header.Digest,
	} {
		if err := decoder.Decode(field); err != nil {
			return nil, err
		}
	}

	return header, nil
}

// DeepCopy returns a deep copy of the header
func (h *Header) DeepCopy() (*Header, error) {
	digest := make([][]byte, len(h.Digest))
	for i, d := range h.Digest {
		digest[i] = make([]byte, len(d))
		copy(digest[i], d)
	}

	return &Header{
		ParentHash:     h.ParentHash,
		Number:         h.Number,
		StateRoot:      h.StateRoot,
		ExtrinsicsRoot: h.ExtrinsicsRoot,
		Digest:         digest,
	}, nil
}

// String returns the formatted header as a string
func (h *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Hash=%s",
		h.ParentHash, h.Number, h.StateRoot, h.ExtrinsicsRoot, h.Hash())
}

// Hash returns the hash of the block header
// If the internal hash field is nil, it hashes the block and sets the hash field.
// If hashing the header errors, this will panic.
func (h *Header) Hash() common.Hash {
	if h.hash == common.EmptyHash {
		enc, err := h.Encode()
		if err != nil {
			panic(err)
		}

		hash, err := common.Blake2bHash(enc)
		if err != nil {
			panic(err)
		}

		h.hash = hash
	}

	return h.hash
}
