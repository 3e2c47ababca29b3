// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"

	"github.com/ChainSafe/txpool/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Body is the extrinsics inside a state block
type Body []Extrinsic

// NewBody returns a Body from an Extrinsic array
func NewBody(e []Extrinsic) *Body {
	body := Body(e)
	return &body
}

// Encode returns the SCALE encoding of the body
func (b Body) Encode() ([]byte, error) {
	var buffer bytes.Buffer
	encoder := scale.NewEncoder(&buffer)

	if err := encoder.Encode(ExtrinsicsArrayToBytesArray(b)); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// NewBodyFromEncoded returns a Body from a SCALE encoded byte array
func NewBodyFromEncoded(in []byte) (*Body, error) {
	decoder := scale.NewDecoder(bytes.NewReader(in))

	exts := [][]byte{}
	if err := decoder.Decode(&exts); err != nil {
		return nil, err
	}

	body := Body(BytesArrayToExtrinsics(exts))
	return &body, nil
}

// Hash returns the blake2b hash of the SCALE encoded body.
// It is the value a header's ExtrinsicsRoot commits to.
func (b Body) Hash() (common.Hash, error) {
	enc, err := b.Encode()
	if err != nil {
		return common.EmptyHash, err
	}

	return common.Blake2bHash(enc)
}

// DeepCopy creates a new copy of the body
func (b Body) DeepCopy() Body {
	newBody := make(Body, len(b))
	for i, e := range b {
		newBody[i] = make(Extrinsic, len(e))
		copy(newBody[i], e)
	}

	return newBody
}
