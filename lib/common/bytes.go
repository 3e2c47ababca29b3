// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrNoPrefix is returned when a hex string is not prefixed with 0x
var ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")

// BytesToHex converts a byte slice to a 0x prefixed hex string
func BytesToHex(in []byte) string {
	s := hex.EncodeToString(in)
	return "0x" + s
}

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) ([]byte, error) {
	if len(in) < 2 {
		return nil, errors.New("invalid string")
	}

	if strings.Compare(in[:2], "0x") != 0 {
		return nil, ErrNoPrefix
	}

	// Ensure we have an even length, otherwise hex.DecodeString fails and returns zero hash
	if len(in)%2 != 0 {
		return nil, errors.New("cannot decode a odd length string")
	}

	in = in[2:]
	out, err := hex.DecodeString(in)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice
// it panics if it cannot decode the string
func MustHexToBytes(in string) []byte {
	out, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}

	return out
}
