// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// SystemInfo struct to hold system related information
type SystemInfo struct {
	SystemName    string
	SystemVersion string
}
