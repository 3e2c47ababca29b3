// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ctoml "github.com/ChainSafe/txpool/dot/config/toml"
	"github.com/cosmos/go-bip39"
	"github.com/naoina/toml"
)

// LoadConfig loads the values from the toml configuration file into the
// provided configuration
func LoadConfig(cfg *ctoml.Config, fp string) error {
	fp, err := filepath.Abs(fp)
	if err != nil {
		return err
	}

	file, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Error("failed to close configuration file", "error", closeErr)
		}
	}()

	return toml.NewDecoder(file).Decode(cfg)
}

// ExportTomlConfig exports a toml configuration file
func ExportTomlConfig(cfg *ctoml.Config, fp string) {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		logger.Crit("failed to marshal configuration", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(fp, raw, 0600); err != nil {
		logger.Crit("failed to write file", "error", err)
		os.Exit(1)
	}
}

// RandomNodeName generates a new random name if there is no name configured
// for the node
func RandomNodeName() string {
	entropy, _ := bip39.NewEntropy(128)
	randomNamesString, _ := bip39.NewMnemonic(entropy)
	randomNames := strings.Split(randomNamesString, " ")
	number := binary.BigEndian.Uint16(entropy)
	return randomNames[0] + "-" + randomNames[1] + "-" + fmt.Sprint(number)
}
