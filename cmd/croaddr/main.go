// Copyright 2025 Chronos Chain Developers
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chronos-chain/chronos-core/cmd/common"
	"github.com/chronos-chain/chronos-core/ledger"
	lcommon "github.com/chronos-chain/chronos-core/ledger/common"
)

type croaddrFlags struct {
	*common.GlobalFlags
	Decode string
	Encode string
	Keys   string
}

func newCroaddrFlags() *croaddrFlags {
	f := &croaddrFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(
		&f.Decode,
		"decode",
		"",
		"textual address to decode into its tree root",
	)
	f.Flagset.StringVar(
		&f.Encode,
		"encode",
		"",
		"hex-encoded 32-byte tree root to render as a textual address",
	)
	f.Flagset.StringVar(
		&f.Keys,
		"keys",
		"",
		"comma-separated hex public keys to build a multisig address from",
	)
	return f
}

func main() {
	// Parse commandline
	f := newCroaddrFlags()
	network := f.Parse()
	lcommon.SetDefaultNetwork(network)

	logLevel := slog.LevelInfo
	if f.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(
		slog.New(
			slog.NewTextHandler(
				os.Stderr,
				&slog.HandlerOptions{Level: logLevel},
			),
		),
	)
	slog.Debug(
		"network selected",
		"network", network.Name,
		"hrp", network.Bech32Hrp,
		"chainId", network.ChainId,
	)

	switch {
	case f.Decode != "":
		decodeAddress(f.Decode, network)
	case f.Encode != "":
		encodeRoot(f.Encode, network)
	case f.Keys != "":
		buildFromKeys(f.Keys, network)
	default:
		fmt.Printf("You must specify one of -decode, -encode, or -keys\n\n")
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}
}

func decodeAddress(text string, network lcommon.Network) {
	addr, err := ledger.ExtendedAddrFromText(text, network)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		if errors.Is(err, ledger.ErrWrongNetwork) {
			suggestNetwork(text)
		}
		os.Exit(1)
	}
	printAddress(addr, network)
}

// suggestNetwork points the user at the right -network value when the address
// itself is fine but carries another network's prefix.
func suggestNetwork(text string) {
	hrp, _, found := strings.Cut(text, "1")
	if !found {
		return
	}
	network := lcommon.NetworkByBech32Hrp(hrp)
	if network == lcommon.NetworkInvalid {
		return
	}
	fmt.Printf(
		"Address carries the %q prefix; retry with -network %s\n",
		hrp,
		network.Name,
	)
}

func encodeRoot(rootHex string, network lcommon.Network) {
	root, err := lcommon.NewHash256FromHex(rootHex)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	printAddress(ledger.NewOrTreeAddress(root), network)
}

func buildFromKeys(keysArg string, network lcommon.Network) {
	var pubKeys [][]byte
	for _, keyHex := range strings.Split(keysArg, ",") {
		key, err := hex.DecodeString(strings.TrimSpace(keyHex))
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		pubKeys = append(pubKeys, key)
	}
	addr, err := ledger.NewOrTreeAddressFromKeys(pubKeys)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	slog.Debug("or tree built", "keys", len(pubKeys))
	printAddress(addr, network)
}

func printAddress(addr ledger.ExtendedAddr, network lcommon.Network) {
	fmt.Printf("Address: %s\n", addr.ToText(network))
	fmt.Printf("Tree root: %s\n", addr.Root())
	fmt.Printf("Network: %s\n", network.Name)
}
