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

package common

import "sync/atomic"

// Network definitions
var (
	NetworkMainnet = Network{
		Id:        0,
		Name:      "mainnet",
		Bech32Hrp: "cro",
		ChainId:   0x2a,
	}
	NetworkTestnet = Network{
		Id:        1,
		Name:      "testnet",
		Bech32Hrp: "tcro",
		ChainId:   0x42,
	}
	NetworkDevnet = Network{
		Id:        2,
		Name:      "devnet",
		Bech32Hrp: "dcro",
		ChainId:   0x00,
	}

	NetworkInvalid = Network{
		Id:   255,
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkDevnet,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkById returns a predefined network by ID
func NetworkById(id uint8) Network {
	for _, network := range networks {
		if network.Id == id {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByBech32Hrp returns a predefined network by textual address prefix
func NetworkByBech32Hrp(hrp string) Network {
	for _, network := range networks {
		if network.Bech32Hrp == hrp {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByChainId returns a predefined network by chain ID byte
func NetworkByChainId(chainId uint8) Network {
	for _, network := range networks {
		if network.ChainId == chainId {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a Chronos network instance. Addresses and transactions
// are bound to a single network: addresses through the textual prefix,
// transactions through the chain ID byte in their attributes.
type Network struct {
	Id        uint8 // network ID used in lookups
	Name      string
	Bech32Hrp string // human-readable prefix for textual addresses
	ChainId   uint8  // chain ID byte carried in transaction attributes
}

func (n Network) String() string {
	return n.Name
}

// defaultNetwork holds the process-wide network used by display helpers when
// no explicit network is given. Uses atomic.Value for race-free concurrent
// access (typically set once at startup, read many times).
var defaultNetwork atomic.Value // stores Network

// SetDefaultNetwork sets the process-wide default network. Callers (e.g.
// main) should set this once at startup. Display helpers fall back to
// Mainnet when it was never set; consensus-relevant operations always take
// the network explicitly and ignore this.
func SetDefaultNetwork(n Network) {
	defaultNetwork.Store(n)
}

// DefaultNetwork returns the process-wide default network, or Mainnet when
// none has been set.
func DefaultNetwork() Network {
	if v, ok := defaultNetwork.Load().(Network); ok {
		return v
	}
	return NetworkMainnet
}
