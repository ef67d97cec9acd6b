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

package ledger

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/chronos-chain/chronos-core/ledger/common"
)

// Domain separation prefixes for OR tree hashing. Leaves and branches must
// never collide.
const (
	orTreeLeafPrefix   = 0x00
	orTreeBranchPrefix = 0x01
)

// ErrEmptyKeySet is returned when building an OR tree from no keys.
var ErrEmptyKeySet = errors.New(
	"or tree address requires at least one public key",
)

// NewOrTreeAddressFromKeys builds the OR tree over the given secp256k1
// public keys and returns the address committing to its root. Keys may be in
// any SEC 1 form; leaves always hash the compressed form. Leaf order is the
// order given, and an unpaired node at the end of a level is promoted to the
// next level unchanged.
func NewOrTreeAddressFromKeys(pubKeys [][]byte) (ExtendedAddr, error) {
	if len(pubKeys) == 0 {
		return ExtendedAddr{}, ErrEmptyKeySet
	}
	nodes := make([]common.Hash256, 0, len(pubKeys))
	for i, raw := range pubKeys {
		pubKey, err := btcec.ParsePubKey(raw)
		if err != nil {
			return ExtendedAddr{}, fmt.Errorf("public key %d: %w", i, err)
		}
		nodes = append(nodes, orTreeLeaf(pubKey.SerializeCompressed()))
	}
	for len(nodes) > 1 {
		next := make([]common.Hash256, 0, (len(nodes)+1)/2)
		for i := 0; i+1 < len(nodes); i += 2 {
			next = append(next, orTreeBranch(nodes[i], nodes[i+1]))
		}
		if len(nodes)%2 == 1 {
			next = append(next, nodes[len(nodes)-1])
		}
		nodes = next
	}
	return NewOrTreeAddress(nodes[0]), nil
}

func orTreeLeaf(pubKey []byte) common.Hash256 {
	data := make([]byte, 0, 1+len(pubKey))
	data = append(data, orTreeLeafPrefix)
	data = append(data, pubKey...)
	return common.Hash256Sum(data)
}

func orTreeBranch(left, right common.Hash256) common.Hash256 {
	data := make([]byte, 0, 1+2*common.Hash256Size)
	data = append(data, orTreeBranchPrefix)
	data = append(data, left[:]...)
	data = append(data, right[:]...)
	return common.Hash256Sum(data)
}
