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

// Package bench provides benchmark fixtures for the codec and ledger layers.
package bench

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/chronos-chain/chronos-core/ledger"
	"github.com/chronos-chain/chronos-core/ledger/common"
)

// FixtureRootHex is the tree root behind all benchmark addresses.
const FixtureRootHex = "0e7c045110b8dbf29765047380898919c5cb56f400112233445566778899aabb"

// FixtureAddress returns the benchmark OR tree address.
func FixtureAddress() ledger.ExtendedAddr {
	root, err := common.NewHash256FromHex(FixtureRootHex)
	if err != nil {
		panic(fmt.Sprintf("failed to build fixture root: %s", err))
	}
	return ledger.NewOrTreeAddress(root)
}

// FixtureWithdrawTx returns a withdraw transaction with the given number of
// outputs, for sizing codec benchmarks.
func FixtureWithdrawTx(outputs int) *ledger.WithdrawUnbondedTx {
	addr := FixtureAddress()
	outs := make([]ledger.TxOut, 0, outputs)
	for i := 0; i < outputs; i++ {
		outs = append(outs, ledger.NewTxOut(addr, common.Coin(1000+i)))
	}
	return ledger.NewWithdrawUnbondedTx(
		common.Nonce(42),
		outs,
		ledger.NewTxAttributes(common.NetworkMainnet),
	)
}

// FixtureKeys returns n distinct compressed secp256k1 public keys derived
// from small scalars.
func FixtureKeys(n int) [][]byte {
	keys := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		var seed [32]byte
		binary.BigEndian.PutUint64(seed[24:], uint64(i)+1)
		_, pubKey := btcec.PrivKeyFromBytes(seed[:])
		keys = append(keys, pubKey.SerializeCompressed())
	}
	return keys
}
