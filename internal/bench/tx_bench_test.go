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

package bench

import (
	"fmt"
	"testing"

	"github.com/chronos-chain/chronos-core/ledger"
)

// benchSink prevents compiler dead-code elimination in benchmarks.
var benchSink interface{}

// benchOutputCounts are the transaction sizes measured by the codec
// benchmarks.
var benchOutputCounts = []int{1, 8, 64}

// BenchmarkTxEncode benchmarks tagged transaction encoding by output count.
func BenchmarkTxEncode(b *testing.B) {
	for _, count := range benchOutputCounts {
		tx := FixtureWithdrawTx(count)
		encoded := ledger.EncodeTransaction(tx)

		b.Run(fmt.Sprintf("Outputs_%d", count), func(b *testing.B) {
			b.SetBytes(int64(len(encoded)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink = ledger.EncodeTransaction(tx)
			}
		})
	}
}

// BenchmarkTxDecode benchmarks tagged transaction decoding by output count.
func BenchmarkTxDecode(b *testing.B) {
	for _, count := range benchOutputCounts {
		encoded := ledger.EncodeTransaction(FixtureWithdrawTx(count))

		b.Run(fmt.Sprintf("Outputs_%d", count), func(b *testing.B) {
			// Pre-validate that decoding succeeds before measuring
			tx, err := ledger.DecodeTransaction(encoded)
			if err != nil {
				b.Fatalf("DecodeTransaction failed: %v", err)
			}
			benchSink = tx

			b.SetBytes(int64(len(encoded)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = ledger.DecodeTransaction(encoded)
			}
		})
	}
}

// BenchmarkTxId benchmarks transaction id calculation.
func BenchmarkTxId(b *testing.B) {
	for _, count := range benchOutputCounts {
		tx := FixtureWithdrawTx(count)

		b.Run(fmt.Sprintf("Outputs_%d", count), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink = ledger.TransactionId(tx)
			}
		})
	}
}

// BenchmarkTxOutputTotal benchmarks checked output summation.
func BenchmarkTxOutputTotal(b *testing.B) {
	for _, count := range benchOutputCounts {
		tx := FixtureWithdrawTx(count)

		b.Run(fmt.Sprintf("Outputs_%d", count), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = tx.GetOutputTotal()
			}
		})
	}
}
