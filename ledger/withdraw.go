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
	"fmt"
	"strings"

	"github.com/chronos-chain/chronos-core/codec"
	"github.com/chronos-chain/chronos-core/ledger/common"
)

// WithdrawUnbondedTx converts a staked account's withdrawn unbonded balance
// into transferable outputs. The nonce must match the account's operation
// counter for the transaction to be accepted.
type WithdrawUnbondedTx struct {
	Nonce      common.Nonce `json:"nonce"`
	Outputs    []TxOut      `json:"outputs"`
	Attributes TxAttributes `json:"attributes"`
}

var _ Transaction = (*WithdrawUnbondedTx)(nil)

// NewWithdrawUnbondedTx creates a transaction withdrawing unbonded stake into
// the given outputs.
func NewWithdrawUnbondedTx(
	nonce common.Nonce,
	outputs []TxOut,
	attributes TxAttributes,
) *WithdrawUnbondedTx {
	return &WithdrawUnbondedTx{
		Nonce:      nonce,
		Outputs:    outputs,
		Attributes: attributes,
	}
}

func (t WithdrawUnbondedTx) Type() TxType {
	return TxTypeWithdrawUnbonded
}

func (t WithdrawUnbondedTx) EncodeTo(e *codec.Encoder) {
	t.Nonce.EncodeTo(e)
	e.WriteLength(len(t.Outputs))
	for _, output := range t.Outputs {
		output.EncodeTo(e)
	}
	t.Attributes.EncodeTo(e)
}

func (t WithdrawUnbondedTx) SizeHint() int {
	ret := t.Nonce.SizeHint() +
		codec.LengthSize(len(t.Outputs)) +
		t.Attributes.SizeHint()
	for _, output := range t.Outputs {
		ret += output.SizeHint()
	}
	return ret
}

func (t *WithdrawUnbondedTx) DecodeFrom(d *codec.Decoder) error {
	var nonce common.Nonce
	if err := nonce.DecodeFrom(d); err != nil {
		return fmt.Errorf("nonce: %w", err)
	}
	outputCount, err := d.ReadLength(txOutMinEncodedSize)
	if err != nil {
		return fmt.Errorf("outputs: %w", err)
	}
	outputs := make([]TxOut, 0, outputCount)
	for i := 0; i < outputCount; i++ {
		var output TxOut
		if err := output.DecodeFrom(d); err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
		outputs = append(outputs, output)
	}
	var attributes TxAttributes
	if err := attributes.DecodeFrom(d); err != nil {
		return fmt.Errorf("attributes: %w", err)
	}
	t.Nonce = nonce
	t.Outputs = outputs
	t.Attributes = attributes
	return nil
}

// GetOutputTotal returns the sum of all output values.
func (t WithdrawUnbondedTx) GetOutputTotal() (common.Coin, error) {
	values := make([]common.Coin, 0, len(t.Outputs))
	for _, output := range t.Outputs {
		values = append(values, output.Value)
	}
	return common.SumCoins(values)
}

// TxId returns the identifier of the transaction.
func (t WithdrawUnbondedTx) TxId() common.TxId {
	return TransactionId(t)
}

// String renders the transaction as a header line with the nonce followed by
// one line per output.
func (t WithdrawUnbondedTx) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "-> (unbonded) (nonce: %d)\n", t.Nonce)
	for _, output := range t.Outputs {
		fmt.Fprintf(&sb, "   %s ->\n", output)
	}
	return sb.String()
}
