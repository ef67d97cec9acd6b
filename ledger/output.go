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

	"github.com/chronos-chain/chronos-core/codec"
	"github.com/chronos-chain/chronos-core/ledger/common"
)

// txOutMinEncodedSize is the smallest canonical encoding of a TxOut: address
// tag and root, value, and an absent timelock.
const txOutMinEncodedSize = 1 + common.Hash256Size + 8 + 1

// TxOut is a transaction output: a value sent to an address, optionally
// locked until a point in time.
type TxOut struct {
	Address   ExtendedAddr     `json:"address"`
	Value     common.Coin      `json:"value"`
	ValidFrom *common.Timespec `json:"valid_from,omitempty"`
}

// NewTxOut returns an output with no timelock.
func NewTxOut(address ExtendedAddr, value common.Coin) TxOut {
	return TxOut{
		Address: address,
		Value:   value,
	}
}

// NewTxOutWithTimelock returns an output that is spendable from validFrom
// onward.
func NewTxOutWithTimelock(
	address ExtendedAddr,
	value common.Coin,
	validFrom common.Timespec,
) TxOut {
	return TxOut{
		Address:   address,
		Value:     value,
		ValidFrom: &validFrom,
	}
}

func (t TxOut) EncodeTo(e *codec.Encoder) {
	t.Address.EncodeTo(e)
	t.Value.EncodeTo(e)
	if t.ValidFrom != nil {
		e.WriteOptionTag(true)
		t.ValidFrom.EncodeTo(e)
	} else {
		e.WriteOptionTag(false)
	}
}

func (t TxOut) SizeHint() int {
	ret := t.Address.SizeHint() + t.Value.SizeHint() + 1
	if t.ValidFrom != nil {
		ret += t.ValidFrom.SizeHint()
	}
	return ret
}

func (t *TxOut) DecodeFrom(d *codec.Decoder) error {
	if err := t.Address.DecodeFrom(d); err != nil {
		return fmt.Errorf("address: %w", err)
	}
	if err := t.Value.DecodeFrom(d); err != nil {
		return fmt.Errorf("value: %w", err)
	}
	present, err := d.ReadOptionTag()
	if err != nil {
		return fmt.Errorf("valid from: %w", err)
	}
	if present {
		var validFrom common.Timespec
		if err := validFrom.DecodeFrom(d); err != nil {
			return fmt.Errorf("valid from: %w", err)
		}
		t.ValidFrom = &validFrom
	} else {
		t.ValidFrom = nil
	}
	return nil
}

// String renders the output as "address -> value" using the default
// network's textual address form.
func (t TxOut) String() string {
	return fmt.Sprintf("%s -> %s", t.Address, t.Value)
}
