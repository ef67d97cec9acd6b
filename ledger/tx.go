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

// Package ledger defines the chain's transaction types, output addresses,
// and their canonical encodings.
package ledger

import (
	"fmt"

	"github.com/chronos-chain/chronos-core/codec"
	"github.com/chronos-chain/chronos-core/ledger/common"
)

// TxType identifies a transaction kind on the wire. The tag prefixes the
// transaction body in the canonical encoding and is part of the data the
// transaction id commits to.
type TxType uint8

const (
	TxTypeTransfer         TxType = 0
	TxTypeDeposit          TxType = 1
	TxTypeUnbond           TxType = 2
	TxTypeWithdrawUnbonded TxType = 3
	TxTypeUnjail           TxType = 4
	TxTypeNodeJoin         TxType = 5
)

func (t TxType) String() string {
	switch t {
	case TxTypeTransfer:
		return "transfer"
	case TxTypeDeposit:
		return "deposit"
	case TxTypeUnbond:
		return "unbond"
	case TxTypeWithdrawUnbonded:
		return "withdraw-unbonded"
	case TxTypeUnjail:
		return "unjail"
	case TxTypeNodeJoin:
		return "node-join"
	default:
		return fmt.Sprintf("unknown (%d)", uint8(t))
	}
}

// Transaction is implemented by all transaction kinds.
type Transaction interface {
	codec.Encodable
	Type() TxType
}

// EncodeTransaction returns the canonical kind-tagged encoding of the
// transaction: the kind tag followed by the transaction body.
func EncodeTransaction(tx Transaction) []byte {
	e := codec.NewEncoderWithHint(1 + tx.SizeHint())
	e.WriteTag(uint8(tx.Type()))
	tx.EncodeTo(e)
	return e.Bytes()
}

// DecodeTransaction parses a kind-tagged transaction encoding. Kinds that
// are defined but have no decoder in this module report
// UnsupportedTxTypeError; tags outside the defined range are rejected
// outright, as are trailing bytes after the body.
func DecodeTransaction(data []byte) (Transaction, error) {
	d := codec.NewDecoder(data)
	tag, err := d.ReadTag("transaction")
	if err != nil {
		return nil, err
	}
	switch TxType(tag) {
	case TxTypeWithdrawUnbonded:
		tx := &WithdrawUnbondedTx{}
		if err := tx.DecodeFrom(d); err != nil {
			return nil, err
		}
		if d.Remaining() > 0 {
			return nil, codec.DecodeError{
				Offset:   d.Offset(),
				Expected: "end of input",
				Err:      codec.ErrTrailingBytes,
			}
		}
		return tx, nil
	case TxTypeTransfer, TxTypeDeposit, TxTypeUnbond, TxTypeUnjail,
		TxTypeNodeJoin:
		return nil, UnsupportedTxTypeError{Type: TxType(tag)}
	default:
		return nil, codec.DecodeError{
			Offset:   0,
			Expected: "transaction",
			Err:      codec.UnknownTagError{Type: "transaction", Tag: tag},
		}
	}
}

// TransactionId returns the identifier committing to a transaction: the
// blake2b-256 digest of its kind-tagged canonical encoding.
func TransactionId(tx Transaction) common.TxId {
	return common.Hash256Sum(EncodeTransaction(tx))
}
