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
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/chronos-chain/chronos-core/codec"
	"github.com/chronos-chain/chronos-core/ledger/common"
)

// TxAccess variant tags
const (
	TxAccessAllData uint8 = 0
	TxAccessOutput  uint8 = 1
)

const ViewKeySize = 33

// txAccessPolicyMinEncodedSize is the smallest canonical encoding of a
// TxAccessPolicy: the view key plus an AllData access tag.
const txAccessPolicyMinEncodedSize = ViewKeySize + 1

// ViewKey is a compressed secp256k1 public key whose holder is allowed to
// decrypt some portion of a transaction payload.
type ViewKey [ViewKeySize]byte

// NewViewKey validates the given bytes as a compressed secp256k1 public key.
func NewViewKey(data []byte) (ViewKey, error) {
	if len(data) != ViewKeySize {
		return ViewKey{}, InvalidViewKeyError{
			Err: fmt.Errorf("invalid view key length: %d", len(data)),
		}
	}
	if _, err := btcec.ParsePubKey(data); err != nil {
		return ViewKey{}, InvalidViewKeyError{Err: err}
	}
	v := ViewKey{}
	copy(v[:], data)
	return v, nil
}

func (v ViewKey) String() string {
	return hex.EncodeToString(v[:])
}

func (v ViewKey) Bytes() []byte {
	return v[:]
}

func (v ViewKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v ViewKey) EncodeTo(e *codec.Encoder) {
	e.WriteBytes(v[:])
}

func (v ViewKey) SizeHint() int {
	return ViewKeySize
}

func (v *ViewKey) DecodeFrom(d *codec.Decoder) error {
	decoded, err := d.ReadBytes(ViewKeySize)
	if err != nil {
		return err
	}
	// Reject keys that are not on the curve rather than carrying them along
	validated, err := NewViewKey(decoded)
	if err != nil {
		return err
	}
	*v = validated
	return nil
}

// TxAccess describes which part of a transaction a view key may decrypt:
// everything, or a single output.
type TxAccess struct {
	Kind        uint8  `json:"kind"`
	OutputIndex uint64 `json:"output_index,omitempty"`
}

// NewAllDataAccess grants access to the full transaction payload.
func NewAllDataAccess() TxAccess {
	return TxAccess{Kind: TxAccessAllData}
}

// NewOutputAccess grants access to the output at the given index.
func NewOutputAccess(index uint64) TxAccess {
	return TxAccess{
		Kind:        TxAccessOutput,
		OutputIndex: index,
	}
}

func (a TxAccess) EncodeTo(e *codec.Encoder) {
	e.WriteTag(a.Kind)
	if a.Kind == TxAccessOutput {
		e.WriteUint64(a.OutputIndex)
	}
}

func (a TxAccess) SizeHint() int {
	if a.Kind == TxAccessOutput {
		return 9
	}
	return 1
}

func (a *TxAccess) DecodeFrom(d *codec.Decoder) error {
	tag, err := d.ReadTag("TxAccess")
	if err != nil {
		return err
	}
	switch tag {
	case TxAccessAllData:
		*a = TxAccess{Kind: TxAccessAllData}
		return nil
	case TxAccessOutput:
		index, err := d.ReadUint64()
		if err != nil {
			return err
		}
		*a = TxAccess{
			Kind:        TxAccessOutput,
			OutputIndex: index,
		}
		return nil
	default:
		return codec.DecodeError{
			Offset:   d.Offset() - 1,
			Expected: "TxAccess",
			Err:      codec.UnknownTagError{Type: "TxAccess", Tag: tag},
		}
	}
}

// TxAccessPolicy grants one view key access to some part of a transaction.
type TxAccessPolicy struct {
	ViewKey ViewKey  `json:"view_key"`
	Access  TxAccess `json:"access"`
}

func (p TxAccessPolicy) EncodeTo(e *codec.Encoder) {
	p.ViewKey.EncodeTo(e)
	p.Access.EncodeTo(e)
}

func (p TxAccessPolicy) SizeHint() int {
	return p.ViewKey.SizeHint() + p.Access.SizeHint()
}

func (p *TxAccessPolicy) DecodeFrom(d *codec.Decoder) error {
	if err := p.ViewKey.DecodeFrom(d); err != nil {
		return fmt.Errorf("view key: %w", err)
	}
	if err := p.Access.DecodeFrom(d); err != nil {
		return fmt.Errorf("access: %w", err)
	}
	return nil
}

// TxAttributes carries the metadata shared by all transaction kinds: the
// chain hex id binding the transaction to one network instance, and the view
// policies for its payload.
type TxAttributes struct {
	ChainHexId  uint8            `json:"chain_hex_id"`
	AllowedView []TxAccessPolicy `json:"allowed_view"`
}

// NewTxAttributes returns attributes binding a transaction to the given
// network, with no view policies.
func NewTxAttributes(network common.Network) TxAttributes {
	return TxAttributes{
		ChainHexId:  network.ChainId,
		AllowedView: []TxAccessPolicy{},
	}
}

// NewTxAttributesWithPolicies returns attributes binding a transaction to
// the given network with the given view policies.
func NewTxAttributesWithPolicies(
	network common.Network,
	policies []TxAccessPolicy,
) TxAttributes {
	return TxAttributes{
		ChainHexId:  network.ChainId,
		AllowedView: policies,
	}
}

func (a TxAttributes) EncodeTo(e *codec.Encoder) {
	e.WriteUint8(a.ChainHexId)
	e.WriteLength(len(a.AllowedView))
	for _, policy := range a.AllowedView {
		policy.EncodeTo(e)
	}
}

func (a TxAttributes) SizeHint() int {
	ret := 1 + codec.LengthSize(len(a.AllowedView))
	for _, policy := range a.AllowedView {
		ret += policy.SizeHint()
	}
	return ret
}

func (a *TxAttributes) DecodeFrom(d *codec.Decoder) error {
	chainHexId, err := d.ReadUint8()
	if err != nil {
		return fmt.Errorf("chain hex id: %w", err)
	}
	policyCount, err := d.ReadLength(txAccessPolicyMinEncodedSize)
	if err != nil {
		return fmt.Errorf("allowed view: %w", err)
	}
	policies := make([]TxAccessPolicy, 0, policyCount)
	for i := 0; i < policyCount; i++ {
		var policy TxAccessPolicy
		if err := policy.DecodeFrom(d); err != nil {
			return fmt.Errorf("allowed view %d: %w", i, err)
		}
		policies = append(policies, policy)
	}
	a.ChainHexId = chainHexId
	a.AllowedView = policies
	return nil
}
