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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/chronos-chain/chronos-core/codec"
	"github.com/chronos-chain/chronos-core/ledger/common"
)

const (
	// AddrTypeOrTree identifies addresses whose payload commits to a Merkle
	// tree of eligible public keys combined with OR logic. Tag 1 is reserved
	// for a future address kind carrying a different witness type.
	AddrTypeOrTree uint8 = 0
)

// TextAddress is implemented by address kinds that have a bech32 textual
// form bound to a particular network.
type TextAddress interface {
	ToText(network common.Network) string
}

// ExtendedAddr is a transaction output address. The only kind currently
// defined commits to the root of an OR tree of spending conditions.
type ExtendedAddr struct {
	addrType uint8
	root     common.TreeRoot
}

var _ TextAddress = ExtendedAddr{}

// NewOrTreeAddress returns an ExtendedAddr committing to the given tree root.
func NewOrTreeAddress(root common.TreeRoot) ExtendedAddr {
	return ExtendedAddr{
		addrType: AddrTypeOrTree,
		root:     root,
	}
}

func (a ExtendedAddr) Type() uint8 {
	return a.addrType
}

func (a ExtendedAddr) Root() common.TreeRoot {
	return a.root
}

func (a ExtendedAddr) EncodeTo(e *codec.Encoder) {
	e.WriteTag(a.addrType)
	e.WriteBytes(a.root[:])
}

func (a ExtendedAddr) SizeHint() int {
	return 1 + common.Hash256Size
}

func (a *ExtendedAddr) DecodeFrom(d *codec.Decoder) error {
	tag, err := d.ReadTag("ExtendedAddr")
	if err != nil {
		return err
	}
	if tag != AddrTypeOrTree {
		return codec.DecodeError{
			Offset:   d.Offset() - 1,
			Expected: "ExtendedAddr",
			Err:      codec.UnknownTagError{Type: "ExtendedAddr", Tag: tag},
		}
	}
	a.addrType = tag
	return a.root.DecodeFrom(d)
}

// ToText returns the bech32 form of the address for the given network: the
// tree root in base32 under the network's human-readable prefix. Encoding
// cannot fail for a well-formed network, so any internal bech32 error is
// treated as a programming error.
func (a ExtendedAddr) ToText(network common.Network) string {
	convData, err := bech32.ConvertBits(a.root[:], 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("unexpected error converting data to base32: %s", err))
	}
	encoded, err := bech32.Encode(network.Bech32Hrp, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

// ExtendedAddrFromText parses the bech32 form of an address, enforcing that
// it belongs to the given network. The network check happens on the raw
// prefix before any checksum verification, so an address from the wrong
// network reports ErrWrongNetwork even when otherwise malformed.
func ExtendedAddrFromText(
	text string,
	network common.Network,
) (ExtendedAddr, error) {
	if !strings.HasPrefix(text, network.Bech32Hrp) {
		return ExtendedAddr{}, WrongNetworkError{
			Address:  text,
			Expected: network.Bech32Hrp,
		}
	}
	hrp, data, err := bech32.DecodeNoLimit(text)
	if err != nil {
		return ExtendedAddr{}, Bech32Error{Err: err}
	}
	if hrp != network.Bech32Hrp {
		return ExtendedAddr{}, WrongNetworkError{
			Address:  text,
			Expected: network.Bech32Hrp,
		}
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return ExtendedAddr{}, Bech32Error{Err: err}
	}
	if len(decoded) != common.Hash256Size {
		return ExtendedAddr{}, InvalidRootLengthError{Length: len(decoded)}
	}
	return NewOrTreeAddress(common.NewHash256(decoded)), nil
}

// String returns the bech32 form of the address for the default network.
func (a ExtendedAddr) String() string {
	return a.ToText(common.DefaultNetwork())
}

func (a ExtendedAddr) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *ExtendedAddr) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	addr, err := ExtendedAddrFromText(text, common.DefaultNetwork())
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
