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

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/chronos-chain/chronos-core/codec"
	"golang.org/x/crypto/blake2b"
)

const Hash256Size = 32

// Hash256 is a blake2b-256 digest.
type Hash256 [Hash256Size]byte

func NewHash256(data []byte) Hash256 {
	h := Hash256{}
	copy(h[:], data)
	return h
}

// NewHash256FromHex parses a hex-encoded 32-byte digest.
func NewHash256FromHex(hexData string) (Hash256, error) {
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		return Hash256{}, err
	}
	if len(decoded) != Hash256Size {
		return Hash256{}, fmt.Errorf("invalid hash length: %d", len(decoded))
	}
	return NewHash256(decoded), nil
}

func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash256) Bytes() []byte {
	return h[:]
}

func (h Hash256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h Hash256) EncodeTo(e *codec.Encoder) {
	e.WriteBytes(h[:])
}

func (h Hash256) SizeHint() int {
	return Hash256Size
}

func (h *Hash256) DecodeFrom(d *codec.Decoder) error {
	decoded, err := d.ReadBytes(Hash256Size)
	if err != nil {
		return err
	}
	copy(h[:], decoded)
	return nil
}

// Hash256Sum generates a blake2b-256 hash from the provided data
func Hash256Sum(data []byte) Hash256 {
	tmpHash, err := blake2b.New(Hash256Size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(data)
	return Hash256(tmpHash.Sum(nil))
}

// TxId is a type alias for the hash identifying a transaction
type TxId = Hash256

// TreeRoot is a type alias for the Merkle root committing to an address's
// spending conditions
type TreeRoot = Hash256
