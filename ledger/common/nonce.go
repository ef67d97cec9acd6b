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
	"strconv"

	"github.com/chronos-chain/chronos-core/codec"
)

// Nonce counts the state-mutating operations applied to a staked account.
// A transaction carries the nonce it expects, which makes replaying it
// against an already-mutated account invalid.
type Nonce uint64

// Next returns the nonce value following this one.
func (n Nonce) Next() Nonce {
	return n + 1
}

func (n Nonce) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

func (n Nonce) EncodeTo(e *codec.Encoder) {
	e.WriteUint64(uint64(n))
}

func (n Nonce) SizeHint() int {
	return 8
}

func (n *Nonce) DecodeFrom(d *codec.Decoder) error {
	v, err := d.ReadUint64()
	if err != nil {
		return err
	}
	*n = Nonce(v)
	return nil
}
