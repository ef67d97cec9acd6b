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
)

var (
	// ErrWrongNetwork is returned when a textual address belongs to a
	// different network instance than expected. It is reported before and
	// independently of any checksum verification so that callers can give
	// configuration errors a different treatment than corruption.
	ErrWrongNetwork = errors.New("address belongs to a different network")

	// ErrBech32 is returned when a textual address fails checksum or
	// character-set validation
	ErrBech32 = errors.New("malformed bech32 address")
)

// WrongNetworkError records a textual address whose prefix does not match
// the expected network.
type WrongNetworkError struct {
	Address  string
	Expected string
}

func (e WrongNetworkError) Error() string {
	return fmt.Sprintf(
		"address %q does not carry the %q network prefix",
		e.Address,
		e.Expected,
	)
}

func (e WrongNetworkError) Is(target error) bool {
	return target == ErrWrongNetwork
}

// Bech32Error wraps a checksum or character-set failure from the bech32
// layer.
type Bech32Error struct {
	Err error
}

func (e Bech32Error) Error() string {
	return fmt.Sprintf("malformed bech32 address: %s", e.Err)
}

func (e Bech32Error) Unwrap() error {
	return e.Err
}

func (e Bech32Error) Is(target error) bool {
	return target == ErrBech32
}

// InvalidRootLengthError records a textual address whose decoded payload is
// not a 32-byte tree root.
type InvalidRootLengthError struct {
	Length int
}

func (e InvalidRootLengthError) Error() string {
	return fmt.Sprintf("invalid address payload length: %d", e.Length)
}

// UnsupportedTxTypeError records a transaction kind tag that is defined but
// has no concrete decoder in this module.
type UnsupportedTxTypeError struct {
	Type TxType
}

func (e UnsupportedTxTypeError) Error() string {
	return fmt.Sprintf("unsupported transaction type: %s", e.Type)
}

// InvalidViewKeyError wraps a view key that is not a valid compressed
// secp256k1 public key.
type InvalidViewKeyError struct {
	Err error
}

func (e InvalidViewKeyError) Error() string {
	return fmt.Sprintf("invalid view key: %s", e.Err)
}

func (e InvalidViewKeyError) Unwrap() error {
	return e.Err
}
