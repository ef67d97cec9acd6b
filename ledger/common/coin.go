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
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/chronos-chain/chronos-core/codec"
)

const (
	// CoinUnitsPerCro is the number of base units in one CRO
	CoinUnitsPerCro uint64 = 100_000_000
	// TotalSupplyCro is the fixed total supply in whole CRO
	TotalSupplyCro uint64 = 100_000_000_000
	// MaxCoin is the largest representable amount: the full supply in base
	// units. Any value above it can only arise from corruption or overflow.
	MaxCoin Coin = Coin(TotalSupplyCro * CoinUnitsPerCro)
)

// Coin is an amount in base units, bounded by MaxCoin. The zero value is a
// valid zero amount. All arithmetic is checked; amounts never wrap or clamp.
type Coin uint64

// ErrCoinRange is returned when an amount or arithmetic result falls
// outside the range [0, MaxCoin]
var ErrCoinRange = errors.New("coin amount out of range")

// CoinRangeError records a coin operation whose input or result falls
// outside the valid range.
type CoinRangeError struct {
	Op     string
	Amount uint64
	Arg    uint64
}

func (e CoinRangeError) Error() string {
	switch e.Op {
	case "add":
		return fmt.Sprintf(
			"coin add out of range: %d + %d exceeds maximum %d",
			e.Amount,
			e.Arg,
			uint64(MaxCoin),
		)
	case "sub":
		return fmt.Sprintf(
			"coin sub out of range: %d - %d is negative",
			e.Amount,
			e.Arg,
		)
	default:
		return fmt.Sprintf(
			"coin amount %d out of range (0..%d)",
			e.Amount,
			uint64(MaxCoin),
		)
	}
}

func (e CoinRangeError) Is(target error) bool {
	return target == ErrCoinRange
}

// NewCoin creates a Coin from a raw base-unit amount
func NewCoin(amount uint64) (Coin, error) {
	if amount > uint64(MaxCoin) {
		return 0, CoinRangeError{Op: "new", Amount: amount}
	}
	return Coin(amount), nil
}

// Add returns the sum of two amounts, failing when the sum would exceed
// MaxCoin.
func (c Coin) Add(other Coin) (Coin, error) {
	if uint64(other) > uint64(MaxCoin)-uint64(c) {
		return 0, CoinRangeError{
			Op:     "add",
			Amount: uint64(c),
			Arg:    uint64(other),
		}
	}
	return c + other, nil
}

// Sub returns the difference of two amounts, failing when the result would
// be negative.
func (c Coin) Sub(other Coin) (Coin, error) {
	if other > c {
		return 0, CoinRangeError{
			Op:     "sub",
			Amount: uint64(c),
			Arg:    uint64(other),
		}
	}
	return c - other, nil
}

// SumCoins returns the checked sum of all given amounts. An empty slice
// sums to zero.
func SumCoins(coins []Coin) (Coin, error) {
	var total Coin
	for _, c := range coins {
		var err error
		total, err = total.Add(c)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

func (c Coin) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

func (c Coin) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Coin) UnmarshalJSON(data []byte) error {
	var amountStr string
	if err := json.Unmarshal(data, &amountStr); err != nil {
		return err
	}
	amount, err := strconv.ParseUint(amountStr, 10, 64)
	if err != nil {
		return err
	}
	coin, err := NewCoin(amount)
	if err != nil {
		return err
	}
	*c = coin
	return nil
}

func (c Coin) EncodeTo(e *codec.Encoder) {
	e.WriteUint64(uint64(c))
}

func (c Coin) SizeHint() int {
	return 8
}

func (c *Coin) DecodeFrom(d *codec.Decoder) error {
	amount, err := d.ReadUint64()
	if err != nil {
		return err
	}
	if amount > uint64(MaxCoin) {
		return CoinRangeError{Op: "decode", Amount: amount}
	}
	*c = Coin(amount)
	return nil
}
