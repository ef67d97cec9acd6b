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
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/chronos-chain/chronos-core/codec"
	"github.com/chronos-chain/chronos-core/internal/test"
	"github.com/chronos-chain/chronos-core/ledger/common"
)

const (
	orTreeRootHex    = "0e7c045110b8dbf29765047380898919c5cb56f400112233445566778899aabb"
	orTreeDevnetAddr = "dcro1pe7qg5gshrdl99m9q3ecpzvfr8zuk4h5qqgjyv6y24n80zye42as88x8tg"
)

func orTreeTestAddress() ExtendedAddr {
	return NewOrTreeAddress(
		common.NewHash256(test.DecodeHexString(orTreeRootHex)),
	)
}

func TestExtendedAddrToText(t *testing.T) {
	addr := orTreeTestAddress()
	encoded := addr.ToText(common.NetworkDevnet)
	if encoded != orTreeDevnetAddr {
		t.Fatalf(
			"address did not match expected value, got: %s, wanted: %s",
			encoded,
			orTreeDevnetAddr,
		)
	}
}

func TestExtendedAddrTextRoundTrip(t *testing.T) {
	addr := orTreeTestAddress()
	for _, network := range []common.Network{
		common.NetworkMainnet,
		common.NetworkTestnet,
		common.NetworkDevnet,
	} {
		encoded := addr.ToText(network)
		decoded, err := ExtendedAddrFromText(encoded, network)
		if err != nil {
			t.Fatalf(
				"unexpected error decoding %s address %q: %s",
				network,
				encoded,
				err,
			)
		}
		if decoded != addr {
			t.Fatalf(
				"address did not match expected value, got: %s, wanted: %s",
				decoded.Root(),
				addr.Root(),
			)
		}
	}
}

func TestExtendedAddrFromText(t *testing.T) {
	decoded, err := ExtendedAddrFromText(orTreeDevnetAddr, common.NetworkDevnet)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if decoded.Type() != AddrTypeOrTree {
		t.Fatalf(
			"address type did not match expected value, got: %d, wanted: %d",
			decoded.Type(),
			AddrTypeOrTree,
		)
	}
	expectedRoot := common.NewHash256(test.DecodeHexString(orTreeRootHex))
	if decoded.Root() != expectedRoot {
		t.Fatalf(
			"tree root did not match expected value, got: %s, wanted: %s",
			decoded.Root(),
			expectedRoot,
		)
	}
}

func TestExtendedAddrFromTextWrongNetwork(t *testing.T) {
	testDefs := []struct {
		address string
		network common.Network
	}{
		{
			address: orTreeDevnetAddr,
			network: common.NetworkMainnet,
		},
		{
			address: orTreeDevnetAddr,
			network: common.NetworkTestnet,
		},
		{
			address: orTreeTestAddress().ToText(common.NetworkMainnet),
			network: common.NetworkDevnet,
		},
	}
	for _, testDef := range testDefs {
		_, err := ExtendedAddrFromText(testDef.address, testDef.network)
		if err == nil {
			t.Fatalf(
				"expected error decoding %q as %s address",
				testDef.address,
				testDef.network,
			)
		}
		if !errors.Is(err, ErrWrongNetwork) {
			t.Fatalf(
				"error did not match expected value, got: %s, wanted: %s",
				err,
				ErrWrongNetwork,
			)
		}
		if errors.Is(err, ErrBech32) {
			t.Fatalf(
				"wrong-network error unexpectedly matches checksum error class: %s",
				err,
			)
		}
	}
}

// A wrong-network address must be reported as such even when its checksum is
// broken, so a user pasting an address into the wrong wallet gets told about
// the network rather than about corruption.
func TestExtendedAddrWrongNetworkBeforeChecksum(t *testing.T) {
	corrupted := corruptCharAt(orTreeDevnetAddr, len(orTreeDevnetAddr)-1)
	_, err := ExtendedAddrFromText(corrupted, common.NetworkMainnet)
	if !errors.Is(err, ErrWrongNetwork) {
		t.Fatalf(
			"error did not match expected value, got: %s, wanted: %s",
			err,
			ErrWrongNetwork,
		)
	}
}

// Flipping any single character of the text form must fail the decode.
// Corruption inside the prefix reports the wrong-network class; corruption
// of the separator or any data character reports the checksum class.
func TestExtendedAddrFromTextBadChecksum(t *testing.T) {
	hrpLen := len(common.NetworkDevnet.Bech32Hrp)
	for i := 0; i < len(orTreeDevnetAddr); i++ {
		corrupted := corruptCharAt(orTreeDevnetAddr, i)
		_, err := ExtendedAddrFromText(corrupted, common.NetworkDevnet)
		if err == nil {
			t.Fatalf(
				"expected error decoding %q corrupted at index %d",
				corrupted,
				i,
			)
		}
		expectedErr := ErrBech32
		if i < hrpLen {
			expectedErr = ErrWrongNetwork
		}
		if !errors.Is(err, expectedErr) {
			t.Fatalf(
				"error for corruption at index %d did not match expected value, got: %s, wanted: %s",
				i,
				err,
				expectedErr,
			)
		}
	}
}

// corruptCharAt replaces the character at the given index with a different
// character from the bech32 charset, so the result can only be rejected by
// the prefix or checksum checks, never by character-set validation.
func corruptCharAt(addr string, index int) string {
	replacement := byte('q')
	if addr[index] == replacement {
		replacement = 'p'
	}
	return addr[:index] + string(replacement) + addr[index+1:]
}

func TestExtendedAddrFromTextInvalidLength(t *testing.T) {
	testDefs := []struct {
		payloadLength int
	}{
		{payloadLength: 0},
		{payloadLength: 20},
		{payloadLength: 33},
	}
	for _, testDef := range testDefs {
		// Build a checksum-valid address whose payload is not a tree root
		convData, err := bech32.ConvertBits(
			make([]byte, testDef.payloadLength),
			8,
			5,
			true,
		)
		if err != nil {
			t.Fatalf("unexpected error converting data to base32: %s", err)
		}
		encoded, err := bech32.Encode(
			common.NetworkDevnet.Bech32Hrp,
			convData,
		)
		if err != nil {
			t.Fatalf("unexpected error encoding data as bech32: %s", err)
		}
		_, err = ExtendedAddrFromText(encoded, common.NetworkDevnet)
		if err == nil {
			t.Fatalf(
				"expected error decoding %d-byte payload address",
				testDef.payloadLength,
			)
		}
		var lengthErr InvalidRootLengthError
		if !errors.As(err, &lengthErr) {
			t.Fatalf("unexpected error type: %s", err)
		}
		if lengthErr.Length != testDef.payloadLength {
			t.Fatalf(
				"reported length did not match expected value, got: %d, wanted: %d",
				lengthErr.Length,
				testDef.payloadLength,
			)
		}
	}
}

func TestExtendedAddrBinaryCodec(t *testing.T) {
	addr := orTreeTestAddress()
	encoded := codec.Encode(addr)
	expected := append(
		[]byte{AddrTypeOrTree},
		test.DecodeHexString(orTreeRootHex)...,
	)
	if string(encoded) != string(expected) {
		t.Fatalf(
			"encoding did not match expected value, got: %x, wanted: %x",
			encoded,
			expected,
		)
	}
	var decoded ExtendedAddr
	if err := codec.Decode(encoded, &decoded); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if decoded != addr {
		t.Fatalf(
			"address did not match expected value, got: %s, wanted: %s",
			decoded.Root(),
			addr.Root(),
		)
	}
}

func TestExtendedAddrBinaryDecodeUnknownTag(t *testing.T) {
	// Tag 1 is reserved but not defined, so it must be rejected
	data := append([]byte{0x01}, test.DecodeHexString(orTreeRootHex)...)
	var decoded ExtendedAddr
	err := codec.Decode(data, &decoded)
	if !errors.Is(err, codec.ErrUnknownTag) {
		t.Fatalf(
			"error did not match expected value, got: %s, wanted: %s",
			err,
			codec.ErrUnknownTag,
		)
	}
}

func TestExtendedAddrBinaryDecodeTruncated(t *testing.T) {
	data := append(
		[]byte{AddrTypeOrTree},
		test.DecodeHexString(orTreeRootHex)[:16]...,
	)
	var decoded ExtendedAddr
	err := codec.Decode(data, &decoded)
	if !errors.Is(err, codec.ErrUnexpectedEOF) {
		t.Fatalf(
			"error did not match expected value, got: %s, wanted: %s",
			err,
			codec.ErrUnexpectedEOF,
		)
	}
}

func TestExtendedAddrBinaryDecodeTrailingBytes(t *testing.T) {
	data := append(codec.Encode(orTreeTestAddress()), 0xff)
	var decoded ExtendedAddr
	err := codec.Decode(data, &decoded)
	if !errors.Is(err, codec.ErrTrailingBytes) {
		t.Fatalf(
			"error did not match expected value, got: %s, wanted: %s",
			err,
			codec.ErrTrailingBytes,
		)
	}
}

func TestExtendedAddrJson(t *testing.T) {
	prevNetwork := common.DefaultNetwork()
	common.SetDefaultNetwork(common.NetworkDevnet)
	defer common.SetDefaultNetwork(prevNetwork)
	addr := orTreeTestAddress()
	jsonData, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expectedJson := `"` + orTreeDevnetAddr + `"`
	if string(jsonData) != expectedJson {
		t.Fatalf(
			"JSON did not match expected value, got: %s, wanted: %s",
			jsonData,
			expectedJson,
		)
	}
	var decoded ExtendedAddr
	if err := json.Unmarshal(jsonData, &decoded); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if decoded != addr {
		t.Fatalf(
			"address did not match expected value, got: %s, wanted: %s",
			decoded.Root(),
			addr.Root(),
		)
	}
}

func TestExtendedAddrStringUsesDefaultNetwork(t *testing.T) {
	prevNetwork := common.DefaultNetwork()
	common.SetDefaultNetwork(common.NetworkDevnet)
	defer common.SetDefaultNetwork(prevNetwork)
	if orTreeTestAddress().String() != orTreeDevnetAddr {
		t.Fatalf(
			"address did not match expected value, got: %s, wanted: %s",
			orTreeTestAddress().String(),
			orTreeDevnetAddr,
		)
	}
}
