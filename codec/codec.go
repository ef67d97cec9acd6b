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

// Package codec implements the canonical binary encoding used for all
// consensus-visible data. A value has exactly one valid encoding: integers
// are fixed-width little-endian, sequences carry a compact length prefix,
// and enumerated types carry a one-byte variant tag. Decoding fails closed
// on truncated input, trailing bytes, non-minimal length prefixes, and
// unknown tags.
package codec

// Encodable is implemented by types with a canonical binary form.
type Encodable interface {
	// EncodeTo appends the canonical encoding of the value to the encoder
	EncodeTo(e *Encoder)
	// SizeHint estimates the encoded size in bytes. It is used to pre-size
	// buffers and has no effect on the encoded bytes themselves.
	SizeHint() int
}

// Decodable is implemented by types that can be reconstructed from their
// canonical binary form.
type Decodable interface {
	DecodeFrom(d *Decoder) error
}

// Encode returns the canonical encoding of the given value.
func Encode(v Encodable) []byte {
	e := NewEncoderWithHint(v.SizeHint())
	v.EncodeTo(e)
	return e.Bytes()
}

// Decode reconstructs a value from its canonical encoding. The input must
// contain exactly one encoded value; trailing bytes are an error.
func Decode(data []byte, v Decodable) error {
	d := NewDecoder(data)
	if err := v.DecodeFrom(d); err != nil {
		return err
	}
	if d.Remaining() > 0 {
		return DecodeError{
			Offset:   d.Offset(),
			Expected: "end of input",
			Err:      ErrTrailingBytes,
		}
	}
	return nil
}
