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

package codec

import (
	"encoding/binary"
	"fmt"
)

// Compact length prefix encoding. The low two bits of the first byte select
// the prefix width; the remaining bits carry the value, little-endian.
const (
	lengthModeMask  = 0x03
	lengthMode1Byte = 0x00
	lengthMode2Byte = 0x01
	lengthMode4Byte = 0x02

	maxLength1Byte = 1<<6 - 1
	maxLength2Byte = 1<<14 - 1

	// MaxSequenceLength is the largest element count a length prefix can
	// carry. Larger sequences cannot appear in any valid encoding.
	MaxSequenceLength = 1<<30 - 1
)

// Size hints are advisory and may come from untrusted data, so cap how much
// a single hint can pre-allocate. The buffer grows as needed beyond this.
const maxSizeHint = 1 << 20

// Encoder accumulates the canonical encoding of a value. The zero value is
// ready to use.
type Encoder struct {
	buf []byte
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// NewEncoderWithHint creates an encoder with capacity pre-allocated for the
// given size hint. Hints outside a sane range are clamped.
func NewEncoderWithHint(hint int) *Encoder {
	if hint < 0 {
		hint = 0
	}
	if hint > maxSizeHint {
		hint = maxSizeHint
	}
	return &Encoder{buf: make([]byte, 0, hint)}
}

// Bytes returns the encoded output accumulated so far.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

func (e *Encoder) WriteUint8(v uint8) {
	e.buf = append(e.buf, v)
}

func (e *Encoder) WriteUint16(v uint16) {
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

func (e *Encoder) WriteUint32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *Encoder) WriteUint64(v uint64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}

func (e *Encoder) WriteInt64(v int64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, uint64(v))
}

func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

// WriteBytes appends raw bytes with no length prefix.
func (e *Encoder) WriteBytes(b []byte) {
	e.buf = append(e.buf, b...)
}

// WriteTag appends a one-byte variant tag.
func (e *Encoder) WriteTag(tag uint8) {
	e.buf = append(e.buf, tag)
}

// WriteOptionTag appends the presence tag for an optional value. The
// payload, if present, is written by the caller immediately after.
func (e *Encoder) WriteOptionTag(present bool) {
	e.WriteBool(present)
}

// WriteLength appends a compact length prefix in the narrowest mode that
// can hold n. Lengths outside [0, MaxSequenceLength] indicate a caller bug
// and panic.
func (e *Encoder) WriteLength(n int) {
	switch {
	case n < 0:
		panic(fmt.Sprintf("negative sequence length: %d", n))
	case n <= maxLength1Byte:
		e.buf = append(e.buf, uint8(n)<<2|lengthMode1Byte)
	case n <= maxLength2Byte:
		e.buf = binary.LittleEndian.AppendUint16(
			e.buf,
			uint16(n)<<2|lengthMode2Byte,
		)
	case n <= MaxSequenceLength:
		e.buf = binary.LittleEndian.AppendUint32(
			e.buf,
			uint32(n)<<2|lengthMode4Byte,
		)
	default:
		panic(fmt.Sprintf("sequence length %d exceeds encodable range", n))
	}
}

// LengthSize returns the encoded size in bytes of a compact length prefix
// for a sequence of n elements. Useful for size hints.
func LengthSize(n int) int {
	switch {
	case n <= maxLength1Byte:
		return 1
	case n <= maxLength2Byte:
		return 2
	default:
		return 4
	}
}
