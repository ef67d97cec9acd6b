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

// Decoder reads canonical encodings from a byte slice with position
// tracking. It never reads past the end of the input and never allocates
// more than the remaining input could possibly hold.
type Decoder struct {
	data []byte
	off  int
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Offset returns the current byte position in the input.
func (d *Decoder) Offset() int {
	return d.off
}

// Remaining returns the number of bytes left to decode.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.off
}

func (d *Decoder) eof(expected string) error {
	return DecodeError{
		Offset:   d.off,
		Expected: expected,
		Err:      ErrUnexpectedEOF,
	}
}

// ReadByte reads a single byte. It satisfies io.ByteReader.
func (d *Decoder) ReadByte() (byte, error) {
	if d.Remaining() < 1 {
		return 0, d.eof("byte")
	}
	b := d.data[d.off]
	d.off++
	return b, nil
}

// ReadTag reads a one-byte variant tag for the named type. The name is
// only used in error messages.
func (d *Decoder) ReadTag(typeName string) (uint8, error) {
	if d.Remaining() < 1 {
		return 0, d.eof(typeName + " tag")
	}
	b := d.data[d.off]
	d.off++
	return b, nil
}

func (d *Decoder) ReadUint8() (uint8, error) {
	if d.Remaining() < 1 {
		return 0, d.eof("uint8")
	}
	v := d.data[d.off]
	d.off++
	return v, nil
}

func (d *Decoder) ReadUint16() (uint16, error) {
	if d.Remaining() < 2 {
		return 0, d.eof("uint16")
	}
	v := binary.LittleEndian.Uint16(d.data[d.off:])
	d.off += 2
	return v, nil
}

func (d *Decoder) ReadUint32() (uint32, error) {
	if d.Remaining() < 4 {
		return 0, d.eof("uint32")
	}
	v := binary.LittleEndian.Uint32(d.data[d.off:])
	d.off += 4
	return v, nil
}

func (d *Decoder) ReadUint64() (uint64, error) {
	if d.Remaining() < 8 {
		return 0, d.eof("uint64")
	}
	v := binary.LittleEndian.Uint64(d.data[d.off:])
	d.off += 8
	return v, nil
}

func (d *Decoder) ReadInt64() (int64, error) {
	if d.Remaining() < 8 {
		return 0, d.eof("int64")
	}
	v := binary.LittleEndian.Uint64(d.data[d.off:])
	d.off += 8
	return int64(v), nil
}

// ReadBool reads a boolean. Any byte other than 0 or 1 is an error.
func (d *Decoder) ReadBool() (bool, error) {
	if d.Remaining() < 1 {
		return false, d.eof("bool")
	}
	b := d.data[d.off]
	d.off++
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, DecodeError{
			Offset:   d.off - 1,
			Expected: "bool",
			Err:      UnknownTagError{Type: "bool", Tag: b},
		}
	}
}

// ReadOptionTag reads the presence tag of an optional value. The payload,
// if present, is decoded by the caller immediately after.
func (d *Decoder) ReadOptionTag() (bool, error) {
	if d.Remaining() < 1 {
		return false, d.eof("option tag")
	}
	b := d.data[d.off]
	d.off++
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, DecodeError{
			Offset:   d.off - 1,
			Expected: "option tag",
			Err:      UnknownTagError{Type: "option", Tag: b},
		}
	}
}

// ReadBytes reads exactly n bytes and returns a copy.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, DecodeError{
			Offset:   d.off,
			Expected: "byte string",
			Err:      ErrInvalidLength,
		}
	}
	if d.Remaining() < n {
		return nil, DecodeError{
			Offset:   d.off,
			Expected: fmt.Sprintf("%d bytes", n),
			Err:      ErrUnexpectedEOF,
		}
	}
	ret := make([]byte, n)
	copy(ret, d.data[d.off:])
	d.off += n
	return ret, nil
}

// ReadLength reads a compact length prefix for a sequence whose elements
// occupy at least minElemSize bytes each. The encoding must be minimal, and
// the declared count must fit in the remaining input; both checks happen
// before any allocation based on the count.
func (d *Decoder) ReadLength(minElemSize int) (int, error) {
	start := d.off
	if d.Remaining() < 1 {
		return 0, d.eof("sequence length")
	}
	first := d.data[d.off]
	var n uint32
	switch first & lengthModeMask {
	case lengthMode1Byte:
		n = uint32(first) >> 2
		d.off++
	case lengthMode2Byte:
		if d.Remaining() < 2 {
			return 0, d.eof("sequence length")
		}
		n = uint32(binary.LittleEndian.Uint16(d.data[d.off:])) >> 2
		d.off += 2
		if n <= maxLength1Byte {
			return 0, DecodeError{
				Offset:   start,
				Expected: "sequence length",
				Err:      ErrInvalidLength,
			}
		}
	case lengthMode4Byte:
		if d.Remaining() < 4 {
			return 0, d.eof("sequence length")
		}
		n = binary.LittleEndian.Uint32(d.data[d.off:]) >> 2
		d.off += 4
		if n <= maxLength2Byte {
			return 0, DecodeError{
				Offset:   start,
				Expected: "sequence length",
				Err:      ErrInvalidLength,
			}
		}
	default:
		// The wide-integer mode could only describe sequences too large
		// to ever fit in a valid input
		return 0, DecodeError{
			Offset:   start,
			Expected: "sequence length",
			Err:      ErrInvalidLength,
		}
	}
	if minElemSize < 1 {
		minElemSize = 1
	}
	if int(n) > d.Remaining()/minElemSize {
		return 0, DecodeError{
			Offset:   start,
			Expected: "sequence length",
			Err:      ErrInvalidLength,
		}
	}
	return int(n), nil
}
