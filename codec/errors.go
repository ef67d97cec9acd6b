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
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is returned when the input ends before a complete
	// value could be read
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrTrailingBytes is returned when input remains after a complete
	// value was decoded
	ErrTrailingBytes = errors.New("trailing bytes after encoded value")

	// ErrInvalidLength is returned for length prefixes that are
	// non-minimal or declare more elements than the input could hold
	ErrInvalidLength = errors.New("invalid length prefix")

	// ErrUnknownTag is returned when a variant tag has no defined meaning
	ErrUnknownTag = errors.New("unknown variant tag")
)

// DecodeError annotates a decoding failure with the byte offset at which it
// occurred and what was being decoded there.
type DecodeError struct {
	Offset   int
	Expected string
	Err      error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf(
		"decoding %s at offset %d: %s",
		e.Expected,
		e.Offset,
		e.Err,
	)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}

// UnknownTagError records a variant tag that does not correspond to any
// defined variant of the named type.
type UnknownTagError struct {
	Type string
	Tag  uint8
}

func (e UnknownTagError) Error() string {
	return fmt.Sprintf("unknown %s tag: %d", e.Type, e.Tag)
}

func (e UnknownTagError) Is(target error) bool {
	return target == ErrUnknownTag
}
