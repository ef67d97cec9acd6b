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
	"time"

	"github.com/chronos-chain/chronos-core/codec"
)

// Timespec is a UNIX timestamp in seconds, used for output timelocks.
type Timespec int64

// NewTimespec creates a Timespec from a time value, truncating to seconds.
func NewTimespec(t time.Time) Timespec {
	return Timespec(t.Unix())
}

// Time returns the timestamp as a time value in UTC.
func (t Timespec) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

func (t Timespec) String() string {
	return strconv.FormatInt(int64(t), 10)
}

func (t Timespec) EncodeTo(e *codec.Encoder) {
	e.WriteInt64(int64(t))
}

func (t Timespec) SizeHint() int {
	return 8
}

func (t *Timespec) DecodeFrom(d *codec.Decoder) error {
	v, err := d.ReadInt64()
	if err != nil {
		return err
	}
	*t = Timespec(v)
	return nil
}
