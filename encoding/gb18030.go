/*
Copyright 2026 The Go TextCodec Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package encoding

import "github.com/whatwg-encoding/goencoding/encoding/internal/index"

// GB18030Mode selects between the full four-byte-capable GB18030 encoder
// and its GBK mode, which drops the four-byte fallback and the euro-sign
// special case's counterpart in the two-byte path. Mirrors
// GB18030Encoder::IsGBK from the original Encoder.h rather than a bare
// bool, so call sites read as NewGB18030Encoder(GB18030ModeGBK) instead of
// NewGB18030Encoder(true).
type GB18030Mode int

const (
	// GB18030ModeFull is the unrestricted GB18030 encoder, including the
	// four-byte ranges fallback.
	GB18030ModeFull GB18030Mode = iota
	// GB18030ModeGBK restricts output to the two-byte forms GBK permits.
	GB18030ModeGBK
)

// gb18030PermanentHole is a single code point the standard carves a hole
// for regardless of mode: it has no mapping in either the two-byte index
// or the ranges table.
const gb18030PermanentHole rune = 0xE5E5

// gb18030EuroSign is the GBK-only single-byte special case.
const gb18030EuroSign rune = 0x20AC

// GB18030Encoder implements the GB18030 encoder algorithm, including its
// GBK mode (spec §4.8). The mode is immutable after construction.
type GB18030Encoder struct {
	mode    GB18030Mode
	twoByte index.Table
	ranges  *index.RangesTable
}

// NewGB18030Encoder returns the production GB18030Encoder for mode, backed
// by the package's default gb18030 index and ranges table.
func NewGB18030Encoder(mode GB18030Mode) *GB18030Encoder {
	return newGB18030Encoder(mode, defaultGB18030(), defaultGB18030Ranges())
}

func newGB18030Encoder(mode GB18030Mode, twoByte index.Table, ranges *index.RangesTable) *GB18030Encoder {
	return &GB18030Encoder{mode: mode, twoByte: twoByte, ranges: ranges}
}

// Name implements Encoder.
func (e *GB18030Encoder) Name() string {
	if e.mode == GB18030ModeGBK {
		return "gbk"
	}
	return "gb18030"
}

// Process implements Encoder.
func (e *GB18030Encoder) Process(input []rune, mode ErrorMode, sink Sink) error {
	for _, c := range input {
		if err := e.processOne(c, mode, sink); err != nil {
			return err
		}
	}
	return nil
}

func (e *GB18030Encoder) processOne(c rune, mode ErrorMode, sink Sink) error {
	if c < 0x80 {
		return sink(byte(c), Ordinary)
	}
	if c == gb18030PermanentHole {
		return handleUnrepresentable(c, mode, sink)
	}
	if e.mode == GB18030ModeGBK && c == gb18030EuroSign {
		return sink(0x80, Ordinary)
	}

	if p, ok := e.twoByte.Pointer(c); ok {
		lead := byte(p/190 + 0x81)
		trail := p % 190
		offset := 0x40
		if trail >= 0x3F {
			offset = 0x41
		}
		if err := sink(lead, Ordinary); err != nil {
			return err
		}
		return sink(byte(trail+offset), Ordinary)
	}

	if e.mode == GB18030ModeGBK {
		return handleUnrepresentable(c, mode, sink)
	}

	p, ok := e.ranges.Pointer(c)
	if !ok {
		return handleUnrepresentable(c, mode, sink)
	}
	b1 := p / 12600
	p %= 12600
	b2 := p / 1260
	p %= 1260
	b3 := p / 10
	b4 := p % 10
	if err := sink(byte(b1+0x81), Ordinary); err != nil {
		return err
	}
	if err := sink(byte(b2+0x30), Ordinary); err != nil {
		return err
	}
	if err := sink(byte(b3+0x81), Ordinary); err != nil {
		return err
	}
	return sink(byte(b4+0x30), Ordinary)
}
