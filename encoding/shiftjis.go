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

// shiftJISExcludedRangeStart and shiftJISExcludedRangeEnd bound the band of
// jis0208 pointers the standard excludes from Shift_JIS's output path
// because they duplicate mappings found elsewhere in JIS0208: a code point
// whose jis0208 pointer falls in this band is treated as unrepresentable.
const (
	shiftJISExcludedRangeStart = 8272
	shiftJISExcludedRangeEnd   = 8835
)

// ShiftJISEncoder implements the Shift_JIS encoder algorithm.
type ShiftJISEncoder struct {
	jis0208 index.Table
}

// NewShiftJISEncoder returns the production ShiftJISEncoder, backed by the
// package's default jis0208 index.
func NewShiftJISEncoder() *ShiftJISEncoder {
	return newShiftJISEncoder(defaultJIS0208())
}

func newShiftJISEncoder(jis0208 index.Table) *ShiftJISEncoder {
	return &ShiftJISEncoder{jis0208: jis0208}
}

// Name implements Encoder.
func (*ShiftJISEncoder) Name() string { return "shift_jis" }

// Process implements Encoder.
func (e *ShiftJISEncoder) Process(input []rune, mode ErrorMode, sink Sink) error {
	for _, c := range input {
		if err := e.processOne(c, mode, sink); err != nil {
			return err
		}
	}
	return nil
}

func (e *ShiftJISEncoder) processOne(c rune, mode ErrorMode, sink Sink) error {
	switch {
	case c <= 0x80:
		return sink(byte(c), Ordinary)
	case c == 0x00A5:
		return sink(0x5C, Ordinary)
	case c == 0x203E:
		return sink(0x7E, Ordinary)
	case c >= 0xFF61 && c <= 0xFF9F:
		return sink(byte(c-0xFF61+0xA1), Ordinary)
	}

	if c == 0x2212 {
		c = 0xFF0D
	}

	p, ok := e.shiftJISPointer(c)
	if !ok {
		return handleUnrepresentable(c, mode, sink)
	}

	lead, trail := p/188, p%188
	leadOffset := byte(0x81)
	if lead >= 0x1F {
		leadOffset = 0xC1
	}
	offset := byte(0x40)
	if trail >= 0x3F {
		offset = 0x41
	}
	if err := sink(byte(lead)+leadOffset, Ordinary); err != nil {
		return err
	}
	return sink(byte(trail)+offset, Ordinary)
}

// shiftJISPointer implements spec §4.5 step 5: the jis0208 pointer for c,
// with the standard's duplicate-mapping exclusion band removed.
func (e *ShiftJISEncoder) shiftJISPointer(c rune) (int, bool) {
	p, ok := e.jis0208.Pointer(c)
	if !ok {
		return 0, false
	}
	if p >= shiftJISExcludedRangeStart && p <= shiftJISExcludedRangeEnd {
		return 0, false
	}
	return p, true
}
