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

// iso2022JPState is the ISO-2022-JP shift state (spec §3). It is local to
// one Process call, never shared across encoder instances.
type iso2022JPState int

const (
	iso2022JPStateASCII iso2022JPState = iota
	iso2022JPStateRoman
	iso2022JPStateJIS0208
)

// ISO2022JPEncoder implements the ISO-2022-JP encoder algorithm: an ASCII /
// Roman / jis0208 shift-state machine that emits escape sequences as it
// transitions, flushed back to ASCII at end of input.
type ISO2022JPEncoder struct {
	jis0208  index.Table
	katakana index.ReverseTable
}

// NewISO2022JPEncoder returns the production ISO2022JPEncoder, backed by
// the package's default jis0208 and katakana indices.
func NewISO2022JPEncoder() *ISO2022JPEncoder {
	return newISO2022JPEncoder(defaultJIS0208(), defaultISO2022JPKatakana())
}

func newISO2022JPEncoder(jis0208 index.Table, katakana index.ReverseTable) *ISO2022JPEncoder {
	return &ISO2022JPEncoder{jis0208: jis0208, katakana: katakana}
}

// Name implements Encoder.
func (*ISO2022JPEncoder) Name() string { return "iso-2022-jp" }

// Process implements Encoder.
func (e *ISO2022JPEncoder) Process(input []rune, mode ErrorMode, sink Sink) error {
	state := iso2022JPStateASCII
	for _, c := range input {
		newState, err := e.processItem(c, state, mode, sink)
		if err != nil {
			return err
		}
		state = newState
	}
	if state != iso2022JPStateASCII {
		if err := emitASCIIEscape(sink); err != nil {
			return err
		}
	}
	return nil
}

// processItem runs one code point through the state machine (spec §4.4),
// returning the state it leaves the encoder in. Several branches re-drive
// c against a newly-set state instead of mutating a shared input queue, as
// spec §9 notes is an equally correct reading of the standard's "restore to
// queue" phrasing; each re-drive is a direct recursive call, bounded by the
// same "at most two transitions before an emission" argument.
func (e *ISO2022JPEncoder) processItem(c rune, state iso2022JPState, mode ErrorMode, sink Sink) (iso2022JPState, error) {
	if state != iso2022JPStateJIS0208 && (c == 0x0E || c == 0x0F || c == 0x1B) {
		return state, handleUnrepresentable(0xFFFD, mode, sink)
	}

	if state == iso2022JPStateASCII && c < 0x80 {
		return state, sink(byte(c), Ordinary)
	}

	if state == iso2022JPStateRoman && ((c < 0x80 && c != 0x5C && c != 0x7E) || c == 0x00A5 || c == 0x203E) {
		switch c {
		case 0x00A5:
			return state, sink(0x5C, Ordinary)
		case 0x203E:
			return state, sink(0x7E, Ordinary)
		default:
			return state, sink(byte(c), Ordinary)
		}
	}

	if c < 0x80 && state != iso2022JPStateASCII {
		if err := emitASCIIEscape(sink); err != nil {
			return state, err
		}
		return e.processItem(c, iso2022JPStateASCII, mode, sink)
	}

	if (c == 0x00A5 || c == 0x203E) && state != iso2022JPStateRoman {
		if err := emitEscape(sink, 0x1B, 0x28, 0x4A); err != nil {
			return state, err
		}
		return e.processItem(c, iso2022JPStateRoman, mode, sink)
	}

	if c == 0x2212 {
		c = 0xFF0D
	}

	if c >= 0xFF61 && c <= 0xFF9F {
		rewritten, ok := e.katakana.CodePoint(int(c - 0xFF61))
		if ok {
			c = rewritten
		}
	}

	p, ok := e.jis0208.Pointer(c)
	if !ok {
		if state == iso2022JPStateJIS0208 {
			if err := emitASCIIEscape(sink); err != nil {
				return state, err
			}
			return e.processItem(c, iso2022JPStateASCII, mode, sink)
		}
		return state, handleUnrepresentable(c, mode, sink)
	}

	if state != iso2022JPStateJIS0208 {
		if err := emitEscape(sink, 0x1B, 0x24, 0x42); err != nil {
			return state, err
		}
		return e.processItem(c, iso2022JPStateJIS0208, mode, sink)
	}

	if err := sink(byte(p/94+0x21), Ordinary); err != nil {
		return state, err
	}
	if err := sink(byte(p%94+0x21), Ordinary); err != nil {
		return state, err
	}
	return state, nil
}

func emitASCIIEscape(sink Sink) error {
	return emitEscape(sink, 0x1B, 0x28, 0x42)
}

func emitEscape(sink Sink, bytes ...byte) error {
	for _, b := range bytes {
		if err := sink(b, Ordinary); err != nil {
			return err
		}
	}
	return nil
}
