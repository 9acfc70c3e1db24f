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

import "fmt"

// UTF8Encoder implements the UTF-8 encoder algorithm. Every valid scalar
// value is representable, so it never invokes the error handler and mode
// is accepted only to satisfy the Encoder interface.
type UTF8Encoder struct{}

// NewUTF8Encoder returns a ready-to-use UTF8Encoder. UTF8Encoder carries no
// state, so the zero value works equally well.
func NewUTF8Encoder() *UTF8Encoder { return &UTF8Encoder{} }

// Name implements Encoder.
func (*UTF8Encoder) Name() string { return "utf-8" }

// Process implements Encoder.
func (*UTF8Encoder) Process(input []rune, _ ErrorMode, sink Sink) error {
	for _, c := range input {
		if c >= 0 && c < 0x80 {
			if err := sink(byte(c), Ordinary); err != nil {
				return err
			}
			continue
		}

		var count int
		var offset byte
		switch {
		case c < 0:
			panic(fmt.Sprintf("encoding: UTF8Encoder.Process: %#x is not a valid Unicode scalar value", uint32(c)))
		case c <= 0x7FF:
			count, offset = 1, 0xC0
		case c <= 0xFFFF:
			count, offset = 2, 0xE0
		case c <= 0x10FFFF:
			count, offset = 3, 0xF0
		default:
			panic(fmt.Sprintf("encoding: UTF8Encoder.Process: %#x is not a valid Unicode scalar value", uint32(c)))
		}

		if err := sink(byte(c>>(6*uint(count)))+offset, Ordinary); err != nil {
			return err
		}
		for k := count; k >= 1; k-- {
			b := 0x80 | byte((c>>(6*uint(k-1)))&0x3F)
			if err := sink(b, Ordinary); err != nil {
				return err
			}
		}
	}
	return nil
}
