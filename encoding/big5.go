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

// Big5Encoder implements the Big5 encoder algorithm.
type Big5Encoder struct {
	big5 index.Table
}

// NewBig5Encoder returns the production Big5Encoder, backed by the
// package's default big5 index.
func NewBig5Encoder() *Big5Encoder {
	return newBig5Encoder(defaultBig5())
}

func newBig5Encoder(big5 index.Table) *Big5Encoder {
	return &Big5Encoder{big5: big5}
}

// Name implements Encoder.
func (*Big5Encoder) Name() string { return "big5" }

// Process implements Encoder.
func (e *Big5Encoder) Process(input []rune, mode ErrorMode, sink Sink) error {
	for _, c := range input {
		if c < 0x80 {
			if err := sink(byte(c), Ordinary); err != nil {
				return err
			}
			continue
		}

		p, ok := e.big5.Pointer(c)
		if !ok {
			if err := handleUnrepresentable(c, mode, sink); err != nil {
				return err
			}
			continue
		}

		lead := byte(p/157 + 0x81)
		trail := p % 157
		offset := 0x40
		if trail >= 0x3F {
			offset = 0x62
		}
		if err := sink(lead, Ordinary); err != nil {
			return err
		}
		if err := sink(byte(trail+offset), Ordinary); err != nil {
			return err
		}
	}
	return nil
}
