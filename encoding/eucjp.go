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

// EUCJPEncoder implements the EUC-JP encoder algorithm.
type EUCJPEncoder struct {
	jis0208 index.Table
}

// NewEUCJPEncoder returns the production EUCJPEncoder, backed by the
// package's default jis0208 index.
func NewEUCJPEncoder() *EUCJPEncoder {
	return newEUCJPEncoder(defaultJIS0208())
}

func newEUCJPEncoder(jis0208 index.Table) *EUCJPEncoder {
	return &EUCJPEncoder{jis0208: jis0208}
}

// Name implements Encoder.
func (*EUCJPEncoder) Name() string { return "euc-jp" }

// Process implements Encoder.
func (e *EUCJPEncoder) Process(input []rune, mode ErrorMode, sink Sink) error {
	for _, c := range input {
		if err := e.processOne(c, mode, sink); err != nil {
			return err
		}
	}
	return nil
}

func (e *EUCJPEncoder) processOne(c rune, mode ErrorMode, sink Sink) error {
	switch {
	case c < 0x80:
		return sink(byte(c), Ordinary)
	case c == 0x00A5:
		return sink(0x5C, Ordinary)
	case c == 0x203E:
		return sink(0x7E, Ordinary)
	case c >= 0xFF61 && c <= 0xFF9F:
		if err := sink(0x8E, Ordinary); err != nil {
			return err
		}
		return sink(byte(c-0xFF61+0xA1), Ordinary)
	}

	if c == 0x2212 {
		c = 0xFF0D
	}

	p, ok := e.jis0208.Pointer(c)
	if !ok {
		return handleUnrepresentable(c, mode, sink)
	}
	if err := sink(byte(p/94+0xA1), Ordinary); err != nil {
		return err
	}
	return sink(byte(p%94+0xA1), Ordinary)
}
