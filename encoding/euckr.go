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

// EUCKREncoder implements the EUC-KR encoder algorithm.
type EUCKREncoder struct {
	eucKR index.Table
}

// NewEUCKREncoder returns the production EUCKREncoder, backed by the
// package's default euc-kr index.
func NewEUCKREncoder() *EUCKREncoder {
	return newEUCKREncoder(defaultEUCKR())
}

func newEUCKREncoder(eucKR index.Table) *EUCKREncoder {
	return &EUCKREncoder{eucKR: eucKR}
}

// Name implements Encoder.
func (*EUCKREncoder) Name() string { return "euc-kr" }

// Process implements Encoder.
func (e *EUCKREncoder) Process(input []rune, mode ErrorMode, sink Sink) error {
	for _, c := range input {
		if c < 0x80 {
			if err := sink(byte(c), Ordinary); err != nil {
				return err
			}
			continue
		}

		p, ok := e.eucKR.Pointer(c)
		if !ok {
			if err := handleUnrepresentable(c, mode, sink); err != nil {
				return err
			}
			continue
		}
		if err := sink(byte(p/190+0x81), Ordinary); err != nil {
			return err
		}
		if err := sink(byte(p%190+0x41), Ordinary); err != nil {
			return err
		}
	}
	return nil
}
