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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF8Encoder_ASCIIFastPath(t *testing.T) {
	enc := NewUTF8Encoder()
	for c := rune(0); c <= 0x7F; c++ {
		for _, mode := range []ErrorMode{ModeReplacement, ModeHTML, ModeFatal} {
			var s capturingSink
			require.NoError(t, enc.Process([]rune{c}, mode, s.sink))
			assert.Equal(t, []byte{byte(c)}, s.bytes)
			assert.Equal(t, []EscapeMarker{Ordinary}, s.markers)
		}
	}
}

func TestUTF8Encoder_ConcreteScenario(t *testing.T) {
	enc := NewUTF8Encoder()
	var s capturingSink
	input := []rune{0x0041, 0x00E9, 0x4E2D, 0x1F600}
	require.NoError(t, enc.Process(input, ModeReplacement, s.sink))
	assert.Equal(t, []byte{0x41, 0xC3, 0xA9, 0xE4, 0xB8, 0xAD, 0xF0, 0x9F, 0x98, 0x80}, s.bytes)
	for _, m := range s.markers {
		assert.Equal(t, Ordinary, m)
	}
}

func TestUTF8Encoder_NeverInvokesErrorHandler(t *testing.T) {
	enc := NewUTF8Encoder()
	input := []rune{}
	for c := rune(0); c <= 0x10FFFF; c += 997 {
		if c >= 0xD800 && c <= 0xDFFF {
			continue
		}
		input = append(input, c)
	}
	var s capturingSink
	require.NoError(t, enc.Process(input, ModeFatal, s.sink))
	assert.NotEmpty(t, s.bytes)
}

func TestUTF8Encoder_RoundTrip(t *testing.T) {
	enc := NewUTF8Encoder()
	input := []rune{0x41, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF}
	var s capturingSink
	require.NoError(t, enc.Process(input, ModeFatal, s.sink))

	decoded := []rune(string(s.bytes))
	assert.Equal(t, input, decoded)
}

func TestUTF8Encoder_SinkPropagation(t *testing.T) {
	enc := NewUTF8Encoder()
	s := capturingSink{failAfter: 3}
	err := enc.Process([]rune{0x41, 0x1F600}, ModeReplacement, s.sink)
	assert.ErrorIs(t, err, errSinkFailed)
	assert.Equal(t, 3, s.calls)
}

func TestUTF8Encoder_OutOfRangePanics(t *testing.T) {
	enc := NewUTF8Encoder()
	assert.Panics(t, func() {
		_ = enc.Process([]rune{0x110000}, ModeFatal, func(byte, EscapeMarker) error { return nil })
	})
}
