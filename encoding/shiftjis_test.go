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

	"github.com/whatwg-encoding/goencoding/encoding/internal/index"
)

func TestShiftJISEncoder_ASCIIFastPathIncluding0x80(t *testing.T) {
	enc := newShiftJISEncoder(index.MapTable{})
	for c := rune(0); c <= 0x80; c++ {
		var s capturingSink
		require.NoError(t, enc.Process([]rune{c}, ModeReplacement, s.sink))
		assert.Equal(t, []byte{byte(c)}, s.bytes)
	}
}

func TestShiftJISEncoder_ConcreteScenario(t *testing.T) {
	enc := newShiftJISEncoder(index.MapTable{0x4E9C: 1410})
	var s capturingSink
	require.NoError(t, enc.Process([]rune{0x00A5, 0x4E9C}, ModeReplacement, s.sink))
	assert.Equal(t, []byte{0x5C, 0x88, 0x9F}, s.bytes)
}

func TestShiftJISEncoder_KatakanaRange(t *testing.T) {
	enc := newShiftJISEncoder(index.MapTable{})
	var s capturingSink
	require.NoError(t, enc.Process([]rune{0xFF61, 0xFF9F}, ModeReplacement, s.sink))
	assert.Equal(t, []byte{0xA1, 0xDF}, s.bytes)
}

func TestShiftJISEncoder_ExcludedPointerRange(t *testing.T) {
	// Pointers in [8272, 8835] are excluded from Shift_JIS's output path
	// even though they resolve in the underlying jis0208 index.
	enc := newShiftJISEncoder(index.MapTable{0x9999: 8500})
	var s capturingSink
	require.NoError(t, enc.Process([]rune{0x9999}, ModeReplacement, s.sink))
	assert.Equal(t, []byte{0xFF, 0xFD}, s.bytes)
}

func TestShiftJISEncoder_JustOutsideExcludedRange(t *testing.T) {
	enc := newShiftJISEncoder(index.MapTable{0x9999: 8271})
	var s capturingSink
	require.NoError(t, enc.Process([]rune{0x9999}, ModeReplacement, s.sink))
	assert.NotEqual(t, []byte{0xFF, 0xFD}, s.bytes)
}

func TestShiftJISEncoder_Fatal(t *testing.T) {
	enc := newShiftJISEncoder(index.MapTable{})
	err := enc.Process([]rune{0x4E9C}, ModeFatal, func(byte, EscapeMarker) error { return nil })
	var fatal FatalEncodingError
	require.ErrorAs(t, err, &fatal)
}
