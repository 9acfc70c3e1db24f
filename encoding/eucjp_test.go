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

func fakeJIS0208() index.Table {
	return index.MapTable{
		0x4E9C: 1410, // matches spec §8 scenario 2's worked example
		0x3042: 283,
	}
}

func TestEUCJPEncoder_ASCIIFastPath(t *testing.T) {
	enc := newEUCJPEncoder(fakeJIS0208())
	for c := rune(0); c < 0x80; c++ {
		var s capturingSink
		require.NoError(t, enc.Process([]rune{c}, ModeReplacement, s.sink))
		assert.Equal(t, []byte{byte(c)}, s.bytes)
	}
}

func TestEUCJPEncoder_ConcreteScenario(t *testing.T) {
	enc := newEUCJPEncoder(fakeJIS0208())
	var s capturingSink
	input := []rune{0x00A5, 0x203E, 0xFF61, 0x4E9C}
	require.NoError(t, enc.Process(input, ModeReplacement, s.sink))
	assert.Equal(t, []byte{0x5C, 0x7E, 0x8E, 0xA1, 0xB0, 0xA1}, s.bytes)
}

func TestEUCJPEncoder_MinusSignRewrite(t *testing.T) {
	table := index.MapTable{0xFF0D: 500}
	enc := newEUCJPEncoder(table)
	var s capturingSink
	require.NoError(t, enc.Process([]rune{0x2212}, ModeReplacement, s.sink))
	assert.Equal(t, []byte{byte(500/94 + 0xA1), byte(500%94 + 0xA1)}, s.bytes)
}

func TestEUCJPEncoder_Unrepresentable(t *testing.T) {
	enc := newEUCJPEncoder(index.MapTable{})
	var s capturingSink
	require.NoError(t, enc.Process([]rune{0x4E9C}, ModeReplacement, s.sink))
	assert.Equal(t, []byte{0xFF, 0xFD}, s.bytes)
}

func TestEUCJPEncoder_Fatal(t *testing.T) {
	enc := newEUCJPEncoder(index.MapTable{})
	err := enc.Process([]rune{0x4E9C}, ModeFatal, func(byte, EscapeMarker) error { return nil })
	var fatal FatalEncodingError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, rune(0x4E9C), fatal.CodePoint)
}
