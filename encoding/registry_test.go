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
	"go.uber.org/mock/gomock"

	"github.com/whatwg-encoding/goencoding/mocks"
)

func TestDefaultRegistry_AllEightNames(t *testing.T) {
	names := []string{
		"utf-8", "big5", "euc-jp", "iso-2022-jp",
		"shift_jis", "euc-kr", "gb18030", "gbk",
	}
	for _, name := range names {
		enc, ok := EncoderForExactName(name)
		require.True(t, ok, "expected an encoder for %q", name)
		assert.Equal(t, name, enc.Name())
	}
}

func TestDefaultRegistry_CaseInsensitive(t *testing.T) {
	enc, ok := EncoderForExactName("GB18030")
	require.True(t, ok)
	assert.Equal(t, "gb18030", enc.Name())

	enc, ok = EncoderForExactName("Shift_JIS")
	require.True(t, ok)
	assert.Equal(t, "shift_jis", enc.Name())
}

func TestDefaultRegistry_Unknown(t *testing.T) {
	_, ok := EncoderForExactName("utf-16")
	assert.False(t, ok)
}

func TestRegistry_Register_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(NewUTF8Encoder())
	assert.Panics(t, func() { r.Register(NewUTF8Encoder()) })
}

func TestRegistry_EncoderFor_UsesNormalizer(t *testing.T) {
	ctrl := gomock.NewController(t)
	normalizer := mocks.NewMockLabelNormalizer(ctrl)
	normalizer.EXPECT().NormalizeLabel("ISO2022JP").Return("iso-2022-jp", true)

	enc, ok := EncoderFor("ISO2022JP", normalizer)
	require.True(t, ok)
	assert.Equal(t, "iso-2022-jp", enc.Name())
}

func TestRegistry_EncoderFor_UnnormalizableLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	normalizer := mocks.NewMockLabelNormalizer(ctrl)
	normalizer.EXPECT().NormalizeLabel("nonsense").Return("", false)

	_, ok := EncoderFor("nonsense", normalizer)
	assert.False(t, ok)
}

func TestHTMLIndexNormalizer_KnownLabels(t *testing.T) {
	var n HTMLIndexNormalizer
	tests := map[string]string{
		"utf8":      "utf-8",
		"sjis":      "shift_jis",
		"euc-kr":    "euc-kr",
		"gbk":       "gbk",
		"big5-hkscs": "big5",
	}
	for label, want := range tests {
		name, ok := n.NormalizeLabel(label)
		require.True(t, ok, "label %q should normalize", label)
		assert.Equal(t, want, name)
	}
}

func TestHTMLIndexNormalizer_UnknownLabel(t *testing.T) {
	var n HTMLIndexNormalizer
	_, ok := n.NormalizeLabel("not-a-real-encoding")
	assert.False(t, ok)
}
