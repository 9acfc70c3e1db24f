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

// Package encoding implements the encoder half of the WHATWG Encoding
// Standard: turning a sequence of Unicode scalar values into bytes in one
// of eight legacy or modern character encodings.
//
// Decoders, encoding-label normalization, and the WHATWG index tables
// themselves are treated as external collaborators (see
// encoding/internal/index) and are out of scope for this package.
package encoding

// ErrorMode controls how Encoder.Process handles a code point the target
// encoding cannot represent. It is fixed for the duration of one Process
// call.
type ErrorMode int

const (
	// ModeReplacement emits the two-byte sentinel 0xFF 0xFD for every
	// unrepresentable code point and continues processing.
	ModeReplacement ErrorMode = iota
	// ModeHTML emits a "&#<decimal>;" numeric character reference for
	// every unrepresentable code point and continues processing.
	ModeHTML
	// ModeFatal aborts processing with a FatalEncodingError on the first
	// unrepresentable code point.
	ModeFatal
)

func (m ErrorMode) String() string {
	switch m {
	case ModeReplacement:
		return "replacement"
	case ModeHTML:
		return "html"
	case ModeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// EscapeMarker tags each byte delivered to a Sink, distinguishing bytes
// produced by the encoder's normal, data-driven output path from the
// sentinel and delimiter bytes produced by the error-handler fallback path.
// Consumers such as URL form serializers use this to percent-escape those
// fallback bytes unconditionally.
type EscapeMarker int

const (
	// Ordinary marks a byte produced by an encoding's normal mapping, and
	// also each decimal digit of an HTML-mode "&#<decimal>;" reference.
	Ordinary EscapeMarker = iota
	// AlwaysEscape marks the 0xFF 0xFD pair of the Replacement error
	// handler and the '&', '#' and ';' of an HTML-mode reference.
	AlwaysEscape
)

// Sink receives the encoded byte stream one byte at a time, in strict
// left-to-right output order, tagged with an EscapeMarker. A non-nil error
// aborts Process immediately; no further Sink calls are made.
type Sink func(b byte, marker EscapeMarker) error

// Encoder is the uniform contract every codec in this package implements.
// Implementations are stateless across calls: any internal machinery
// (ISO-2022-JP's shift state, for instance) is local to one Process
// invocation and is reset on return.
type Encoder interface {
	// Name reports the canonical, lowercase encoding name used by the
	// Registry (e.g. "gb18030", "iso-2022-jp").
	Name() string

	// Process encodes input under mode, delivering bytes to sink in
	// order. It returns the first error a Sink call produces, or a
	// FatalEncodingError if mode is ModeFatal and input contains a code
	// point the encoding cannot represent. input must already be a valid
	// sequence of Unicode scalar values (no surrogates); Process does not
	// validate it.
	Process(input []rune, mode ErrorMode, sink Sink) error
}

// handleUnrepresentable applies the shared error-handler policy (spec
// §4.1) for codePoint under mode, invoking sink for Replacement and HTML
// modes or returning a FatalEncodingError for Fatal mode.
func handleUnrepresentable(codePoint rune, mode ErrorMode, sink Sink) error {
	switch mode {
	case ModeReplacement:
		if err := sink(0xFF, AlwaysEscape); err != nil {
			return err
		}
		return sink(0xFD, AlwaysEscape)

	case ModeHTML:
		if err := sink('&', AlwaysEscape); err != nil {
			return err
		}
		if err := sink('#', AlwaysEscape); err != nil {
			return err
		}
		for _, d := range decimalDigits(codePoint) {
			if err := sink(d, Ordinary); err != nil {
				return err
			}
		}
		return sink(';', AlwaysEscape)

	case ModeFatal:
		return FatalEncodingError{CodePoint: codePoint}

	default:
		return FatalEncodingError{CodePoint: codePoint}
	}
}

// decimalDigits returns the ASCII decimal digits of n, most significant
// first, with a single '0' for n == 0.
func decimalDigits(n rune) []byte {
	if n == 0 {
		return []byte{'0'}
	}
	var rev []byte
	for v := uint32(n); v > 0; v /= 10 {
		rev = append(rev, byte('0'+v%10))
	}
	out := make([]byte, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}
