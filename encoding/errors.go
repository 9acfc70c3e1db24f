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

// FatalEncodingError is returned by Encoder.Process when ErrorMode is
// ModeFatal and the input contains a code point the target encoding cannot
// represent. Processing stops as soon as this error is produced; no further
// Sink calls are made.
type FatalEncodingError struct {
	CodePoint rune
}

func (e FatalEncodingError) Error() string {
	return fmt.Sprintf("encoding: code point U+%04X is unrepresentable in this encoding", e.CodePoint)
}
