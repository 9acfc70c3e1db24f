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

import "strings"

// Registry is a case-insensitive lookup from canonical encoding name to a
// shared Encoder instance, grounded on
// go/mysql/collations/collation.go's registerByName/LookupByName pattern.
// The zero value is an empty Registry; use NewRegistry or DefaultRegistry.
type Registry struct {
	byName map[string]Encoder
}

// NewRegistry returns an empty Registry. Use Register to populate it, or
// call DefaultRegistry for the one pre-populated with all eight built-in
// encodings.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Encoder)}
}

// Register adds enc under its own Name(), case-insensitively. It panics on
// a duplicate name, mirroring collation.go's register — a duplicate
// registration is a programming error discovered at init time, not a
// runtime condition callers should need to handle.
func (r *Registry) Register(enc Encoder) {
	if r.byName == nil {
		r.byName = make(map[string]Encoder)
	}
	key := strings.ToLower(enc.Name())
	if _, found := r.byName[key]; found {
		panic("encoding: duplicate encoder registered for name " + enc.Name())
	}
	r.byName[key] = enc
}

// EncoderForExactName returns the Encoder registered under the canonical
// name, matched case-insensitively, and whether one was found.
func (r *Registry) EncoderForExactName(name string) (Encoder, bool) {
	enc, ok := r.byName[strings.ToLower(name)]
	return enc, ok
}

// LabelNormalizer resolves an arbitrary, possibly non-canonical encoding
// label (as it might appear in an HTTP Content-Type header or an HTML meta
// tag) to the canonical name EncoderForExactName expects. Label
// normalization is explicitly out of scope for this module (spec §1); this
// interface is the seam external collaborators plug into. See
// HTMLIndexNormalizer for the default implementation.
//go:generate mockgen -source registry.go -destination ../mocks/mock_labelnormalizer.go -package mocks LabelNormalizer
type LabelNormalizer interface {
	NormalizeLabel(label string) (name string, ok bool)
}

// EncoderFor normalizes label through normalizer and forwards the
// resulting canonical name to EncoderForExactName.
func (r *Registry) EncoderFor(label string, normalizer LabelNormalizer) (Encoder, bool) {
	name, ok := normalizer.NormalizeLabel(label)
	if !ok {
		return nil, false
	}
	return r.EncoderForExactName(name)
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewUTF8Encoder())
	r.Register(NewBig5Encoder())
	r.Register(NewEUCJPEncoder())
	r.Register(NewISO2022JPEncoder())
	r.Register(NewShiftJISEncoder())
	r.Register(NewEUCKREncoder())
	r.Register(NewGB18030Encoder(GB18030ModeFull))
	r.Register(NewGB18030Encoder(GB18030ModeGBK))
	return r
}

// DefaultRegistry returns the package-wide Registry pre-populated with the
// eight built-in encodings (spec §6: utf-8, big5, euc-jp, iso-2022-jp,
// shift_jis, euc-kr, gb18030, gbk). Callers that only need the built-ins
// can use the package-level EncoderForExactName / EncoderFor instead of
// calling DefaultRegistry directly.
func DefaultRegistry() *Registry { return defaultRegistry }

// EncoderForExactName looks up name in DefaultRegistry.
func EncoderForExactName(name string) (Encoder, bool) {
	return defaultRegistry.EncoderForExactName(name)
}

// EncoderFor normalizes label through normalizer and looks up the result in
// DefaultRegistry.
func EncoderFor(label string, normalizer LabelNormalizer) (Encoder, bool) {
	return defaultRegistry.EncoderFor(label, normalizer)
}
