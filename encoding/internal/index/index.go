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

// Package index models the WHATWG Encoding Standard's index tables as
// injectable collaborators rather than baked-in data. Encoders in the
// parent package depend on the Table / ReverseTable interfaces and the
// RangesTable type, not on any particular data source, the same way
// go/mysql/collations/internal/charset.Convert depends on an injected
// Charset rather than reaching for a package-level table.
package index

import "sort"

// Table is a total function from a Unicode code point to a codec pointer,
// as described by one of the WHATWG index-*.txt tables (jis0208, euc-kr,
// big5, gb18030). ok is false when the code point has no entry.
type Table interface {
	Pointer(codePoint rune) (pointer int, ok bool)
}

// ReverseTable is a total function from a codec pointer back to a Unicode
// code point, as used for index-iso-2022-jp-katakana.
type ReverseTable interface {
	CodePoint(pointer int) (codePoint rune, ok bool)
}

// MapTable is a Table backed by a plain map, suitable both for a seeded
// default table and for hand-built test fixtures.
type MapTable map[rune]int

// Pointer implements Table.
func (t MapTable) Pointer(codePoint rune) (int, bool) {
	p, ok := t[codePoint]
	return p, ok
}

// ReverseMapTable is a ReverseTable backed by a plain map.
type ReverseMapTable map[int]rune

// CodePoint implements ReverseTable.
func (t ReverseMapTable) CodePoint(pointer int) (rune, bool) {
	cp, ok := t[pointer]
	return cp, ok
}

// RangeEntry is one row of the gb18030-ranges table: the first code point
// of the range and the pointer it maps to. Entries interpolate linearly
// until the next entry's code point.
type RangeEntry struct {
	CodePoint rune
	Pointer   int
}

// RangesTable implements the GB18030 ranges fallback (spec §4.8): a
// sorted-by-code-point table searched for the greatest entry whose code
// point is <= the query, with the pointer offset by the distance from that
// entry's code point.
type RangesTable struct {
	entries []RangeEntry
}

// NewRangesTable copies entries, sorts them ascending by CodePoint, and
// returns a ready-to-query RangesTable. entries need not be pre-sorted.
func NewRangesTable(entries []RangeEntry) *RangesTable {
	sorted := make([]RangeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CodePoint < sorted[j].CodePoint })
	return &RangesTable{entries: sorted}
}

// KatakanaTable is the index-iso-2022-jp-katakana table (spec's
// iso_2022_jp_katakana): pointer p (0..62, i.e. halfwidth katakana
// U+FF61+p) maps to the fullwidth code point that jis0208 can encode. It is
// still modeled as a ReverseTable, not inlined data at the call site, so
// the encoder depends on the same kind of interface for every index it
// consults.
type KatakanaTable struct{}

var katakanaCodePoints = [63]rune{
	0x3002, 0x300C, 0x300D, 0x3001, 0x30FB, 0x30F2, 0x30A1, 0x30A3, 0x30A5, 0x30A7, 0x30A9,
	0x30E3, 0x30E5, 0x30E7, 0x30C3, 0x30FC, 0x30A2, 0x30A4, 0x30A6, 0x30A8, 0x30AA, 0x30AB,
	0x30AD, 0x30AF, 0x30B1, 0x30B3, 0x30B5, 0x30B7, 0x30B9, 0x30BB, 0x30BD, 0x30BF, 0x30C1,
	0x30C4, 0x30C6, 0x30C8, 0x30CA, 0x30CB, 0x30CC, 0x30CD, 0x30CE, 0x30CF, 0x30D2, 0x30D5,
	0x30D8, 0x30DB, 0x30DE, 0x30DF, 0x30E0, 0x30E1, 0x30E2, 0x30E4, 0x30E6, 0x30E8, 0x30E9,
	0x30EA, 0x30EB, 0x30EC, 0x30ED, 0x30EF, 0x30F3, 0x309B, 0x309C,
}

// CodePoint implements ReverseTable.
func (KatakanaTable) CodePoint(pointer int) (rune, bool) {
	if pointer < 0 || pointer > 0x3E {
		return 0, false
	}
	return katakanaCodePoints[pointer], true
}

// gb18030Hole is the single permanent exception the standard carves out of
// the ranges table: U+E7C7 maps to pointer 7457 regardless of where it
// falls in the sorted ranges.
const gb18030Hole rune = 0xE7C7
const gb18030HolePointer = 7457

// Pointer returns the gb18030-ranges pointer for codePoint. ok is false
// only if codePoint falls before the first range entry (callers are
// expected to seed entries starting at U+0080 so this cannot happen for
// any valid non-ASCII scalar value).
func (t *RangesTable) Pointer(codePoint rune) (int, bool) {
	if codePoint == gb18030Hole {
		return gb18030HolePointer, true
	}
	// Predecessor search: the greatest entry with CodePoint <= codePoint.
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].CodePoint > codePoint
	})
	if i == 0 {
		return 0, false
	}
	entry := t.entries[i-1]
	return entry.Pointer + int(codePoint-entry.CodePoint), true
}
