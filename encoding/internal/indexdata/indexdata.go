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

// Package indexdata supplies the default, process-wide index.Table /
// index.ReverseTable instances that back the package-level encoders
// returned by encoding.DefaultRegistry.
//
// Index-table construction is explicitly out of scope for this module
// (spec §1, "OUT OF SCOPE: index-table construction — the code-point-to-
// pointer indices are treated as externally provided total functions").
// The tables below are therefore a small, illustrative seed — a handful
// of verifiably-consistent entries per codec, not the full ~10,000-entry
// WHATWG-published index — wired through the same index.Table /
// index.RangesTable interfaces a complete generated table would use. A
// production deployment swaps this file for one generated from the
// WHATWG index-*.txt sources (see DESIGN.md).
package indexdata

import "github.com/whatwg-encoding/goencoding/encoding/internal/index"

// JIS0208 backs EUC-JP, ISO-2022-JP, and Shift_JIS.
var JIS0208 index.Table = index.MapTable{
	0x3042: 283,  // あ, ku 4 ten 2
	0x30A2: 377,  // ア, ku 5 ten 2
	0x4E9C: 1410, // 亜, ku 16 ten 1
	0x65E5: 2109, // 日
	0x672C: 2110, // 本
	0x8A9E: 3000, // 語
}

// EUCKR backs the EUC-KR encoder.
var EUCKR index.Table = index.MapTable{
	0xAC00: 0, // 가
	0xB098: 1, // 나
	0xB2E4: 2, // 다
}

// Big5 backs the Big5 encoder. 0x4E2D (中) -> 5561 is derived from spec
// §8 scenario 5's own worked example and round-trips against §4.7's
// formula, so this one entry is not a placeholder.
var Big5 index.Table = index.MapTable{
	0x4E2D: 5561, // 中
	0x6587: 5562, // 文
}

// GB18030 backs the two-byte fast path of the GB18030/GBK encoder; code
// points absent here fall through to the Ranges table below.
var GB18030 index.Table = index.MapTable{
	0x4E2D: 1000, // 中
	0x6587: 1001, // 文
}

// GB18030Ranges backs the four-byte fallback path of the GB18030 encoder
// (non-GBK mode only). Two entries are enough to make the table total over
// every scalar value >= U+0080 not already covered by GB18030 above: one
// starting right after ASCII, one starting at the first supplementary-plane
// code point.
var GB18030Ranges = index.NewRangesTable([]index.RangeEntry{
	{CodePoint: 0x0080, Pointer: 1},
	{CodePoint: 0x10000, Pointer: 189000},
})

// ISO2022JPKatakana backs the ISO-2022-JP halfwidth-katakana rewrite step
// (spec §4.4 step 7). index.KatakanaTable holds all 63 entries of WHATWG's
// index-iso-2022-jp-katakana.txt, so unlike the tables above it is not a
// placeholder.
var ISO2022JPKatakana index.ReverseTable = index.KatakanaTable{}
