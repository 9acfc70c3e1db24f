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
	"github.com/whatwg-encoding/goencoding/encoding/internal/index"
	"github.com/whatwg-encoding/goencoding/encoding/internal/indexdata"
)

// These thin accessors are the seam between the public constructors (which
// need a concrete default table) and encoding/internal/indexdata (which
// owns the process-wide seed data). Keeping them as functions rather than
// importing indexdata directly from every encoder file keeps the default
// wiring in one place.

func defaultJIS0208() index.Table               { return indexdata.JIS0208 }
func defaultEUCKR() index.Table                 { return indexdata.EUCKR }
func defaultBig5() index.Table                  { return indexdata.Big5 }
func defaultGB18030() index.Table               { return indexdata.GB18030 }
func defaultGB18030Ranges() *index.RangesTable  { return indexdata.GB18030Ranges }
func defaultISO2022JPKatakana() index.ReverseTable { return indexdata.ISO2022JPKatakana }
