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

// Command goencode re-encodes UTF-8 text read from stdin into one of the
// eight legacy or modern encodings this module implements, writing the
// resulting bytes to stdout.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/whatwg-encoding/goencoding/encoding"
)

var errorModeNames = map[string]encoding.ErrorMode{
	"replacement": encoding.ModeReplacement,
	"html":        encoding.ModeHTML,
	"fatal":       encoding.ModeFatal,
}

func main() {
	var label string
	var errorModeName string
	var showMarkers bool

	cmd := &cobra.Command{
		Use:   "goencode",
		Short: "Re-encode UTF-8 stdin into a legacy or modern text encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(label, errorModeName, showMarkers)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&label, "to", "utf-8", "target encoding label (e.g. shift_jis, gb18030, iso-2022-jp)")
	flags.StringVar(&errorModeName, "on-error", "replacement", "error handling mode: replacement, html, or fatal")
	flags.BoolVar(&showMarkers, "show-escape-markers", false, "print a trailing marker stream describing which bytes were error-handler fallback bytes")

	registerGlogFlags(flags)

	if err := cmd.Execute(); err != nil {
		glog.Exit(err)
	}
}

// registerGlogFlags wires glog's own flag set into the cobra command's
// pflag.FlagSet, the same "hand a *pflag.FlagSet to the logging package"
// pattern go/vt/log.RegisterFlags uses. Every flag on the standard-library
// flag set is added, not a selected subset.
func registerGlogFlags(flags *pflag.FlagSet) {
	flags.AddGoFlagSet(stdFlagSetFromGlog())
}

func run(label, errorModeName string, showMarkers bool) error {
	mode, ok := errorModeNames[errorModeName]
	if !ok {
		return errUnknownErrorMode(errorModeName)
	}

	enc, ok := encoding.EncoderFor(label, encoding.HTMLIndexNormalizer{})
	if !ok {
		return errUnknownLabel(label)
	}

	input, err := readAllUTF8(os.Stdin)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var markers []encoding.EscapeMarker
	sink := func(b byte, marker encoding.EscapeMarker) error {
		if showMarkers {
			markers = append(markers, marker)
		}
		return out.WriteByte(b)
	}

	if err := enc.Process(input, mode, sink); err != nil {
		glog.Errorf("goencode: encoding to %s failed: %v", enc.Name(), err)
		return err
	}

	if showMarkers {
		printMarkers(os.Stderr, markers)
	}
	return nil
}

func readAllUTF8(r io.Reader) ([]rune, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return []rune(string(data)), nil
}

func printMarkers(w io.Writer, markers []encoding.EscapeMarker) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	for _, m := range markers {
		if m == encoding.AlwaysEscape {
			bw.WriteByte('!')
		} else {
			bw.WriteByte('.')
		}
	}
	bw.WriteByte('\n')
}
