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

package main

import (
	goflag "flag"
	"fmt"
)

func errUnknownErrorMode(name string) error {
	return fmt.Errorf("goencode: unknown --on-error mode %q (want replacement, html, or fatal)", name)
}

func errUnknownLabel(label string) error {
	return fmt.Errorf("goencode: unrecognized --to encoding label %q", label)
}

// stdFlagSetFromGlog returns the standard-library flag.FlagSet glog
// registers its own flags on at import time, so cobra's pflag.FlagSet can
// absorb them with AddGoFlagSet.
func stdFlagSetFromGlog() *goflag.FlagSet {
	return goflag.CommandLine
}
