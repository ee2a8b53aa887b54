// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command portfmt formats, diffs, or dumps a single ports Makefile.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/portfmt/portfmt/internal/emit"
	"github.com/portfmt/portfmt/internal/parseerr"
	"github.com/portfmt/portfmt/internal/portfile"
)

var (
	write            = flag.Bool("w", false, "write result back to the file instead of stdout")
	diff             = flag.Bool("d", false, "print a unified diff instead of the formatted file")
	dump             = flag.Bool("u", false, "print a token dump instead of the formatted file")
	raw              = flag.Bool("r", false, "pass the file through unmodified")
	unsorted         = flag.Bool("unsorted", false, "never sort variable values")
	reformatCommands = flag.Bool("reformat-target-commands", false, "reformat target commands regardless of complexity")
	noColor          = flag.Bool("no-color", false, "disable ANSI colour in diff output")
	wrapCol          = flag.Int("wrapcol", 80, "column to wrap variable value lists at")
	commandWrapCol   = flag.Int("target-command-wrapcol", 65, "column to wrap target commands at")
	complexityThresh = flag.Int("target-command-complexity-threshold", 8, "shell complexity above which an unedited command is quoted verbatim")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		path = "/dev/stdin"
	}

	f, err := portfile.Load(path)
	if err != nil {
		exitWithError(err)
	}

	opts := emit.Options{
		Filename:            path,
		WrapCol:             *wrapCol,
		CommandWrapCol:      *commandWrapCol,
		ComplexityThreshold: *complexityThresh,
		Unsorted:            *unsorted,
		ReformatCommands:    *reformatCommands,
		NoColor:             *noColor,
	}

	var out []string
	switch {
	case *raw:
		out = emit.Raw(f.Buffer)
	case *dump:
		out = emit.Dump(f.Tokens)
	case *diff:
		text, err := emit.Diff(f.Buffer, emit.Reformat(f.Buffer, f.Tokens, opts), opts)
		if err != nil && !errors.Is(err, parseerr.DifferencesFoundErr) {
			exitWithError(err)
		}
		if text != "" {
			fmt.Print(text)
		}
		if err != nil {
			os.Exit(1)
		}
		return
	default:
		out = emit.Reformat(f.Buffer, f.Tokens, opts)
	}

	if *write && path != "/dev/stdin" {
		if err := portfile.WriteInPlace(f, out); err != nil {
			exitWithError(err)
		}
		return
	}
	fmt.Print(strings.Join(out, "\n") + "\n")
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options...] [path]\n", os.Args[0])
	flag.PrintDefaults()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(2)
}
