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

// Command portclippy lints a ports Makefile: variable/target ordering and
// duplicate assignments. It never rewrites the file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/portfmt/portfmt/internal/editpass"
	"github.com/portfmt/portfmt/internal/portfile"
)

var unknowns = flag.Bool("unknown-variables", false, "also report variables with no known canonical position")

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

	foundIssue := false

	order := editpass.LintOrder(f.Tokens)
	if order.Status == editpass.LintDiffsFound {
		foundIssue = true
		fmt.Printf("%s: variables out of order\n  have: %v\n  want: %v\n", path, order.VariablesHave, order.VariablesWant)
		if order.TargetsHave != nil {
			fmt.Printf("%s: targets out of order\n  have: %v\n  want: %v\n", path, order.TargetsHave, order.TargetsWant)
		}
	}

	if clones := editpass.LintClones(f.Tokens); len(clones) > 0 {
		foundIssue = true
		fmt.Printf("%s: duplicate variable assignments: %v\n", path, clones)
	}

	if *unknowns {
		if names := editpass.OutputUnknownVariables(f.Tokens); len(names) > 0 {
			foundIssue = true
			fmt.Printf("%s: variables with no known canonical position: %v\n", path, names)
		}
	}

	for _, msg := range editpass.LintPlistGlobs(f.Tokens) {
		foundIssue = true
		fmt.Printf("%s: %s\n", path, msg)
	}

	if foundIssue {
		os.Exit(1)
	}
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
