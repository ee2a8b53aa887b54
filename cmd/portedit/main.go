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

// Command portedit reads and rewrites individual variables of a ports
// Makefile: get a value, bump a revision, set a new upstream version, or
// merge a second file's assignments into the first.
//
// Usage:
//
//	portedit get <name-regexp> <path>
//	portedit bump <PORTREVISION|PORTEPOCH> <path>
//	portedit set <newver> <path>
//	portedit merge <sub-path> <primary-path>
//	portedit select <line> <path>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/portfmt/portfmt/internal/editpass"
	"github.com/portfmt/portfmt/internal/emit"
	"github.com/portfmt/portfmt/internal/merge"
	"github.com/portfmt/portfmt/internal/portfile"
	"github.com/portfmt/portfmt/internal/token"
)

var write = flag.Bool("w", false, "write result back to the file instead of stdout")

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	switch flag.Arg(0) {
	case "get":
		requireArgs(3)
		runGet(flag.Arg(1), flag.Arg(2))
	case "bump":
		requireArgs(3)
		runBump(flag.Arg(1), flag.Arg(2))
	case "set":
		requireArgs(3)
		runSet(flag.Arg(1), flag.Arg(2))
	case "merge":
		requireArgs(3)
		runMerge(flag.Arg(1), flag.Arg(2))
	case "select":
		requireArgs(3)
		runSelect(flag.Arg(1), flag.Arg(2))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func requireArgs(n int) {
	if flag.NArg() != n {
		flag.Usage()
		log.Fatalf("%s requires exactly %d arguments", flag.Arg(0), n-1)
	}
}

func runGet(nameRegexp, path string) {
	re, err := regexp.Compile(nameRegexp)
	if err != nil {
		exitWithError(err)
	}
	f, err := portfile.Load(path)
	if err != nil {
		exitWithError(err)
	}
	for _, v := range editpass.OutputVariableValue(f.Tokens, re) {
		fmt.Println(v)
	}
}

func runBump(varname, path string) {
	f, err := portfile.Load(path)
	if err != nil {
		exitWithError(err)
	}
	tokens, insertions, err := editpass.BumpRevision(f.Tokens, varname)
	if err != nil {
		exitWithError(err)
	}
	f.Tokens = merge.MergeInsertions(token.Compact(tokens), insertions)
	writeOrPrint(f)
}

func runSet(newver, path string) {
	f, err := portfile.Load(path)
	if err != nil {
		exitWithError(err)
	}
	tokens, insertions := editpass.SetVersion(f.Tokens, newver)
	f.Tokens = merge.MergeInsertions(tokens, insertions)
	writeOrPrint(f)
}

func runMerge(subPath, primaryPath string) {
	sub, err := portfile.Load(subPath)
	if err != nil {
		exitWithError(err)
	}
	primary, err := portfile.Load(primaryPath)
	if err != nil {
		exitWithError(err)
	}
	primary.Tokens, err = merge.Merge(primary.Tokens, sub.Tokens, merge.Flags{
		OptionalLikeAssign: true,
		Comments:           true,
	})
	if err != nil {
		exitWithError(err)
	}
	writeOrPrint(primary)
}

func runSelect(lineArg, path string) {
	line, err := strconv.Atoi(lineArg)
	if err != nil {
		exitWithError(err)
	}
	f, err := portfile.Load(path)
	if err != nil {
		exitWithError(err)
	}
	cmd, ok := editpass.KakouneSelectObjectOnLine(f.Tokens, line)
	if !ok {
		os.Exit(1)
	}
	fmt.Println(cmd)
}

func writeOrPrint(f *portfile.File) {
	out := emit.Reformat(f.Buffer, f.Tokens, emit.Options{Filename: f.Path})
	if *write && f.Path != "/dev/stdin" {
		if err := portfile.WriteInPlace(f, out); err != nil {
			exitWithError(err)
		}
		return
	}
	for _, line := range out {
		fmt.Println(line)
	}
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options...] get|bump|set|merge|select <args...>\n", os.Args[0])
	flag.PrintDefaults()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(2)
}
