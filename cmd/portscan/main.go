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

// Command portscan walks a ports tree and lints every Makefile it finds,
// bounding the number of files parsed concurrently. It is a thin
// supplement to the core library (spec.md §2 names "the concurrent
// directory walker used by the bulk scanner" as an external collaborator,
// not part of the specified core) — the interesting work still happens in
// internal/editpass and internal/portfile.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/portfmt/portfmt/internal/editpass"
	"github.com/portfmt/portfmt/internal/portfile"
)

var (
	pattern  = flag.String("pattern", "**/Makefile", "doublestar glob, relative to root, selecting ports Makefiles")
	parallel = flag.Int("p", 4, "maximum number of files to parse in parallel")
)

// subprocsAllowed/subprocsRunningCond bound in-flight parses the same way
// the teacher's mk.go bounds in-flight recipe executions: a condition
// variable gates a counter instead of a buffered-channel semaphore, so
// reserve/finish read naturally as acquire/release.
var (
	subprocsAllowed     int
	subprocsRunning     int
	subprocsRunningCond = sync.NewCond(&sync.Mutex{})
)

func reserveSlot() {
	subprocsRunningCond.L.Lock()
	for subprocsRunning >= subprocsAllowed {
		subprocsRunningCond.Wait()
	}
	subprocsRunning++
	subprocsRunningCond.L.Unlock()
}

func finishSlot() {
	subprocsRunningCond.L.Lock()
	subprocsRunning--
	subprocsRunningCond.Signal()
	subprocsRunningCond.L.Unlock()
}

type result struct {
	path  string
	issue string
	err   error
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	subprocsAllowed = *parallel

	root := flag.Arg(0)
	if root == "" {
		root = "."
	}

	paths, err := doublestar.Glob(os.DirFS(root), *pattern)
	if err != nil {
		exitWithError(err)
	}
	sort.Strings(paths)

	var wg sync.WaitGroup
	resultsMu := sync.Mutex{}
	var results []result

	for _, rel := range paths {
		path := rel
		if root != "." {
			path = root + "/" + rel
		}
		wg.Add(1)
		reserveSlot()
		go func(path string) {
			defer wg.Done()
			defer finishSlot()
			r := scanOne(path)
			resultsMu.Lock()
			results = append(results, r)
			resultsMu.Unlock()
		}(path)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	foundIssue := false
	for _, r := range results {
		if r.err != nil {
			foundIssue = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.err)
			continue
		}
		if r.issue != "" {
			foundIssue = true
			fmt.Println(r.issue)
		}
	}
	if foundIssue {
		os.Exit(1)
	}
}

func scanOne(path string) result {
	f, err := portfile.Load(path)
	if err != nil {
		return result{path: path, err: err}
	}

	var issues []string
	if order := editpass.LintOrder(f.Tokens); order.Status == editpass.LintDiffsFound {
		issues = append(issues, fmt.Sprintf("%s: variables or targets out of order", path))
	}
	if clones := editpass.LintClones(f.Tokens); len(clones) > 0 {
		issues = append(issues, fmt.Sprintf("%s: duplicate variable assignments: %v", path, clones))
	}

	issue := ""
	for _, s := range issues {
		issue += s + "\n"
	}
	if issue != "" {
		issue = issue[:len(issue)-1]
	}
	return result{path: path, issue: issue}
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options...] [root]\n", os.Args[0])
	flag.PrintDefaults()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(2)
}
