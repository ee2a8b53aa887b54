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

package domain

import (
	"cmp"
	"strings"

	"github.com/bazelbuild/bazel-gazelle/label"
	"github.com/bazelbuild/bazel-gazelle/pathtools"
)

// portsDirPrefix is the conventional variable expansion stripped from the
// path component of a *_DEPENDS entry before structural comparison.
const portsDirPrefix = "${PORTSDIR}/"

// depEntry is a parsed "pattern:path[:target]" *_DEPENDS value.
type depEntry struct {
	pattern string
	path    label.Label
	rawPath string
	target  string
}

// parseDepEntry splits a *_DEPENDS value into its pattern, path and
// optional target components, and normalises the path's "category/port"
// shape into a repo-less label.Label (category as package, port as name)
// the same way the teacher resolves #include paths into Bazel labels
// (language/cc/resolve.go). Values that don't parse as a clean
// category/port pair fall back to raw string comparison.
func parseDepEntry(value string) depEntry {
	parts := strings.SplitN(value, ":", 3)
	e := depEntry{}
	if len(parts) == 0 {
		return e
	}
	e.pattern = parts[0]
	if len(parts) < 2 {
		return e
	}
	rawPath := pathtools.TrimPrefix(parts[1], portsDirPrefix)
	e.rawPath = rawPath
	if len(parts) == 3 {
		e.target = parts[2]
	}
	if lbl, err := label.Parse(trimLeadingRel(rawPath)); err == nil {
		e.path = lbl
	}
	return e
}

// trimLeadingRel strips a leading "./" some ports write before a
// category/port path so that "./path/port" and "path/port" normalise to
// the same label.
func trimLeadingRel(p string) string {
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}

// CompareDependsPath orders two *_DEPENDS entries by pattern, then by the
// structurally-normalised category/port path, then by target — falling
// back to raw path string comparison when either side failed to parse as a
// label (spec §4.2+ dependency order comparator).
func CompareDependsPath(a, b string) int {
	ea, eb := parseDepEntry(a), parseDepEntry(b)
	if d := cmp.Compare(ea.pattern, eb.pattern); d != 0 {
		return d
	}
	if ea.path != (label.Label{}) && eb.path != (label.Label{}) {
		if d := cmp.Compare(ea.path.Pkg, eb.path.Pkg); d != 0 {
			return d
		}
		if d := cmp.Compare(ea.path.Name, eb.path.Name); d != 0 {
			return d
		}
	} else if d := cmp.Compare(ea.rawPath, eb.rawPath); d != 0 {
		return d
	}
	return cmp.Compare(ea.target, eb.target)
}
