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

// Package bzlexport renders a handful of a port's variable values as
// Starlark constants, for a Bazel genrule (or similar) downstream of a
// ports tree that wants PORTNAME/PORTVERSION/CATEGORIES without re-parsing
// the Makefile itself. This is the "output-bzl-constants" optional pass of
// SPEC_FULL.md §4.3+, built on the same build.File/build.Format AST the
// teacher repository's language/cc package uses to read and rewrite BUILD
// files — here used in the opposite direction, as a writer rather than a
// reader.
package bzlexport

import (
	"github.com/bazelbuild/buildtools/build"
)

// Constant is one NAME = value (or NAME = [value, ...]) line to emit.
type Constant struct {
	Name   string
	Values []string
}

// Render returns the formatted contents of a .bzl file defining one
// Starlark assignment per constant, in the given order: a single-element
// Values renders as a plain string, anything else as a string list.
func Render(path string, constants []Constant) []byte {
	f := &build.File{
		Path: path,
		Type: build.TypeBzl,
	}
	for _, c := range constants {
		f.Stmt = append(f.Stmt, &build.AssignExpr{
			LHS: &build.Ident{Name: c.Name},
			Op:  "=",
			RHS: valueExpr(c.Values),
		})
	}
	return build.Format(f)
}

func valueExpr(values []string) build.Expr {
	if len(values) == 1 {
		return &build.StringExpr{Value: values[0]}
	}
	list := &build.ListExpr{}
	for _, v := range values {
		list.List = append(list.List, &build.StringExpr{Value: v})
	}
	return list
}
