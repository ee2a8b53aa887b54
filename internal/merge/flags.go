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

// Package merge reconciles new variable assignments — from a subparser
// parsing a second source, or from an editpass.Insertion an optional pass
// produced — into a primary token stream at its canonical position.
//
// This is the dialect equivalent of language/cpp/source_groups.go's
// adjustToExistingRules/findEmptyRules in the teacher repository, which
// reconciles freshly generated Bazel rules against a pre-existing
// *rule.File: an existing node is mutated in place
// (newRule.SetAttr/DelAttr), a brand new one is inserted at a computed
// position. Here, "rule" becomes "variable assignment", and
// SetAttr/DelAttr becomes value-token replacement/deletion.
package merge

// Flags are the behavior switches spec §4.4 names, each independently
// togglable by the caller driving the merge.
type Flags struct {
	// ShellIsDelete: a subparser variable using the Shell (!=) modifier is
	// normally skipped (shell assignments are side-effecting and opaque);
	// when set, it instead deletes the matching primary variable.
	ShellIsDelete bool
	// OptionalLikeAssign: a subparser variable using the Optional (?=)
	// modifier is normally skipped (it only applies if unset); when set,
	// it is treated as an ordinary Assign. If the primary already holds
	// more than one modifier-distinct group for that variable (e.g. both
	// a '=' and a '?=' assignment), which one the new value should
	// supersede is ambiguous, so Merge refuses with a parseerr.
	// InvalidArgument instead of guessing.
	OptionalLikeAssign bool
	// IgnoreVariablesInConditionals excludes primary variables nested
	// inside a conditional block from the existing-variable lookup, so a
	// merge never mutates a variant assignment guarded by .if/.ifdef.
	IgnoreVariablesInConditionals bool
	// AfterLastInGroup changes Append's insertion point from the first
	// occurrence of the variable to the last.
	AfterLastInGroup bool
	// Comments carries a comment token adjacent to a subparser variable
	// along with its merged values; otherwise it is dropped.
	Comments bool
}
