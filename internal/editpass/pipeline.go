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

// Package editpass holds the ordered sequence of pure pass functions that
// transform a parsed token stream before it reaches the merge engine and
// emitter. The pipeline is a closed []Pass slice, not a string-keyed plug-in
// registry: a fixed, ordered list of pass functions, as decided for the
// Dynamic plug-ins vs. closed set design note. This mirrors
// how the teacher walks a fixed set of directive handlers in
// language/internal/cc/parser/directive.go rather than dispatching through a
// registry keyed by directive name.
package editpass

import "github.com/portfmt/portfmt/internal/token"

// Pass is one edit transformation over a token stream. It may mark tokens
// deleted (token.Token.Delete) or mutate their Payload/Modifier in place and
// set Edited; it must not reorder tokens or introduce new Kind values.
type Pass func(tokens []*token.Token) []*token.Token

// Mandatory is the fixed order every parse runs through, per spec §4.3.
var Mandatory = []Pass{
	SanitizeComments,
	SanitizeEOLComments,
	CollapseAdjacentVariables,
	SanitizeAppendModifier,
	DedupTokens,
	RemoveConsecutiveEmptyLines,
}

// Run applies passes in order, compacting deleted tokens between each one so
// that later passes never see a token marked for removal by an earlier one.
func Run(tokens []*token.Token, passes ...Pass) []*token.Token {
	for _, p := range passes {
		tokens = p(tokens)
		tokens = token.Compact(tokens)
	}
	return tokens
}

// variableGroups returns, for each VariableStart/VariableEnd bracket, the
// half-open index range [start, end) of tokens it owns (end points one past
// the VariableEnd). Helper shared by several passes that operate per
// variable assignment.
func variableGroups(tokens []*token.Token) [][2]int {
	var groups [][2]int
	start := -1
	for i, t := range tokens {
		switch t.Kind {
		case token.VariableStart:
			start = i
		case token.VariableEnd:
			if start >= 0 {
				groups = append(groups, [2]int{start, i + 1})
				start = -1
			}
		}
	}
	return groups
}
