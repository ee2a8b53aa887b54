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

package editpass

import (
	"strconv"
	"strings"

	"github.com/portfmt/portfmt/internal/parseerr"
	"github.com/portfmt/portfmt/internal/token"
)

// BumpRevision implements the optional bump-revision(varname) pass for
// varname ∈ {"PORTREVISION", "PORTEPOCH"}. If the variable is absent, it
// reports an insertion of "1". If present and holding an integer, it
// reports the incremented value and preserves any trailing comment. If
// present but not a parsable integer, it returns a parseerr.ExpectedInt
// error rather than silently bumping from zero, per spec §7.
//
// A slave port (one declaring MASTERDIR) inherits its structure from the
// master and is edited in place, since there is nothing for the merge
// engine to re-place. Otherwise the existing assignment is deleted so the
// merge engine can insert the bumped value at its canonical position.
func BumpRevision(tokens []*token.Token, varname string) ([]*token.Token, []Insertion, error) {
	groups := variableGroups(tokens)
	var groupIdx = -1
	for i, g := range groups {
		if tokens[g[0]].Variable.Name == varname {
			groupIdx = i
			break
		}
	}

	if groupIdx < 0 {
		return tokens, bumpInsertions(tokens, varname, 1, ""), nil
	}

	g := groups[groupIdx]
	cur := ""
	curToken := tokens[g[0]]
	comment := ""
	for j := g[0] + 1; j < g[1]-1; j++ {
		switch tokens[j].Kind {
		case token.VariableToken:
			cur = tokens[j].Payload
			curToken = tokens[j]
		case token.Comment:
			comment = tokens[j].Payload
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(cur))
	if err != nil {
		return nil, nil, parseerr.ExpectedIntAt(curToken.Range, cur)
	}
	next := n + 1

	if hasVariable(tokens, "MASTERDIR") {
		for j := g[0] + 1; j < g[1]-1; j++ {
			if tokens[j].Kind == token.VariableToken {
				tokens[j].Payload = strconv.Itoa(next)
				tokens[j].Edited = true
			}
		}
		return tokens, nil, nil
	}

	for j := g[0]; j < g[1]; j++ {
		tokens[j].Delete()
	}
	return tokens, bumpInsertions(tokens, varname, next, comment), nil
}

func bumpInsertions(tokens []*token.Token, varname string, next int, comment string) []Insertion {
	insertions := []Insertion{{
		Name:     varname,
		Modifier: token.Assign,
		Values:   []string{strconv.Itoa(next)},
		Comment:  comment,
	}}
	if varname == "PORTEPOCH" {
		insertions = append(insertions, zeroPortRevision(tokens))
	}
	return insertions
}

// zeroPortRevision is the side effect bump-revision(PORTEPOCH) applies to
// PORTREVISION: an assign-zero if PORTREVISION was optional, otherwise a
// shell-delete (a no-op shell assignment that nulls out the prior value
// without claiming the canonical '=' slot).
func zeroPortRevision(tokens []*token.Token) Insertion {
	for _, t := range tokens {
		if t.Kind == token.VariableStart && t.Variable.Name == "PORTREVISION" {
			if t.Variable.Modifier == token.Optional {
				return Insertion{Name: "PORTREVISION", Modifier: token.Assign, Values: []string{"0"}}
			}
			return Insertion{Name: "PORTREVISION", Modifier: token.Shell, Values: []string{":"}}
		}
	}
	return Insertion{Name: "PORTREVISION", Modifier: token.Assign, Values: []string{"0"}}
}
