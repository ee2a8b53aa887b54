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

package merge

import (
	"github.com/portfmt/portfmt/internal/domain"
	"github.com/portfmt/portfmt/internal/editpass"
	"github.com/portfmt/portfmt/internal/parseerr"
	"github.com/portfmt/portfmt/internal/rawlines"
	"github.com/portfmt/portfmt/internal/token"
)

// Merge reconciles every variable assignment found in sub into primary,
// following the per-variable algorithm of spec §4.4, and returns the
// rewritten primary token stream. primary and sub are never mutated in
// place; Merge returns a new slice, though the *token.Token values it
// reuses from primary are shared and may themselves be mutated (marked
// Edited, or deleted) when a merge touches their variable. It returns a
// parseerr.InvalidArgument error, per spec §9's resolution of the
// OPTIONAL_LIKE_ASSIGN ambiguous case, when OptionalLikeAssign is set and
// primary already holds more than one modifier-distinct assignment (both
// a '=' and a '?=' group, say) for a variable a sub '?=' is merging into —
// there is no principled way to pick which one the new value supersedes.
func Merge(primary, sub []*token.Token, flags Flags) ([]*token.Token, error) {
	for _, g := range variableGroups(sub) {
		start := sub[g[0]]
		name := start.Variable.Name
		modifier := start.Variable.Modifier

		if modifier == token.Shell {
			if flags.ShellIsDelete {
				primary = deleteVariable(primary, name)
			}
			continue
		}

		effective := modifier
		optionalLikeAssign := false
		if modifier == token.Optional {
			if !flags.OptionalLikeAssign {
				continue
			}
			effective = token.Assign
			optionalLikeAssign = true
		}

		values := valueTokens(sub, g)
		comment := ""
		if flags.Comments {
			comment = commentToken(sub, g)
		}

		var err error
		primary, err = mergeOne(primary, mergeRequest{
			name:                 name,
			modifier:             effective,
			values:               values,
			comment:              comment,
			afterLast:            flags.AfterLastInGroup,
			ignoreInConditionals: flags.IgnoreVariablesInConditionals,
			optionalLikeAssign:   optionalLikeAssign,
		})
		if err != nil {
			return nil, err
		}
	}
	return primary, nil
}

// MergeInsertions places each editpass.Insertion (a brand new assignment an
// optional pass has no opinion about the position of) into tokens at its
// canonical position. Unlike Merge, this always inserts and never replaces,
// even for a name tokens already assigns (bump-revision(PORTEPOCH) hands
// back a PORTREVISION Insertion whether or not PORTREVISION is present).
func MergeInsertions(tokens []*token.Token, insertions []editpass.Insertion) []*token.Token {
	for _, ins := range insertions {
		point := findInsertPoint(tokens, ins.Name)
		newTokens := buildVariableTokens(ins.Name, ins.Modifier, ins.Values, ins.Comment)
		if point.blankLine {
			newTokens = append([]*token.Token{{Kind: token.Comment, Edited: true}}, newTokens...)
		}
		tokens = spliceTokens(tokens, point.index, newTokens)
	}
	return tokens
}

type mergeRequest struct {
	name                 string
	modifier             token.Modifier
	values               []string
	comment              string
	afterLast            bool
	ignoreInConditionals bool
	// optionalLikeAssign is set when this request originated from a sub
	// '?=' variable being treated as an ordinary Assign because
	// Flags.OptionalLikeAssign was set — the one case where an ambiguous
	// primary (multiple modifier-distinct groups for this name) must be
	// rejected rather than guessed at.
	optionalLikeAssign bool
}

func mergeOne(primary []*token.Token, req mergeRequest) ([]*token.Token, error) {
	groups := variableGroups(primary)
	if req.ignoreInConditionals {
		groups = filterOutsideConditionals(primary, groups)
	}
	matches := groupsNamed(primary, groups, req.name)

	if req.optionalLikeAssign && distinctModifiers(primary, matches) > 1 {
		return nil, parseerr.New(parseerr.InvalidArgument, rawlines.Range{},
			"%q has assignments with different modifiers in the primary file; merging a '?=' value is ambiguous", req.name)
	}

	if len(matches) == 0 {
		point := findInsertPoint(primary, req.name)
		newTokens := buildVariableTokens(req.name, req.modifier, req.values, req.comment)
		if point.blankLine {
			newTokens = append([]*token.Token{{Kind: token.Comment, Edited: true}}, newTokens...)
		}
		return spliceTokens(primary, point.index, newTokens), nil
	}

	switch req.modifier {
	case token.Assign:
		return replaceValues(primary, matches[0], req.values, req.comment), nil
	case token.Append:
		target := matches[0]
		if req.afterLast {
			target = matches[len(matches)-1]
		}
		return appendValues(primary, target, req.values), nil
	default:
		return primary, nil
	}
}

// distinctModifiers returns how many different Modifiers appear across
// matches' VariableStart tokens.
func distinctModifiers(tokens []*token.Token, matches [][2]int) int {
	seen := map[token.Modifier]bool{}
	for _, g := range matches {
		seen[tokens[g[0]].Variable.Modifier] = true
	}
	return len(seen)
}

// variableGroups returns, for every VariableStart/VariableEnd bracket, the
// half-open index range it owns.
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

func filterOutsideConditionals(tokens []*token.Token, groups [][2]int) [][2]int {
	depth := 0
	depthAt := make([]int, len(tokens))
	for i, t := range tokens {
		if t.Kind == token.ConditionalEnd {
			depth--
		}
		depthAt[i] = depth
		if t.Kind == token.ConditionalStart {
			depth++
		}
	}
	var out [][2]int
	for _, g := range groups {
		if depthAt[g[0]] == 0 {
			out = append(out, g)
		}
	}
	return out
}

func groupsNamed(tokens []*token.Token, groups [][2]int, name string) [][2]int {
	var out [][2]int
	for _, g := range groups {
		if tokens[g[0]].Variable.Name == name {
			out = append(out, g)
		}
	}
	return out
}

func valueTokens(tokens []*token.Token, g [2]int) []string {
	var out []string
	for i := g[0] + 1; i < g[1]-1; i++ {
		if tokens[i].Kind == token.VariableToken {
			out = append(out, tokens[i].Payload)
		}
	}
	return out
}

func commentToken(tokens []*token.Token, g [2]int) string {
	for i := g[0] + 1; i < g[1]-1; i++ {
		if tokens[i].Kind == token.Comment {
			return tokens[i].Payload
		}
	}
	return ""
}

// deleteVariable marks every token of every occurrence of name for removal.
func deleteVariable(tokens []*token.Token, name string) []*token.Token {
	for _, g := range groupsNamed(tokens, variableGroups(tokens), name) {
		for i := g[0]; i < g[1]; i++ {
			tokens[i].Delete()
		}
	}
	return token.Compact(tokens)
}

// replaceValues rewrites group g's value tokens to values (and, if comment
// is non-empty, its trailing comment), marking every touched token edited
// so the emitter regenerates rather than quoting the original lines.
func replaceValues(tokens []*token.Token, g [2]int, values []string, comment string) []*token.Token {
	handle := tokens[g[0]].Variable
	replacement := make([]*token.Token, 0, len(values)+2)
	for _, v := range values {
		replacement = append(replacement, &token.Token{Kind: token.VariableToken, Payload: v, Variable: handle, Edited: true})
	}
	if comment != "" {
		replacement = append(replacement, &token.Token{Kind: token.Comment, Payload: comment, Variable: handle, Edited: true})
	}
	out := make([]*token.Token, 0, len(tokens)-g[1]+g[0]+len(replacement)+2)
	out = append(out, tokens[:g[0]+1]...)
	out = append(out, replacement...)
	out = append(out, tokens[g[1]-1:]...)
	return out
}

// appendValues inserts values just before g's VariableEnd, leaving any
// existing values and comment untouched.
func appendValues(tokens []*token.Token, g [2]int, values []string) []*token.Token {
	handle := tokens[g[0]].Variable
	var ins []*token.Token
	for _, v := range values {
		ins = append(ins, &token.Token{Kind: token.VariableToken, Payload: v, Variable: handle, Edited: true})
	}
	return spliceTokens(tokens, g[1]-1, ins)
}

func buildVariableTokens(name string, modifier token.Modifier, values []string, comment string) []*token.Token {
	handle := &token.VariableHandle{Name: name, Modifier: modifier}
	out := []*token.Token{{Kind: token.VariableStart, Variable: handle, Edited: true}}
	for _, v := range values {
		out = append(out, &token.Token{Kind: token.VariableToken, Payload: v, Variable: handle, Edited: true})
	}
	if comment != "" {
		out = append(out, &token.Token{Kind: token.Comment, Payload: comment, Variable: handle, Edited: true})
	}
	out = append(out, &token.Token{Kind: token.VariableEnd, Variable: handle, Edited: true})
	return out
}

func spliceTokens(tokens []*token.Token, at int, ins []*token.Token) []*token.Token {
	out := make([]*token.Token, 0, len(tokens)+len(ins))
	out = append(out, tokens[:at]...)
	out = append(out, ins...)
	out = append(out, tokens[at:]...)
	return out
}

type insertPoint struct {
	index     int
	blankLine bool
}

// findInsertPoint implements spec §4.4 step 3: search the same canonical
// block for the last predecessor, then the whole file, then fall back to
// prepending after any leading-comment preamble.
func findInsertPoint(tokens []*token.Token, name string) insertPoint {
	block, _ := domain.VariableOrderBlock(name)
	groups := variableGroups(tokens)

	bestSameBlock := -1
	for _, g := range groups {
		gname := tokens[g[0]].Variable.Name
		gblock, _ := domain.VariableOrderBlock(gname)
		if gblock == block && domain.CompareOrder(gname, name) < 0 {
			bestSameBlock = g[1]
		}
	}
	if bestSameBlock >= 0 {
		return insertPoint{index: bestSameBlock}
	}

	bestGlobal := -1
	bestGlobalBlock := domain.Unknown
	for _, g := range groups {
		gname := tokens[g[0]].Variable.Name
		if domain.CompareOrder(gname, name) < 0 {
			bestGlobal = g[1]
			bestGlobalBlock, _ = domain.VariableOrderBlock(gname)
		}
	}
	if bestGlobal >= 0 {
		return insertPoint{index: bestGlobal, blankLine: bestGlobalBlock != block}
	}

	i := 0
	for i < len(tokens) && tokens[i].Kind == token.Comment {
		i++
	}
	return insertPoint{index: i}
}
