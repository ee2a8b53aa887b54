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

package emit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/portfmt/portfmt/internal/domain"
	"github.com/portfmt/portfmt/internal/rawlines"
	"github.com/portfmt/portfmt/internal/token"
)

const defaultGoalcol = 16

const categoryInclude = "bsd.port.subdir.mk"

// Reformat renders tokens as canonically formatted source lines: sorted and
// aligned variable values, wrapped target commands, and — for a category
// Makefile — the fixed COMMENT/SUBDIR layout (spec §4.5).
func Reformat(buf *rawlines.Buffer, tokens []*token.Token, opts Options) []string {
	opts = opts.WithDefaults()
	if isCategoryMakefile(tokens) {
		return renderCategoryMakefile(buf, tokens, opts)
	}

	goalcol := propagateGoalColumns(tokens)
	var out []string
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t.Kind {
		case token.VariableStart:
			end := matchingEnd(tokens, i, token.VariableEnd)
			out = append(out, renderVariable(buf, tokens[i:end+1], goalcol[i], opts)...)
			i = end + 1
		case token.ConditionalStart:
			end := matchingEnd(tokens, i, token.ConditionalEnd)
			out = append(out, renderConditional(tokens[i:end+1])...)
			i = end + 1
		case token.TargetStart:
			end := matchingEnd(tokens, i, token.TargetEnd)
			out = append(out, renderTarget(buf, tokens[i:end+1], opts)...)
			i = end + 1
		case token.Comment:
			out = append(out, t.Payload)
			i++
		default:
			i++
		}
	}
	return out
}

// matchingEnd returns the index of the bracket token that closes the one at
// start, counting nested occurrences of the same start kind. None of this
// dialect's bracket pairs actually nest in practice (a directive's
// Start/End bracket just one line; a target's commands and nested
// directives sit as siblings inside it) but the depth count makes that an
// invariant this function doesn't have to assume.
func matchingEnd(tokens []*token.Token, start int, endKind token.Kind) int {
	startKind := tokens[start].Kind
	depth := 0
	for i := start; i < len(tokens); i++ {
		if tokens[i].Kind == startKind {
			depth++
		}
		if tokens[i].Kind == endKind {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(tokens) - 1
}

func isStandaloneComment(t *token.Token) bool {
	return t.Kind == token.Comment && t.Variable == nil && t.Conditional == nil
}

func tokensEdited(group []*token.Token) bool {
	for _, t := range group {
		if t.Edited {
			return true
		}
	}
	return false
}

func joinRange(group []*token.Token) rawlines.Range {
	r := group[0].Range
	for _, t := range group[1:] {
		r = r.Join(t.Range)
	}
	return r
}

// propagateGoalColumns computes, for each VariableStart index, the column
// its value(s) should align to. Variables marked SkipGoalcol use their own
// fixed indent and never enter the group computation; every other variable
// in a contiguous run (bare comments may sit between them) aligns to the
// widest IndentGoalcol in that run, clamped to defaultGoalcol. A target,
// conditional, or end of input terminates the run (spec §4.5). Each
// VariableStart's GoalColumn is set to the value recorded for it.
func propagateGoalColumns(tokens []*token.Token) map[int]int {
	goalcol := make(map[int]int)
	i := 0
	for i < len(tokens) {
		if tokens[i].Kind != token.VariableStart && !isStandaloneComment(tokens[i]) {
			i++
			continue
		}
		var varIdx []int
		max := defaultGoalcol
	run:
		for i < len(tokens) {
			switch {
			case tokens[i].Kind == token.VariableStart:
				name := tokens[i].Variable.Name
				if domain.SkipGoalcol(name) {
					goalcol[i] = domain.IndentGoalcol(name)
				} else {
					varIdx = append(varIdx, i)
					if g := domain.IndentGoalcol(name); g > max {
						max = g
					}
				}
				i = matchingEnd(tokens, i, token.VariableEnd) + 1
			case isStandaloneComment(tokens[i]):
				i++
			default:
				break run
			}
		}
		for _, idx := range varIdx {
			goalcol[idx] = max
		}
	}
	for idx, g := range goalcol {
		tokens[idx].GoalColumn = g
	}
	return goalcol
}

func renderVariable(buf *rawlines.Buffer, group []*token.Token, goalcol int, opts Options) []string {
	handle := group[0].Variable
	name := handle.Name

	if !tokensEdited(group) && domain.LeaveUnformatted(name) {
		return buf.Slice(joinRange(group))
	}
	if goalcol < defaultGoalcol {
		goalcol = defaultGoalcol
	}

	var values []string
	comment := ""
	for _, t := range group[1 : len(group)-1] {
		switch t.Kind {
		case token.VariableToken:
			values = append(values, t.Payload)
		case token.Comment:
			comment = t.Payload
		}
	}

	if !opts.Unsorted && !domain.LeaveUnsorted(name) {
		values = sortValues(name, values)
	}
	for i, v := range values {
		values[i] = domain.SortOptUseValue(v)
	}

	header := name + handle.Modifier.String()
	prefix := header + padTabs(len(header), goalcol)

	switch {
	case len(values) == 0:
		if comment != "" {
			return []string{prefix + comment}
		}
		return []string{strings.TrimRight(prefix, " \t")}
	case domain.PrintAsNewlines(name):
		return renderNewlineValues(prefix, goalcol, values, comment)
	default:
		return wrapValues(name, prefix, goalcol, values, comment, opts)
	}
}

func sortValues(name string, values []string) []string {
	out := slices.Clone(values)
	slices.SortStableFunc(out, func(a, b string) int { return domain.CompareTokens(name, a, b) })
	return out
}

// padTabs returns the tab characters needed to advance from column from to
// at least column to, assuming 8-column tab stops — the convention the
// dialect's goal-column alignment is built on. Always emits at least one
// tab, so a header longer than goalcol still gets a separator.
func padTabs(from, to int) string {
	var b strings.Builder
	col := from
	for {
		col = (col/8 + 1) * 8
		b.WriteByte('\t')
		if col >= to {
			break
		}
	}
	return b.String()
}

func renderNewlineValues(prefix string, goalcol int, values []string, comment string) []string {
	cont := padTabs(0, goalcol)
	lines := make([]string, 0, len(values))
	for i, v := range values {
		line := cont + v
		if i == 0 {
			line = prefix + v
		}
		if i < len(values)-1 {
			line += " \\"
		} else if comment != "" {
			line += " " + comment
		}
		lines = append(lines, line)
	}
	return lines
}

// wrapValues greedily packs values onto continuation lines honouring a
// logical budget of wrapcol - goalcol - 2 (the two characters reserved for
// " \\"), unless name is marked IgnoreWrapCol.
func wrapValues(name, prefix string, goalcol int, values []string, comment string, opts Options) []string {
	if domain.IgnoreWrapCol(name) {
		line := prefix + strings.Join(values, " ")
		if comment != "" {
			line += " " + comment
		}
		return []string{line}
	}

	budget := opts.WrapCol - goalcol - 2
	if budget < 8 {
		budget = 8
	}

	segments := []string{values[0]}
	for _, v := range values[1:] {
		last := segments[len(segments)-1]
		next := last + " " + v
		if len(next) > budget {
			segments = append(segments, v)
			continue
		}
		segments[len(segments)-1] = next
	}

	cont := padTabs(0, goalcol)
	lines := make([]string, len(segments))
	for i, seg := range segments {
		lead := cont
		if i == 0 {
			lead = prefix
		}
		line := lead + seg
		if i < len(segments)-1 {
			line += " \\"
		} else if comment != "" {
			line += " " + comment
		}
		lines[i] = line
	}
	return lines
}

func renderConditional(group []*token.Token) []string {
	handle := group[0].Conditional
	var words []string
	for _, t := range group[1 : len(group)-1] {
		if t.Kind == token.ConditionalToken {
			words = append(words, t.Payload)
		}
	}
	line := "." + handle.Type.String()
	if len(words) > 0 {
		line += " " + strings.Join(words, " ")
	}
	return []string{line}
}

func renderTarget(buf *rawlines.Buffer, group []*token.Token, opts Options) []string {
	handle := group[0].Target
	header := strings.Join(handle.Names, " ") + handle.Colon

	out := []string{header}
	i := 1
	for i < len(group)-1 {
		t := group[i]
		switch t.Kind {
		case token.ConditionalStart:
			end := matchingEnd(group, i, token.ConditionalEnd)
			out = append(out, renderConditional(group[i:end+1])...)
			i = end + 1
		case token.TargetCommandStart:
			end := matchingEnd(group, i, token.TargetCommandEnd)
			out = append(out, renderTargetCommand(buf, group[i:end+1], opts)...)
			i = end + 1
		case token.Comment:
			out = append(out, t.Payload)
			i++
		default:
			i++
		}
	}
	return out
}

func renderTargetCommand(buf *rawlines.Buffer, group []*token.Token, opts Options) []string {
	var words []string
	comment := ""
	for _, t := range group[1 : len(group)-1] {
		switch t.Kind {
		case token.TargetCommandToken:
			words = append(words, t.Payload)
		case token.Comment:
			comment = t.Payload
		}
	}

	if len(words) == 0 {
		return []string{"\t"}
	}
	if !tokensEdited(group) && !opts.ReformatCommands &&
		domain.CommandComplexity(strings.Join(words, " ")) > opts.ComplexityThreshold {
		return buf.Slice(joinRange(group))
	}
	return wrapCommand(words, comment, opts)
}

func wrapCommand(words []string, comment string, opts Options) []string {
	wrapEach := domain.TargetCommandWrapAfterEachToken(words[0])

	lines := []string{"\t" + words[0]}
	afterTrigger := false
	for _, w := range words[1:] {
		cur := lines[len(lines)-1]
		candidate := cur + " " + w
		if wrapEach || afterTrigger || (domain.TargetCommandShouldWrap(w) && len(candidate) > opts.CommandWrapCol) {
			lines[len(lines)-1] = cur + " \\"
			lines = append(lines, "\t\t"+w)
		} else {
			lines[len(lines)-1] = candidate
		}
		afterTrigger = domain.IsWrapTrigger(w)
	}
	if comment != "" {
		lines[len(lines)-1] += " " + comment
	}
	return lines
}

func isCategoryMakefile(tokens []*token.Token) bool {
	for _, t := range tokens {
		if t.Kind == token.ConditionalToken && strings.Contains(t.Payload, categoryInclude) {
			return true
		}
	}
	return false
}

func renderCategoryMakefile(buf *rawlines.Buffer, tokens []*token.Token, opts Options) []string {
	var out []string
	var subdirs []string
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch {
		case t.Kind == token.VariableStart && t.Variable.Name == "COMMENT":
			end := matchingEnd(tokens, i, token.VariableEnd)
			out = append(out, renderVariable(buf, tokens[i:end+1], defaultGoalcol, opts)...)
			i = end + 1
		case t.Kind == token.VariableStart && t.Variable.Name == "SUBDIR":
			end := matchingEnd(tokens, i, token.VariableEnd)
			for _, v := range tokens[i+1 : end] {
				if v.Kind == token.VariableToken {
					subdirs = append(subdirs, v.Payload)
				}
			}
			i = end + 1
		default:
			i++
		}
	}
	slices.Sort(subdirs)
	for _, s := range subdirs {
		out = append(out, fmt.Sprintf("SUBDIR += %s", s))
	}
	out = append(out, ".include <bsd.port.subdir.mk>")
	return out
}
