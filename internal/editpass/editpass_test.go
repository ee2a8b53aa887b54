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
	"strings"
	"testing"

	"github.com/portfmt/portfmt/internal/lexer"
	"github.com/portfmt/portfmt/internal/parseerr"
	"github.com/portfmt/portfmt/internal/token"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, text string) []*token.Token {
	t.Helper()
	lx := lexer.New()
	for _, line := range strings.Split(text, "\n") {
		require.NoError(t, lx.Feed(line))
	}
	require.NoError(t, lx.Finish())
	return lx.Tokens()
}

func kinds(tokens []*token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func values(tokens []*token.Token, name string) []string {
	var out []string
	in := false
	for _, t := range tokens {
		switch t.Kind {
		case token.VariableStart:
			in = t.Variable.Name == name
		case token.VariableEnd:
			in = false
		case token.VariableToken:
			if in {
				out = append(out, t.Payload)
			}
		}
	}
	return out
}

// Scenario 2 & 7 from spec §8.
func TestDedupTokens(t *testing.T) {
	toks := tokenize(t, "USES=\tpython compiler:c++11-lang compiler:c++14-lang")
	toks = token.Compact(DedupTokens(toks))
	require.Equal(t, []string{"python", "compiler:c++11-lang"}, values(toks, "USES"))
}

func TestDedupTokensPlainDuplicate(t *testing.T) {
	toks := tokenize(t, "LICENSE=BSD3CLAUSE BSD3CLAUSE")
	toks = token.Compact(DedupTokens(toks))
	require.Equal(t, []string{"BSD3CLAUSE"}, values(toks, "LICENSE"))
}

// Scenario 3 from spec §8.
func TestCollapseAdjacentVariables(t *testing.T) {
	toks := tokenize(t, "PORTNAME=foo\nPORTNAME+=bar")
	toks = token.Compact(CollapseAdjacentVariables(toks))
	require.Equal(t, []token.Kind{token.VariableStart, token.VariableToken, token.VariableToken, token.VariableEnd}, kinds(toks))
	require.Equal(t, []string{"foo", "bar"}, values(toks, "PORTNAME"))
}

// Scenario 8 from spec §8: a comment line between two assignments to the
// same variable breaks adjacency, so they are not collapsed.
func TestCollapseAdjacentVariablesCommentBreaksAdjacency(t *testing.T) {
	toks := tokenize(t, "PORTNAME=foo\n# keep separate\nPORTNAME=bar")
	before := len(toks)
	toks = token.Compact(CollapseAdjacentVariables(toks))
	require.Equal(t, before, len(toks))
	starts := 0
	for _, tok := range toks {
		if tok.Kind == token.VariableStart {
			starts++
		}
	}
	require.Equal(t, 2, starts)
}

func TestCollapseAdjacentVariablesNeverCollapsesExpandOrShell(t *testing.T) {
	for _, text := range []string{"PORTNAME:=foo\nPORTNAME:=bar", "PORTNAME!=foo\nPORTNAME!=bar"} {
		toks := tokenize(t, text)
		toks = token.Compact(CollapseAdjacentVariables(toks))
		starts := 0
		for _, tok := range toks {
			if tok.Kind == token.VariableStart {
				starts++
			}
		}
		require.Equal(t, 2, starts)
	}
}

// Scenario 6 from spec §8.
func TestSanitizeAppendModifier(t *testing.T) {
	toks := tokenize(t, "A+=x\nA+=y")
	toks = SanitizeAppendModifier(toks)
	var modifiers []token.Modifier
	for _, tok := range toks {
		if tok.Kind == token.VariableStart {
			modifiers = append(modifiers, tok.Variable.Modifier)
		}
	}
	require.Equal(t, []token.Modifier{token.Assign, token.Append}, modifiers)
}

func TestSanitizeAppendModifierExemptsFlagFamily(t *testing.T) {
	toks := tokenize(t, "CFLAGS+=-O2")
	toks = SanitizeAppendModifier(toks)
	require.Equal(t, token.Append, toks[0].Variable.Modifier)
}

func TestSanitizeEOLCommentsHoistsGenuineComment(t *testing.T) {
	toks := tokenize(t, "PORTREVISION=2 # bump for CVE")
	toks = token.Compact(SanitizeEOLComments(toks))
	require.Equal(t, []token.Kind{token.Comment, token.VariableStart, token.VariableToken, token.VariableEnd}, kinds(toks))
	require.Equal(t, "# bump for CVE", toks[0].Payload)
	require.True(t, toks[0].Edited)
}

func TestSanitizeEOLCommentsLeavesDecorativeFormAlone(t *testing.T) {
	toks := tokenize(t, "MAINTAINER=foo@example.com #")
	toks = token.Compact(SanitizeEOLComments(toks))
	require.Equal(t, []token.Kind{token.VariableStart, token.VariableToken, token.Comment, token.VariableEnd}, kinds(toks))
}

func TestRemoveConsecutiveEmptyLines(t *testing.T) {
	toks := tokenize(t, "# a\n\n\n\nPORTNAME=foo")
	before := 0
	for _, tok := range toks {
		if tok.Kind == token.Comment && tok.Payload == "" {
			before++
		}
	}
	require.Equal(t, 3, before)
	toks = token.Compact(RemoveConsecutiveEmptyLines(toks))
	after := 0
	for _, tok := range toks {
		if tok.Kind == token.Comment && tok.Payload == "" {
			after++
		}
	}
	require.Equal(t, 1, after)
}

func TestSanitizeCommentsInsideTargetBody(t *testing.T) {
	toks := tokenize(t, "post-patch:\n\t@echo hi # trailing   ")
	toks = SanitizeComments(toks)
	for _, tok := range toks {
		if tok.Kind == token.Comment {
			require.Equal(t, "# trailing", tok.Payload)
			require.True(t, tok.Edited)
		}
	}
}

// Scenario 4 & 5 from spec §8.
func TestBumpRevisionIncrementsAndPreservesComment(t *testing.T) {
	toks := tokenize(t, "PORTREVISION=2 # comment")
	toks, insertions, err := BumpRevision(toks, "PORTREVISION")
	require.NoError(t, err)
	toks = token.Compact(toks)
	require.Empty(t, values(toks, "PORTREVISION"))
	require.Len(t, insertions, 1)
	require.Equal(t, []string{"3"}, insertions[0].Values)
	require.Equal(t, "# comment", insertions[0].Comment)
}

func TestBumpRevisionAbsentInsertsOne(t *testing.T) {
	toks := tokenize(t, "PORTNAME=foo")
	_, insertions, err := BumpRevision(toks, "PORTREVISION")
	require.NoError(t, err)
	require.Len(t, insertions, 1)
	require.Equal(t, []string{"1"}, insertions[0].Values)
}

func TestBumpRevisionSlavePortEditsInPlace(t *testing.T) {
	toks := tokenize(t, "MASTERDIR=${.CURDIR}/../foo\nPORTREVISION=4")
	toks, insertions, err := BumpRevision(toks, "PORTREVISION")
	require.NoError(t, err)
	require.Nil(t, insertions)
	require.Equal(t, []string{"5"}, values(toks, "PORTREVISION"))
}

func TestBumpRevisionEpochZeroesRevision(t *testing.T) {
	toks := tokenize(t, "PORTEPOCH=1\nPORTREVISION?=3")
	_, insertions, err := BumpRevision(toks, "PORTEPOCH")
	require.NoError(t, err)
	require.Len(t, insertions, 2)
	require.Equal(t, "PORTREVISION", insertions[1].Name)
	require.Equal(t, token.Assign, insertions[1].Modifier)
	require.Equal(t, []string{"0"}, insertions[1].Values)
}

func TestBumpRevisionNonIntegerReportsExpectedInt(t *testing.T) {
	toks := tokenize(t, "PORTREVISION=abc")
	_, _, err := BumpRevision(toks, "PORTREVISION")
	require.Error(t, err)
	perr, ok := err.(*parseerr.Error)
	require.True(t, ok)
	require.Equal(t, parseerr.ExpectedInt, perr.Kind)
}

func TestSetVersionWritesAndZeroesRevision(t *testing.T) {
	toks := tokenize(t, "DISTVERSION=1.0\nPORTREVISION=3")
	toks, insertions := SetVersion(toks, "2.0")
	require.Nil(t, insertions)
	require.Equal(t, []string{"2.0"}, values(toks, "DISTVERSION"))
	require.Equal(t, []string{"0"}, values(toks, "PORTREVISION"))
}

func TestSetVersionInsertsWhenAbsent(t *testing.T) {
	toks := tokenize(t, "PORTNAME=foo")
	_, insertions := SetVersion(toks, "3.0")
	require.Len(t, insertions, 1)
	require.Equal(t, "PORTVERSION", insertions[0].Name)
}

func TestOutputUnknownVariables(t *testing.T) {
	toks := tokenize(t, "PORTNAME=foo\nSOME_UNKNOWN_VAR=1")
	got := OutputUnknownVariables(toks)
	require.Equal(t, []string{"SOME_UNKNOWN_VAR"}, got)
}

func TestLintClones(t *testing.T) {
	toks := tokenize(t, "PORTNAME=foo\nCOMMENT=bar\nPORTNAME=baz")
	require.Equal(t, []string{"PORTNAME"}, LintClones(toks))
}

func TestLintOrderDetectsOutOfOrderVariables(t *testing.T) {
	toks := tokenize(t, "COMMENT=out of order\nPORTNAME=foo")
	result := LintOrder(toks)
	require.Equal(t, LintDiffsFound, result.Status)
	require.Equal(t, []string{"COMMENT", "PORTNAME"}, result.VariablesHave)
	require.Equal(t, []string{"PORTNAME", "COMMENT"}, result.VariablesWant)
}

func TestLintOrderOkWhenAlreadyCanonical(t *testing.T) {
	toks := tokenize(t, "PORTNAME=foo\nCOMMENT=bar")
	result := LintOrder(toks)
	require.Equal(t, LintOk, result.Status)
}

func TestKakouneSelectObjectOnLine(t *testing.T) {
	toks := tokenize(t, "PORTNAME=foo\npost-patch:\n\t@echo hi")
	cmd, ok := KakouneSelectObjectOnLine(toks, 1)
	require.True(t, ok)
	require.Equal(t, "select 1.1,1.1", cmd)

	cmd, ok = KakouneSelectObjectOnLine(toks, 3)
	require.True(t, ok)
	require.Equal(t, "select 2.1,3.1", cmd)

	_, ok = KakouneSelectObjectOnLine(toks, 99)
	require.False(t, ok)
}
