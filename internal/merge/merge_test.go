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
	"strings"
	"testing"

	"github.com/portfmt/portfmt/internal/editpass"
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

func names(tokens []*token.Token) []string {
	var out []string
	for _, t := range tokens {
		if t.Kind == token.VariableStart {
			out = append(out, t.Variable.Name)
		}
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

func TestMergeInsertsNewVariableInCanonicalBlock(t *testing.T) {
	primary := tokenize(t, "PORTNAME=foo\nCOMMENT=bar")
	sub := tokenize(t, "MAINTAINER=me@example.com")
	out, err := Merge(primary, sub, Flags{})
	require.NoError(t, err)
	// MAINTAINER sorts before COMMENT within the Maintainer block, and the
	// only in-block predecessor available is none, so the insertion falls
	// back to the last global predecessor (PORTNAME) — landing MAINTAINER
	// right before COMMENT, its canonical position.
	require.Equal(t, []string{"PORTNAME", "MAINTAINER", "COMMENT"}, names(out))
}

func TestMergeInsertsAfterLastSameBlockPredecessor(t *testing.T) {
	primary := tokenize(t, "PORTNAME=foo\nPORTVERSION=1.0\nCATEGORIES=devel")
	sub := tokenize(t, "PKGNAMEPREFIX=p-")
	out, err := Merge(primary, sub, Flags{})
	require.NoError(t, err)
	require.Equal(t, []string{"PORTNAME", "PORTVERSION", "CATEGORIES", "PKGNAMEPREFIX"}, names(out))
}

func TestMergeAssignReplacesExistingValues(t *testing.T) {
	primary := tokenize(t, "PORTNAME=old")
	sub := tokenize(t, "PORTNAME=new")
	out, err := Merge(primary, sub, Flags{})
	require.NoError(t, err)
	require.Equal(t, []string{"new"}, values(out, "PORTNAME"))
}

func TestMergeAppendAddsToFirstOccurrence(t *testing.T) {
	primary := tokenize(t, "USES=python")
	sub := tokenize(t, "USES+=cpe")
	out, err := Merge(primary, sub, Flags{})
	require.NoError(t, err)
	require.Equal(t, []string{"python", "cpe"}, values(out, "USES"))
}

func TestMergeOptionalSkippedByDefault(t *testing.T) {
	primary := tokenize(t, "PORTNAME=foo")
	sub := tokenize(t, "PORTEPOCH?=1")
	out, err := Merge(primary, sub, Flags{})
	require.NoError(t, err)
	require.Equal(t, []string{"PORTNAME"}, names(out))
}

func TestMergeOptionalLikeAssignInserts(t *testing.T) {
	primary := tokenize(t, "PORTNAME=foo")
	sub := tokenize(t, "PORTEPOCH?=1")
	out, err := Merge(primary, sub, Flags{OptionalLikeAssign: true})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, values(out, "PORTEPOCH"))
}

func TestMergeOptionalLikeAssignRejectsAmbiguousPrimary(t *testing.T) {
	primary := tokenize(t, "PORTEPOCH=1\nPORTEPOCH?=2")
	sub := tokenize(t, "PORTEPOCH?=3")
	_, err := Merge(primary, sub, Flags{OptionalLikeAssign: true})
	require.Error(t, err)
	perr, ok := err.(*parseerr.Error)
	require.True(t, ok)
	require.Equal(t, parseerr.InvalidArgument, perr.Kind)
}

func TestMergeShellSkippedByDefault(t *testing.T) {
	primary := tokenize(t, "PORTNAME=foo")
	sub := tokenize(t, "PORTNAME!=echo hi")
	out, err := Merge(primary, sub, Flags{})
	require.NoError(t, err)
	require.Equal(t, []string{"foo"}, values(out, "PORTNAME"))
}

func TestMergeShellIsDeleteRemovesVariable(t *testing.T) {
	primary := tokenize(t, "PORTNAME=foo\nCOMMENT=bar")
	sub := tokenize(t, "PORTNAME!=echo hi")
	out, err := Merge(primary, sub, Flags{ShellIsDelete: true})
	require.NoError(t, err)
	require.Equal(t, []string{"COMMENT"}, names(out))
}

func TestMergeInsertions(t *testing.T) {
	primary := tokenize(t, "PORTNAME=foo\nCATEGORIES=devel")
	out := MergeInsertions(primary, []editpass.Insertion{
		{Name: "PORTREVISION", Modifier: token.Assign, Values: []string{"1"}},
	})
	require.Equal(t, []string{"PORTNAME", "PORTREVISION", "CATEGORIES"}, names(out))
}
