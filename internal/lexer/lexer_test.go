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

package lexer

import (
	"errors"
	"testing"

	"github.com/portfmt/portfmt/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedAll(t *testing.T, lines ...string) *Lexer {
	t.Helper()
	lx := New()
	for _, line := range lines {
		require.NoError(t, lx.Feed(line))
	}
	require.NoError(t, lx.Finish())
	return lx
}

func kinds(tokens []*token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestSimpleVariableAssignment(t *testing.T) {
	lx := feedAll(t, "PORTNAME=foo")
	got := lx.Tokens()
	require.Equal(t, []token.Kind{token.VariableStart, token.VariableToken, token.VariableEnd}, kinds(got))
	assert.Equal(t, "PORTNAME", got[0].Variable.Name)
	assert.Equal(t, token.Assign, got[0].Variable.Modifier)
	assert.Equal(t, "foo", got[1].Payload)
}

func TestModifiers(t *testing.T) {
	testCases := []struct {
		input    string
		expected token.Modifier
	}{
		{"FOO=bar", token.Assign},
		{"FOO+=bar", token.Append},
		{"FOO?=bar", token.Optional},
		{"FOO:=bar", token.Expand},
		{"FOO!=bar", token.Shell},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			lx := feedAll(t, tc.input)
			require.NotEmpty(t, lx.Tokens())
			assert.Equal(t, tc.expected, lx.Tokens()[0].Variable.Modifier)
		})
	}
}

func TestLineContinuation(t *testing.T) {
	lx := feedAll(t, `USES=	python \`, `	compiler:c++11-lang`)
	got := lx.Tokens()
	var words []string
	for _, tok := range got {
		if tok.Kind == token.VariableToken {
			words = append(words, tok.Payload)
		}
	}
	assert.Equal(t, []string{"python", "compiler:c++11-lang"}, words)
	// The whole logical line's range spans both physical source lines.
	assert.Equal(t, 1, got[0].Range.Start)
	assert.Equal(t, 3, got[0].Range.End)
}

func TestDollarBackslashSentinelIsLiteral(t *testing.T) {
	lx := feedAll(t, `FOO=bar$\`, `baz`)
	var words []string
	for _, tok := range lx.Tokens() {
		if tok.Kind == token.VariableToken {
			words = append(words, tok.Payload)
		}
	}
	// The continuation backslash immediately after '$' folds to the \x01
	// sentinel rather than a plain space, so the '$' and the literal '\'
	// it stands for survive into the value as their own word.
	require.Len(t, words, 2)
	assert.Equal(t, "bar$\\", words[0])
	assert.Equal(t, "baz", words[1])
}

func TestCommentLine(t *testing.T) {
	lx := feedAll(t, "# a comment", "", "   ")
	got := lx.Tokens()
	require.Len(t, got, 3)
	for _, tok := range got {
		assert.Equal(t, token.Comment, tok.Kind)
	}
}

func TestTargetWithCommands(t *testing.T) {
	lx := feedAll(t, "post-install:", "\t@echo done", "PORTNAME=foo")
	got := lx.Tokens()
	require.Equal(t, []token.Kind{
		token.TargetStart,
		token.TargetCommandStart, token.TargetCommandToken, token.TargetCommandToken, token.TargetCommandEnd,
		token.TargetEnd,
		token.VariableStart, token.VariableToken, token.VariableEnd,
	}, kinds(got))
	assert.Equal(t, []string{"post-install"}, got[0].Target.Names)
	assert.Equal(t, "@echo", got[2].Payload)
	assert.Equal(t, "done", got[3].Payload)
}

func TestDirectiveIfEndif(t *testing.T) {
	lx := feedAll(t, ".if ${OPSYS} == FreeBSD", "FOO=bar", ".endif")
	got := lx.Tokens()
	require.Equal(t, token.ConditionalStart, got[0].Kind)
	assert.Equal(t, token.If, got[0].Conditional.Type)
	last2 := got[len(got)-2:]
	assert.Equal(t, []token.Kind{token.ConditionalStart, token.ConditionalEnd}, kinds(last2))
	assert.Equal(t, token.Endif, last2[0].Conditional.Type)
}

func TestValueLevelCommentIsSeparateToken(t *testing.T) {
	lx := feedAll(t, "PORTREVISION=2 # bump for CVE")
	got := lx.Tokens()
	require.Equal(t, []token.Kind{token.VariableStart, token.VariableToken, token.Comment, token.VariableEnd}, kinds(got))
	assert.Equal(t, "# bump for CVE", got[2].Payload)
}

func TestMalformedDollarReportsError(t *testing.T) {
	lx := New()
	err := lx.Feed("FOO=bar$!baz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedDollar))
	// The lexer is sticky: once failed, it stays failed.
	assert.Equal(t, err, lx.Err())
	require.Error(t, lx.Finish())
}

func TestQuotedValueSpanIsOneToken(t *testing.T) {
	lx := feedAll(t, `COMMENT=A "quoted value" here`)
	var words []string
	for _, tok := range lx.Tokens() {
		if tok.Kind == token.VariableToken {
			words = append(words, tok.Payload)
		}
	}
	assert.Equal(t, []string{"A", `"quoted value"`, "here"}, words)
}
