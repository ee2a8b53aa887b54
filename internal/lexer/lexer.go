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
	"strings"

	"github.com/portfmt/portfmt/internal/rawlines"
	"github.com/portfmt/portfmt/internal/token"
)

// Lexer folds continuation lines fed one at a time via Feed and tokenises
// each resulting logical line, following the dispatch order of spec §4.1.
//
// Go's regexp package compiles RE2, which has no lookahead, so unlike the
// prose dispatch order in spec §4.1 (target header checked before variable
// assignment), this implementation tries the variable-assignment pattern
// first: it is the only one of the two that can start with "NAME:=", the
// one case a lookahead would otherwise be needed to disambiguate from a
// target header. Plain ':' and '::' targets are unaffected.
type Lexer struct {
	lineNo       int
	pendingText  string
	pendingStart int
	inTarget     bool
	tokens       []*token.Token
	err          error
}

// New returns a Lexer ready to accept lines starting at line 1.
func New() *Lexer {
	return &Lexer{}
}

// Tokens returns the token sequence produced so far.
func (lx *Lexer) Tokens() []*token.Token { return lx.tokens }

// Err returns the first error encountered, if any; once set, Feed and
// Finish are no-ops (the lexer is sticky, per spec §7).
func (lx *Lexer) Err() error { return lx.err }

func (lx *Lexer) fail(err error) error {
	if lx.err == nil {
		lx.err = err
	}
	return lx.err
}

func (lx *Lexer) emit(t *token.Token) { lx.tokens = append(lx.tokens, t) }

// Feed folds in one raw source line, dispatching a completed logical line
// once continuation ends.
func (lx *Lexer) Feed(line string) error {
	if lx.err != nil {
		return lx.err
	}
	lx.lineNo++
	if lx.pendingText == "" {
		lx.pendingStart = lx.lineNo
	}

	backslashes := trailingBackslashes(line)
	continued := backslashes%2 == 1
	contributing := line
	if continued {
		body := line[:len(line)-1]
		var replacement string
		switch {
		case len(body) >= 1 && body[len(body)-1] == '$' && !hasDoubleDollar(body):
			replacement = "\x01"
		case len(body) > 0 && !isSpaceByte(body[len(body)-1]):
			replacement = " "
		default:
			replacement = ""
		}
		contributing = body + replacement
	}
	if lx.pendingText != "" {
		contributing = " " + strings.TrimLeft(contributing, " \t")
	}
	lx.pendingText += contributing

	if continued {
		return nil
	}

	logical := lx.pendingText
	r := rawlines.Range{Start: lx.pendingStart, End: lx.lineNo + 1}
	lx.pendingText = ""
	return lx.dispatch(logical, r)
}

// Finish flushes any pending continuation and closes an open target body.
func (lx *Lexer) Finish() error {
	if lx.err != nil {
		return lx.err
	}
	if lx.pendingText != "" {
		r := rawlines.Range{Start: lx.pendingStart, End: lx.lineNo + 1}
		logical := lx.pendingText
		lx.pendingText = ""
		if err := lx.dispatch(logical, r); err != nil {
			return err
		}
	}
	if lx.inTarget {
		lx.closeTarget(rawlines.Range{Start: lx.lineNo + 1, End: lx.lineNo + 1})
	}
	return nil
}

func trailingBackslashes(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\\'; i-- {
		n++
	}
	return n
}

func hasDoubleDollar(s string) bool {
	return len(s) >= 2 && s[len(s)-2] == '$' && s[len(s)-1] == '$'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r'
}

func (lx *Lexer) closeTarget(r rawlines.Range) {
	lx.emit(&token.Token{Kind: token.TargetEnd, Range: r})
	lx.inTarget = false
}

func (lx *Lexer) dispatch(logical string, r rawlines.Range) error {
	trimmed := strings.TrimSpace(logical)

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		lx.emit(&token.Token{Kind: token.Comment, Range: r, Payload: logical})
		return nil
	}

	if lx.inTarget {
		switch {
		case strings.HasPrefix(trimmed, "."):
			return lx.dispatchDirective(trimmed, r)
		case strings.HasPrefix(logical, "\t") && !looksLikeAssignment(trimmed) && !looksLikeTargetHeader(trimmed):
			return lx.dispatchCommand(logical, r)
		default:
			lx.closeTarget(rawlines.Range{Start: r.Start, End: r.Start})
		}
	}

	switch {
	case strings.HasPrefix(trimmed, "."):
		return lx.dispatchDirective(trimmed, r)
	case looksLikeAssignment(trimmed):
		return lx.dispatchVariable(trimmed, r)
	case looksLikeTargetHeader(trimmed):
		return lx.dispatchTarget(trimmed, r)
	default:
		// Not recognised by the dialect grammar; preserve the line verbatim
		// rather than failing the whole parse on stray text.
		lx.emit(&token.Token{Kind: token.Comment, Range: r, Payload: logical})
	}
	return nil
}

func looksLikeAssignment(trimmed string) bool {
	return reVariableAssign.MatchString(trimmed)
}

func looksLikeTargetHeader(trimmed string) bool {
	return reTargetHeader.MatchString(trimmed)
}

func (lx *Lexer) dispatchVariable(trimmed string, r rawlines.Range) error {
	m := reVariableAssign.FindStringSubmatch(trimmed)
	// reVariableAssign only ever captures one of the five known operators
	// into m[2], so ParseModifier cannot fail here.
	modifier, _ := token.ParseModifier(m[2])
	handle := &token.VariableHandle{Name: m[1], Modifier: modifier}
	lx.emit(&token.Token{Kind: token.VariableStart, Range: r, Variable: handle})

	pieces, err := scanValue(m[3], r.Start)
	if err != nil {
		return lx.fail(err)
	}
	for _, p := range pieces {
		if p.isComment {
			lx.emit(&token.Token{Kind: token.Comment, Range: r, Payload: p.content, Variable: handle})
		} else {
			lx.emit(&token.Token{Kind: token.VariableToken, Range: r, Payload: p.content, Variable: handle})
		}
	}
	lx.emit(&token.Token{Kind: token.VariableEnd, Range: r, Variable: handle})
	return nil
}

func (lx *Lexer) dispatchTarget(trimmed string, r rawlines.Range) error {
	m := reTargetHeader.FindStringSubmatch(trimmed)
	handle := &token.TargetHandle{Names: strings.Fields(m[1]), Colon: m[2]}
	lx.emit(&token.Token{Kind: token.TargetStart, Range: r, Target: handle})
	lx.inTarget = true
	return nil
}

func (lx *Lexer) dispatchCommand(logical string, r rawlines.Range) error {
	body := strings.TrimPrefix(logical, "\t")
	lx.emit(&token.Token{Kind: token.TargetCommandStart, Range: r})
	pieces, err := scanValue(body, r.Start)
	if err != nil {
		return lx.fail(err)
	}
	for _, p := range pieces {
		if p.isComment {
			lx.emit(&token.Token{Kind: token.Comment, Range: r, Payload: p.content})
		} else {
			lx.emit(&token.Token{Kind: token.TargetCommandToken, Range: r, Payload: p.content})
		}
	}
	lx.emit(&token.Token{Kind: token.TargetCommandEnd, Range: r})
	return nil
}

func (lx *Lexer) dispatchDirective(trimmed string, r rawlines.Range) error {
	m := reDirective.FindStringSubmatch(trimmed)
	if m == nil {
		lx.emit(&token.Token{Kind: token.Comment, Range: r, Payload: trimmed})
		return nil
	}
	keyword := strings.ToLower(m[1])
	rest := strings.TrimSpace(m[2])

	condType, ok := directiveKeywords[keyword]
	if !ok {
		lx.emit(&token.Token{Kind: token.Comment, Range: r, Payload: trimmed})
		return nil
	}
	if keyword == "include" && strings.HasPrefix(rest, "<") {
		condType = token.IncludePosix
	}

	handle := &token.ConditionalHandle{Type: condType}
	lx.emit(&token.Token{Kind: token.ConditionalStart, Range: r, Conditional: handle})
	if rest != "" {
		pieces, err := scanValue(rest, r.Start)
		if err != nil {
			return lx.fail(err)
		}
		for _, p := range pieces {
			if p.isComment {
				lx.emit(&token.Token{Kind: token.Comment, Range: r, Conditional: handle, Payload: p.content})
			} else {
				lx.emit(&token.Token{Kind: token.ConditionalToken, Range: r, Conditional: handle, Payload: p.content})
			}
		}
	}
	lx.emit(&token.Token{Kind: token.ConditionalEnd, Range: r, Conditional: handle})
	return nil
}
