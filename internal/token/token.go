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

package token

import (
	"fmt"

	"github.com/portfmt/portfmt/internal/rawlines"
)

// Modifier is the operator following a variable name in its assignment.
type Modifier int

const (
	Assign Modifier = iota // =
	Append                 // +=
	Optional               // ?=
	Expand                 // :=
	Shell                  // !=
)

func (m Modifier) String() string {
	switch m {
	case Assign:
		return "="
	case Append:
		return "+="
	case Optional:
		return "?="
	case Expand:
		return ":="
	case Shell:
		return "!="
	default:
		return "?"
	}
}

// ParseModifier recognises one of the five assignment operators.
func ParseModifier(s string) (Modifier, bool) {
	switch s {
	case "=":
		return Assign, true
	case "+=":
		return Append, true
	case "?=":
		return Optional, true
	case ":=":
		return Expand, true
	case "!=":
		return Shell, true
	default:
		return 0, false
	}
}

// VariableHandle identifies a single logical assignment. Two handles compare
// equal iff their Name is equal; Modifier is an independent attribute that
// edit passes are free to rewrite in place.
type VariableHandle struct {
	Name     string
	Modifier Modifier
}

func (v *VariableHandle) String() string {
	return fmt.Sprintf("%s%s", v.Name, v.Modifier)
}

// ConditionalType is the fixed set of directive kinds recognised by the
// tokeniser.
type ConditionalType int

const (
	If ConditionalType = iota
	Ifdef
	Ifmake
	Ifndef
	Ifnmake
	Elif
	Elifdef
	Elifmake
	Elifndef
	Else
	Endif
	For
	Endfor
	Include
	IncludePosix
	SInclude
	Undef
	Export
	ExportEnv
	ExportLiteral
	Unexport
	UnexportEnv
	Error
	Warning
	Info
)

// String returns the directive keyword (without the leading '.') for c,
// e.g. Ifdef -> "ifdef", IncludePosix -> "include".
func (c ConditionalType) String() string {
	switch c {
	case If:
		return "if"
	case Ifdef:
		return "ifdef"
	case Ifmake:
		return "ifmake"
	case Ifndef:
		return "ifndef"
	case Ifnmake:
		return "ifnmake"
	case Elif:
		return "elif"
	case Elifdef:
		return "elifdef"
	case Elifmake:
		return "elifmake"
	case Elifndef:
		return "elifndef"
	case Else:
		return "else"
	case Endif:
		return "endif"
	case For:
		return "for"
	case Endfor:
		return "endfor"
	case Include, IncludePosix:
		return "include"
	case SInclude:
		return "sinclude"
	case Undef:
		return "undef"
	case Export:
		return "export"
	case ExportEnv:
		return "export-env"
	case ExportLiteral:
		return "export-literal"
	case Unexport:
		return "unexport"
	case UnexportEnv:
		return "unexport-env"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "?"
	}
}

// ConditionalHandle tags a ConditionalStart/ConditionalEnd bracket pair with
// its directive kind.
type ConditionalHandle struct {
	Type ConditionalType
}

// TargetHandle holds the one or more colon- or bang-terminated target names
// declared by a target header.
type TargetHandle struct {
	Names []string
	// Colon is ":" for a regular target, "::" for a double-colon target, or
	// "!" for a bang target.
	Colon string
}

// Token is the tagged record produced by the tokeniser and mutated in place
// by edit passes.
type Token struct {
	Kind  Kind
	Range rawlines.Range

	// Payload carries a single right-hand-side word for VariableToken,
	// a directive word for ConditionalToken, or a command word for
	// TargetCommandToken. Empty for bracket tokens.
	Payload string

	Variable    *VariableHandle
	Conditional *ConditionalHandle
	Target      *TargetHandle

	// GoalColumn is the column a variable's first value should align to.
	// Zero means "not yet computed" (see internal/emit's goal-column pass).
	GoalColumn int

	// Edited marks a token whose text was synthesised by an edit pass; the
	// emitter must not reconcile it against the raw line buffer.
	Edited bool

	// deleted marks a token for removal at the next pipeline compaction.
	// Passes should call Delete/Deleted instead of touching this directly.
	deleted bool
}

// Delete marks t for removal at the next compaction boundary.
func (t *Token) Delete() { t.deleted = true }

// Deleted reports whether t has been marked for removal.
func (t *Token) Deleted() bool { return t.deleted }

// Compact returns a new slice with every deleted token removed, preserving
// order. Called at edit-pipeline pass boundaries (spec §3 Lifecycle).
func Compact(tokens []*Token) []*Token {
	out := make([]*Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.deleted {
			out = append(out, t)
		}
	}
	return out
}
