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

// Package parseerr defines the typed error values produced by the parser,
// the edit pipeline, and the merge engine. An error carries the 1-based
// line range it was raised at when one is known; Kind DifferencesFound
// never has one, and errors built with an empty Range (Io, the merge
// engine's InvalidArgument) print without it.
package parseerr

import (
	"fmt"

	"github.com/portfmt/portfmt/internal/rawlines"
)

// Kind is the fixed enumeration of error conditions from spec §6.
type Kind int

const (
	Ok Kind = iota
	BufferTooSmall
	DifferencesFound
	EditFailed
	ExpectedChar
	ExpectedInt
	ExpectedToken
	InvalidArgument
	InvalidRegexp
	Io
	NotFound
	UnhandledTokenType
	Unspecified
)

func (k Kind) String() string {
	switch k {
	case Ok:
		return "Ok"
	case BufferTooSmall:
		return "BufferTooSmall"
	case DifferencesFound:
		return "DifferencesFound"
	case EditFailed:
		return "EditFailed"
	case ExpectedChar:
		return "ExpectedChar"
	case ExpectedInt:
		return "ExpectedInt"
	case ExpectedToken:
		return "ExpectedToken"
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidRegexp:
		return "InvalidRegexp"
	case Io:
		return "Io"
	case NotFound:
		return "NotFound"
	case UnhandledTokenType:
		return "UnhandledTokenType"
	default:
		return "Unspecified"
	}
}

// Error is the typed error value returned by the edit passes, the merge
// engine, the emitter and the portfile loader. The lexer returns its own
// sentinel errors (internal/lexer/errors.go) instead.
// DifferencesFound is the one Kind without a meaningful Range; it signals
// that diff mode produced a non-empty patch, not a failure.
type Error struct {
	Kind    Kind
	Context string
	Range   rawlines.Range
}

func (e *Error) Error() string {
	if e.Kind == DifferencesFound {
		return "DifferencesFound"
	}
	if e.Range == (rawlines.Range{}) {
		return fmt.Sprintf("%s: %s", e.Kind, e.Context)
	}
	return fmt.Sprintf("%d-%d: %s: %s", e.Range.Start, e.Range.End, e.Kind, e.Context)
}

// New builds an Error of the given kind at the given range.
func New(kind Kind, r rawlines.Range, format string, args ...any) *Error {
	return &Error{Kind: kind, Context: fmt.Sprintf(format, args...), Range: r}
}

// ExpectedCharAt reports a lexical error: the byte `ch` was expected but not
// found at range r.
func ExpectedCharAt(r rawlines.Range, ch byte) *Error {
	return New(ExpectedChar, r, "expected %q", ch)
}

// ExpectedIntAt reports a domain error: the variable's current value was not
// a parsable integer.
func ExpectedIntAt(r rawlines.Range, s string) *Error {
	return New(ExpectedInt, r, "expected an integer, got %q", s)
}

// ExpectedTokenAt reports a syntactic error: a token.Kind was expected but a
// different one, or EOF, was encountered.
func ExpectedTokenAt(r rawlines.Range, want fmt.Stringer) *Error {
	return New(ExpectedToken, r, "expected token of kind %v", want)
}

// NotFoundAt reports that a named variable or target could not be located.
func NotFoundAt(r rawlines.Range, name string) *Error {
	return New(NotFound, r, "%q not found", name)
}

// DifferencesFoundErr is the sentinel value returned by diff mode when the
// rendered output differs from the original text.
var DifferencesFoundErr = &Error{Kind: DifferencesFound}

// Is supports errors.Is comparisons against the (Kind-only) sentinel errors
// declared above, treating two *Error values as equal when their Kind
// matches and the sentinel carries no Context/Range of its own.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	if other.Context == "" && other.Range == (rawlines.Range{}) {
		return e.Kind == other.Kind
	}
	return *e == *other
}
