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

// Package rawlines owns the original source text of a parsed Makefile,
// split into 1-indexed lines. Every token produced by internal/lexer refers
// back into a Buffer by a half-open Range rather than copying text, so that
// unedited tokens can be re-emitted byte-for-byte.
package rawlines

import "strings"

// Range is a half-open, 1-indexed span of lines [Start, End). A single-line
// range has End == Start+1.
type Range struct {
	Start, End int
}

// Len reports the number of lines covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Join returns the smallest Range covering both r and other. Both ranges
// must belong to the same Buffer for the result to be meaningful.
func (r Range) Join(other Range) Range {
	joined := r
	if other.Start < joined.Start {
		joined.Start = other.Start
	}
	if other.End > joined.End {
		joined.End = other.End
	}
	return joined
}

// Buffer holds the verbatim source lines (no trailing newline) of one
// parsed file, indexed from 1.
type Buffer struct {
	lines []string
}

// New returns a Buffer over the given 0-indexed lines, stored so that
// Line(1) is the first line.
func New(lines []string) *Buffer {
	b := &Buffer{lines: make([]string, len(lines)+1)}
	copy(b.lines[1:], lines)
	return b
}

// FromText splits text on '\n' and returns a Buffer over the resulting
// lines. A trailing newline does not produce a spurious empty final line.
func FromText(text string) *Buffer {
	if text == "" {
		return New(nil)
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return New(lines)
}

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int { return len(b.lines) - 1 }

// Line returns the 1-indexed line n, or "" if n is out of range.
func (b *Buffer) Line(n int) string {
	if n <= 0 || n >= len(b.lines) {
		return ""
	}
	return b.lines[n]
}

// Slice returns the lines in the half-open range r, verbatim.
func (b *Buffer) Slice(r Range) []string {
	start, end := r.Start, r.End
	if start < 1 {
		start = 1
	}
	if end > len(b.lines) {
		end = len(b.lines)
	}
	if start >= end {
		return nil
	}
	return b.lines[start:end]
}

// Append adds a new verbatim line at the end of the buffer and returns the
// Range it occupies.
func (b *Buffer) Append(line string) Range {
	start := len(b.lines)
	b.lines = append(b.lines, line)
	return Range{Start: start, End: start + 1}
}

// All returns every line, in order, 1-indexed line 1 first.
func (b *Buffer) All() []string {
	if len(b.lines) <= 1 {
		return nil
	}
	return b.lines[1:]
}
