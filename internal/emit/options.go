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

// Package emit renders a token sequence back to text in one of four modes:
// raw passthrough, canonically reformatted, unified diff, or a debugging
// token dump (spec §4.5/§6).
package emit

// Mode names the four output modes. Each mode has its own function (Raw,
// Reformat, Diff, Dump); none of them reads Options.Mode.
type Mode int

const (
	ModeRaw Mode = iota
	ModeReformat
	ModeDiff
	ModeDump
)

// Options mirrors the settings record of spec §6, restricted to the fields
// the emitter consults.
type Options struct {
	Mode Mode

	// WrapCol is the soft wrap column for variable value lines.
	WrapCol int
	// CommandWrapCol is the soft wrap column for target commands.
	CommandWrapCol int
	// ComplexityThreshold is the command complexity above which a target
	// command is left verbatim instead of reformatted.
	ComplexityThreshold int
	// DiffContext is the number of context lines surrounding each unified
	// diff hunk.
	DiffContext int
	// Filename names the file in diff headers only.
	Filename string

	// Unsorted disables value sorting even for variables that would
	// otherwise be sorted (the UnsortedVariables behavior flag).
	Unsorted bool
	// ReformatCommands forces target commands to be wrapped even when
	// their complexity exceeds ComplexityThreshold.
	ReformatCommands bool
	// NoColor disables ANSI coloring of diff output.
	NoColor bool
}

// WithDefaults returns a copy of opts with every zero-valued numeric/string
// field replaced by its spec §6 default.
func (opts Options) WithDefaults() Options {
	if opts.WrapCol <= 0 {
		opts.WrapCol = 80
	}
	if opts.CommandWrapCol <= 0 {
		opts.CommandWrapCol = 65
	}
	if opts.ComplexityThreshold <= 0 {
		opts.ComplexityThreshold = 8
	}
	if opts.DiffContext <= 0 {
		opts.DiffContext = 3
	}
	if opts.Filename == "" {
		opts.Filename = "/dev/stdin"
	}
	return opts
}
