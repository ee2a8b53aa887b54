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

// Package domain is the read-only knowledge base describing the ports
// dialect: which block a variable belongs to, how its values sort, and
// which targets are special. It is a pure function of a name — no I/O, no
// mutable state after the package-level tables are built (spec §4.2).
//
// The precomputed tables follow the lazy alias/lookup style of
// language/internal/cc/platform/platforms.go in the teacher repository:
// small literal maps consulted by cheap, allocation-free lookups.
package domain

import (
	"cmp"
	"regexp"
	"strings"
)

// Block is a named bucket of variables that must appear together, and in a
// specific order, in a well-formed port Makefile.
type Block int

const (
	Unknown Block = iota
	Preamble
	Licensing
	Depends
	Uses
	Configure
	Build
	Options
	Plist
	Maintainer
)

func (b Block) String() string {
	switch b {
	case Preamble:
		return "Preamble"
	case Licensing:
		return "Licensing"
	case Depends:
		return "Depends"
	case Uses:
		return "Uses"
	case Configure:
		return "Configure"
	case Build:
		return "Build"
	case Options:
		return "Options"
	case Plist:
		return "Plist"
	case Maintainer:
		return "Maintainer"
	default:
		return "Unknown"
	}
}

// blockOrder fixes the canonical ordering of blocks within a file.
var blockOrder = map[Block]int{
	Preamble:   0,
	Maintainer: 1,
	Licensing:  2,
	Depends:    3,
	Uses:       4,
	Configure:  5,
	Build:      6,
	Options:    7,
	Plist:      8,
	Unknown:    9,
}

// variableEntry is one row of the domain table for a single known variable.
type variableEntry struct {
	block          Block
	position       int // order within block
	leaveUnsorted  bool
	leaveUnformat  bool
	printNewlines  bool
	ignoreWrapCol  bool
	skipGoalcol    bool
	skipDedup      bool
	indentGoalcol  int
	isDependsList  bool // *_DEPENDS-shaped value: pattern:path[:target]
	isUsesDedupKey bool // dedup key is the argument before the first ':'
}

// knownVariables enumerates the subset of the dialect's vocabulary this
// implementation recognises by name. Variables absent here resolve to
// Block Unknown via VariableOrderBlock, along with a USES hint when one of
// usesHints below names it.
var knownVariables = map[string]variableEntry{
	"PORTNAME":     {block: Preamble, position: 0, indentGoalcol: 16},
	"PORTVERSION":  {block: Preamble, position: 1, indentGoalcol: 16, leaveUnsorted: true},
	"DISTVERSION":  {block: Preamble, position: 1, indentGoalcol: 16, leaveUnsorted: true},
	"DISTVERSIONPREFIX": {block: Preamble, position: 1, indentGoalcol: 16, leaveUnsorted: true},
	"PORTREVISION": {block: Preamble, position: 2, indentGoalcol: 16, leaveUnsorted: true},
	"PORTEPOCH":    {block: Preamble, position: 3, indentGoalcol: 16, leaveUnsorted: true},
	"CATEGORIES":   {block: Preamble, position: 4, indentGoalcol: 16},
	"MASTER_SITES": {block: Preamble, position: 5, indentGoalcol: 16, leaveUnsorted: true},
	"PKGNAMEPREFIX": {block: Preamble, position: 6, indentGoalcol: 16},
	"PKGNAMESUFFIX": {block: Preamble, position: 7, indentGoalcol: 16},
	"DISTNAME":     {block: Preamble, position: 8, indentGoalcol: 16, leaveUnsorted: true},
	"DISTFILES":    {block: Preamble, position: 9, indentGoalcol: 16},
	"EXTRACT_SUFX": {block: Preamble, position: 10, indentGoalcol: 16},

	"MAINTAINER": {block: Maintainer, position: 0, indentGoalcol: 16, leaveUnsorted: true, skipDedup: true},
	"COMMENT":    {block: Maintainer, position: 1, indentGoalcol: 16, leaveUnsorted: true, printNewlines: false, ignoreWrapCol: true},
	"WWW":        {block: Maintainer, position: 2, indentGoalcol: 16, leaveUnsorted: true},

	"LICENSE":        {block: Licensing, position: 0, indentGoalcol: 16},
	"LICENSE_COMB":    {block: Licensing, position: 1, indentGoalcol: 16, leaveUnsorted: true},
	"LICENSE_FILE":    {block: Licensing, position: 2, indentGoalcol: 16, leaveUnsorted: true},
	"LICENSE_PERMS":   {block: Licensing, position: 3, indentGoalcol: 16},

	"BUILD_DEPENDS": {block: Depends, position: 0, indentGoalcol: 16, isDependsList: true},
	"LIB_DEPENDS":   {block: Depends, position: 1, indentGoalcol: 16, isDependsList: true},
	"RUN_DEPENDS":   {block: Depends, position: 2, indentGoalcol: 16, isDependsList: true},
	"TEST_DEPENDS":  {block: Depends, position: 3, indentGoalcol: 16, isDependsList: true},

	"USES":     {block: Uses, position: 0, indentGoalcol: 16, isUsesDedupKey: true},
	"USE_GITHUB": {block: Uses, position: 1, indentGoalcol: 16, leaveUnsorted: true},

	"GNU_CONFIGURE":   {block: Configure, position: 0, indentGoalcol: 16, leaveUnsorted: true},
	"CONFIGURE_ARGS":  {block: Configure, position: 1, indentGoalcol: 16, leaveUnsorted: true, printNewlines: true},
	"CONFIGURE_ENV":   {block: Configure, position: 2, indentGoalcol: 16, leaveUnsorted: true},
	"CPPFLAGS":        {block: Configure, position: 3, indentGoalcol: 16, leaveUnsorted: true},
	"CFLAGS":          {block: Configure, position: 4, indentGoalcol: 16, leaveUnsorted: true},
	"CXXFLAGS":        {block: Configure, position: 5, indentGoalcol: 16, leaveUnsorted: true},
	"LDFLAGS":         {block: Configure, position: 6, indentGoalcol: 16, leaveUnsorted: true},
	"RUSTFLAGS":       {block: Configure, position: 7, indentGoalcol: 16, leaveUnsorted: true},
	"MAKE_ARGS":       {block: Build, position: 0, indentGoalcol: 16, leaveUnsorted: true},
	"MAKE_ENV":        {block: Build, position: 1, indentGoalcol: 16, leaveUnsorted: true},
	"ALL_TARGET":      {block: Build, position: 2, indentGoalcol: 16},
	"INSTALL_TARGET":  {block: Build, position: 3, indentGoalcol: 16},

	"OPTIONS_DEFINE":  {block: Options, position: 0, indentGoalcol: 16},
	"OPTIONS_DEFAULT": {block: Options, position: 1, indentGoalcol: 16},
	"OPTIONS_SUB":     {block: Options, position: 2, indentGoalcol: 16, leaveUnsorted: true},

	"PLIST_FILES": {block: Plist, position: 0, indentGoalcol: 16, printNewlines: true},
	"PORTDOCS":    {block: Plist, position: 1, indentGoalcol: 16, printNewlines: true},
	"PORTEXAMPLES": {block: Plist, position: 2, indentGoalcol: 16, printNewlines: true},

	"MASTERDIR": {block: Preamble, position: 11, indentGoalcol: 16, leaveUnsorted: true, skipGoalcol: true},
}

// usesHints maps a variable name that this table does NOT otherwise know
// about to the set of USES= values that would make it known, surfaced by
// the linter's "unknown variable" report (spec §4.2 variable_order_block).
var usesHints = map[string][]string{
	"CARGO_CRATES":     {"cargo"},
	"CARGO_ENV":        {"cargo"},
	"GO_MODULE":        {"go"},
	"PYTHON_PKGNAMEPREFIX": {"python"},
	"QMAKE_ARGS":       {"qmake"},
	"CMAKE_ARGS":       {"cmake"},
	"CMAKE_ON":         {"cmake"},
	"CMAKE_OFF":        {"cmake"},
}

// optionsHelperRegex recognises OPTION_{USE,USE_OFF,VARS,VARS_OFF} style
// names, e.g. PYTHON_USE or FOO_VARS_OFF.
var optionsHelperRegex = regexp.MustCompile(`^([A-Z0-9_]+)_(USE|USE_OFF|VARS|VARS_OFF)$`)

// OptionsHelper describes a parsed OPT_VARS/OPT_USE-shaped variable name.
type OptionsHelper struct {
	Option string // the option prefix, e.g. "PYTHON"
	Helper string // one of USE, USE_OFF, VARS, VARS_OFF
}

// IsOptionsHelper reports whether name matches the options-helper grammar
// and, if so, its decomposition.
func IsOptionsHelper(name string) (OptionsHelper, bool) {
	m := optionsHelperRegex.FindStringSubmatch(name)
	if m == nil {
		return OptionsHelper{}, false
	}
	return OptionsHelper{Option: m[1], Helper: m[2]}, true
}

// VariableOrderBlock returns the canonical block for name, or Unknown plus
// the set of USES= values (if any) that would make the variable known.
func VariableOrderBlock(name string) (Block, []string) {
	if e, ok := knownVariables[name]; ok {
		return e.block, nil
	}
	if h, ok := IsOptionsHelper(name); ok {
		if _, known := knownVariables[h.Option]; known || true {
			return Options, nil
		}
	}
	return Unknown, usesHints[name]
}

// CompareOrder orders two variable names by (block, position-within-block,
// case-insensitive name) — the canonical ordering spec §4.3 lint-order
// diffs the file against.
func CompareOrder(a, b string) int {
	ea, aKnown := knownVariables[a]
	eb, bKnown := knownVariables[b]
	switch {
	case aKnown && bKnown:
		if d := cmp.Compare(blockOrder[ea.block], blockOrder[eb.block]); d != 0 {
			return d
		}
		if d := cmp.Compare(ea.position, eb.position); d != 0 {
			return d
		}
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	case aKnown && !bKnown:
		return -1
	case !aKnown && bKnown:
		return 1
	default:
		return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

func lookup(name string) variableEntry { return knownVariables[name] }

func LeaveUnsorted(name string) bool  { return lookup(name).leaveUnsorted }
func LeaveUnformatted(name string) bool { return lookup(name).leaveUnformat }
func PrintAsNewlines(name string) bool { return lookup(name).printNewlines }
func IgnoreWrapCol(name string) bool  { return lookup(name).ignoreWrapCol }
func SkipGoalcol(name string) bool    { return lookup(name).skipGoalcol }
func SkipDedup(name string) bool      { return lookup(name).skipDedup }

// IndentGoalcol returns the minimum goal column for name, defaulting to 16
// (spec §4.5's clamp) when the variable is not otherwise known.
func IndentGoalcol(name string) int {
	if e, ok := knownVariables[name]; ok && e.indentGoalcol > 0 {
		return e.indentGoalcol
	}
	return 16
}

// IsUsesDedupKeyed reports whether name's dedup pass (spec §4.3 pass 5)
// should key on the argument before the first ':' rather than the whole
// value token (USES=compiler:c++11-lang shadows compiler:c++14-lang).
func IsUsesDedupKeyed(name string) bool { return lookup(name).isUsesDedupKey }

// IsDependsList reports whether name holds *_DEPENDS-shaped
// "pattern:path[:target]" entries, whose comparator is domain-specific
// (see deppath.go).
func IsDependsList(name string) bool { return lookup(name).isDependsList }

// flagFamily lists the variables sanitize-append-modifier exempts from
// "first += becomes =" rewriting (spec §4.3 pass 4).
var flagFamily = map[string]bool{
	"CFLAGS":    true,
	"CXXFLAGS":  true,
	"LDFLAGS":   true,
	"RUSTFLAGS": true,
}

// IsFlagFamily reports whether name is one of the flag-family variables
// exempt from sanitize-append-modifier.
func IsFlagFamily(name string) bool { return flagFamily[name] }
