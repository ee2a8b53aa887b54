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

package domain

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// decorativeComments are value-position "comments" that are not really a
// comment at all — conventional placeholders meaning "intentionally empty".
var decorativeComments = map[string]bool{
	"#":      true,
	"# empty": true,
	"# none":  true,
	"#none":   true,
}

// IsComment reports whether content is a genuine source comment. Value
// tokens that read as one of the decorative placeholders above are not
// treated as comments by the dedup/sort passes (spec §4.2 is_comment).
func IsComment(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return true
	}
	if !strings.HasPrefix(trimmed, "#") {
		return false
	}
	return !decorativeComments[trimmed]
}

// CompareTokens compares two value tokens belonging to variable `name`
// under the dialect's sort rules: numeric comparison for version-shaped
// variables, dependency-path comparison for *_DEPENDS lists, and ordinary
// case-sensitive string comparison otherwise.
func CompareTokens(name, a, b string) int {
	switch {
	case IsDependsList(name):
		return CompareDependsPath(a, b)
	case name == "PORTREVISION" || name == "PORTEPOCH":
		return compareNumeric(a, b)
	default:
		return cmp.Compare(a, b)
	}
}

func compareNumeric(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return cmp.Compare(ai, bi)
	}
	return cmp.Compare(a, b)
}

// splitOptUse recognises the OPT_USE=VALUE,VALUE,... family: an uppercase
// prefix and a comma-separated suffix list (spec §4.5).
func splitOptUse(value string) (prefix, suffix string, ok bool) {
	eq := strings.IndexByte(value, '=')
	if eq < 0 {
		return "", "", false
	}
	prefix, suffix = value[:eq], value[eq+1:]
	if prefix == "" || suffix == "" || strings.ToUpper(prefix) != prefix {
		return "", "", false
	}
	if !strings.Contains(suffix, ",") {
		return "", "", false
	}
	return prefix, suffix, true
}

// SortOptUseValue sorts the comma-separated suffix of an OPT_USE=a,b,c
// value token and rejoins it, leaving non-matching values untouched.
func SortOptUseValue(value string) string {
	prefix, suffix, ok := splitOptUse(value)
	if !ok {
		return value
	}
	parts := strings.Split(suffix, ",")
	slices.SortStableFunc(parts, strings.Compare)
	return prefix + "=" + strings.Join(parts, ",")
}
