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

import "github.com/bmatcuk/doublestar/v4"

// plistGlobVariables lists the variables whose values may contain
// doublestar glob patterns rather than literal paths.
var plistGlobVariables = map[string]bool{
	"PLIST_FILES": true,
	"PORTDOCS":    true,
	"PORTEXAMPLES": true,
}

// IsPlistGlobVariable reports whether name's values are path patterns that
// should be glob-validated rather than treated as literal paths.
func IsPlistGlobVariable(name string) bool {
	return plistGlobVariables[name]
}

// ValidPlistPattern reports whether value is a syntactically valid
// doublestar glob pattern, the same validation the teacher applies to
// Bazel glob() patterns before ever matching them against a tree.
func ValidPlistPattern(value string) bool {
	return doublestar.ValidatePattern(value)
}

// MatchesPlistPattern reports whether path matches the (already validated)
// glob pattern.
func MatchesPlistPattern(pattern, path string) bool {
	return doublestar.MatchUnvalidated(pattern, path)
}
