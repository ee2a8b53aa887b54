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

package editpass

import (
	"fmt"

	"github.com/portfmt/portfmt/internal/domain"
	"github.com/portfmt/portfmt/internal/token"
)

// LintPlistGlobs implements the optional lint-plist-globs pass: it reports
// every value of a glob-bearing variable (PLIST_FILES, PORTDOCS, ...) that
// is not a syntactically valid doublestar pattern.
func LintPlistGlobs(tokens []*token.Token) []string {
	var out []string
	for _, g := range variableGroups(tokens) {
		name := tokens[g[0]].Variable.Name
		if !domain.IsPlistGlobVariable(name) {
			continue
		}
		for j := g[0] + 1; j < g[1]-1; j++ {
			if tokens[j].Kind != token.VariableToken {
				continue
			}
			v := tokens[j].Payload
			if !domain.ValidPlistPattern(v) {
				out = append(out, fmt.Sprintf("%s: invalid glob pattern %q", name, v))
			}
		}
	}
	return out
}
