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
	"regexp"

	"github.com/portfmt/portfmt/internal/token"
)

// OutputVariableValue implements the optional output-variable-value
// pass: it emits raw value tokens of every variable whose name matches
// nameRegex, one per line, in file order.
func OutputVariableValue(tokens []*token.Token, nameRegex *regexp.Regexp) []string {
	var out []string
	for _, g := range variableGroups(tokens) {
		if !nameRegex.MatchString(tokens[g[0]].Variable.Name) {
			continue
		}
		for j := g[0] + 1; j < g[1]-1; j++ {
			if tokens[j].Kind == token.VariableToken {
				out = append(out, tokens[j].Payload)
			}
		}
	}
	return out
}
