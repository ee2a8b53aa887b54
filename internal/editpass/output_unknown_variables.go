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
	"github.com/portfmt/portfmt/internal/collections"
	"github.com/portfmt/portfmt/internal/domain"
	"github.com/portfmt/portfmt/internal/token"
)

// OutputUnknownVariables implements the optional output-unknown-variables
// pass: every assigned variable whose variable_order_block is Unknown,
// plus any options-helper variable (PYTHON_VARS, PYTHON_USE, ...) whose
// option prefix is not declared in OPTIONS_DEFINE — those are "implied
// unknown" relative to the options the port actually declares.
func OutputUnknownVariables(tokens []*token.Token) []string {
	optionsDefine := collections.SetOf[string]()
	for _, g := range variableGroups(tokens) {
		if tokens[g[0]].Variable.Name != "OPTIONS_DEFINE" {
			continue
		}
		for j := g[0] + 1; j < g[1]-1; j++ {
			if tokens[j].Kind == token.VariableToken {
				optionsDefine.Add(tokens[j].Payload)
			}
		}
	}

	seen := collections.SetOf[string]()
	var out []string
	for _, g := range variableGroups(tokens) {
		name := tokens[g[0]].Variable.Name
		if seen.Contains(name) {
			continue
		}
		if block, _ := domain.VariableOrderBlock(name); block == domain.Unknown {
			seen.Add(name)
			out = append(out, name)
			continue
		}
		if h, ok := domain.IsOptionsHelper(name); ok && !optionsDefine.Contains(h.Option) {
			seen.Add(name)
			out = append(out, name)
		}
	}
	return out
}
