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

import "github.com/portfmt/portfmt/internal/token"

// CollapseAdjacentVariables is mandatory pass 3: two successive assignments
// to the same variable with modifiers drawn from {=, +=, ?=} collapse into
// one. The intermediate VariableEnd/VariableStart pair is deleted, which
// leaves the first VariableStart and the last VariableEnd bracketing a
// single contiguous value-token run once the pipeline compacts. != and :=
// never collapse, since they may be side-effecting. A comment between the
// two assignments, whether a comment line or a value-comment trailing the
// first assignment (already its own token by the time this pass runs),
// breaks adjacency, so they are left alone.
func CollapseAdjacentVariables(tokens []*token.Token) []*token.Token {
	for i := 0; i+1 < len(tokens); i++ {
		end := tokens[i]
		start := tokens[i+1]
		if end.Kind != token.VariableEnd || start.Kind != token.VariableStart {
			continue
		}
		if end.Variable.Name != start.Variable.Name {
			continue
		}
		if i > 0 && tokens[i-1].Kind == token.Comment {
			continue
		}
		if !collapsibleModifier(end.Variable.Modifier) || !collapsibleModifier(start.Variable.Modifier) {
			continue
		}
		end.Delete()
		start.Delete()
	}
	return tokens
}

func collapsibleModifier(m token.Modifier) bool {
	return m == token.Assign || m == token.Append || m == token.Optional
}
