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

// Insertion is a brand new variable assignment an optional pass wants
// placed into the file. A pass has no opinion about where a new assignment
// belongs among its peers — that is the merge engine's job (spec §4.4) — so
// passes that need to introduce a variable hand back an Insertion instead
// of splicing tokens in directly.
type Insertion struct {
	Name     string
	Modifier token.Modifier
	Values   []string
	// Comment, if non-empty, is re-attached as a trailing value-comment on
	// the inserted assignment, verbatim (including its leading '#').
	Comment string
}

func hasVariable(tokens []*token.Token, name string) bool {
	for _, t := range tokens {
		if t.Kind == token.VariableStart && t.Variable.Name == name {
			return true
		}
	}
	return false
}
