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
	"github.com/portfmt/portfmt/internal/token"
)

// LintClones implements the optional lint-clones pass: it reports variable
// names with more than one VariableStart, in order of their second
// occurrence.
func LintClones(tokens []*token.Token) []string {
	var names []string
	for _, t := range tokens {
		if t.Kind == token.VariableStart {
			names = append(names, t.Variable.Name)
		}
	}
	return collections.FindDuplicates(names)
}
