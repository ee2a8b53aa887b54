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
	"github.com/portfmt/portfmt/internal/domain"
	"github.com/portfmt/portfmt/internal/token"
)

// SanitizeAppendModifier is mandatory pass 4: the first occurrence of a
// variable in the file owns its modifier. A first occurrence using += has
// nothing to append to, so it is rewritten to =, unless the variable is one
// of the flag family (CFLAGS, CXXFLAGS, LDFLAGS, RUSTFLAGS), which commonly
// append to a default set by the port framework itself.
func SanitizeAppendModifier(tokens []*token.Token) []*token.Token {
	seen := make(map[string]bool)
	for _, t := range tokens {
		if t.Kind != token.VariableStart {
			continue
		}
		name := t.Variable.Name
		if seen[name] {
			continue
		}
		seen[name] = true
		if t.Variable.Modifier == token.Append && !domain.IsFlagFamily(name) {
			t.Variable.Modifier = token.Assign
			t.Edited = true
		}
	}
	return tokens
}
