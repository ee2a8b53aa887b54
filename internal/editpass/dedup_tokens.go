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
	"strings"

	"github.com/portfmt/portfmt/internal/domain"
	"github.com/portfmt/portfmt/internal/token"
)

// DedupTokens is mandatory pass 5: within one variable's value list, remove
// duplicates, preserving first-occurrence order. USES (and any variable
// domain.IsUsesDedupKeyed names) dedups on the argument before the value's
// first ':', so "compiler:c++11-lang" shadows a later
// "compiler:c++14-lang". Variables domain.SkipDedup exempts are left
// untouched, and a value-comment makes the remainder of that variable's
// list verbatim (nothing after it is considered for removal).
func DedupTokens(tokens []*token.Token) []*token.Token {
	for _, g := range variableGroups(tokens) {
		name := tokens[g[0]].Variable.Name
		if domain.SkipDedup(name) {
			continue
		}
		keyed := domain.IsUsesDedupKeyed(name)
		seen := make(map[string]bool)
		verbatim := false
		for j := g[0] + 1; j < g[1]-1; j++ {
			t := tokens[j]
			if t.Kind == token.Comment {
				verbatim = true
				continue
			}
			if t.Kind != token.VariableToken || verbatim {
				continue
			}
			key := t.Payload
			if keyed {
				if idx := strings.IndexByte(key, ':'); idx >= 0 {
					key = key[:idx]
				}
			}
			if seen[key] {
				t.Delete()
				continue
			}
			seen[key] = true
		}
	}
	return tokens
}
