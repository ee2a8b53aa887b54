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

// SanitizeEOLComments is mandatory pass 2: an end-of-line comment on a
// variable that is not one of the domain-recognised decorative forms is
// hoisted above the variable assignment as its own comment line, so value
// sorting never has to carry an inline comment along with it.
func SanitizeEOLComments(tokens []*token.Token) []*token.Token {
	groups := variableGroups(tokens)
	hoisted := make(map[int]*token.Token)
	for _, g := range groups {
		for j := g[0]; j < g[1]; j++ {
			t := tokens[j]
			if t.Kind == token.Comment && t.Variable != nil && domain.IsComment(t.Payload) {
				hoisted[g[0]] = t
				t.Delete()
			}
		}
	}
	if len(hoisted) == 0 {
		return tokens
	}

	out := make([]*token.Token, 0, len(tokens)+len(hoisted))
	for i, t := range tokens {
		if h, ok := hoisted[i]; ok {
			out = append(out, &token.Token{Kind: token.Comment, Range: h.Range, Payload: h.Payload, Edited: true})
		}
		if !t.Deleted() {
			out = append(out, t)
		}
	}
	return out
}
