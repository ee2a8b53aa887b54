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

	"github.com/portfmt/portfmt/internal/token"
)

// SanitizeComments is mandatory pass 1: inside target bodies, strip
// trailing whitespace from comment tokens and re-emit them as edited.
func SanitizeComments(tokens []*token.Token) []*token.Token {
	inTarget := false
	for _, t := range tokens {
		switch t.Kind {
		case token.TargetStart:
			inTarget = true
		case token.TargetEnd:
			inTarget = false
		case token.Comment:
			if !inTarget {
				continue
			}
			trimmed := strings.TrimRight(t.Payload, " \t")
			if trimmed != t.Payload {
				t.Payload = trimmed
				t.Edited = true
			}
		}
	}
	return tokens
}
