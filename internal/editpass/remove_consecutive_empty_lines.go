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

// RemoveConsecutiveEmptyLines is mandatory pass 6: at most one blank
// comment token in a row survives.
func RemoveConsecutiveEmptyLines(tokens []*token.Token) []*token.Token {
	blankRun := false
	for _, t := range tokens {
		if t.Kind != token.Comment || t.Variable != nil || t.Conditional != nil {
			blankRun = false
			continue
		}
		if strings.TrimSpace(t.Payload) != "" {
			blankRun = false
			continue
		}
		if blankRun {
			t.Delete()
			continue
		}
		blankRun = true
	}
	return tokens
}
