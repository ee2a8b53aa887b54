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
	"fmt"

	"github.com/portfmt/portfmt/internal/rawlines"
	"github.com/portfmt/portfmt/internal/token"
)

// KakouneSelectObjectOnLine implements the optional
// kakoune-select-object-on-line(line) pass: it returns a Kakoune "select"
// command (1-indexed line.column,line.column ranges) spanning the variable
// assignment or target block that contains line, or false if line falls
// outside every block.
func KakouneSelectObjectOnLine(tokens []*token.Token, line int) (string, bool) {
	for _, g := range variableGroups(tokens) {
		r := tokens[g[0]].Range.Join(tokens[g[1]-1].Range)
		if containsLine(r, line) {
			return selectCommand(r), true
		}
	}

	var open *token.Token
	for _, t := range tokens {
		switch t.Kind {
		case token.TargetStart:
			open = t
		case token.TargetEnd:
			if open != nil {
				r := open.Range.Join(t.Range)
				if containsLine(r, line) {
					return selectCommand(r), true
				}
				open = nil
			}
		}
	}
	return "", false
}

func containsLine(r rawlines.Range, line int) bool {
	return line >= r.Start && line < r.End
}

func selectCommand(r rawlines.Range) string {
	return fmt.Sprintf("select %d.1,%d.1", r.Start, r.End-1)
}
