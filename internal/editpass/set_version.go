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

// SetVersion implements the optional set-version(newver) pass: it writes
// DISTVERSION/PORTVERSION (whichever is present; PORTVERSION is inserted if
// neither is) and zeroes any existing PORTREVISION/PORTEPOCH, since a new
// upstream version resets the port's own revision counters.
func SetVersion(tokens []*token.Token, newver string) ([]*token.Token, []Insertion) {
	wrote := false
	for _, g := range variableGroups(tokens) {
		switch tokens[g[0]].Variable.Name {
		case "DISTVERSION", "PORTVERSION":
			for j := g[0] + 1; j < g[1]-1; j++ {
				if tokens[j].Kind == token.VariableToken {
					tokens[j].Payload = newver
					tokens[j].Edited = true
					wrote = true
				}
			}
		case "PORTREVISION", "PORTEPOCH":
			for j := g[0] + 1; j < g[1]-1; j++ {
				if tokens[j].Kind == token.VariableToken {
					tokens[j].Payload = "0"
					tokens[j].Edited = true
				}
			}
		}
	}
	if wrote {
		return tokens, nil
	}
	return tokens, []Insertion{{Name: "PORTVERSION", Modifier: token.Assign, Values: []string{newver}}}
}
