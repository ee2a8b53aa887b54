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

package emit

import (
	"fmt"
	"strings"

	"github.com/portfmt/portfmt/internal/token"
)

// Dump renders one line per token — `kind(20) range(8) name … data` — a
// debugging and test-oracle format (spec §4.5, §6's token dump grammar).
func Dump(tokens []*token.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, dumpLine(t))
	}
	return out
}

func dumpLine(t *token.Token) string {
	name := dumpName(t)
	rng := dumpRange(t)
	return strings.TrimRight(fmt.Sprintf("%-20s %-8s %-24s %s", t.Kind, rng, name, t.Payload), " ")
}

func dumpName(t *token.Token) string {
	switch {
	case t.Variable != nil:
		return t.Variable.Name
	case t.Conditional != nil:
		return "." + t.Conditional.Type.String()
	case t.Target != nil:
		return strings.Join(t.Target.Names, ",") + t.Target.Colon
	default:
		return ""
	}
}

func dumpRange(t *token.Token) string {
	if t.Range.Len() <= 1 {
		return fmt.Sprintf("%d", t.Range.Start)
	}
	return fmt.Sprintf("%d-%d", t.Range.Start, t.Range.End)
}
