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
	"slices"
	"strings"

	"github.com/portfmt/portfmt/internal/collections"
	"github.com/portfmt/portfmt/internal/domain"
	"github.com/portfmt/portfmt/internal/token"
)

// LintStatus is the result of the optional lint-order pass: LintOk or
// LintDiffsFound.
type LintStatus int

const (
	LintOk LintStatus = iota
	LintDiffsFound
)

// LintOrderResult holds the file's actual variable/target ordering next to
// the canonical ordering domain.CompareOrder defines, for a caller to
// render as a diff. Rendering is left to the caller (cmd/portclippy prints
// it), so this package never depends on presentation concerns.
type LintOrderResult struct {
	Status        LintStatus
	VariablesHave []string
	VariablesWant []string
	TargetsHave   []string
	TargetsWant   []string
}

// LintOrder implements the optional lint-order pass.
func LintOrder(tokens []*token.Token) LintOrderResult {
	variablesHave := firstOccurrenceVariableNames(tokens)
	variablesWant := slices.Clone(variablesHave)
	slices.SortStableFunc(variablesWant, domain.CompareOrder)

	targetsHave := firstOccurrenceTargetNames(tokens)
	targetsWant := slices.Clone(targetsHave)
	slices.SortStableFunc(targetsWant, func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	status := LintOk
	if !slices.Equal(variablesHave, variablesWant) || !slices.Equal(targetsHave, targetsWant) {
		status = LintDiffsFound
	}
	return LintOrderResult{
		Status:        status,
		VariablesHave: variablesHave,
		VariablesWant: variablesWant,
		TargetsHave:   targetsHave,
		TargetsWant:   targetsWant,
	}
}

func firstOccurrenceVariableNames(tokens []*token.Token) []string {
	seen := collections.SetOf[string]()
	var names []string
	for _, g := range variableGroups(tokens) {
		name := tokens[g[0]].Variable.Name
		if seen.Contains(name) {
			continue
		}
		seen.Add(name)
		names = append(names, name)
	}
	return names
}

func firstOccurrenceTargetNames(tokens []*token.Token) []string {
	seen := collections.SetOf[string]()
	var names []string
	for _, t := range tokens {
		if t.Kind != token.TargetStart {
			continue
		}
		for _, n := range t.Target.Names {
			if seen.Contains(n) {
				continue
			}
			seen.Add(n)
			names = append(names, n)
		}
	}
	return names
}
