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

package domain

// specialTargets are the fixed set of pseudo-targets the dialect attaches
// ordering/formatting significance to.
var specialTargets = map[string]bool{
	"all":          true,
	"clean":        true,
	"install":      true,
	"package":      true,
	"configure":    true,
	"build":        true,
	"extract":      true,
	"fetch":        true,
	"patch":        true,
	"deinstall":    true,
	"describe":     true,
	"test":         true,
	"checksum":     true,
	"makesum":      true,
	".PHONY":       true,
}

// knownTargets are targets this implementation recognises by name outside
// of the special set, e.g. framework hook points.
var knownTargets = map[string]bool{
	"pre-everything":  true,
	"post-everything":  true,
	"pre-fetch":        true,
	"post-fetch":       true,
	"pre-extract":      true,
	"post-extract":     true,
	"pre-patch":        true,
	"post-patch":       true,
	"pre-configure":    true,
	"post-configure":   true,
	"pre-build":        true,
	"post-build":       true,
	"pre-install":      true,
	"post-install":     true,
	"pre-package":      true,
	"post-package":     true,
	"do-fetch":         true,
	"do-extract":       true,
	"do-patch":         true,
	"do-configure":     true,
	"do-build":         true,
	"do-install":       true,
	"do-package":       true,
}

// IsSpecialTarget reports whether name is one of the fixed pseudo-targets.
func IsSpecialTarget(name string) bool { return specialTargets[name] }

// IsKnownTarget reports whether name is a recognised target, special or a
// known framework hook point.
func IsKnownTarget(name string) bool {
	return specialTargets[name] || knownTargets[name]
}

// wrapTriggerWords force a line break before or after themselves when
// wrapping a target command.
var wrapTriggerWords = map[string]bool{
	"&&": true,
	"||": true,
	"|":  true,
	";":  true,
}

// IsWrapTrigger reports whether word forces a command-wrap boundary.
func IsWrapTrigger(word string) bool { return wrapTriggerWords[word] }

// wrapAfterEachTokenCommands lists target-command words whose every
// argument gets its own wrapped line, regardless of accumulated width.
var wrapAfterEachTokenCommands = map[string]bool{
	"@${REINPLACE_CMD}": true,
	"@${SED}":           true,
}

// TargetCommandShouldWrap reports whether the emitter may break the line
// before word once the command overflows its wrap column: a wrap-trigger
// word or any other non-empty word.
func TargetCommandShouldWrap(word string) bool {
	if IsWrapTrigger(word) {
		return true
	}
	return len(word) > 0
}

// TargetCommandWrapAfterEachToken reports whether every argument of cmd
// should be placed on its own wrapped continuation line.
func TargetCommandWrapAfterEachToken(cmd string) bool {
	return wrapAfterEachTokenCommands[cmd]
}

// complexityChars are counted to gauge a target command's "complexity"; if
// the count exceeds the configured threshold and the caller has not asked
// for command reformatting, the emitter quotes the original lines verbatim
// (spec §4.5, §9 Open Question: newer behaviour locked in).
var complexityChars = map[rune]bool{
	'`': true, '(': true, ')': true, '[': true, ']': true, ';': true,
}

// CommandComplexity counts the complexity-relevant characters in a target
// command line.
func CommandComplexity(line string) int {
	n := 0
	for _, r := range line {
		if complexityChars[r] {
			n++
		}
	}
	return n
}
