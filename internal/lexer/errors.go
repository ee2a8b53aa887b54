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

package lexer

import "errors"

var (
	// ErrUnbalancedGroup is raised when a ${...} or $(...) expansion is
	// never closed before end of input.
	ErrUnbalancedGroup = errors.New("unbalanced ${...} or $(...) expansion")
	// ErrUnexpectedDollar is raised when '$' is followed by a character
	// that cannot start a make variable expansion.
	ErrUnexpectedDollar = errors.New("unexpected character after '$'")
)
