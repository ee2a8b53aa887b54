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

import (
	"regexp"

	"github.com/portfmt/portfmt/internal/token"
)

var (
	reVariableAssign = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.]*)\s*(\+=|\?=|:=|!=|=)\s*(.*)$`)
	reTargetHeader   = regexp.MustCompile(`^([A-Za-z0-9_.${}/*+-]+(?:\s+[A-Za-z0-9_.${}/*+-]+)*)\s*(::|:|!)\s*(.*)$`)
	reDirective      = regexp.MustCompile(`^\.\s*([a-zA-Z]+)\b(.*)$`)
)

// directiveKeywords maps a directive's leading keyword to its
// ConditionalType, matching the fixed set spec §2 enumerates.
var directiveKeywords = map[string]token.ConditionalType{
	"if":           token.If,
	"ifdef":        token.Ifdef,
	"ifmake":       token.Ifmake,
	"ifndef":       token.Ifndef,
	"ifnmake":      token.Ifnmake,
	"elif":         token.Elif,
	"elifdef":      token.Elifdef,
	"elifmake":     token.Elifmake,
	"elifndef":     token.Elifndef,
	"else":         token.Else,
	"endif":        token.Endif,
	"for":          token.For,
	"endfor":       token.Endfor,
	"include":      token.Include,
	"sinclude":     token.SInclude,
	"undef":        token.Undef,
	"export":       token.Export,
	"export-env":   token.ExportEnv,
	"export-literal": token.ExportLiteral,
	"unexport":     token.Unexport,
	"unexport-env": token.UnexportEnv,
	"error":        token.Error,
	"warning":      token.Warning,
	"info":         token.Info,
}

// closesBlock reports whether a directive type (.endif or .endfor)
// terminates the block it appears inside of, rather than opening or
// continuing one.
func closesBlock(t token.ConditionalType) bool {
	return t == token.Endif || t == token.Endfor
}
