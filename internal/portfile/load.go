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

// Package portfile wires together the pieces every command-line front end
// needs to go from a path on disk to a mandatory-pass-cleaned token stream,
// and back again. The four cmd/* binaries share this instead of each
// re-implementing read-lex-run.
package portfile

import (
	"io"
	"os"

	"github.com/portfmt/portfmt/internal/editpass"
	"github.com/portfmt/portfmt/internal/lexer"
	"github.com/portfmt/portfmt/internal/parseerr"
	"github.com/portfmt/portfmt/internal/rawlines"
	"github.com/portfmt/portfmt/internal/token"
)

// File holds a parsed, mandatory-pass-cleaned port Makefile: the raw line
// buffer emit.Raw/Diff render against, and the token stream every other
// component operates on.
type File struct {
	Path   string
	Buffer *rawlines.Buffer
	Tokens []*token.Token
}

// Load reads path (or stdin when path is "-" or "/dev/stdin"), lexes it,
// and runs the mandatory edit passes, per spec §4.3.
func Load(path string) (*File, error) {
	text, err := readAll(path)
	if err != nil {
		return nil, parseerr.New(parseerr.Io, rawlines.Range{}, "%s: %v", path, err)
	}
	return Parse(path, text)
}

// Parse is Load's text-already-in-hand counterpart, split out so tests and
// the merge subcommand's second input can share it without a real file.
func Parse(path, text string) (*File, error) {
	buf := rawlines.FromText(text)
	lx := lexer.New()
	for _, line := range buf.All() {
		if err := lx.Feed(line); err != nil {
			return nil, err
		}
	}
	if err := lx.Finish(); err != nil {
		return nil, err
	}
	tokens := editpass.Run(lx.Tokens(), editpass.Mandatory...)
	return &File{Path: path, Buffer: buf, Tokens: tokens}, nil
}

func readAll(path string) (string, error) {
	if path == "" || path == "-" || path == "/dev/stdin" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// WriteInPlace overwrites f.Path with lines joined by "\n" plus a trailing
// newline, preserving the permissions of the existing file.
func WriteInPlace(f *File, lines []string) error {
	info, err := os.Stat(f.Path)
	mode := os.FileMode(0644)
	if err == nil {
		mode = info.Mode()
	}
	content := ""
	for _, line := range lines {
		content += line + "\n"
	}
	return os.WriteFile(f.Path, []byte(content), mode)
}
