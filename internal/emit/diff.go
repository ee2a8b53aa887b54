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
	"github.com/pmezard/go-difflib/difflib"
	"github.com/portfmt/portfmt/internal/ansicolor"
	"github.com/portfmt/portfmt/internal/parseerr"
	"github.com/portfmt/portfmt/internal/rawlines"
)

// Diff takes rendered, the output of one of the other modes, and produces
// a unified patch between buf's original text and rendered. It returns
// parseerr.DifferencesFoundErr — not a failure, a status — whenever the
// patch is non-empty (spec §4.5).
func Diff(buf *rawlines.Buffer, rendered []string, opts Options) (string, error) {
	opts = opts.WithDefaults()
	patch := difflib.UnifiedDiff{
		A:        buf.All(),
		B:        rendered,
		FromFile: opts.Filename,
		ToFile:   opts.Filename,
		Context:  opts.DiffContext,
	}
	text, err := difflib.GetUnifiedDiffString(patch)
	if err != nil {
		return "", parseerr.New(parseerr.Unspecified, rawlines.Range{}, "diff: %v", err)
	}
	if text == "" {
		return "", nil
	}
	if !opts.NoColor {
		text = ansicolor.ColorDiff(text)
	}
	return text, parseerr.DifferencesFoundErr
}
