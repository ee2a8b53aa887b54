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
	"strings"
	"testing"

	"github.com/portfmt/portfmt/internal/lexer"
	"github.com/portfmt/portfmt/internal/rawlines"
	"github.com/portfmt/portfmt/internal/token"
	"github.com/portfmt/portfmt/internal/parseerr"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) (*rawlines.Buffer, []*token.Token) {
	t.Helper()
	lx := lexer.New()
	for _, line := range strings.Split(text, "\n") {
		require.NoError(t, lx.Feed(line))
	}
	require.NoError(t, lx.Finish())
	return rawlines.FromText(text), lx.Tokens()
}

func TestRawPassesThroughVerbatim(t *testing.T) {
	buf, _ := parse(t, "PORTNAME=foo\nCOMMENT=bar")
	require.Equal(t, []string{"PORTNAME=foo", "COMMENT=bar"}, Raw(buf))
}

func TestReformatAlignsGoalColumn(t *testing.T) {
	buf, toks := parse(t, "PORTNAME=foo\nPORTVERSION=1.0")
	out := Reformat(buf, toks, Options{})
	require.Equal(t, []string{"PORTNAME=\tfoo", "PORTVERSION=\t1.0"}, out)
}

func TestReformatSortsValues(t *testing.T) {
	buf, toks := parse(t, "CATEGORIES=devel www")
	out := Reformat(buf, toks, Options{})
	require.Equal(t, []string{"CATEGORIES=\tdevel www"}, out)

	buf, toks = parse(t, "CATEGORIES=www devel")
	out = Reformat(buf, toks, Options{})
	require.Equal(t, []string{"CATEGORIES=\tdevel www"}, out)
}

func TestReformatLeavesUnsortedVariableAlone(t *testing.T) {
	buf, toks := parse(t, "MASTER_SITES=b a")
	out := Reformat(buf, toks, Options{})
	require.Equal(t, []string{"MASTER_SITES=\tb a"}, out)
}

func TestReformatPrintAsNewlines(t *testing.T) {
	buf, toks := parse(t, "PLIST_FILES=bin/foo bin/bar")
	out := Reformat(buf, toks, Options{})
	require.Len(t, out, 2)
	require.True(t, strings.HasSuffix(out[0], "\\"))
	require.False(t, strings.Contains(out[1], "\\"))
}

func TestReformatWrapsLongValueList(t *testing.T) {
	text := "RUN_DEPENDS=aaaaaaaaaa:a/a bbbbbbbbbb:b/b cccccccccc:c/c dddddddddd:d/d eeeeeeeeee:e/e"
	buf, toks := parse(t, text)
	out := Reformat(buf, toks, Options{WrapCol: 40})
	require.Greater(t, len(out), 1)
	for _, line := range out[:len(out)-1] {
		require.True(t, strings.HasSuffix(line, "\\"))
	}
}

func TestReformatTargetCommand(t *testing.T) {
	buf, toks := parse(t, "post-patch:\n\t@echo hi")
	out := Reformat(buf, toks, Options{})
	require.Equal(t, []string{"post-patch:", "\t@echo hi"}, out)
}

func TestReformatQuotesComplexCommandVerbatim(t *testing.T) {
	text := "post-patch:\n\t@(cd ${WRKSRC} && ${SED} -i.bak 's/foo/bar/' [a-z]*.go; exit 0)"
	buf, toks := parse(t, text)
	out := Reformat(buf, toks, Options{ComplexityThreshold: 3})
	require.Equal(t, []string{"post-patch:", strings.Split(text, "\n")[1]}, out)
}

func TestReformatConditional(t *testing.T) {
	buf, toks := parse(t, ".if ${OPSYS} == FreeBSD\nFOO=bar\n.endif")
	out := Reformat(buf, toks, Options{})
	require.Equal(t, []string{".if ${OPSYS} == FreeBSD", "FOO=\t\tbar", ".endif"}, out)
}

func TestReformatCategoryMakefile(t *testing.T) {
	text := "COMMENT=\tPorts for widgets\nSUBDIR += zzz\nSUBDIR += aaa\n.include <bsd.port.subdir.mk>"
	buf, toks := parse(t, text)
	out := Reformat(buf, toks, Options{})
	require.Equal(t, []string{
		"COMMENT=\tPorts for widgets",
		"SUBDIR += aaa",
		"SUBDIR += zzz",
		".include <bsd.port.subdir.mk>",
	}, out)
}

func TestDumpEmitsOneLinePerToken(t *testing.T) {
	_, toks := parse(t, "PORTNAME=foo")
	out := Dump(toks)
	require.Len(t, out, 3)
	require.True(t, strings.HasPrefix(out[0], "VariableStart"))
	require.Contains(t, out[0], "PORTNAME")
}

func TestDiffEmptyWhenUnchanged(t *testing.T) {
	buf, toks := parse(t, "PORTNAME=\tfoo")
	rendered := Reformat(buf, toks, Options{})
	text, err := Diff(buf, rendered, Options{NoColor: true})
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestDiffReportsDifferencesFound(t *testing.T) {
	buf, toks := parse(t, "PORTNAME=foo")
	rendered := Reformat(buf, toks, Options{})
	text, err := Diff(buf, rendered, Options{NoColor: true})
	require.ErrorIs(t, err, parseerr.DifferencesFoundErr)
	require.Contains(t, text, "-PORTNAME=foo")
	require.Contains(t, text, "+PORTNAME=\tfoo")
}
