// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/syscolors/palette"
	"cogentcore.org/syscolors/srcgen"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Render(&b, palette.System(), termenv.Ascii, false))
	out := b.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 36)
	assert.Contains(t, lines[0], "Color")
	assert.Contains(t, lines[0], "DarkHighContrast")
	assert.NotContains(t, out, "\x1b[")

	var link string
	for _, l := range lines {
		if strings.HasPrefix(l, "Link ") {
			link = l
		}
	}
	assert.Contains(t, link, "#007AFF")
	assert.Contains(t, link, "#0984FF")
}

func TestRenderColors(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Render(&b, palette.System(), termenv.TrueColor, true))
	assert.Contains(t, b.String(), "\x1b[")
}

func TestHighlight(t *testing.T) {
	src, err := srcgen.Source(palette.System(), &srcgen.Options{Name: "SystemColors"})
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, Highlight(&b, src, srcgen.Swift, "noop"))
	assert.Equal(t, string(src), b.String())

	b.Reset()
	require.NoError(t, Highlight(&b, src, srcgen.Swift, "terminal256"))
	assert.Contains(t, b.String(), "\x1b[")
	assert.Contains(t, b.String(), "systemRed")
}
