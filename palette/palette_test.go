// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/syscolors/appearance"
	"cogentcore.org/syscolors/dynamic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem(t *testing.T) {
	p := System()
	require.NoError(t, Validate(p))
	assert.Equal(t, 35, p.Len())

	names := p.Names()
	assert.Equal(t, "systemRed", names[0])
	assert.Equal(t, "darkText", names[len(names)-1])

	seen := map[string]bool{}
	for _, n := range names {
		assert.False(t, seen[n], n)
		seen[n] = true
	}

	// a fresh copy each time
	q := System()
	assert.NoError(t, q.Add("custom", dynamic.RGBA{A: 1}))
	assert.Equal(t, 35, System().Len())
}

func TestSystemFallbacks(t *testing.T) {
	p := System()
	link, err := p.Find("link")
	require.NoError(t, err)
	assert.Equal(t, dynamic.RGB255(0, 122, 255, 1), link.Fallback(false))
	assert.Equal(t, dynamic.RGB255(9, 132, 255, 1), link.Fallback(true))

	sl, err := p.Find("secondaryLabel")
	require.NoError(t, err)
	assert.Equal(t, 0.6, sl.Fallback(false).A)

	fb := p.Fallbacks(false)
	assert.Len(t, fb, 35)
	assert.Equal(t, dynamic.RGB255(255, 255, 255, 0.6), fb["lightText"])
}

func TestAddErrors(t *testing.T) {
	p := &Palette{}
	assert.NoError(t, p.Add("a", dynamic.RGBA{}))
	assert.Error(t, p.Add("a", dynamic.RGBA{}))
	assert.Error(t, p.Add("", dynamic.RGBA{}))
	assert.Error(t, p.Add("b", nil))
	assert.Equal(t, 1, p.Len())

	_, err := New(Entry{"x", dynamic.RGBA{}}, Entry{"x", dynamic.RGBA{}})
	assert.Error(t, err)

	assert.Error(t, Validate(&Palette{}))
}

func TestFind(t *testing.T) {
	p := System()
	_, err := p.Find("systemRedd")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `did you mean "systemRed"`)
	}
	assert.Equal(t, []string{"secondaryLabel"}, p.Suggest("secondarylabel", 1))
	assert.Empty(t, p.Suggest("zzzzzzzzzzzzzzzzzzzzzz", 3))
}

func TestExhaustive(t *testing.T) {
	ref := System()
	missing, extra, err := Exhaustive(System(), ref)
	assert.NoError(t, err)
	assert.Empty(t, missing)
	assert.Empty(t, extra)

	p, err := New(Entry{"link", dynamic.RGBA{}}, Entry{"brandColor", dynamic.RGBA{}})
	require.NoError(t, err)
	missing, extra, err = Exhaustive(p, ref)
	assert.Error(t, err)
	assert.Len(t, missing, 34)
	assert.Equal(t, []string{"brandColor"}, extra)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"palette.toml", "palette.yaml", "palette.json"} {
		t.Run(name, func(t *testing.T) {
			fn := filepath.Join(dir, name)
			sys := System()
			require.NoError(t, Save(sys, fn))
			p, err := Open(fn)
			require.NoError(t, err)
			assert.Equal(t, sys.Names(), p.Names())
			for _, e := range sys.Entries() {
				got, err := p.Find(e.Name)
				require.NoError(t, err)
				want := dynamic.Resolve(e.Color, false)
				have := dynamic.Resolve(got.Color, false)
				for a := range want {
					assert.InDelta(t, 0, dynamic.Distance(want[a], have[a]), 1e-9, "%s %s", e.Name, appearance.Appearance(a))
				}
			}
		})
	}
}

func TestOpenTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "brand.toml")
	src := `
[[Colors]]
Name = "brand"
Light = "#FF3B30"
Dark = "rgba(255, 69, 58, 0.5)"
DarkHighContrast = "#FF6961"

[[Colors]]
Name = "ink"
Any = "#000000"
`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
	p, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, []string{"brand", "ink"}, p.Names())

	brand, _ := p.NamedColor("brand")
	dark := appearance.Traits{Luminosity: appearance.Dark}
	assert.Equal(t, dynamic.RGB255(255, 69, 58, 0.5), brand.Resolve(dark))
	assert.Equal(t, dynamic.RGB255(255, 105, 97, 1), brand.Resolve(dark.With(appearance.Traits{Contrast: appearance.HighContrast})))
	assert.Equal(t, dynamic.RGB255(255, 59, 48, 1), brand.Resolve(appearance.Traits{Contrast: appearance.HighContrast}))

	ink, _ := p.NamedColor("ink")
	assert.Equal(t, dynamic.RGBA{A: 1}, ink.Resolve(dark))
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "palette.xml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("Colors:\n  - Name: half\n    Light: \"#FFFFFF\"\n"), 0666))
	_, err = Open(bad)
	assert.Error(t, err)

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte("Colors:\n  - Name: a\n    Any: \"#FFFFFF\"\n  - Name: a\n    Any: \"#000000\"\n"), 0666))
	_, err = Open(dup)
	assert.Error(t, err)
}
