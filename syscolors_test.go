// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syscolors

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"cogentcore.org/syscolors/appearance"
	"cogentcore.org/syscolors/catalog"
	"cogentcore.org/syscolors/dynamic"
	"cogentcore.org/syscolors/palette"
	"cogentcore.org/syscolors/srcgen"
	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptySource is a color source that has no colors, like an app
// bundle without the generated asset catalog.
type emptySource struct{}

func (emptySource) NamedColor(name string) (dynamic.Color, bool) { return nil, false }

func version(t *testing.T, v string) *semver.Version {
	sv, err := semver.NewVersion(v)
	require.NoError(t, err)
	return sv
}

func TestAll(t *testing.T) {
	assert.Equal(t, palette.System().Names(), Names())
	for _, n := range All {
		acc, ok := Accessor(n.Name)
		require.True(t, ok, n.Name)
		assert.NotNil(t, acc)
	}
	_, ok := Accessor("systemBrown")
	assert.False(t, ok)
}

func TestDetect(t *testing.T) {
	sys := palette.System()
	assert.Equal(t, FallbackOnly, Detect(nil))
	assert.Equal(t, FallbackOnly, Detect(&Platform{Native: sys, Assets: sys}))
	assert.Equal(t, FallbackOnly, Detect(&Platform{Version: version(t, "10.3"), Native: sys, Assets: sys}))
	assert.Equal(t, NamedAssets, Detect(&Platform{Version: version(t, "11.0"), Native: sys, Assets: sys}))
	assert.Equal(t, NamedAssets, Detect(&Platform{Version: version(t, "12.4.1"), Native: sys, Assets: sys}))
	assert.Equal(t, NativeColors, Detect(&Platform{Version: version(t, "13"), Native: sys, Assets: sys}))
	assert.Equal(t, NativeColors, Detect(&Platform{Version: version(t, "17.2"), Native: sys}))
	assert.Equal(t, NamedAssets, Detect(&Platform{Version: version(t, "17.2"), Assets: sys}))
	assert.Equal(t, FallbackOnly, Detect(&Platform{Version: version(t, "17.2")}))
}

func TestFallbackOnly(t *testing.T) {
	defer SetPlatform(nil)
	fallbacks := palette.System().Fallbacks(false)

	SetPlatform(nil)
	assert.Equal(t, FallbackOnly, CurrentCapability())
	for _, n := range All {
		assert.Equal(t, fallbacks[n.Name], n.Color(), n.Name)
	}

	assert.Equal(t, FallbackOnly, SetPlatform(&Platform{Version: version(t, "10.0"), Assets: palette.System()}))
	for _, n := range All {
		assert.Equal(t, fallbacks[n.Name], n.Color(), n.Name)
	}
	assert.Equal(t, dynamic.RGB255(0, 122, 255, 1), Link())
}

func TestMissingAssets(t *testing.T) {
	defer SetPlatform(nil)
	fallbacks := palette.System().Fallbacks(false)

	assert.Equal(t, NamedAssets, SetPlatform(&Platform{Version: version(t, "12.0"), Assets: emptySource{}}))
	for _, n := range All {
		assert.Equal(t, fallbacks[n.Name], n.Color(), n.Name)
		assert.Equal(t, n.Color(), n.Color(), n.Name)
	}
}

func TestNamedAssets(t *testing.T) {
	defer SetPlatform(nil)
	dir := t.TempDir()
	w := catalog.NewWriter(dir, "SystemColors")
	require.NoError(t, w.Reset())
	for _, e := range palette.System().Entries() {
		require.NoError(t, w.WriteColorSet(e.Name, catalog.NewColorSet(dynamic.Resolve(e.Color, false))))
	}
	cat, err := catalog.Open(w.Dir)
	require.NoError(t, err)

	assert.Equal(t, NamedAssets, SetPlatform(&Platform{Version: version(t, "11.4"), Assets: cat}))
	assert.Equal(t, NamedAssets, CurrentCapability())
	c := SystemRed()
	assert.IsType(t, catalog.Asset{}, c)
	dark := c.Resolve(appearance.DarkAppearance.Traits())
	assert.InDelta(t, 0, dynamic.Distance(dynamic.RGB255(255, 69, 58, 1), dark), 0.01)
}

func TestNamedAssetsDarkAsAny(t *testing.T) {
	defer SetPlatform(nil)
	dir := t.TempDir()
	w := catalog.NewWriter(dir, "SystemColors")
	require.NoError(t, w.Reset())
	for _, e := range palette.System().Entries() {
		require.NoError(t, w.WriteColorSet(e.Name, catalog.NewColorSet(dynamic.Resolve(e.Color, true))))
	}
	cat, err := catalog.Open(w.Dir)
	require.NoError(t, err)

	assert.Equal(t, NamedAssets, SetPlatform(&Platform{Version: version(t, "12.0"), Assets: cat}))
	fallbacks := palette.System().Fallbacks(true)
	assert.Equal(t, dynamic.RGBA{A: 1}, fallbacks["systemBackground"])
	for _, n := range All {
		got := n.Color().Resolve(appearance.Traits{})
		assert.InDelta(t, 0, dynamic.Distance(fallbacks[n.Name], got), 0.01, n.Name)
	}
	assert.Equal(t, dynamic.RGBA{A: 1}, SystemBackground().Resolve(appearance.Traits{}))
}

func TestNativeColors(t *testing.T) {
	defer SetPlatform(nil)
	sys := palette.System()
	assert.Equal(t, NativeColors, SetPlatform(&Platform{Version: version(t, "13.0"), Native: sys, Assets: emptySource{}}))

	native, _ := sys.NamedColor("secondarySystemBackground")
	assert.Equal(t, native, SecondarySystemBackground())
	dhc := SecondarySystemBackground().Resolve(appearance.DarkHighContrastAppearance.Traits())
	assert.Equal(t, dynamic.RGB255(36, 36, 38, 1), dhc)

	// names the platform does not know come from the asset catalog,
	// or the fallback if that is missing too
	brand := dynamic.RGB255(1, 2, 3, 1)
	assert.Equal(t, brand, Lookup("brandColor", brand))
}

func TestGeneratedSource(t *testing.T) {
	want, err := srcgen.Source(palette.System(), &srcgen.Options{Lang: srcgen.Go, Package: "syscolors"})
	require.NoError(t, err)
	have, err := os.ReadFile("system_colors_gen.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(have), "system_colors_gen.go is out of date; run go generate")
}

func TestLookupReport(t *testing.T) {
	defer SetPlatform(nil)
	var b bytes.Buffer
	defer slog.SetDefault(slog.Default())
	slog.SetDefault(slog.New(slog.NewTextHandler(&b, nil)))

	SetPlatform(&Platform{Version: version(t, "12.0"), Assets: emptySource{}})
	brand := dynamic.RGB255(1, 2, 3, 1)
	assert.Equal(t, brand, Lookup("brandColor", brand))
	if debugAssets {
		assert.Contains(t, b.String(), "failed to load color from asset catalog")
		assert.Contains(t, b.String(), "brandColor")
	} else {
		assert.Empty(t, b.String())
	}
}
