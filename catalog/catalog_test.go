// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/syscolors/appearance"
	"cogentcore.org/syscolors/dynamic"
	"cogentcore.org/syscolors/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatComponent(t *testing.T) {
	assert.Equal(t, "0.478", FormatComponent(122.0/255))
	assert.Equal(t, "1.000", FormatComponent(1))
	assert.Equal(t, "0.000", FormatComponent(0))
	assert.Equal(t, "0.290", FormatComponent(0.29))
}

func TestParseComponent(t *testing.T) {
	for s, want := range map[string]float64{
		"0.478": 0.478,
		"1.000": 1,
		"255":   1,
		"0":     0,
		"0xFF":  1,
		"0x00":  0,
	} {
		v, err := ParseComponent(s)
		if assert.NoError(t, err, s) {
			assert.Equal(t, want, v, s)
		}
	}
	for _, s := range []string{"", "1.5", "256", "0xFFF", "red", "-0.1"} {
		_, err := ParseComponent(s)
		assert.Error(t, err, s)
	}
}

func linkSet(darkAsAny bool) *ColorSet {
	link, _ := palette.System().NamedColor("link")
	return NewColorSet(dynamic.Resolve(link, darkAsAny))
}

func TestNewColorSet(t *testing.T) {
	cs := linkSet(false)
	require.Len(t, cs.Colors, 6)
	assert.Equal(t, XcodeInfo, cs.Info)

	anyRec := cs.Colors[0]
	assert.Empty(t, anyRec.Appearances)
	assert.Equal(t, Universal, anyRec.Idiom)
	assert.Equal(t, SRGB, anyRec.Color.ColorSpace)
	assert.Equal(t, Components{Alpha: "1.000", Blue: "1.000", Green: "0.478", Red: "0.000"}, anyRec.Color.Components)

	assert.Equal(t, []appearance.Tag{{Appearance: "luminosity", Value: "light"}}, cs.Colors[1].Appearances)
	assert.Equal(t, []appearance.Tag{{Appearance: "luminosity", Value: "dark"}}, cs.Colors[2].Appearances)
	assert.Equal(t, []appearance.Tag{{Appearance: "contrast", Value: "high"}}, cs.Colors[3].Appearances)
	assert.Equal(t, []appearance.Tag{{Appearance: "luminosity", Value: "light"}, {Appearance: "contrast", Value: "high"}}, cs.Colors[4].Appearances)
	assert.Equal(t, []appearance.Tag{{Appearance: "luminosity", Value: "dark"}, {Appearance: "contrast", Value: "high"}}, cs.Colors[5].Appearances)

	dark := linkSet(true)
	assert.Equal(t, dark.Colors[2].Color, dark.Colors[0].Color)
	assert.Equal(t, dark.Colors[2].Color, dark.Colors[3].Color)
	assert.NotEqual(t, cs.Colors[2].Color, cs.Colors[0].Color)
}

func TestMarshalContents(t *testing.T) {
	b, err := Marshal(&Contents{Info: XcodeInfo})
	require.NoError(t, err)
	assert.Equal(t, `{
  "info" : {
    "author" : "xcode",
    "version" : 1
  }
}
`, string(b))
}

func TestMarshalColorSet(t *testing.T) {
	red := dynamic.RGB255(255, 0, 0, 1)
	cs := &ColorSet{Info: XcodeInfo, Colors: []Color{
		{Idiom: Universal, Color: ColorValue{SRGB, NewComponents(red)}},
		{Idiom: Universal, Appearances: appearance.DarkHighContrastAppearance.Tags(), Color: ColorValue{SRGB, NewComponents(red)}},
	}}
	b, err := Marshal(cs)
	require.NoError(t, err)
	assert.Equal(t, `{
  "colors" : [
    {
      "color" : {
        "color-space" : "srgb",
        "components" : {
          "alpha" : "1.000",
          "blue" : "0.000",
          "green" : "0.000",
          "red" : "1.000"
        }
      },
      "idiom" : "universal"
    },
    {
      "appearances" : [
        {
          "appearance" : "luminosity",
          "value" : "dark"
        },
        {
          "appearance" : "contrast",
          "value" : "high"
        }
      ],
      "color" : {
        "color-space" : "srgb",
        "components" : {
          "alpha" : "1.000",
          "blue" : "0.000",
          "green" : "0.000",
          "red" : "1.000"
        }
      },
      "idiom" : "universal"
    }
  ],
  "info" : {
    "author" : "xcode",
    "version" : 1
  }
}
`, string(b))

	var back ColorSet
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, *cs, back)

	_, err = Marshal(42)
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	cs := linkSet(false)
	light := dynamic.RGB255(0, 122, 255, 1)
	darkLink := dynamic.RGB255(9, 132, 255, 1)
	near := func(want dynamic.RGBA, tr appearance.Traits) {
		c, ok := cs.Resolve(tr)
		require.True(t, ok)
		assert.InDelta(t, 0, dynamic.Distance(want, c), 0.01, "%v", tr)
	}
	near(light, appearance.Traits{})
	near(light, appearance.Traits{Luminosity: appearance.Light})
	near(darkLink, appearance.Traits{Luminosity: appearance.Dark})
	near(darkLink, appearance.DarkHighContrastAppearance.Traits())
	near(light, appearance.HighContrastAppearance.Traits())

	// with only any and high contrast records, high contrast wins
	hc := &ColorSet{Colors: []Color{
		{Idiom: Universal, Color: ColorValue{SRGB, NewComponents(dynamic.RGBA{A: 1})}},
		{Idiom: Universal, Appearances: appearance.HighContrastAppearance.Tags(), Color: ColorValue{SRGB, NewComponents(dynamic.RGBA{R: 1, A: 1})}},
	}}
	c, ok := hc.Resolve(appearance.DarkHighContrastAppearance.Traits())
	assert.True(t, ok)
	assert.Equal(t, dynamic.RGBA{R: 1, A: 1}, c)
	c, ok = hc.Resolve(appearance.DarkAppearance.Traits())
	assert.True(t, ok)
	assert.Equal(t, dynamic.RGBA{A: 1}, c)

	_, ok = (&ColorSet{}).Resolve(appearance.Traits{})
	assert.False(t, ok)
}

func TestResolveAny(t *testing.T) {
	light := dynamic.RGB255(0, 122, 255, 1)
	darkLink := dynamic.RGB255(9, 132, 255, 1)

	// with no style set the any record wins over the light one
	c, ok := linkSet(true).Resolve(appearance.Traits{})
	require.True(t, ok)
	assert.InDelta(t, 0, dynamic.Distance(darkLink, c), 0.01)
	c, ok = linkSet(true).Resolve(appearance.HighContrastAppearance.Traits())
	require.True(t, ok)
	assert.InDelta(t, 0, dynamic.Distance(darkLink, c), 0.01)
	c, ok = linkSet(true).Resolve(appearance.LightAppearance.Traits())
	require.True(t, ok)
	assert.InDelta(t, 0, dynamic.Distance(light, c), 0.01)

	// a set without an any record uses its light record
	cs := linkSet(true)
	cs.Colors = cs.Colors[1:3]
	c, ok = cs.Resolve(appearance.Traits{})
	require.True(t, ok)
	assert.InDelta(t, 0, dynamic.Distance(light, c), 0.01)
}

func TestVariants(t *testing.T) {
	v, err := linkSet(false).Variants()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v[appearance.DarkAppearance].B)

	cs := linkSet(false)
	cs.Colors = cs.Colors[:5]
	_, err = cs.Variants()
	assert.Error(t, err)

	cs = linkSet(false)
	cs.Colors[1].Appearances = nil
	_, err = cs.Variants()
	assert.Error(t, err)

	cs = linkSet(false)
	cs.Colors[0].Color.Components.Red = "bogus"
	_, err = cs.Variants()
	assert.Error(t, err)
}

func writeSystem(t *testing.T, dir string) *Writer {
	w := NewWriter(dir, "SystemColors")
	require.NoError(t, w.Reset())
	for _, e := range palette.System().Entries() {
		require.NoError(t, w.WriteColorSet(e.Name, NewColorSet(dynamic.Resolve(e.Color, false))))
	}
	return w
}

func TestWriteOpen(t *testing.T) {
	dir := t.TempDir()
	w := writeSystem(t, dir)
	assert.Equal(t, filepath.Join(dir, "SystemColors.xcassets"), w.Dir)

	cat, err := Open(w.Dir)
	require.NoError(t, err)
	assert.Equal(t, XcodeInfo, cat.Contents.Info)
	assert.Equal(t, 35, cat.Len())
	assert.ElementsMatch(t, palette.System().Names(), cat.Names())

	sr, ok := cat.NamedColor("systemRed")
	require.True(t, ok)
	assert.InDelta(t, 0, dynamic.Distance(dynamic.RGB255(255, 69, 58, 1), sr.Resolve(appearance.DarkAppearance.Traits())), 0.01)
	_, ok = cat.NamedColor("systemBrown")
	assert.False(t, ok)

	assert.Empty(t, Compare(cat, palette.System(), false, 0.01))

	// reset removes every color set
	require.NoError(t, w.Reset())
	cat, err = Open(w.Dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())

	_, err = Open(filepath.Join(dir, "missing.xcassets"))
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	w := writeSystem(t, dir)

	cat, err := Open(w.Dir)
	require.NoError(t, err)
	ms := Compare(cat, palette.System(), true, 0.01)
	assert.NotEmpty(t, ms)

	require.NoError(t, os.RemoveAll(filepath.Join(w.Dir, "link.colorset")))
	require.NoError(t, w.WriteColorSet("brandColor", linkSet(false)))
	cat, err = Open(w.Dir)
	require.NoError(t, err)
	ms = Compare(cat, palette.System(), false, 0.01)
	require.Len(t, ms, 2)
	assert.Equal(t, "link", ms[0].Name)
	assert.Equal(t, "missing color set", ms[0].Reason)
	assert.Equal(t, "brandColor", ms[1].Name)
	assert.Equal(t, "extra color set", ms[1].Reason)
}
