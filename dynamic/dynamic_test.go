// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"image/color"
	"testing"

	"cogentcore.org/syscolors/appearance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRed = New(RGB255(255, 59, 48, 1), RGB255(255, 69, 58, 1)).
	WithHighContrast(RGB255(215, 0, 21, 1), RGB255(255, 105, 97, 1))

func TestDynamicResolve(t *testing.T) {
	assert.Equal(t, testRed.Light, testRed.Resolve(appearance.Traits{}))
	assert.Equal(t, testRed.Light, testRed.Resolve(appearance.Traits{Luminosity: appearance.Light}))
	assert.Equal(t, testRed.Dark, testRed.Resolve(appearance.Traits{Luminosity: appearance.Dark}))
	assert.Equal(t, testRed.LightHighContrast, testRed.Resolve(appearance.Traits{Contrast: appearance.HighContrast}))
	assert.Equal(t, testRed.DarkHighContrast, testRed.Resolve(appearance.Traits{Luminosity: appearance.Dark, Contrast: appearance.HighContrast}))
	assert.Equal(t, testRed.Dark, testRed.Resolve(appearance.Traits{Luminosity: appearance.Dark, Contrast: appearance.NormalContrast}))

	label := New(RGB255(0, 0, 0, 1), RGB255(255, 255, 255, 1))
	assert.Equal(t, label.Dark, label.Resolve(appearance.DarkHighContrastAppearance.Traits()))
	assert.Equal(t, label.Light, label.Resolve(appearance.HighContrastAppearance.Traits()))
}

func TestResolveVariants(t *testing.T) {
	v := Resolve(testRed, false)
	assert.Equal(t, testRed.Light, v[appearance.Any])
	assert.Equal(t, testRed.Light, v[appearance.LightAppearance])
	assert.Equal(t, testRed.Dark, v[appearance.DarkAppearance])
	assert.Equal(t, testRed.LightHighContrast, v[appearance.HighContrastAppearance])
	assert.Equal(t, testRed.LightHighContrast, v[appearance.LightHighContrastAppearance])
	assert.Equal(t, testRed.DarkHighContrast, v[appearance.DarkHighContrastAppearance])

	d := Resolve(testRed, true)
	assert.Equal(t, d[appearance.DarkAppearance], d[appearance.Any])
	// the any color is static once resolved dark
	assert.Equal(t, testRed.Dark, d[appearance.HighContrastAppearance])
	assert.Equal(t, v[appearance.LightAppearance], d[appearance.LightAppearance])

	s := RGB255(255, 255, 255, 0.6)
	for _, c := range Resolve(s, false) {
		assert.Equal(t, s, c)
	}
}

func TestParseRGBA(t *testing.T) {
	c, err := ParseRGBA("#007AFF")
	require.NoError(t, err)
	assert.Equal(t, RGB255(0, 122, 255, 1), c)

	c, err = ParseRGBA("#3C3C4399")
	require.NoError(t, err)
	assert.Equal(t, RGB255(60, 60, 67, 0.6), c)

	c, err = ParseRGBA("rgba(60, 60, 67, 0.29)")
	require.NoError(t, err)
	assert.Equal(t, RGB255(60, 60, 67, 0.29), c)

	c, err = ParseRGBA(" rgb(255,255,255) ")
	require.NoError(t, err)
	assert.Equal(t, RGBA{1, 1, 1, 1}, c)

	for _, bad := range []string{"", "red", "#12345", "#FFF", "#GGGGGG", "#00 0FF", "#0000FG", "rgba(1, 2, 3)", "rgb(300, 0, 0)", "rgba(0, 0, 0, 2)"} {
		_, err := ParseRGBA(bad)
		assert.Error(t, err, bad)
	}
}

func TestMarshalText(t *testing.T) {
	tests := []struct {
		c    RGBA
		text string
	}{
		{RGB255(255, 59, 48, 1), "#FF3B30"},
		{RGB255(60, 60, 67, 0.6), "#3C3C4399"},
		{RGB255(60, 60, 67, 0.29), "rgba(60, 60, 67, 0.29)"},
		{RGB255(116, 116, 128, 0.08), "rgba(116, 116, 128, 0.08)"},
	}
	for _, test := range tests {
		b, err := test.c.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, test.text, string(b))

		var back RGBA
		require.NoError(t, back.UnmarshalText(b))
		assert.InDelta(t, test.c.R, back.R, 1e-12)
		assert.InDelta(t, test.c.G, back.G, 1e-12)
		assert.InDelta(t, test.c.B, back.B, 1e-12)
		assert.Equal(t, test.c.A, back.A)
	}
}

func TestColorInterop(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 122, 255, 255}, RGB255(0, 122, 255, 1).AsRGBA())
	assert.Equal(t, "#FFFFFF99", RGB255(255, 255, 255, 0.6).Hex())
	assert.Equal(t, "#010203", RGBA{0.6 / 255, 2 / 255.0, 3 / 255.0, 1}.Hex())
	assert.Equal(t, RGBA{0.5, 0.5, 0.5, 1}, RGBA{1, 1, 1, 0.5}.Over(RGBA{0, 0, 0, 1}))
}

func TestDistance(t *testing.T) {
	a := RGB255(0, 122, 255, 1)
	assert.Zero(t, Distance(a, a))
	assert.Greater(t, Distance(a, RGB255(255, 59, 48, 1)), 0.1)
	assert.InDelta(t, 0.4, Distance(a, RGB255(0, 122, 255, 0.6)), 1e-9)
}
