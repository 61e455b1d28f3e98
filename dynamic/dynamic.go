// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamic provides colors that resolve to different concrete
// values depending on the active appearance (light or dark interface
// style, and accessibility contrast).
package dynamic

import (
	"math"

	"cogentcore.org/syscolors/appearance"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color that can be resolved against appearance traits.
// [RGBA] is the static implementation and [Dynamic] the standard
// dynamic one.
type Color interface {
	// Resolve returns the concrete color for the given traits.
	Resolve(t appearance.Traits) RGBA
}

// Dynamic is a color with separate values for the light and dark
// interface styles in normal and high contrast. A zero high contrast
// value means that the normal contrast value of the same interface
// style is used for high contrast too.
type Dynamic struct {
	Light             RGBA
	Dark              RGBA
	LightHighContrast RGBA
	DarkHighContrast  RGBA
}

// New returns a new [Dynamic] color with the given light and dark values
// that does not change in high contrast.
func New(light, dark RGBA) Dynamic {
	return Dynamic{Light: light, Dark: dark}
}

// WithHighContrast returns a copy of d with the given light and dark
// high contrast values.
func (d Dynamic) WithHighContrast(light, dark RGBA) Dynamic {
	d.LightHighContrast = light
	d.DarkHighContrast = dark
	return d
}

// Resolve implements [Color]. An unspecified interface style resolves
// as light, and an unspecified contrast as normal.
func (d Dynamic) Resolve(t appearance.Traits) RGBA {
	if t.IsDark() {
		if t.IsHighContrast() && !d.DarkHighContrast.IsZero() {
			return d.DarkHighContrast
		}
		return d.Dark
	}
	if t.IsHighContrast() && !d.LightHighContrast.IsZero() {
		return d.LightHighContrast
	}
	return d.Light
}

// Variants are the concrete values of a color under each [appearance.Appearance].
type Variants [appearance.AppearanceN]RGBA

// Resolve returns the [Variants] of c. The [appearance.Any] variant is
// the default resolution of c, or its dark resolution if darkAsAny is
// set. The [appearance.HighContrastAppearance] variant is derived from
// the Any color rather than from c, so once darkAsAny has made the Any
// color static it is the same as the dark variant.
func Resolve(c Color, darkAsAny bool) Variants {
	base := c
	if darkAsAny {
		base = c.Resolve(appearance.DarkAppearance.Traits())
	}
	var v Variants
	v[appearance.Any] = base.Resolve(appearance.Traits{})
	v[appearance.LightAppearance] = c.Resolve(appearance.LightAppearance.Traits())
	v[appearance.DarkAppearance] = c.Resolve(appearance.DarkAppearance.Traits())
	v[appearance.HighContrastAppearance] = base.Resolve(appearance.HighContrastAppearance.Traits())
	v[appearance.LightHighContrastAppearance] = c.Resolve(appearance.LightHighContrastAppearance.Traits())
	v[appearance.DarkHighContrastAppearance] = c.Resolve(appearance.DarkHighContrastAppearance.Traits())
	return v
}

// Distance returns a perceptual distance between two colors: the
// CIEDE2000 difference of their color components (on go-colorful's
// 0 to 1 lightness scale) plus the absolute difference of their alphas.
func Distance(a, b RGBA) float64 {
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	return ca.DistanceCIEDE2000(cb) + math.Abs(a.A-b.A)
}
