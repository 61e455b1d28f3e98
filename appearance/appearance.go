// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package appearance defines the rendering contexts (appearance traits)
// under which a dynamic color can resolve to different concrete values.
package appearance

//go:generate core generate

// Luminosity is the light or dark interface style of an appearance.
type Luminosity int32 //enums:enum

const (
	// LuminosityUnspecified means that no interface style was requested.
	// Dynamic colors resolve it as [Light].
	LuminosityUnspecified Luminosity = iota

	// Light is the light interface style.
	Light

	// Dark is the dark interface style.
	Dark
)

// Contrast is the accessibility contrast level of an appearance.
type Contrast int32 //enums:enum

const (
	// ContrastUnspecified means that no contrast level was requested.
	// Dynamic colors resolve it as [NormalContrast].
	ContrastUnspecified Contrast = iota

	// NormalContrast is the standard contrast level.
	NormalContrast

	// HighContrast is the increased contrast accessibility setting.
	HighContrast
)

// Traits is a combination of appearance traits that a dynamic color
// is resolved against. The zero value has no traits specified.
type Traits struct {
	Luminosity Luminosity
	Contrast   Contrast
}

// With returns the traits obtained by overriding t with every trait that
// is specified in other, in the same way that a trait collection built
// from several collections is.
func (t Traits) With(other Traits) Traits {
	if other.Luminosity != LuminosityUnspecified {
		t.Luminosity = other.Luminosity
	}
	if other.Contrast != ContrastUnspecified {
		t.Contrast = other.Contrast
	}
	return t
}

// IsDark returns whether the traits select the dark interface style.
func (t Traits) IsDark() bool {
	return t.Luminosity == Dark
}

// IsHighContrast returns whether the traits select high contrast.
func (t Traits) IsHighContrast() bool {
	return t.Contrast == HighContrast
}

// Appearance returns the [Appearance] that requires exactly the
// specified traits of t. [NormalContrast] is not a distinct
// appearance and maps like [ContrastUnspecified].
func (t Traits) Appearance() Appearance {
	switch {
	case t.Luminosity == Light && t.IsHighContrast():
		return LightHighContrastAppearance
	case t.Luminosity == Dark && t.IsHighContrast():
		return DarkHighContrastAppearance
	case t.IsHighContrast():
		return HighContrastAppearance
	case t.Luminosity == Light:
		return LightAppearance
	case t.Luminosity == Dark:
		return DarkAppearance
	}
	return Any
}

// Appearance is one of the fixed rendering contexts that a generated
// color set has a record for.
type Appearance int32 //enums:enum -line-comment

const (
	// Any is the default appearance, used when nothing more specific matches.
	Any Appearance = iota

	// LightAppearance is the light interface style.
	LightAppearance // Light

	// DarkAppearance is the dark interface style.
	DarkAppearance // Dark

	// HighContrastAppearance is high contrast with any interface style.
	HighContrastAppearance // HighContrast

	// LightHighContrastAppearance is the light interface style with high contrast.
	LightHighContrastAppearance // LightHighContrast

	// DarkHighContrastAppearance is the dark interface style with high contrast.
	DarkHighContrastAppearance // DarkHighContrast
)

// Traits returns the traits that the appearance requires.
func (a Appearance) Traits() Traits {
	switch a {
	case LightAppearance:
		return Traits{Luminosity: Light}
	case DarkAppearance:
		return Traits{Luminosity: Dark}
	case HighContrastAppearance:
		return Traits{Contrast: HighContrast}
	case LightHighContrastAppearance:
		return Traits{Luminosity: Light, Contrast: HighContrast}
	case DarkHighContrastAppearance:
		return Traits{Luminosity: Dark, Contrast: HighContrast}
	}
	return Traits{}
}

// Tag is one appearance qualifier of an asset catalog record,
// such as {"luminosity", "dark"}.
type Tag struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

// Catalog appearance qualifier names and values.
const (
	TagLuminosity = "luminosity"
	TagContrast   = "contrast"
	TagLight      = "light"
	TagDark       = "dark"
	TagHigh       = "high"
)

// Tags returns the asset catalog appearance qualifiers of the appearance,
// luminosity first. [Any] has no qualifiers.
func (a Appearance) Tags() []Tag {
	t := a.Traits()
	var tags []Tag
	switch t.Luminosity {
	case Light:
		tags = append(tags, Tag{TagLuminosity, TagLight})
	case Dark:
		tags = append(tags, Tag{TagLuminosity, TagDark})
	}
	if t.IsHighContrast() {
		tags = append(tags, Tag{TagContrast, TagHigh})
	}
	return tags
}

// FromTags returns the traits described by the given asset catalog
// appearance qualifiers. Unknown qualifiers are ignored and reported
// with ok == false so that callers can decide whether they matter.
func FromTags(tags []Tag) (t Traits, ok bool) {
	ok = true
	for _, tg := range tags {
		switch {
		case tg.Appearance == TagLuminosity && tg.Value == TagLight:
			t.Luminosity = Light
		case tg.Appearance == TagLuminosity && tg.Value == TagDark:
			t.Luminosity = Dark
		case tg.Appearance == TagContrast && tg.Value == TagHigh:
			t.Contrast = HighContrast
		default:
			ok = false
		}
	}
	return
}
