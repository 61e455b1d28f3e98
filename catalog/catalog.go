// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog reads and writes Xcode asset catalogs (.xcassets
// directories) containing color sets.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/syscolors/appearance"
	"cogentcore.org/syscolors/dynamic"
)

const (
	// Ext is the extension of an asset catalog directory.
	Ext = ".xcassets"

	// ColorSetExt is the extension of a color set directory.
	ColorSetExt = ".colorset"

	// ContentsFile is the name of the metadata file in every
	// catalog and color set directory.
	ContentsFile = "Contents.json"

	// Universal is the device idiom of every generated color record.
	Universal = "universal"

	// SRGB is the color space of every generated color record.
	SRGB = "srgb"
)

// Info is the info block of every Contents.json file.
type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// XcodeInfo is the info block that Xcode itself writes.
var XcodeInfo = Info{Version: 1, Author: "xcode"}

// Contents is the Contents.json file at the root of a catalog, which
// marks the directory as an asset catalog.
type Contents struct {
	Info Info `json:"info"`
}

// ColorSet is the Contents.json file of a color set directory.
type ColorSet struct {
	Info   Info    `json:"info"`
	Colors []Color `json:"colors"`
}

// Color is one record of a [ColorSet]: the color to use under the
// given appearance qualifiers. No qualifiers means any appearance.
type Color struct {
	Idiom       string           `json:"idiom"`
	Appearances []appearance.Tag `json:"appearances,omitempty"`
	Color       ColorValue       `json:"color"`
}

// ColorValue is the color of a [Color] record.
type ColorValue struct {
	ColorSpace string     `json:"color-space"`
	Components Components `json:"components"`
}

// Components are the color components of a [ColorValue], as written
// by [FormatComponent].
type Components struct {
	Alpha string `json:"alpha"`
	Blue  string `json:"blue"`
	Green string `json:"green"`
	Red   string `json:"red"`
}

// NewComponents returns the components of the given color.
func NewComponents(c dynamic.RGBA) Components {
	return Components{
		Alpha: FormatComponent(c.A),
		Blue:  FormatComponent(c.B),
		Green: FormatComponent(c.G),
		Red:   FormatComponent(c.R),
	}
}

// RGBA returns the color described by the components.
func (cp Components) RGBA() (dynamic.RGBA, error) {
	var c dynamic.RGBA
	var err error
	if c.R, err = ParseComponent(cp.Red); err != nil {
		return c, fmt.Errorf("red: %w", err)
	}
	if c.G, err = ParseComponent(cp.Green); err != nil {
		return c, fmt.Errorf("green: %w", err)
	}
	if c.B, err = ParseComponent(cp.Blue); err != nil {
		return c, fmt.Errorf("blue: %w", err)
	}
	if c.A, err = ParseComponent(cp.Alpha); err != nil {
		return c, fmt.Errorf("alpha: %w", err)
	}
	return c, nil
}

// FormatComponent formats a color component in the range [0, 1] with
// exactly three fractional digits.
func FormatComponent(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// ParseComponent parses a color component in any of the forms Xcode
// writes: a decimal fraction such as "0.478", an integer on the 0 to
// 255 scale such as "122", or a hexadecimal byte such as "0x7A".
func ParseComponent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex component %q", s)
		}
		return float64(n) / 255, nil
	}
	if !strings.Contains(s, ".") {
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid integer component %q", s)
		}
		return float64(n) / 255, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 1 {
		return 0, fmt.Errorf("invalid component %q", s)
	}
	return v, nil
}

// NewColorSet returns the color set for the given variants, with one
// record per [appearance.Appearance] in the order any, light, dark,
// high contrast, light high contrast, and dark high contrast.
func NewColorSet(v dynamic.Variants) *ColorSet {
	cs := &ColorSet{Info: XcodeInfo}
	for _, a := range appearance.AppearanceValues() {
		cs.Colors = append(cs.Colors, Color{
			Idiom:       Universal,
			Appearances: a.Tags(),
			Color: ColorValue{
				ColorSpace: SRGB,
				Components: NewComponents(v[a]),
			},
		})
	}
	return cs
}

// Resolve returns the color of the record that best matches the given
// traits. A record matches if every one of its appearance qualifiers
// is satisfied by the traits; among matching records, one that
// qualifies the luminosity beats one that qualifies the contrast,
// which beats one with no qualifiers. Traits with no luminosity only
// match records without a luminosity qualifier, so they select the
// any appearance as iOS 11 and 12 do, falling back to the light
// records in a set without one. It returns false if no record matches.
func (cs *ColorSet) Resolve(t appearance.Traits) (dynamic.RGBA, bool) {
	best := cs.best(t)
	if best < 0 && t.Luminosity == appearance.LuminosityUnspecified {
		t.Luminosity = appearance.Light
		best = cs.best(t)
	}
	if best < 0 {
		return dynamic.RGBA{}, false
	}
	c, err := cs.Colors[best].Color.Components.RGBA()
	if err != nil {
		return dynamic.RGBA{}, false
	}
	return c, true
}

// best returns the index of the record that best matches t, or -1.
func (cs *ColorSet) best(t appearance.Traits) int {
	best, bestScore := -1, -1
	for i, rec := range cs.Colors {
		if rec.Idiom != "" && rec.Idiom != Universal {
			continue
		}
		rt, ok := appearance.FromTags(rec.Appearances)
		if !ok {
			continue
		}
		score := 0
		if rt.Luminosity != appearance.LuminosityUnspecified {
			if rt.Luminosity != t.Luminosity {
				continue
			}
			score += 2
		}
		if rt.IsHighContrast() {
			if !t.IsHighContrast() {
				continue
			}
			score++
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

// Variants returns the color recorded for each appearance. It returns
// an error if a record is missing, duplicated, or malformed.
func (cs *ColorSet) Variants() (dynamic.Variants, error) {
	var v dynamic.Variants
	var seen [appearance.AppearanceN]bool
	for i, rec := range cs.Colors {
		t, ok := appearance.FromTags(rec.Appearances)
		if !ok {
			return v, fmt.Errorf("record %d: unknown appearance %v", i, rec.Appearances)
		}
		a := t.Appearance()
		if seen[a] {
			return v, fmt.Errorf("record %d: duplicate %s record", i, a)
		}
		c, err := rec.Color.Components.RGBA()
		if err != nil {
			return v, fmt.Errorf("record %d: %w", i, err)
		}
		v[a], seen[a] = c, true
	}
	for a, ok := range seen {
		if !ok {
			return v, fmt.Errorf("missing %s record", appearance.Appearance(a))
		}
	}
	return v, nil
}
