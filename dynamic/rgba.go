// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/syscolors/appearance"
)

// RGBA is a non-alpha-premultiplied sRGB color with float64 components
// in the range [0, 1]. It resolves to itself under every appearance, so
// it is also the static [Color].
type RGBA struct {
	R, G, B, A float64
}

// RGB255 returns the [RGBA] color with the given 8-bit red, green, and
// blue components and the given alpha in the range [0, 1].
func RGB255(r, g, b uint8, a float64) RGBA {
	return RGBA{float64(r) / 255, float64(g) / 255, float64(b) / 255, a}
}

// Resolve returns c; an RGBA color looks the same under every appearance.
func (c RGBA) Resolve(t appearance.Traits) RGBA {
	return c
}

// IsZero returns whether all components of c are zero.
func (c RGBA) IsZero() bool {
	return c == RGBA{}
}

// RGBA implements [color.Color]. It returns alpha-premultiplied 16-bit
// components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	af := clamp(c.A)
	a = uint32(af*0xffff + 0.5)
	r = uint32(clamp(c.R)*af*0xffff + 0.5)
	g = uint32(clamp(c.G)*af*0xffff + 0.5)
	b = uint32(clamp(c.B)*af*0xffff + 0.5)
	return
}

// AsRGBA returns c as an 8-bit alpha-premultiplied [color.RGBA].
func (c RGBA) AsRGBA() color.RGBA {
	return colors.AsRGBA(c)
}

// Over returns the opaque color that results from compositing c
// over the given background color.
func (c RGBA) Over(bg RGBA) RGBA {
	a := clamp(c.A)
	return RGBA{
		R: c.R*a + bg.R*(1-a),
		G: c.G*a + bg.G*(1-a),
		B: c.B*a + bg.B*(1-a),
		A: 1,
	}
}

// Hex returns c in the #RRGGBB form, or #RRGGBBAA if c is not opaque,
// rounding each component to 8 bits.
func (c RGBA) Hex() string {
	s := colors.AsHex(color.NRGBA{to8(c.R), to8(c.G), to8(c.B), 0xff})
	if c.A < 1 {
		return s[:7] + fmt.Sprintf("%02X", to8(c.A))
	}
	return s[:7]
}

// String returns the text form of c; see [RGBA.MarshalText].
func (c RGBA) String() string {
	b, _ := c.MarshalText()
	return string(b)
}

// MarshalText implements [encoding.TextMarshaler]. Colors whose
// components are exact 8-bit values are written in hex form;
// everything else is written as rgba(R, G, B, A), with R, G, and B
// on the 0 to 255 scale and A on the 0 to 1 scale. Hex colors
// round-trip through [ParseRGBA] exactly.
func (c RGBA) MarshalText() ([]byte, error) {
	if exact8(c.R) && exact8(c.G) && exact8(c.B) && exact8(c.A) {
		return []byte(c.Hex()), nil
	}
	s := fmt.Sprintf("rgba(%s, %s, %s, %s)", scale255(c.R), scale255(c.G), scale255(c.B),
		strconv.FormatFloat(c.A, 'g', -1, 64))
	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseRGBA].
func (c *RGBA) UnmarshalText(text []byte) error {
	p, err := ParseRGBA(string(text))
	if err != nil {
		return err
	}
	*c = p
	return nil
}

// ParseRGBA parses a color in one of the forms #RRGGBB, #RRGGBBAA,
// rgb(R, G, B), or rgba(R, G, B, A), where R, G, and B are on the
// 0 to 255 scale (fractions allowed) and A is on the 0 to 1 scale.
func ParseRGBA(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, "rgba(", 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, "rgb(", 3)
	}
	return RGBA{}, fmt.Errorf("dynamic.ParseRGBA: invalid color %q", s)
}

func parseHex(s string) (RGBA, error) {
	if len(s) != 7 && len(s) != 9 {
		return RGBA{}, fmt.Errorf("dynamic.ParseRGBA: hex color %q must have 6 or 8 digits", s)
	}
	if strings.TrimLeft(s[1:], "0123456789abcdefABCDEF") != "" {
		return RGBA{}, fmt.Errorf("dynamic.ParseRGBA: invalid hex digit in %q", s)
	}
	h, err := colors.FromHex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("dynamic.ParseRGBA: %w", err)
	}
	return RGB255(h.R, h.G, h.B, float64(h.A)/255), nil
}

func parseFunc(s, prefix string, n int) (RGBA, error) {
	fields := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, prefix), ")"), ",")
	if len(fields) != n {
		return RGBA{}, fmt.Errorf("dynamic.ParseRGBA: %q must have %d components", s, n)
	}
	vals := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("dynamic.ParseRGBA: invalid component in %q: %w", s, err)
		}
		vals[i] = v
	}
	c := RGBA{vals[0] / 255, vals[1] / 255, vals[2] / 255, 1}
	if n == 4 {
		c.A = vals[3]
	}
	if !c.valid() {
		return RGBA{}, fmt.Errorf("dynamic.ParseRGBA: %q is out of range", s)
	}
	return c, nil
}

func (c RGBA) valid() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func clamp(v float64) float64 {
	return min(max(v, 0), 1)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp(v) * 255))
}

// exact8 returns whether v is exactly representable as n/255.
func exact8(v float64) bool {
	return v >= 0 && v <= 1 && float64(to8(v))/255 == v
}

func scale255(v float64) string {
	s := v * 255
	if r := math.Round(s); math.Abs(s-r) < 1e-9 {
		s = r
	}
	return strconv.FormatFloat(s, 'g', -1, 64)
}
