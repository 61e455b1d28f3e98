// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syscolors provides the iOS 13 dynamic system colors, such as
// [SystemRed] and [SecondaryLabel], on every OS version. Each color is
// taken from the platform when it provides the color natively, from the
// generated asset catalog when the platform supports named colors, and
// from a literal fallback otherwise. See [SetPlatform].
//
// The accessors are generated by the syscolors command from the built-in
// palette, which also generates the matching asset catalog for apps.
package syscolors

//go:generate core generate
//go:generate go run ./cmd/syscolors -lang go -package syscolors -source system_colors_gen.go -catalog=false

import (
	"cogentcore.org/syscolors/dynamic"
)

// Named is a color accessor with the name of its color.
type Named struct {
	Name  string
	Color func() dynamic.Color
}

// Names returns the names of all colors in [All], in order.
func Names() []string {
	names := make([]string, len(All))
	for i, n := range All {
		names[i] = n.Name
	}
	return names
}

// Accessor returns the accessor of the color with the given name.
func Accessor(name string) (func() dynamic.Color, bool) {
	for _, n := range All {
		if n.Name == name {
			return n.Color, true
		}
	}
	return nil, false
}
