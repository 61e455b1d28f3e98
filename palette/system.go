// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/syscolors/dynamic"
)

// rgb is shorthand for an opaque [dynamic.RGB255] color.
func rgb(r, g, b uint8) dynamic.RGBA {
	return dynamic.RGB255(r, g, b, 1)
}

// rgba is shorthand for [dynamic.RGB255].
func rgba(r, g, b uint8, a float64) dynamic.RGBA {
	return dynamic.RGB255(r, g, b, a)
}

// pair is shorthand for [dynamic.New].
func pair(light, dark dynamic.RGBA) dynamic.Dynamic {
	return dynamic.New(light, dark)
}

// none marks a high contrast value that is the same as normal contrast.
var none dynamic.RGBA

// systemEntries are the iOS 13 dynamic system colors, in the order
// used for all generated output.
var systemEntries = []Entry{
	// adaptable tint colors
	{"systemRed", pair(rgb(255, 59, 48), rgb(255, 69, 58)).WithHighContrast(rgb(215, 0, 21), rgb(255, 105, 97))},
	{"systemGreen", pair(rgb(52, 199, 89), rgb(48, 209, 88)).WithHighContrast(rgb(36, 138, 61), rgb(48, 219, 91))},
	{"systemBlue", pair(rgb(0, 122, 255), rgb(10, 132, 255)).WithHighContrast(rgb(0, 64, 221), rgb(64, 156, 255))},
	{"systemOrange", pair(rgb(255, 149, 0), rgb(255, 159, 10)).WithHighContrast(rgb(201, 52, 0), rgb(255, 179, 64))},
	{"systemYellow", pair(rgb(255, 204, 0), rgb(255, 214, 10)).WithHighContrast(rgb(178, 80, 0), rgb(255, 212, 38))},
	{"systemPink", pair(rgb(255, 45, 85), rgb(255, 55, 95)).WithHighContrast(rgb(211, 15, 69), rgb(255, 100, 130))},
	{"systemPurple", pair(rgb(175, 82, 222), rgb(191, 90, 242)).WithHighContrast(rgb(137, 68, 171), rgb(218, 143, 255))},
	{"systemTeal", pair(rgb(90, 200, 250), rgb(100, 210, 255)).WithHighContrast(rgb(0, 113, 164), rgb(112, 215, 255))},
	{"systemIndigo", pair(rgb(88, 86, 214), rgb(94, 92, 230)).WithHighContrast(rgb(54, 52, 163), rgb(125, 122, 255))},

	// adaptable grays
	{"systemGray", pair(rgb(142, 142, 147), rgb(142, 142, 147)).WithHighContrast(rgb(108, 108, 112), rgb(174, 174, 178))},
	{"systemGray2", pair(rgb(174, 174, 178), rgb(99, 99, 102)).WithHighContrast(rgb(142, 142, 147), rgb(124, 124, 128))},
	{"systemGray3", pair(rgb(199, 199, 204), rgb(72, 72, 74)).WithHighContrast(rgb(174, 174, 178), rgb(84, 84, 86))},
	{"systemGray4", pair(rgb(209, 209, 214), rgb(58, 58, 60)).WithHighContrast(rgb(188, 188, 192), rgb(68, 68, 70))},
	{"systemGray5", pair(rgb(229, 229, 234), rgb(44, 44, 46)).WithHighContrast(rgb(216, 216, 220), rgb(54, 54, 56))},
	{"systemGray6", pair(rgb(242, 242, 247), rgb(28, 28, 30)).WithHighContrast(rgb(235, 235, 240), rgb(36, 36, 38))},

	// labels
	{"label", pair(rgb(0, 0, 0), rgb(255, 255, 255))},
	{"secondaryLabel", pair(rgba(60, 60, 67, 0.6), rgba(235, 235, 245, 0.6)).WithHighContrast(rgba(60, 60, 67, 0.68), rgba(235, 235, 245, 0.68))},
	{"tertiaryLabel", pair(rgba(60, 60, 67, 0.3), rgba(235, 235, 245, 0.3)).WithHighContrast(rgba(60, 60, 67, 0.38), rgba(235, 235, 245, 0.38))},
	{"quaternaryLabel", pair(rgba(60, 60, 67, 0.18), rgba(235, 235, 245, 0.16)).WithHighContrast(rgba(60, 60, 67, 0.26), rgba(235, 235, 245, 0.24))},
	{"link", pair(rgb(0, 122, 255), rgb(9, 132, 255))},
	{"placeholderText", pair(rgba(60, 60, 67, 0.3), rgba(235, 235, 245, 0.3))},

	// separators
	{"separator", pair(rgba(60, 60, 67, 0.29), rgba(84, 84, 88, 0.6))},
	{"opaqueSeparator", pair(rgb(198, 198, 200), rgb(56, 56, 58))},

	// backgrounds
	{"systemBackground", pair(rgb(255, 255, 255), rgb(0, 0, 0))},
	{"secondarySystemBackground", pair(rgb(242, 242, 247), rgb(28, 28, 30)).WithHighContrast(rgb(235, 235, 240), rgb(36, 36, 38))},
	{"tertiarySystemBackground", pair(rgb(255, 255, 255), rgb(44, 44, 46)).WithHighContrast(none, rgb(54, 54, 56))},
	{"systemGroupedBackground", pair(rgb(242, 242, 247), rgb(0, 0, 0)).WithHighContrast(rgb(235, 235, 240), none)},
	{"secondarySystemGroupedBackground", pair(rgb(255, 255, 255), rgb(28, 28, 30)).WithHighContrast(none, rgb(36, 36, 38))},
	{"tertiarySystemGroupedBackground", pair(rgb(242, 242, 247), rgb(44, 44, 46)).WithHighContrast(rgb(235, 235, 240), rgb(54, 54, 56))},

	// fills
	{"systemFill", pair(rgba(120, 120, 128, 0.2), rgba(120, 120, 128, 0.36))},
	{"secondarySystemFill", pair(rgba(120, 120, 128, 0.16), rgba(120, 120, 128, 0.32))},
	{"tertiarySystemFill", pair(rgba(118, 118, 128, 0.12), rgba(118, 118, 128, 0.24))},
	{"quaternarySystemFill", pair(rgba(116, 116, 128, 0.08), rgba(118, 118, 128, 0.18))},

	// nonadaptable text colors
	{"lightText", rgba(255, 255, 255, 0.6)},
	{"darkText", rgb(0, 0, 0)},
}

// System returns a new palette with the iOS 13 dynamic system colors.
func System() *Palette {
	p, err := New(systemEntries...)
	errors.Must(err)
	return p
}
