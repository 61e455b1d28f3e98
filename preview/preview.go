// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview shows palettes and generated source in the terminal.
package preview

//go:generate core generate -add-funcs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/base/strcase"
	"cogentcore.org/syscolors/appearance"
	"cogentcore.org/syscolors/dynamic"
	"cogentcore.org/syscolors/generator"
	"cogentcore.org/syscolors/palette"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// columns are the appearances shown by [Render], in order.
var columns = []appearance.Appearance{
	appearance.Any,
	appearance.LightAppearance,
	appearance.DarkAppearance,
	appearance.LightHighContrastAppearance,
	appearance.DarkHighContrastAppearance,
}

// Preview prints a table of every color of the palette with a swatch
// and the hex value of the color under each appearance.
func Preview(c *generator.Config) error {
	p, err := generator.LoadPalette(c)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(os.Stdout)
	return Render(os.Stdout, p, out.EnvColorProfile(), c.DarkAsAny)
}

// Render writes the table of [Preview] to w, with the colors of the
// given terminal profile. Translucent colors are shown over white
// under light appearances and over black under dark ones.
func Render(w io.Writer, p *palette.Palette, profile termenv.Profile, darkAsAny bool) error {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	title := cases.Title(language.English)

	width := 0
	names := make([]string, p.Len())
	for i, name := range p.Names() {
		names[i] = title.String(strcase.ToSentence(name))
		width = max(width, len(names[i]))
	}
	nameStyle := r.NewStyle().Width(width + 2)
	cellStyle := r.NewStyle().Width(19)
	headStyle := r.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(nameStyle.Render(headStyle.Render("Color")))
	for _, a := range columns {
		b.WriteString(cellStyle.Render(headStyle.Render(a.String())))
	}
	b.WriteString("\n")
	for i, e := range p.Entries() {
		v := dynamic.Resolve(e.Color, darkAsAny)
		b.WriteString(nameStyle.Render(names[i]))
		for _, a := range columns {
			b.WriteString(cellStyle.Render(swatch(r, v[a], a.Traits().IsDark())))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// swatch returns a colored block followed by the hex value of c.
func swatch(r *lipgloss.Renderer, c dynamic.RGBA, dark bool) string {
	bg := dynamic.RGBA{R: 1, G: 1, B: 1, A: 1}
	if dark {
		bg = dynamic.RGBA{A: 1}
	}
	block := r.NewStyle().Background(lipgloss.Color(c.Over(bg).Hex())).Render("  ")
	return fmt.Sprintf("%s %s", block, c.Hex())
}
