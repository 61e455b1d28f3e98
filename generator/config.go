// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generator generates an asset catalog with a color set for
// every color of a palette, along with a source file that exposes
// every color as a named accessor.
package generator

//go:generate core generate -add-types -add-funcs

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/syscolors/catalog"
	"cogentcore.org/syscolors/palette"
	"cogentcore.org/syscolors/srcgen"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration information for the syscolors tool.
type Config struct {

	// Palette is the palette file (TOML, YAML, or JSON) to generate from.
	// The built-in iOS 13 system palette is used if it is empty.
	// For the export command, it is the file to save to.
	Palette string `posarg:"0" required:"-"`

	// Name is the name of the generated catalog, and of the generated
	// Swift enum and source file.
	Name string `default:"SystemColors"`

	// Output is the directory to write the generated files to.
	Output string `default:"." flag:"o,output"`

	// Source is the name of the generated source file, relative to
	// Output. It defaults to Name with the extension of Lang.
	Source string

	// Lang is the language of the generated source.
	Lang srcgen.Lang `default:"swift"`

	// Package is the package of generated Go source.
	Package string `default:"syscolors"`

	// Catalog is whether to generate the asset catalog.
	Catalog bool `default:"true"`

	// DarkAsAny uses the dark interface style value of every color as
	// its fallback and as the catalog color for any appearance.
	DarkAsAny bool

	// NativeVersion is the minimum OS version that provides the colors
	// natively, such as 13. If it is set, generated Swift accessors
	// return the native color on that version and later.
	NativeVersion string

	// Tolerance is the largest color distance between a catalog color
	// and its expected value that the check command accepts.
	Tolerance float64 `default:"0.01"`

	// Quiet does not print the paths of the generated files.
	Quiet bool `flag:"q,quiet"`
}

// Outputs are the paths of the generated files.
type Outputs struct {

	// Catalog is the asset catalog directory. It is empty if
	// [Config.Catalog] is off.
	Catalog string

	// Source is the source file.
	Source string
}

// Paths returns the output paths for the given config, expanding a
// leading ~ in [Config.Output].
func Paths(c *Config) (*Outputs, error) {
	dir, err := homedir.Expand(c.Output)
	if err != nil {
		return nil, fmt.Errorf("invalid output directory %q: %w", c.Output, err)
	}
	src := c.Source
	if src == "" {
		src = c.Name + c.Lang.Ext()
	}
	out := &Outputs{Source: filepath.Join(dir, src)}
	if c.Catalog {
		out.Catalog = filepath.Join(dir, c.Name+catalog.Ext)
	}
	return out, nil
}

// LoadPalette returns the palette for the given config: the palette
// in [Config.Palette], or the built-in system palette.
func LoadPalette(c *Config) (*palette.Palette, error) {
	if c.Palette == "" {
		return palette.System(), nil
	}
	fn, err := homedir.Expand(c.Palette)
	if err != nil {
		return nil, fmt.Errorf("invalid palette file %q: %w", c.Palette, err)
	}
	p, err := palette.Open(fn)
	if err != nil {
		return nil, err
	}
	return p, palette.Validate(p)
}

// SourceOptions returns the [srcgen.Options] for the given config.
func SourceOptions(c *Config) *srcgen.Options {
	return &srcgen.Options{
		Name:          c.Name,
		Package:       c.Package,
		NativeVersion: c.NativeVersion,
		Lang:          c.Lang,
		DarkAsAny:     c.DarkAsAny,
	}
}
