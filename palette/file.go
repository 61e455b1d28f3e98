// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/syscolors/dynamic"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a palette. A color with only Any set
// is static; otherwise Light and Dark are required and the high
// contrast values are optional.
type File struct {
	Colors []FileColor `json:"Colors" yaml:"Colors" toml:"Colors"`
}

// FileColor is one color of a [File].
type FileColor struct {
	Name              string        `json:"Name" yaml:"Name" toml:"Name"`
	Any               *dynamic.RGBA `json:"Any,omitempty" yaml:"Any,omitempty" toml:"Any,omitempty"`
	Light             *dynamic.RGBA `json:"Light,omitempty" yaml:"Light,omitempty" toml:"Light,omitempty"`
	Dark              *dynamic.RGBA `json:"Dark,omitempty" yaml:"Dark,omitempty" toml:"Dark,omitempty"`
	LightHighContrast *dynamic.RGBA `json:"LightHighContrast,omitempty" yaml:"LightHighContrast,omitempty" toml:"LightHighContrast,omitempty"`
	DarkHighContrast  *dynamic.RGBA `json:"DarkHighContrast,omitempty" yaml:"DarkHighContrast,omitempty" toml:"DarkHighContrast,omitempty"`
}

// color returns the dynamic color described by fc.
func (fc *FileColor) color() (dynamic.Color, error) {
	if fc.Any != nil {
		if fc.Light != nil || fc.Dark != nil || fc.LightHighContrast != nil || fc.DarkHighContrast != nil {
			return nil, fmt.Errorf("color %q: Any cannot be combined with appearance values", fc.Name)
		}
		return *fc.Any, nil
	}
	if fc.Light == nil || fc.Dark == nil {
		return nil, fmt.Errorf("color %q: needs either Any or both Light and Dark", fc.Name)
	}
	d := dynamic.New(*fc.Light, *fc.Dark)
	if fc.LightHighContrast != nil {
		d.LightHighContrast = *fc.LightHighContrast
	}
	if fc.DarkHighContrast != nil {
		d.DarkHighContrast = *fc.DarkHighContrast
	}
	return d, nil
}

func fileColor(e Entry) (FileColor, error) {
	fc := FileColor{Name: e.Name}
	switch c := e.Color.(type) {
	case dynamic.RGBA:
		fc.Any = &c
	case dynamic.Dynamic:
		fc.Light, fc.Dark = &c.Light, &c.Dark
		if !c.LightHighContrast.IsZero() {
			fc.LightHighContrast = &c.LightHighContrast
		}
		if !c.DarkHighContrast.IsZero() {
			fc.DarkHighContrast = &c.DarkHighContrast
		}
	default:
		return fc, fmt.Errorf("color %q: cannot save color of type %T", e.Name, e.Color)
	}
	return fc, nil
}

// Palette returns the palette described by the file.
func (f *File) Palette() (*Palette, error) {
	p := &Palette{}
	var errs []error
	for i := range f.Colors {
		fc := &f.Colors[i]
		c, err := fc.color()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, p.Add(fc.Name, c))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return p, Validate(p)
}

// NewFile returns the on-disk form of the given palette.
func NewFile(p *Palette) (*File, error) {
	f := &File{}
	for _, e := range p.Entries() {
		fc, err := fileColor(e)
		if err != nil {
			return nil, err
		}
		f.Colors = append(f.Colors, fc)
	}
	return f, nil
}

// Open opens the palette from the given TOML, YAML, or JSON file,
// chosen by its extension.
func Open(filename string) (*Palette, error) {
	f := &File{}
	var err error
	switch ext(filename) {
	case ".toml":
		err = tomlx.Open(f, filename)
	case ".json":
		err = jsonx.Open(f, filename)
	case ".yaml", ".yml":
		var b []byte
		b, err = os.ReadFile(filename)
		if err == nil {
			err = yaml.Unmarshal(b, f)
		}
	default:
		return nil, fmt.Errorf("palette.Open: unsupported palette file type %q", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("palette.Open: %w", err)
	}
	p, err := f.Palette()
	if err != nil {
		return nil, fmt.Errorf("palette.Open %q: %w", filename, err)
	}
	return p, nil
}

// Save saves the palette to the given TOML, YAML, or JSON file,
// chosen by its extension.
func Save(p *Palette, filename string) error {
	f, err := NewFile(p)
	if err != nil {
		return fmt.Errorf("palette.Save: %w", err)
	}
	switch ext(filename) {
	case ".toml":
		err = saveTOML(f, filename)
	case ".json":
		err = jsonx.Save(f, filename)
	case ".yaml", ".yml":
		var b []byte
		b, err = yaml.Marshal(f)
		if err == nil {
			err = os.WriteFile(filename, b, 0666)
		}
	default:
		return fmt.Errorf("palette.Save: unsupported palette file type %q", filename)
	}
	if err != nil {
		return fmt.Errorf("palette.Save: %w", err)
	}
	return nil
}

func saveTOML(f *File, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	enc := toml.NewEncoder(fp).SetIndentTables(true)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return fp.Close()
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
