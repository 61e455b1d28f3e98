// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/syscolors/catalog"
	"cogentcore.org/syscolors/dynamic"
	"cogentcore.org/syscolors/palette"
	"cogentcore.org/syscolors/srcgen"
	"github.com/gofrs/flock"
)

// Generate generates the asset catalog and source file for the palette,
// replacing any previously generated files, and prints their paths.
func Generate(c *Config) error { //cli:cmd -root
	p, err := LoadPalette(c)
	if err != nil {
		return err
	}
	out, err := Run(c, p)
	if err != nil {
		return err
	}
	if !c.Quiet {
		if out.Catalog != "" {
			fmt.Println(out.Catalog)
		}
		fmt.Println(out.Source)
	}
	return nil
}

// Run generates the asset catalog and source file for the given palette
// and returns their paths. The first error aborts the run; files that
// have already been written are left in place.
func Run(c *Config, p *palette.Palette) (*Outputs, error) {
	if err := palette.Validate(p); err != nil {
		return nil, err
	}
	out, err := Paths(c)
	if err != nil {
		return nil, err
	}
	opts := SourceOptions(c)
	// the source is generated before anything is removed
	src, err := srcgen.Source(p, opts)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(out.Source)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	unlock, err := lock(dir, c.Name)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := os.Remove(out.Source); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("removing old source file: %w", err)
	}
	if c.Catalog {
		if err := writeCatalog(out.Catalog, p, c.DarkAsAny); err != nil {
			return nil, err
		}
	}
	if err := os.WriteFile(out.Source, src, 0644); err != nil {
		return nil, fmt.Errorf("writing source file: %w", err)
	}
	slog.Debug("generated system colors", "colors", p.Len(), "catalog", out.Catalog, "source", out.Source)
	return out, nil
}

// writeCatalog writes the asset catalog for the palette to the given
// directory, replacing any existing catalog there.
func writeCatalog(dir string, p *palette.Palette, darkAsAny bool) error {
	w := &catalog.Writer{Dir: dir}
	if err := w.Reset(); err != nil {
		return err
	}
	for _, e := range p.Entries() {
		cs := catalog.NewColorSet(dynamic.Resolve(e.Color, darkAsAny))
		if err := w.WriteColorSet(e.Name, cs); err != nil {
			return err
		}
	}
	return nil
}

// lock locks the output files with the given name in the given
// directory, and returns the function that unlocks them.
func lock(dir, name string) (func(), error) {
	fn := filepath.Join(dir, "."+name+".lock")
	fl := flock.New(fn)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking output: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("output %q is locked by another run", filepath.Join(dir, name))
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			slog.Error("unlocking output", "err", err)
		}
		os.Remove(fn)
	}, nil
}
