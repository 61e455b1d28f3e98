// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/syscolors/catalog"
	"cogentcore.org/syscolors/palette"
	"cogentcore.org/syscolors/srcgen"
)

// Check checks that the generated files are up to date with the
// palette: every color set of the asset catalog must match its color
// within the tolerance, and the source file must be identical to the
// one that would be generated.
func Check(c *Config) error {
	p, err := LoadPalette(c)
	if err != nil {
		return err
	}
	return CheckPalette(c, p)
}

// CheckPalette is [Check] for the given palette.
func CheckPalette(c *Config, p *palette.Palette) error {
	out, err := Paths(c)
	if err != nil {
		return err
	}
	var errs []error
	if c.Catalog {
		cat, err := catalog.Open(out.Catalog)
		if err != nil {
			errs = append(errs, err)
		} else {
			for _, m := range catalog.Compare(cat, p, c.DarkAsAny, c.Tolerance) {
				errs = append(errs, fmt.Errorf("%s: %s", out.Catalog, m))
			}
		}
	}
	want, err := srcgen.Source(p, SourceOptions(c))
	if err != nil {
		return err
	}
	got, err := os.ReadFile(out.Source)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("reading source file: %w", err))
	case !bytes.Equal(got, want):
		errs = append(errs, fmt.Errorf("%s is out of date", out.Source))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("generated files do not match the palette; run syscolors to regenerate them:\n%w", err)
	}
	slog.Debug("generated files are up to date", "catalog", out.Catalog, "source", out.Source)
	return nil
}
