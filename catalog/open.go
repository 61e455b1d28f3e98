// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/syscolors/appearance"
	"cogentcore.org/syscolors/dynamic"
)

// Catalog is an asset catalog read from disk by [Open].
type Catalog struct {

	// Dir is the catalog directory.
	Dir string

	// Contents is the catalog marker file.
	Contents Contents

	sets keylist.List[string, *ColorSet]
}

// Open reads the asset catalog in the given directory. Color sets are
// ordered by name; entries other than color set directories are ignored.
func Open(dir string) (*Catalog, error) {
	cat := &Catalog{Dir: dir}
	if err := jsonx.Open(&cat.Contents, filepath.Join(dir, ContentsFile)); err != nil {
		return nil, fmt.Errorf("catalog.Open: %q is not an asset catalog: %w", dir, err)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog.Open: %w", err)
	}
	for _, e := range ents {
		if !e.IsDir() || !strings.HasSuffix(e.Name(), ColorSetExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ColorSetExt)
		cs := &ColorSet{}
		if err := jsonx.Open(cs, filepath.Join(dir, e.Name(), ContentsFile)); err != nil {
			return nil, fmt.Errorf("catalog.Open: color set %q: %w", name, err)
		}
		cat.sets.Add(name, cs)
	}
	return cat, nil
}

// Len returns the number of color sets in the catalog.
func (cat *Catalog) Len() int {
	return cat.sets.Len()
}

// Names returns the names of the color sets in the catalog.
func (cat *Catalog) Names() []string {
	return slices.Clone(cat.sets.Keys)
}

// ColorSet returns the color set with the given name, if present.
func (cat *Catalog) ColorSet(name string) (*ColorSet, bool) {
	return cat.sets.AtTry(name)
}

// NamedColor returns the color set with the given name as a
// [dynamic.Color], in the way that a named color is loaded from an
// asset catalog at runtime.
func (cat *Catalog) NamedColor(name string) (dynamic.Color, bool) {
	cs, ok := cat.sets.AtTry(name)
	if !ok {
		return nil, false
	}
	return Asset{cs}, true
}

// Asset is a [ColorSet] used as a [dynamic.Color].
type Asset struct {
	Set *ColorSet
}

// Resolve implements [dynamic.Color] using [ColorSet.Resolve].
// It returns the zero color if no record matches.
func (a Asset) Resolve(t appearance.Traits) dynamic.RGBA {
	c, _ := a.Set.Resolve(t)
	return c
}
