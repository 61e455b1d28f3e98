// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides ordered tables of named dynamic colors,
// including the built-in table of iOS 13 system colors ([System]).
package palette

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"cogentcore.org/core/base/keylist"
	"cogentcore.org/syscolors/appearance"
	"cogentcore.org/syscolors/dynamic"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Entry is one named color of a [Palette].
type Entry struct {

	// Name is the identifier of the color, such as systemRed.
	Name string

	// Color is the dynamic color value.
	Color dynamic.Color
}

// Fallback returns the concrete color that the entry resolves to when
// no appearance is specified, or under the dark interface style if
// darkAsAny is set.
func (e Entry) Fallback(darkAsAny bool) dynamic.RGBA {
	return dynamic.Resolve(e.Color, darkAsAny)[appearance.Any]
}

// Palette is an ordered table of uniquely named dynamic colors.
// The zero value is an empty palette ready to use.
type Palette struct {
	list keylist.List[string, dynamic.Color]
}

// New returns a new palette containing the given entries,
// in order. It returns an error if any name is empty or repeated.
func New(entries ...Entry) (*Palette, error) {
	p := &Palette{}
	var errs []error
	for _, e := range entries {
		errs = append(errs, p.Add(e.Name, e.Color))
	}
	return p, errors.Join(errs...)
}

// Add adds a color with the given name at the end of the palette.
// It returns an error if the name is empty or already present.
func (p *Palette) Add(name string, c dynamic.Color) error {
	if name == "" {
		return errors.New("palette.Add: empty color name")
	}
	if c == nil {
		return fmt.Errorf("palette.Add: nil color for %q", name)
	}
	if err := p.list.Add(name, c); err != nil {
		return fmt.Errorf("palette.Add: duplicate color name %q", name)
	}
	return nil
}

// Len returns the number of colors in the palette.
func (p *Palette) Len() int {
	return p.list.Len()
}

// Names returns the color names in palette order.
func (p *Palette) Names() []string {
	return slices.Clone(p.list.Keys)
}

// Entries returns the entries in palette order.
func (p *Palette) Entries() []Entry {
	es := make([]Entry, p.list.Len())
	for i, name := range p.list.Keys {
		es[i] = Entry{Name: name, Color: p.list.Values[i]}
	}
	return es
}

// NamedColor returns the color with the given name, if present.
// It makes a palette usable as a source of natively provided colors.
func (p *Palette) NamedColor(name string) (dynamic.Color, bool) {
	return p.list.AtTry(name)
}

// Find returns the entry with the given name. If there is no such
// entry, the error suggests the closest names in the palette.
func (p *Palette) Find(name string) (Entry, error) {
	if c, ok := p.list.AtTry(name); ok {
		return Entry{Name: name, Color: c}, nil
	}
	if sug := p.Suggest(name, 3); len(sug) > 0 {
		return Entry{}, fmt.Errorf("palette: unknown color %q; did you mean %q?", name, sug[0])
	}
	return Entry{}, fmt.Errorf("palette: unknown color %q", name)
}

// Suggest returns up to n palette names that are similar to the given
// name, most similar first, using Levenshtein similarity.
func (p *Palette) Suggest(name string, n int) []string {
	type scored struct {
		name  string
		score float64
	}
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	var ss []scored
	for _, k := range p.list.Keys {
		sc := strutil.Similarity(name, k, lev)
		if sc >= 0.5 {
			ss = append(ss, scored{k, sc})
		}
	}
	sort.SliceStable(ss, func(i, j int) bool {
		return ss[i].score > ss[j].score
	})
	var res []string
	for i := 0; i < len(ss) && i < n; i++ {
		res = append(res, ss[i].name)
	}
	return res
}

// Fallbacks returns the [Entry.Fallback] of every entry, keyed by name.
func (p *Palette) Fallbacks(darkAsAny bool) map[string]dynamic.RGBA {
	m := make(map[string]dynamic.RGBA, p.Len())
	for _, e := range p.Entries() {
		m[e.Name] = e.Fallback(darkAsAny)
	}
	return m
}

// Validate returns an error if the palette is empty. Duplicate and
// empty names are already rejected by [Palette.Add].
func Validate(p *Palette) error {
	if p == nil || p.Len() == 0 {
		return errors.New("palette.Validate: palette has no colors")
	}
	return nil
}

// Exhaustive reports the names of ref that are missing from p and the
// names of p that are not in ref. It returns an error describing them
// if either list is non-empty.
func Exhaustive(p, ref *Palette) (missing, extra []string, err error) {
	for _, name := range ref.list.Keys {
		if _, ok := p.list.AtTry(name); !ok {
			missing = append(missing, name)
		}
	}
	for _, name := range p.list.Keys {
		if _, ok := ref.list.AtTry(name); !ok {
			extra = append(extra, name)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		err = fmt.Errorf("palette.Exhaustive: missing %v, extra %v", missing, extra)
	}
	return
}
