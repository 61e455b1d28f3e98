// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"

	"cogentcore.org/syscolors/appearance"
	"cogentcore.org/syscolors/dynamic"
	"cogentcore.org/syscolors/palette"
)

// Mismatch is a difference between a catalog and the palette it
// should have been generated from.
type Mismatch struct {

	// Name is the color name.
	Name string

	// Appearance is the appearance of a mismatched record. It is only
	// meaningful if Want and Got are set.
	Appearance appearance.Appearance

	// Want and Got are the expected and actual colors of a mismatched record.
	Want, Got dynamic.RGBA

	// Reason describes the mismatch.
	Reason string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s", m.Name, m.Reason)
}

// Compare compares the catalog with the catalog that would be generated
// from the given palette, and returns every color set that is missing
// or extra, and every record that is malformed or whose color differs
// from the expected color by more than tolerance according to
// [dynamic.Distance]. Expected colors are rounded to three digits first,
// like the catalog is.
func Compare(cat *Catalog, p *palette.Palette, darkAsAny bool, tolerance float64) []Mismatch {
	var ms []Mismatch
	for _, e := range p.Entries() {
		cs, ok := cat.ColorSet(e.Name)
		if !ok {
			ms = append(ms, Mismatch{Name: e.Name, Reason: "missing color set"})
			continue
		}
		got, err := cs.Variants()
		if err != nil {
			ms = append(ms, Mismatch{Name: e.Name, Reason: err.Error()})
			continue
		}
		want := dynamic.Resolve(e.Color, darkAsAny)
		for _, a := range appearance.AppearanceValues() {
			w, _ := NewComponents(want[a]).RGBA()
			if d := dynamic.Distance(w, got[a]); d > tolerance {
				ms = append(ms, Mismatch{Name: e.Name, Appearance: a, Want: w, Got: got[a],
					Reason: fmt.Sprintf("%s record is %s, expected %s", a, got[a], w)})
			}
		}
	}
	for _, name := range cat.Names() {
		if _, ok := p.NamedColor(name); !ok {
			ms = append(ms, Mismatch{Name: name, Reason: "extra color set"})
		}
	}
	return ms
}
