// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"

	"cogentcore.org/syscolors/palette"
	"github.com/mitchellh/go-homedir"
)

// Export saves the built-in system palette to the palette file, as a
// TOML, YAML, or JSON file depending on its extension. The result can
// be edited and used as a custom palette.
func Export(c *Config) error {
	if c.Palette == "" {
		return errors.New("export needs a palette file to save to")
	}
	fn, err := homedir.Expand(c.Palette)
	if err != nil {
		return err
	}
	if err := palette.Save(palette.System(), fn); err != nil {
		return err
	}
	if !c.Quiet {
		fmt.Println(fn)
	}
	return nil
}
