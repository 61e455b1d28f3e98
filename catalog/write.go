// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer writes an asset catalog directory.
type Writer struct {

	// Dir is the catalog directory, such as Assets/SystemColors.xcassets.
	Dir string
}

// NewWriter returns a new [Writer] for the catalog with the given
// name (without the .xcassets extension) in the given directory.
func NewWriter(dir, name string) *Writer {
	return &Writer{Dir: filepath.Join(dir, name+Ext)}
}

// Reset removes any existing catalog at [Writer.Dir] and creates a new
// empty one containing only the catalog marker file.
func (w *Writer) Reset() error {
	if err := os.RemoveAll(w.Dir); err != nil {
		return fmt.Errorf("catalog: removing old catalog: %w", err)
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("catalog: creating catalog: %w", err)
	}
	return writeContents(w.Dir, &Contents{Info: XcodeInfo})
}

// WriteColorSet writes the given color set as <name>.colorset in the catalog.
func (w *Writer) WriteColorSet(name string, cs *ColorSet) error {
	dir := filepath.Join(w.Dir, name+ColorSetExt)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("catalog: creating color set %q: %w", name, err)
	}
	if err := writeContents(dir, cs); err != nil {
		return fmt.Errorf("catalog: writing color set %q: %w", name, err)
	}
	slog.Debug("wrote color set", "name", name, "records", len(cs.Colors))
	return nil
}

func writeContents(dir string, v any) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ContentsFile), b, 0644)
}
