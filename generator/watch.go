// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
)

// Watch generates the files for the palette file, and then generates
// them again every time the palette file changes, until interrupted.
func Watch(c *Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return WatchContext(ctx, c)
}

// WatchContext is [Watch] that stops when the context is done.
// Errors from regenerating are logged, and watching continues.
func WatchContext(ctx context.Context, c *Config) error {
	if c.Palette == "" {
		return errors.New("watch needs a palette file")
	}
	// the config is fixed for the whole session, with absolute paths
	cfg := &Config{}
	if err := copier.CopyWithOption(cfg, c, copier.Option{DeepCopy: true}); err != nil {
		return err
	}
	fn, err := absPath(cfg.Palette)
	if err != nil {
		return err
	}
	cfg.Palette = fn
	if cfg.Output, err = absPath(cfg.Output); err != nil {
		return err
	}
	if err := Generate(cfg); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so the directory is watched
	if err := w.Add(filepath.Dir(fn)); err != nil {
		return fmt.Errorf("watching %q: %w", fn, err)
	}
	slog.Info("watching palette file", "file", fn)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != fn || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("palette file changed", "event", ev)
			if err := Generate(cfg); err != nil {
				slog.Error("regenerating", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching palette file", "err", err)
		}
	}
}

func absPath(fn string) (string, error) {
	fn, err := homedir.Expand(fn)
	if err != nil {
		return "", err
	}
	return filepath.Abs(fn)
}
