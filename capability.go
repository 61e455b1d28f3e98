// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syscolors

import (
	"log/slog"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/syscolors/dynamic"
	"github.com/Masterminds/semver/v3"
)

// Capability is the way in which the platform can provide colors.
type Capability int32 //enums:enum

const (
	// FallbackOnly means that colors can only come from their literal fallbacks.
	FallbackOnly Capability = iota

	// NamedAssets means that colors can be loaded by name from an asset catalog.
	NamedAssets

	// NativeColors means that the platform provides the dynamic colors itself.
	NativeColors
)

// ColorSource is a source of colors by name, such as the colors that
// an OS provides natively or an asset catalog.
type ColorSource interface {
	// NamedColor returns the color with the given name, if present.
	NamedColor(name string) (dynamic.Color, bool)
}

// Platform describes the platform that colors are looked up on.
type Platform struct {

	// Version is the OS version. A nil version supports nothing.
	Version *semver.Version

	// Native provides the colors that the OS has natively, if any.
	Native ColorSource

	// Assets provides the colors of the asset catalog, if any.
	Assets ColorSource
}

var (
	// NativeConstraint is the OS version range that provides the
	// dynamic system colors natively.
	NativeConstraint = errors.Log1(semver.NewConstraint(">= 13"))

	// AssetsConstraint is the OS version range that supports
	// loading named colors from an asset catalog.
	AssetsConstraint = errors.Log1(semver.NewConstraint(">= 11"))
)

// Detect returns the capability of the given platform.
func Detect(p *Platform) Capability {
	switch {
	case p == nil || p.Version == nil:
		return FallbackOnly
	case p.Native != nil && NativeConstraint.Check(p.Version):
		return NativeColors
	case p.Assets != nil && AssetsConstraint.Check(p.Version):
		return NamedAssets
	}
	return FallbackOnly
}

type platformState struct {
	platform   Platform
	capability Capability
}

var current atomic.Pointer[platformState]

// SetPlatform sets the platform that [Lookup] uses and detects its
// capability once. A nil platform resets to [FallbackOnly].
func SetPlatform(p *Platform) Capability {
	if p == nil {
		current.Store(nil)
		return FallbackOnly
	}
	st := &platformState{platform: *p, capability: Detect(p)}
	current.Store(st)
	slog.Debug("syscolors platform set", "version", p.Version, "capability", st.capability)
	return st.capability
}

// CurrentCapability returns the capability of the platform set with
// [SetPlatform], or [FallbackOnly] if none has been set.
func CurrentCapability() Capability {
	if st := current.Load(); st != nil {
		return st.capability
	}
	return FallbackOnly
}

// Lookup returns the color with the given name for the current
// platform: the native color if the platform has [NativeColors], the
// asset catalog color if it can load [NamedAssets], and the fallback
// otherwise. A color missing from the asset catalog is a configuration
// defect that is reported in debug builds; the fallback is used either
// way. Lookup has no side effects other than that report.
func Lookup(name string, fallback dynamic.RGBA) dynamic.Color {
	st := current.Load()
	if st == nil {
		return fallback
	}
	switch st.capability {
	case NativeColors:
		if c, ok := st.platform.Native.NamedColor(name); ok {
			return c
		}
		if st.platform.Assets == nil {
			return fallback
		}
		fallthrough
	case NamedAssets:
		if c, ok := st.platform.Assets.NamedColor(name); ok {
			return c
		}
		if debugAssets {
			slog.Error("syscolors: failed to load color from asset catalog", "name", name)
		}
	}
	return fallback
}
