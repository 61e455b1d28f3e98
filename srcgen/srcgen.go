// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package srcgen generates source files that expose every color of a
// palette as a named accessor, which loads the color from the asset
// catalog when possible and uses a literal fallback otherwise.
package srcgen

//go:generate core generate

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/syscolors/dynamic"
	"cogentcore.org/syscolors/palette"
	"github.com/Masterminds/semver/v3"
	"golang.org/x/tools/imports"
)

// Lang is a language that source can be generated in.
type Lang int32 //enums:enum -line-comment

const (
	// Swift generates a Swift enum with a static property per color.
	Swift Lang = iota // swift

	// Go generates a Go file with an accessor function per color.
	Go // go
)

// Ext returns the file extension of source files in the language.
func (l Lang) Ext() string {
	if l == Go {
		return ".go"
	}
	return ".swift"
}

// Header is the first line of every generated Go file.
const Header = `// Code generated by "syscolors"; DO NOT EDIT.`

// Options are the options for [Source].
type Options struct {

	// Name is the name of the generated Swift enum.
	Name string

	// Package is the package of generated Go code.
	Package string

	// NativeVersion is the minimum OS version, such as 13, that
	// provides the colors natively. If it is set, accessors return the
	// native color on that version and later instead of loading it
	// from the asset catalog. It must only be set for palettes whose
	// names are all native colors.
	NativeVersion string

	// Lang is the language to generate.
	Lang Lang

	// DarkAsAny uses the dark interface style value of each color as
	// its fallback.
	DarkAsAny bool
}

// Accessor is one accessor of the generated source.
type Accessor struct {

	// Name is the color name, which is also the name of its color set.
	Name string

	// Ident is the identifier of the accessor.
	Ident string

	// Fallback is the fallback color.
	Fallback dynamic.RGBA
}

// swiftKeywords are the Swift keywords that cannot be used as
// identifiers without backticks.
var swiftKeywords = map[string]bool{
	"associatedtype": true, "class": true, "deinit": true, "enum": true, "extension": true,
	"fileprivate": true, "func": true, "import": true, "init": true, "inout": true,
	"internal": true, "let": true, "open": true, "operator": true, "private": true,
	"precedencegroup": true, "protocol": true, "public": true, "rethrows": true, "static": true,
	"struct": true, "subscript": true, "typealias": true, "var": true, "break": true,
	"case": true, "catch": true, "continue": true, "default": true, "defer": true,
	"do": true, "else": true, "fallthrough": true, "for": true, "guard": true,
	"if": true, "in": true, "repeat": true, "return": true, "throw": true,
	"switch": true, "where": true, "while": true, "Any": true, "as": true,
	"await": true, "false": true, "is": true, "nil": true, "self": true,
	"Self": true, "super": true, "throws": true, "true": true, "try": true,
}

// Accessors returns the accessors of the given palette, in order.
// Names must be identifiers in the target language, and no two names
// may differ only in case, since they name directories of the asset
// catalog and Go accessors.
func Accessors(p *palette.Palette, opts *Options) ([]Accessor, error) {
	var acs []Accessor
	var errs []error
	folded := map[string]string{}
	for _, e := range p.Entries() {
		ident := e.Name
		if opts.Lang == Go {
			ident = Exported(e.Name)
		}
		if !token.IsIdentifier(ident) {
			errs = append(errs, fmt.Errorf("srcgen: color name %q is not a valid identifier", e.Name))
			continue
		}
		if opts.Lang == Go && ident == "All" {
			errs = append(errs, fmt.Errorf("srcgen: color name %q collides with the All variable", e.Name))
			continue
		}
		if opts.Lang == Swift && swiftKeywords[ident] {
			errs = append(errs, fmt.Errorf("srcgen: color name %q is a Swift keyword", e.Name))
			continue
		}
		lower := strings.ToLower(e.Name)
		if other, ok := folded[lower]; ok {
			errs = append(errs, fmt.Errorf("srcgen: color names %q and %q differ only in case", other, e.Name))
			continue
		}
		folded[lower] = e.Name
		acs = append(acs, Accessor{Name: e.Name, Ident: ident, Fallback: e.Fallback(opts.DarkAsAny)})
	}
	return acs, errors.Join(errs...)
}

// Exported returns name with its first letter in upper case.
func Exported(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[n:]
}

// Source returns the source file for the given palette.
func Source(p *palette.Palette, opts *Options) ([]byte, error) {
	if err := palette.Validate(p); err != nil {
		return nil, err
	}
	data := &tmplData{Options: opts}
	if opts.NativeVersion != "" {
		v, err := semver.NewVersion(opts.NativeVersion)
		if err != nil {
			return nil, fmt.Errorf("srcgen: invalid native version %q: %w", opts.NativeVersion, err)
		}
		data.Native = swiftVersion(v)
	}
	acs, err := Accessors(p, opts)
	if err != nil {
		return nil, err
	}
	data.Accessors = acs
	var b bytes.Buffer
	switch opts.Lang {
	case Swift:
		if !token.IsIdentifier(opts.Name) {
			return nil, fmt.Errorf("srcgen: name %q is not a valid identifier", opts.Name)
		}
		err = SwiftTmpl.Execute(&b, data)
	case Go:
		if !token.IsIdentifier(opts.Package) {
			return nil, fmt.Errorf("srcgen: package %q is not a valid identifier", opts.Package)
		}
		err = GoTmpl.Execute(&b, data)
	default:
		return nil, fmt.Errorf("srcgen: unknown language %v", opts.Lang)
	}
	if err != nil {
		return nil, fmt.Errorf("srcgen: %w", err)
	}
	if opts.Lang != Go {
		return b.Bytes(), nil
	}
	res, err := imports.Process(opts.Package+"_gen.go", b.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("srcgen: formatting Go code: %w\n%s", err, b.Bytes())
	}
	return res, nil
}

// swiftVersion returns v in the form used by Swift availability
// conditions: the major version, plus the minor and patch versions
// if they are not zero.
func swiftVersion(v *semver.Version) string {
	s := strconv.FormatUint(v.Major(), 10)
	if v.Minor() != 0 || v.Patch() != 0 {
		s += "." + strconv.FormatUint(v.Minor(), 10)
	}
	if v.Patch() != 0 {
		s += "." + strconv.FormatUint(v.Patch(), 10)
	}
	return s
}

// SwiftFloat returns the shortest Swift floating point literal for v.
func SwiftFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// GoFloat returns the shortest Go floating point literal for v.
func GoFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
