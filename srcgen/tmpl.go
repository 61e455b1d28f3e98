// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcgen

import (
	"fmt"
	"text/template"

	"cogentcore.org/syscolors/dynamic"
)

// tmplData is the data passed to [SwiftTmpl] and [GoTmpl].
type tmplData struct {
	Options   *Options
	Accessors []Accessor

	// Native is the Swift form of [Options.NativeVersion].
	Native string
}

// Header returns the generated code header.
func (td *tmplData) Header() string {
	return Header
}

// Qual returns the qualifier for identifiers of [Package] in
// generated Go code.
func (td *tmplData) Qual() string {
	if td.Options.Package == "syscolors" {
		return ""
	}
	return "syscolors."
}

var tmplFuncs = template.FuncMap{
	"swiftColor": func(c dynamic.RGBA) string {
		return fmt.Sprintf("#colorLiteral(red: %s, green: %s, blue: %s, alpha: %s)",
			SwiftFloat(c.R), SwiftFloat(c.G), SwiftFloat(c.B), SwiftFloat(c.A))
	},
	"goColor": func(c dynamic.RGBA) string {
		return fmt.Sprintf("dynamic.RGBA{R: %s, G: %s, B: %s, A: %s}",
			GoFloat(c.R), GoFloat(c.G), GoFloat(c.B), GoFloat(c.A))
	},
}

// SwiftTmpl is the template for Swift source. Each color is a static
// property of an enum, loaded with the color(named:fallback:) helper.
var SwiftTmpl = template.Must(template.New("Swift").Funcs(tmplFuncs).Parse(
	`import UIKit

enum {{.Options.Name}} {

    /// Loads a named color from the asset catalog if possible, and uses the fallback otherwise.
    private static func color(named: String, fallback: UIColor) -> UIColor {
        if #available(iOS 11.0, *) {
            let namedColor = UIColor(named: named)
            assert(namedColor != nil, "Failed to load color from resource bundle")
            return namedColor ?? fallback
        } else {
            return fallback
        }
    }
{{range .Accessors}}
    static var {{.Ident}}: UIColor {
{{- if $.Native}}
        if #available(iOS {{$.Native}}, *) {
            return UIColor.{{.Name}}
        } else {
            return color(named: {{printf "%q" .Name}}, fallback: {{swiftColor .Fallback}})
        }
{{- else}}
        return color(named: {{printf "%q" .Name}}, fallback: {{swiftColor .Fallback}})
{{- end}}
    }
{{end}}
}
`))

// GoTmpl is the template for Go source. Each color is an accessor
// function that calls Lookup.
var GoTmpl = template.Must(template.New("Go").Funcs(tmplFuncs).Parse(
	`{{.Header}}

package {{.Options.Package}}

import (
{{- if .Qual}}
	"cogentcore.org/syscolors"
{{- end}}
	"cogentcore.org/syscolors/dynamic"
)
{{range .Accessors}}
// {{.Ident}} returns the {{.Name}} color.
func {{.Ident}}() dynamic.Color {
	return {{$.Qual}}Lookup({{printf "%q" .Name}}, {{goColor .Fallback}})
}
{{end}}
// All contains the accessor of every color, in order.
var All = []{{.Qual}}Named{
{{- range .Accessors}}
	{ {{- printf "%q" .Name}}, {{.Ident -}} },
{{- end}}
}
`))
