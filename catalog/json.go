// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
)

// quote returns s as a JSON string literal.
func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

var funcs = template.FuncMap{"q": quote}

// ContentsTmpl writes a catalog [Contents] file the way Xcode does.
var ContentsTmpl = template.Must(template.New("Contents").Funcs(funcs).Parse(
	`{
  "info" : {
    "author" : {{q .Info.Author}},
    "version" : {{.Info.Version}}
  }
}
`))

// ColorSetTmpl writes a [ColorSet] file the way Xcode does: keys in
// alphabetical order, two space indentation, and " : " separators.
var ColorSetTmpl = template.Must(template.New("ColorSet").Funcs(funcs).Parse(
	`{
  "colors" : [
{{- range $i, $c := .Colors}}{{if $i}},{{end}}
    {
{{- if $c.Appearances}}
      "appearances" : [
{{- range $j, $a := $c.Appearances}}{{if $j}},{{end}}
        {
          "appearance" : {{q $a.Appearance}},
          "value" : {{q $a.Value}}
        }
{{- end}}
      ],
{{- end}}
      "color" : {
        "color-space" : {{q $c.Color.ColorSpace}},
        "components" : {
          "alpha" : {{q $c.Color.Components.Alpha}},
          "blue" : {{q $c.Color.Components.Blue}},
          "green" : {{q $c.Color.Components.Green}},
          "red" : {{q $c.Color.Components.Red}}
        }
      },
      "idiom" : {{q $c.Idiom}}
    }
{{- end}}
  ],
  "info" : {
    "author" : {{q .Info.Author}},
    "version" : {{.Info.Version}}
  }
}
`))

// Marshal returns the Xcode formatted JSON encoding of a [*Contents]
// or [*ColorSet]. The output depends only on v.
func Marshal(v any) ([]byte, error) {
	var tmpl *template.Template
	switch v.(type) {
	case *Contents:
		tmpl = ContentsTmpl
	case *ColorSet:
		tmpl = ColorSetTmpl
	default:
		return nil, fmt.Errorf("catalog.Marshal: unsupported type %T", v)
	}
	var b bytes.Buffer
	if err := tmpl.Execute(&b, v); err != nil {
		return nil, fmt.Errorf("catalog.Marshal: %w", err)
	}
	return b.Bytes(), nil
}
