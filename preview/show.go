// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preview

import (
	"io"
	"os"

	"cogentcore.org/syscolors/generator"
	"cogentcore.org/syscolors/srcgen"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// Show prints the source that would be generated for the palette,
// with syntax highlighting if standard output is a terminal.
func Show(c *generator.Config) error {
	p, err := generator.LoadPalette(c)
	if err != nil {
		return err
	}
	src, err := srcgen.Source(p, generator.SourceOptions(c))
	if err != nil {
		return err
	}
	if termenv.NewOutput(os.Stdout).EnvColorProfile() == termenv.Ascii {
		_, err = os.Stdout.Write(src)
		return err
	}
	return Highlight(os.Stdout, src, c.Lang, "terminal256")
}

// Highlight writes src to w highlighted as source in the given
// language, using the chroma formatter with the given name.
func Highlight(w io.Writer, src []byte, lang srcgen.Lang, formatter string) error {
	lexer := lexers.Get(lang.String())
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, string(src))
	if err != nil {
		return err
	}
	f := formatters.Get(formatter)
	if f == nil {
		f = formatters.Fallback
	}
	return f.Format(w, styles.Get("monokai"), iterator)
}
