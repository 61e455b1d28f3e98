// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command syscolors generates an asset catalog and a source file that
// provide the iOS 13 dynamic system colors on earlier versions.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/syscolors/generator"
	"cogentcore.org/syscolors/preview"
)

func main() {
	opts := cli.DefaultOptions("syscolors", "Syscolors generates an asset catalog and a source file that provide the iOS 13 dynamic system colors on earlier versions.")
	opts.DefaultFiles = []string{"syscolors.toml"}
	cli.Run(opts, &generator.Config{}, generator.Generate, generator.Check, generator.Watch, generator.Export, preview.Preview, preview.Show)
}
