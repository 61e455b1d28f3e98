// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !debug

package syscolors

// debugAssets is whether to report colors that are missing from the
// asset catalog.
const debugAssets = false
