// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"import.name/ssdtgen/cmd/ssdtgen/generate"
)

func main() {
	generate.Main()
}
