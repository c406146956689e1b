// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	for path, expect := range map[string]Name{
		"/work/PoeFanSsdt.asl": {"/work", "PoeFanSsdt", ".asl"},
		"a.asl":                {".", "a", ".asl"},
		"dir/a.b.asl":          {"dir", "a.b", ".asl"},
		"/x/Makefile":          {"/x", "Makefile", ""},
		"/x/.hidden":           {"/x", ".hidden", ""},
		"/x/.hidden.asl":       {"/x", ".hidden", ".asl"},
	} {
		assert.Equal(t, expect, Split(path), path)
	}
}

func TestWithExt(t *testing.T) {
	n := Split("/work/v1.2/table.v2.asl")
	base := n.WithExt("")

	assert.Equal(t, "/work/v1.2/table.v2", base.String())
	assert.Equal(t, "/work/v1.2/table.v2.hex", base.WithExt(".hex").String())
	assert.Equal(t, "/work/v1.2/table.v2.c", n.WithExt(".c").String())
	assert.Equal(t, "table.v2.asl", n.Base())
	assert.Equal(t, "a.c", Split("a.asl").WithExt(".c").String())
}

func TestIdentifier(t *testing.T) {
	for path, expect := range map[string]string{
		"/work/PoeFanSsdt.asl": "poefanssdt",
		"ssdt-fan.v2.asl":      "ssdt_fan_v2",
		"1table.asl":           "_1table",
		"tbl_9.asl":            "tbl_9",
	} {
		assert.Equal(t, expect, Split(path).Identifier(), path)
	}
}
