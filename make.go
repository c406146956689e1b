// Copyright (c) 2022 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build generate
// +build generate

package main

//go:generate go run make.go generate

import (
	. "import.name/make"
)

func main() { Main(targets, "make.go", "go.mod") }

func targets() (targets Tasks) {
	GO := Getvar("GO", "go")
	IASL := Getvar("IASL", "iasl")

	binary := targets.Add(TargetDefault("binary",
		Command(GO, "build", "-o", "bin/", "./cmd/ssdtgen"),
	))

	targets.Add(Target("generate", binary, generate(IASL)))
	targets.Add(Target("check", check(GO)))
	targets.Add(Target("clean", Removal("bin")))
	return
}

// generate C sources for the ACPI tables found under the directory named by
// the SSDTDIR variable.
func generate(IASL string) Task {
	dir := Getvar("SSDTDIR", "")
	if dir == "" {
		return Group()
	}

	sources := Globber(Join(dir, "*.asl"))

	var tasks Tasks
	for _, source := range sources() {
		tasks.Add(If(Outdated(ReplaceSuffix(source, ".c"), Globber(source)),
			Command("bin/ssdtgen", "-o", "compiler.tool="+IASL, source),
		))
	}

	return Group(tasks...)
}

func check(GO string) Task {
	return Group(
		Command(GO, "build", "-o", "/dev/null", "./..."),
		Command(GO, "vet", "./..."),
		Command(GO, "test", "-v", "./..."),
	)
}
