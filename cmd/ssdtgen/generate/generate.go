// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"import.name/confi"
	"import.name/pan"
	"import.name/ssdtgen/iasl"
	"import.name/ssdtgen/internal/console"
	"import.name/ssdtgen/internal/error/exit"
	"import.name/ssdtgen/internal/logging"
	"import.name/ssdtgen/ssdt"

	. "import.name/type/context"
)

type Config struct {
	Compiler iasl.Config
	Generate ssdt.Config
	Log      logging.Config
}

var c = new(Config)

const usage = "Usage: %s [options] /full/path/to/Table.asl\n"

func Main() {
	log.SetFlags(0)

	defer func() {
		pan.Fatal(recover())
	}()

	c.Compiler = iasl.DefaultConfig

	flag.Var(confi.FileReader(c), "f", "read a configuration file")
	flag.Var(confi.Assigner(c), "o", "set a configuration option (path.to.key=value)")
	flag.Usage = confi.FlagUsage(nil, c)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, c, flag.CommandLine.Name(), flag.Args(), os.Stdout, os.Stderr)
	cancel()

	os.Exit(code)
}

func run(ctx Context, c *Config, progname string, args []string, stdout, stderr io.Writer) int {
	con := console.New(stdout)

	if len(args) != 1 {
		fmt.Fprintf(stdout, usage, progname)
		return exit.Failure
	}

	log, err := logging.Init(c.Log, stderr)
	if err != nil {
		log.Error("journal initialization failed", "error", err)
		return exit.Failure
	}

	source, err := filepath.Abs(args[0])
	if err != nil {
		con.Error("%v", err)
		return exit.Failure
	}
	if _, err := os.Stat(source); err != nil {
		con.Error("File not found: %s", source)
		return exit.Failure
	}

	con.Info("ACPI SSDT Generator")

	g := &ssdt.Generator{
		Config:   c.Generate,
		Compiler: iasl.New(c.Compiler, stdout, stderr, log),
		Console:  con,
		Log:      log,
	}

	res, err := g.Generate(ctx, source)
	if err != nil {
		log.Debug("generation failed", "source", source, "state", res.State, "kind", errorKind(err), "error", err)
		con.Error("%v", err)
		return exit.Code(err)
	}

	if res.State == ssdt.Formatted {
		con.Success("SSDT generation complete.")
	}
	return 0
}

func errorKind(err error) string {
	if e, ok := iasl.AsCompileError(err); ok {
		return fmt.Sprintf("compiler exit %d", e.Code)
	}

	switch {
	case iasl.IsToolMissing(err):
		return "tool missing"
	case ssdt.IsMissingArtifact(err):
		return "missing artifact"
	case ssdt.IsEditFailure(err):
		return "edit failure"
	case ssdt.IsFormattingMissingFile(err):
		return "formatting missing file"
	default:
		return "other"
	}
}
