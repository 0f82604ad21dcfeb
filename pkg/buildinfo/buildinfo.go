// Package buildinfo contains build information.
//
// Build information may be set during compilation by passing
// -ldflags "-X github.com/dc2calc/dc2/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/dc2calc/dc2/pkg/prog"
)

// Version identifies the version of dc2.
const Version = "0.2.0"

// Copyright is shown after the version.
const Copyright = "2025 Davide Mastromatteo"

// Reproducible identifies whether the build is reproducible. This can be
// overridden when building dc2.
var Reproducible = "false"

// Banner returns the line shown by "dc2 --version" and the license screens.
func Banner() string {
	return fmt.Sprintf("dc2 %s Copyright (C) %s", Version, Copyright)
}

// Program is the buildinfo subprogram.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.Version:
		fmt.Fprintln(fds[1], Banner())
	case f.BuildInfo:
		fmt.Fprintln(fds[1], "Version:", Version)
		fmt.Fprintln(fds[1], "Go version:", runtime.Version())
		fmt.Fprintln(fds[1], "Reproducible build:", Reproducible)
	default:
		return prog.ErrNotSuitable
	}
	return nil
}
