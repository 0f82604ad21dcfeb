// Dc2 is Dave's RPN calculator for the terminal. Numbers are pushed onto a
// stack and every other command operates on the values at its top.
package main

import (
	"os"

	"github.com/dc2calc/dc2/pkg/buildinfo"
	"github.com/dc2calc/dc2/pkg/prog"
	"github.com/dc2calc/dc2/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, shell.Program{})))
}
