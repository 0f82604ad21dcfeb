// Package shell is the entry point for the interactive calculator.
package shell

import (
	"fmt"
	"os"

	"github.com/dc2calc/dc2/pkg/calc"
	"github.com/dc2calc/dc2/pkg/cli/term"
	"github.com/dc2calc/dc2/pkg/logutil"
	"github.com/dc2calc/dc2/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the calculator subprogram.
type Program struct {
	// Rand replaces the random source of the calculator if not nil.
	Rand func() float64
}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 0 {
		return prog.BadUsage("arguments are not supported")
	}
	restore, err := term.Save(fds[0])
	if err != nil {
		fmt.Fprintln(fds[2], "Cannot configure the terminal:", err)
		return prog.Exit(1)
	}
	stop := handleSignals(restore, fds[2])
	defer stop()

	s := NewState(f)
	if p.Rand != nil {
		s.Rand = p.Rand
	}
	logger.Printf("starting in %v mode with %v format", s.Mode, s.Format)
	return Interact(fds, s)
}

// NewState creates the initial calculator state with the angle mode and
// number format selected by the flags.
func NewState(f *prog.Flags) *calc.State {
	s := calc.NewState()
	if f.Angle == "deg" {
		s.Mode = calc.Degrees
	}
	if f.Format == "fix" {
		s.Format = calc.Fixed
	}
	return s
}
