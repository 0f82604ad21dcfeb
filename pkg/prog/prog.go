// Package prog provides the entry point to dc2. Its subpackages and sibling
// packages implement the subprograms.
package prog

// This package parses the command line and calls the appropriate
// "subprogram", either the build information printer or the calculator.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dc2calc/dc2/pkg/logutil"
	"github.com/spf13/pflag"
)

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, Version, BuildInfo bool

	// Angle is "deg", "rad" or empty for the default.
	Angle string
	// Format is "fix", "sci" or empty for the default.
	Format string
}

func newFlagSet(f *Flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("dc2", pflag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	choice(fs, &f.Angle, "deg", "d", "Set angle mode to degrees")
	choice(fs, &f.Angle, "rad", "r", "Set angle mode to radians (default)")
	choice(fs, &f.Format, "sci", "s", "Use scientific notation for numbers (default)")
	choice(fs, &f.Format, "fix", "f", "Use fixed-point notation for numbers")

	fs.BoolVarP(&f.Version, "version", "V", false, "Show version information and exit")
	fs.BoolVarP(&f.Help, "help", "h", false, "Display this help message and exit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "Show build information and exit")
	fs.StringVar(&f.Log, "log", "", "Write debug log to `file`")

	return fs
}

// Adds a boolean flag that stores value in *dst when given. Flags sharing
// dst override each other in command-line order.
func choice(fs *pflag.FlagSet, dst *string, value, shorthand, usage string) {
	fs.VarPF(choiceValue{dst, value}, value, shorthand, usage).NoOptDefVal = "true"
}

type choiceValue struct {
	dst   *string
	value string
}

func (v choiceValue) String() string { return strconv.FormatBool(*v.dst == v.value) }

func (v choiceValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if b {
		*v.dst = v.value
	} else if *v.dst == v.value {
		*v.dst = ""
	}
	return nil
}

func (v choiceValue) Type() string { return "bool" }

func (v choiceValue) IsBoolFlag() bool { return true }

func usage(out io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(out, "Usage: dc2 [OPTION]...")
	fmt.Fprintln(out, "Dave's (RPN) Calculator - a simple terminal-based RPN calculator")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	fmt.Fprint(out, fs.FlagUsages())
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  dc2 --deg --fix     Start in degrees mode with fixed-point display")
	fmt.Fprintln(out, "  dc2 -s              Start with scientific display mode")
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		fmt.Fprintln(fds[2], err)
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		} else {
			defer logutil.SetOutput(io.Discard)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	var exit exitError
	switch {
	case errors.As(err, &badUsage):
		usage(fds[2], fs)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
