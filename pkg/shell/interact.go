package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dc2calc/dc2/pkg/calc"
	"github.com/dc2calc/dc2/pkg/cli/term"
	"github.com/dc2calc/dc2/pkg/prog"
	"github.com/dc2calc/dc2/pkg/sys"
	"github.com/dc2calc/dc2/pkg/view"
)

// Interactive mode panic handler. The terminal has already been restored by
// the line reader when the panic reaches here.
func handlePanic() {
	r := recover()
	if r != nil {
		logger.Println("panic:", r)
		logger.Print(sys.DumpStack())
		panic(r)
	}
}

// Interact runs the calculator on s, reading commands from fds[0] and
// showing the state on fds[1], until the quit command or the end of input.
func Interact(fds [3]*os.File, s *calc.State) error {
	defer handlePanic()

	out := fds[1]
	lr := term.NewLineReader(fds[0], out)
	s.Screens = view.Screens{Out: out, Wait: lr.WaitEnter}

	var msg string
	for {
		if err := view.Render(out, s); err != nil {
			return fmt.Errorf("cannot write output: %w", err)
		}
		if msg != "" {
			fmt.Fprintln(out, msg)
			msg = ""
		}
		fmt.Fprint(out, view.Prompt)

		line, err := lr.ReadLine()
		if err == io.EOF {
			fmt.Fprintln(out)
			logger.Println("end of input")
			return nil
		} else if err != nil {
			fmt.Fprintln(fds[2], "Cannot read input:", err)
			return prog.Exit(1)
		}

		err = s.Eval(line)
		switch {
		case err == nil:
		case err == calc.ErrQuit:
			logger.Println("quit")
			return nil
		case errors.Is(err, io.EOF):
			// Input ended while a screen was waiting for Enter.
			fmt.Fprintln(out)
			return nil
		default:
			msg = view.ErrorMessage(err)
		}
	}
}
