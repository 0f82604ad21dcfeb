//go:build unix

package term

import (
	"fmt"
	"os"

	"github.com/dc2calc/dc2/pkg/sys"
	"github.com/dc2calc/dc2/pkg/sys/eunix"
)

// Setup puts the terminal into raw mode: no line buffering and no echo. It
// returns a function that restores the previous settings.
func Setup(in *os.File) (func() error, error) {
	// On Unix, use input file for changing termios. All fds pointing to the
	// same terminal are equivalent.
	fd := int(in.Fd())
	term, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}

	savedTermios := term.Copy()

	term.SetICanon(false)
	term.SetEcho(false)
	term.SetVMin(1)
	term.SetVTime(0)

	// Enforcing crnl translation on readline. Assuming user won't set
	// inlcr or -onlcr, otherwise we have to hardcode all of them here.
	term.SetICRNL(true)

	err = term.ApplyToFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't set up terminal attribute: %w", err)
	}
	logger.Println("entered raw mode on fd", fd)

	restore := func() error {
		logger.Println("restoring terminal on fd", fd)
		return savedTermios.ApplyToFd(fd)
	}
	return restore, nil
}

// Save reads the current terminal settings of in and returns a function that
// re-applies them. If in is not a terminal, the returned function does
// nothing.
func Save(in *os.File) (func() error, error) {
	if !sys.IsATTY(in.Fd()) {
		return func() error { return nil }, nil
	}
	fd := int(in.Fd())
	saved, err := eunix.TermiosForFd(fd)
	if err != nil {
		return nil, fmt.Errorf("can't get terminal attribute: %w", err)
	}
	return func() error { return saved.ApplyToFd(fd) }, nil
}
