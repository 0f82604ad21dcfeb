//go:build unix

package must

import (
	"os"

	"github.com/creack/pty"
)

// Pty wraps pty.Open. It returns the controlling side and the terminal side
// of a new pseudo-terminal.
func Pty() (ptmx, tty *os.File) {
	return OK2(pty.Open())
}
