//go:build !unix

package shell

import "io"

func handleSignals(restore func() error, stderr io.Writer) func() {
	return func() {}
}
