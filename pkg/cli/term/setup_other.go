//go:build !unix

package term

import "os"

// Setup is a no-op on this platform; input is read in line mode.
func Setup(in *os.File) (func() error, error) {
	return func() error { return nil }, nil
}

// Save returns a function that does nothing on this platform.
func Save(in *os.File) (func() error, error) {
	return func() error { return nil }, nil
}
