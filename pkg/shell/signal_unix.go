//go:build unix

package shell

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Restores the terminal and exits when the calculator is interrupted or
// terminated, since ISIG stays enabled in raw mode. It returns a function
// that stops the handling.
func handleSignals(restore func() error, stderr io.Writer) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		select {
		case sig := <-sigCh:
			handleSignal(sig.(syscall.Signal), restore, stderr)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

func handleSignal(sig syscall.Signal, restore func() error, stderr io.Writer) {
	logger.Println("received signal", unix.SignalName(sig))
	if err := restore(); err != nil {
		fmt.Fprintln(stderr, "Cannot restore the terminal:", err)
	}
	fmt.Fprintln(stderr)
	os.Exit(128 + int(sig))
}
