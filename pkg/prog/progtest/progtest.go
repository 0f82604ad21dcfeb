// Package progtest contains utilities for testing [prog.Program]
// implementations by running them with pipes as stdin, stdout and stderr.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/dc2calc/dc2/pkg/must"
	"github.com/dc2calc/dc2/pkg/prog"
)

// Case is a test case for Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content  string
	partial  bool
	excluded []string
}

func (o output) String() string {
	if o.partial {
		return "text containing " + strings.TrimPrefix(o.content, "\n")
	}
	return o.content
}

// ThatDc2 returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "dc2 --bad" exits with 2 can be
// written as:
//
//	ThatDc2("--bad").ExitsWith(2)
func ThatDc2(args ...string) Case {
	return Case{args: append([]string{"dc2"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin.
// The input is followed by EOF.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatDc2("--log", "file").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStdoutNotContaining returns an altered Case that requires stdout to
// not contain the given text.
func (c Case) WritesStdoutNotContaining(s string) Case {
	c.want.stdout.excluded = append(c.want.stdout.excluded, s)
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout.content, c.want.stdout)
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr.content, c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin, and returns its exit
// code, stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r := run(p, append([]string{"dc2"}, args...), stdin)
	return r.exitCode, r.stdout.content, r.stderr.content
}

func run(p prog.Program, args []string, stdin string) result {
	r0, w0 := must.Pipe()
	// Write to the pipe concurrently so that large inputs don't block.
	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	defer r0.Close()

	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	// Read stdout and stderr concurrently. Otherwise the program can block
	// when it fills the buffer of either pipe.
	stdout := readAllAsync(r1)
	stderr := readAllAsync(r2)

	exitCode := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	return result{exitCode, output{content: <-stdout}, output{content: <-stderr}}
}

func readAllAsync(r io.ReadCloser) <-chan string {
	ch := make(chan string, 1)
	go func() {
		ch <- string(must.ReadAllAndClose(r))
	}()
	return ch
}

func matchOutput(got string, want output) bool {
	for _, s := range want.excluded {
		if strings.Contains(got, s) {
			return false
		}
	}
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
