package progtest

import (
	"io"
	"os"
	"testing"

	"github.com/dc2calc/dc2/pkg/prog"
)

// Verify we don't deadlock if more output is written to stdout than can be
// buffered by a pipe.
func TestOutputCaptureDoesNotDeadlock(t *testing.T) {
	Test(t, noisyProgram{},
		ThatDc2().WritesStdoutContaining("hello"),
	)
}

type noisyProgram struct{}

func (noisyProgram) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	// We need enough data to verify whether we're likely to deadlock due to
	// filling the pipe before the test completes. Pipes typically buffer 8 to
	// 128 KiB.
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i := 0; i < 128*1024/len(bytes); i++ {
		fds[1].Write(bytes)
	}
	fds[1].WriteString("hello")
	return nil
}

func TestStdin(t *testing.T) {
	Test(t, catProgram{},
		ThatDc2().WithStdin("1 2 +\n").WritesStdout("1 2 +\n"),
		ThatDc2().WritesStdout(""),
	)
}

type catProgram struct{}

func (catProgram) Run(fds [3]*os.File, _ *prog.Flags, _ []string) error {
	_, err := io.Copy(fds[1], fds[0])
	return err
}

func TestRun(t *testing.T) {
	exit, stdout, stderr := Run(catProgram{}, "foo")
	if exit != 0 || stdout != "foo" || stderr != "" {
		t.Errorf("Run returned (%v, %q, %q), want (0, \"foo\", \"\")", exit, stdout, stderr)
	}
}

func TestExcludedOutput(t *testing.T) {
	out := output{content: "x", partial: true, excluded: []string{"y"}}
	if matchOutput("xy", out) {
		t.Errorf("matchOutput matched excluded text")
	}
	if !matchOutput("xz", out) {
		t.Errorf("matchOutput did not match")
	}
}
