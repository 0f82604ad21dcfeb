//go:build unix

package term

import (
	"bytes"
	"testing"

	"github.com/dc2calc/dc2/pkg/must"
	"github.com/dc2calc/dc2/pkg/sys/eunix"
)

func termiosFlags(t *testing.T, fd uintptr) (icanon, echo bool) {
	t.Helper()
	term, err := eunix.TermiosForFd(int(fd))
	if err != nil {
		t.Fatalf("TermiosForFd: %v", err)
	}
	return term.ICanon(), term.Echo()
}

func TestSetup(t *testing.T) {
	ptmx, tty := must.Pty()
	defer ptmx.Close()
	defer tty.Close()

	icanon0, echo0 := termiosFlags(t, tty.Fd())

	restore, err := Setup(tty)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if icanon, echo := termiosFlags(t, tty.Fd()); icanon || echo {
		t.Errorf("in raw mode icanon = %v, echo = %v, want false, false", icanon, echo)
	}

	if err := restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if icanon, echo := termiosFlags(t, tty.Fd()); icanon != icanon0 || echo != echo0 {
		t.Errorf("after restore icanon = %v, echo = %v, want %v, %v",
			icanon, echo, icanon0, echo0)
	}
}

func TestSetup_NotTerminal(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if _, err := Setup(r); err == nil {
		t.Errorf("Setup on a pipe returned nil error")
	}
	restore, err := Save(r)
	if err != nil {
		t.Errorf("Save on a pipe returned %v, want nil", err)
	} else if err := restore(); err != nil {
		t.Errorf("restore on a pipe returned %v, want nil", err)
	}
}

func TestSave(t *testing.T) {
	ptmx, tty := must.Pty()
	defer ptmx.Close()
	defer tty.Close()

	icanon0, echo0 := termiosFlags(t, tty.Fd())
	restore, err := Save(tty)
	if err != nil {
		t.Fatalf("Save(pty) returned %v", err)
	}
	// Leave the terminal in raw mode without restoring it through Setup.
	must.OK1(Setup(tty))
	if icanon, _ := termiosFlags(t, tty.Fd()); icanon {
		t.Fatalf("ICANON still set after Setup")
	}
	must.OK(restore())
	if icanon, echo := termiosFlags(t, tty.Fd()); icanon != icanon0 || echo != echo0 {
		t.Errorf("after restore icanon = %v, echo = %v, want %v, %v",
			icanon, echo, icanon0, echo0)
	}
}

func TestLineReader_RestoresTerminal(t *testing.T) {
	ptmx, tty := must.Pty()
	defer ptmx.Close()
	defer tty.Close()

	// A complete line is delivered even in canonical mode.
	must.OK1(ptmx.WriteString("SQRT\n"))
	var echo bytes.Buffer
	lr := NewLineReader(tty, &echo)
	line, err := lr.ReadLine()
	if line != "sqrt" || err != nil {
		t.Errorf("ReadLine() = (%q, %v), want (\"sqrt\", nil)", line, err)
	}
	if echo.String() != "SQRT\n" {
		t.Errorf("echoed %q, want %q", echo.String(), "SQRT\n")
	}
	if icanon, _ := termiosFlags(t, tty.Fd()); !icanon {
		t.Errorf("terminal left in raw mode after ReadLine")
	}
}

func TestLineReader_ArrowKey(t *testing.T) {
	ptmx, tty := must.Pty()
	defer ptmx.Close()
	defer tty.Close()

	// Enter raw mode first, so that the escape sequence is not held back by
	// the line discipline.
	restore := must.OK1(Setup(tty))
	defer restore()
	must.OK1(ptmx.WriteString("1\033[C"))

	lr := NewLineReader(tty, &bytes.Buffer{})
	line, err := lr.ReadLine()
	if line != ArrowRight || err != nil {
		t.Errorf("ReadLine() = (%q, %v), want (%q, nil)", line, err, ArrowRight)
	}
	// ReadLine restores the settings in effect when it was called.
	if icanon, echo := termiosFlags(t, tty.Fd()); icanon || echo {
		t.Errorf("ReadLine did not restore raw settings: icanon = %v, echo = %v", icanon, echo)
	}
}

func TestLineReader_Pipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	must.OK1(w.WriteString("pi\n"))
	w.Close()

	lr := NewLineReader(r, &bytes.Buffer{})
	if line, err := lr.ReadLine(); line != "pi" || err != nil {
		t.Errorf("ReadLine() = (%q, %v), want (\"pi\", nil)", line, err)
	}
	if err := lr.WaitEnter(); err == nil {
		t.Errorf("WaitEnter() at end of input returned nil error")
	}
}
