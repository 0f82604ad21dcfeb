// Package term reads commands from the terminal.
//
// Input is read one byte at a time with the terminal in raw mode, so that
// cursor keys can be decoded as they are pressed. The terminal settings are
// restored after every read.
package term

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dc2calc/dc2/pkg/errutil"
	"github.com/dc2calc/dc2/pkg/logutil"
	"github.com/dc2calc/dc2/pkg/sys"
)

var logger = logutil.GetLogger("[term] ")

// MaxLine is the size of the line buffer, including one slot reserved for a
// terminator. Characters typed beyond MaxLine-1 are ignored.
const MaxLine = 99

// Tokens produced for cursor keys. They are not case-folded.
const (
	ArrowUp    = "ARROW_UP"
	ArrowDown  = "ARROW_DOWN"
	ArrowRight = "ARROW_RIGHT"
	ArrowLeft  = "ARROW_LEFT"
)

// CSI-style cursor key sequences, identified by the rune after \e[.
var csiArrows = map[byte]string{
	'A': ArrowUp, 'B': ArrowDown, 'C': ArrowRight, 'D': ArrowLeft,
}

const (
	keyEscape    = 0x1b
	keyBackspace = 0x08
	keyDelete    = 0x7f
)

// LineReader reads one command at a time from a terminal.
type LineReader struct {
	in   *os.File
	rd   *bufio.Reader
	echo io.Writer
	raw  bool
}

// NewLineReader creates a LineReader reading from in and echoing to echo.
// Raw mode is only used when in is a terminal.
func NewLineReader(in *os.File, echo io.Writer) *LineReader {
	return &LineReader{in, bufio.NewReader(in), echo, sys.IsATTY(in.Fd())}
}

// ReadLine reads a line or a cursor key and returns it as a command token.
// The terminal is put into raw mode for the duration of the call and its
// previous settings are restored on every return path.
func (lr *LineReader) ReadLine() (line string, err error) {
	if lr.raw {
		restore, setupErr := Setup(lr.in)
		if setupErr != nil {
			return "", setupErr
		}
		defer func() {
			err = errutil.Multi(err, restore())
		}()
	}
	return readLine(lr.rd, lr.echo, MaxLine)
}

// WaitEnter reads and discards one line.
func (lr *LineReader) WaitEnter() error {
	_, err := lr.ReadLine()
	return err
}

// Reads one command token from rd, echoing typed characters to echo. An
// io.EOF is only returned if nothing has been typed.
func readLine(rd io.ByteReader, echo io.Writer, max int) (string, error) {
	var buf []byte
	finish := func(err error) (string, error) {
		if err == io.EOF && len(buf) > 0 {
			return strings.ToLower(string(buf)), nil
		}
		return "", err
	}
	for {
		c, err := rd.ReadByte()
		if err != nil {
			return finish(err)
		}
		switch c {
		case keyEscape:
			token, err := readEscape(rd)
			if err != nil {
				return finish(err)
			}
			if token != "" {
				return token, nil
			}
		case '\n':
			echo.Write([]byte{'\n'})
			return strings.ToLower(string(buf)), nil
		case '\r':
			// Only reaches here when the terminal does not translate CR.
		case keyDelete, keyBackspace:
			if len(buf) > 0 {
				_, size := utf8.DecodeLastRune(buf)
				buf = buf[:len(buf)-size]
				io.WriteString(echo, "\b \b")
			}
		default:
			if len(buf) < max-1 {
				buf = append(buf, c)
				echo.Write([]byte{c})
			}
		}
	}
}

// Reads the rest of an escape sequence after \e. It returns the arrow token
// if the sequence is a cursor key, or "" if the sequence was discarded.
func readEscape(rd io.ByteReader) (string, error) {
	b1, err := rd.ReadByte()
	if err != nil {
		return "", err
	}
	if b1 != '[' {
		logger.Printf("discarding escape sequence %q", []byte{keyEscape, b1})
		return "", nil
	}
	b2, err := rd.ReadByte()
	if err != nil {
		return "", err
	}
	if token, ok := csiArrows[b2]; ok {
		return token, nil
	}
	logger.Printf("discarding escape sequence %q", []byte{keyEscape, b1, b2})
	return "", nil
}
