// Package view renders the calculator state and the informational screens.
package view

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dc2calc/dc2/pkg/calc"
	"github.com/dc2calc/dc2/pkg/stack"
	"github.com/dc2calc/dc2/pkg/sys"
	"github.com/mattn/go-runewidth"
)

// ClearScreen moves the cursor home and clears the terminal.
const ClearScreen = "\x1b[1;1H\x1b[2J"

// Prompt is written before reading each command.
const Prompt = "> "

// MaxViewableStack is the maximum number of stack rows shown. Deeper stacks
// show the deepest register, an ellipsis row and the top MaxViewableStack-1
// registers.
const MaxViewableStack = 20

// TapeRows is the number of tape entries shown below the stack.
const TapeRows = 5

const (
	nameWidth  = 4
	valueWidth = 26
)

// RegisterName returns the label of the register at the given depth, where
// depth 1 is the top of the stack.
func RegisterName(depth int) string {
	switch depth {
	case 1:
		return " x"
	case 2:
		return " y"
	default:
		return fmt.Sprintf("%2d", depth)
	}
}

// FormatValue formats a stack value in the given format, right-aligned in
// 25 columns.
func FormatValue(v float64, f calc.Format) string {
	if f == calc.Fixed {
		return fmt.Sprintf("%25.6f", v)
	}
	return fmt.Sprintf("%25.12g", v)
}

// Render writes the status screen: the angle mode and number format, the
// stack and the most recent tape entries.
func Render(w io.Writer, s *calc.State) error {
	var sb strings.Builder
	sb.WriteString(ClearScreen)

	sb.WriteString("┌─────┬─────┐ \n")
	fmt.Fprintf(&sb, "│ %s │ %s │ \n", s.Mode, s.Format)
	sb.WriteString("└─────┴─────┘ \n")

	sb.WriteString("                 STACK\n")
	sb.WriteString(border('┌', '┬', '┐'))
	values := s.Stack.Values()
	n := len(values)
	start := 0
	if n > MaxViewableStack {
		start = n - (MaxViewableStack - 1)
		writeRow(&sb, RegisterName(n), FormatValue(values[0], s.Format))
		sb.WriteString("│....│" + strings.Repeat(".", valueWidth) + "│\n")
	}
	for i := start; i < n; i++ {
		writeRow(&sb, RegisterName(n-i), FormatValue(values[i], s.Format))
	}
	sb.WriteString(border('└', '┴', '┘'))

	if entries := s.Tape.Last(TapeRows); len(entries) > 0 {
		sb.WriteString("                 TAPE\n")
		width := tapeWidth(w)
		for _, entry := range entries {
			sb.WriteString(" " + runewidth.Truncate(entry, width, "…") + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Tape entries are as wide as the stack box, or narrower when the terminal
// is, so that they never wrap.
func tapeWidth(w io.Writer) int {
	width := nameWidth + valueWidth + 1
	if f, ok := w.(*os.File); ok {
		if _, cols := sys.WinSize(f); cols > 0 && cols-2 < width {
			width = max(cols-2, 1)
		}
	}
	return width
}

func writeRow(sb *strings.Builder, name, value string) {
	fmt.Fprintf(sb, "│ %s │%s│\n",
		runewidth.FillRight(name, nameWidth-2),
		runewidth.FillLeft(value, valueWidth))
}

func border(left, mid, right rune) string {
	return string(left) + strings.Repeat("─", nameWidth) + string(mid) +
		strings.Repeat("─", valueWidth) + string(right) + "\n"
}

// ErrorMessage returns the message shown to the user for an error returned
// by calc.State.Eval.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, stack.ErrUnderflow):
		return "No value left in the stack"
	case errors.Is(err, stack.ErrOverflow):
		return "Out of memory, prevented a stack overflow"
	default:
		return err.Error()
	}
}
