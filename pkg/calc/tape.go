package calc

import "fmt"

// TapeSize is the number of entries kept in the tape of a new State.
const TapeSize = 100

// Tape records the operations applied to the stack, oldest first. When full,
// the oldest entry is dropped.
type Tape struct {
	entries []string
	max     int
}

// NewTape creates a Tape holding at most max entries.
func NewTape(max int) *Tape {
	return &Tape{max: max}
}

// Len returns the number of entries.
func (t *Tape) Len() int { return len(t.entries) }

// Entries returns a copy of all entries.
func (t *Tape) Entries() []string {
	return t.Last(len(t.entries))
}

// Last returns a copy of the last n entries, or all of them if there are
// fewer than n.
func (t *Tape) Last(n int) []string {
	if n > len(t.entries) {
		n = len(t.entries)
	}
	if n <= 0 {
		return nil
	}
	return append([]string(nil), t.entries[len(t.entries)-n:]...)
}

func (t *Tape) add(entry string) {
	if t.max <= 0 {
		return
	}
	if len(t.entries) == t.max {
		copy(t.entries, t.entries[1:])
		t.entries = t.entries[:len(t.entries)-1]
	}
	t.entries = append(t.entries, entry)
}

func (t *Tape) addUnary(x float64, name string, r float64) {
	t.add(fmt.Sprintf("%v %s = %v", x, name, r))
}

func (t *Tape) addBinary(y float64, name string, x, r float64) {
	t.add(fmt.Sprintf("%v %s %v = %v", y, name, x, r))
}
