// Package calc implements the RPN evaluator: the calculator state, the
// operation registry and the command dispatcher.
package calc

import (
	"math/rand"
	"time"

	"github.com/dc2calc/dc2/pkg/logutil"
	"github.com/dc2calc/dc2/pkg/stack"
)

var logger = logutil.GetLogger("[calc] ")

// Mode is the angle mode used by trigonometric operations.
type Mode int

// Possible values for Mode.
const (
	Radians Mode = iota
	Degrees
)

func (m Mode) String() string {
	if m == Degrees {
		return "deg"
	}
	return "rad"
}

// Format is the numeric display format. It is only consumed by the renderer.
type Format int

// Possible values for Format.
const (
	Scientific Format = iota
	Fixed
)

func (f Format) String() string {
	if f == Fixed {
		return "fix"
	}
	return "sci"
}

// Screens shows the informational screens triggered by commands.
type Screens interface {
	Credits() error
	Help() error
	License() error
}

type nopScreens struct{}

func (nopScreens) Credits() error { return nil }
func (nopScreens) Help() error    { return nil }
func (nopScreens) License() error { return nil }

// State is the whole state of a calculator session.
type State struct {
	Stack  *stack.Stack
	Mode   Mode
	Format Format
	// LastCommand is the most recent command recorded for redo. It is never a
	// numeric literal and never redo itself. An empty string means none.
	LastCommand string
	Tape        *Tape
	// Screens is called by the credits, help and license commands.
	Screens Screens
	// Rand returns a uniform value in [0, 1).
	Rand func() float64
}

// NewState creates a State with an empty stack in radians and scientific
// mode.
func NewState() *State {
	return &State{
		Stack:   stack.New(stack.DefaultCapacity),
		Tape:    NewTape(TapeSize),
		Screens: nopScreens{},
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())).Float64,
	}
}
