// Package stack implements the bounded value stack of the calculator.
//
// Index 0 of the stack is the bottom. The top element is called the x
// register and the one below it the y register.
package stack

import "errors"

const (
	// MinCapacity is the smallest capacity a Stack can have.
	MinCapacity = 99
	// DefaultCapacity is the capacity used by the calculator.
	DefaultCapacity = 100
)

var (
	// ErrUnderflow is returned when popping from an empty stack.
	ErrUnderflow = errors.New("no value left in the stack")
	// ErrOverflow is returned when pushing onto a full stack.
	ErrOverflow = errors.New("out of memory, prevented a stack overflow")
)

// Stack is a fixed-capacity stack of float64 values. The zero value is not
// usable; use New.
type Stack struct {
	values []float64
	size   int
}

// New creates an empty Stack. A capacity smaller than MinCapacity is raised
// to MinCapacity.
func New(capacity int) *Stack {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	return &Stack{values: make([]float64, capacity)}
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int { return s.size }

// Cap returns the capacity of the stack.
func (s *Stack) Cap() int { return len(s.values) }

// Values returns a copy of the values on the stack, bottom first.
func (s *Stack) Values() []float64 {
	vs := make([]float64, s.size)
	copy(vs, s.values[:s.size])
	return vs
}

// Push pushes v onto the stack. If the stack is full, it returns ErrOverflow
// and the stack is left unchanged.
func (s *Stack) Push(v float64) error {
	if s.size >= len(s.values) {
		return ErrOverflow
	}
	s.values[s.size] = v
	s.size++
	return nil
}

// Pop removes and returns the top value. On an empty stack it returns 0 and
// ErrUnderflow.
func (s *Stack) Pop() (float64, error) {
	if s.size == 0 {
		return 0, ErrUnderflow
	}
	s.size--
	return s.values[s.size], nil
}

// Peek returns the top value, or 0 if the stack is empty.
func (s *Stack) Peek() float64 {
	if s.size == 0 {
		return 0
	}
	return s.values[s.size-1]
}

// Clear removes all values. The backing storage is kept.
func (s *Stack) Clear() { s.size = 0 }

// Swap exchanges the x and y registers. It does nothing when there are fewer
// than two values.
func (s *Stack) Swap() {
	if s.size < 2 {
		return
	}
	s.values[s.size-1], s.values[s.size-2] = s.values[s.size-2], s.values[s.size-1]
}

// RollRight moves the top value to the bottom, shifting every other value up
// by one position.
func (s *Stack) RollRight() {
	if s.size == 0 {
		return
	}
	top := s.values[s.size-1]
	copy(s.values[1:s.size], s.values[:s.size-1])
	s.values[0] = top
}

// RollLeft moves the bottom value to the top, shifting every other value
// down by one position. It undoes RollRight.
func (s *Stack) RollLeft() {
	if s.size == 0 {
		return
	}
	bottom := s.values[0]
	copy(s.values[:s.size-1], s.values[1:s.size])
	s.values[s.size-1] = bottom
}
