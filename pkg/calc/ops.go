package calc

import (
	"math"

	"github.com/dc2calc/dc2/pkg/stack"
)

// Arity identifies the category of an operation.
type Arity int

// Possible values for Arity, in lookup order.
const (
	Binary Arity = iota
	Unary
	AngleUnary
	Nullary
)

var arityNames = [...]string{"binary", "unary", "angle-unary", "nullary"}

func (a Arity) String() string { return arityNames[a] }

// Op is an operation found in the registry.
type Op struct {
	Name  string
	Arity Arity

	binary  func(x, y float64) float64
	unary   func(x float64) float64
	nullary func(s *State) error
}

// Binary operations are called with the value popped first (the x register)
// and the value popped second (the y register), and compute y op x.
var binaryOps = map[string]func(x, y float64) float64{
	"+":     func(x, y float64) float64 { return y + x },
	"-":     func(x, y float64) float64 { return y - x },
	"*":     func(x, y float64) float64 { return y * x },
	"/":     func(x, y float64) float64 { return y / x },
	"^":     power,
	"pow":   power,
	"power": power,
}

func power(x, y float64) float64 { return math.Pow(y, x) }

var unaryOps = map[string]func(float64) float64{
	"!":          factorial,
	"sqrt":       math.Sqrt,
	"log10":      math.Log10,
	"log":        math.Log,
	"ln":         math.Log,
	"reciprocal": reciprocal,
	"rec":        reciprocal,
	`\`:          reciprocal,
}

// factorial computes x! as Γ(x+1), so that it is defined for non-integers.
func factorial(x float64) float64 { return math.Gamma(x + 1) }

func reciprocal(x float64) float64 { return 1 / x }

// The operand of these operations is converted from degrees in Degrees mode.
// Results of the inverse functions are always in radians.
var angleUnaryOps = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
}

var nullaryOps = map[string]func(*State) error{
	"clear": clearStack,
	"c":     clearStack,
	"drop":  drop,
	"d":     drop,
	"swap":  onStack((*stack.Stack).Swap),
	"s":     onStack((*stack.Stack).Swap),

	"roll":        onStack((*stack.Stack).RollRight),
	"rroll":       onStack((*stack.Stack).RollRight),
	"arrow_right": onStack((*stack.Stack).RollRight),
	"unroll":      onStack((*stack.Stack).RollLeft),
	"lroll":       onStack((*stack.Stack).RollLeft),
	"arrow_left":  onStack((*stack.Stack).RollLeft),

	"deg": func(s *State) error { s.Mode = Degrees; return nil },
	"rad": func(s *State) error { s.Mode = Radians; return nil },
	"fix": func(s *State) error { s.Format = Fixed; return nil },
	"sci": func(s *State) error { s.Format = Scientific; return nil },

	"credits": func(s *State) error { return s.Screens.Credits() },
	"?":       func(s *State) error { return s.Screens.Credits() },
	"help":    func(s *State) error { return s.Screens.Help() },
	"h":       func(s *State) error { return s.Screens.Help() },
	"license": func(s *State) error { return s.Screens.License() },
}

func clearStack(s *State) error {
	s.Stack.Clear()
	return nil
}

func drop(s *State) error {
	_, err := s.Stack.Pop()
	return err
}

func onStack(f func(*stack.Stack)) func(*State) error {
	return func(s *State) error {
		f(s.Stack)
		return nil
	}
}

// Lookup finds the operation for a lower-case command token. Binary
// operations are searched first, then unary, angle-aware unary and nullary
// ones.
func Lookup(token string) (Op, bool) {
	if f, ok := binaryOps[token]; ok {
		return Op{Name: token, Arity: Binary, binary: f}, true
	}
	if f, ok := unaryOps[token]; ok {
		return Op{Name: token, Arity: Unary, unary: f}, true
	}
	if f, ok := angleUnaryOps[token]; ok {
		return Op{Name: token, Arity: AngleUnary, unary: f}, true
	}
	if f, ok := nullaryOps[token]; ok {
		return Op{Name: token, Arity: Nullary, nullary: f}, true
	}
	return Op{}, false
}

// Apply applies op to the state. An operation that needs more operands than
// the stack holds leaves the stack unchanged and returns stack.ErrUnderflow.
func (s *State) Apply(op Op) error {
	switch op.Arity {
	case Binary:
		if s.Stack.Len() < 2 {
			return stack.ErrUnderflow
		}
		x, _ := s.Stack.Pop()
		y, _ := s.Stack.Pop()
		r := op.binary(x, y)
		s.Tape.addBinary(y, op.Name, x, r)
		return s.Stack.Push(r)
	case Unary, AngleUnary:
		if s.Stack.Len() < 1 {
			return stack.ErrUnderflow
		}
		x, _ := s.Stack.Pop()
		arg := x
		if op.Arity == AngleUnary && s.Mode == Degrees {
			arg = x * math.Pi / 180
		}
		r := op.unary(arg)
		s.Tape.addUnary(x, op.Name, r)
		return s.Stack.Push(r)
	default:
		return op.nullary(s)
	}
}
