package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrQuit is returned by Eval when the quit command is evaluated.
var ErrQuit = errors.New("quit")

// Commands that push a constant.
var constants = map[string]func(*State) float64{
	"e":      func(*State) float64 { return math.E },
	"pi":     func(*State) float64 { return math.Pi },
	"random": func(s *State) float64 { return s.Rand() },
	"rnd":    func(s *State) float64 { return s.Rand() },
}

// Eval evaluates one command token. Tokens are case-insensitive and
// surrounding blanks are ignored.
//
// The returned error is ErrQuit for the quit command, or the stack error
// caused by the command; in the latter case the calculator can continue.
// Unknown commands are ignored and return nil.
func (s *State) Eval(token string) error {
	err := s.eval(strings.ToLower(strings.TrimSpace(token)), false)
	if err != nil && err != ErrQuit {
		logger.Printf("%q: %v", token, err)
	}
	return err
}

func (s *State) eval(token string, redo bool) error {
	logger.Printf("eval %q (redo: %v)", token, redo)
	switch token {
	case "quit", "q":
		return ErrQuit
	case "":
		if s.Stack.Len() == 0 {
			return nil
		}
		return s.Stack.Push(s.Stack.Peek())
	case "redo", "r":
		if redo || s.LastCommand == "" {
			return nil
		}
		return s.eval(s.LastCommand, true)
	}

	if c, ok := constants[token]; ok {
		s.remember(token, redo)
		return s.Stack.Push(c(s))
	}
	if v, ok := parseNumber(token); ok {
		return s.Stack.Push(v)
	}
	if op, ok := Lookup(token); ok {
		s.remember(token, redo)
		return s.Apply(op)
	}
	logger.Printf("ignoring unknown command %q", token)
	return nil
}

func (s *State) remember(token string, redo bool) {
	if !redo {
		s.LastCommand = token
	}
}

// Parses the whole token as a floating-point number. Values out of range
// become infinities, as with strtod.
func parseNumber(token string) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err == nil {
		return v, true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return v, true
	}
	// Unlike Go, strtod accepts hex mantissas without a binary exponent.
	if isHex(token) && !strings.ContainsAny(token, "pP") {
		return parseNumber(token + "p0")
	}
	return 0, false
}

func isHex(token string) bool {
	token = strings.TrimLeft(token, "+-")
	return strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X")
}
