package stack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fill(vs ...float64) *Stack {
	s := New(DefaultCapacity)
	for _, v := range vs {
		if err := s.Push(v); err != nil {
			panic(err)
		}
	}
	return s
}

func TestNew_RaisesSmallCapacity(t *testing.T) {
	s := New(3)
	if s.Cap() != MinCapacity {
		t.Errorf("Cap() = %d, want %d", s.Cap(), MinCapacity)
	}
}

func TestPush_UpToCapacity(t *testing.T) {
	for _, n := range []int{0, 1, 50, DefaultCapacity, DefaultCapacity + 1, DefaultCapacity + 10} {
		s := New(DefaultCapacity)
		var overflows int
		for i := 0; i < n; i++ {
			if err := s.Push(float64(i)); err == ErrOverflow {
				overflows++
			} else if err != nil {
				t.Fatalf("Push returned unexpected error %v", err)
			}
		}
		want := min(n, DefaultCapacity)
		if s.Len() != want {
			t.Errorf("after %d pushes Len() = %d, want %d", n, s.Len(), want)
		}
		if overflows != n-want {
			t.Errorf("after %d pushes got %d overflows, want %d", n, overflows, n-want)
		}
	}
}

func TestPush_OverflowLeavesStackUnchanged(t *testing.T) {
	s := New(DefaultCapacity)
	for i := 0; i < DefaultCapacity; i++ {
		s.Push(float64(i))
	}
	before := s.Values()
	if err := s.Push(42); err != ErrOverflow {
		t.Errorf("Push on full stack returned %v, want ErrOverflow", err)
	}
	if diff := cmp.Diff(before, s.Values()); diff != "" {
		t.Errorf("stack changed by overflowing push (-before +after):\n%s", diff)
	}
}

func TestPop_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, -1.5, 3.25, 1e300} {
		s := fill(1, 2)
		s.Push(v)
		got, err := s.Pop()
		if got != v || err != nil {
			t.Errorf("Pop() after Push(%v) = (%v, %v), want (%v, nil)", v, got, err, v)
		}
		if s.Len() != 2 {
			t.Errorf("Len() = %d, want 2", s.Len())
		}
	}
}

func TestPop_Underflow(t *testing.T) {
	s := New(DefaultCapacity)
	v, err := s.Pop()
	if v != 0 || err != ErrUnderflow {
		t.Errorf("Pop() on empty stack = (%v, %v), want (0, ErrUnderflow)", v, err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestPeek(t *testing.T) {
	if v := New(DefaultCapacity).Peek(); v != 0 {
		t.Errorf("Peek() on empty stack = %v, want 0", v)
	}
	s := fill(1, 2, 3)
	if v := s.Peek(); v != 3 {
		t.Errorf("Peek() = %v, want 3", v)
	}
	if s.Len() != 3 {
		t.Errorf("Peek changed Len() to %d", s.Len())
	}
}

func TestClear(t *testing.T) {
	s := fill(1, 2, 3)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
	if s.Cap() != DefaultCapacity {
		t.Errorf("Cap() after Clear = %d, want %d", s.Cap(), DefaultCapacity)
	}
}

var stackOpTests = []struct {
	name  string
	op    func(*Stack)
	input []float64
	want  []float64
}{
	{"Swap/empty", (*Stack).Swap, nil, []float64{}},
	{"Swap/one", (*Stack).Swap, []float64{1}, []float64{1}},
	{"Swap/two", (*Stack).Swap, []float64{1, 2}, []float64{2, 1}},
	{"Swap/keeps lower values", (*Stack).Swap, []float64{1, 2, 3}, []float64{1, 3, 2}},

	{"RollRight/empty", (*Stack).RollRight, nil, []float64{}},
	{"RollRight/one", (*Stack).RollRight, []float64{1}, []float64{1}},
	{"RollRight/many", (*Stack).RollRight, []float64{1, 2, 3, 4}, []float64{4, 1, 2, 3}},

	{"RollLeft/empty", (*Stack).RollLeft, nil, []float64{}},
	{"RollLeft/one", (*Stack).RollLeft, []float64{1}, []float64{1}},
	{"RollLeft/many", (*Stack).RollLeft, []float64{1, 2, 3, 4}, []float64{2, 3, 4, 1}},
}

func TestStackOps(t *testing.T) {
	for _, test := range stackOpTests {
		t.Run(test.name, func(t *testing.T) {
			s := fill(test.input...)
			test.op(s)
			if diff := cmp.Diff(test.want, s.Values()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestInverses(t *testing.T) {
	contents := [][]float64{nil, {1}, {1, 2}, {5, 4, 3, 2, 1}}
	for _, c := range contents {
		s := fill(c...)
		want := s.Values()

		s.RollLeft()
		s.RollRight()
		if diff := cmp.Diff(want, s.Values()); diff != "" {
			t.Errorf("RollLeft then RollRight changed stack (-want +got):\n%s", diff)
		}

		s.RollRight()
		s.RollLeft()
		if diff := cmp.Diff(want, s.Values()); diff != "" {
			t.Errorf("RollRight then RollLeft changed stack (-want +got):\n%s", diff)
		}

		s.Swap()
		s.Swap()
		if diff := cmp.Diff(want, s.Values()); diff != "" {
			t.Errorf("Swap twice changed stack (-want +got):\n%s", diff)
		}
	}
}
