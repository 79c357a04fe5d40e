package stack

import "testing"

func TestStack_PushPopOrder(t *testing.T) {
	s := New[int](2)
	for i := 1; i <= 5; i++ {
		s.Push(i)
	}

	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}

	for want := 5; want >= 1; want-- {
		if got := s.Peek(); got != want {
			t.Errorf("Peek() = %d, want %d", got, want)
		}
		if got := s.Pop(); got != want {
			t.Errorf("Pop() = %d, want %d", got, want)
		}
	}

	if !s.Empty() {
		t.Error("expected stack to be empty")
	}
}

func TestStack_ZeroValue(t *testing.T) {
	var s Stack[string]
	if !s.Empty() {
		t.Fatal("zero value should be empty")
	}
	s.Push("a")
	if got := s.Peek(); got != "a" {
		t.Errorf("Peek() = %q, want %q", got, "a")
	}
}

func TestStack_ValuesIsCopy(t *testing.T) {
	s := New[float64](0)
	s.Push(1)
	s.Push(2)

	values := s.Values()
	if len(values) != 2 || values[0] != 1 || values[1] != 2 {
		t.Fatalf("Values() = %v, want [1 2]", values)
	}

	values[0] = 99
	if got := s.Values()[0]; got != 1 {
		t.Errorf("mutating Values() result changed the stack: bottom = %v", got)
	}
}

func TestStack_PopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Pop on empty stack to panic")
		}
	}()
	var s Stack[int]
	s.Pop()
}

func TestStack_PeekEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Peek on empty stack to panic")
		}
	}()
	var s Stack[int]
	s.Peek()
}
