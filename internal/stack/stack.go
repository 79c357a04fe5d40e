// Package stack provides a small slice-backed LIFO container.
package stack

// Stack is a last-in first-out sequence. The zero value is an empty stack
// ready to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack with room for capacity items.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push adds v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item. It panics on an empty stack;
// callers check Len first.
func (s *Stack[T]) Pop() T {
	n := len(s.items)
	if n == 0 {
		panic("stack: pop from empty stack")
	}
	v := s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v
}

// Peek returns the top item without removing it. It panics on an empty stack.
func (s *Stack[T]) Peek() T {
	n := len(s.items)
	if n == 0 {
		panic("stack: peek at empty stack")
	}
	return s.items[n-1]
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool {
	return len(s.items) == 0
}

// Values returns a copy of the items ordered bottom to top.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
