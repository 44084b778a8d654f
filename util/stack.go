package util

// Stack is a LIFO worklist. The zero value is an empty stack.
type Stack[A any] struct {
	items []A
}

func (s *Stack[A]) Push(v ...A) {
	s.items = append(s.items, v...)
}

// Pop removes and returns the last pushed element, ok is false when s is empty
func (s *Stack[A]) Pop() (ret A, ok bool) {
	if len(s.items) == 0 {
		return ret, false
	}
	last := len(s.items) - 1
	ret = s.items[last]
	var zero A
	s.items[last] = zero
	s.items = s.items[:last]
	return ret, true
}

func (s *Stack[A]) Len() int {
	return len(s.items)
}
