package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cottand/kif/util"
)

func TestStack(t *testing.T) {
	s := &util.Stack[string]{}
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push("a", "b")
	s.Push("c")
	assert.Equal(t, 3, s.Len())

	var popped []string
	for v, ok := s.Pop(); ok; v, ok = s.Pop() {
		popped = append(popped, v)
	}
	assert.Equal(t, []string{"c", "b", "a"}, popped)
	assert.Zero(t, s.Len())
}

func TestPair(t *testing.T) {
	low, high := util.NewPair(1, 8).Unpack()
	assert.Equal(t, 1, low)
	assert.Equal(t, 8, high)
}
