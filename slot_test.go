package kvcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotFilledTake(t *testing.T) {
	s := Filled("hello")
	require.True(t, s.Full())

	v := s.Take()
	assert.Equal(t, "hello", v)
	assert.False(t, s.Full())
}

func TestSlotVacantFill(t *testing.T) {
	s := Vacant[int]()
	require.False(t, s.Full())

	s.Fill(7)
	assert.True(t, s.Full())
	assert.Equal(t, 7, s.Take())
}

func TestSlotReplace(t *testing.T) {
	s := Filled(1)

	old := s.Replace(2)
	assert.Equal(t, 1, old)
	assert.True(t, s.Full())
	assert.Equal(t, 2, s.Take())
}

func TestSlotRef(t *testing.T) {
	s := Filled([]int{1, 2})

	*s.Ref() = append(*s.Ref(), 3)
	assert.Equal(t, []int{1, 2, 3}, s.Take())
}

func TestSlotStatePanics(t *testing.T) {
	assert.Panics(t, func() {
		s := Vacant[int]()
		s.Take()
	})
	assert.Panics(t, func() {
		s := Filled(1)
		s.Take()
		s.Take()
	})
	assert.Panics(t, func() {
		s := Filled(1)
		s.Fill(2)
	})
	assert.Panics(t, func() {
		s := Vacant[int]()
		s.Replace(1)
	})
	assert.Panics(t, func() {
		s := Vacant[int]()
		s.Ref()
	})
}
