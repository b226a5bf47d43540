package kvcell

// Slot is single-value storage that is either occupied or vacant.
//
// It is the explicit form of "possibly uninitialized" memory: decomposing an
// Item yields its slots, and refilling a slot hands ownership back. A value
// is transferred out of a slot exactly once; Take vacates the slot so a
// second transfer is detectable.
//
// Unless built with the kvcell_nocheck tag, state violations panic.
type Slot[T any] struct {
	value T
	full  bool
}

// Filled returns a slot occupied by v.
func Filled[T any](v T) Slot[T] {
	return Slot[T]{value: v, full: true}
}

// Vacant returns an empty slot.
func Vacant[T any]() Slot[T] {
	return Slot[T]{}
}

// Full reports whether the slot currently holds a value.
func (s *Slot[T]) Full() bool {
	return s.full
}

// Take vacates the slot and returns the value it held. The slot must be
// full. The slot retains no reference to the returned value afterwards.
func (s *Slot[T]) Take() T {
	if checkInvariants && !s.full {
		panic("kvcell: Take of vacant slot")
	}
	v := s.value
	var zero T
	s.value = zero
	s.full = false
	return v
}

// Fill places v into the slot, taking ownership. The slot must be vacant.
func (s *Slot[T]) Fill(v T) {
	if checkInvariants && s.full {
		panic("kvcell: Fill of occupied slot")
	}
	s.value = v
	s.full = true
}

// Replace swaps v into the slot and returns the previous value. The slot
// must be full, and it remains full.
func (s *Slot[T]) Replace(v T) T {
	if checkInvariants && !s.full {
		panic("kvcell: Replace on vacant slot")
	}
	old := s.value
	s.value = v
	return old
}

// Ref returns a pointer to the stored value for in-place use. The slot must
// be full, and it stays the owner; callers must not retain the pointer past
// the next state transition.
func (s *Slot[T]) Ref() *T {
	if checkInvariants && !s.full {
		panic("kvcell: Ref of vacant slot")
	}
	return &s.value
}
