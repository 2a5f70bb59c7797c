package game

// Slot holds an optional value. The zero Slot is empty, so "no weapon
// equipped" can never be confused with a real card.
type Slot[T any] struct {
	value T
	ok    bool
}

// Some returns a filled slot.
func Some[T any](v T) Slot[T] {
	return Slot[T]{value: v, ok: true}
}

// None returns an empty slot.
func None[T any]() Slot[T] {
	return Slot[T]{}
}

// Get returns the held value and whether the slot is filled.
func (s Slot[T]) Get() (T, bool) {
	return s.value, s.ok
}

// IsSome reports whether the slot holds a value.
func (s Slot[T]) IsSome() bool {
	return s.ok
}

// IsNone reports whether the slot is empty.
func (s Slot[T]) IsNone() bool {
	return !s.ok
}
