package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is returned by Next when HasNext is false.
	ErrExhausted = errors.New("sequence: no more elements")

	// ErrShortSequence indicates a source yielded fewer elements than Size reported.
	ErrShortSequence = errors.New("sequence: fewer elements than reported size")

	// ErrLongSequence indicates a source yielded more elements than Size reported.
	ErrLongSequence = errors.New("sequence: more elements than reported size")

	// ErrNegativeSize is returned by constructors given a negative size.
	ErrNegativeSize = errors.New("sequence: size must be non-negative")
)

// Resettable is an ordered, finite, replayable stream of elements.
//
// Contract:
//   - Size is the total element count and is stable across Reset.
//   - Next advances by one; it returns ErrExhausted when HasNext is false.
//   - Reset rewinds to position 0. It must be idempotent.
type Resettable[T any] interface {
	Size() int
	HasNext() bool
	Next() (T, error)
	Reset() error
}

// Slice is an in-memory Resettable over a slice. Reset is O(1).
type Slice[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a Resettable over items. The slice is not copied.
func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Size returns len(items).
func (s *Slice[T]) Size() int { return len(s.items) }

// HasNext reports whether Next will yield an element.
func (s *Slice[T]) HasNext() bool { return s.pos < len(s.items) }

// Next returns the element at the cursor and advances.
func (s *Slice[T]) Next() (T, error) {
	var zero T
	if s.pos >= len(s.items) {
		return zero, ErrExhausted
	}
	x := s.items[s.pos]
	s.pos++

	return x, nil
}

// Reset rewinds the cursor.
func (s *Slice[T]) Reset() error {
	s.pos = 0
	return nil
}

// Indexed is a Resettable whose elements are loaded on demand from an
// index-addressed source, e.g. numbered frame files. Reset only rewinds the
// index; every Next calls load, so nothing is retained between passes.
type Indexed[T any] struct {
	size int
	load func(i int) (T, error)
	pos  int
}

// FromFunc returns an Indexed sequence of the given size.
func FromFunc[T any](size int, load func(i int) (T, error)) (*Indexed[T], error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}

	return &Indexed[T]{size: size, load: load}, nil
}

// Size returns the element count given at construction.
func (s *Indexed[T]) Size() int { return s.size }

// HasNext reports whether Next will yield an element.
func (s *Indexed[T]) HasNext() bool { return s.pos < s.size }

// Next loads the element at the cursor and advances. A load error does not
// advance the cursor.
func (s *Indexed[T]) Next() (T, error) {
	var zero T
	if s.pos >= s.size {
		return zero, ErrExhausted
	}
	x, err := s.load(s.pos)
	if err != nil {
		return zero, fmt.Errorf("sequence: load %d: %w", s.pos, err)
	}
	s.pos++

	return x, nil
}

// Reset rewinds the cursor.
func (s *Indexed[T]) Reset() error {
	s.pos = 0
	return nil
}

// Take reads the next n elements of s.
// It fails with ErrShortSequence if s runs out before n elements were read.
func Take[T any](s Resettable[T], n int) ([]T, error) {
	out := make([]T, 0, n)
	for len(out) < n {
		if !s.HasNext() {
			return out, fmt.Errorf("take %d, got %d: %w", n, len(out), ErrShortSequence)
		}
		x, err := s.Next()
		if err != nil {
			return out, err
		}
		out = append(out, x)
	}

	return out, nil
}

// Drain reads every remaining element of s.
func Drain[T any](s Resettable[T]) ([]T, error) {
	var out []T
	for s.HasNext() {
		x, err := s.Next()
		if err != nil {
			return out, err
		}
		out = append(out, x)
	}

	return out, nil
}

// Collect rewinds s, materialises all of it and rewinds it again, checking
// that exactly Size elements were produced.
func Collect[T any](s Resettable[T]) ([]T, error) {
	if err := s.Reset(); err != nil {
		return nil, err
	}
	out, err := Take(s, s.Size())
	if err != nil {
		return nil, err
	}
	if s.HasNext() {
		return nil, fmt.Errorf("collect %d: %w", s.Size(), ErrLongSequence)
	}

	return out, s.Reset()
}
