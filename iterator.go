package arraypq

import (
	"errors"
	"iter"
)

// store is the fixed capacity backing array shared by both strategies.
// Only data[:size] is logically valid.
type store[E any] struct {
	data     []E
	size     int
	modCount uint64 // bumped on every successful structural change
	compare  CompareFunc[E]
}

func newStore[E any](compare CompareFunc[E], capacity int) store[E] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return store[E]{
		data:    make([]E, capacity),
		compare: compare,
	}
}

// Size returns the number of elements currently in the queue.
func (s *store[E]) Size() int {
	return s.size
}

// Cap returns the fixed capacity of the queue.
func (s *store[E]) Cap() int {
	return len(s.data)
}

// IsEmpty reports whether the queue holds no elements.
func (s *store[E]) IsEmpty() bool {
	return s.size == 0
}

// IsFull reports whether the queue is at capacity.
func (s *store[E]) IsFull() bool {
	return s.size == len(s.data)
}

// Clear returns the queue to an empty state. Vacated slots are zeroed so the
// queue does not keep their values reachable.
func (s *store[E]) Clear() {
	if s.size == 0 {
		return
	}
	clear(s.data[:s.size])
	s.size = 0
	s.modCount++
}

// Iterator returns a fail-fast iterator over the occupied slots in storage order.
func (s *store[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{s: s, expected: s.modCount}
}

// All returns a sequence over the occupied slots in storage order. Each range
// over the sequence starts a new Iterator.
func (s *store[E]) All() iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		it := s.Iterator()
		for {
			e, err := it.Next()
			if errors.Is(err, ErrNoMoreElements) {
				return
			}
			if err != nil {
				var zero E
				yield(zero, err)
				return
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}

// Iterator is a forward-only, read-only traversal of a PriorityQueue. It
// cannot be restarted. Any structural change to the queue after the Iterator
// was created makes every later HasNext or Next call fail with
// ErrConcurrentModification.
type Iterator[E any] struct {
	s        *store[E]
	index    int
	expected uint64
}

// HasNext reports whether Next will return another element.
func (it *Iterator[E]) HasNext() (bool, error) {
	if it.expected != it.s.modCount {
		return false, ErrConcurrentModification
	}
	return it.index < it.s.size, nil
}

// Next returns the next element. It returns ErrNoMoreElements once the
// traversal is exhausted.
func (it *Iterator[E]) Next() (E, error) {
	var zero E
	more, err := it.HasNext()
	if err != nil {
		return zero, err
	}
	if !more {
		return zero, ErrNoMoreElements
	}
	e := it.s.data[it.index]
	it.index++
	return e, nil
}

// Remove always returns ErrUnsupportedOperation; the queue can only be
// modified through its own methods.
func (it *Iterator[E]) Remove() error {
	return ErrUnsupportedOperation
}
