package arraypq

import "iter"

// PriorityQueue is the interface that both array backed strategies satisfy.
// Elements are removed highest priority first. Among elements of equal priority
// the one that has been in the queue longest is removed first.
//
// A PriorityQueue is not safe for concurrent use.
type PriorityQueue[E any] interface {
	// Insert adds e to the queue. It returns false, leaving the queue unchanged,
	// if the queue is full.
	Insert(e E) bool

	// Remove removes and returns the highest priority element that has been in
	// the queue longest. The second result is false if the queue is empty.
	Remove() (E, bool)

	// Peek returns the element Remove would return without removing it.
	Peek() (E, bool)

	// Delete removes every element that compares equal to e and reports
	// whether at least one was removed.
	Delete(e E) bool

	// Contains reports whether any element compares equal to e.
	Contains(e E) bool

	// Size returns the number of elements currently in the queue.
	Size() int

	// Cap returns the fixed capacity the queue was created with.
	Cap() int

	// Clear returns the queue to an empty state.
	Clear()

	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool

	// IsFull reports whether Size() == Cap().
	IsFull() bool

	// Iterator returns a fail-fast, read-only iterator over the occupied slots
	// in storage order. No ordering is promised to the caller.
	Iterator() *Iterator[E]

	// All returns the Iterator as a range-over-func sequence. If the queue is
	// modified during the range, the sequence yields ErrConcurrentModification
	// once and stops.
	All() iter.Seq2[E, error]
}

// CompareFunc is a function type for comparing two elements of type E.
// Returns a negative integer if a has a higher priority than b, zero if they
// have equal priority, and a positive integer if a has a lower priority than b.
// This follows the same semantics as cmp.Compare, so for ordered types the
// numerically smallest value has the highest priority.
type CompareFunc[E any] func(a, b E) int
