package arraypq

import "slices"

// UnorderedArrayQueue stores elements in insertion order and searches for the
// highest priority element on every Remove and Peek.
type UnorderedArrayQueue[E any] struct {
	store[E]
}

// NewUnorderedArray creates an UnorderedArrayQueue holding at most capacity
// elements. A capacity <= 0 uses DefaultCapacity.
func NewUnorderedArray[E any](compare CompareFunc[E], capacity int) *UnorderedArrayQueue[E] {
	return &UnorderedArrayQueue[E]{store: newStore(compare, capacity)}
}

// Insert appends e. O(1).
func (q *UnorderedArrayQueue[E]) Insert(e E) bool {
	if q.IsFull() {
		return false
	}
	q.data[q.size] = e
	q.size++
	q.modCount++
	return true
}

// Remove removes the highest priority element, closing the gap it leaves so
// insertion order is preserved. O(n).
func (q *UnorderedArrayQueue[E]) Remove() (E, bool) {
	var zero E
	if q.size == 0 {
		return zero, false
	}
	i := q.highest()
	e := q.data[i]
	copy(q.data[i:], q.data[i+1:q.size])
	q.size--
	q.data[q.size] = zero
	q.modCount++
	return e, true
}

// Peek returns the element Remove would return. O(n).
func (q *UnorderedArrayQueue[E]) Peek() (E, bool) {
	if q.size == 0 {
		var zero E
		return zero, false
	}
	return q.data[q.highest()], true
}

// Delete removes every element equal to v, keeping the survivors in their
// original relative order.
func (q *UnorderedArrayQueue[E]) Delete(v E) bool {
	live := slices.DeleteFunc(q.data[:q.size], func(e E) bool {
		return q.compare(e, v) == 0
	})
	if len(live) == q.size {
		return false
	}
	q.size = len(live)
	q.modCount++
	return true
}

// Contains reports whether an element equal to v is present. O(n).
func (q *UnorderedArrayQueue[E]) Contains(v E) bool {
	return slices.ContainsFunc(q.data[:q.size], func(e E) bool {
		return q.compare(e, v) == 0
	})
}

// highest returns the index of the earliest inserted element of highest
// priority. The strict comparison keeps the first of several equal candidates.
// Must not be called on an empty queue.
func (q *UnorderedArrayQueue[E]) highest() int {
	best := 0
	for i := 1; i < q.size; i++ {
		if q.compare(q.data[i], q.data[best]) < 0 {
			best = i
		}
	}
	return best
}
