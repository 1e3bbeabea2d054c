package arraypq

import "sort"

// OrderedArrayQueue keeps its backing array sorted from lowest priority at
// index 0 to highest priority at index Size()-1. Equal priority elements form
// a contiguous run in which older elements sit closer to the end, so Remove
// and Peek only ever read the last occupied slot.
type OrderedArrayQueue[E any] struct {
	store[E]
}

// NewOrderedArray creates an OrderedArrayQueue holding at most capacity
// elements. A capacity <= 0 uses DefaultCapacity.
func NewOrderedArray[E any](compare CompareFunc[E], capacity int) *OrderedArrayQueue[E] {
	return &OrderedArrayQueue[E]{store: newStore(compare, capacity)}
}

// Insert places e in front of every element of equal priority already in the
// queue, shifting the rest of the array right by one. O(log n) search plus
// O(n) shift.
func (q *OrderedArrayQueue[E]) Insert(e E) bool {
	if q.IsFull() {
		return false
	}
	i := q.firstPosition(e)
	copy(q.data[i+1:q.size+1], q.data[i:q.size])
	q.data[i] = e
	q.size++
	q.modCount++
	return true
}

// Remove returns the element in the last occupied slot. O(1).
func (q *OrderedArrayQueue[E]) Remove() (E, bool) {
	var zero E
	if q.size == 0 {
		return zero, false
	}
	q.size--
	e := q.data[q.size]
	q.data[q.size] = zero
	q.modCount++
	return e, true
}

// Peek returns the element in the last occupied slot without removing it.
func (q *OrderedArrayQueue[E]) Peek() (E, bool) {
	if q.size == 0 {
		var zero E
		return zero, false
	}
	return q.data[q.size-1], true
}

// Delete removes the whole run of elements that compare equal to v.
func (q *OrderedArrayQueue[E]) Delete(v E) bool {
	lo := q.firstPosition(v)
	// lo == size when every element has a higher priority than v
	if lo >= q.size || q.compare(q.data[lo], v) != 0 {
		return false
	}
	hi := q.lastPosition(v)
	n := copy(q.data[lo:], q.data[hi:q.size])
	clear(q.data[lo+n : q.size])
	q.size = lo + n
	q.modCount++
	return true
}

// Contains reports whether an element equal to v is present. O(log n).
func (q *OrderedArrayQueue[E]) Contains(v E) bool {
	i := q.firstPosition(v)
	return i < q.size && q.compare(q.data[i], v) == 0
}

// firstPosition returns the smallest index whose element does not have a
// lower priority than v, or Size() if there is none. This is both the start
// of the run equal to v and the slot a new v is inserted at.
func (q *OrderedArrayQueue[E]) firstPosition(v E) int {
	return sort.Search(q.size, func(i int) bool {
		return q.compare(q.data[i], v) <= 0
	})
}

// lastPosition returns the exclusive end of the run equal to v.
func (q *OrderedArrayQueue[E]) lastPosition(v E) int {
	return sort.Search(q.size, func(i int) bool {
		return q.compare(q.data[i], v) < 0
	})
}
