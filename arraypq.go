// Package arraypq implements a bounded priority queue with two interchangeable
// array backed strategies. Both remove the highest priority element first and
// break ties between equal priorities in insertion (FIFO) order.
package arraypq

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// New creates a PriorityQueue for any type E using the strategy and capacity
// from config. config can be nil to use the defaults, or only set the
// non-default values desired.
func New[E any](compare CompareFunc[E], config *Config) PriorityQueue[E] {
	config = mergeConfig(config)
	if config.Strategy == UnorderedArray {
		return NewUnorderedArray(compare, config.Capacity)
	}
	return NewOrderedArray(compare, config.Capacity)
}

// Ordered creates a PriorityQueue for ordered types in which the smallest
// value has the highest priority. It uses cmp.Compare for comparison.
func Ordered[T constraints.Ordered](config *Config) PriorityQueue[T] {
	return New[T](cmp.Compare[T], config)
}

var (
	_ PriorityQueue[int] = (*OrderedArrayQueue[int])(nil)
	_ PriorityQueue[int] = (*UnorderedArrayQueue[int])(nil)
)
