package arraypq

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

func orderedFrom(t *testing.T, capacity int, values ...int) *OrderedArrayQueue[int] {
	t.Helper()
	q := NewOrderedArray[int](cmp.Compare[int], capacity)
	for _, v := range values {
		require.True(t, q.Insert(v))
	}
	return q
}

func TestOrderedLayout(t *testing.T) {
	q := orderedFrom(t, 10, 3, 9, 7, 1, 7)
	require.Equal(t, []int{9, 7, 7, 3, 1}, q.data[:q.size])
}

func TestOrderedPositions(t *testing.T) {
	q := orderedFrom(t, 10, 9, 7, 7, 7, 3)

	tests := []struct {
		v           int
		first, last int
	}{
		{v: 10, first: 0, last: 0},
		{v: 9, first: 0, last: 1},
		{v: 8, first: 1, last: 1},
		{v: 7, first: 1, last: 4},
		{v: 5, first: 4, last: 4},
		{v: 3, first: 4, last: 5},
		{v: 1, first: 5, last: 5},
	}
	for _, tt := range tests {
		require.Equal(t, tt.first, q.firstPosition(tt.v), "firstPosition(%d)", tt.v)
		require.Equal(t, tt.last, q.lastPosition(tt.v), "lastPosition(%d)", tt.v)
	}
}

func TestOrderedPositionsEmpty(t *testing.T) {
	q := orderedFrom(t, 4)
	require.Zero(t, q.firstPosition(1))
	require.Zero(t, q.lastPosition(1))
	require.False(t, q.Delete(1))
	require.False(t, q.Contains(1))
}

func TestOrderedInsertTiesBeforeOlder(t *testing.T) {
	type tagged struct{ id, p int }
	q := NewOrderedArray[tagged](func(a, b tagged) int { return cmp.Compare(a.p, b.p) }, 5)
	q.Insert(tagged{1, 4})
	q.Insert(tagged{2, 4})
	q.Insert(tagged{3, 2})
	q.Insert(tagged{4, 4})

	// newest tie furthest from the removal end
	require.Equal(t, []tagged{{4, 4}, {2, 4}, {1, 4}, {3, 2}}, q.data[:q.size])
}

func TestOrderedDeleteRun(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		del    int
		want   []int
	}{
		{name: "middle", values: []int{9, 7, 7, 7, 3}, del: 7, want: []int{9, 3}},
		{name: "lowest priority", values: []int{9, 9, 7, 3}, del: 9, want: []int{7, 3}},
		{name: "highest priority", values: []int{9, 7, 3, 3}, del: 3, want: []int{9, 7}},
		{name: "everything", values: []int{5, 5, 5}, del: 5, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := orderedFrom(t, 10, tt.values...)
			oldSize := q.size
			before := q.modCount

			require.True(t, q.Delete(tt.del))
			require.Equal(t, tt.want, q.data[:q.size])
			require.Equal(t, before+1, q.modCount)

			// vacated slots do not keep stale values
			for _, v := range q.data[q.size:oldSize] {
				require.Zero(t, v)
			}
		})
	}
}

func TestOrderedModCount(t *testing.T) {
	q := orderedFrom(t, 2, 1, 2)
	require.Equal(t, uint64(2), q.modCount)

	require.False(t, q.Insert(3))
	require.Equal(t, uint64(2), q.modCount)

	require.False(t, q.Delete(5))
	require.Equal(t, uint64(2), q.modCount)

	q.Remove()
	require.Equal(t, uint64(3), q.modCount)

	q.Clear()
	require.Equal(t, uint64(4), q.modCount)

	q.Clear()
	q.Remove()
	require.Equal(t, uint64(4), q.modCount)
}
