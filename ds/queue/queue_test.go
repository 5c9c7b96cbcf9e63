package queue

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dsashell/ds/tokens"
)

func TestNewQueue(t *testing.T) {
	q := New()
	require.NotNil(t, q)
	assert.Equal(t, 0, q.Size())
	assert.True(t, q.IsEmpty())
}

func TestQueueEnqueueDequeue(t *testing.T) {
	q := New()
	q.Enqueue("5", "2")

	value, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, "5", value)

	value, ok = q.Rear()
	assert.True(t, ok)
	assert.Equal(t, "2", value)

	value, ok = q.Front()
	assert.True(t, ok)
	assert.Equal(t, "2", value)

	_, ok = q.Dequeue()
	assert.True(t, ok)

	value, ok = q.Dequeue()
	assert.False(t, ok)
	assert.Zero(t, value)

	_, ok = q.Front()
	assert.False(t, ok)
	_, ok = q.Rear()
	assert.False(t, ok)
}

func TestQueueFIFO(t *testing.T) {
	q := New()

	// interleave operations so the ring wraps around before it grows
	for i := 0; i < 5; i++ {
		q.Enqueue(strconv.Itoa(i))
	}
	for i := 0; i < 3; i++ {
		value, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, strconv.Itoa(i), value)
	}
	for i := 5; i < 100; i++ {
		q.Enqueue(strconv.Itoa(i))
	}

	assert.Equal(t, 97, q.Size())
	rear, _ := q.Rear()
	assert.Equal(t, "99", rear)

	for i := 3; i < 100; i++ {
		value, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, strconv.Itoa(i), value)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueueDisplay(t *testing.T) {
	q := New()
	assert.Empty(t, q.Display())

	q.Enqueue("a", "b", "c")
	_, _ = q.Dequeue()
	q.Enqueue("d")
	assert.Equal(t, []string{"b", "c", "d"}, q.Display())
}

func TestQueueSort(t *testing.T) {
	q := New()
	q.Enqueue("4", "-1", "12", "4")

	require.NoError(t, q.Sort(false))
	assert.Equal(t, []string{"-1", "4", "4", "12"}, q.Display())

	require.NoError(t, q.Sort(true))
	assert.Equal(t, []string{"12", "4", "4", "-1"}, q.Display())

	front, _ := q.Front()
	assert.Equal(t, "12", front)
	rear, _ := q.Rear()
	assert.Equal(t, "-1", rear)

	q.Enqueue("seven")
	err := q.Sort(false)
	assert.True(t, errors.Is(err, tokens.ErrNonNumericToken))
	assert.Equal(t, []string{"12", "4", "4", "-1", "seven"}, q.Display())
}

func TestQueueSearch(t *testing.T) {
	q := New()
	q.Enqueue("3", "8", "3")

	result := q.Search("3")
	assert.Equal(t, "3 found at position 1 from front", result.String())

	result = q.Search("8")
	assert.Equal(t, 2, result.Position)

	result = q.Search("1")
	assert.False(t, result.Found)
}

func TestQueueBinarySearch(t *testing.T) {
	q := New()
	q.Enqueue("50", "5", "500")

	result, err := q.BinarySearch("500")
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 2, result.Index)
	assert.Equal(t, []string{"50", "5", "500"}, q.Display())

	result, err = q.BinarySearch("6")
	require.NoError(t, err)
	assert.Equal(t, "6 not found in sorted queue", result.String())
}

func TestQueueClear(t *testing.T) {
	q := New()
	q.Enqueue("1", "2")
	q.Clear()
	assert.True(t, q.IsEmpty())
	q.Enqueue("3")
	assert.Equal(t, []string{"3"}, q.Display())
}

func TestQueueZeroValue(t *testing.T) {
	var q Queue
	assert.Equal(t, []string{}, q.Display())

	for i := 0; i < 3*initialCapacity; i++ {
		q.Enqueue(strconv.Itoa(i))
	}
	require.Equal(t, 3*initialCapacity, q.Size())

	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, "0", front)

	rear, ok := q.Rear()
	require.True(t, ok)
	assert.Equal(t, strconv.Itoa(3*initialCapacity-1), rear)
}
