package clist

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dsashell/ds/tokens"
)

// requireRing checks that following next from the tail returns to the tail after exactly expectedCount steps.
func requireRing(t *testing.T, list *CircularLinkedList, expectedCount int) {
	t.Helper()

	require.Equal(t, expectedCount, list.Size())
	if expectedCount == 0 {
		require.Equal(t, noNode, list.tail)

		return
	}

	current := list.tail
	for step := 1; step <= expectedCount; step++ {
		current = list.arena[current].next
		require.NotEqual(t, noNode, current)
		if step < expectedCount {
			require.NotEqual(t, list.tail, current, "ring closed after %d of %d steps", step, expectedCount)
		}
	}
	require.Equal(t, list.tail, current, "ring did not close after %d steps", expectedCount)
}

func TestCircularLinkedList_Insert(t *testing.T) {
	list := New()
	requireRing(t, list, 0)
	assert.Empty(t, list.Display())

	list.Insert("a")
	requireRing(t, list, 1)
	assert.Equal(t, list.tail, list.arena[list.tail].next, "single node must point to itself")

	list.Insert("b", "c")
	requireRing(t, list, 3)
	assert.Equal(t, []string{"a", "b", "c"}, list.Display())
	assert.Equal(t, "c", list.arena[list.tail].data)
}

func TestCircularLinkedList_Delete(t *testing.T) {
	list := New()
	assert.False(t, list.Delete("a"))

	list.Insert("a", "b")
	assert.True(t, list.Delete("a"))
	assert.Equal(t, []string{"b"}, list.Display())
	requireRing(t, list, 1)
	assert.Equal(t, list.tail, list.arena[list.tail].next)

	assert.True(t, list.Delete("b"))
	assert.True(t, list.IsEmpty())
	requireRing(t, list, 0)
	assert.False(t, list.Delete("b"))
}

func TestCircularLinkedList_DeleteTail(t *testing.T) {
	list := New()
	list.Insert("1", "2", "3")

	assert.True(t, list.Delete("3"))
	requireRing(t, list, 2)
	assert.Equal(t, "2", list.arena[list.tail].data, "tail must be re-anchored to its predecessor")
	assert.Equal(t, []string{"1", "2"}, list.Display())

	list.Insert("4")
	assert.Equal(t, []string{"1", "2", "4"}, list.Display())
	requireRing(t, list, 3)
}

func TestCircularLinkedList_DeleteMissing(t *testing.T) {
	list := New()
	list.Insert("1", "2", "3")

	assert.False(t, list.Delete("7"))
	assert.Equal(t, []string{"1", "2", "3"}, list.Display())
	requireRing(t, list, 3)
}

func TestCircularLinkedList_RingInvariant(t *testing.T) {
	list := New()
	random := rand.New(rand.NewSource(42))

	count := 0
	for i := 0; i < 2000; i++ {
		value := strconv.Itoa(random.Intn(20))
		if random.Intn(3) == 0 {
			if list.Delete(value) {
				count--
			}
		} else {
			list.Insert(value)
			count++
		}

		requireRing(t, list, count)
	}
}

func TestCircularLinkedList_Sort(t *testing.T) {
	list := New()
	list.Insert("5", "-2", "5", "0")

	require.NoError(t, list.Sort(false))
	assert.Equal(t, []string{"-2", "0", "5", "5"}, list.Display())
	requireRing(t, list, 4)

	require.NoError(t, list.Sort(true))
	assert.Equal(t, []string{"5", "5", "0", "-2"}, list.Display())
	requireRing(t, list, 4)

	list.Insert("x")
	assert.True(t, errors.Is(list.Sort(false), tokens.ErrNonNumericToken))
	assert.Equal(t, []string{"5", "5", "0", "-2", "x"}, list.Display())
}

func TestCircularLinkedList_Search(t *testing.T) {
	list := New()
	assert.Equal(t, "1 not found", list.Search("1").String())

	list.Insert("1", "2", "3")
	assert.Equal(t, "3 found at position 3", list.Search("3").String())
	assert.Equal(t, "1 found at position 1", list.Search("1").String())
	assert.False(t, list.Search("4").Found)
}

func TestCircularLinkedList_BinarySearch(t *testing.T) {
	list := New()
	list.Insert("3", "1", "2")

	result, err := list.BinarySearch("1")
	require.NoError(t, err)
	assert.Equal(t, "1 found at index 0 in sorted clist", result.String())
	assert.Equal(t, []string{"3", "1", "2"}, list.Display())

	result, err = list.BinarySearch("8")
	require.NoError(t, err)
	assert.Equal(t, "8 not found in sorted clist", result.String())
}
