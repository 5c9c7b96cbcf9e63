package list

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dsashell/ds/tokens"
)

// chainLength walks the chain from the head and fails after more steps than the list claims to hold.
func chainLength(t *testing.T, list *SinglyLinkedList) int {
	length := 0
	for current := list.head; current != nil; current = current.Next {
		length++
		require.LessOrEqual(t, length, list.Size(), "chain is longer than the count, it probably has a cycle")
	}

	return length
}

func TestSinglyLinkedList_Insert(t *testing.T) {
	list := New()
	assert.True(t, list.IsEmpty())
	assert.Empty(t, list.Display())

	list.Insert("1")
	list.Insert("2", "3")
	assert.Equal(t, []string{"1", "2", "3"}, list.Display())
	assert.Equal(t, 3, list.Size())
	assert.Equal(t, 3, chainLength(t, list))
}

func TestSinglyLinkedList_Delete(t *testing.T) {
	list := New()
	assert.False(t, list.Delete("1"), "delete on an empty list")

	list.Insert("1", "2", "3", "2")

	assert.True(t, list.Delete("2"))
	assert.Equal(t, []string{"1", "3", "2"}, list.Display(), "only the first match is removed")

	assert.True(t, list.Delete("1"))
	assert.Equal(t, []string{"3", "2"}, list.Display())

	assert.True(t, list.Delete("2"))
	assert.Equal(t, []string{"3"}, list.Display())

	assert.False(t, list.Delete("9"))
	assert.Equal(t, []string{"3"}, list.Display())

	assert.True(t, list.Delete("3"))
	assert.True(t, list.IsEmpty())
	assert.Equal(t, 0, list.Size())
}

func TestSinglyLinkedList_ReverseDisplay(t *testing.T) {
	list := New()
	assert.Empty(t, list.ReverseDisplay())

	list.Insert("a", "b", "c", "d")
	assert.Equal(t, []string{"d", "c", "b", "a"}, list.ReverseDisplay())
	assert.Equal(t, []string{"a", "b", "c", "d"}, list.Display())
}

func TestSinglyLinkedList_Sort(t *testing.T) {
	list := New()
	list.Insert("7", "3", "11", "3")

	require.NoError(t, list.Sort(false))
	assert.Equal(t, []string{"3", "3", "7", "11"}, list.Display())
	assert.Equal(t, 4, chainLength(t, list))

	require.NoError(t, list.Sort(true))
	assert.Equal(t, []string{"11", "7", "3", "3"}, list.Display())
	require.NoError(t, list.Sort(true))
	assert.Equal(t, []string{"11", "7", "3", "3"}, list.Display())

	list.Insert("NaN")
	err := list.Sort(false)
	assert.True(t, errors.Is(err, tokens.ErrNonNumericToken))
	assert.Equal(t, []string{"11", "7", "3", "3", "NaN"}, list.Display())
}

func TestSinglyLinkedList_Search(t *testing.T) {
	list := New()
	list.Insert("4", "5", "6")

	assert.Equal(t, "6 found at position 3", list.Search("6").String())
	assert.Equal(t, "1 not found", list.Search("1").String())
}

func TestSinglyLinkedList_BinarySearch(t *testing.T) {
	list := New()
	list.Insert("9", "1", "5")

	result, err := list.BinarySearch("9")
	require.NoError(t, err)
	assert.Equal(t, "9 found at index 2 in sorted list", result.String())
	assert.Equal(t, []string{"9", "1", "5"}, list.Display())

	result, err = list.BinarySearch("2")
	require.NoError(t, err)
	assert.False(t, result.Found)
}
