package clist

import (
	"github.com/iotaledger/dsashell/ds/tokens"
)

// noNode marks the absence of a node index.
const noNode = -1

// node is a cell of the ring. next is an index into the arena of the owning list.
type node struct {
	data string
	next int
}

// CircularLinkedList is an ordered ring of tokens anchored at its tail. The successor of the tail is the logical head.
// Nodes live in an arena and are addressed by index, released slots are reused by later inserts.
type CircularLinkedList struct {
	arena []node
	free  []int
	tail  int
	count int
}

// New creates a new empty circular list.
func New() *CircularLinkedList {
	return &CircularLinkedList{tail: noNode}
}

// Insert appends the values after the tail in the given order, each one becoming the new tail.
func (list *CircularLinkedList) Insert(values ...string) {
	for _, value := range values {
		index := list.alloc(value)

		if list.tail == noNode {
			list.arena[index].next = index
		} else {
			list.arena[index].next = list.arena[list.tail].next
			list.arena[list.tail].next = index
		}

		list.tail = index
		list.count++
	}
}

// Delete removes the first node (walking from the head) holding value and reports whether one was found.
func (list *CircularLinkedList) Delete(value string) bool {
	if list.tail == noNode {
		return false
	}

	head := list.arena[list.tail].next
	prev, current := list.tail, head
	for {
		if list.arena[current].data == value {
			list.unlink(prev, current)

			return true
		}

		prev, current = current, list.arena[current].next
		if current == head {
			return false
		}
	}
}

// unlink removes current, whose predecessor is prev, from the ring.
func (list *CircularLinkedList) unlink(prev, current int) {
	switch {
	case list.arena[current].next == current:
		list.tail = noNode
	case current == list.tail:
		list.arena[prev].next = list.arena[current].next
		list.tail = prev
	default:
		list.arena[prev].next = list.arena[current].next
	}

	list.release(current)
	list.count--
}

// Display returns the elements from head to tail.
func (list *CircularLinkedList) Display() []string {
	result := make([]string, 0, list.count)
	list.walk(func(index int) bool {
		result = append(result, list.arena[index].data)

		return true
	})

	return result
}

// Sort rebuilds the ring ordered by the integer value of its elements.
// The ring is left unchanged if an element is not numeric.
func (list *CircularLinkedList) Sort(reverse bool) error {
	sorted, err := tokens.Sorted(list.Display(), reverse)
	if err != nil {
		return err
	}

	list.Clear()
	list.Insert(sorted...)

	return nil
}

// Search scans the ring once from the head and returns the 1-based position of the first match.
func (list *CircularLinkedList) Search(target string) tokens.SearchResult {
	result := tokens.SearchResult{Target: target}

	position := 0
	list.walk(func(index int) bool {
		position++
		if list.arena[index].data != target {
			return true
		}

		result.Position = position
		result.Found = true

		return false
	})

	return result
}

// BinarySearch returns the index of the value in a sorted copy of the ring.
func (list *CircularLinkedList) BinarySearch(value string) (tokens.BinarySearchResult, error) {
	return tokens.BinarySearch(list.Display(), value, "clist")
}

// Clear removes all elements.
func (list *CircularLinkedList) Clear() {
	list.arena = nil
	list.free = nil
	list.tail = noNode
	list.count = 0
}

// Size returns the number of elements in the ring.
func (list *CircularLinkedList) Size() int {
	return list.count
}

// IsEmpty checks if the ring contains no elements.
func (list *CircularLinkedList) IsEmpty() bool {
	return list.tail == noNode
}

// walk visits the ring exactly once starting at the head. The successor of the tail is both the start and the stop
// sentinel. The walk is aborted if the callback returns false.
func (list *CircularLinkedList) walk(callback func(index int) bool) {
	if list.tail == noNode {
		return
	}

	head := list.arena[list.tail].next
	for current := head; ; {
		if !callback(current) {
			return
		}

		if current = list.arena[current].next; current == head {
			return
		}
	}
}

func (list *CircularLinkedList) alloc(value string) int {
	if last := len(list.free) - 1; last >= 0 {
		index := list.free[last]
		list.free = list.free[:last]
		list.arena[index] = node{data: value, next: noNode}

		return index
	}

	list.arena = append(list.arena, node{data: value, next: noNode})

	return len(list.arena) - 1
}

func (list *CircularLinkedList) release(index int) {
	list.arena[index] = node{next: noNode}
	list.free = append(list.free, index)
}
