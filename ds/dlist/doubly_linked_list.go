package dlist

import (
	"github.com/iotaledger/dsashell/ds/tokens"
)

// New creates a new empty DoublyLinkedList.
func New() *DoublyLinkedList {
	return &DoublyLinkedList{}
}

// DoublyLinkedList is an ordered chain of tokens with backward links. Only the head is kept, appending and reverse
// traversal walk to the tail first.
type DoublyLinkedList struct {
	head  *DoublyNode
	count int
}

// Insert appends the values to the end of this list in the given order.
func (list *DoublyLinkedList) Insert(values ...string) {
	for _, value := range values {
		newNode := &DoublyNode{Data: value}
		if list.head == nil {
			list.head = newNode
		} else {
			link(list.last(), newNode)
		}

		list.count++
	}
}

// Delete removes the first node holding value and reports whether one was found.
func (list *DoublyLinkedList) Delete(value string) bool {
	for current := list.head; current != nil; current = current.next {
		if current.Data == value {
			list.removeNode(current)

			return true
		}
	}

	return false
}

func (list *DoublyLinkedList) removeNode(node *DoublyNode) {
	prevNode := node.GetPrev()
	nextNode := node.GetNext()

	if list.head == node {
		list.head = nextNode
	}
	link(prevNode, nextNode)

	node.next = nil
	node.prev = nil

	list.count--
}

// Display returns the elements from head to tail.
func (list *DoublyLinkedList) Display() []string {
	result := make([]string, 0, list.count)
	for current := list.head; current != nil; current = current.next {
		result = append(result, current.Data)
	}

	return result
}

// ReverseDisplay returns the elements from tail to head by following the backward links.
func (list *DoublyLinkedList) ReverseDisplay() []string {
	result := make([]string, 0, list.count)
	for current := list.last(); current != nil; current = current.prev {
		result = append(result, current.Data)
	}

	return result
}

// Sort rebuilds the list ordered by the integer value of its elements.
// The list is left unchanged if an element is not numeric.
func (list *DoublyLinkedList) Sort(reverse bool) error {
	sorted, err := tokens.Sorted(list.Display(), reverse)
	if err != nil {
		return err
	}

	list.Clear()
	list.Insert(sorted...)

	return nil
}

// Search scans the list from the head and returns the 1-based position of the first match.
func (list *DoublyLinkedList) Search(target string) tokens.SearchResult {
	result := tokens.SearchResult{Target: target}

	position := 1
	for current := list.head; current != nil; current = current.next {
		if current.Data == target {
			result.Position = position
			result.Found = true

			break
		}
		position++
	}

	return result
}

// BinarySearch returns the index of the value in a sorted copy of the list.
func (list *DoublyLinkedList) BinarySearch(value string) (tokens.BinarySearchResult, error) {
	return tokens.BinarySearch(list.Display(), value, "dlist")
}

// Clear removes all elements.
func (list *DoublyLinkedList) Clear() {
	list.head = nil
	list.count = 0
}

// Size returns the number of elements in the list.
func (list *DoublyLinkedList) Size() int {
	return list.count
}

// IsEmpty checks if the list contains no elements.
func (list *DoublyLinkedList) IsEmpty() bool {
	return list.head == nil
}

// last walks to the tail of the list. It returns nil if the list is empty.
func (list *DoublyLinkedList) last() *DoublyNode {
	current := list.head
	for current != nil && current.next != nil {
		current = current.next
	}

	return current
}
