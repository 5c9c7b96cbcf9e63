package list

import (
	"github.com/iotaledger/dsashell/ds/tokens"
)

// SinglyLinkedList is an ordered chain of tokens that is only traversable from the head.
// No tail reference is cached, so appending walks the chain.
type SinglyLinkedList struct {
	head  *Node
	count int
}

// New creates a new empty SinglyLinkedList.
func New() *SinglyLinkedList {
	return &SinglyLinkedList{}
}

// Insert appends the values to the end of the list in the given order.
func (list *SinglyLinkedList) Insert(values ...string) {
	for _, value := range values {
		list.insert(value)
	}
}

func (list *SinglyLinkedList) insert(value string) {
	node := &Node{Data: value}
	list.count++

	if list.head == nil {
		list.head = node

		return
	}

	current := list.head
	for current.Next != nil {
		current = current.Next
	}
	current.Next = node
}

// Delete removes the first node holding value and reports whether one was found.
func (list *SinglyLinkedList) Delete(value string) bool {
	var prev *Node
	for current := list.head; current != nil; prev, current = current, current.Next {
		if current.Data != value {
			continue
		}

		if prev == nil {
			list.head = current.Next
		} else {
			prev.Next = current.Next
		}
		current.Next = nil
		list.count--

		return true
	}

	return false
}

// Display returns the elements from head to tail.
func (list *SinglyLinkedList) Display() []string {
	result := make([]string, 0, list.count)
	for current := list.head; current != nil; current = current.Next {
		result = append(result, current.Data)
	}

	return result
}

// ReverseDisplay returns the elements from tail to head.
func (list *SinglyLinkedList) ReverseDisplay() []string {
	return reverseFrom(list.head, make([]string, 0, list.count))
}

// reverseFrom collects the data of the chain starting at node in reverse order by recursing to the tail first.
func reverseFrom(node *Node, result []string) []string {
	if node == nil {
		return result
	}

	return append(reverseFrom(node.Next, result), node.Data)
}

// Sort rebuilds the list ordered by the integer value of its elements.
// The list is left unchanged if an element is not numeric.
func (list *SinglyLinkedList) Sort(reverse bool) error {
	sorted, err := tokens.Sorted(list.Display(), reverse)
	if err != nil {
		return err
	}

	list.Clear()
	list.Insert(sorted...)

	return nil
}

// Search scans the list from the head and returns the 1-based position of the first match.
func (list *SinglyLinkedList) Search(target string) tokens.SearchResult {
	result := tokens.SearchResult{Target: target}

	position := 1
	for current := list.head; current != nil; current = current.Next {
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
func (list *SinglyLinkedList) BinarySearch(value string) (tokens.BinarySearchResult, error) {
	return tokens.BinarySearch(list.Display(), value, "list")
}

// Clear removes all elements.
func (list *SinglyLinkedList) Clear() {
	list.head = nil
	list.count = 0
}

// Size returns the number of elements in the list.
func (list *SinglyLinkedList) Size() int {
	return list.count
}

// IsEmpty checks if the list contains no elements.
func (list *SinglyLinkedList) IsEmpty() bool {
	return list.head == nil
}
