package dlist

// DoublyNode is a cell of a DoublyLinkedList. next is the owning forward link, prev is a non-owning back reference.
type DoublyNode struct {
	Data string
	prev *DoublyNode
	next *DoublyNode
}

// GetNext returns the successor or nil at the tail.
func (node *DoublyNode) GetNext() *DoublyNode {
	return node.next
}

// GetPrev returns the predecessor or nil at the head.
func (node *DoublyNode) GetPrev() *DoublyNode {
	return node.prev
}

// link connects prev and next so that prev.next == next and next.prev == prev. Either side may be nil.
func link(prev, next *DoublyNode) {
	if prev != nil {
		prev.next = next
	}
	if next != nil {
		next.prev = prev
	}
}
