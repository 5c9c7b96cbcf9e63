package list

// Node is a single cell of a SinglyLinkedList. Each node exclusively owns its successor.
type Node struct {
	Data string
	Next *Node
}
