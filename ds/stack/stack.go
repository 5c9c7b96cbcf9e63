package stack

import (
	"slices"

	"github.com/iotaledger/dsashell/ds/tokens"
)

// Stack implements a non-thread safe LIFO container of tokens. The end of the underlying slice is the top.
type Stack struct {
	elements []string
}

// New returns a new empty Stack.
func New() *Stack {
	return new(Stack)
}

// Push pushes the elements onto the top of this Stack in the given order.
func (s *Stack) Push(elements ...string) {
	s.elements = append(s.elements, elements...)
}

// Pop removes and returns the top element of this Stack and whether the element exists.
func (s *Stack) Pop() (value string, exists bool) {
	if s.IsEmpty() {
		return value, false
	}

	index := len(s.elements) - 1
	element := s.elements[index]
	s.elements = s.elements[:index]

	return element, true
}

// Peek returns the top element of this Stack without removing it.
func (s *Stack) Peek() (value string, exists bool) {
	if s.IsEmpty() {
		return value, false
	}

	return s.elements[len(s.elements)-1], true
}

// Display returns the elements from bottom to top.
func (s *Stack) Display() []string {
	return slices.Clone(s.elements)
}

// Trace returns the elements from top to bottom.
func (s *Stack) Trace() []string {
	trace := slices.Clone(s.elements)
	slices.Reverse(trace)

	return trace
}

// Sort reorders the elements by their integer value, so that the largest (or smallest if reverse is set) ends up on
// top. The Stack is left unchanged if an element is not numeric.
func (s *Stack) Sort(reverse bool) error {
	sorted, err := tokens.Sorted(s.elements, reverse)
	if err != nil {
		return err
	}

	s.elements = sorted

	return nil
}

// Search scans the Stack from the top and returns the 1-based position of the first match.
func (s *Stack) Search(target string) tokens.SearchResult {
	result := tokens.SearchResult{Target: target, Origin: tokens.OriginTop}
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i] == target {
			result.Position = len(s.elements) - i
			result.Found = true

			break
		}
	}

	return result
}

// BinarySearch returns the index of the value in a sorted copy of the Stack.
func (s *Stack) BinarySearch(value string) (tokens.BinarySearchResult, error) {
	return tokens.BinarySearch(s.elements, value, "stack")
}

// Clear removes all elements from this Stack.
func (s *Stack) Clear() {
	s.elements = s.elements[:0]
}

// Size returns the amount of elements in this Stack.
func (s *Stack) Size() int {
	return len(s.elements)
}

// IsEmpty checks if this Stack is empty.
func (s *Stack) IsEmpty() bool {
	return len(s.elements) == 0
}
