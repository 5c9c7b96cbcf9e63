package tokens

import (
	"fmt"
)

// Origin names the end a linear search starts from.
type Origin string

const (
	// OriginNone is used by containers that have a single natural start (lists).
	OriginNone Origin = ""
	// OriginTop is used by the stack.
	OriginTop Origin = "top"
	// OriginFront is used by the queue.
	OriginFront Origin = "front"
)

// SearchResult is the outcome of a linear search.
type SearchResult struct {
	Target string
	// Position is 1-based and only meaningful if Found is true.
	Position int
	Found    bool
	Origin   Origin
}

func (r SearchResult) String() string {
	if !r.Found {
		return fmt.Sprintf("%s not found", r.Target)
	}

	if r.Origin == OriginNone {
		return fmt.Sprintf("%s found at position %d", r.Target, r.Position)
	}

	return fmt.Sprintf("%s found at position %d from %s", r.Target, r.Position, r.Origin)
}

// BinarySearchResult is the outcome of a lookup in the sorted copy of a container.
type BinarySearchResult struct {
	Value string
	// Index is 0-based and only meaningful if Found is true.
	Index int
	Found bool
	// Scope names the container in the rendered message.
	Scope string
}

// BinarySearch looks up value in the sorted copy of elements and labels the result with scope.
func BinarySearch(elements []string, value string, scope string) (BinarySearchResult, error) {
	index, found, err := IndexInSorted(elements, value)
	if err != nil {
		return BinarySearchResult{}, err
	}

	return BinarySearchResult{Value: value, Index: index, Found: found, Scope: scope}, nil
}

func (r BinarySearchResult) String() string {
	if !r.Found {
		return fmt.Sprintf("%s not found in sorted %s", r.Value, r.Scope)
	}

	return fmt.Sprintf("%s found at index %d in sorted %s", r.Value, r.Index, r.Scope)
}
