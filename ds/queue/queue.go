package queue

import (
	"github.com/iotaledger/dsashell/ds/tokens"
)

const initialCapacity = 8

// Queue implements a non-thread safe FIFO container of tokens backed by a ring buffer that grows on demand.
// The zero value is an empty queue ready to use.
type Queue struct {
	ringBuffer []string
	read       int
	write      int
	size       int
}

// New creates a new empty queue.
func New() *Queue {
	return &Queue{
		ringBuffer: make([]string, initialCapacity),
	}
}

// Size returns the size of the queue.
func (queue *Queue) Size() int {
	return queue.size
}

// IsEmpty checks if the queue is empty.
func (queue *Queue) IsEmpty() bool {
	return queue.size == 0
}

// Enqueue adds the elements to the rear of the queue in the given order.
func (queue *Queue) Enqueue(elements ...string) {
	for _, element := range elements {
		if queue.size == len(queue.ringBuffer) {
			queue.grow()
		}

		queue.ringBuffer[queue.write] = element
		queue.write = (queue.write + 1) % len(queue.ringBuffer)
		queue.size++
	}
}

// Dequeue returns and removes the oldest element in the queue and true if successful.
// It returns false if the queue is empty.
func (queue *Queue) Dequeue() (element string, success bool) {
	if success = queue.size != 0; !success {
		return
	}

	element = queue.ringBuffer[queue.read]
	queue.ringBuffer[queue.read] = ""
	queue.read = (queue.read + 1) % len(queue.ringBuffer)
	queue.size--

	return
}

// Front returns the oldest element without removing it.
func (queue *Queue) Front() (element string, exists bool) {
	if queue.size == 0 {
		return element, false
	}

	return queue.ringBuffer[queue.read], true
}

// Rear returns the newest element without removing it.
func (queue *Queue) Rear() (element string, exists bool) {
	if queue.size == 0 {
		return element, false
	}

	return queue.ringBuffer[queue.index(queue.size-1)], true
}

// Display returns the elements from front to rear.
func (queue *Queue) Display() []string {
	elements := make([]string, queue.size)
	for i := range elements {
		elements[i] = queue.ringBuffer[queue.index(i)]
	}

	return elements
}

// Sort reorders the elements by their integer value, ascending from the front unless reverse is set.
// The queue is left unchanged if an element is not numeric.
func (queue *Queue) Sort(reverse bool) error {
	sorted, err := tokens.Sorted(queue.Display(), reverse)
	if err != nil {
		return err
	}

	queue.Clear()
	queue.Enqueue(sorted...)

	return nil
}

// Search scans the queue from the front and returns the 1-based position of the first match.
func (queue *Queue) Search(target string) tokens.SearchResult {
	result := tokens.SearchResult{Target: target, Origin: tokens.OriginFront}
	for i := 0; i < queue.size; i++ {
		if queue.ringBuffer[queue.index(i)] == target {
			result.Position = i + 1
			result.Found = true

			break
		}
	}

	return result
}

// BinarySearch returns the index of the value in a sorted copy of the queue.
func (queue *Queue) BinarySearch(value string) (tokens.BinarySearchResult, error) {
	return tokens.BinarySearch(queue.Display(), value, "queue")
}

// Clear removes all elements from the queue.
func (queue *Queue) Clear() {
	queue.ringBuffer = make([]string, initialCapacity)
	queue.read = 0
	queue.write = 0
	queue.size = 0
}

// index maps a logical offset from the front to a slot in the ring buffer.
func (queue *Queue) index(offset int) int {
	return (queue.read + offset) % len(queue.ringBuffer)
}

// grow doubles the capacity and unrolls the ring so that the front is at slot 0.
func (queue *Queue) grow() {
	grown := make([]string, max(initialCapacity, 2*len(queue.ringBuffer)))
	copy(grown, queue.Display())

	queue.ringBuffer = grown
	queue.read = 0
	queue.write = queue.size
}
