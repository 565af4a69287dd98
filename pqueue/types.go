package pqueue

import (
	"cmp"
	"errors"
)

var (
	// ErrEmptyQueue indicates Dequeue or Peek was called on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrItemNotFound indicates the item passed to UpdatePriority is not queued.
	ErrItemNotFound = errors.New("pqueue: item not found")
)

// entry is one heap slot.
type entry[T comparable, P cmp.Ordered] struct {
	item     T
	priority P
	seq      uint64 // insertion order, breaks priority ties
}

// PriorityQueue is a min-priority queue of comparable items.
// The zero value is ready to use.
type PriorityQueue[T comparable, P cmp.Ordered] struct {
	heap    []entry[T, P]
	nextSeq uint64
}

// New returns an empty queue with room for capacity items.
func New[T comparable, P cmp.Ordered](capacity int) *PriorityQueue[T, P] {
	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue[T, P]{heap: make([]entry[T, P], 0, capacity)}
}
