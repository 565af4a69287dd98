// Package pqueue provides a generic binary min-heap priority queue with
// priority mutation, used by the grid pathfinder and by Prim's MST.
//
// What:
//
//   - PriorityQueue[T, P] stores (item, priority) pairs over a dynamic slice.
//   - Enqueue appends and sifts up; Dequeue swaps the root with the last slot,
//     shrinks the slice and sifts down.
//   - TryGetPriority / UpdatePriority locate an item by equality scan (O(n))
//     and re-heapify in whichever direction the new priority requires.
//
// Ordering:
//
//   - Lower priority values leave first.
//   - Items with equal priority leave in insertion order (FIFO). An insertion
//     sequence number breaks ties, so callers get identical output for
//     identical input.
//
// Errors:
//
//   - ErrEmptyQueue:   Dequeue or Peek on an empty queue. Check Count first.
//   - ErrItemNotFound: UpdatePriority for an item that is not queued.
//
// Complexity:
//
//   - Enqueue, Dequeue: O(log n).
//   - Peek, Count:      O(1).
//   - TryGetPriority:   O(n).
//   - UpdatePriority:   O(n + log n).
//
// A PriorityQueue is not safe for concurrent use.
package pqueue
