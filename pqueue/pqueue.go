package pqueue

import "fmt"

// Enqueue adds item with the given priority. Duplicates are allowed;
// each copy is an independent entry.
func (q *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	q.heap = append(q.heap, entry[T, P]{item: item, priority: priority, seq: q.nextSeq})
	q.nextSeq++
	q.up(len(q.heap) - 1)
}

// Dequeue removes and returns the item with the lowest priority.
func (q *PriorityQueue[T, P]) Dequeue() (T, error) {
	var zero T
	n := len(q.heap)
	if n == 0 {
		return zero, ErrEmptyQueue
	}

	root := q.heap[0].item
	q.swap(0, n-1)
	q.heap[n-1] = entry[T, P]{} // release references held by the vacated slot
	q.heap = q.heap[:n-1]
	if len(q.heap) > 0 {
		q.down(0)
	}

	return root, nil
}

// Peek returns the item with the lowest priority without removing it.
func (q *PriorityQueue[T, P]) Peek() (T, error) {
	var zero T
	if len(q.heap) == 0 {
		return zero, ErrEmptyQueue
	}

	return q.heap[0].item, nil
}

// Count returns the number of queued entries.
func (q *PriorityQueue[T, P]) Count() int { return len(q.heap) }

// Clear removes every entry, keeping the allocated capacity.
func (q *PriorityQueue[T, P]) Clear() {
	clear(q.heap)
	q.heap = q.heap[:0]
	q.nextSeq = 0
}

// Contains reports whether item is queued.
func (q *PriorityQueue[T, P]) Contains(item T) bool {
	return q.indexOf(item) >= 0
}

// TryGetPriority returns the priority of the first queued copy of item.
func (q *PriorityQueue[T, P]) TryGetPriority(item T) (P, bool) {
	i := q.indexOf(item)
	if i < 0 {
		var zero P
		return zero, false
	}

	return q.heap[i].priority, true
}

// UpdatePriority changes the priority of the first queued copy of item and
// restores heap order. The entry keeps its original insertion rank.
func (q *PriorityQueue[T, P]) UpdatePriority(item T, priority P) error {
	i := q.indexOf(item)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}

	old := q.heap[i].priority
	q.heap[i].priority = priority
	switch {
	case priority < old:
		q.up(i)
	case priority > old:
		q.down(i)
	}

	return nil
}

// indexOf scans the heap for item; -1 when absent.
func (q *PriorityQueue[T, P]) indexOf(item T) int {
	for i := range q.heap {
		if q.heap[i].item == item {
			return i
		}
	}

	return -1
}

// less orders by priority, then by insertion sequence.
func (q *PriorityQueue[T, P]) less(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

func (q *PriorityQueue[T, P]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
}

// up sifts slot i toward the root while it beats its parent.
func (q *PriorityQueue[T, P]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

// down sifts slot i toward the leaves while a child beats it.
func (q *PriorityQueue[T, P]) down(i int) {
	n := len(q.heap)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && q.less(right, left) {
			smallest = right
		}
		if !q.less(smallest, i) {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}
