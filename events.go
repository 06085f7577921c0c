package jetlag

import (
	"sync"
)

// EventQueue collects callbacks that must not run while the physics world is
// stepping: reactions to collisions, creating joints, adding or removing
// actors. The owner drains the queue once per frame, after the physics step.
//
// Push may be called from other goroutines.
type EventQueue struct {
	mutex sync.Mutex
	queue []func()
	spare []func()
}

// Push appends an event to the queue.
func (q *EventQueue) Push(event func()) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	q.queue = append(q.queue, event)
}

// Len returns the number of events waiting for the next drain.
func (q *EventQueue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.queue)
}

// Drain runs all events that were queued when Drain was called, in the order
// they were pushed. Events pushed by one of those events are kept for the next
// call to Drain. Returns the number of events executed.
func (q *EventQueue) Drain() int {
	q.mutex.Lock()
	events := q.queue
	q.queue = q.spare[:0]
	q.spare = nil
	q.mutex.Unlock()

	for _, event := range events {
		event()
	}

	// keep the buffer around for the next drain
	clear(events)

	q.mutex.Lock()
	q.spare = events[:0]
	q.mutex.Unlock()

	return len(events)
}

// Clear drops all pending events.
func (q *EventQueue) Clear() {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	clear(q.queue)
	q.queue = q.queue[:0]
}
