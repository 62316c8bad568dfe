package timer

// Queue is an ordered FIFO sequence of timers awaiting activation.
// Insertion order is processing order. The zero value is ready to use.
// Queue is not safe for concurrent use; the controller serialises access.
type Queue struct {
	timers []Timer
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a timer at the tail of the queue.
func (q *Queue) Push(t Timer) {
	q.timers = append(q.timers, t)
}

// Pop removes and returns the timer at the head of the queue. The second
// return value is false if the queue is empty.
func (q *Queue) Pop() (Timer, bool) {
	if len(q.timers) == 0 {
		return Timer{}, false
	}

	head := q.timers[0]
	q.timers = q.timers[1:]

	return head, true
}

// Peek returns the timer at the head of the queue without removing it.
// The second return value is false if the queue is empty.
func (q *Queue) Peek() (Timer, bool) {
	if len(q.timers) == 0 {
		return Timer{}, false
	}

	return q.timers[0], true
}

// IsEmpty reports whether the queue holds no timers.
func (q *Queue) IsEmpty() bool {
	return len(q.timers) == 0
}

// Count returns the number of queued timers.
func (q *Queue) Count() int {
	return len(q.timers)
}

// Clear empties the queue in place.
func (q *Queue) Clear() {
	q.timers = q.timers[:0]
}
