package event

// Queue collects events during a frame for dispatch at its end
// Single producer and consumer: the frame update pass
type Queue struct {
	events []GameEvent
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event
func (q *Queue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns pending event count
func (q *Queue) Len() int {
	return len(q.events)
}
