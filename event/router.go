package event

// Handler processes specific event types
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
// Handlers for one type run in registration order
type Router struct {
	handlers [eventTypeCount][]Handler
}

func NewRouter() *Router {
	return &Router{}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		if t < eventTypeCount {
			r.handlers[t] = append(r.handlers[t], h)
		}
	}
}

// Dispatch consumes all pending events from q and routes them in FIFO order
func (r *Router) Dispatch(q *Queue) int {
	events := q.Consume()
	for _, ev := range events {
		if ev.Type >= eventTypeCount {
			continue
		}
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}
