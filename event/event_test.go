package event

import (
	"testing"
)

// funcHandler adapts a function to Handler for a fixed set of types
type funcHandler struct {
	types []EventType
	fn    func(GameEvent)
}

func (h funcHandler) HandleEvent(ev GameEvent) { h.fn(ev) }
func (h funcHandler) EventTypes() []EventType  { return h.types }

func TestQueueConsumeEmpties(t *testing.T) {
	q := NewQueue()
	q.Push(GameEvent{Type: EventDotCollected})
	q.Push(GameEvent{Type: EventGameOver})

	if q.Len() != 2 {
		t.Fatalf("Len = %d", q.Len())
	}
	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventDotCollected || got[1].Type != EventGameOver {
		t.Errorf("Consume = %v", got)
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("queue not empty after consume")
	}
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewQueue()
	r := NewRouter()

	var log []string
	r.Register(funcHandler{
		types: []EventType{EventDotCollected, EventGameOver},
		fn:    func(ev GameEvent) { log = append(log, "a:"+ev.Type.String()) },
	})
	r.Register(funcHandler{
		types: []EventType{EventDotCollected},
		fn:    func(ev GameEvent) { log = append(log, "b:"+ev.Type.String()) },
	})

	q.Push(GameEvent{Type: EventDotCollected})
	q.Push(GameEvent{Type: EventEnemyEaten})
	q.Push(GameEvent{Type: EventGameOver})

	if n := r.Dispatch(q); n != 3 {
		t.Errorf("Dispatch = %d, want 3", n)
	}

	want := []string{"a:dot_collected", "b:dot_collected", "a:game_over"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
	if len(r.handlers[EventDotCollected]) != 2 || len(r.handlers[EventEnemyEaten]) != 0 {
		t.Error("unexpected handler counts")
	}
}

func TestRouterIgnoresOutOfRangeTypes(t *testing.T) {
	q := NewQueue()
	r := NewRouter()

	called := 0
	r.Register(funcHandler{
		types: []EventType{EventType(250), EventGameOver},
		fn:    func(GameEvent) { called++ },
	})
	q.Push(GameEvent{Type: EventType(250)})
	q.Push(GameEvent{Type: EventGameOver})

	if n := r.Dispatch(q); n != 2 {
		t.Errorf("Dispatch = %d, want 2", n)
	}
	if called != 1 {
		t.Errorf("handler called %d times, want 1", called)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventModeChanged.String() != "mode_changed" {
		t.Errorf("String = %q", EventModeChanged.String())
	}
	if EventType(250).String() != "unknown" {
		t.Error("out of range type should be unknown")
	}
}
