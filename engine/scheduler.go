package engine

import (
	"container/heap"
	"time"
)

// Token identifies a scheduled task, zero is never issued
type Token uint64

type task struct {
	token Token
	due   time.Duration
	seq   uint64
	every time.Duration // zero for one-shot
	fn    func()
	index int
}

// Scheduler is a virtual-clock task queue for deferred and recurring callbacks
// Time advances only through Advance; tasks fire in due order, FIFO among equal due times
// Not safe for concurrent use, owned by the frame update pass
type Scheduler struct {
	now    time.Duration
	seq    uint64
	last   Token
	queue  taskQueue
	byTask map[Token]*task
}

// NewScheduler creates an empty scheduler at virtual time zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		byTask: make(map[Token]*task),
	}
}

// Now returns the virtual time elapsed since creation
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn once, delay from now
func (s *Scheduler) After(delay time.Duration, fn func()) Token {
	return s.push(delay, 0, fn)
}

// Every schedules fn repeatedly, first run one interval from now
// A non-positive interval is treated as a one-shot at the current time
func (s *Scheduler) Every(interval time.Duration, fn func()) Token {
	if interval <= 0 {
		return s.push(0, 0, fn)
	}
	return s.push(interval, interval, fn)
}

func (s *Scheduler) push(delay, every time.Duration, fn func()) Token {
	if delay < 0 {
		delay = 0
	}
	s.last++
	s.seq++
	t := &task{
		token: s.last,
		due:   s.now + delay,
		seq:   s.seq,
		every: every,
		fn:    fn,
	}
	heap.Push(&s.queue, t)
	s.byTask[t.token] = t
	return t.token
}

// Cancel removes a pending task, returns false if it already ran or was cancelled
func (s *Scheduler) Cancel(tok Token) bool {
	t, ok := s.byTask[tok]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.byTask, tok)
	return true
}

// Pending reports whether tok is still scheduled
func (s *Scheduler) Pending(tok Token) bool {
	_, ok := s.byTask[tok]
	return ok
}

// Len returns the number of scheduled tasks
func (s *Scheduler) Len() int {
	return len(s.queue)
}

// Remaining returns time until tok fires, false if it is not scheduled
func (s *Scheduler) Remaining(tok Token) (time.Duration, bool) {
	t, ok := s.byTask[tok]
	if !ok {
		return 0, false
	}
	return t.due - s.now, true
}

// CancelAll drops every pending task
func (s *Scheduler) CancelAll() {
	s.queue = s.queue[:0]
	clear(s.byTask)
}

// Advance moves virtual time forward by dt and runs every task due within it
// Callbacks observe Now() equal to their due time and may schedule or cancel tasks
// Returns the number of callbacks run
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}

		heap.Pop(&s.queue)
		s.now = next.due

		if next.every > 0 {
			s.seq++
			next.due += next.every
			next.seq = s.seq
			heap.Push(&s.queue, next)
		} else {
			delete(s.byTask, next.token)
		}

		next.fn()
		fired++
	}

	s.now = target
	return fired
}

// taskQueue implements heap.Interface ordered by due time then insertion
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
