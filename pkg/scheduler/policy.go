package scheduler

import "container/heap"

// policy decides which ready task runs next and for how long.
type policy interface {
	admit(t *task)
	// pick removes the next task from the ready set and returns how many time units it may run.
	pick(rc *runContext) (*task, int)
	// requeue puts back a task that still has remaining burst after its slice.
	requeue(t *task)
	empty() bool
}

type lessFunc func(a, b *task) bool

func byArrival(a, b *task) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.index < b.index
}

func byBurst(a, b *task) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	return byArrival(a, b)
}

func byPriority(a, b *task) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return byArrival(a, b)
}

func byRemaining(a, b *task) bool {
	if a.remaining != b.remaining {
		return a.remaining < b.remaining
	}
	return byArrival(a, b)
}

type taskHeap struct {
	tasks []*task
	less  lessFunc
}

func (h *taskHeap) Len() int           { return len(h.tasks) }
func (h *taskHeap) Less(i, j int) bool { return h.less(h.tasks[i], h.tasks[j]) }
func (h *taskHeap) Swap(i, j int)      { h.tasks[i], h.tasks[j] = h.tasks[j], h.tasks[i] }
func (h *taskHeap) Push(x any)         { h.tasks = append(h.tasks, x.(*task)) }
func (h *taskHeap) Pop() any {
	n := len(h.tasks)
	t := h.tasks[n-1]
	h.tasks[n-1] = nil
	h.tasks = h.tasks[:n-1]
	return t
}

// keyedPolicy always runs the ready task with the smallest key. Non-preemptive
// policies run it to completion; the preemptive one runs it until the next arrival.
type keyedPolicy struct {
	ready      taskHeap
	preemptive bool
}

func newKeyedPolicy(less lessFunc, preemptive bool) *keyedPolicy {
	return &keyedPolicy{ready: taskHeap{less: less}, preemptive: preemptive}
}

func (p *keyedPolicy) admit(t *task) { heap.Push(&p.ready, t) }

func (p *keyedPolicy) requeue(t *task) { heap.Push(&p.ready, t) }

func (p *keyedPolicy) empty() bool { return p.ready.Len() == 0 }

func (p *keyedPolicy) pick(rc *runContext) (*task, int) {
	t := heap.Pop(&p.ready).(*task)
	if !p.preemptive {
		return t, t.remaining
	}
	if next, ok := rc.nextArrival(); ok && next-rc.clock < t.remaining {
		return t, next - rc.clock
	}
	return t, t.remaining
}

// rrPolicy is a FIFO ready queue with a fixed quantum.
type rrPolicy struct {
	queue   []*task
	quantum int
}

func (p *rrPolicy) admit(t *task) { p.queue = append(p.queue, t) }

func (p *rrPolicy) requeue(t *task) { p.queue = append(p.queue, t) }

func (p *rrPolicy) empty() bool { return len(p.queue) == 0 }

func (p *rrPolicy) pick(_ *runContext) (*task, int) {
	t := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return t, min(p.quantum, t.remaining)
}

func newPolicy(algorithm Algorithm, quantum int) policy {
	switch algorithm {
	case SJF:
		return newKeyedPolicy(byBurst, false)
	case Priority:
		return newKeyedPolicy(byPriority, false)
	case RR:
		return &rrPolicy{quantum: quantum}
	case SRTF:
		return newKeyedPolicy(byRemaining, true)
	default:
		return newKeyedPolicy(byArrival, false)
	}
}
