package scheduler

import "sort"

type task struct {
	Process
	index     int
	remaining int
	started   bool
	start     int
}

// runContext is the mutable state of a single simulation. It is never shared.
type runContext struct {
	clock    int
	incoming []*task
	next     int
	results  []Result
	slices   []Slice
}

func newRunContext(processes []Process) *runContext {
	incoming := make([]*task, len(processes))
	for i, p := range processes {
		incoming[i] = &task{Process: p, index: i, remaining: p.Burst}
	}
	sort.SliceStable(incoming, func(i, j int) bool {
		return byArrival(incoming[i], incoming[j])
	})
	return &runContext{
		incoming: incoming,
		results:  make([]Result, 0, len(processes)),
	}
}

func (rc *runContext) nextArrival() (int, bool) {
	if rc.next >= len(rc.incoming) {
		return 0, false
	}
	return rc.incoming[rc.next].Arrival, true
}

// admitArrived hands every task with arrival <= clock to the policy, in arrival order.
func (rc *runContext) admitArrived(p policy) {
	rc.admitUntil(p, rc.clock+1)
}

// admitUntil hands every task with arrival < limit to the policy, in arrival order.
func (rc *runContext) admitUntil(p policy, limit int) {
	for rc.next < len(rc.incoming) && rc.incoming[rc.next].Arrival < limit {
		p.admit(rc.incoming[rc.next])
		rc.next++
	}
}

func (rc *runContext) dispatch(t *task, length int) {
	if !t.started {
		t.started = true
		t.start = rc.clock
	}
	if n := len(rc.slices); n > 0 && rc.slices[n-1].ID == t.ID && rc.slices[n-1].Stop == rc.clock {
		rc.slices[n-1].Stop += length
	} else {
		rc.slices = append(rc.slices, Slice{ID: t.ID, Start: rc.clock, Stop: rc.clock + length})
	}
	rc.clock += length
	t.remaining -= length
}

func (rc *runContext) complete(t *task, echoPriority bool) {
	turnaround := rc.clock - t.Arrival
	r := Result{
		ID:         t.ID,
		Arrival:    t.Arrival,
		Burst:      t.Burst,
		Start:      t.start,
		Finish:     rc.clock,
		Turnaround: turnaround,
		Waiting:    turnaround - t.Burst,
	}
	if echoPriority {
		prio := t.Priority
		r.Priority = &prio
	}
	rc.results = append(rc.results, r)
}

func (rc *runContext) run(p policy, echoPriority bool) {
	for len(rc.results) < len(rc.incoming) {
		rc.admitArrived(p)
		if p.empty() {
			// CPU idle: jump straight to the next arrival.
			rc.clock, _ = rc.nextArrival()
			continue
		}
		t, length := p.pick(rc)
		rc.dispatch(t, length)
		// Arrivals strictly inside the slice queue ahead of the preempted task;
		// arrivals at the boundary are admitted on the next pass, behind it.
		rc.admitUntil(p, rc.clock)
		if t.remaining == 0 {
			rc.complete(t, echoPriority)
		} else {
			p.requeue(t)
		}
	}
}

// Simulate validates the request and runs the selected algorithm, returning the
// results in completion order together with the dispatch history.
func Simulate(processes []Process, algorithm Algorithm, quantum int) (*Schedule, error) {
	if err := validate(processes, algorithm, quantum); err != nil {
		return nil, err
	}
	if algorithm != RR {
		quantum = 0
	}
	rc := newRunContext(processes)
	rc.run(newPolicy(algorithm, quantum), algorithm == Priority)
	return &Schedule{
		Algorithm: algorithm,
		Quantum:   quantum,
		Results:   rc.results,
		Slices:    rc.slices,
	}, nil
}

// Run computes one Result per process. quantum is only used by RR.
func Run(processes []Process, algorithm Algorithm, quantum int) ([]Result, error) {
	schedule, err := Simulate(processes, algorithm, quantum)
	if err != nil {
		return nil, err
	}
	return schedule.Results, nil
}
