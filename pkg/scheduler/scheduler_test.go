package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultByID(results []Result) map[string]Result {
	m := make(map[string]Result, len(results))
	for _, r := range results {
		m[r.ID] = r
	}
	return m
}

func randomWorkload(rng *rand.Rand, n int) []Process {
	processes := make([]Process, n)
	for i := range processes {
		processes[i] = Process{
			ID:       fmt.Sprintf("P%d", i+1),
			Arrival:  rng.Intn(20),
			Burst:    rng.Intn(10) + 1,
			Priority: rng.Intn(5),
		}
	}
	return processes
}

func TestFCFSScenario(t *testing.T) {
	processes := []Process{
		{ID: "P1", Arrival: 0, Burst: 5},
		{ID: "P2", Arrival: 1, Burst: 3},
		{ID: "P3", Arrival: 2, Burst: 8},
	}
	results, err := Run(processes, FCFS, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)

	byID := resultByID(results)
	assert.Equal(t, 0, byID["P1"].Start)
	assert.Equal(t, 5, byID["P1"].Finish)
	assert.Equal(t, 5, byID["P2"].Start)
	assert.Equal(t, 8, byID["P2"].Finish)
	assert.Equal(t, 8, byID["P3"].Start)
	assert.Equal(t, 16, byID["P3"].Finish)
	assert.Equal(t, []int{0, 4, 6}, []int{byID["P1"].Waiting, byID["P2"].Waiting, byID["P3"].Waiting})

	summary, err := Summarize(results)
	require.NoError(t, err)
	assert.InDelta(t, 3.33, summary.AverageWaiting, 0.005)
	assert.InDelta(t, 26.0/3, summary.AverageTurnaround, 1e-9)
	assert.Equal(t, 16, summary.Makespan)
}

func TestRoundRobinScenario(t *testing.T) {
	processes := []Process{
		{ID: "P1", Arrival: 0, Burst: 5},
		{ID: "P2", Arrival: 1, Burst: 3},
	}
	schedule, err := Simulate(processes, RR, 2)
	require.NoError(t, err)

	assert.Equal(t, []Slice{
		{ID: "P1", Start: 0, Stop: 2},
		{ID: "P2", Start: 2, Stop: 4},
		{ID: "P1", Start: 4, Stop: 6},
		{ID: "P2", Start: 6, Stop: 7},
		{ID: "P1", Start: 7, Stop: 8},
	}, schedule.Slices)

	byID := resultByID(schedule.Results)
	assert.Equal(t, 8, byID["P1"].Finish)
	assert.Equal(t, 7, byID["P2"].Finish)
	assert.Equal(t, 0, byID["P1"].Start)
	assert.Equal(t, 2, byID["P2"].Start)
	// completion order
	assert.Equal(t, "P2", schedule.Results[0].ID)
	assert.Equal(t, "P1", schedule.Results[1].ID)
}

func TestSRTFScenario(t *testing.T) {
	processes := []Process{
		{ID: "P1", Arrival: 0, Burst: 7},
		{ID: "P2", Arrival: 2, Burst: 4},
	}
	schedule, err := Simulate(processes, SRTF, 0)
	require.NoError(t, err)

	assert.Equal(t, []Slice{
		{ID: "P1", Start: 0, Stop: 2},
		{ID: "P2", Start: 2, Stop: 6},
		{ID: "P1", Start: 6, Stop: 11},
	}, schedule.Slices)

	byID := resultByID(schedule.Results)
	assert.Equal(t, 11, byID["P1"].Finish)
	assert.Equal(t, 0, byID["P1"].Start)
	assert.Equal(t, 6, byID["P2"].Finish)
	assert.Equal(t, 2, byID["P2"].Start)
}

func TestSJFPicksShortestArrived(t *testing.T) {
	processes := []Process{
		{ID: "A", Arrival: 0, Burst: 6},
		{ID: "B", Arrival: 1, Burst: 8},
		{ID: "C", Arrival: 2, Burst: 2},
		{ID: "D", Arrival: 3, Burst: 2},
	}
	results, err := Run(processes, SJF, 0)
	require.NoError(t, err)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	// C and D tie on burst, C arrived first.
	assert.Equal(t, []string{"A", "C", "D", "B"}, ids)
	for _, r := range results {
		assert.Nil(t, r.Priority)
	}
}

func TestPriorityEchoesPriority(t *testing.T) {
	processes := []Process{
		{ID: "A", Arrival: 0, Burst: 3, Priority: 3},
		{ID: "B", Arrival: 1, Burst: 2, Priority: 1},
		{ID: "C", Arrival: 1, Burst: 2, Priority: 1},
		{ID: "D", Arrival: 2, Burst: 1, Priority: 0},
	}
	results, err := Run(processes, Priority, 0)
	require.NoError(t, err)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
		require.NotNil(t, r.Priority)
	}
	assert.Equal(t, []string{"A", "D", "B", "C"}, ids)
	assert.Equal(t, 0, *resultByID(results)["D"].Priority)
}

func TestIdleCPUJumpsToNextArrival(t *testing.T) {
	processes := []Process{
		{ID: "P1", Arrival: 0, Burst: 2},
		{ID: "P2", Arrival: 5, Burst: 1},
		{ID: "P3", Arrival: 9, Burst: 3},
	}
	for _, alg := range Algorithms {
		t.Run(string(alg), func(t *testing.T) {
			results, err := Run(processes, alg, 1)
			require.NoError(t, err)
			byID := resultByID(results)
			assert.Equal(t, 5, byID["P2"].Start)
			assert.Equal(t, 6, byID["P2"].Finish)
			assert.Equal(t, 9, byID["P3"].Start)
			assert.Equal(t, 12, byID["P3"].Finish)
		})
	}
}

func TestRoundRobinBoundaryArrivalQueuesBehindRequeue(t *testing.T) {
	processes := []Process{
		{ID: "P1", Arrival: 0, Burst: 4},
		{ID: "P2", Arrival: 3, Burst: 2},
	}
	schedule, err := Simulate(processes, RR, 3)
	require.NoError(t, err)

	// P2 arrives exactly when P1's first quantum ends, so P1 is requeued first.
	assert.Equal(t, []Slice{
		{ID: "P1", Start: 0, Stop: 4},
		{ID: "P2", Start: 4, Stop: 6},
	}, schedule.Slices)
	byID := resultByID(schedule.Results)
	assert.Equal(t, 4, byID["P1"].Finish)
	assert.Equal(t, 4, byID["P2"].Start)
	assert.Equal(t, 6, byID["P2"].Finish)
}

func TestRoundRobinQueueOrder(t *testing.T) {
	cases := []struct {
		name      string
		quantum   int
		processes []Process
		want      []Slice
	}{
		{
			name:    "arrival inside slice goes ahead of requeue",
			quantum: 2,
			processes: []Process{
				{ID: "P1", Arrival: 0, Burst: 4},
				{ID: "P2", Arrival: 1, Burst: 2},
			},
			want: []Slice{
				{ID: "P1", Start: 0, Stop: 2},
				{ID: "P2", Start: 2, Stop: 4},
				{ID: "P1", Start: 4, Stop: 6},
			},
		},
		{
			name:    "arrival at slice end goes behind requeue",
			quantum: 2,
			processes: []Process{
				{ID: "P1", Arrival: 0, Burst: 4},
				{ID: "P2", Arrival: 2, Burst: 2},
			},
			want: []Slice{
				{ID: "P1", Start: 0, Stop: 4},
				{ID: "P2", Start: 4, Stop: 6},
			},
		},
		{
			name:    "two boundary arrivals keep input order behind requeue",
			quantum: 2,
			processes: []Process{
				{ID: "P1", Arrival: 0, Burst: 3},
				{ID: "P2", Arrival: 2, Burst: 1},
				{ID: "P3", Arrival: 2, Burst: 1},
			},
			want: []Slice{
				{ID: "P1", Start: 0, Stop: 3},
				{ID: "P2", Start: 3, Stop: 4},
				{ID: "P3", Start: 4, Stop: 5},
			},
		},
		{
			name:    "inside and boundary arrivals around one requeue",
			quantum: 2,
			processes: []Process{
				{ID: "A", Arrival: 0, Burst: 3},
				{ID: "B", Arrival: 1, Burst: 1},
				{ID: "C", Arrival: 2, Burst: 1},
			},
			want: []Slice{
				{ID: "A", Start: 0, Stop: 2},
				{ID: "B", Start: 2, Stop: 3},
				{ID: "A", Start: 3, Stop: 4},
				{ID: "C", Start: 4, Stop: 5},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedule, err := Simulate(tc.processes, RR, tc.quantum)
			require.NoError(t, err)
			assert.Equal(t, tc.want, schedule.Slices)
		})
	}
}

func TestSRTFTieKeepsRunningProcess(t *testing.T) {
	cases := []struct {
		name      string
		processes []Process
		want      []Slice
	}{
		{
			name: "arrival with equal remaining waits",
			processes: []Process{
				{ID: "P1", Arrival: 0, Burst: 6},
				{ID: "P2", Arrival: 3, Burst: 3},
			},
			want: []Slice{
				{ID: "P1", Start: 0, Stop: 6},
				{ID: "P2", Start: 6, Stop: 9},
			},
		},
		{
			name: "arrival with shorter remaining preempts",
			processes: []Process{
				{ID: "P1", Arrival: 0, Burst: 6},
				{ID: "P2", Arrival: 3, Burst: 2},
			},
			want: []Slice{
				{ID: "P1", Start: 0, Stop: 3},
				{ID: "P2", Start: 3, Stop: 5},
				{ID: "P1", Start: 5, Stop: 8},
			},
		},
		{
			name: "simultaneous equal bursts follow input order",
			processes: []Process{
				{ID: "B", Arrival: 0, Burst: 2},
				{ID: "A", Arrival: 0, Burst: 2},
			},
			want: []Slice{
				{ID: "B", Start: 0, Stop: 2},
				{ID: "A", Start: 2, Stop: 4},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			schedule, err := Simulate(tc.processes, SRTF, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, schedule.Slices)
		})
	}
}

func TestMetricIdentitiesAndConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		processes := randomWorkload(rng, rng.Intn(8)+1)
		for _, alg := range Algorithms {
			results, err := Run(processes, alg, rng.Intn(4)+1)
			require.NoError(t, err)
			require.Len(t, results, len(processes))

			byID := resultByID(results)
			require.Len(t, byID, len(processes))
			for _, p := range processes {
				r, ok := byID[p.ID]
				require.True(t, ok, "missing %s under %s", p.ID, alg)
				assert.Equal(t, r.Finish-r.Arrival, r.Turnaround)
				assert.Equal(t, r.Turnaround-r.Burst, r.Waiting)
				assert.GreaterOrEqual(t, r.Start, p.Arrival)
				assert.GreaterOrEqual(t, r.Finish, r.Start+r.Burst)
			}
		}
	}
}

func TestSlicesCoverEveryBurst(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 30; round++ {
		processes := randomWorkload(rng, rng.Intn(6)+2)
		for _, alg := range Algorithms {
			schedule, err := Simulate(processes, alg, 2)
			require.NoError(t, err)

			ran := map[string]int{}
			for i, s := range schedule.Slices {
				assert.Less(t, s.Start, s.Stop)
				if i > 0 {
					assert.GreaterOrEqual(t, s.Start, schedule.Slices[i-1].Stop)
				}
				ran[s.ID] += s.Stop - s.Start
			}
			for _, p := range processes {
				assert.Equal(t, p.Burst, ran[p.ID])
			}
		}
	}
}

func TestFCFSPreservesArrivalOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 30; round++ {
		processes := randomWorkload(rng, rng.Intn(8)+2)
		results, err := Run(processes, FCFS, 0)
		require.NoError(t, err)

		expected := make([]int, len(processes))
		for i := range expected {
			expected[i] = i
		}
		sort.SliceStable(expected, func(i, j int) bool {
			return processes[expected[i]].Arrival < processes[expected[j]].Arrival
		})
		for i, idx := range expected {
			assert.Equal(t, processes[idx].ID, results[i].ID)
			if i > 0 {
				assert.LessOrEqual(t, results[i-1].Finish, results[i].Start)
			}
		}
	}
}

func TestNonPreemptiveIntervalsDoNotOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 30; round++ {
		processes := randomWorkload(rng, rng.Intn(8)+2)
		for _, alg := range []Algorithm{FCFS, SJF, Priority} {
			results, err := Run(processes, alg, 0)
			require.NoError(t, err)
			for i, a := range results {
				assert.Equal(t, a.Start+a.Burst, a.Finish)
				for _, b := range results[i+1:] {
					overlap := a.Start < b.Finish && b.Start < a.Finish
					assert.False(t, overlap, "%s overlaps %s under %s", a.ID, b.ID, alg)
				}
			}
		}
	}
}

func TestRoundRobinFairnessBound(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 30; round++ {
		processes := randomWorkload(rng, rng.Intn(6)+2)
		for i := range processes {
			processes[i].Arrival = 0
		}
		quantum := rng.Intn(4) + 1
		schedule, err := Simulate(processes, RR, quantum)
		require.NoError(t, err)

		bound := (len(processes) - 1) * quantum
		lastStop := map[string]int{}
		for _, s := range schedule.Slices {
			prev, ok := lastStop[s.ID]
			if !ok {
				prev = 0
			}
			assert.LessOrEqual(t, s.Start-prev, bound, "process %s waited too long", s.ID)
			lastStop[s.ID] = s.Stop
		}
	}
}

func TestSRTFNeverWaitsLongerThanFCFS(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 100; round++ {
		processes := randomWorkload(rng, rng.Intn(8)+1)
		fcfs, err := Run(processes, FCFS, 0)
		require.NoError(t, err)
		srtf, err := Run(processes, SRTF, 0)
		require.NoError(t, err)

		fcfsSummary, err := Summarize(fcfs)
		require.NoError(t, err)
		srtfSummary, err := Summarize(srtf)
		require.NoError(t, err)
		assert.LessOrEqual(t, srtfSummary.AverageWaiting, fcfsSummary.AverageWaiting+1e-9)
	}
}

func TestConfigurationErrors(t *testing.T) {
	valid := []Process{{ID: "P1", Arrival: 0, Burst: 1}}
	cases := []struct {
		name      string
		processes []Process
		quantum   int
		want      error
	}{
		{name: "empty", processes: nil, quantum: 1, want: ErrEmptyProcessList},
		{name: "zero burst", processes: []Process{{ID: "P1", Burst: 0}}, quantum: 1, want: ErrNonPositiveBurst},
		{name: "negative burst", processes: []Process{{ID: "P1", Burst: -3}}, quantum: 1, want: ErrNonPositiveBurst},
		{name: "negative arrival", processes: []Process{{ID: "P1", Arrival: -1, Burst: 2}}, quantum: 1, want: ErrNegativeArrival},
		{name: "duplicate id", processes: []Process{{ID: "P1", Burst: 2}, {ID: "P1", Burst: 1}}, quantum: 1, want: ErrDuplicateProcessID},
	}
	for _, alg := range Algorithms {
		for _, tc := range cases {
			t.Run(string(alg)+"/"+tc.name, func(t *testing.T) {
				results, err := Run(tc.processes, alg, tc.quantum)
				require.Error(t, err)
				assert.Nil(t, results)
				assert.ErrorIs(t, err, tc.want)
				assert.ErrorIs(t, err, ErrConfiguration)
			})
		}
	}

	for _, quantum := range []int{0, -2} {
		_, err := Run(valid, RR, quantum)
		assert.ErrorIs(t, err, ErrInvalidQuantum)
		assert.ErrorIs(t, err, ErrConfiguration)
	}

	_, err := Run(valid, FCFS, 0)
	assert.NoError(t, err, "quantum is ignored outside round robin")

	_, err = Run(valid, Algorithm("lottery"), 1)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestRunDoesNotMutateInput(t *testing.T) {
	processes := []Process{
		{ID: "B", Arrival: 3, Burst: 2},
		{ID: "A", Arrival: 0, Burst: 4},
	}
	snapshot := append([]Process(nil), processes...)
	for _, alg := range Algorithms {
		_, err := Run(processes, alg, 2)
		require.NoError(t, err)
	}
	assert.Equal(t, snapshot, processes)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrEmptyResults)
}

func TestSummarizeResponseAndThroughput(t *testing.T) {
	results, err := Run([]Process{
		{ID: "P1", Arrival: 0, Burst: 5},
		{ID: "P2", Arrival: 1, Burst: 3},
	}, RR, 2)
	require.NoError(t, err)

	summary, err := Summarize(results)
	require.NoError(t, err)
	// P1 responds at 0, P2 at 2-1.
	assert.InDelta(t, 0.5, summary.AverageResponse, 1e-9)
	assert.Equal(t, 8, summary.Makespan)
	assert.InDelta(t, 0.25, summary.Throughput, 1e-9)
}

func TestTimelineOrdersByStart(t *testing.T) {
	results := []Result{
		{ID: "P2", Start: 2, Finish: 7},
		{ID: "P1", Start: 0, Finish: 8},
		{ID: "P4", Start: 2, Finish: 9},
		{ID: "P3", Start: 1, Finish: 3},
	}
	assert.Equal(t, []Bar{
		{ID: "P1", Start: 0, Finish: 8},
		{ID: "P3", Start: 1, Finish: 3},
		{ID: "P2", Start: 2, Finish: 7},
		{ID: "P4", Start: 2, Finish: 9},
	}, Timeline(results))
}

func TestParseAlgorithm(t *testing.T) {
	for input, want := range map[string]Algorithm{
		"fcfs":                 FCFS,
		"SJF (Non-Preemptive)": SJF,
		" Priority ":           Priority,
		"Round Robin":          RR,
		"SRTF (Preemptive)":    SRTF,
	} {
		got, err := ParseAlgorithm(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseAlgorithm("mlfq")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Equal(t, "Round Robin", RR.Label())
	assert.True(t, SRTF.Preemptive())
	assert.False(t, SJF.Preemptive())
}

func TestValidate(t *testing.T) {
	valid := []Process{{ID: "P1", Arrival: 0, Burst: 3}}
	assert.NoError(t, Validate(valid, FCFS, 0))
	assert.NoError(t, Validate(valid, RR, 1))
	assert.ErrorIs(t, Validate(valid, RR, 0), ErrInvalidQuantum)
	assert.ErrorIs(t, Validate(nil, SJF, 0), ErrEmptyProcessList)
	assert.ErrorIs(t, Validate(valid, Algorithm("lottery"), 0), ErrConfiguration)
}
