package scheduler

// Summary aggregates the results of one simulation.
type Summary struct {
	AverageTurnaround float64 `json:"average_turnaround" bson:"average_turnaround"`
	AverageWaiting    float64 `json:"average_waiting" bson:"average_waiting"`
	AverageResponse   float64 `json:"average_response" bson:"average_response"`
	// Throughput is completed processes per time unit over the makespan.
	Throughput float64 `json:"throughput" bson:"throughput"`
	// Makespan spans from the earliest arrival to the last completion.
	Makespan int `json:"makespan" bson:"makespan"`
}

// Summarize computes arithmetic means over results.
func Summarize(results []Result) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrEmptyResults
	}
	var turnaround, waiting, response int
	firstArrival, lastFinish := results[0].Arrival, results[0].Finish
	for _, r := range results {
		turnaround += r.Turnaround
		waiting += r.Waiting
		response += r.Response()
		firstArrival = min(firstArrival, r.Arrival)
		lastFinish = max(lastFinish, r.Finish)
	}
	n := float64(len(results))
	s := Summary{
		AverageTurnaround: float64(turnaround) / n,
		AverageWaiting:    float64(waiting) / n,
		AverageResponse:   float64(response) / n,
		Makespan:          lastFinish - firstArrival,
	}
	if s.Makespan > 0 {
		s.Throughput = n / float64(s.Makespan)
	}
	return s, nil
}
