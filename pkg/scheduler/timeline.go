package scheduler

import "sort"

// Bar is one row of the timeline chart: the span from first dispatch to completion.
type Bar struct {
	ID     string `json:"id"`
	Start  int    `json:"start"`
	Finish int    `json:"finish"`
}

// Timeline orders results by start time. Results starting at the same time keep
// their relative order.
func Timeline(results []Result) []Bar {
	bars := make([]Bar, len(results))
	for i, r := range results {
		bars[i] = Bar{ID: r.ID, Start: r.Start, Finish: r.Finish}
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Start < bars[j].Start
	})
	return bars
}
