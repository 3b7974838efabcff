package scheduler

import (
	"fmt"
	"strings"
)

// Algorithm selects the scheduling discipline used by Run.
type Algorithm string

const (
	FCFS     Algorithm = "fcfs"
	SJF      Algorithm = "sjf"
	Priority Algorithm = "priority"
	RR       Algorithm = "rr"
	SRTF     Algorithm = "srtf"
)

// Algorithms lists every supported discipline in display order.
var Algorithms = []Algorithm{FCFS, SJF, Priority, RR, SRTF}

var algorithmLabels = map[Algorithm]string{
	FCFS:     "FCFS",
	SJF:      "SJF (Non-Preemptive)",
	Priority: "Priority (Non-Preemptive)",
	RR:       "Round Robin",
	SRTF:     "SRTF (Preemptive)",
}

var algorithmAliases = map[string]Algorithm{
	"fcfs":                      FCFS,
	"first-come-first-serve":    FCFS,
	"sjf":                       SJF,
	"sjf (non-preemptive)":      SJF,
	"shortest-job-first":        SJF,
	"priority":                  Priority,
	"priority (non-preemptive)": Priority,
	"rr":                        RR,
	"round robin":               RR,
	"round-robin":               RR,
	"srtf":                      SRTF,
	"srtf (preemptive)":         SRTF,
}

// Label returns the human readable name of the algorithm.
func (a Algorithm) Label() string {
	if label, ok := algorithmLabels[a]; ok {
		return label
	}
	return string(a)
}

// Valid reports whether a names one of the supported disciplines.
func (a Algorithm) Valid() bool {
	_, ok := algorithmLabels[a]
	return ok
}

// Preemptive reports whether a running process can lose the CPU before it completes.
func (a Algorithm) Preemptive() bool {
	return a == RR || a == SRTF
}

func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm accepts short names ("rr") as well as display labels ("Round Robin").
func ParseAlgorithm(s string) (Algorithm, error) {
	if alg, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return alg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Process is one unit of work submitted to the scheduler.
type Process struct {
	ID       string `json:"id" bson:"id"`
	Arrival  int    `json:"arrival" bson:"arrival"`
	Burst    int    `json:"burst" bson:"burst"`
	Priority int    `json:"priority" bson:"priority"`
}

// Result holds the timing metrics computed for one process.
type Result struct {
	ID         string `json:"id" bson:"id"`
	Arrival    int    `json:"arrival" bson:"arrival"`
	Burst      int    `json:"burst" bson:"burst"`
	Priority   *int   `json:"priority,omitempty" bson:"priority,omitempty"`
	Start      int    `json:"start" bson:"start"`
	Finish     int    `json:"finish" bson:"finish"`
	Turnaround int    `json:"turnaround" bson:"turnaround"`
	Waiting    int    `json:"waiting" bson:"waiting"`
}

// Response is the delay between arrival and first dispatch.
func (r Result) Response() int {
	return r.Start - r.Arrival
}

// Slice is a contiguous interval during which one process held the CPU.
type Slice struct {
	ID    string `json:"id" bson:"id"`
	Start int    `json:"start" bson:"start"`
	Stop  int    `json:"stop" bson:"stop"`
}

// Schedule is the full outcome of a simulation: per-process results in completion
// order and the dispatch history.
type Schedule struct {
	Algorithm Algorithm `json:"algorithm" bson:"algorithm"`
	Quantum   int       `json:"quantum,omitempty" bson:"quantum,omitempty"`
	Results   []Result  `json:"results" bson:"results"`
	Slices    []Slice   `json:"slices" bson:"slices"`
}
