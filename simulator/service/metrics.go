package service

import (
	"sync"

	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "schedsim"

type algorithmStats struct {
	runs           uint64
	processes      uint64
	lastWaiting    float64
	lastTurnaround float64
}

// MetricCollector exposes simulation counters as constant metrics on every scrape.
type MetricCollector struct {
	mu          sync.Mutex
	stats       map[scheduler.Algorithm]*algorithmStats
	cacheHits   uint64
	cacheMisses uint64
	comparisons uint64

	runsDesc        *prometheus.Desc
	processesDesc   *prometheus.Desc
	waitingDesc     *prometheus.Desc
	turnaroundDesc  *prometheus.Desc
	cacheDesc       *prometheus.Desc
	comparisonsDesc *prometheus.Desc
}

func NewMetricCollector() *MetricCollector {
	return &MetricCollector{
		stats: map[scheduler.Algorithm]*algorithmStats{},
		runsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "simulations_total"),
			"Number of simulations computed, per algorithm.",
			[]string{"algorithm"}, nil,
		),
		processesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "processes_simulated_total"),
			"Number of processes scheduled, per algorithm.",
			[]string{"algorithm"}, nil,
		),
		waitingDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "last_average_waiting_time"),
			"Average waiting time of the latest simulation, per algorithm.",
			[]string{"algorithm"}, nil,
		),
		turnaroundDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "last_average_turnaround_time"),
			"Average turnaround time of the latest simulation, per algorithm.",
			[]string{"algorithm"}, nil,
		),
		cacheDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "result_cache", "lookups_total"),
			"Result cache lookups by outcome.",
			[]string{"outcome"}, nil,
		),
		comparisonsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricNamespace, "", "comparisons_total"),
			"Number of all-algorithm comparisons.",
			nil, nil,
		),
	}
}

func (c *MetricCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.runsDesc
	ch <- c.processesDesc
	ch <- c.waitingDesc
	ch <- c.turnaroundDesc
	ch <- c.cacheDesc
	ch <- c.comparisonsDesc
}

func (c *MetricCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for alg, s := range c.stats {
		ch <- prometheus.MustNewConstMetric(c.runsDesc, prometheus.CounterValue, float64(s.runs), string(alg))
		ch <- prometheus.MustNewConstMetric(c.processesDesc, prometheus.CounterValue, float64(s.processes), string(alg))
		ch <- prometheus.MustNewConstMetric(c.waitingDesc, prometheus.GaugeValue, s.lastWaiting, string(alg))
		ch <- prometheus.MustNewConstMetric(c.turnaroundDesc, prometheus.GaugeValue, s.lastTurnaround, string(alg))
	}
	ch <- prometheus.MustNewConstMetric(c.cacheDesc, prometheus.CounterValue, float64(c.cacheHits), "hit")
	ch <- prometheus.MustNewConstMetric(c.cacheDesc, prometheus.CounterValue, float64(c.cacheMisses), "miss")
	ch <- prometheus.MustNewConstMetric(c.comparisonsDesc, prometheus.CounterValue, float64(c.comparisons))
}

func (c *MetricCollector) ObserveRun(alg scheduler.Algorithm, processes int, summary scheduler.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.stats[alg]
	if !ok {
		s = &algorithmStats{}
		c.stats[alg] = s
	}
	s.runs++
	s.processes += uint64(processes)
	s.lastWaiting = summary.AverageWaiting
	s.lastTurnaround = summary.AverageTurnaround
}

func (c *MetricCollector) ObserveCache(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.cacheHits++
	} else {
		c.cacheMisses++
	}
}

func (c *MetricCollector) ObserveComparison() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.comparisons++
}
