package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/olekukonko/tablewriter"
)

// maxChartWidth caps the number of columns used by the gantt strip and timeline chart.
const maxChartWidth = 60

// Write renders a full text report of one simulation: title banner, gantt strip,
// timeline chart and the per-process table with averages.
func Write(w io.Writer, title string, schedule *scheduler.Schedule, summary scheduler.Summary) {
	if title == "" {
		title = schedule.Algorithm.Label()
		if schedule.Algorithm == scheduler.RR {
			title = fmt.Sprintf("%s (quantum %d)", title, schedule.Quantum)
		}
	}
	writeTitle(w, title)
	writeGantt(w, schedule.Slices)
	writeTimeline(w, scheduler.Timeline(schedule.Results))
	writeTable(w, schedule, summary)
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeGantt(w io.Writer, slices []scheduler.Slice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(slices) == 0 {
		_, _ = fmt.Fprintln(w)
		return
	}
	var cells, ticks strings.Builder
	cells.WriteString("|")
	prevStop := slices[0].Start
	for _, s := range slices {
		if s.Start > prevStop {
			// idle gap
			cells.WriteString(center("-", 8))
			cells.WriteString("|")
			ticks.WriteString(pad(strconv.Itoa(prevStop), 9))
		}
		cells.WriteString(center(s.ID, 8))
		cells.WriteString("|")
		ticks.WriteString(pad(strconv.Itoa(s.Start), 9))
		prevStop = s.Stop
	}
	ticks.WriteString(strconv.Itoa(prevStop))
	_, _ = fmt.Fprintln(w, cells.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

func writeTimeline(w io.Writer, bars []scheduler.Bar) {
	_, _ = fmt.Fprintln(w, "Timeline")
	if len(bars) == 0 {
		_, _ = fmt.Fprintln(w)
		return
	}
	end, label := 0, 0
	for _, b := range bars {
		end = max(end, b.Finish)
		label = max(label, len(b.ID))
	}
	scale := (end + maxChartWidth - 1) / maxChartWidth
	scale = max(scale, 1)
	for _, b := range bars {
		from, to := b.Start/scale, (b.Finish+scale-1)/scale
		row := strings.Repeat(" ", from) + strings.Repeat("#", max(to-from, 1))
		_, _ = fmt.Fprintf(w, "%-*s |%-*s| [%d, %d)\n", label, b.ID, end/scale+1, row, b.Start, b.Finish)
	}
	_, _ = fmt.Fprintln(w)
}

func writeTable(w io.Writer, schedule *scheduler.Schedule, summary scheduler.Summary) {
	withPriority := schedule.Algorithm == scheduler.Priority
	header := []string{"PID", "Arrival", "Burst", "Start", "Finish", "Turnaround", "Waiting"}
	if withPriority {
		header = []string{"PID", "Arrival", "Burst", "Priority", "Start", "Finish", "Turnaround", "Waiting"}
	}

	rows := make([][]string, 0, len(schedule.Results))
	for _, r := range schedule.Results {
		row := []string{r.ID, strconv.Itoa(r.Arrival), strconv.Itoa(r.Burst)}
		if withPriority {
			prio := ""
			if r.Priority != nil {
				prio = strconv.Itoa(*r.Priority)
			}
			row = append(row, prio)
		}
		row = append(row,
			strconv.Itoa(r.Start),
			strconv.Itoa(r.Finish),
			strconv.Itoa(r.Turnaround),
			strconv.Itoa(r.Waiting),
		)
		rows = append(rows, row)
	}

	footer := make([]string, len(header))
	footer[len(footer)-2] = fmt.Sprintf("Average\n%.2f", summary.AverageTurnaround)
	footer[len(footer)-1] = fmt.Sprintf("Average\n%.2f", summary.AverageWaiting)

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()
	_, _ = fmt.Fprintf(w, "Average turnaround time: %.2f\n", summary.AverageTurnaround)
	_, _ = fmt.Fprintf(w, "Average waiting time: %.2f\n", summary.AverageWaiting)
}

// Entry is one algorithm's outcome in a side-by-side comparison.
type Entry struct {
	Algorithm scheduler.Algorithm
	Quantum   int
	Summary   scheduler.Summary
}

// WriteComparison renders one row per algorithm with its averages.
func WriteComparison(w io.Writer, entries []Entry) {
	writeTitle(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Avg Turnaround", "Avg Waiting", "Avg Response", "Throughput"})
	for _, e := range entries {
		name := e.Algorithm.Label()
		if e.Algorithm == scheduler.RR {
			name = fmt.Sprintf("%s (q=%d)", name, e.Quantum)
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", e.Summary.AverageTurnaround),
			fmt.Sprintf("%.2f", e.Summary.AverageWaiting),
			fmt.Sprintf("%.2f", e.Summary.AverageResponse),
			fmt.Sprintf("%.2f/t", e.Summary.Throughput),
		})
	}
	table.Render()
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
