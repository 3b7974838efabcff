package cmd

import (
	"fmt"
	"io"

	"github.com/Gthulhu/schedsim/pkg/input"
	"github.com/Gthulhu/schedsim/pkg/report"
	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runOptions struct {
	file      string
	algorithm string
	quantum   int
	all       bool
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a CSV workload and print the report",
		Example: `  schedsim run -f processes.csv -a sjf
  schedsim run -f processes.csv -a rr -q 2
  schedsim run -f processes.csv --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := input.LoadFile(opts.file)
			if err != nil {
				return err
			}
			if opts.all {
				return compareAll(cmd.OutOrStdout(), processes, opts.quantum)
			}
			return runOne(cmd.OutOrStdout(), processes, opts.algorithm, opts.quantum)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "CSV file with pid,burst,arrival[,priority] rows")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", string(scheduler.FCFS), "fcfs, sjf, priority, rr or srtf")
	cmd.Flags().IntVarP(&opts.quantum, "quantum", "q", 2, "round robin time quantum")
	cmd.Flags().BoolVar(&opts.all, "all", false, "run every algorithm and compare the averages")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runOne(w io.Writer, processes []scheduler.Process, name string, quantum int) error {
	alg, err := scheduler.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	schedule, err := scheduler.Simulate(processes, alg, quantum)
	if err != nil {
		return err
	}
	summary, err := scheduler.Summarize(schedule.Results)
	if err != nil {
		return err
	}
	report.Write(w, title(alg, schedule.Quantum), schedule, summary)
	return nil
}

func compareAll(w io.Writer, processes []scheduler.Process, quantum int) error {
	// Reject the workload before any report is printed.
	for _, alg := range scheduler.Algorithms {
		if err := scheduler.Validate(processes, alg, quantum); err != nil {
			return errors.WithMessage(err, alg.Label())
		}
	}
	entries := make([]report.Entry, 0, len(scheduler.Algorithms))
	for _, alg := range scheduler.Algorithms {
		schedule, err := scheduler.Simulate(processes, alg, quantum)
		if err != nil {
			return errors.WithMessage(err, alg.Label())
		}
		summary, err := scheduler.Summarize(schedule.Results)
		if err != nil {
			return err
		}
		report.Write(w, title(alg, schedule.Quantum), schedule, summary)
		_, _ = fmt.Fprintln(w)
		entries = append(entries, report.Entry{Algorithm: alg, Quantum: schedule.Quantum, Summary: summary})
	}
	report.WriteComparison(w, entries)
	return nil
}

func title(alg scheduler.Algorithm, quantum int) string {
	if alg == scheduler.RR {
		return fmt.Sprintf("%s (quantum %d)", alg.Label(), quantum)
	}
	return alg.Label()
}
