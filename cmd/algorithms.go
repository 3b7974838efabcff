package cmd

import (
	"fmt"

	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/spf13/cobra"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported scheduling algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			for _, alg := range scheduler.Algorithms {
				mode := "non-preemptive"
				if alg.Preemptive() {
					mode = "preemptive"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-9s %-28s %s\n", alg, alg.Label(), mode)
			}
		},
	}
}
