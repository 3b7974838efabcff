package cmd

import (
	"github.com/Gthulhu/schedsim/pkg/logger"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:           "schedsim",
	Short:         "CPU scheduling simulator",
	Long:          "schedsim computes start, finish, turnaround and waiting times for a process list under FCFS, SJF, Priority, Round Robin and SRTF.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitLogger(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(newServeCmd(), newRunCmd(), newAlgorithmsCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
