package cmd

import (
	"github.com/Gthulhu/schedsim/simulator/app"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var configName, configDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the simulation REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			restApp, err := app.NewRestApp(configName, configDir)
			if err != nil {
				return err
			}
			restApp.Run()
			return restApp.Err()
		},
	}
	cmd.Flags().StringVar(&configName, "config-name", "sim_config", "config file name without extension")
	cmd.Flags().StringVar(&configDir, "config-dir", "", "directory holding the config file")
	return cmd
}
