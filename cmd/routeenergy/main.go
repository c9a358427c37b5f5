package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openmobilitylab/routeenergy/internal/config"
	"github.com/openmobilitylab/routeenergy/internal/server"
	"github.com/openmobilitylab/routeenergy/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "routeenergy",
		Short: "Electric transit bus route-energy estimator",
	}

	rootCmd.AddCommand(energyCmd())
	rootCmd.AddCommand(tableCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(runsCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func energyCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "energy [project-path]",
		Short: "Run the full pipeline and report route energy",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runEnergy(args[0], save)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist the result to the run database")
	return cmd
}

func tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table [project-path]",
		Short: "Run the pipeline and export the full route table as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTable(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a scenario file without running the pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runsCmd() *cobra.Command {
	var routeID string
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List persisted runs from the run database",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRuns(routeID, limit)
		},
	}

	cmd.Flags().StringVar(&routeID, "route", "", "only list runs for this route id")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local analysis server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			runs, err := store.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer runs.Close()

			srv := server.New(args[0], cfg.Port, runs)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
