package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/openmobilitylab/routeenergy/internal/config"
	"github.com/openmobilitylab/routeenergy/internal/store"
	"github.com/openmobilitylab/routeenergy/pkg/gis"
	"github.com/openmobilitylab/routeenergy/pkg/spec"
	"github.com/openmobilitylab/routeenergy/pkg/trajectory"
)

// buildTrajectory loads the project scenario and runs the full pipeline.
func buildTrajectory(projectPath string) (*trajectory.Trajectory, error) {
	scenario, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading scenario: %w", err)
	}
	cfg, err := scenario.TrajectoryConfig()
	if err != nil {
		return nil, err
	}
	return trajectory.New(gis.FileSource{}, cfg)
}

func runEnergy(projectPath string, save bool) error {
	traj, err := buildTrajectory(projectPath)
	if err != nil {
		return err
	}

	summary := traj.Summary()
	printEnergyReport(summary)

	if save {
		cfg := config.Load()
		runs, err := store.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer runs.Close()

		run, err := runs.SaveRun(context.Background(), store.Run{
			RouteID:       summary.RouteID,
			Model:         summary.Model,
			StopPolicy:    traj.StopPolicyName(),
			Points:        summary.Points,
			TotalDistance: summary.TotalDistance,
			TotalTime:     summary.TotalTime,
			TotalEnergy:   summary.TotalEnergy,
		})
		if err != nil {
			return err
		}
		fmt.Printf("\nSaved as run %s\n", run.ID)
	}
	return nil
}

func runTable(projectPath string) error {
	traj, err := buildTrajectory(projectPath)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(traj.Table())
}

func runValidate(projectPath string) error {
	scenario, err := spec.LoadProject(projectPath)
	if err != nil {
		return err
	}
	// TrajectoryConfig applies the policy mapping, catching what schema
	// validation alone cannot.
	if _, err := scenario.TrajectoryConfig(); err != nil {
		return err
	}

	fmt.Printf("Scenario valid: route %s, model %s, stop policy %q\n",
		scenario.Route.ID, scenario.Model.Name, scenario.Stops.Policy)
	return nil
}

func runRuns(routeID string, limit int) error {
	cfg := config.Load()
	runs, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer runs.Close()

	list, err := runs.ListRuns(context.Background(), routeID, limit)
	if err != nil {
		return err
	}
	printRuns(list)
	return nil
}
