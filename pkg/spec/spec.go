// Package spec loads and validates scenario YAML files and maps them onto
// trajectory configurations.
package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
	"github.com/openmobilitylab/routeenergy/pkg/kinematics"
	"github.com/openmobilitylab/routeenergy/pkg/route"
	"github.com/openmobilitylab/routeenergy/pkg/trajectory"
)

// ScenarioFile is the scenario filename looked up inside a project directory.
const ScenarioFile = "route.yaml"

var validate = validator.New()

// Load reads a scenario from a YAML file and validates its schema.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadProject loads the scenario from a project directory, looking for
// route.yaml in the given directory.
func LoadProject(projectDir string) (*Scenario, error) {
	return Load(filepath.Join(projectDir, ScenarioFile))
}

// Validate checks the scenario schema and the cross-field constraints the
// struct tags cannot express.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", route.ErrInvalidArgument, err)
	}
	if !kinematics.Model(s.Model.Name).Valid() {
		return fmt.Errorf("%w: unrecognized speed model %q (supported: %v)",
			route.ErrInvalidArgument, s.Model.Name, kinematics.Models())
	}
	if s.Stops.Policy == "coords" && len(s.Stops.Coords) == 0 {
		return fmt.Errorf("%w: stop policy %q needs a coordinate list",
			route.ErrInvalidArgument, s.Stops.Policy)
	}
	if s.Stops.Policy != "coords" && len(s.Stops.Coords) > 0 {
		return fmt.Errorf("%w: stop coordinates supplied under policy %q",
			route.ErrInvalidArgument, s.Stops.Policy)
	}
	if len(s.Masses()) > 0 && s.Stops.Policy != "coords" {
		return fmt.Errorf("%w: per-stop masses need the coords stop policy",
			route.ErrInvalidArgument)
	}
	if len(s.Masses()) > 0 && len(s.Masses()) != len(s.Stops.Coords) {
		return fmt.Errorf("%w: %d masses for %d stop coordinates",
			route.ErrInvalidArgument, len(s.Masses()), len(s.Stops.Coords))
	}
	return nil
}

// StopPolicy maps the scenario's stop section onto a pipeline stop policy.
func (s *Scenario) StopPolicy() (route.StopPolicy, error) {
	switch s.Stops.Policy {
	case "", "none":
		return route.NoStops(), nil
	case "random":
		return route.RandomStops(), nil
	case "coords":
		coords := make([]geo.Point2D, len(s.Stops.Coords))
		for i, c := range s.Stops.Coords {
			coords[i] = geo.Pt(c[0], c[1])
		}
		return route.StopsAt(coords), nil
	}
	return route.StopPolicy{}, fmt.Errorf("%w: stop policy must be none, random, or coords; got %q",
		route.ErrInvalidArgument, s.Stops.Policy)
}

// Masses returns the per-stop mass array, or nil when none was configured.
func (s *Scenario) Masses() []float64 {
	if len(s.Stops.Masses) == 0 {
		return nil
	}
	return s.Stops.Masses
}

// TrajectoryConfig maps the scenario onto a pipeline configuration.
func (s *Scenario) TrajectoryConfig() (trajectory.Config, error) {
	policy, err := s.StopPolicy()
	if err != nil {
		return trajectory.Config{}, err
	}
	return trajectory.Config{
		RouteID:          s.Route.ID,
		ShapeFile:        s.Route.ShapeFile,
		RasterFile:       s.Route.RasterFile,
		Model:            kinematics.Model(s.Model.Name),
		Stops:            policy,
		MassArray:        s.Masses(),
		UnloadedBusMass:  s.Bus.UnloadedMass,
		ChargingPowerMax: s.Bus.ChargingPowerMax,
		AccelLimit:       s.Model.AccelLimit,
		SpeedLimit:       s.Model.SpeedLimit,
	}, nil
}
