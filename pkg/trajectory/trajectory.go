// Package trajectory wires route geometry, elevation, and the dynamics
// pipeline into a single constructor: feed it a scenario configuration and a
// gis source, get back a fully populated route table and its energy total.
package trajectory

import (
	"fmt"

	"github.com/openmobilitylab/routeenergy/pkg/dynamics"
	"github.com/openmobilitylab/routeenergy/pkg/gis"
	"github.com/openmobilitylab/routeenergy/pkg/kinematics"
	"github.com/openmobilitylab/routeenergy/pkg/route"
)

// Config selects the route, the speed model, and the bus parameters for one
// traversal. Zero values for the bus parameters pick the 40-foot reference
// bus defaults.
type Config struct {
	RouteID    string
	ShapeFile  string
	RasterFile string

	Model kinematics.Model
	Stops route.StopPolicy

	// MassArray is the optional loaded mass per supplied stop coordinate.
	MassArray []float64

	UnloadedBusMass  float64
	ChargingPowerMax float64
	AccelLimit       float64 // a_m, m/s²
	SpeedLimit       float64 // v_lim, m/s
}

func (c *Config) applyDefaults() {
	if c.UnloadedBusMass == 0 {
		c.UnloadedBusMass = dynamics.DefaultUnloadedMass
	}
	if c.AccelLimit == 0 {
		c.AccelLimit = 1.0
	}
	if c.SpeedLimit == 0 {
		c.SpeedLimit = 15.0
	}
}

func (c *Config) validate() error {
	if !c.Model.Valid() {
		return fmt.Errorf("%w: unrecognized speed model %q (supported: %v)",
			route.ErrInvalidArgument, c.Model, kinematics.Models())
	}
	if c.UnloadedBusMass <= 0 {
		return fmt.Errorf("%w: unloaded bus mass must be positive, got %g",
			route.ErrInvalidArgument, c.UnloadedBusMass)
	}
	if c.ChargingPowerMax < 0 {
		return fmt.Errorf("%w: charging power max must be non-negative, got %g",
			route.ErrInvalidArgument, c.ChargingPowerMax)
	}
	if c.MassArray != nil && len(c.MassArray) != len(c.Stops.Coords()) {
		return fmt.Errorf("%w: mass array has %d entries for %d stop coordinates",
			route.ErrInvalidArgument, len(c.MassArray), len(c.Stops.Coords()))
	}
	return nil
}

// Trajectory is a constructed route traversal: the populated table plus the
// configuration it was built from.
type Trajectory struct {
	cfg   Config
	table *route.Table
}

// New loads the route through src and runs the full pipeline. Malformed
// configurations fail here; a bad setup never produces a plausible-looking
// table.
func New(src gis.Source, cfg Config) (*Trajectory, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tbl, err := buildSeedTable(src, cfg)
	if err != nil {
		return nil, err
	}

	tbl, err = tbl.WithStops(cfg.Stops)
	if err != nil {
		return nil, err
	}

	// The closed-form model produces velocity, acceleration, and time in one
	// pass; the finite-difference models derive timing from velocity.
	tbl, err = tbl.WithVelocities(cfg.Model)
	if err != nil {
		return nil, err
	}
	tbl, err = tbl.WithDeltaTimes()
	if err != nil {
		return nil, err
	}
	tbl, err = tbl.WithAccelerations()
	if err != nil {
		return nil, err
	}

	tbl, err = tbl.WithMasses(cfg.MassArray)
	if err != nil {
		return nil, err
	}

	tbl = dynamics.WithForces(tbl)
	tbl = dynamics.WithPower(tbl)

	return &Trajectory{cfg: cfg, table: tbl}, nil
}

// buildSeedTable performs all geometry and elevation reads, once, before any
// kinematics.
func buildSeedTable(src gis.Source, cfg Config) (*route.Table, error) {
	shape, err := src.ReadShape(cfg.ShapeFile, cfg.RouteID)
	if err != nil {
		return nil, fmt.Errorf("loading route %q: %w", cfg.RouteID, err)
	}
	points := src.ExtractPoints(shape)
	grad, err := src.Gradient(shape, cfg.RasterFile)
	if err != nil {
		return nil, fmt.Errorf("elevation for route %q: %w", cfg.RouteID, err)
	}

	tbl, err := route.NewTable(cfg.RouteID, route.Seed{
		Coordinates:      points,
		Segments:         src.MakeSegments(points),
		Elevation:        grad.Elevation,
		Gradient:         grad.Gradient,
		CumulativeDist:   grad.CumulativeDistance,
		BackDiffDistance: grad.BackDiffDistance,
	})
	if err != nil {
		return nil, err
	}
	tbl.UnloadedBusMass = cfg.UnloadedBusMass
	tbl.ChargingPowerMax = cfg.ChargingPowerMax
	tbl.AccelLimit = cfg.AccelLimit
	tbl.SpeedLimit = cfg.SpeedLimit
	return tbl, nil
}

// EnergyFromRoute returns the total battery energy for the traversal.
func (t *Trajectory) EnergyFromRoute() float64 {
	return dynamics.Energy(t.table)
}

// Table exposes the full route table for rendering and export.
func (t *Trajectory) Table() *route.Table {
	return t.table
}

// Summary reduces the traversal to its headline figures.
func (t *Trajectory) Summary() dynamics.Summary {
	return dynamics.Summarize(t.table)
}

// StopPolicyName reports the configured stop policy for run records.
func (t *Trajectory) StopPolicyName() string {
	return t.cfg.Stops.String()
}
