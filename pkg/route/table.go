// Package route holds the per-point state table of a bus traversing a fixed
// route, and the pipeline stages that extend it: stop placement, velocity
// generation, time/acceleration derivation, and mass interpolation.
//
// Record order is fixed when the table is seeded and never reordered. Each
// stage returns a new table with its columns filled in; no stage recomputes a
// column written by an earlier stage.
package route

import (
	"fmt"
	"math"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
	"github.com/openmobilitylab/routeenergy/pkg/kinematics"
)

// Point is one sampled location along the route, carrying the derived
// kinematic and dynamic state. Backward-difference columns (DistanceFromPrev,
// DeltaTime, Acceleration) are NaN at index 0, which has no previous point.
type Point struct {
	Coordinate geo.Point2D     `json:"coordinate"`
	Segment    geo.LineSegment `json:"segment"`

	Elevation          float64 `json:"elevation"`
	Gradient           float64 `json:"gradient"`
	DistanceFromPrev   float64 `json:"distance_from_prev"`
	CumulativeDistance float64 `json:"cumulative_distance"`

	IsStop bool `json:"is_stop"`

	Velocity     float64 `json:"velocity"`
	DeltaTime    float64 `json:"delta_time"`
	Acceleration float64 `json:"acceleration"`
	TimeOnRoute  float64 `json:"time_on_route"`

	Mass float64 `json:"mass"`

	GravForce float64 `json:"grav_force"`
	RollFric  float64 `json:"roll_fric"`
	AeroDrag  float64 `json:"aero_drag"`
	Inertia   float64 `json:"inertia"`

	// RawPower is the battery power before the regenerative cap is applied.
	RawPower float64 `json:"raw_power"`
	// Power is the net battery power; negative values are regenerative
	// charging, capped at the charger's rated accept power.
	Power float64 `json:"power_output"`
}

// Table is the ordered sequence of route points plus the route-level scalars
// the pipeline stages need.
type Table struct {
	RouteID string  `json:"route_id"`
	Points  []Point `json:"points"`

	UnloadedBusMass  float64          `json:"unloaded_bus_mass"`
	ChargingPowerMax float64          `json:"charging_power_max"`
	Model            kinematics.Model `json:"bus_speed_model"`
	AccelLimit       float64          `json:"a_m"`
	SpeedLimit       float64          `json:"v_lim"`

	// StopIndices are the route-point indices resolved from an explicit
	// stop-coordinate list, in the order the coordinates were supplied.
	// The mass profile builder reads them to place per-stop masses.
	StopIndices []int `json:"stop_indices,omitempty"`

	// MassArray is the optional per-stop loaded mass, aligned with the
	// supplied stop coordinates.
	MassArray []float64 `json:"mass_array,omitempty"`
}

// Seed holds the geometry/elevation inputs a table is built from, one value
// per route point, aligned by index.
type Seed struct {
	Coordinates      []geo.Point2D
	Segments         []geo.LineSegment
	Elevation        []float64
	Gradient         []float64
	CumulativeDist   []float64
	BackDiffDistance []float64 // length N-1: distance from point i-1 to i
}

// NewTable builds the initial route table from geometry and elevation
// samples. All derived columns start unset; DistanceFromPrev is NaN at
// index 0.
func NewTable(routeID string, seed Seed) (*Table, error) {
	n := len(seed.Coordinates)
	if n < 2 {
		return nil, fmt.Errorf("%w: route needs at least 2 points, got %d", ErrInvalidArgument, n)
	}
	for name, l := range map[string]int{
		"segments":            len(seed.Segments),
		"elevation":           len(seed.Elevation),
		"gradient":            len(seed.Gradient),
		"cumulative distance": len(seed.CumulativeDist),
	} {
		if l != n {
			return nil, fmt.Errorf("%w: %s column has %d values for %d points", ErrInvalidArgument, name, l, n)
		}
	}
	if len(seed.BackDiffDistance) != n-1 {
		return nil, fmt.Errorf("%w: backward-difference distance column has %d values for %d points",
			ErrInvalidArgument, len(seed.BackDiffDistance), n)
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			Coordinate:         seed.Coordinates[i],
			Segment:            seed.Segments[i],
			Elevation:          seed.Elevation[i],
			Gradient:           seed.Gradient[i],
			CumulativeDistance: seed.CumulativeDist[i],
			DistanceFromPrev:   math.NaN(),
		}
		if i > 0 {
			points[i].DistanceFromPrev = seed.BackDiffDistance[i-1]
		}
	}

	return &Table{RouteID: routeID, Points: points}, nil
}

// Len returns the number of route points.
func (t *Table) Len() int { return len(t.Points) }

// clone returns a deep copy of the table for the next stage to extend.
func (t *Table) clone() *Table {
	next := *t
	next.Points = make([]Point, len(t.Points))
	copy(next.Points, t.Points)
	if t.StopIndices != nil {
		next.StopIndices = append([]int(nil), t.StopIndices...)
	}
	if t.MassArray != nil {
		next.MassArray = append([]float64(nil), t.MassArray...)
	}
	return &next
}

// CumulativeDistances returns the cumulative-distance column.
func (t *Table) CumulativeDistances() []float64 {
	out := make([]float64, len(t.Points))
	for i, p := range t.Points {
		out[i] = p.CumulativeDistance
	}
	return out
}

// TotalDistance returns the route length in metres.
func (t *Table) TotalDistance() float64 {
	if len(t.Points) == 0 {
		return 0
	}
	return t.Points[len(t.Points)-1].CumulativeDistance
}

// TotalTime returns the elapsed time at the final route point.
func (t *Table) TotalTime() float64 {
	if len(t.Points) == 0 {
		return 0
	}
	return t.Points[len(t.Points)-1].TimeOnRoute
}
