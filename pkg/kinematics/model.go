// Package kinematics generates the per-point velocity state of the bus under
// one of three selectable speed models, including a closed-form constant
// acceleration profile between stops.
package kinematics

// CruiseSpeed is the fixed cruise velocity in m/s (15 mph equivalent) used by
// the two constant-speed models.
const CruiseSpeed = 6.7056

// Model selects the algorithm that generates velocity (and, for the
// closed-form model, acceleration and elapsed time) along the route.
type Model string

const (
	// Constant15MPH assigns the cruise speed at every route point.
	Constant15MPH Model = "constant_15mph"

	// StoppedAtStops assigns the cruise speed everywhere except at stop
	// points and the two route endpoints, which are forced to zero.
	// Acceleration ramps around stops are not modelled.
	StoppedAtStops Model = "stopped_at_stops__15mph_between"

	// ConstAccel computes a closed-form trapezoidal or triangular velocity
	// profile between consecutive stops, bounded by an acceleration limit
	// and a speed limit.
	ConstAccel Model = "const_accel_between_stops_and_speed_lim"
)

// Valid reports whether m names a known speed model.
func (m Model) Valid() bool {
	switch m {
	case Constant15MPH, StoppedAtStops, ConstAccel:
		return true
	}
	return false
}

// Models lists the supported speed models.
func Models() []Model {
	return []Model{Constant15MPH, StoppedAtStops, ConstAccel}
}
