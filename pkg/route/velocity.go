package route

import (
	"fmt"

	"github.com/openmobilitylab/routeenergy/pkg/kinematics"
)

// WithVelocities returns a table with the velocity column generated by the
// selected speed model.
//
// For the closed-form constant-acceleration model the acceleration,
// delta-time, and elapsed-time columns are produced here as well, directly
// from the profile; they are not re-derived later.
func (t *Table) WithVelocities(model kinematics.Model) (*Table, error) {
	next := t.clone()

	switch model {
	case kinematics.Constant15MPH:
		for i := range next.Points {
			next.Points[i].Velocity = kinematics.CruiseSpeed
		}

	case kinematics.StoppedAtStops:
		for i := range next.Points {
			if next.Points[i].IsStop {
				next.Points[i].Velocity = 0
			} else {
				next.Points[i].Velocity = kinematics.CruiseSpeed
			}
		}
		// Route endpoints behave as implicit stops.
		next.Points[0].Velocity = 0
		next.Points[len(next.Points)-1].Velocity = 0

	case kinematics.ConstAccel:
		profile, err := kinematics.ConstAccelProfile(
			t.CumulativeDistances(),
			t.flaggedStops(),
			t.AccelLimit,
			t.SpeedLimit,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		for i := range next.Points {
			next.Points[i].Velocity = profile.Velocity[i]
			next.Points[i].Acceleration = profile.Acceleration[i]
			next.Points[i].TimeOnRoute = profile.Time[i]
			if i == 0 {
				next.Points[i].DeltaTime = 0
			} else {
				next.Points[i].DeltaTime = profile.Time[i] - profile.Time[i-1]
			}
		}

	default:
		return nil, fmt.Errorf("%w: unrecognized speed model %q", ErrInvalidArgument, model)
	}

	next.Model = model
	return next, nil
}

// flaggedStops returns the indices of points flagged as stops.
func (t *Table) flaggedStops() []int {
	var out []int
	for i, p := range t.Points {
		if p.IsStop {
			out = append(out, i)
		}
	}
	return out
}
