package route

import (
	"fmt"
	"math"

	"github.com/openmobilitylab/routeenergy/pkg/kinematics"
)

// WithDeltaTimes returns a table with per-segment elapsed time estimated
// from the backward-difference distance and the mean of the two endpoint
// velocities. Index 0 has no previous point and stays NaN.
//
// The estimate multiplies distance by the mean segment velocity. Recorded
// outputs depend on this convention; see DESIGN.md before changing it.
//
// The closed-form constant-acceleration model carries its own timing, so this
// stage is a no-op for it.
func (t *Table) WithDeltaTimes() (*Table, error) {
	if t.Model == "" {
		return nil, fmt.Errorf("%w: delta times derived before a speed model ran", ErrMissingPrecondition)
	}
	next := t.clone()
	if t.Model == kinematics.ConstAccel {
		return next, nil
	}

	next.Points[0].DeltaTime = math.NaN()
	next.Points[0].TimeOnRoute = 0
	for i := 1; i < len(next.Points); i++ {
		p, prev := &next.Points[i], next.Points[i-1]
		meanV := (p.Velocity + prev.Velocity) / 2
		p.DeltaTime = p.DistanceFromPrev * meanV
		p.TimeOnRoute = prev.TimeOnRoute + p.DeltaTime
	}
	return next, nil
}

// WithAccelerations returns a table with acceleration as the backward finite
// difference of velocity over the derived elapsed time. Index 0 stays NaN.
// No-op for the closed-form model.
func (t *Table) WithAccelerations() (*Table, error) {
	if t.Model == "" {
		return nil, fmt.Errorf("%w: accelerations derived before a speed model ran", ErrMissingPrecondition)
	}
	next := t.clone()
	if t.Model == kinematics.ConstAccel {
		return next, nil
	}

	next.Points[0].Acceleration = math.NaN()
	for i := 1; i < len(next.Points); i++ {
		p, prev := &next.Points[i], next.Points[i-1]
		p.Acceleration = (p.Velocity - prev.Velocity) / p.DeltaTime
	}
	return next, nil
}
