// Package dynamics implements the longitudinal force model of the bus and the
// power/energy integration over the route table. Resistive forces are signed
// negative; traction works against them.
package dynamics

import (
	"math"

	"github.com/openmobilitylab/routeenergy/pkg/route"
)

// Forces holds the per-point force components in newtons.
type Forces struct {
	Grav    float64
	Roll    float64
	Aero    float64
	Inertia float64
}

// PointForces evaluates the force model at one route point. The road gradient
// (rise over run) is converted to an angle before the trigonometric terms.
func PointForces(velocity, acceleration, gradient, mass float64) Forces {
	angle := math.Atan(gradient)
	return Forces{
		Grav:    -mass * GravAccel * math.Sin(angle),
		Roll:    -RollCoeff * mass * GravAccel * math.Cos(angle),
		Aero:    -DragCoeff * FrontalArea * (AirDensity / 2) * (velocity - WindSpeed),
		Inertia: mass * acceleration,
	}
}

// WithForces returns a table with the four force columns evaluated at every
// point. Purely per-point: no cross-point dependency.
func WithForces(t *route.Table) *route.Table {
	next := cloneTable(t)
	for i := range next.Points {
		p := &next.Points[i]
		f := PointForces(p.Velocity, p.Acceleration, p.Gradient, p.Mass)
		p.GravForce = f.Grav
		p.RollFric = f.Roll
		p.AeroDrag = f.Aero
		p.Inertia = f.Inertia
	}
	return next
}

// cloneTable copies the table so the input stays untouched, preserving the
// extend-only pipeline contract.
func cloneTable(t *route.Table) *route.Table {
	next := *t
	next.Points = make([]route.Point, len(t.Points))
	copy(next.Points, t.Points)
	return &next
}
