package route

import (
	"fmt"
	"math"
)

// WithMasses returns a table with the per-point mass column.
//
// With no mass array every point carries the unloaded bus mass. With a mass
// array, values are placed at the resolved stop indices, both route endpoints
// are forced to the unloaded mass, and every other point is forward-filled
// with the mass of the most recently seen stop (a step function, not an
// interpolation).
//
// A mass below the unloaded floor signals a modeling contradiction and fails
// rather than clamping.
func (t *Table) WithMasses(massArray []float64) (*Table, error) {
	next := t.clone()

	if massArray == nil {
		for i := range next.Points {
			next.Points[i].Mass = t.UnloadedBusMass
		}
		return next, nil
	}

	if t.StopIndices == nil {
		return nil, fmt.Errorf("%w: mass array supplied but no stop indices were resolved; "+
			"stops must come from an explicit coordinate list", ErrMissingPrecondition)
	}
	if len(massArray) != len(t.StopIndices) {
		return nil, fmt.Errorf("%w: mass array has %d entries for %d stop coordinates",
			ErrInvalidArgument, len(massArray), len(t.StopIndices))
	}

	n := len(next.Points)
	column := make([]float64, n)
	for i := range column {
		column[i] = math.NaN()
	}
	for i, stopIdx := range t.StopIndices {
		column[stopIdx] = massArray[i]
	}

	// Endpoints always carry the empty bus.
	column[0] = t.UnloadedBusMass
	column[n-1] = t.UnloadedBusMass

	// Forward-fill the gaps between stops.
	for i := 1; i < n; i++ {
		if math.IsNaN(column[i]) {
			column[i] = column[i-1]
		}
	}

	for i, m := range column {
		if m < t.UnloadedBusMass {
			return nil, fmt.Errorf("%w: mass %g at point %d is below the unloaded bus mass %g",
				ErrInvalidArgument, m, i, t.UnloadedBusMass)
		}
	}

	for i := range next.Points {
		next.Points[i].Mass = column[i]
	}
	next.MassArray = append([]float64(nil), massArray...)
	return next, nil
}
