package kinematics

import (
	"fmt"
	"math"
	"sort"
)

// Profile is a closed-form velocity profile mapped onto the fixed route
// points. Time is absolute elapsed route time, so the profile carries its own
// timing and never needs a finite-difference pass.
type Profile struct {
	Velocity     []float64
	Acceleration []float64
	Time         []float64

	// AccelEnds holds, per inter-stop segment, the distance from the segment
	// start at which the acceleration phase ends (the deceleration phase is
	// symmetric at the far end).
	AccelEnds []float64
	// Boundaries holds the cumulative-distance positions of the profile
	// boundaries: every stop plus the two route endpoints.
	Boundaries []float64
}

// ConstAccelProfile computes the bounded constant-acceleration profile over
// the route. Between each consecutive pair of boundary indices (stops, with
// the route endpoints always included) the bus accelerates from rest at aM
// until it reaches vLim or the segment midpoint, cruises if the segment is
// long enough, then symmetrically decelerates to rest. Segments too short to
// reach vLim get a triangular profile with peak velocity sqrt(aM * L).
//
// cumDist must be the monotonically non-decreasing cumulative distance at
// each route point, starting at 0.
func ConstAccelProfile(cumDist []float64, stopIdx []int, aM, vLim float64) (*Profile, error) {
	if aM <= 0 {
		return nil, fmt.Errorf("kinematics: acceleration bound must be positive, got %g", aM)
	}
	if vLim <= 0 {
		return nil, fmt.Errorf("kinematics: speed limit must be positive, got %g", vLim)
	}
	n := len(cumDist)
	if n < 2 {
		return nil, fmt.Errorf("kinematics: need at least 2 route points, got %d", n)
	}
	for i := 1; i < n; i++ {
		if cumDist[i] < cumDist[i-1] {
			return nil, fmt.Errorf("kinematics: cumulative distance decreases at index %d", i)
		}
	}

	bounds := boundaryIndices(n, stopIdx)

	p := &Profile{
		Velocity:     make([]float64, n),
		Acceleration: make([]float64, n),
		Time:         make([]float64, n),
	}

	segStartTime := 0.0
	for s := 0; s < len(bounds)-1; s++ {
		b, e := bounds[s], bounds[s+1]
		start := cumDist[b]
		segLen := cumDist[e] - start
		if segLen <= 0 {
			// Coincident stops: no motion, no elapsed time.
			continue
		}

		// Distance consumed by the acceleration ramp. Capped at the segment
		// midpoint: shorter segments never reach vLim (triangular profile).
		accelEnd := vLim * vLim / (2 * aM)
		if accelEnd > segLen/2 {
			accelEnd = segLen / 2
		}
		vPeak := math.Sqrt(2 * aM * accelEnd)
		tAccel := vPeak / aM
		tCruise := 0.0
		if cruiseLen := segLen - 2*accelEnd; cruiseLen > 0 {
			tCruise = cruiseLen / vPeak
		}
		segTime := 2*tAccel + tCruise

		p.AccelEnds = append(p.AccelEnds, accelEnd)
		p.Boundaries = append(p.Boundaries, start)

		for i := b; i <= e; i++ {
			d := cumDist[i] - start
			switch {
			case d <= accelEnd:
				p.Velocity[i] = math.Sqrt(2 * aM * d)
				p.Acceleration[i] = aM
				p.Time[i] = segStartTime + math.Sqrt(2*d/aM)
			case d >= segLen-accelEnd:
				r := segLen - d
				p.Velocity[i] = math.Sqrt(2 * aM * r)
				p.Acceleration[i] = -aM
				p.Time[i] = segStartTime + segTime - math.Sqrt(2*r/aM)
			default:
				p.Velocity[i] = vPeak
				p.Acceleration[i] = 0
				p.Time[i] = segStartTime + tAccel + (d-accelEnd)/vPeak
			}
		}

		segStartTime += segTime
	}
	p.Boundaries = append(p.Boundaries, cumDist[n-1])

	return p, nil
}

// boundaryIndices returns the sorted, deduplicated profile boundaries:
// the supplied stop indices with the route endpoints always included.
func boundaryIndices(n int, stopIdx []int) []int {
	seen := map[int]bool{0: true, n - 1: true}
	for _, i := range stopIdx {
		if i > 0 && i < n-1 {
			seen[i] = true
		}
	}
	bounds := make([]int, 0, len(seen))
	for i := range seen {
		bounds = append(bounds, i)
	}
	sort.Ints(bounds)
	return bounds
}
