package route

import (
	"fmt"
	"math/rand"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
	"github.com/openmobilitylab/routeenergy/pkg/knn"
)

// Fixed seed and per-point probability for the random stop policy, kept
// constant so runs are reproducible.
const (
	randomStopSeed        = 5615423
	randomStopProbability = 0.15
)

type stopKind int

const (
	stopNone stopKind = iota
	stopRandom
	stopCoords
)

// StopPolicy selects how stop points are assigned along the route. The zero
// value marks no stops.
type StopPolicy struct {
	kind   stopKind
	coords []geo.Point2D
}

// NoStops marks no route point as a stop.
func NoStops() StopPolicy { return StopPolicy{kind: stopNone} }

// RandomStops marks each point as a stop independently with a fixed
// probability, from a fixed seed. Deterministic across runs.
func RandomStops() StopPolicy { return StopPolicy{kind: stopRandom} }

// StopsAt matches each supplied coordinate to its nearest route point and
// marks that point as a stop.
func StopsAt(coords []geo.Point2D) StopPolicy {
	return StopPolicy{kind: stopCoords, coords: coords}
}

// String returns the policy name for reports and run records.
func (p StopPolicy) String() string {
	switch p.kind {
	case stopNone:
		return "none"
	case stopRandom:
		return "random"
	case stopCoords:
		return fmt.Sprintf("coords[%d]", len(p.coords))
	}
	return "unknown"
}

// Coords returns the explicit stop coordinates, or nil for the other
// policies.
func (p StopPolicy) Coords() []geo.Point2D { return p.coords }

// WithStops returns a table with the IsStop column filled in per the policy.
// For an explicit coordinate list the resolved route-point indices are stored
// on the table, in supplied order, for the mass profile builder.
func (t *Table) WithStops(policy StopPolicy) (*Table, error) {
	next := t.clone()

	switch policy.kind {
	case stopNone:
		// IsStop already false everywhere.

	case stopRandom:
		rng := rand.New(rand.NewSource(randomStopSeed))
		for i := range next.Points {
			next.Points[i].IsStop = rng.Float64() < randomStopProbability
		}

	case stopCoords:
		candidates := make([][]float64, len(t.Points))
		for i, p := range t.Points {
			candidates[i] = p.Coordinate.Vector()
		}
		queries := make([][]float64, len(policy.coords))
		for i, c := range policy.coords {
			queries[i] = c.Vector()
		}
		matches, err := knn.Find(1, candidates, queries)
		if err != nil {
			return nil, fmt.Errorf("matching stop coordinates: %w", err)
		}
		next.StopIndices = make([]int, len(matches))
		for i, m := range matches {
			next.StopIndices[i] = m[0].Index
			next.Points[m[0].Index].IsStop = true
		}

	default:
		return nil, fmt.Errorf("%w: unrecognized stop policy", ErrInvalidArgument)
	}

	return next, nil
}
