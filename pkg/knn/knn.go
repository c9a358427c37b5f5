// Package knn implements a brute-force k-nearest-neighbour matcher over
// arbitrary-dimension numeric vectors. Route point counts are in the
// hundreds to low thousands, so exhaustive pairwise search beats the
// bookkeeping cost of a spatial index.
package knn

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNoCandidates is returned when the candidate set is empty.
var ErrNoCandidates = errors.New("knn: empty candidate set")

// Match is one nearest-neighbour result for a query vector.
type Match struct {
	// Index of the candidate in the input candidate set.
	Index int
	// Candidate is the matched candidate vector.
	Candidate []float64
	// Distance is the Euclidean distance from the query to the candidate.
	Distance float64
	// Weight is the inverse-distance weight 1/d, or +Inf for an exact hit.
	Weight float64
}

// EuclideanDistance returns the Euclidean distance between vectors a and b.
// The vectors must have equal dimension.
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("knn: dimension mismatch: %d vs %d", len(a), len(b))
	}
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Find returns, for each query vector, the k nearest candidates by Euclidean
// distance. Ties resolve to the lowest candidate index. k is clamped to the
// candidate count.
func Find(k int, candidates, queries [][]float64) ([][]Match, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if k < 1 {
		return nil, fmt.Errorf("knn: k must be >= 1, got %d", k)
	}
	if k > len(candidates) {
		k = len(candidates)
	}

	results := make([][]Match, len(queries))
	for qi, q := range queries {
		matches := make([]Match, len(candidates))
		for ci, c := range candidates {
			d, err := EuclideanDistance(q, c)
			if err != nil {
				return nil, err
			}
			matches[ci] = Match{
				Index:     ci,
				Candidate: c,
				Distance:  d,
				Weight:    invDistance(d),
			}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Distance < matches[j].Distance
		})
		results[qi] = matches[:k:k]
	}
	return results, nil
}

// Nearest returns the single nearest candidate for one query vector.
func Nearest(candidates [][]float64, query []float64) (Match, error) {
	res, err := Find(1, candidates, [][]float64{query})
	if err != nil {
		return Match{}, err
	}
	return res[0][0], nil
}

// Classify1D assigns each scalar query the nearest of the scalar candidate
// values. It backs the simple 1-D classification case where the candidate
// values are themselves the class labels.
func Classify1D(candidates, queries []float64) ([]float64, error) {
	cvecs := make([][]float64, len(candidates))
	for i, c := range candidates {
		cvecs[i] = []float64{c}
	}
	qvecs := make([][]float64, len(queries))
	for i, q := range queries {
		qvecs[i] = []float64{q}
	}
	res, err := Find(1, cvecs, qvecs)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(queries))
	for i, m := range res {
		out[i] = m[0].Candidate[0]
	}
	return out, nil
}

func invDistance(d float64) float64 {
	if d == 0 {
		return math.Inf(1)
	}
	return 1 / d
}
