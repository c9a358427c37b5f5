package knn

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-12

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestEuclideanDistanceMatchesNorm(t *testing.T) {
	// Distance from the origin to any vector equals its norm.
	rng := rand.New(rand.NewSource(42))
	dim := 1 + rng.Intn(9)
	point := make([]float64, dim)
	norm := 0.0
	for i := range point {
		point[i] = rng.Float64()
		norm += point[i] * point[i]
	}
	norm = math.Sqrt(norm)

	dist, err := EuclideanDistance(make([]float64, dim), point)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(dist, norm, tolerance) {
		t.Errorf("expected distance %f, got %f", norm, dist)
	}
}

func TestEuclideanDistanceDimensionMismatch(t *testing.T) {
	if _, err := EuclideanDistance([]float64{1, 2}, []float64{1, 2, 3}); err == nil {
		t.Error("expected error for mismatched dimensions")
	}
}

func TestFindReturnsMinimalDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	candidates := make([][]float64, 50)
	for i := range candidates {
		candidates[i] = []float64{rng.Float64()*20 - 10, rng.Float64()*20 - 10}
	}
	queries := [][]float64{{0, 0}, {3, -4}, {-9.5, 9.5}}

	results, err := Find(1, candidates, queries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for qi, q := range queries {
		got := results[qi][0]
		for ci, c := range candidates {
			d, _ := EuclideanDistance(q, c)
			if d < got.Distance {
				t.Errorf("query %d: candidate %d at %f beats returned %d at %f",
					qi, ci, d, got.Index, got.Distance)
			}
		}
	}
}

func TestFindTieBreakLowestIndex(t *testing.T) {
	// Two candidates equidistant from the query; the lower index wins.
	candidates := [][]float64{{-1, 0}, {1, 0}}
	results, err := Find(1, candidates, [][]float64{{0, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0][0].Index != 0 {
		t.Errorf("expected tie to resolve to index 0, got %d", results[0][0].Index)
	}
}

func TestFindEmptyCandidates(t *testing.T) {
	_, err := Find(1, nil, [][]float64{{0, 0}})
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("expected ErrNoCandidates, got %v", err)
	}
}

func TestFindKLargerThanCandidates(t *testing.T) {
	candidates := [][]float64{{0}, {1}, {2}}
	results, err := Find(10, candidates, [][]float64{{0.1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results[0]) != 3 {
		t.Errorf("expected k clamped to 3, got %d matches", len(results[0]))
	}
}

func TestClassify1DLeftRight(t *testing.T) {
	// Scalars spanning [-1,1] classified by sign against candidates {-1, 1}.
	rng := rand.New(rand.NewSource(5))
	queries := make([]float64, 100)
	want := make([]float64, 100)
	for i := range queries {
		queries[i] = rng.Float64()*2 - 1
		if queries[i] > 0 {
			want[i] = 1
		} else {
			want[i] = -1
		}
	}

	got, err := Classify1D([]float64{-1, 1}, queries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range queries {
		if queries[i] == 0 {
			continue
		}
		if got[i] != want[i] {
			t.Errorf("query %f: expected class %f, got %f", queries[i], want[i], got[i])
		}
	}
}

func TestWeightIsInverseDistance(t *testing.T) {
	m, err := Nearest([][]float64{{4, 0}}, []float64{0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(m.Weight, 0.25, tolerance) {
		t.Errorf("expected weight 0.25, got %f", m.Weight)
	}
}
