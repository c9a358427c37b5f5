package route

import (
	"errors"
	"math"
	"testing"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// flatTestTable builds an n-point straight flat route with dx metres between
// consecutive points.
func flatTestTable(t *testing.T, n int, dx float64) *Table {
	t.Helper()
	seed := Seed{
		Coordinates:      make([]geo.Point2D, n),
		Segments:         make([]geo.LineSegment, n),
		Elevation:        make([]float64, n),
		Gradient:         make([]float64, n),
		CumulativeDist:   make([]float64, n),
		BackDiffDistance: make([]float64, n-1),
	}
	for i := 0; i < n; i++ {
		seed.Coordinates[i] = geo.Pt(float64(i)*dx, 0)
		seed.Elevation[i] = 30
		seed.CumulativeDist[i] = float64(i) * dx
		if i < n-1 {
			seed.Segments[i] = geo.Seg(geo.Pt(float64(i)*dx, 0), geo.Pt(float64(i+1)*dx, 0))
		}
		if i > 0 {
			seed.BackDiffDistance[i-1] = dx
		}
	}
	tbl, err := NewTable("E-Line", seed)
	if err != nil {
		t.Fatalf("building test table: %v", err)
	}
	tbl.UnloadedBusMass = 12927
	tbl.AccelLimit = 1.0
	tbl.SpeedLimit = 15.0
	return tbl
}

func TestNewTableSeedValidation(t *testing.T) {
	_, err := NewTable("r", Seed{Coordinates: []geo.Point2D{{}}})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for single-point seed, got %v", err)
	}

	seed := Seed{
		Coordinates:      []geo.Point2D{{}, {}},
		Segments:         []geo.LineSegment{{}, {}},
		Elevation:        []float64{0, 0},
		Gradient:         []float64{0},
		CumulativeDist:   []float64{0, 10},
		BackDiffDistance: []float64{10},
	}
	if _, err := NewTable("r", seed); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for short gradient column, got %v", err)
	}
}

func TestNewTableFirstDistanceUndefined(t *testing.T) {
	tbl := flatTestTable(t, 5, 10)
	if !math.IsNaN(tbl.Points[0].DistanceFromPrev) {
		t.Errorf("expected NaN distance at index 0, got %f", tbl.Points[0].DistanceFromPrev)
	}
	if tbl.Points[1].DistanceFromPrev != 10 {
		t.Errorf("expected 10 m at index 1, got %f", tbl.Points[1].DistanceFromPrev)
	}
}

func TestStagesDoNotMutateInput(t *testing.T) {
	tbl := flatTestTable(t, 5, 10)
	marked, err := tbl.WithStops(RandomStops())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if marked == tbl {
		t.Fatal("WithStops returned the input table instead of a copy")
	}
	for i, p := range tbl.Points {
		if p.IsStop {
			t.Fatalf("input table mutated: point %d marked as stop", i)
		}
	}
}
