package route

import (
	"errors"
	"testing"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
)

func TestMassDefaultsToUnloaded(t *testing.T) {
	tbl := flatTestTable(t, 12, 50)
	got, err := tbl.WithMasses(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range got.Points {
		if p.Mass != 12927 {
			t.Errorf("point %d: expected unloaded mass, got %f", i, p.Mass)
		}
	}
}

func TestMassForwardFillBoundaries(t *testing.T) {
	// Stops resolve to route indices 2 and 7 on a 12-point route.
	tbl := flatTestTable(t, 12, 100)
	tbl, err := tbl.WithStops(StopsAt([]geo.Point2D{geo.Pt(200, 0), geo.Pt(700, 0)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := tbl.WithMasses([]float64{15000, 15500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := got.Len()
	if got.Points[0].Mass != 12927 {
		t.Errorf("expected unloaded mass at route start, got %f", got.Points[0].Mass)
	}
	if got.Points[1].Mass != 12927 {
		t.Errorf("expected start mass carried to point 1, got %f", got.Points[1].Mass)
	}
	for i := 2; i <= 6; i++ {
		if got.Points[i].Mass != 15000 {
			t.Errorf("point %d: expected 15000, got %f", i, got.Points[i].Mass)
		}
	}
	// The second stop's load rides through to the second-to-last point; the
	// final point is forced back to the empty bus.
	for i := 7; i <= n-2; i++ {
		if got.Points[i].Mass != 15500 {
			t.Errorf("point %d: expected 15500, got %f", i, got.Points[i].Mass)
		}
	}
	if got.Points[n-1].Mass != 12927 {
		t.Errorf("expected unloaded mass at route end, got %f", got.Points[n-1].Mass)
	}
}

func TestMassLengthMismatch(t *testing.T) {
	tbl := flatTestTable(t, 12, 100)
	tbl, err := tbl.WithStops(StopsAt([]geo.Point2D{geo.Pt(200, 0), geo.Pt(700, 0)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tbl.WithMasses([]float64{15000}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for mismatched lengths, got %v", err)
	}
}

func TestMassBelowFloorRejected(t *testing.T) {
	tbl := flatTestTable(t, 12, 100)
	tbl, err := tbl.WithStops(StopsAt([]geo.Point2D{geo.Pt(500, 0)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tbl.WithMasses([]float64{9000}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for mass below the floor, got %v", err)
	}
}

func TestMassWithoutResolvedStops(t *testing.T) {
	tbl := flatTestTable(t, 12, 100)
	tbl, err := tbl.WithStops(RandomStops())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tbl.WithMasses([]float64{15000}); !errors.Is(err, ErrMissingPrecondition) {
		t.Errorf("expected ErrMissingPrecondition, got %v", err)
	}
}
