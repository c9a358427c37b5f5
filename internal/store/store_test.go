package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndListRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.SaveRun(ctx, Run{
		RouteID:       "45",
		Model:         "constant_15mph",
		StopPolicy:    "none",
		Points:        120,
		TotalDistance: 8000,
		TotalTime:     900,
		TotalEnergy:   3.2e7,
		CreatedAt:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("saving run: %v", err)
	}
	if first.ID == "" {
		t.Error("expected a generated run id")
	}

	_, err = s.SaveRun(ctx, Run{
		RouteID:     "48",
		Model:       "const_accel_between_stops_and_speed_lim",
		StopPolicy:  "coords[12]",
		Points:      300,
		TotalEnergy: 4.1e7,
		CreatedAt:   time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("saving run: %v", err)
	}

	all, err := s.ListRuns(ctx, "", 10)
	if err != nil {
		t.Fatalf("listing runs: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(all))
	}
	if all[0].RouteID != "48" {
		t.Errorf("expected newest run first, got route %q", all[0].RouteID)
	}

	only45, err := s.ListRuns(ctx, "45", 10)
	if err != nil {
		t.Fatalf("listing runs: %v", err)
	}
	if len(only45) != 1 || only45[0].RouteID != "45" {
		t.Errorf("expected one run for route 45, got %+v", only45)
	}
	if only45[0].TotalEnergy != 3.2e7 {
		t.Errorf("energy not round-tripped: %f", only45[0].TotalEnergy)
	}
}

func TestListRunsEmpty(t *testing.T) {
	s := openTestStore(t)
	runs, err := s.ListRuns(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("listing runs: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
