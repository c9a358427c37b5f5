package dynamics

import (
	"math"
	"testing"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
	"github.com/openmobilitylab/routeenergy/pkg/route"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestForcesAtRestOnFlatRoad(t *testing.T) {
	f := PointForces(0, 0, 0, 15000)
	if f.Grav != 0 {
		t.Errorf("expected zero gravity force on flat road, got %f", f.Grav)
	}
	if f.Inertia != 0 {
		t.Errorf("expected zero inertia at constant speed, got %f", f.Inertia)
	}
	wantAero := -DragCoeff * FrontalArea * (AirDensity / 2) * (0 - WindSpeed)
	if !approxEqual(f.Aero, wantAero, tolerance) {
		t.Errorf("expected aero drag %f, got %f", wantAero, f.Aero)
	}
	wantRoll := -RollCoeff * 15000 * GravAccel
	if !approxEqual(f.Roll, wantRoll, tolerance) {
		t.Errorf("expected rolling friction %f, got %f", wantRoll, f.Roll)
	}
}

func TestForcesUphillSigns(t *testing.T) {
	f := PointForces(10, 0.5, 0.05, 14000)
	if f.Grav >= 0 {
		t.Errorf("gravity must resist an uphill climb, got %f", f.Grav)
	}
	if f.Roll >= 0 {
		t.Errorf("rolling friction is always resistive, got %f", f.Roll)
	}
	if f.Aero >= 0 {
		t.Errorf("drag resists forward motion, got %f", f.Aero)
	}
	if f.Inertia <= 0 {
		t.Errorf("inertial force follows acceleration, got %f", f.Inertia)
	}
}

// powerTable builds a minimal table with pre-filled force columns so the
// power stage can be exercised in isolation.
func powerTable(chargeMax float64, inertia, grav, roll, aero, velocity []float64) *route.Table {
	n := len(inertia)
	tbl := &route.Table{
		RouteID:          "test",
		Points:           make([]route.Point, n),
		ChargingPowerMax: chargeMax,
	}
	for i := 0; i < n; i++ {
		tbl.Points[i] = route.Point{
			Coordinate: geo.Pt(float64(i), 0),
			Velocity:   velocity[i],
			DeltaTime:  1,
			Inertia:    inertia[i],
			GravForce:  grav[i],
			RollFric:   roll[i],
			AeroDrag:   aero[i],
		}
	}
	return tbl
}

func TestRegenerativePowerCap(t *testing.T) {
	// Raw powers: -80 (capped), -50 (boundary), -10 and +40 (untouched).
	// traction = inertia - resistive; with resistive = 0, power = inertia*v.
	zeros := []float64{0, 0, 0, 0}
	tbl := powerTable(50,
		[]float64{-80, -50, -10, 40},
		zeros, zeros, zeros,
		[]float64{1, 1, 1, 1},
	)
	got := WithPower(tbl)

	wantPower := []float64{-50, -50, -10, 40}
	wantRaw := []float64{-80, -50, -10, 40}
	for i := range wantPower {
		if !approxEqual(got.Points[i].Power, wantPower[i], tolerance) {
			t.Errorf("point %d: expected capped power %f, got %f", i, wantPower[i], got.Points[i].Power)
		}
		if !approxEqual(got.Points[i].RawPower, wantRaw[i], tolerance) {
			t.Errorf("point %d: expected raw power %f, got %f", i, wantRaw[i], got.Points[i].RawPower)
		}
	}
}

func TestEnergyExcludesFirstPoint(t *testing.T) {
	zeros := []float64{0, 0, 0}
	tbl := powerTable(1e9,
		[]float64{100, 200, 300},
		zeros, zeros, zeros,
		[]float64{1, 1, 1},
	)
	tbl = WithPower(tbl)
	// Point 0 carries an undefined delta time in the real pipeline; the
	// integral starts at point 1 regardless of its value.
	tbl.Points[0].DeltaTime = math.NaN()

	got := Energy(tbl)
	if !approxEqual(got, 500, tolerance) {
		t.Errorf("expected energy 500, got %f", got)
	}
}

func TestSummarizeRegenSplit(t *testing.T) {
	zeros := []float64{0, 0, 0}
	tbl := powerTable(1e9,
		[]float64{0, -30, 70},
		zeros, zeros, zeros,
		[]float64{1, 1, 1},
	)
	tbl = WithPower(tbl)
	s := Summarize(tbl)
	if !approxEqual(s.TotalEnergy, 40, tolerance) {
		t.Errorf("expected net energy 40, got %f", s.TotalEnergy)
	}
	if !approxEqual(s.RegenEnergy, -30, tolerance) {
		t.Errorf("expected regen energy -30, got %f", s.RegenEnergy)
	}
	if !approxEqual(s.PeakPower, 70, tolerance) {
		t.Errorf("expected peak power 70, got %f", s.PeakPower)
	}
}
