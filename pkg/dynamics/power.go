package dynamics

import "github.com/openmobilitylab/routeenergy/pkg/route"

// WithPower returns a table with net battery power at every point. Traction
// force works against the summed resistive forces; power is traction times
// velocity. Negative power (regenerative braking) is capped from below at the
// charger's rated accept power; positive draw is never altered. The pre-cap
// value is kept in RawPower.
func WithPower(t *route.Table) *route.Table {
	next := cloneTable(t)
	for i := range next.Points {
		p := &next.Points[i]
		resistive := p.GravForce + p.RollFric + p.AeroDrag
		traction := p.Inertia - resistive

		raw := traction * p.Velocity
		p.RawPower = raw
		p.Power = raw
		if raw < -next.ChargingPowerMax {
			p.Power = -next.ChargingPowerMax
		}
	}
	return next
}

// Energy integrates power over time across the route: the sum of
// power * delta_time over points 1..N-1. Point 0 is excluded because its
// delta time is undefined.
func Energy(t *route.Table) float64 {
	total := 0.0
	for i := 1; i < len(t.Points); i++ {
		total += t.Points[i].Power * t.Points[i].DeltaTime
	}
	return total
}

// Summary aggregates one route traversal for reports and the run store.
type Summary struct {
	RouteID       string  `json:"route_id"`
	Model         string  `json:"bus_speed_model"`
	Points        int     `json:"points"`
	TotalDistance float64 `json:"total_distance_m"`
	TotalTime     float64 `json:"total_time_s"`
	TotalEnergy   float64 `json:"total_energy_j"`
	TotalEnergyKW float64 `json:"total_energy_kwh"`
	PeakPower     float64 `json:"peak_power_w"`
	RegenEnergy   float64 `json:"regen_energy_j"`
}

// Summarize reduces a fully populated table to its headline figures.
func Summarize(t *route.Table) Summary {
	s := Summary{
		RouteID:       t.RouteID,
		Model:         string(t.Model),
		Points:        len(t.Points),
		TotalDistance: t.TotalDistance(),
		TotalTime:     t.TotalTime(),
		TotalEnergy:   Energy(t),
	}
	s.TotalEnergyKW = s.TotalEnergy / JoulesPerKWh
	for i := 1; i < len(t.Points); i++ {
		p := t.Points[i]
		if p.Power > s.PeakPower {
			s.PeakPower = p.Power
		}
		if p.Power < 0 {
			s.RegenEnergy += p.Power * p.DeltaTime
		}
	}
	return s
}
