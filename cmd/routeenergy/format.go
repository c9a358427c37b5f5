package main

import (
	"fmt"

	"github.com/openmobilitylab/routeenergy/internal/store"
	"github.com/openmobilitylab/routeenergy/pkg/dynamics"
)

func printEnergyReport(s dynamics.Summary) {
	fmt.Printf("Route %s (%s)\n", s.RouteID, s.Model)
	fmt.Printf("  Points:       %d\n", s.Points)
	fmt.Printf("  Distance:     %.1f m\n", s.TotalDistance)
	fmt.Printf("  Time:         %.1f s\n", s.TotalTime)
	fmt.Printf("  Energy:       %.1f J (%.3f kWh)\n", s.TotalEnergy, s.TotalEnergyKW)
	fmt.Printf("  Peak power:   %.1f W\n", s.PeakPower)
	if s.RegenEnergy != 0 {
		fmt.Printf("  Regen energy: %.1f J\n", s.RegenEnergy)
	}
}

func printRuns(runs []store.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return
	}

	fmt.Printf("%-36s  %-8s  %-40s  %-12s  %s\n", "RUN", "ROUTE", "MODEL", "ENERGY (kWh)", "CREATED")
	for _, r := range runs {
		fmt.Printf("%-36s  %-8s  %-40s  %-12.3f  %s\n",
			r.ID, r.RouteID, r.Model,
			r.TotalEnergy/dynamics.JoulesPerKWh,
			r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}
