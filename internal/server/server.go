// Package server is the local analysis server: it runs the energy pipeline
// for a project's scenario on demand and serves the route table, energy
// summary, and run history as JSON for plotting and export clients.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/openmobilitylab/routeenergy/internal/store"
	"github.com/openmobilitylab/routeenergy/pkg/gis"
	"github.com/openmobilitylab/routeenergy/pkg/spec"
	"github.com/openmobilitylab/routeenergy/pkg/trajectory"
)

// Server serves one project directory.
type Server struct {
	projectPath string
	port        int
	runs        *store.Store
}

// New creates a server for the given project directory. The run store is
// optional; without it /api/runs responds 404 and POST /api/run does not
// persist.
func New(projectPath string, port int, runs *store.Store) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		runs:        runs,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("GET /api/energy", s.handleEnergy)
	mux.HandleFunc("GET /api/table", s.handleTable)
	mux.HandleFunc("GET /api/profile", s.handleProfile)
	mux.HandleFunc("GET /api/runs", s.handleRuns)
	mux.HandleFunc("POST /api/run", s.handleRun)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("route-energy server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

// build loads the project scenario and runs the full pipeline.
func (s *Server) build() (*spec.Scenario, *trajectory.Trajectory, error) {
	scenario, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := scenario.TrajectoryConfig()
	if err != nil {
		return nil, nil, err
	}
	traj, err := trajectory.New(gis.FileSource{}, cfg)
	if err != nil {
		return nil, nil, err
	}
	return scenario, traj, nil
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	scenario, err := spec.LoadProject(s.projectPath)
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, scenario)
}

func (s *Server) handleEnergy(w http.ResponseWriter, _ *http.Request) {
	_, traj, err := s.build()
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, traj.Summary())
}

func (s *Server) handleTable(w http.ResponseWriter, _ *http.Request) {
	_, traj, err := s.build()
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, traj.Table())
}

// handleProfile serves the per-point series plotting clients want, without
// the full table payload.
func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	_, traj, err := s.build()
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err)
		return
	}

	tbl := traj.Table()
	n := tbl.Len()
	profile := struct {
		RouteID   string    `json:"route_id"`
		Distance  []float64 `json:"cumulative_distance"`
		Elevation []float64 `json:"elevation"`
		Velocity  []float64 `json:"velocity"`
		Power     []float64 `json:"power_output"`
		IsStop    []bool    `json:"is_stop"`
	}{
		RouteID:   tbl.RouteID,
		Distance:  make([]float64, n),
		Elevation: make([]float64, n),
		Velocity:  make([]float64, n),
		Power:     make([]float64, n),
		IsStop:    make([]bool, n),
	}
	for i, p := range tbl.Points {
		profile.Distance[i] = p.CumulativeDistance
		profile.Elevation[i] = p.Elevation
		profile.Velocity[i] = p.Velocity
		profile.Power[i] = p.Power
		profile.IsStop[i] = p.IsStop
	}
	writeJSON(w, profile)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.runs == nil {
		http.NotFound(w, r)
		return
	}
	runs, err := s.runs.ListRuns(r.Context(), r.URL.Query().Get("route_id"), 50)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	writeJSON(w, runs)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	_, traj, err := s.build()
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, err)
		return
	}

	summary := traj.Summary()
	if s.runs != nil {
		run, err := s.runs.SaveRun(r.Context(), store.Run{
			RouteID:       summary.RouteID,
			Model:         summary.Model,
			StopPolicy:    traj.StopPolicyName(),
			Points:        summary.Points,
			TotalDistance: summary.TotalDistance,
			TotalTime:     summary.TotalTime,
			TotalEnergy:   summary.TotalEnergy,
		})
		if err != nil {
			httpError(w, http.StatusInternalServerError, err)
			return
		}
		log.Printf("saved run %s for route %s", run.ID, run.RouteID)
	}
	writeJSON(w, summary)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func httpError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
