// Package store persists run results to an embedded SQLite database so
// repeated what-if runs over the same routes can be compared later.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps the SQLite connection with write serialization. SQLite allows
// one writer at a time; a single-connection pool plus a mutex keeps
// concurrent server requests from tripping over each other.
type Store struct {
	conn    *sql.DB
	writeMu sync.Mutex
}

// Run is one persisted pipeline result.
type Run struct {
	ID            string    `json:"run_id"`
	RouteID       string    `json:"route_id"`
	Model         string    `json:"speed_model"`
	StopPolicy    string    `json:"stop_policy"`
	Points        int       `json:"points"`
	TotalDistance float64   `json:"total_distance_m"`
	TotalTime     float64   `json:"total_time_s"`
	TotalEnergy   float64   `json:"total_energy_j"`
	CreatedAt     time.Time `json:"created_at"`
}

// Open opens (creating if needed) the run database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	dsn := path + "?_journal=WAL&_busy_timeout=5000"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening run database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging run database: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// SaveRun inserts a run record. A missing ID gets a fresh UUID; a missing
// CreatedAt gets the current time. Returns the stored record.
func (s *Store) SaveRun(ctx context.Context, r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO runs (run_id, route_id, speed_model, stop_policy, points,
			total_distance_m, total_time_s, total_energy_j, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.RouteID, r.Model, r.StopPolicy, r.Points,
		r.TotalDistance, r.TotalTime, r.TotalEnergy,
		r.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Run{}, fmt.Errorf("saving run %s: %w", r.ID, err)
	}
	return r, nil
}

// ListRuns returns up to limit runs, newest first. routeID narrows the list
// to one route when non-empty.
func (s *Store) ListRuns(ctx context.Context, routeID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT run_id, route_id, speed_model, stop_policy, points,
			total_distance_m, total_time_s, total_energy_j, created_at
		FROM runs`
	args := []any{}
	if routeID != "" {
		query += " WHERE route_id = ?"
		args = append(args, routeID)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.RouteID, &r.Model, &r.StopPolicy, &r.Points,
			&r.TotalDistance, &r.TotalTime, &r.TotalEnergy, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", created, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
