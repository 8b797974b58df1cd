package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"
)

// RunSummary is the JSON shape for one solved board.
type RunSummary struct {
	RunID   string `json:"run_id"`
	BoardID string `json:"board_id"`
	Source  string `json:"source"`

	Width   int32 `json:"width"`
	Height  int32 `json:"height"`
	Sheep   int32 `json:"sheep"`
	Blocked int32 `json:"blocked"`

	StaticReach int32  `json:"static_reach"`
	DriftReach  int32  `json:"drift_reach"`
	Outcomes    uint64 `json:"outcomes"`

	SolveNs      int64 `json:"solve_ns"`
	CacheEntries int64 `json:"cache_entries"`
	CreatedNs    int64 `json:"created_ns"`
}

// RunDetail adds the replayable grid text to a summary.
type RunDetail struct {
	RunSummary
	Grid string `json:"grid"`
}

type RunsResponse struct {
	Total int64        `json:"total"`
	Runs  []RunSummary `json:"runs"`
}

type Stats struct {
	Runs        int64  `json:"runs"`
	Boards      int64  `json:"boards"`
	MaxOutcomes uint64 `json:"max_outcomes"`
	AvgSolveNs  int64  `json:"avg_solve_ns"`
}

// Server holds shared state for HTTP handlers.
type Server struct {
	dbCache *DBCache
}

// NewServer creates a Server over the given data roots.
func NewServer(roots []string) *Server {
	return &Server{
		dbCache: NewDBCache(roots, 30*time.Second),
	}
}

// RegisterRoutes sets up all API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/runs", s.handleRuns)
	mux.HandleFunc("/api/runs/", s.handleRun)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/live", s.handleLive)
}

// outcomes is UBIGINT in the parquet schema; cast through BIGINT so the scan
// lands in a type every database/sql conversion path accepts.
const runColumns = `run_id, board_id, source, width, height, sheep, blocked,
	static_reach, drift_reach, CAST(outcomes AS BIGINT) AS outcomes,
	solve_ns, cache_entries, created_ns`

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	withCORS(w, r)
	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	if limit > 500 {
		limit = 500
	}
	offset := parseIntQuery(r, "offset", 0)

	db, err := s.dbCache.Get()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var total int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&total); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM runs ORDER BY created_ns DESC LIMIT ? OFFSET ?",
		limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	resp := RunsResponse{Total: total, Runs: []RunSummary{}}
	for rows.Next() {
		var rs RunSummary
		if err := scanRun(rows, &rs); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.Runs = append(resp.Runs, rs)
	}
	if err := rows.Err(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, resp)
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	withCORS(w, r)
	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	runID := strings.TrimPrefix(r.URL.Path, "/api/runs/")
	if runID == "" || strings.Contains(runID, "/") {
		http.Error(w, "run id required", http.StatusBadRequest)
		return
	}

	db, err := s.dbCache.Get()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	row := db.QueryRowContext(ctx,
		"SELECT "+runColumns+", grid FROM runs WHERE run_id = ? LIMIT 1", runID)

	var d RunDetail
	err = row.Scan(
		&d.RunID, &d.BoardID, &d.Source,
		&d.Width, &d.Height, &d.Sheep, &d.Blocked,
		&d.StaticReach, &d.DriftReach, &d.Outcomes,
		&d.SolveNs, &d.CacheEntries, &d.CreatedNs,
		&d.Grid,
	)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, d)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	withCORS(w, r)
	if r.Method == http.MethodOptions {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	db, err := s.dbCache.Get()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var st Stats
	var maxOutcomes sql.NullFloat64
	var avgSolve sql.NullFloat64
	err = db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT board_id),
			CAST(MAX(outcomes) AS DOUBLE),
			AVG(solve_ns)
		FROM runs`).Scan(&st.Runs, &st.Boards, &maxOutcomes, &avgSolve)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if maxOutcomes.Valid {
		st.MaxOutcomes = uint64(maxOutcomes.Float64)
	}
	if avgSolve.Valid {
		st.AvgSolveNs = int64(avgSolve.Float64)
	}
	writeJSON(w, st)
}

type runScanner interface {
	Scan(dest ...any) error
}

func scanRun(row runScanner, rs *RunSummary) error {
	return row.Scan(
		&rs.RunID, &rs.BoardID, &rs.Source,
		&rs.Width, &rs.Height, &rs.Sheep, &rs.Blocked,
		&rs.StaticReach, &rs.DriftReach, &rs.Outcomes,
		&rs.SolveNs, &rs.CacheEntries, &rs.CreatedNs,
	)
}
