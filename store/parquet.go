// Package store persists solver output: one parquet row per solved board,
// batched into zstd-compressed files, plus an append-only dedupe log of
// board ids already solved.
package store

// RunRow is one completed solve of one board.
//
// Outcomes is the exact terminal-outcome count of the pursuit game; the
// validated magnitudes exceed 10^13, so it stays unsigned 64-bit all the way
// into storage. Grid carries the original board text so a run is replayable
// without the source file.
type RunRow struct {
	RunID   string `parquet:"run_id,dict"`
	BoardID string `parquet:"board_id,dict"`
	Source  string `parquet:"source,dict"`

	Width   int32 `parquet:"width"`
	Height  int32 `parquet:"height"`
	Sheep   int32 `parquet:"sheep"`
	Blocked int32 `parquet:"blocked"`

	StaticReach int32  `parquet:"static_reach"`
	DriftReach  int32  `parquet:"drift_reach"`
	Outcomes    uint64 `parquet:"outcomes"`

	StaticDist int32 `parquet:"static_dist"`
	DriftDist  int32 `parquet:"drift_dist"`

	SolveNs      int64 `parquet:"solve_ns"`
	CacheEntries int64 `parquet:"cache_entries"`

	Grid      string `parquet:"grid,zstd"`
	CreatedNs int64  `parquet:"created_ns"`
}
