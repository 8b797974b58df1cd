// hunt solves pursuit-game boards: for each grid file it runs the static
// and drifting reachability passes and the full outcome count, then writes
// one parquet row per board and records the board in the solved log.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/woolgather/dragonhunt/fetch"
	"github.com/woolgather/dragonhunt/game"
	"github.com/woolgather/dragonhunt/logging"
	"github.com/woolgather/dragonhunt/search"
	"github.com/woolgather/dragonhunt/store"
)

func main() {
	outDir := flag.String("out-dir", getEnvOrDefault("OUT_DIR", "data"), "Directory to write batch .parquet files")
	logPath := flag.String("log-path", getEnvOrDefault("SOLVED_LOG", "data/solved.log"), "Append-only log of boards already solved")
	staticDist := flag.Int("static-dist", getEnvIntOrDefault("STATIC_DIST", 4), "Waves for the static reachability pass")
	driftDist := flag.Int("drift-dist", getEnvIntOrDefault("DRIFT_DIST", 20), "Ticks for the drifting reachability pass")
	source := flag.String("source", "local", "Source label recorded with each run")
	force := flag.Bool("force", false, "Re-solve boards already in the solved log")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(logging.NewHandler(os.Stderr, level))

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hunt [flags] board.txt [board.txt ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	solved, err := store.OpenSolvedLog(*logPath)
	if err != nil {
		logger.Error("open solved log", "err", err)
		os.Exit(1)
	}
	defer solved.Close()

	writer, err := store.NewBatchWriter(*outDir)
	if err != nil {
		logger.Error("open batch writer", "err", err)
		os.Exit(1)
	}

	logger.Info("starting hunt",
		"boards", len(files),
		"out_dir", *outDir,
		"already_solved", solved.Count(),
	)

	failed := 0
	for _, path := range files {
		if err := solveOne(logger, writer, solved, path, *source, *staticDist, *driftDist, *force); err != nil {
			logger.Error("solve failed", "board", path, "err", err)
			failed++
		}
	}

	outPath, rows, err := writer.Finalize()
	if err != nil {
		logger.Error("finalize batch", "err", err)
		os.Exit(1)
	}
	logger.Info("hunt complete", "rows", rows, "out", outPath, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func solveOne(logger *slog.Logger, writer *store.BatchWriter, solved *store.SolvedLog,
	path, source string, staticDist, driftDist int, force bool) error {

	grid, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	b, err := game.Parse(string(grid))
	if err != nil {
		return fmt.Errorf("parse board: %w", err)
	}

	boardID := fetch.BoardID(string(grid))
	if !force && solved.Has(boardID) {
		logger.Debug("skipping solved board", "board", path, "board_id", boardID)
		return nil
	}

	sheep, blocked := 0, 0
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			pos := game.Pos{Row: uint8(r), Col: uint8(c)}
			if b.HasSheepAt(pos) {
				sheep++
			}
			if b.IsBlocked(pos) {
				blocked++
			}
		}
	}

	staticReach := search.StaticReach(b, staticDist, nil)
	driftReach := search.DriftReach(b, driftDist, nil)

	counter := search.NewCounter(b)
	start := time.Now()
	outcomes := counter.Count()
	solveDur := time.Since(start)

	logger.Info("board solved",
		"board", path,
		"board_id", boardID,
		"size", strconv.Itoa(b.Width)+"x"+strconv.Itoa(b.Height),
		"sheep", sheep,
		"static_reach", staticReach,
		"drift_reach", driftReach,
		"outcomes", outcomes,
		"solve", solveDur.String(),
		"cache_entries", counter.CacheSize(),
	)

	row := store.RunRow{
		RunID:        uuid.NewString(),
		BoardID:      boardID,
		Source:       source,
		Width:        int32(b.Width),
		Height:       int32(b.Height),
		Sheep:        int32(sheep),
		Blocked:      int32(blocked),
		StaticReach:  int32(staticReach),
		DriftReach:   int32(driftReach),
		Outcomes:     outcomes,
		StaticDist:   int32(staticDist),
		DriftDist:    int32(driftDist),
		SolveNs:      solveDur.Nanoseconds(),
		CacheEntries: int64(counter.CacheSize()),
		Grid:         string(grid),
		CreatedNs:    time.Now().UnixNano(),
	}
	if err := writer.WriteRows([]store.RunRow{row}); err != nil {
		return fmt.Errorf("write run row: %w", err)
	}
	return solved.Add(boardID)
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
