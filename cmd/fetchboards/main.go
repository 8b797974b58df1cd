// fetchboards crawls puzzle pages for board grids and files new ones into
// the board index for hunt to work through.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/woolgather/dragonhunt/fetch"
	"github.com/woolgather/dragonhunt/index"
)

func main() {
	pages := flag.String("pages", "", "Comma-separated puzzle page URLs")
	outDir := flag.String("out-dir", "boards", "Directory for fetched grid files")
	dbPath := flag.String("db", "boards/index.db", "Board index database")
	delay := flag.Duration("delay", 500*time.Millisecond, "Delay between HTTP requests")
	flag.Parse()

	pageURLs := splitCSV(*pages)
	if len(pageURLs) == 0 {
		log.Fatal("at least one page URL is required (-pages)")
	}

	idx, err := index.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open index: %v", err)
	}
	defer idx.Close()

	known, err := idx.KnownIDs()
	if err != nil {
		log.Fatalf("Failed to load known boards: %v", err)
	}
	log.Printf("Loaded %d existing board IDs", len(known))

	cfg := fetch.DefaultConfig()
	cfg.PageURLs = pageURLs
	cfg.OutDir = *outDir
	cfg.RequestDelay = *delay

	worker := fetch.NewWorker(cfg, known)
	added, err := worker.Run(idx)
	if err != nil {
		log.Fatalf("Fetch failed after %d boards: %v", added, err)
	}
	log.Printf("Fetch complete: %d new boards", added)
}

func splitCSV(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
