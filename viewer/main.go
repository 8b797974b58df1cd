// The viewer serves solver results over a JSON API backed by DuckDB views
// over the parquet batches, plus a websocket endpoint that replays
// reachability searches live for the frontend.
package main

import (
	"flag"
	"log"
	"net/http"
	"strings"
	"time"
)

func main() {
	addr := flag.String("addr", ":8090", "Listen address")
	data := flag.String("data", "data", "Comma-separated parquet data roots")
	flag.Parse()

	roots := parseDataRoots(*data)
	log.Printf("Starting viewer on %s over %v", *addr, roots)

	srv := NewServer(roots)
	defer srv.dbCache.Close()

	mux := http.NewServeMux()
	srv.RegisterRoutes(mux)

	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := httpSrv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func parseDataRoots(csv string) []string {
	var roots []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			roots = append(roots, part)
		}
	}
	return roots
}
