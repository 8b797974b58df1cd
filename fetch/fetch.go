// Package fetch discovers pursuit-game boards on puzzle pages. Boards are
// published as preformatted text blocks; the worker scrapes them, validates
// each grid, writes the text to disk, and records it in the board index so
// the next crawl skips it.
package fetch

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/woolgather/dragonhunt/game"
	"github.com/woolgather/dragonhunt/index"
)

// Config holds fetch worker configuration.
type Config struct {
	PageURLs     []string      // Pages to scrape for <pre> grids
	OutDir       string        // Directory for grid text files
	RequestDelay time.Duration // Delay between HTTP requests to be polite
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		OutDir:       "boards",
		RequestDelay: 500 * time.Millisecond,
	}
}

// Worker scrapes boards from configured pages.
type Worker struct {
	config Config
	client *http.Client
	known  map[string]bool
}

// NewWorker creates a fetch worker. existingIDs seeds the dedupe set,
// typically from index.KnownIDs.
func NewWorker(config Config, existingIDs map[string]bool) *Worker {
	if existingIDs == nil {
		existingIDs = make(map[string]bool)
	}
	return &Worker{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
		known:  existingIDs,
	}
}

// BoardID derives a stable content id for a grid: a truncated hex SHA-256
// of the normalized text.
func BoardID(grid string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(grid)))
	return hex.EncodeToString(sum[:])[:16]
}

// ExtractGrids pulls every valid board grid out of an HTML document:
// each <pre> block whose text parses as a board.
func ExtractGrids(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var grids []string
	doc.Find("pre").Each(func(_ int, sel *goquery.Selection) {
		text := normalizeGrid(sel.Text())
		if text == "" {
			return
		}
		if _, err := game.Parse(text); err != nil {
			return
		}
		grids = append(grids, text)
	})
	return grids, nil
}

// normalizeGrid strips surrounding whitespace and per-line indentation that
// page templates add around preformatted blocks.
func normalizeGrid(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// Run scrapes every configured page and stores new boards. It returns the
// number of boards added to the index.
func (w *Worker) Run(idx *index.DB) (int, error) {
	if err := os.MkdirAll(w.config.OutDir, 0o755); err != nil {
		return 0, fmt.Errorf("create out dir: %w", err)
	}

	added := 0
	for i, pageURL := range w.config.PageURLs {
		if i > 0 {
			time.Sleep(w.config.RequestDelay)
		}
		log.Printf("[Fetch] Scraping %s", pageURL)

		grids, err := w.fetchPage(pageURL)
		if err != nil {
			log.Printf("[Fetch] Error fetching %s: %v", pageURL, err)
			continue
		}
		log.Printf("[Fetch] Found %d grids on %s", len(grids), pageURL)

		for _, grid := range grids {
			id := BoardID(grid)
			if w.known[id] {
				continue
			}

			gridPath := filepath.Join(w.config.OutDir, id+".txt")
			if err := os.WriteFile(gridPath, []byte(grid+"\n"), 0o644); err != nil {
				return added, fmt.Errorf("write grid %s: %w", id, err)
			}
			if err := idx.InsertBoard(index.Board{
				ID:        id,
				SourceURL: pageURL,
				GridPath:  gridPath,
			}); err != nil {
				return added, err
			}
			w.known[id] = true
			added++
		}
	}
	return added, nil
}

func (w *Worker) fetchPage(pageURL string) ([]string, error) {
	resp, err := w.client.Get(pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return ExtractGrids(resp.Body)
}
