// playback is a terminal player for the reachability passes: it precomputes
// the wave frames for one board and steps through them interactively.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/woolgather/dragonhunt/game"
	"github.com/woolgather/dragonhunt/search"
)

func main() {
	boardPath := flag.String("board", "", "Path to a board grid file")
	mode := flag.String("mode", "static", "Analysis to replay: static or drift")
	dist := flag.Int("dist", 4, "Waves/ticks to explore")
	interval := flag.Duration("interval", 400*time.Millisecond, "Autoplay frame interval")
	flag.Parse()

	if *boardPath == "" {
		fmt.Fprintln(os.Stderr, "usage: playback -board board.txt [-mode static|drift] [-dist n]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	grid, err := os.ReadFile(*boardPath)
	if err != nil {
		log.Fatalf("Failed to read board: %v", err)
	}
	b, err := game.Parse(string(grid))
	if err != nil {
		log.Fatalf("Failed to parse board: %v", err)
	}

	var frames []search.Frame
	collect := func(f search.Frame) { frames = append(frames, f) }
	var reachable int
	switch *mode {
	case "static":
		reachable = search.StaticReach(b, *dist, collect)
	case "drift":
		reachable = search.DriftReach(b, *dist, collect)
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
	if len(frames) == 0 {
		log.Fatalf("No frames produced (dist=%d)", *dist)
	}

	m := model{
		board:     b,
		mode:      *mode,
		frames:    frames,
		reachable: reachable,
		interval:  *interval,
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("Playback failed: %v", err)
	}
}

type model struct {
	board     *game.Board
	mode      string
	frames    []search.Frame
	reachable int
	interval  time.Duration

	cursor  int
	playing bool
}

type tickMsg time.Time

func (m model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.playing = false
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			m.playing = false
			if m.cursor < len(m.frames)-1 {
				m.cursor++
			}
		case "0":
			m.playing = false
			m.cursor = 0
		case " ":
			m.playing = !m.playing
			if m.playing {
				return m, m.tickCmd()
			}
		}
	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.cursor < len(m.frames)-1 {
			m.cursor++
			return m, m.tickCmd()
		}
		m.playing = false
	}
	return m, nil
}

func (m model) View() string {
	f := m.frames[m.cursor]
	s := fmt.Sprintf("%s reach  wave %d/%d  caught %d (final %d)\n\n",
		m.mode, f.Wave, m.frames[len(m.frames)-1].Wave, f.Reachable, m.reachable)
	s += search.RenderFrame(m.board, f)
	s += "\n\n←/→ step · space autoplay · 0 rewind · q quit\n"
	return s
}
