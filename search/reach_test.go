package search

import (
	"testing"
)

const flockOpen = "" +
	"...SSS.......\n" +
	".S......S.SS.\n" +
	"..S....S...S.\n" +
	"..........SS.\n" +
	"..SSSS...S...\n" +
	".....SS..S..S\n" +
	"SS....D.S....\n" +
	"S.S..S..S....\n" +
	"....S.......S\n" +
	".SSS..SS.....\n" +
	".........S...\n" +
	".......S....S\n" +
	"SS.....S..S.."

const flockWalled = "" +
	"...SSS##.....\n" +
	".S#.##..S#SS.\n" +
	"..S.##.S#..S.\n" +
	".#..#S##..SS.\n" +
	"..SSSS.#.S.#.\n" +
	".##..SS.#S.#S\n" +
	"SS##.#D.S.#..\n" +
	"S.S..S..S###.\n" +
	".##.S#.#....S\n" +
	".SSS.#SS..##.\n" +
	"..#.##...S##.\n" +
	".#...#.S#...S\n" +
	"SS...#.S.#S.."

func TestStaticReach(t *testing.T) {
	b := mustParse(t, flockOpen)
	if got := StaticReach(b, 3, nil); got != 27 {
		t.Errorf("StaticReach = %d, want 27", got)
	}
}

func TestDriftReach(t *testing.T) {
	b := mustParse(t, flockWalled)
	if got := DriftReach(b, 3, nil); got != 27 {
		t.Errorf("DriftReach = %d, want 27", got)
	}
}

func TestStaticReachFrames(t *testing.T) {
	b := mustParse(t, flockOpen)
	var frames []Frame
	total := StaticReach(b, 3, func(f Frame) { frames = append(frames, f) })

	if len(frames) != 4 {
		t.Fatalf("got %d frames, want 4 (waves 0..3)", len(frames))
	}
	for i, f := range frames {
		if f.Wave != i {
			t.Errorf("frame %d has wave %d", i, f.Wave)
		}
		if len(f.Visited) != b.Width*b.Height {
			t.Errorf("frame %d visited len = %d, want %d", i, len(f.Visited), b.Width*b.Height)
		}
	}
	last := frames[len(frames)-1]
	if last.Reachable != total {
		t.Errorf("final frame reachable = %d, want %d", last.Reachable, total)
	}
	if len(last.Captured) != total {
		t.Errorf("final frame captured %d cells, want %d", len(last.Captured), total)
	}

	// Reachable totals grow monotonically with the wavefront.
	for i := 1; i < len(frames); i++ {
		if frames[i].Reachable < frames[i-1].Reachable {
			t.Errorf("reachable shrank between wave %d and %d", i-1, i)
		}
	}
}

func TestDriftReachFrames(t *testing.T) {
	b := mustParse(t, flockWalled)
	var frames []Frame
	DriftReach(b, 3, func(f Frame) { frames = append(frames, f) })
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3 (ticks 0..2)", len(frames))
	}
}

func TestRenderFrameShape(t *testing.T) {
	b := mustParse(t, boardOpen)
	var last Frame
	StaticReach(b, 2, func(f Frame) { last = f })
	out := RenderFrame(b, last)
	lines := 1
	for _, ch := range out {
		if ch == '\n' {
			lines++
		}
	}
	if lines != b.Height {
		t.Errorf("rendered %d lines, want %d:\n%s", lines, b.Height, out)
	}
}
