package fetch

import (
	"strings"
	"testing"
)

const page = `<html><body>
<h1>Puzzle of the day</h1>
<p>Herd the flock:</p>
<pre>
  ..S..
  .....
  ..#..
  .....
  ..D..
</pre>
<pre>not a board at all</pre>
<pre>
SSS
..#
#.#
#D.
</pre>
<pre><code>fmt.Println("unrelated snippet")</code></pre>
</body></html>`

func TestExtractGrids(t *testing.T) {
	grids, err := ExtractGrids(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ExtractGrids failed: %v", err)
	}
	if len(grids) != 2 {
		t.Fatalf("extracted %d grids, want 2:\n%v", len(grids), grids)
	}
	if !strings.HasPrefix(grids[0], "..S..") {
		t.Errorf("first grid not normalized:\n%s", grids[0])
	}
	if grids[1] != "SSS\n..#\n#.#\n#D." {
		t.Errorf("second grid mismatch:\n%s", grids[1])
	}
}

func TestExtractGridsEmptyPage(t *testing.T) {
	grids, err := ExtractGrids(strings.NewReader("<html><body><p>nothing</p></body></html>"))
	if err != nil {
		t.Fatalf("ExtractGrids failed: %v", err)
	}
	if len(grids) != 0 {
		t.Errorf("extracted %d grids from empty page", len(grids))
	}
}

func TestBoardIDStable(t *testing.T) {
	a := BoardID("..S\n.D.")
	b := BoardID("..S\n.D.\n")
	if a != b {
		t.Errorf("trailing newline changed id: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("id length = %d, want 16", len(a))
	}
	if a == BoardID(".S.\n.D.") {
		t.Errorf("distinct grids share an id")
	}
}
