package render

import (
	"strings"
	"testing"

	"github.com/cubetools/cubecross"
)

func TestNetPlainMatchesPuzzleString(t *testing.T) {
	p := cubecross.New()
	if got := Net(p, false); got != p.String() {
		t.Errorf("plain net should be the puzzle's own rendering:\n%s", got)
	}
}

func TestNetColorShowsEveryFace(t *testing.T) {
	p := cubecross.New()
	out := Net(p, true)
	if lines := strings.Count(out, "\n"); lines != 9 {
		t.Errorf("net has %d lines, want 9", lines)
	}
	for _, initial := range []string{"W", "Y", "G", "B", "O", "R"} {
		if !strings.Contains(out, initial) {
			t.Errorf("net is missing %s stickers", initial)
		}
	}
}

func TestCrossStatus(t *testing.T) {
	p := cubecross.New()
	status := CrossStatus(p, cubecross.White)
	if !strings.Contains(status, "complete") {
		t.Errorf("solved puzzle should report a complete cross, got %q", status)
	}

	if err := p.ApplyNotation("R2 F2"); err != nil {
		t.Fatalf("scramble: %v", err)
	}
	status = CrossStatus(p, cubecross.White)
	if strings.Contains(status, "complete") {
		t.Errorf("broken cross reported complete: %q", status)
	}
	if !strings.Contains(status, "2/4") {
		t.Errorf("R2 F2 breaks exactly two edges, got %q", status)
	}
}
