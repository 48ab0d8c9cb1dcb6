package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	if w, h := c.Size(); w != 8 || h != 8 {
		t.Fatalf("expected 8x8 sub-pixels, got %dx%d", w, h)
	}

	c.Set(0, 0)
	c.Set(1, 3)
	if got := c.Grid[0][0]; got != blank|0x1|0x80 {
		t.Errorf("unexpected cell %U", got)
	}

	c.Unset(0, 0)
	if got := c.Grid[0][0]; got != blank|0x80 {
		t.Errorf("unset failed: %U", got)
	}

	c.Set(-1, 2)
	c.Set(100, 100)

	c.Clear()
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != blank && r != '\n' }) {
		t.Error("clear should leave only blank cells")
	}
}

func TestCanvasLineAndCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Line(0, 0, 19, 19)
	if c.Grid[0][0] == blank || c.Grid[4][9] == blank {
		t.Error("diagonal should touch both corners")
	}

	c.Clear()
	c.Circle(10, 10, 3, true)
	if c.Grid[10/4][10/2] == blank {
		t.Error("filled circle should cover its centre")
	}
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(6, 2)
	c.Set(0, 0)
	c.Text(2, 4, "Time: 1.0s")

	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if got := []rune(lines[1]); string(got[1:]) != "Time:" {
		t.Errorf("expected clipped text in row 1, got %q", lines[1])
	}
	if []rune(lines[0])[0] != blank|0x1 {
		t.Error("text layer must not disturb other rows")
	}
}
