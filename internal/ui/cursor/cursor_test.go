package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		delta    int
		listLen  int
		expected int
	}{
		{"down", 0, 1, 5, 1},
		{"up", 2, -1, 5, 1},
		{"clamp top", 0, -3, 5, 0},
		{"clamp bottom", 4, 3, 5, 4},
		{"empty list", 0, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			c.Jump(tt.start, max(tt.listLen, 1), 10)
			c.Move(tt.delta, tt.listLen, 10)
			if c.Pos() != tt.expected {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.expected)
			}
		})
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	c := New(1)
	for range 8 {
		c.Move(1, 20, 5)
	}
	start, end := c.VisibleRange(20, 5)
	if c.Pos() < start || c.Pos() >= end {
		t.Errorf("cursor %d outside visible range [%d,%d)", c.Pos(), start, end)
	}
	if c.Pos() >= end-1 {
		t.Errorf("margin not honored: pos %d, end %d", c.Pos(), end)
	}

	c.Jump(0, 20, 5)
	if c.Offset() != 0 {
		t.Errorf("Offset() = %d after jumping to top", c.Offset())
	}
}

func TestMoveGrid(t *testing.T) {
	// 3 columns, 7 items:
	// 0 1 2
	// 3 4 5
	// 6
	tests := []struct {
		name   string
		start  int
		dx, dy int
		want   int
	}{
		{"right", 0, 1, 0, 1},
		{"right stops at row end", 2, 1, 0, 2},
		{"left stops at row start", 3, -1, 0, 3},
		{"down keeps column", 1, 0, 1, 4},
		{"down to partial row", 3, 0, 1, 6},
		{"down into missing cell", 4, 0, 1, 4},
		{"up", 5, 0, -1, 2},
		{"up from first row", 1, 0, -1, 1},
		{"right into missing cell", 6, 1, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(0)
			c.Jump(tt.start, 7, 0)
			c.MoveGrid(tt.dx, tt.dy, 3, 7)
			if c.Pos() != tt.want {
				t.Errorf("Pos() = %d, want %d", c.Pos(), tt.want)
			}
		})
	}
}

func TestClampToBounds(t *testing.T) {
	c := New(0)
	c.Jump(4, 5, 10)

	if !c.ClampToBounds(3) || c.Pos() != 2 {
		t.Errorf("after shrink Pos() = %d, want 2", c.Pos())
	}
	if c.ClampToBounds(3) {
		t.Error("second clamp should report no change")
	}
	if !c.ClampToBounds(0) || c.Pos() != 0 {
		t.Errorf("empty list Pos() = %d", c.Pos())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	if s, e := c.VisibleRange(0, 5); s != 0 || e != 0 {
		t.Errorf("empty = [%d,%d)", s, e)
	}
	if s, e := c.VisibleRange(3, 5); s != 0 || e != 3 {
		t.Errorf("short list = [%d,%d)", s, e)
	}
	c.Reset()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Error("Reset should zero the cursor")
	}
}
