package layout

import "testing"

func TestBodyHeight(t *testing.T) {
	tests := []struct {
		name   string
		height int
		want   int
	}{
		{"regular", 30, 23},
		{"exact chrome", 7, MinBodyHeight},
		{"tiny", 2, MinBodyHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BodyHeight(tt.height); got != tt.want {
				t.Errorf("BodyHeight(%d) = %d, want %d", tt.height, got, tt.want)
			}
		})
	}
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width, cell, want int
	}{
		{100, 28, 3},
		{20, 28, 1},
		{56, 28, 2},
		{80, 0, 1},
	}
	for _, tt := range tests {
		if got := GridColumns(tt.width, tt.cell); got != tt.want {
			t.Errorf("GridColumns(%d, %d) = %d, want %d", tt.width, tt.cell, got, tt.want)
		}
	}
}

func TestGridRows(t *testing.T) {
	tests := []struct {
		n, cols, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{8, 0, 0},
	}
	for _, tt := range tests {
		if got := GridRows(tt.n, tt.cols); got != tt.want {
			t.Errorf("GridRows(%d, %d) = %d, want %d", tt.n, tt.cols, got, tt.want)
		}
	}
}

func TestVisibleRows(t *testing.T) {
	if got := VisibleRows(23, 5); got != 4 {
		t.Errorf("VisibleRows(23, 5) = %d, want 4", got)
	}
	if got := VisibleRows(2, 5); got != 1 {
		t.Errorf("VisibleRows(2, 5) = %d, want 1", got)
	}
}

func TestFirstRow(t *testing.T) {
	tests := []struct {
		name                  string
		cursor, cols, visible int
		want                  int
	}{
		{"top", 0, 3, 2, 0},
		{"second visible row", 4, 3, 2, 0},
		{"scrolled", 7, 3, 2, 1},
		{"far down", 13, 3, 2, 3},
		{"no columns", 5, 0, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstRow(tt.cursor, tt.cols, tt.visible); got != tt.want {
				t.Errorf("FirstRow = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCanvasSize(t *testing.T) {
	w, h := CanvasSize(100, 30, 7, false)
	if w != 100 || h != 16 {
		t.Errorf("windowed canvas = %dx%d, want 100x16", w, h)
	}
	w, h = CanvasSize(100, 30, 7, true)
	if w != 100 || h != 29 {
		t.Errorf("fullscreen canvas = %dx%d, want 100x29", w, h)
	}
	_, h = CanvasSize(100, 10, 7, false)
	if h != MinBodyHeight {
		t.Errorf("small canvas height = %d, want %d", h, MinBodyHeight)
	}
}
