package visuals

import "github.com/lucasb-eyer/go-colorful"

// Cell is one character of a frame. A zero Rune is empty.
type Cell struct {
	Rune  rune
	Color colorful.Color
	Alpha float64
}

// Frame is a rendered animation step, row-major.
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
	// Label is a caption to show under the animation, if any.
	Label string
}

func newFrame(w, h int) Frame {
	return Frame{Width: w, Height: h, Cells: make([]Cell, w*h)}
}

// At returns the cell at x, y. Out of range positions are empty.
func (f Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Cell{}
	}
	return f.Cells[y*f.Width+x]
}

// Filled counts non-empty cells.
func (f Frame) Filled() int {
	n := 0
	for _, c := range f.Cells {
		if c.Rune != 0 {
			n++
		}
	}
	return n
}

// set writes a cell at float coordinates. Brighter cells win when two
// particles land on the same position.
func (f Frame) set(x, y float64, r rune, col colorful.Color, alpha float64) {
	ix, iy := int(x), int(y)
	if x < 0 || y < 0 || ix >= f.Width || iy >= f.Height {
		return
	}
	c := &f.Cells[iy*f.Width+ix]
	if c.Rune != 0 && c.Alpha > alpha {
		return
	}
	*c = Cell{Rune: r, Color: col, Alpha: alpha}
}
