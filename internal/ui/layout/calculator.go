// Package layout provides pure functions for UI dimension calculations.
package layout

// Fixed heights of the chrome around the section body.
const (
	HeaderHeight    = 2 // title + tabs
	PlayerBarHeight = 3
	NoticeHeight    = 1
	HintHeight      = 1
)

// MinBodyHeight keeps sections drawable on tiny terminals.
const MinBodyHeight = 3

// BodyHeight returns the rows left for the active section.
func BodyHeight(windowHeight int) int {
	return max(windowHeight-HeaderHeight-PlayerBarHeight-NoticeHeight-HintHeight, MinBodyHeight)
}

// GridColumns returns how many cells of cellWidth fit in width, at least one.
func GridColumns(width, cellWidth int) int {
	if cellWidth <= 0 {
		return 1
	}
	return max(width/cellWidth, 1)
}

// GridRows returns the rows needed to lay out n cells in cols columns.
func GridRows(n, cols int) int {
	if n <= 0 || cols <= 0 {
		return 0
	}
	return (n + cols - 1) / cols
}

// VisibleRows returns how many rows of rowHeight fit in height, at least one.
func VisibleRows(height, rowHeight int) int {
	if rowHeight <= 0 {
		return 1
	}
	return max(height/rowHeight, 1)
}

// FirstRow returns the first grid row to draw so that the row holding
// cursor stays visible when only visible rows fit.
func FirstRow(cursor, cols, visible int) int {
	if cols <= 0 || visible <= 0 {
		return 0
	}
	return max(cursor/cols-visible+1, 0)
}

// CanvasSize returns the animation canvas size for a window. In
// fullscreen the canvas takes everything except a status line. Otherwise
// it fills the section body below chromeRows rows of controls.
func CanvasSize(windowWidth, windowHeight, chromeRows int, fullscreen bool) (int, int) {
	if fullscreen {
		return max(windowWidth, 1), max(windowHeight-1, 1)
	}
	return max(windowWidth, 1), max(BodyHeight(windowHeight)-chromeRows, MinBodyHeight)
}
