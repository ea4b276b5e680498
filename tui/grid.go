// ABOUTME: Cursor movement over the wrapped palette button grid
// ABOUTME: Maps arrow-key moves to item indices for a given column count

package tui

// GridCursor tracks a highlighted item in a row-major wrapped grid
type GridCursor struct {
	columns int // Items per row, at least 1
	total   int // Total number of items
	pos     int // Current item index
}

// NewGridCursor creates a cursor over total items laid out in columns
func NewGridCursor(columns, total, pos int) *GridCursor {
	g := &GridCursor{total: total}
	g.SetColumns(columns)
	g.SetPos(pos)

	return g
}

// SetColumns updates the row width after a resize
func (g *GridCursor) SetColumns(columns int) {
	g.columns = max(columns, 1)
}

// SetPos moves the cursor, clamped to the grid
func (g *GridCursor) SetPos(pos int) {
	if g.total == 0 {
		g.pos = 0
		return
	}

	g.pos = min(max(pos, 0), g.total-1)
}

// Pos returns the current item index
func (g *GridCursor) Pos() int {
	return g.pos
}

// Columns returns the current row width
func (g *GridCursor) Columns() int {
	return g.columns
}

// Left moves one item back, wrapping to the end of the previous row
func (g *GridCursor) Left() {
	g.SetPos(g.pos - 1)
}

// Right moves one item forward, wrapping to the start of the next row
func (g *GridCursor) Right() {
	g.SetPos(g.pos + 1)
}

// Up moves one row up, staying put on the first row
func (g *GridCursor) Up() {
	if g.pos-g.columns >= 0 {
		g.pos -= g.columns
	}
}

// Down moves one row down; on a short last row it lands on the last item
func (g *GridCursor) Down() {
	next := g.pos + g.columns
	lastRowStart := (g.total - 1) / g.columns * g.columns

	switch {
	case next < g.total:
		g.pos = next
	case g.pos < lastRowStart:
		g.pos = g.total - 1
	}
}

// Rows returns the number of rows needed for all items
func (g *GridCursor) Rows() int {
	if g.total == 0 {
		return 0
	}

	return (g.total + g.columns - 1) / g.columns
}
