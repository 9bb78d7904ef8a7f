package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection in a
// bounded room. Items are inserted by centre point and index. A query
// visits every item whose centre lies within one cell of the query box, so
// the cell size must be at least the largest half-extent of any item.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of objects that fall within a grid cell.
// The slice is reused between passes (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given world dimensions.
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(worldW / cellSize))
	rows := int(math.Ceil(worldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
// Positions outside the world land in the nearest edge cell.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryRect calls fn for each item that may overlap r. Each item is visited
// at most once. If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryRect(r Rect, fn func(index int) bool) {
	c0, r0 := g.posToCell(r.X-g.cellSize, r.Y-g.cellSize)
	c1, r1 := g.posToCell(r.X+r.W+g.cellSize, r.Y+r.H+g.cellSize)

	for row := r0; row <= r1; row++ {
		rowOffset := row * g.cols
		for col := c0; col <= c1; col++ {
			for _, itemIdx := range g.cells[rowOffset+col].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates.
// Clamps to valid range to handle edge cases with floating point.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
