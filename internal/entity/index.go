package entity

import (
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/physics"
)

// Index is a broad-phase lookup over the objects of one update pass.
type Index struct {
	grid    *physics.SpatialGrid
	objects []Object
}

// NewIndex creates an empty index covering the arena.
func NewIndex() *Index {
	return &Index{
		grid: physics.NewSpatialGrid(config.ArenaWidth, config.ArenaHeight, config.GridCellSize),
	}
}

// Rebuild indexes objects by their centres. The slice is kept, not copied.
func (ix *Index) Rebuild(objects []Object) {
	ix.grid.Clear()
	ix.objects = objects
	for i, obj := range objects {
		cx, cy := obj.Bounds().Center()
		ix.grid.Insert(cx, cy, i)
	}
}

// Query calls fn for every indexed object overlapping r until fn returns
// true.
func (ix *Index) Query(r physics.Rect, fn func(Object) bool) {
	ix.grid.QueryRect(r, func(i int) bool {
		obj := ix.objects[i]
		if !r.Intersects(obj.Bounds()) {
			return false
		}
		return fn(obj)
	})
}

// Nearby calls fn for every live object of the pass overlapping r until fn
// returns true. Without an index it scans every object.
func (ctx UpdateContext) Nearby(r physics.Rect, fn func(Object) bool) {
	if ctx.Index != nil {
		ctx.Index.Query(r, fn)
		return
	}
	for _, obj := range ctx.Objects {
		if r.Intersects(obj.Bounds()) && fn(obj) {
			return
		}
	}
}
