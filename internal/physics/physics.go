// Package physics provides bounding-box intersection and movement helpers.
package physics

import "math"

// Rect is an axis-aligned bounding box. X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether r lies entirely inside o.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// Center returns the box midpoint.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// StepToward returns the displacement that moves speed units from (x, y)
// toward (tx, ty). The direction is normalised so the step length does not
// depend on the heading. A zero distance yields no movement.
func StepToward(x, y, tx, ty, speed float64) (dx, dy float64) {
	ox := tx - x
	oy := ty - y
	mag := math.Sqrt(ox*ox + oy*oy)
	if mag == 0 {
		return 0, 0
	}
	return speed * ox / mag, speed * oy / mag
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
