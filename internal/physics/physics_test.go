package physics

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"overlap x only", Rect{X: 5, Y: 30, W: 10, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.o); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.o.Intersects(base); got != tt.want {
				t.Errorf("symmetric Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{W: 100, H: 100}
	if !outer.Contains(Rect{X: 10, Y: 10, W: 20, H: 20}) {
		t.Error("expected inner rect to be contained")
	}
	if outer.Contains(Rect{X: 90, Y: 10, W: 20, H: 20}) {
		t.Error("rect crossing the edge must not be contained")
	}
}

func TestStepTowardKeepsSpeedConstant(t *testing.T) {
	headings := [][2]float64{{100, 0}, {0, -50}, {30, 40}, {-7, 24}}
	for _, h := range headings {
		dx, dy := StepToward(0, 0, h[0], h[1], 5)
		if got := math.Hypot(dx, dy); math.Abs(got-5) > 1e-9 {
			t.Errorf("step toward %v has length %f, want 5", h, got)
		}
	}
	if dx, dy := StepToward(3, 3, 3, 3, 5); dx != 0 || dy != 0 {
		t.Errorf("zero distance step = (%f, %f), want (0, 0)", dx, dy)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance = %f, want 5", d)
	}
	if d := DistanceSquared(0, 0, 3, 4); d != 25 {
		t.Errorf("DistanceSquared = %f, want 25", d)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned out-of-range value")
	}
}

func TestSpatialGridQueryRect(t *testing.T) {
	g := NewSpatialGrid(1000, 600, 100)
	points := []struct{ x, y float64 }{
		{50, 50},   // 0: near the query
		{150, 120}, // 1: adjacent cell
		{900, 500}, // 2: far away
		{-20, 700}, // 3: clamped into the bottom-left cell
	}
	for i, p := range points {
		g.Insert(p.x, p.y, i)
	}

	seen := map[int]int{}
	g.QueryRect(Rect{X: 60, Y: 60, W: 20, H: 20}, func(i int) bool {
		seen[i]++
		return false
	})
	if seen[0] != 1 || seen[1] != 1 {
		t.Errorf("nearby items missed or repeated: %v", seen)
	}
	if seen[2] != 0 {
		t.Error("far item visited")
	}

	var corner []int
	g.QueryRect(Rect{X: 0, Y: 550, W: 10, H: 10}, func(i int) bool {
		corner = append(corner, i)
		return false
	})
	if len(corner) != 1 || corner[0] != 3 {
		t.Errorf("corner query = %v, want [3]", corner)
	}

	calls := 0
	g.QueryRect(Rect{X: 0, Y: 0, W: 1000, H: 600}, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Errorf("early stop made %d calls", calls)
	}

	g.Clear()
	g.QueryRect(Rect{X: 0, Y: 0, W: 1000, H: 600}, func(int) bool {
		t.Error("item survived Clear")
		return true
	})
}
