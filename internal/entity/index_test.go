package entity

import (
	"testing"

	"github.com/tomz197/mythbusters/internal/physics"
)

func TestIndexQuery(t *testing.T) {
	near := NewMelee(100, 100, 0)
	far := NewMelee(1000, 600, 0)
	boss := NewBoss(300, 300, 0, nil)
	objects := []Object{near, far, boss}

	ix := NewIndex()
	ix.Rebuild(objects)

	tests := []struct {
		name string
		r    physics.Rect
		want []Object
	}{
		{"single", physics.Rect{X: 90, Y: 90, W: 20, H: 20}, []Object{near}},
		{"large body edge", physics.Rect{X: 405, Y: 405, W: 10, H: 10}, []Object{boss}},
		{"empty space", physics.Rect{X: 700, Y: 100, W: 10, H: 10}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Object
			ix.Query(tt.r, func(obj Object) bool {
				got = append(got, obj)
				return false
			})
			if len(got) != len(tt.want) {
				t.Fatalf("got %d objects, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("object %d differs", i)
				}
			}
		})
	}
}

func TestNearbyIndexedMatchesScan(t *testing.T) {
	a := NewMelee(100, 100, 0)
	b := NewMelee(130, 110, 0)
	c := NewMelee(900, 500, 0)
	objects := []Object{a, b, c}
	r := physics.Rect{X: 120, Y: 120, W: 30, H: 30}

	count := func(ctx UpdateContext) int {
		n := 0
		ctx.Nearby(r, func(Object) bool {
			n++
			return false
		})
		return n
	}

	ctx, _ := newTestContext(nil, nil, objects...)
	scanned := count(ctx)
	ctx.Index = NewIndex()
	ctx.Index.Rebuild(objects)
	if indexed := count(ctx); indexed != scanned || scanned != 2 {
		t.Errorf("indexed %d, scanned %d, want 2", indexed, scanned)
	}
}
