package loop

import (
	"testing"

	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/entity"
)

func testPickup() entity.Object {
	return entity.NewPickup(data.Item{Name: "Coin", Kind: data.ItemCoin, Value: 1}, 10, 10)
}

func TestRegistryAddGet(t *testing.T) {
	r := NewRegistry()
	a := testPickup()
	h := r.Add(a)
	got, ok := r.Get(h)
	if !ok || got != a {
		t.Fatalf("Get = %v, %v", got, ok)
	}
	if again := r.Add(a); again != h {
		t.Errorf("re-adding returned a new handle")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestRegistryHandlesGoStale(t *testing.T) {
	r := NewRegistry()
	a := testPickup()
	h := r.Add(a)
	r.Defer(h)
	removed := r.Sweep()
	if len(removed) != 1 || removed[0] != a {
		t.Fatalf("Sweep = %v", removed)
	}
	if _, ok := r.Get(h); ok {
		t.Fatal("handle still valid after removal")
	}

	// The freed slot is reused, but the old handle stays stale.
	b := testPickup()
	hb := r.Add(b)
	if hb.index != h.index {
		t.Errorf("slot not reused: %d vs %d", hb.index, h.index)
	}
	if got, ok := r.Get(h); ok {
		t.Errorf("stale handle resolved to %v", got)
	}
	if got, ok := r.Get(hb); !ok || got != b {
		t.Errorf("new handle broken")
	}
}

func TestRegistrySpawnIsQueued(t *testing.T) {
	r := NewRegistry()
	a := testPickup()
	r.Spawn(a)
	if r.Contains(a) || r.Len() != 0 {
		t.Fatal("spawned object visible before Flush")
	}
	added := r.Flush()
	if len(added) != 1 || !r.Contains(a) {
		t.Fatalf("Flush added %v", added)
	}
	if again := r.Flush(); len(again) != 0 {
		t.Errorf("second Flush added %d", len(again))
	}
}

func TestRegistryDeferredRemoval(t *testing.T) {
	r := NewRegistry()
	a, b := testPickup(), testPickup()
	r.Add(a)
	r.Add(b)

	r.DeferObject(a)
	r.DeferObject(a)
	if !r.Contains(a) {
		t.Fatal("removal applied before Sweep")
	}
	if removed := r.Sweep(); len(removed) != 1 {
		t.Fatalf("removed %d objects, want 1", len(removed))
	}
	objs := r.Objects(nil)
	if len(objs) != 1 || objs[0] != b {
		t.Errorf("Objects = %v", objs)
	}
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	h := r.Add(testPickup())
	r.Add(entity.NewMelee(0, 0, 0))
	r.Spawn(testPickup())

	if got := r.Count(entity.KindMonster); got != 1 {
		t.Errorf("Count(monster) = %d", got)
	}
	if cleared := r.Clear(); len(cleared) != 2 {
		t.Errorf("Clear returned %d", len(cleared))
	}
	if r.Len() != 0 || len(r.Flush()) != 0 {
		t.Error("registry not empty after Clear")
	}
	if _, ok := r.Get(h); ok {
		t.Error("handle survived Clear")
	}
}
