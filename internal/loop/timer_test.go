package loop

import (
	"reflect"
	"testing"
)

func TestTimerGroupOrder(t *testing.T) {
	g := NewTimerGroup()
	var fired []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		g.Add(name, 1, func() { fired = append(fired, name) })
	}

	g.Tick()
	if len(fired) != 0 {
		t.Fatal("stopped group fired")
	}

	g.StartAll()
	g.Tick()
	g.Tick()
	want := []string{"a", "b", "c", "a", "b", "c"}
	if !reflect.DeepEqual(fired, want) {
		t.Errorf("fired %v, want %v", fired, want)
	}
}

func TestTimerGroupPeriods(t *testing.T) {
	g := NewTimerGroup()
	every := g.Add("every", 1, func() {})
	third := g.Add("third", 3, func() {})
	zero := g.Add("zero", 0, func() {})
	g.StartAll()
	for i := 0; i < 9; i++ {
		g.Tick()
	}
	if every.Runs() != 9 || third.Runs() != 3 || zero.Runs() != 9 {
		t.Errorf("runs = %d, %d, %d", every.Runs(), third.Runs(), zero.Runs())
	}
	if g.Ticks() != 9 {
		t.Errorf("ticks = %d", g.Ticks())
	}
}

func TestTimerGroupStopAllIdempotent(t *testing.T) {
	g := NewTimerGroup()
	g.Add("a", 1, func() {})
	g.StartAll()
	g.StopAll()
	g.StopAll()
	if g.Running() {
		t.Error("group still running")
	}
	g.Tick()
	if g.Timers()[0].Runs() != 0 {
		t.Error("stopped timer fired")
	}
}

func TestTimerStoppingMidTick(t *testing.T) {
	g := NewTimerGroup()
	later := false
	g.Add("stopper", 1, g.StopAll)
	g.Add("later", 1, func() { later = true })
	g.StartAll()
	g.Tick()
	if later {
		t.Error("timer after StopAll still fired")
	}
}
