package loop

// Timer runs a function every Every ticks while its group is running.
type Timer struct {
	Name  string
	Every uint64
	fn    func()
	runs  uint64
}

// Runs returns how many times the timer has fired.
func (t *Timer) Runs() uint64 {
	return t.runs
}

// TimerGroup drives a fixed, ordered set of timers from a single tick. The
// whole group starts and stops together.
type TimerGroup struct {
	timers  []*Timer
	tick    uint64
	running bool
}

// NewTimerGroup creates a stopped, empty group.
func NewTimerGroup() *TimerGroup {
	return &TimerGroup{}
}

// Add appends a timer. Timers fire in the order they were added. A period
// of zero is treated as one.
func (g *TimerGroup) Add(name string, every uint64, fn func()) *Timer {
	if every == 0 {
		every = 1
	}
	t := &Timer{Name: name, Every: every, fn: fn}
	g.timers = append(g.timers, t)
	return t
}

// StartAll starts every timer.
func (g *TimerGroup) StartAll() {
	g.running = true
}

// StopAll stops every timer. Stopping a stopped group does nothing.
func (g *TimerGroup) StopAll() {
	g.running = false
}

// Running reports whether the group is started.
func (g *TimerGroup) Running() bool {
	return g.running
}

// Timers returns the timers in firing order.
func (g *TimerGroup) Timers() []*Timer {
	return g.timers
}

// Tick advances the clock by one tick and fires due timers in order. A
// timer that stops the group prevents the ones after it from firing.
func (g *TimerGroup) Tick() {
	if !g.running {
		return
	}
	g.tick++
	for _, t := range g.timers {
		if !g.running {
			return
		}
		if g.tick%t.Every == 0 {
			t.runs++
			t.fn()
		}
	}
}

// Ticks returns how many ticks the group has run.
func (g *TimerGroup) Ticks() uint64 {
	return g.tick
}
