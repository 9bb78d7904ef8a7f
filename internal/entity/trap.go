package entity

import (
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/draw"
)

// Trap is a spike plate that hurts the player while they stand on it.
type Trap struct {
	Body
	Power    float64
	Cooldown int
	Sprung   bool // Set the first time the trap hurts someone
}

// NewTrap creates a trap at (x, y) scaled for the difficulty code.
func NewTrap(x, y float64, difficulty int) *Trap {
	if difficulty < 0 {
		difficulty = 0
	}
	return &Trap{
		Body:  Body{X: x, Y: y, W: config.TrapSize, H: config.TrapSize},
		Power: config.TrapDamage * (1 + config.DifficultyScale*float64(difficulty)),
	}
}

func (t *Trap) Kind() Kind { return KindTrap }

func (t *Trap) Update(ctx UpdateContext) (bool, error) {
	if t.Cooldown > 0 {
		t.Cooldown--
		return false, nil
	}
	p := ctx.Player
	if p == nil || !t.Intersects(p) {
		return false, nil
	}
	t.Cooldown = config.TrapCooldown
	if !p.Hurt(t.Power) {
		return false, nil
	}
	ctx.emit(Event{Type: EventPlayerHit, Source: t, Amount: t.Power})
	if !t.Sprung {
		t.Sprung = true
		ctx.emit(Event{Type: EventTrapSprung, Source: t})
	}
	return false, nil
}

// Draw renders the spikes as a row of small triangles.
func (t *Trap) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	c.DrawRect(t.X, t.Y, t.W, t.H, false)
	const spikes = 3
	w := t.W / spikes
	for i := 0; i < spikes; i++ {
		x := t.X + float64(i)*w
		c.DrawLine(draw.Point{X: x, Y: t.Y + t.H}, draw.Point{X: x + w/2, Y: t.Y})
		c.DrawLine(draw.Point{X: x + w/2, Y: t.Y}, draw.Point{X: x + w, Y: t.Y + t.H})
	}
	return nil
}
