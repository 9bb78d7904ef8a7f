package entity

import (
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/draw"
)

// Melee is a skeleton that walks straight at the player and hits on contact.
type Melee struct {
	Monster
	Cooldown int
}

// NewMelee creates a skeleton at (x, y) scaled for the difficulty code.
func NewMelee(x, y float64, difficulty int) *Melee {
	return &Melee{Monster: newMonster(SkeletonStats.Scaled(difficulty), x, y)}
}

func (m *Melee) Update(ctx UpdateContext) (bool, error) {
	if !m.Alive() {
		return false, nil
	}
	if m.Cooldown > 0 {
		m.Cooldown--
	}
	m.chase(ctx.Player, ctx.Arena)
	contactAttack(ctx, m, &m.Monster, &m.Cooldown, config.MeleeAttackCooldown)
	return false, nil
}

// contactAttack hurts the player when the monster touches them and its
// cooldown has run out.
func contactAttack(ctx UpdateContext, src Object, m *Monster, cooldown *int, reset int) {
	p := ctx.Player
	if p == nil || *cooldown > 0 || !m.Intersects(p) {
		return
	}
	*cooldown = reset
	if p.Hurt(m.Power) {
		ctx.emit(Event{Type: EventPlayerHit, Source: src, Amount: m.Power})
	}
}

// Draw renders a skeleton as a box with crossed ribs.
func (m *Melee) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	c.DrawRect(m.X, m.Y, m.W, m.H, false)
	c.DrawLine(draw.Point{X: m.X, Y: m.Y}, draw.Point{X: m.X + m.W, Y: m.Y + m.H})
	c.DrawLine(draw.Point{X: m.X + m.W, Y: m.Y}, draw.Point{X: m.X, Y: m.Y + m.H})
	m.drawHealthBar(c)
	return nil
}
