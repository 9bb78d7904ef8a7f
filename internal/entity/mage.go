package entity

import (
	"math/rand"

	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/draw"
)

// Mage wanders to a random spot, waits out its cooldown there and then
// throws a fireball at the player before picking the next spot.
type Mage struct {
	Monster
	TargetX, TargetY float64
	Cooldown         int
}

// NewMage creates a mage at (x, y) heading for a random spot in the arena.
func NewMage(x, y float64, difficulty int, rng *rand.Rand) *Mage {
	m := &Mage{
		Monster:  newMonster(MageStats.Scaled(difficulty), x, y),
		Cooldown: config.MageInitialCooldown,
	}
	m.TargetX, m.TargetY = m.randomTarget(rng, Arena())
	return m
}

func (m *Mage) Update(ctx UpdateContext) (bool, error) {
	if !m.Alive() {
		return false, nil
	}
	if !m.inPosition(m.TargetX, m.TargetY) {
		m.walkToward(m.TargetX, m.TargetY)
		return false, nil
	}
	if m.Cooldown > 0 {
		m.Cooldown--
		return false, nil
	}

	m.fire(ctx)
	m.Cooldown = config.MageFireballCooldown
	m.TargetX, m.TargetY = m.randomTarget(ctx.Rand, ctx.Arena)
	return false, nil
}

// fire throws one fireball from the mage's top-left corner toward the
// player.
func (m *Mage) fire(ctx UpdateContext) {
	if ctx.Spawner == nil {
		return
	}
	tx, ty := m.X, m.Y+1
	if ctx.Player != nil {
		tx, ty = ctx.Player.Center()
	}
	ctx.Spawner.Spawn(NewFireball(m.X, m.Y, tx, ty, m.Power))
	ctx.emit(Event{Type: EventMonsterAttack, Source: m})
}

// Draw renders a mage as a diamond.
func (m *Mage) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	cx, cy := m.Center()
	pts := c.BorrowPoints(4)
	pts[0] = draw.Point{X: cx, Y: m.Y}
	pts[1] = draw.Point{X: m.X + m.W, Y: cy}
	pts[2] = draw.Point{X: cx, Y: m.Y + m.H}
	pts[3] = draw.Point{X: m.X, Y: cy}
	c.DrawPolygon(pts, m.Cooldown > 0)
	m.drawHealthBar(c)
	return nil
}
