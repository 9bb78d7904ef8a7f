package entity

import (
	"math"
	"math/rand"

	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/draw"
)

// BossPhase is the current behaviour of the boss.
type BossPhase int

const (
	// PhaseCalm behaves like a mage with a radial volley.
	PhaseCalm BossPhase = iota
	// PhaseEnraged chases the player and volleys more often.
	PhaseEnraged
)

// rageSpeedFactor is applied to the boss speed when it becomes enraged.
const rageSpeedFactor = 1.6

// Boss is Medusa. Killing it wins the game.
type Boss struct {
	Monster
	Phase            BossPhase
	TargetX, TargetY float64
	Cooldown         int // Ticks until the next volley
	ContactCooldown  int
}

// NewBoss creates the boss at (x, y).
func NewBoss(x, y float64, difficulty int, rng *rand.Rand) *Boss {
	b := &Boss{
		Monster:  newMonster(MedusaStats.Scaled(difficulty), x, y),
		Cooldown: config.MageInitialCooldown,
	}
	b.TargetX, b.TargetY = b.randomTarget(rng, Arena())
	return b
}

func (b *Boss) IsBoss() bool { return true }

func (b *Boss) Update(ctx UpdateContext) (bool, error) {
	if !b.Alive() {
		return false, nil
	}

	if b.Phase == PhaseCalm && b.HealthFraction() <= 0.5 {
		b.enrage(ctx)
	}

	if b.ContactCooldown > 0 {
		b.ContactCooldown--
	}

	switch b.Phase {
	case PhaseCalm:
		if !b.inPosition(b.TargetX, b.TargetY) {
			b.walkToward(b.TargetX, b.TargetY)
			return false, nil
		}
		if b.Cooldown > 0 {
			b.Cooldown--
			return false, nil
		}
		b.volley(ctx)
		b.Cooldown = config.BossVolleyCooldown
		b.TargetX, b.TargetY = b.randomTarget(ctx.Rand, ctx.Arena)

	case PhaseEnraged:
		b.chase(ctx.Player, ctx.Arena)
		contactAttack(ctx, b, &b.Monster, &b.ContactCooldown, config.MeleeAttackCooldown)
		if b.Cooldown > 0 {
			b.Cooldown--
			return false, nil
		}
		b.volley(ctx)
		b.Cooldown = config.BossRageCooldown
	}
	return false, nil
}

func (b *Boss) enrage(ctx UpdateContext) {
	b.Phase = PhaseEnraged
	b.Speed *= rageSpeedFactor
	if b.Cooldown > config.BossRageCooldown {
		b.Cooldown = config.BossRageCooldown
	}
	ctx.emit(Event{Type: EventBossEnraged, Source: b})
}

// volley throws fireballs evenly around the boss.
func (b *Boss) volley(ctx UpdateContext) {
	if ctx.Spawner == nil {
		return
	}
	cx, cy := b.Center()
	for i := 0; i < config.BossVolleySize; i++ {
		angle := 2 * math.Pi * float64(i) / config.BossVolleySize
		ctx.Spawner.Spawn(NewFireball(cx, cy, cx+math.Cos(angle), cy+math.Sin(angle), b.Power/2))
	}
	ctx.emit(Event{Type: EventMonsterAttack, Source: b})
}

// Draw renders the boss as a hexagon, filled while enraged.
func (b *Boss) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	cx, cy := b.Center()
	r := b.W / 2
	pts := c.BorrowPoints(6)
	for i := range pts {
		a := math.Pi/6 + float64(i)*math.Pi/3
		pts[i] = draw.Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	c.DrawPolygon(pts, b.Phase == PhaseEnraged)
	b.drawHealthBar(c)
	return nil
}
