package entity

import (
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/draw"
	"github.com/tomz197/mythbusters/internal/physics"
)

// Projectile flies in a fixed direction until it hits something, travels
// its full range or leaves the arena.
type Projectile struct {
	Body
	VX, VY    float64 // Velocity per tick
	Power     float64
	Range     float64 // Maximum travel distance
	Travelled float64
	Hostile   bool // Fired by a monster
}

// NewFireball creates a hostile projectile centred on (x, y) and aimed at
// (tx, ty). The direction is fixed at spawn time.
func NewFireball(x, y, tx, ty, power float64) *Projectile {
	vx, vy := physics.StepToward(x, y, tx, ty, config.FireballSpeed)
	if vx == 0 && vy == 0 {
		vy = config.FireballSpeed
	}
	return newProjectile(x, y, config.FireballSize, vx, vy, power, config.FireballRange, true)
}

// NewArrow creates a player projectile centred on (x, y) flying along the
// unit vector (dirX, dirY).
func NewArrow(x, y, dirX, dirY, power, rng float64) *Projectile {
	vx, vy := physics.StepToward(0, 0, dirX, dirY, config.ArrowSpeed)
	if vx == 0 && vy == 0 {
		vx = config.ArrowSpeed
	}
	return newProjectile(x, y, config.ArrowSize, vx, vy, power, rng, false)
}

func newProjectile(cx, cy, size, vx, vy, power, rng float64, hostile bool) *Projectile {
	return &Projectile{
		Body: Body{
			X:         cx - size/2,
			Y:         cy - size/2,
			W:         size,
			H:         size,
			Health:    1,
			MaxHealth: 1,
			Speed:     physics.Distance(0, 0, vx, vy),
		},
		VX:      vx,
		VY:      vy,
		Power:   power,
		Range:   rng,
		Hostile: hostile,
	}
}

func (p *Projectile) Kind() Kind {
	if p.Hostile {
		return KindHostileProjectile
	}
	return KindPlayerProjectile
}

// Update moves the projectile and resolves hits.
func (p *Projectile) Update(ctx UpdateContext) (bool, error) {
	p.MoveRelative(p.VX, p.VY)
	p.Travelled += p.Speed

	if p.Travelled >= p.Range || !ctx.Arena.Intersects(p.Bounds()) {
		return true, nil
	}

	if p.Hostile {
		pl := ctx.Player
		if pl != nil && p.Intersects(pl) {
			if pl.Hurt(p.Power) {
				ctx.emit(Event{Type: EventPlayerHit, Source: p, Amount: p.Power})
			}
			return true, nil
		}
		return false, nil
	}

	hit := false
	ctx.Nearby(p.Bounds(), func(obj Object) bool {
		if obj.Kind() != KindMonster {
			return false
		}
		target, ok := obj.(Damageable)
		if !ok || !target.Alive() {
			return false
		}
		target.Damage(p.Power)
		hit = true
		return true
	})
	return hit, nil
}

// Draw renders fireballs as filled squares and arrows as a short line.
func (p *Projectile) Draw(ctx DrawContext) error {
	if p.Hostile {
		ctx.Canvas.DrawRect(p.X, p.Y, p.W, p.H, true)
		return nil
	}
	cx, cy := p.Center()
	tail := 2.0
	ctx.Canvas.DrawLine(
		draw.Point{X: cx - p.VX*tail, Y: cy - p.VY*tail},
		draw.Point{X: cx, Y: cy},
	)
	return nil
}
