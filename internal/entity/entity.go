// Package entity defines everything that lives inside a room: the player,
// monsters, projectiles, pickups, traps and visual effects.
package entity

import (
	"math/rand"

	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/draw"
	"github.com/tomz197/mythbusters/internal/input"
	"github.com/tomz197/mythbusters/internal/physics"
)

// Kind groups objects by which timer advances them.
type Kind int

const (
	KindPlayer Kind = iota
	KindMonster
	KindHostileProjectile
	KindPlayerProjectile
	KindItem
	KindTrap
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	case KindHostileProjectile:
		return "hostile-projectile"
	case KindPlayerProjectile:
		return "player-projectile"
	case KindItem:
		return "item"
	case KindTrap:
		return "trap"
	case KindEffect:
		return "effect"
	}
	return "unknown"
}

// Spawner allows objects to spawn new objects during update. Spawned
// objects join the live collection after the current pass.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Tick    uint64
	Input   input.Input
	Arena   physics.Rect
	Player  *Player
	Spawner Spawner
	Objects []Object // Live objects of the current room
	Index   *Index   // Broad-phase lookup over Objects, may be nil
	Rand    *rand.Rand
	Notify  func(Event)
}

// emit delivers an event if anyone listens.
func (ctx UpdateContext) emit(e Event) {
	if ctx.Notify != nil {
		ctx.Notify(e)
	}
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas
	Tick   uint64
}

// Arena returns the playfield shared by every room.
func Arena() physics.Rect {
	return physics.Rect{W: config.ArenaWidth, H: config.ArenaHeight}
}

// Bounded is anything with a bounding box.
type Bounded interface {
	Bounds() physics.Rect
}

// Object is a drawable and updatable room entity.
type Object interface {
	Bounded

	// Update advances one simulation step. Returns true if the object should
	// be removed. Objects never remove themselves from any collection.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw renders the object onto the canvas.
	Draw(ctx DrawContext) error

	Kind() Kind
}

// Damageable is implemented by objects with health.
type Damageable interface {
	Damage(amount float64)
	Alive() bool
	// CheckDeath clamps health at zero and reports whether the object died.
	CheckDeath() bool
}

// Looter is implemented by objects that drop something when they die.
type Looter interface {
	Loot(spawner Spawner)
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// Body is the shared position, size and health of every entity.
type Body struct {
	X, Y      float64 // Top-left corner
	W, H      float64
	Health    float64
	MaxHealth float64
	Speed     float64 // Units per tick
}

// Bounds returns the bounding box.
func (b *Body) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the midpoint of the body.
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects reports bounding-box overlap with other.
func (b *Body) Intersects(other Bounded) bool {
	if other == nil {
		return false
	}
	return b.Bounds().Intersects(other.Bounds())
}

// MoveRelative shifts the body. There is no wall collision.
func (b *Body) MoveRelative(dx, dy float64) {
	b.X += dx
	b.Y += dy
}

// MoveAbsolute places the body's top-left corner at (x, y).
func (b *Body) MoveAbsolute(x, y float64) {
	b.X = x
	b.Y = y
}

// ClampTo keeps the body inside the arena.
func (b *Body) ClampTo(arena physics.Rect) {
	b.X = physics.Clamp(b.X, arena.X, arena.X+arena.W-b.W)
	b.Y = physics.Clamp(b.Y, arena.Y, arena.Y+arena.H-b.H)
}

// Damage subtracts health. Negative amounts are ignored.
func (b *Body) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	b.Health -= amount
}

// Heal adds health up to MaxHealth.
func (b *Body) Heal(amount float64) {
	if amount <= 0 || b.Health <= 0 {
		return
	}
	b.Health += amount
	if b.MaxHealth > 0 && b.Health > b.MaxHealth {
		b.Health = b.MaxHealth
	}
}

// Alive reports whether health is above zero.
func (b *Body) Alive() bool {
	return b.Health > 0
}

// CheckDeath clamps health at zero and reports whether the body is dead.
func (b *Body) CheckDeath() bool {
	if b.Health <= 0 {
		b.Health = 0
		return true
	}
	return false
}

// HealthFraction returns health as a fraction of MaxHealth.
func (b *Body) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return b.Health / b.MaxHealth
}

// drawHealthBar draws a thin bar above the body.
func (b *Body) drawHealthBar(c *draw.Canvas) {
	if b.MaxHealth <= 0 || b.Health >= b.MaxHealth {
		return
	}
	c.DrawRect(b.X, b.Y-14, b.W*b.HealthFraction(), 6, true)
}
