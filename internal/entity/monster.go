package entity

import (
	"math/rand"

	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/physics"
)

// Stats are the base numbers of a monster type before difficulty scaling.
type Stats struct {
	Name   string
	Size   float64
	Health float64
	Speed  float64
	Power  float64 // Contact or projectile damage
}

var (
	SkeletonStats = Stats{Name: "Skeleton", Size: 50, Health: 50, Speed: 3, Power: 10}
	MageStats     = Stats{Name: "Mage", Size: 46, Health: 35, Speed: 4, Power: config.FireballDamage}
	MedusaStats   = Stats{Name: "Medusa", Size: 110, Health: 400, Speed: 2.5, Power: 20}
)

// Scaled returns the stats adjusted for a difficulty code (0 easiest).
// Health and power grow with difficulty; speed and size do not.
func (s Stats) Scaled(difficulty int) Stats {
	if difficulty < 0 {
		difficulty = 0
	}
	f := 1 + config.DifficultyScale*float64(difficulty)
	s.Health *= f
	s.Power *= f
	return s
}

// Hostile is implemented by every monster variant.
type Hostile interface {
	Object
	Damageable
	Looter
	IsBoss() bool
}

// Monster holds what all monster variants share.
type Monster struct {
	Body
	Name  string
	Power float64
	Drops []data.Item
}

func newMonster(s Stats, x, y float64) Monster {
	return Monster{
		Body: Body{
			X:         x,
			Y:         y,
			W:         s.Size,
			H:         s.Size,
			Health:    s.Health,
			MaxHealth: s.Health,
			Speed:     s.Speed,
		},
		Name:  s.Name,
		Power: s.Power,
	}
}

func (m *Monster) Kind() Kind { return KindMonster }

// IsBoss reports whether killing this monster wins the game.
func (m *Monster) IsBoss() bool { return false }

// Loot spawns the monster's drops around its center.
func (m *Monster) Loot(spawner Spawner) {
	if spawner == nil {
		return
	}
	cx, cy := m.Center()
	for i, item := range m.Drops {
		// Fan drops out so they do not stack on top of each other.
		ox := float64(i%3-1) * (config.PlayerSize / 2)
		oy := float64(i/3) * (config.PlayerSize / 2)
		spawner.Spawn(NewPickup(item, cx+ox, cy+oy))
	}
}

// chase moves toward the player's center.
func (m *Monster) chase(p *Player, arena physics.Rect) {
	if p == nil {
		return
	}
	cx, cy := m.Center()
	px, py := p.Center()
	dx, dy := physics.StepToward(cx, cy, px, py, m.Speed)
	m.MoveRelative(dx, dy)
	m.ClampTo(arena)
}

// randomTarget picks a uniformly random top-left position that keeps the
// body inside the arena.
func (m *Monster) randomTarget(rng *rand.Rand, arena physics.Rect) (float64, float64) {
	maxX := arena.W - m.W
	maxY := arena.H - m.H
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if rng == nil {
		return arena.X + maxX/2, arena.Y + maxY/2
	}
	return arena.X + rng.Float64()*maxX, arena.Y + rng.Float64()*maxY
}

// inPosition reports whether the body is within the target threshold on
// both axes.
func (m *Monster) inPosition(tx, ty float64) bool {
	dx := tx - m.X
	dy := ty - m.Y
	return abs(dx) <= config.TargetThreshold && abs(dy) <= config.TargetThreshold
}

// walkToward moves toward a target position with a normalised step.
func (m *Monster) walkToward(tx, ty float64) {
	dx, dy := physics.StepToward(m.X, m.Y, tx, ty, m.Speed)
	m.MoveRelative(dx, dy)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
