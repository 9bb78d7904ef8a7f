package entity

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/mythbusters/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity per tick
	Lifetime    int     // Ticks remaining
	MaxLifetime int
	Drag        float64 // Velocity kept per tick (1.0 = no drag)
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, lifetime int) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.92
	return p
}

// Release zeroes the particle and returns it to the pool for reuse.
func (p *Particle) Release() {
	*p = Particle{}
	particlePool.Put(p)
}

// SpawnBurst sprays particles outward from (x, y), used when something dies.
func SpawnBurst(x, y float64, count int, speed float64, lifetime int, rng *rand.Rand, spawner Spawner) {
	if spawner == nil || rng == nil {
		return
	}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// 50% to 150% speed, 50% to 100% lifetime
		spd := speed * (0.5 + rng.Float64())
		life := lifetime/2 + rng.Intn(lifetime/2+1)
		spawner.Spawn(NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life))
	}
}

func (p *Particle) Kind() Kind { return KindEffect }

func (p *Particle) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y}
}

func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	p.Lifetime--
	if p.Lifetime <= 0 {
		return true, nil
	}
	p.VX *= p.Drag
	p.VY *= p.Drag
	p.X += p.VX
	p.Y += p.VY
	return false, nil
}

// Draw renders the particle as a pixel. Faded particles (< 25% lifetime)
// are skipped.
func (p *Particle) Draw(ctx DrawContext) error {
	if p.MaxLifetime > 0 && p.Lifetime*4 < p.MaxLifetime {
		return nil
	}
	ctx.Canvas.SetFloat(p.X, p.Y)
	return nil
}
