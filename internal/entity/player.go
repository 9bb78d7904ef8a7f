package entity

import (
	"errors"

	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/draw"
	"github.com/tomz197/mythbusters/internal/inventory"
	"github.com/tomz197/mythbusters/internal/physics"
)

// swingTicks is how long a melee swing stays visible.
const swingTicks = 8

// Player is the hero controlled by the user.
type Player struct {
	Body
	Name      string
	Coins     int
	Weapon    data.Weapon
	Inventory *inventory.Inventory

	FacingX, FacingY float64 // Unit vector of the last movement

	attackCooldown int
	invulnerable   int
	swing          int
	swingBox       physics.Rect
}

// NewPlayer creates a player at the given top-left position.
func NewPlayer(name string, weapon data.Weapon, coins int, inv *inventory.Inventory, x, y float64) *Player {
	if inv == nil {
		inv = inventory.New(config.InitialHotbarSize)
	}
	return &Player{
		Body: Body{
			X:         x,
			Y:         y,
			W:         config.PlayerSize,
			H:         config.PlayerSize,
			Health:    config.PlayerHealth,
			MaxHealth: config.PlayerHealth,
			Speed:     config.PlayerSpeed,
		},
		Name:      name,
		Coins:     coins,
		Weapon:    weapon,
		Inventory: inv,
		FacingX:   1,
	}
}

func (p *Player) Kind() Kind { return KindPlayer }

// Update handles movement, attacking and hotbar use.
func (p *Player) Update(ctx UpdateContext) (bool, error) {
	if !p.Alive() {
		return false, nil
	}

	var mx, my float64
	if ctx.Input.Left {
		mx--
	}
	if ctx.Input.Right {
		mx++
	}
	if ctx.Input.Up {
		my--
	}
	if ctx.Input.Down {
		my++
	}
	if mx != 0 || my != 0 {
		dx, dy := physics.StepToward(0, 0, mx, my, p.Speed)
		p.MoveRelative(dx, dy)
		p.ClampTo(ctx.Arena)
		p.FacingX, p.FacingY = physics.StepToward(0, 0, mx, my, 1)
	}

	if p.attackCooldown > 0 {
		p.attackCooldown--
	}
	if p.invulnerable > 0 {
		p.invulnerable--
	}
	if p.swing > 0 {
		p.swing--
	}

	if ctx.Input.Space && p.attackCooldown == 0 {
		p.attack(ctx)
	}

	if n := ctx.Input.Number; n >= 1 && n <= inventory.MaxHotbar {
		// Empty or locked slots are not an error worth surfacing.
		if err := p.UseHotbar(n - 1); err != nil && !errors.Is(err, inventory.ErrSlotEmpty) && !errors.Is(err, inventory.ErrBadSlot) {
			return false, err
		}
	}

	return false, nil
}

// attack swings the melee weapon or fires an arrow.
func (p *Player) attack(ctx UpdateContext) {
	p.attackCooldown = p.Weapon.Cooldown
	cx, cy := p.Center()

	if p.Weapon.Ranged() {
		if ctx.Spawner == nil {
			return
		}
		ctx.Spawner.Spawn(NewArrow(cx, cy, p.FacingX, p.FacingY, p.Weapon.Damage, p.Weapon.Range))
		return
	}

	p.swingBox = p.AttackBox()
	p.swing = swingTicks
	ctx.Nearby(p.swingBox, func(obj Object) bool {
		if obj.Kind() != KindMonster {
			return false
		}
		if target, ok := obj.(Damageable); ok && target.Alive() {
			target.Damage(p.Weapon.Damage)
		}
		return false
	})
}

// AttackBox is the area covered by a melee swing in the facing direction.
func (p *Player) AttackBox() physics.Rect {
	reach := p.Weapon.Range
	cx, cy := p.Center()
	ax := cx + p.FacingX*(p.W/2+reach/2)
	ay := cy + p.FacingY*(p.H/2+reach/2)
	size := reach
	if size < p.W {
		size = p.W
	}
	return physics.Rect{X: ax - size/2, Y: ay - size/2, W: size, H: size}
}

// Hurt applies damage unless the player is still invulnerable from the
// previous hit. Returns whether damage was dealt.
func (p *Player) Hurt(amount float64) bool {
	if p.invulnerable > 0 || amount <= 0 || !p.Alive() {
		return false
	}
	p.Damage(amount)
	p.invulnerable = config.PlayerInvulnerable
	return true
}

// Invulnerable reports whether hits are currently ignored.
func (p *Player) Invulnerable() bool {
	return p.invulnerable > 0
}

// Regen restores a little health.
func (p *Player) Regen() {
	p.Heal(config.HealthRegenAmount)
}

// AddCoins adds coins. Negative totals are not possible.
func (p *Player) AddCoins(n int) {
	p.Coins += n
	if p.Coins < 0 {
		p.Coins = 0
	}
}

// UseHotbar consumes the item in a hotbar slot.
func (p *Player) UseHotbar(slot int) error {
	item, err := p.Inventory.Use(slot)
	if err != nil {
		return err
	}
	switch item.Kind {
	case data.ItemPotion:
		p.Heal(float64(item.Value))
	case data.ItemCoin:
		p.AddCoins(item.Value)
	}
	return nil
}

// Draw renders the player as a filled square that blinks while invulnerable.
func (p *Player) Draw(ctx DrawContext) error {
	if !ShouldRenderBlink(p.invulnerable, 6) {
		return nil
	}
	ctx.Canvas.DrawRect(p.X, p.Y, p.W, p.H, true)

	// Facing marker
	cx, cy := p.Center()
	ctx.Canvas.DrawLine(
		draw.Point{X: cx, Y: cy},
		draw.Point{X: cx + p.FacingX*p.W, Y: cy + p.FacingY*p.H},
	)

	if p.swing > 0 {
		b := p.swingBox
		ctx.Canvas.DrawRect(b.X, b.Y, b.W, b.H, false)
	}
	return nil
}

// ShouldRenderBlink returns true if an object with remaining invulnerability
// ticks should be drawn this frame.
func ShouldRenderBlink(remaining, period int) bool {
	if remaining <= 0 || period <= 0 {
		return true
	}
	return (remaining/period)%2 != 0
}
