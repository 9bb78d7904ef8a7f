package entity

import (
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/draw"
)

const pickupSize = 24

// Pickup is an item lying on the floor.
type Pickup struct {
	Body
	Item data.Item
}

// NewPickup places an item centred on (x, y).
func NewPickup(item data.Item, x, y float64) *Pickup {
	return &Pickup{
		Body: Body{X: x - pickupSize/2, Y: y - pickupSize/2, W: pickupSize, H: pickupSize},
		Item: item,
	}
}

func (p *Pickup) Kind() Kind { return KindItem }

// Update hands the item to the player on contact. Coins go straight to the
// purse, everything else into the inventory.
func (p *Pickup) Update(ctx UpdateContext) (bool, error) {
	pl := ctx.Player
	if pl == nil || !pl.Alive() || !p.Intersects(pl) {
		return false, nil
	}
	switch p.Item.Kind {
	case data.ItemCoin:
		pl.AddCoins(p.Item.Value)
	default:
		if pl.Inventory != nil {
			pl.Inventory.Add(p.Item)
		}
	}
	return true, nil
}

// Draw renders coins as a small diamond and potions as a flask outline.
func (p *Pickup) Draw(ctx DrawContext) error {
	c := ctx.Canvas
	cx, cy := p.Center()
	if p.Item.Kind == data.ItemCoin {
		pts := c.BorrowPoints(4)
		pts[0] = draw.Point{X: cx, Y: p.Y}
		pts[1] = draw.Point{X: p.X + p.W, Y: cy}
		pts[2] = draw.Point{X: cx, Y: p.Y + p.H}
		pts[3] = draw.Point{X: p.X, Y: cy}
		c.DrawPolygon(pts, true)
		return nil
	}
	c.DrawRect(p.X, p.Y+p.H/3, p.W, p.H*2/3, true)
	c.DrawRect(cx-p.W/6, p.Y, p.W/3, p.H/3, false)
	return nil
}
