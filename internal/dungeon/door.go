package dungeon

import (
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/draw"
	"github.com/tomz197/mythbusters/internal/physics"
)

// Door connects a room to its neighbour in one direction.
type Door struct {
	Dir    Direction
	Rect   physics.Rect
	Dest   *Room
	locked bool
}

func newDoor(dir Direction, dest *Room) *Door {
	return &Door{Dir: dir, Rect: DoorRect(dir), Dest: dest}
}

// DoorRect returns the area of the wall a door in direction d occupies.
func DoorRect(d Direction) physics.Rect {
	const (
		w = config.ArenaWidth
		h = config.ArenaHeight
		t = config.DoorThickness
		s = config.DoorSpan
	)
	switch d {
	case Left:
		return physics.Rect{X: 0, Y: h/2 - s/2, W: t, H: s}
	case Right:
		return physics.Rect{X: w - t, Y: h/2 - s/2, W: t, H: s}
	case Top:
		return physics.Rect{X: w/2 - s/2, Y: 0, W: s, H: t}
	default:
		return physics.Rect{X: w/2 - s/2, Y: h - t, W: s, H: t}
	}
}

// Bounds returns the door area so entities can test intersection with it.
func (d *Door) Bounds() physics.Rect {
	return d.Rect
}

func (d *Door) Locked() bool { return d.locked }
func (d *Door) Lock()        { d.locked = true }
func (d *Door) Unlock()      { d.locked = false }

// Leads reports whether the door opens into the room at c.
func (d *Door) Leads(c Coord) bool {
	return d.Dest != nil && d.Dest.Coord() == c
}

// Draw renders an open door as an outline and a locked one filled in.
func (d *Door) Draw(c *draw.Canvas) {
	c.DrawRect(d.Rect.X, d.Rect.Y, d.Rect.W, d.Rect.H, d.locked)
}
