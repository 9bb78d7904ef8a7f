package dungeon

import (
	"fmt"

	"github.com/tomz197/mythbusters/internal/entity"
)

// RoomKind describes what a room was built as.
type RoomKind string

const (
	KindStart    RoomKind = "start"
	KindNormal   RoomKind = "normal"
	KindBoss     RoomKind = "boss"
	KindTreasure RoomKind = "treasure"
	KindTrap     RoomKind = "trap"
)

// Room is one cell of the dungeon. Its monsters, items and traps keep their
// state while the player is elsewhere.
type Room struct {
	Row, Col int
	Kind     RoomKind
	Visited  bool

	Monsters []entity.Hostile
	Items    []entity.Object
	Traps    []*entity.Trap

	doors [4]*Door
}

func newRoom(row, col int, kind RoomKind) *Room {
	return &Room{Row: row, Col: col, Kind: kind}
}

// Coord returns the room's grid position.
func (r *Room) Coord() Coord {
	return Coord{Row: r.Row, Col: r.Col}
}

// Door returns the door in direction d, or nil when the wall is solid.
func (r *Room) Door(d Direction) *Door {
	if d < Left || d > Bottom {
		return nil
	}
	return r.doors[d]
}

// Doors returns the existing doors in check order.
func (r *Room) Doors() []*Door {
	out := make([]*Door, 0, len(r.doors))
	for _, d := range r.doors {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

// UnlockDoors opens every door of the room.
func (r *Room) UnlockDoors() {
	for _, d := range r.doors {
		if d != nil {
			d.Unlock()
		}
	}
}

// LockDoors closes every door of the room.
func (r *Room) LockDoors() {
	for _, d := range r.doors {
		if d != nil {
			d.Lock()
		}
	}
}

// UnlockToward opens the doors leading to the room at c and reports how
// many were opened.
func (r *Room) UnlockToward(c Coord) int {
	n := 0
	for _, d := range r.doors {
		if d != nil && d.Leads(c) {
			d.Unlock()
			n++
		}
	}
	return n
}

// MonsterCount returns the number of live monsters.
func (r *Room) MonsterCount() int {
	n := 0
	for _, m := range r.Monsters {
		if m.Alive() {
			n++
		}
	}
	return n
}

// RemoveMonster drops m from the room. Returns false if it was not there.
func (r *Room) RemoveMonster(m entity.Hostile) bool {
	for i, x := range r.Monsters {
		if x == m {
			r.Monsters = append(r.Monsters[:i], r.Monsters[i+1:]...)
			return true
		}
	}
	return false
}

// AddItem leaves an item on the floor.
func (r *Room) AddItem(obj entity.Object) {
	r.Items = append(r.Items, obj)
}

// RemoveItem takes an item off the floor. Returns false if it was not there.
func (r *Room) RemoveItem(obj entity.Object) bool {
	for i, x := range r.Items {
		if x == obj {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Info is the one-line status shown in the HUD.
func (r *Room) Info() string {
	left := r.MonsterCount()
	switch {
	case r.Kind == KindBoss && left > 0:
		return fmt.Sprintf("Room %d-%d  Medusa awaits (%d left)", r.Row, r.Col, left)
	case left > 0:
		return fmt.Sprintf("Room %d-%d  %d monsters left", r.Row, r.Col, left)
	default:
		return fmt.Sprintf("Room %d-%d  cleared", r.Row, r.Col)
	}
}
