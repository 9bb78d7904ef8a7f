// Package dungeon builds the grid of rooms and the doors between them.
package dungeon

// Populator fills a freshly built room according to its cell symbol.
type Populator interface {
	Populate(room *Room, cell byte)
}

// Layout is the fixed grid of rooms of one game. The shape never changes
// after Build; only room contents and door locks do.
type Layout struct {
	Name  string
	rooms [][]*Room
	start Coord
	boss  Coord
}

// Build creates the rooms and doors of def. A door exists only where the
// neighbouring cell holds a room. Rooms that end up with monsters start
// with their doors locked. pop may be nil for an empty dungeon.
func Build(def Definition, pop Populator) (*Layout, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	l := &Layout{Name: def.Name, rooms: make([][]*Room, len(def.Grid))}
	for r, row := range def.Grid {
		l.rooms[r] = make([]*Room, len(row))
		for c := 0; c < len(row); c++ {
			cell := row[c]
			if cell == CellNone {
				continue
			}
			l.rooms[r][c] = newRoom(r, c, kindOf(cell))
			switch cell {
			case CellStart:
				l.start = Coord{Row: r, Col: c}
			case CellBoss:
				l.boss = Coord{Row: r, Col: c}
			}
		}
	}

	for _, room := range l.Rooms() {
		for _, d := range Directions {
			if next := l.At(room.Coord().Step(d)); next != nil {
				room.doors[d] = newDoor(d, next)
			}
		}
		if pop != nil {
			pop.Populate(room, def.Grid[room.Row][room.Col])
		}
		if room.MonsterCount() > 0 {
			room.LockDoors()
		}
	}
	return l, nil
}

// Room returns the room at (row, col), or nil.
func (l *Layout) Room(row, col int) *Room {
	if row < 0 || row >= len(l.rooms) || col < 0 || col >= len(l.rooms[row]) {
		return nil
	}
	return l.rooms[row][col]
}

// At returns the room at c, or nil.
func (l *Layout) At(c Coord) *Room {
	return l.Room(c.Row, c.Col)
}

// Start returns the room the player begins in.
func (l *Layout) Start() *Room {
	return l.At(l.start)
}

// Boss returns Medusa's room.
func (l *Layout) Boss() *Room {
	return l.At(l.boss)
}

// Neighbor returns the room next to r in direction d, or nil.
func (l *Layout) Neighbor(r *Room, d Direction) *Room {
	if r == nil {
		return nil
	}
	return l.At(r.Coord().Step(d))
}

// Rooms returns every room in row-major order.
func (l *Layout) Rooms() []*Room {
	var out []*Room
	for _, row := range l.rooms {
		for _, room := range row {
			if room != nil {
				out = append(out, room)
			}
		}
	}
	return out
}

// Size returns the grid dimensions.
func (l *Layout) Size() (rows, cols int) {
	if len(l.rooms) == 0 {
		return 0, 0
	}
	return len(l.rooms), len(l.rooms[0])
}
