package dungeon

import "fmt"

// Direction is a wall of a room and the way a door in it leads.
type Direction int

const (
	Left Direction = iota
	Right
	Top
	Bottom
)

// Directions lists every direction in door-check order.
var Directions = [4]Direction{Left, Right, Top, Bottom}

// Delta returns the row and column change of moving in d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Top:
		return -1, 0
	case Bottom:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the wall facing d.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	}
	return Top
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Coord is a grid cell.
type Coord struct {
	Row, Col int
}

// Step returns the neighbouring cell in direction d.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
