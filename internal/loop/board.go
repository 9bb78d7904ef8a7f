package loop

import (
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/entity"
)

// Board is the presentation side of a game. The simulation tells it what
// to show and never reads anything back.
type Board interface {
	// UpdateBoard switches the background to room (walls and doors).
	UpdateBoard(room *dungeon.Room)
	AddNode(obj entity.Object)
	RemoveNode(obj entity.Object)
}

// drawOrder is the layering of the scene, back to front.
var drawOrder = []entity.Kind{
	entity.KindTrap,
	entity.KindItem,
	entity.KindMonster,
	entity.KindHostileProjectile,
	entity.KindPlayerProjectile,
	entity.KindEffect,
	entity.KindPlayer,
}

// Scene is the Board drawn on the terminal canvas.
type Scene struct {
	room  *dungeon.Room
	nodes []entity.Object
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) UpdateBoard(room *dungeon.Room) {
	s.room = room
}

func (s *Scene) AddNode(obj entity.Object) {
	if obj == nil || s.indexOf(obj) >= 0 {
		return
	}
	s.nodes = append(s.nodes, obj)
}

func (s *Scene) RemoveNode(obj entity.Object) {
	if i := s.indexOf(obj); i >= 0 {
		s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
	}
}

func (s *Scene) indexOf(obj entity.Object) int {
	for i, n := range s.nodes {
		if n == obj {
			return i
		}
	}
	return -1
}

// Room returns the room in the background.
func (s *Scene) Room() *dungeon.Room {
	return s.room
}

// Len returns the number of nodes on the board.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Reset empties the board.
func (s *Scene) Reset() {
	s.room = nil
	s.nodes = s.nodes[:0]
}

// Draw renders walls, doors and every node onto the canvas.
func (s *Scene) Draw(ctx entity.DrawContext) error {
	c := ctx.Canvas
	c.DrawRect(0, 0, config.ArenaWidth-1, config.ArenaHeight-1, false)
	if s.room != nil {
		for _, d := range s.room.Doors() {
			d.Draw(c)
		}
	}
	for _, kind := range drawOrder {
		for _, n := range s.nodes {
			if n.Kind() != kind {
				continue
			}
			if err := n.Draw(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}
