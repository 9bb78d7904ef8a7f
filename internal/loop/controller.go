package loop

import (
	"github.com/sirupsen/logrus"
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/entity"
)

// Controller moves the player between rooms through unlocked doors.
type Controller struct {
	layout  *dungeon.Layout
	loop    *GameLoop
	board   Board
	player  *entity.Player
	current *dungeon.Room
	prev    *dungeon.Room
	log     *logrus.Entry
}

// NewController creates a controller. Call Start to place the player.
func NewController(layout *dungeon.Layout, loop *GameLoop, board Board, player *entity.Player, log *logrus.Entry) *Controller {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Controller{
		layout: layout,
		loop:   loop,
		board:  board,
		player: player,
		log:    log,
	}
}

// Current returns the room the player is in.
func (c *Controller) Current() *dungeon.Room {
	return c.current
}

// Previous returns the room the player last left, or nil.
func (c *Controller) Previous() *dungeon.Room {
	return c.prev
}

// Start puts the player in the middle of the start room.
func (c *Controller) Start() {
	c.prev = nil
	c.jump(c.layout.Start())
}

// GoToBossRoom jumps straight to the boss, ignoring doors.
func (c *Controller) GoToBossRoom() {
	c.prev = c.current
	c.jump(c.layout.Boss())
	c.log.Info("jumped to boss room")
}

func (c *Controller) jump(room *dungeon.Room) {
	if room == nil {
		return
	}
	c.current = room
	c.loop.EnterRoom(room)
	c.board.UpdateBoard(room)
	if c.player != nil {
		c.player.MoveAbsolute(config.ArenaWidth/2-c.player.W/2, config.ArenaHeight/2-c.player.H/2)
	}
}

// Tick opens a cleared room and takes the player through the first open
// door they stand in, checking left, right, top and bottom in that order.
// At most one transition happens per tick.
func (c *Controller) Tick() bool {
	room := c.current
	if room == nil || c.player == nil || !c.player.Alive() {
		return false
	}
	if c.loop.MonsterCount() == 0 {
		room.UnlockDoors()
	}
	for _, d := range dungeon.Directions {
		door := room.Door(d)
		if door == nil || door.Locked() || !c.player.Intersects(door) {
			continue
		}
		return c.Go(d)
	}
	return false
}

// Go moves the player through the wall in direction d. Missing neighbours
// are ignored.
func (c *Controller) Go(d dungeon.Direction) bool {
	next := c.layout.Neighbor(c.current, d)
	if next == nil {
		return false
	}
	c.prev = c.current
	c.current = next

	c.loop.EnterRoom(next)
	c.board.UpdateBoard(next)

	if next.MonsterCount() > 0 {
		next.LockDoors()
	}
	next.UnlockToward(c.prev.Coord())

	if c.player != nil {
		x, y := EntryPosition(d, c.player.W, c.player.H)
		c.player.MoveAbsolute(x, y)
	}

	c.log.WithFields(logrus.Fields{
		"from": c.prev.Coord().String(),
		"to":   next.Coord().String(),
		"door": d.String(),
	}).Info("room transition")
	return true
}

// EntryPosition is where a w x h player lands after walking through a door
// in direction d: just inside the wall opposite the door.
func EntryPosition(d dungeon.Direction, w, h float64) (x, y float64) {
	const (
		aw = config.ArenaWidth
		ah = config.ArenaHeight
	)
	switch d {
	case dungeon.Left:
		return aw - config.EntryFar, ah/2 - h/2
	case dungeon.Right:
		return config.EntryNear, ah/2 - h/2
	case dungeon.Top:
		return aw/2 - w/2, ah - config.EntryFar
	default:
		return aw/2 - w/2, config.EntryNear
	}
}
