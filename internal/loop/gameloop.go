package loop

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/entity"
	"github.com/tomz197/mythbusters/internal/input"
)

// Death burst tuning.
const (
	burstParticles = 12
	burstSpeed     = 6.0
	burstLifetime  = 30
)

// GameLoop runs the entities of the room the player is in. Rooms the
// player is not in are paused: their monsters are not registered and do not
// move.
type GameLoop struct {
	reg    *Registry
	board  Board
	room   *dungeon.Room
	player *entity.Player
	rng    *rand.Rand
	log    *logrus.Entry

	tick       uint64
	input      input.Input
	events     []entity.Event
	bossKilled bool
	objects    []entity.Object // Snapshot reused between passes
	index      *entity.Index
}

// NewGameLoop creates a loop drawing onto board.
func NewGameLoop(board Board, rng *rand.Rand, log *logrus.Entry) *GameLoop {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &GameLoop{
		reg:   NewRegistry(),
		index: entity.NewIndex(),
		board: board,
		rng:   rng,
		log:   log,
		input: input.Input{Number: -1},
	}
}

// SetPlayer sets the hero the entities react to.
func (g *GameLoop) SetPlayer(p *entity.Player) {
	g.player = p
}

// SetInput sets the input seen by the next player update.
func (g *GameLoop) SetInput(in input.Input) {
	g.input = in
}

// Advance moves the loop clock forward one tick.
func (g *GameLoop) Advance() {
	g.tick++
}

// Spawn queues an object for the current room. Implements entity.Spawner.
func (g *GameLoop) Spawn(obj entity.Object) {
	g.reg.Spawn(obj)
}

// Registry exposes the live collection.
func (g *GameLoop) Registry() *Registry {
	return g.reg
}

// Room returns the room being simulated.
func (g *GameLoop) Room() *dungeon.Room {
	return g.room
}

// EnterRoom swaps the live collection for room's contents. Projectiles and
// effects of the previous room are dropped; its monsters and items stay in
// the room for when the player returns.
func (g *GameLoop) EnterRoom(room *dungeon.Room) {
	for _, obj := range g.reg.Clear() {
		g.board.RemoveNode(obj)
		switch obj.Kind() {
		case entity.KindHostileProjectile, entity.KindPlayerProjectile, entity.KindEffect:
			entity.ReleaseObject(obj)
		}
	}
	g.room = room
	if room == nil {
		return
	}
	room.Visited = true
	for _, t := range room.Traps {
		g.add(t)
	}
	for _, it := range room.Items {
		g.add(it)
	}
	for _, m := range room.Monsters {
		if m.Alive() {
			g.add(m)
		}
	}
	g.log.WithFields(logrus.Fields{
		"room":     room.Coord().String(),
		"monsters": room.MonsterCount(),
		"items":    len(room.Items),
	}).Debug("entered room")
}

func (g *GameLoop) add(obj entity.Object) {
	g.reg.Add(obj)
	g.board.AddNode(obj)
}

// MonsterCount returns the live monsters of the current room.
func (g *GameLoop) MonsterCount() int {
	if g.room == nil {
		return 0
	}
	return g.room.MonsterCount()
}

// BossKilled reports whether the boss died.
func (g *GameLoop) BossKilled() bool {
	return g.bossKilled
}

// DrainEvents returns and forgets the events raised since the last call.
func (g *GameLoop) DrainEvents() []entity.Event {
	ev := g.events
	g.events = nil
	return ev
}

func (g *GameLoop) notify(e entity.Event) {
	g.events = append(g.events, e)
}

func (g *GameLoop) context() entity.UpdateContext {
	g.objects = g.reg.Objects(g.objects[:0])
	g.index.Rebuild(g.objects)
	return entity.UpdateContext{
		Tick:    g.tick,
		Input:   g.input,
		Arena:   entity.Arena(),
		Player:  g.player,
		Spawner: g,
		Objects: g.objects,
		Index:   g.index,
		Rand:    g.rng,
		Notify:  g.notify,
	}
}

// UpdatePlayer runs the hero's logic.
func (g *GameLoop) UpdatePlayer() {
	if g.player == nil {
		return
	}
	if _, err := g.player.Update(g.context()); err != nil {
		g.log.WithError(err).Warn("player update failed")
	}
	g.settle()
}

// Update runs one pass over the registered objects of the given kinds.
func (g *GameLoop) Update(kinds ...entity.Kind) {
	ctx := g.context()
	for _, obj := range ctx.Objects {
		if !hasKind(kinds, obj.Kind()) {
			continue
		}
		remove, err := obj.Update(ctx)
		if err != nil {
			g.log.WithError(err).WithField("kind", obj.Kind().String()).Warn("update failed")
		}
		if remove {
			g.reg.DeferObject(obj)
		}
	}
	g.settle()
}

// Regen restores a little of the hero's health.
func (g *GameLoop) Regen() {
	if g.player != nil && g.player.Alive() {
		g.player.Regen()
	}
}

// settle finishes a pass: kills, removals, then spawns.
func (g *GameLoop) settle() {
	g.processDeaths()
	for _, obj := range g.reg.Sweep() {
		g.forget(obj)
	}
	for _, obj := range g.reg.Flush() {
		g.board.AddNode(obj)
		if obj.Kind() == entity.KindItem && g.room != nil {
			g.room.AddItem(obj)
		}
	}
}

// processDeaths removes dead monsters and drops their loot.
func (g *GameLoop) processDeaths() {
	g.objects = g.reg.Objects(g.objects[:0])
	for _, obj := range g.objects {
		m, ok := obj.(entity.Hostile)
		if !ok || !m.CheckDeath() {
			continue
		}
		g.reg.DeferObject(obj)
		m.Loot(g)
		cx, cy := obj.Bounds().Center()
		entity.SpawnBurst(cx, cy, burstParticles, burstSpeed, burstLifetime, g.rng, g)
		if m.IsBoss() {
			g.bossKilled = true
		}
		g.log.WithField("boss", m.IsBoss()).Debug("monster killed")
	}
}

// forget drops a removed object from the board and its room.
func (g *GameLoop) forget(obj entity.Object) {
	g.board.RemoveNode(obj)
	if g.room != nil {
		switch obj.Kind() {
		case entity.KindMonster:
			if m, ok := obj.(entity.Hostile); ok {
				g.room.RemoveMonster(m)
			}
		case entity.KindItem:
			g.room.RemoveItem(obj)
		}
	}
	entity.ReleaseObject(obj)
}

// Reset drops every live object without touching any room.
func (g *GameLoop) Reset() {
	for _, obj := range g.reg.Clear() {
		g.board.RemoveNode(obj)
		entity.ReleaseObject(obj)
	}
	g.room = nil
	g.events = nil
	g.bossKilled = false
}

func hasKind(kinds []entity.Kind, k entity.Kind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}
