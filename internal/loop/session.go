package loop

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tomz197/mythbusters/internal/audio"
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/entity"
	"github.com/tomz197/mythbusters/internal/input"
	"github.com/tomz197/mythbusters/internal/inventory"
)

var (
	ErrEmptyName         = errors.New("your name cannot be empty or whitespace only")
	ErrInvalidTransition = errors.New("invalid transition")
)

// Phase is where a session is in its life cycle.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseConfiguring
	PhasePlaying
	PhaseWin
	PhaseDead
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseConfiguring:
		return "configuring"
	case PhasePlaying:
		return "playing"
	case PhaseWin:
		return "win"
	case PhaseDead:
		return "dead"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Settings is what the player chose on the configuration screen.
type Settings struct {
	Name        string
	WeaponIndex int
	Difficulty  Difficulty
}

// SessionOptions wires a session to its collaborators. DB and Board are
// required.
type SessionOptions struct {
	DB         *data.Database
	Definition dungeon.Definition
	Board      Board
	Music      audio.Player
	Rand       *rand.Rand
	Debug      bool // Allows the boss-room jump
	Log        *logrus.Entry
}

// Session is one player's game from title screen to win or death.
// It is driven by a single goroutine and does no locking.
type Session struct {
	ID string

	opts  SessionOptions
	phase Phase
	log   *logrus.Entry

	settings  Settings
	inventory *inventory.Inventory
	player    *entity.Player
	layout    *dungeon.Layout
	loop      *GameLoop
	ctrl      *Controller
	timers    *TimerGroup
	trapCount int
}

// NewSession creates a session on the title screen and starts the music.
func NewSession(opts SessionOptions) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	if opts.Music == nil {
		opts.Music = audio.Mute{}
	}
	if opts.Board == nil {
		opts.Board = NewScene()
	}
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	id := uuid.NewString()
	s := &Session{
		ID:        id,
		opts:      opts,
		phase:     PhaseMenu,
		log:       log.WithField("session", id),
		inventory: inventory.New(0),
		timers:    NewTimerGroup(),
	}
	// The background track runs from launch, title screen included.
	opts.Music.Play()
	return s
}

// Close stops the music and any running game.
func (s *Session) Close() {
	s.timers.StopAll()
	s.opts.Music.Stop()
}

func (s *Session) Phase() Phase                    { return s.phase }
func (s *Session) Player() *entity.Player          { return s.player }
func (s *Session) Layout() *dungeon.Layout         { return s.layout }
func (s *Session) Settings() Settings              { return s.settings }
func (s *Session) Inventory() *inventory.Inventory { return s.inventory }
func (s *Session) Timers() *TimerGroup             { return s.timers }
func (s *Session) TrapCount() int                  { return s.trapCount }
func (s *Session) Debug() bool                     { return s.opts.Debug }

// Room returns the room the player is in, or nil outside a game.
func (s *Session) Room() *dungeon.Room {
	if s.ctrl == nil {
		return nil
	}
	return s.ctrl.Current()
}

// GameLoop returns the entity loop of the running game, or nil.
func (s *Session) GameLoop() *GameLoop {
	return s.loop
}

// Controller returns the room controller of the running game, or nil.
func (s *Session) Controller() *Controller {
	return s.ctrl
}

func (s *Session) transition(to Phase) {
	s.log.WithFields(logrus.Fields{"from": s.phase.String(), "to": to.String()}).Info("phase change")
	s.phase = to
}

// Begin leaves the title screen for configuration.
func (s *Session) Begin() error {
	if s.phase != PhaseMenu {
		return fmt.Errorf("begin from %s: %w", s.phase, ErrInvalidTransition)
	}
	s.transition(PhaseConfiguring)
	return nil
}

// Configure validates the settings and starts a game in the start room.
// Nothing changes when the settings are rejected.
func (s *Session) Configure(set Settings) error {
	if s.phase != PhaseConfiguring {
		return fmt.Errorf("configure from %s: %w", s.phase, ErrInvalidTransition)
	}
	name := strings.TrimSpace(set.Name)
	if name == "" {
		return ErrEmptyName
	}
	weapon, err := s.opts.DB.Weapon(set.WeaponIndex)
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	layout, err := dungeon.Build(s.opts.Definition, dungeon.NewSpawner(set.Difficulty.Code(), s.opts.DB, s.opts.Rand))
	if err != nil {
		return fmt.Errorf("configure: %w", err)
	}

	set.Name = name
	s.settings = set
	s.layout = layout
	s.trapCount = 0

	s.inventory.Clear()
	s.inventory.SetHotbarSize(config.InitialHotbarSize)
	s.player = entity.NewPlayer(name, weapon, set.Difficulty.StartingCoins(), s.inventory, 0, 0)

	if sc, ok := s.opts.Board.(*Scene); ok {
		sc.Reset()
	}
	s.loop = NewGameLoop(s.opts.Board, s.opts.Rand, s.log.WithField("component", "gameloop"))
	s.loop.SetPlayer(s.player)
	s.ctrl = NewController(layout, s.loop, s.opts.Board, s.player, s.log.WithField("component", "controller"))
	s.ctrl.Start()
	s.opts.Board.AddNode(s.player)

	s.timers = s.newTimers(weapon)
	s.timers.StartAll()

	s.log.WithFields(logrus.Fields{
		"name":       name,
		"weapon":     weapon.Name,
		"difficulty": set.Difficulty.String(),
		"dungeon":    layout.Name,
	}).Info("game started")
	s.transition(PhasePlaying)
	return nil
}

// newTimers builds the game timers in firing order. The arrow timer only
// exists for ranged weapons.
func (s *Session) newTimers(weapon data.Weapon) *TimerGroup {
	g := NewTimerGroup()
	g.Add("player", config.PlayerLogicEvery, s.loop.UpdatePlayer)
	if weapon.Ranged() {
		g.Add("arrows", config.ArrowEvery, func() {
			s.loop.Update(entity.KindPlayerProjectile)
		})
	}
	g.Add("regen", config.HealthRegenEvery, s.loop.Regen)
	g.Add("monsters", config.MonsterLoopEvery, func() {
		s.loop.Update(entity.KindMonster, entity.KindHostileProjectile, entity.KindEffect)
	})
	g.Add("items", config.ItemLoopEvery, func() {
		s.loop.Update(entity.KindItem, entity.KindTrap)
	})
	g.Add("controller", config.ControllerEvery, func() {
		s.ctrl.Tick()
	})
	return g
}

// Tick advances a running game by one simulation step and resolves death
// and victory. Outside PhasePlaying it does nothing.
func (s *Session) Tick(in input.Input) {
	if s.phase != PhasePlaying {
		return
	}
	if in.Boss && s.opts.Debug {
		s.ctrl.GoToBossRoom()
	}

	s.loop.SetInput(in)
	s.loop.Advance()
	s.timers.Tick()
	s.handleEvents()

	switch {
	case s.player.CheckDeath():
		s.die()
	case s.loop.BossKilled():
		s.win()
	}
}

func (s *Session) handleEvents() {
	for _, e := range s.loop.DrainEvents() {
		switch e.Type {
		case entity.EventTrapSprung:
			s.trapCount++
			s.log.WithField("traps", s.trapCount).Debug("trap sprung")
		case entity.EventBossEnraged:
			s.log.Info("medusa is enraged")
		case entity.EventPlayerHit:
			s.log.WithField("damage", e.Amount).Trace("player hit")
		}
	}
}

// GoToBossRoom jumps to the boss room. Debug sessions only.
func (s *Session) GoToBossRoom() error {
	if s.phase != PhasePlaying || !s.opts.Debug {
		return fmt.Errorf("boss jump from %s: %w", s.phase, ErrInvalidTransition)
	}
	s.ctrl.GoToBossRoom()
	return nil
}

// Restart returns to the configuration screen after a win or death.
func (s *Session) Restart() error {
	if s.phase != PhaseWin && s.phase != PhaseDead {
		return fmt.Errorf("restart from %s: %w", s.phase, ErrInvalidTransition)
	}
	s.transition(PhaseConfiguring)
	return nil
}

func (s *Session) die() {
	s.timers.StopAll()
	s.trapCount = 0
	for i := 0; i < inventory.MaxHotbar; i++ {
		s.inventory.RemoveFromHotbar(i)
	}
	s.inventory.SetHotbarSize(0)
	s.inventory.Clear()
	s.log.WithField("coins", s.player.Coins).Info("player died")
	s.teardown()
	s.transition(PhaseDead)
}

func (s *Session) win() {
	s.timers.StopAll()
	s.log.WithField("coins", s.player.Coins).Info("boss defeated")
	s.transition(PhaseWin)
}

// teardown discards the finished game.
func (s *Session) teardown() {
	if s.loop != nil {
		s.loop.Reset()
	}
	s.opts.Board.RemoveNode(s.player)
	s.player = nil
	s.ctrl = nil
	s.loop = nil
	s.layout = nil
}
