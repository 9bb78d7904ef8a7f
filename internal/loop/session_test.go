package loop

import (
	"errors"
	"io"
	"math/rand"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/entity"
	"github.com/tomz197/mythbusters/internal/input"
)

// testDefinition is a small dungeon: start at (1,1), skeletons to the
// right, the boss below.
var testDefinition = dungeon.Definition{
	Name: "test",
	Grid: []string{
		"#.#.",
		".SM.",
		"#B#.",
	},
}

type recordingBoard struct {
	rooms []*dungeon.Room
	nodes map[entity.Object]bool
}

func newRecordingBoard() *recordingBoard {
	return &recordingBoard{nodes: make(map[entity.Object]bool)}
}

func (b *recordingBoard) UpdateBoard(room *dungeon.Room) { b.rooms = append(b.rooms, room) }
func (b *recordingBoard) AddNode(obj entity.Object)      { b.nodes[obj] = true }
func (b *recordingBoard) RemoveNode(obj entity.Object)   { delete(b.nodes, obj) }

type fakeMusic struct{ plays, stops int }

func (m *fakeMusic) Play() { m.plays++ }
func (m *fakeMusic) Stop() { m.stops++ }

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newTestSession(t *testing.T, debug bool) (*Session, *recordingBoard, *fakeMusic) {
	t.Helper()
	db, err := data.Load()
	if err != nil {
		t.Fatal(err)
	}
	board := newRecordingBoard()
	music := &fakeMusic{}
	s := NewSession(SessionOptions{
		DB:         db,
		Definition: testDefinition,
		Board:      board,
		Music:      music,
		Rand:       rand.New(rand.NewSource(7)),
		Debug:      debug,
		Log:        quietLog(),
	})
	return s, board, music
}

// playing returns a session already in a game with the sword on Easy.
func playing(t *testing.T, debug bool) (*Session, *recordingBoard) {
	t.Helper()
	s, board, _ := newTestSession(t, debug)
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	if err := s.Configure(Settings{Name: "Zelda", Difficulty: Easy}); err != nil {
		t.Fatal(err)
	}
	return s, board
}

func idle() input.Input {
	return input.Input{Number: -1}
}

func TestMusicPlaysFromLaunch(t *testing.T) {
	s, _, music := newTestSession(t, false)
	if s.Phase() != PhaseMenu {
		t.Fatalf("new session in %v", s.Phase())
	}
	if music.plays != 1 {
		t.Fatalf("plays at launch = %d, want 1", music.plays)
	}
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	if music.plays != 1 || s.Phase() != PhaseConfiguring {
		t.Errorf("plays = %d, phase = %v", music.plays, s.Phase())
	}
	if err := s.Begin(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Begin err = %v", err)
	}
	s.Close()
	if music.stops != 1 {
		t.Errorf("stops = %d, want 1", music.stops)
	}
}

func TestConfigureRejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		s, _, _ := newTestSession(t, false)
		s.Begin()
		err := s.Configure(Settings{Name: name})
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("Configure(%q) err = %v", name, err)
		}
		if s.Player() != nil || s.Phase() != PhaseConfiguring {
			t.Errorf("Configure(%q) changed state: player %v, phase %v", name, s.Player(), s.Phase())
		}
	}
}

func TestConfigureStartsGame(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		coins      int
	}{
		{Easy, 30},
		{Medium, 20},
		{Hard, 10},
	}
	for _, tt := range tests {
		s, board, _ := newTestSession(t, false)
		s.Begin()
		if err := s.Configure(Settings{Name: "  Zelda ", WeaponIndex: 1, Difficulty: tt.difficulty}); err != nil {
			t.Fatalf("%v: %v", tt.difficulty, err)
		}
		p := s.Player()
		if p == nil || s.Phase() != PhasePlaying {
			t.Fatalf("%v: no game started", tt.difficulty)
		}
		if p.Name != "Zelda" || p.Coins != tt.coins || p.Weapon.Name != "Bow" {
			t.Errorf("%v: player = %q, %d coins, %s", tt.difficulty, p.Name, p.Coins, p.Weapon.Name)
		}
		if s.Inventory().HotbarSize() != config.InitialHotbarSize {
			t.Errorf("hotbar size = %d", s.Inventory().HotbarSize())
		}
		if got := s.Room().Coord(); got != (dungeon.Coord{Row: 1, Col: 1}) {
			t.Errorf("started in %v", got)
		}
		if !board.nodes[p] {
			t.Error("player not on the board")
		}
		if !s.Timers().Running() {
			t.Error("timers not started")
		}
	}
}

func TestConfigureErrors(t *testing.T) {
	s, _, _ := newTestSession(t, false)
	if err := s.Configure(Settings{Name: "Zelda"}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Configure from menu err = %v", err)
	}
	s.Begin()
	if err := s.Configure(Settings{Name: "Zelda", WeaponIndex: 99}); !errors.Is(err, data.ErrUnknownWeapon) {
		t.Errorf("bad weapon err = %v", err)
	}
	if s.Player() != nil {
		t.Error("player created despite error")
	}
	if err := s.Restart(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Restart while configuring err = %v", err)
	}
}

func TestTimerOrderFollowsWeapon(t *testing.T) {
	names := func(s *Session) []string {
		var out []string
		for _, tm := range s.Timers().Timers() {
			out = append(out, tm.Name)
		}
		return out
	}

	s, _ := playing(t, false)
	want := []string{"player", "regen", "monsters", "items", "controller"}
	if got := names(s); !reflect.DeepEqual(got, want) {
		t.Errorf("sword timers = %v, want %v", got, want)
	}

	b, _, _ := newTestSession(t, false)
	b.Begin()
	b.Configure(Settings{Name: "Link", WeaponIndex: 1})
	want = []string{"player", "arrows", "regen", "monsters", "items", "controller"}
	if got := names(b); !reflect.DeepEqual(got, want) {
		t.Errorf("bow timers = %v, want %v", got, want)
	}
}

// standInDoor places the player across the door in direction d.
func standInDoor(p *entity.Player, d dungeon.Direction) {
	r := dungeon.DoorRect(d)
	cx, cy := r.Center()
	p.MoveAbsolute(cx-p.W/2, cy-p.H/2)
}

func TestWalkThroughDoor(t *testing.T) {
	s, board := playing(t, false)
	p := s.Player()
	start := s.Room()

	standInDoor(p, dungeon.Right)
	s.Tick(idle())

	room := s.Room()
	if got := room.Coord(); got != (dungeon.Coord{Row: 1, Col: 2}) {
		t.Fatalf("player in %v, want 1-2", got)
	}
	if s.Controller().Previous() != start {
		t.Error("previous room not recorded")
	}
	if p.X != config.EntryNear {
		t.Errorf("player x = %v, want %v", p.X, config.EntryNear)
	}
	if room.Door(dungeon.Left).Locked() {
		t.Error("door back to the start room is locked")
	}
	if !room.Door(dungeon.Right).Locked() {
		t.Error("far door open while monsters live")
	}
	if board.rooms[len(board.rooms)-1] != room {
		t.Error("board not switched to the new room")
	}
	if got := s.GameLoop().Registry().Count(entity.KindMonster); got != room.MonsterCount() || got == 0 {
		t.Errorf("registered monsters = %d, room has %d", got, room.MonsterCount())
	}

	// The entry point is clear of the door, so nothing bounces back.
	s.Tick(idle())
	if s.Room() != room {
		t.Error("player moved again without walking into a door")
	}
}

func TestClearedRoomOpens(t *testing.T) {
	s, _ := playing(t, false)
	standInDoor(s.Player(), dungeon.Right)
	s.Tick(idle())
	room := s.Room()

	for _, m := range room.Monsters {
		m.Damage(1e6)
	}
	s.Tick(idle())

	if room.MonsterCount() != 0 || len(room.Monsters) != 0 {
		t.Fatalf("%d monsters left", room.MonsterCount())
	}
	for _, d := range room.Doors() {
		if d.Locked() {
			t.Errorf("%v door still locked", d.Dir)
		}
	}
	if s.GameLoop().Registry().Count(entity.KindEffect) == 0 {
		t.Error("no death burst")
	}
}

func TestOffscreenMonstersWait(t *testing.T) {
	s, _ := playing(t, false)
	other := s.Layout().Room(1, 2)
	type pos struct{ x, y float64 }
	before := make([]pos, len(other.Monsters))
	for i, m := range other.Monsters {
		b := m.Bounds()
		before[i] = pos{b.X, b.Y}
	}
	for i := 0; i < 60; i++ {
		s.Tick(idle())
	}
	for i, m := range other.Monsters {
		b := m.Bounds()
		if (pos{b.X, b.Y}) != before[i] {
			t.Errorf("monster %d moved from %v to %v", i, before[i], pos{b.X, b.Y})
		}
	}
}

func TestTrapCounter(t *testing.T) {
	s, _ := playing(t, false)
	p := s.Player()
	room := s.Room()
	room.Traps = append(room.Traps, entity.NewTrap(p.X, p.Y, 0))
	s.GameLoop().EnterRoom(room)

	s.Tick(idle())
	if s.TrapCount() != 1 {
		t.Errorf("trap count = %d, want 1", s.TrapCount())
	}
}

func TestDeathResetsGame(t *testing.T) {
	s, board := playing(t, false)
	p := s.Player()
	s.Inventory().Add(data.Item{Name: "Health Potion", Kind: data.ItemPotion, Value: 30})
	s.trapCount = 4

	p.Damage(1e6)
	s.Tick(idle())

	if s.Phase() != PhaseDead {
		t.Fatalf("phase = %v", s.Phase())
	}
	if s.Player() != nil || board.nodes[p] {
		t.Error("dead player still around")
	}
	if s.Timers().Running() {
		t.Error("timers still running")
	}
	if s.TrapCount() != 0 || s.Inventory().Len() != 0 || s.Inventory().HotbarSize() != 0 {
		t.Errorf("traps %d, items %d, hotbar %d", s.TrapCount(), s.Inventory().Len(), s.Inventory().HotbarSize())
	}

	s.Tick(idle())
	if s.Phase() != PhaseDead {
		t.Error("tick after death changed phase")
	}

	if err := s.Restart(); err != nil {
		t.Fatal(err)
	}
	if err := s.Configure(Settings{Name: "Zelda"}); err != nil {
		t.Fatal(err)
	}
	if s.Inventory().HotbarSize() != config.InitialHotbarSize || s.Player().Coins != 30 {
		t.Error("second game not fresh")
	}
}

func TestBossKillWins(t *testing.T) {
	s, _ := playing(t, true)
	if err := s.GoToBossRoom(); err != nil {
		t.Fatal(err)
	}
	room := s.Room()
	if room.Kind != dungeon.KindBoss {
		t.Fatalf("jumped to a %v room", room.Kind)
	}
	for _, m := range room.Monsters {
		if m.IsBoss() {
			m.Damage(1e9)
		}
	}
	s.Tick(idle())

	if s.Phase() != PhaseWin {
		t.Fatalf("phase = %v", s.Phase())
	}
	if s.Timers().Running() {
		t.Error("timers still running after the win")
	}
	if s.Player() == nil {
		t.Error("winner discarded")
	}
	if err := s.Restart(); err != nil {
		t.Errorf("Restart after win: %v", err)
	}
}

func TestBossJumpNeedsDebug(t *testing.T) {
	s, _ := playing(t, false)
	if err := s.GoToBossRoom(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v", err)
	}
	s.Tick(input.Input{Number: -1, Boss: true})
	if s.Room().Kind == dungeon.KindBoss {
		t.Error("boss key honoured outside debug")
	}

	d, _ := playing(t, true)
	d.Tick(input.Input{Number: -1, Boss: true})
	if d.Room().Kind != dungeon.KindBoss {
		t.Error("boss key ignored in debug")
	}
}

func TestEnterRoomDropsTransients(t *testing.T) {
	board := newRecordingBoard()
	g := NewGameLoop(board, rand.New(rand.NewSource(1)), quietLog())
	layout, err := dungeon.Build(testDefinition, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.EnterRoom(layout.Start())
	fireball := entity.NewFireball(100, 100, 300, 300, 5)
	g.Spawn(fireball)
	g.settle()
	if !g.Registry().Contains(fireball) || !board.nodes[fireball] {
		t.Fatal("fireball not registered")
	}

	g.EnterRoom(layout.Room(1, 0))
	if g.Registry().Contains(fireball) || board.nodes[fireball] {
		t.Error("fireball followed the player")
	}
	if !layout.Room(1, 0).Visited {
		t.Error("room not marked visited")
	}
}

func TestWalkThroughEachDoor(t *testing.T) {
	arena := entity.Arena()
	tests := []struct {
		dir  dungeon.Direction
		to   dungeon.Coord
		x, y float64
	}{
		{dungeon.Left, dungeon.Coord{Row: 1, Col: 0}, config.ArenaWidth - config.EntryFar, config.ArenaHeight/2 - config.PlayerSize/2},
		{dungeon.Right, dungeon.Coord{Row: 1, Col: 2}, config.EntryNear, config.ArenaHeight/2 - config.PlayerSize/2},
		{dungeon.Top, dungeon.Coord{Row: 0, Col: 1}, config.ArenaWidth/2 - config.PlayerSize/2, config.ArenaHeight - config.EntryFar},
		{dungeon.Bottom, dungeon.Coord{Row: 2, Col: 1}, config.ArenaWidth/2 - config.PlayerSize/2, config.EntryNear},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s, _ := playing(t, false)
			p := s.Player()
			from := s.Room().Coord()

			standInDoor(p, tt.dir)
			s.Tick(idle())

			room := s.Room()
			if got := room.Coord(); got != tt.to {
				t.Fatalf("player in %v, want %v", got, tt.to)
			}
			if p.X != tt.x || p.Y != tt.y {
				t.Errorf("player at (%v, %v), want (%v, %v)", p.X, p.Y, tt.x, tt.y)
			}
			if !arena.Contains(p.Bounds()) {
				t.Errorf("player %v outside the arena", p.Bounds())
			}
			back := room.Door(tt.dir.Opposite())
			if back == nil || back.Locked() || !back.Leads(from) {
				t.Errorf("door back to %v missing or locked", from)
			}

			s.Tick(idle())
			if s.Room() != room {
				t.Errorf("bounced to %v on the next tick", s.Room().Coord())
			}
		})
	}
}

func TestLockedDoorDoesNotTrigger(t *testing.T) {
	s, _ := playing(t, false)
	standInDoor(s.Player(), dungeon.Right)
	s.Tick(idle())
	room := s.Room()

	far := room.Door(dungeon.Right)
	if far == nil || !far.Locked() {
		t.Fatal("far door of a monster room should be locked")
	}
	standInDoor(s.Player(), dungeon.Right)
	for i := 0; i < 3; i++ {
		s.Tick(idle())
	}
	if s.Room() != room {
		t.Errorf("walked through a locked door into %v", s.Room().Coord())
	}
}

func TestResetReleasesEffects(t *testing.T) {
	board := newRecordingBoard()
	g := NewGameLoop(board, rand.New(rand.NewSource(1)), quietLog())
	spark := entity.NewParticle(10, 10, 1, 1, 30)
	g.Spawn(spark)
	g.settle()
	if !g.Registry().Contains(spark) {
		t.Fatal("particle not registered")
	}

	g.Reset()
	if g.Registry().Len() != 0 || board.nodes[spark] {
		t.Error("particle survived Reset")
	}
	if spark.Lifetime != 0 || spark.MaxLifetime != 0 {
		t.Errorf("particle not returned to the pool: %+v", *spark)
	}
}
