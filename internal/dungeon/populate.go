package dungeon

import (
	"math/rand"

	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/entity"
)

// Item names the spawner looks up in the database.
const (
	coinItem   = "Coin"
	goldItem   = "Gold Pile"
	potionItem = "Health Potion"
)

// Spawner is the standard Populator. Monster count and strength grow with
// the difficulty code.
type Spawner struct {
	Difficulty int
	Rand       *rand.Rand
	DB         *data.Database
}

// NewSpawner creates a populator. A nil rng gets a fixed seed.
func NewSpawner(difficulty int, db *data.Database, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Spawner{Difficulty: difficulty, Rand: rng, DB: db}
}

func (s *Spawner) Populate(room *Room, cell byte) {
	extra := s.Difficulty
	switch cell {
	case CellMelee:
		for i := 0; i < 2+extra; i++ {
			s.addMonster(room, s.melee())
		}
	case CellMage:
		for i := 0; i < 1+(extra+1)/2; i++ {
			s.addMonster(room, s.mage())
		}
	case CellMixed:
		s.addMonster(room, s.melee())
		s.addMonster(room, s.mage())
		for i := 0; i < extra; i++ {
			s.addMonster(room, s.melee())
		}
	case CellTrap:
		for i := 0; i < 3+extra; i++ {
			x, y := s.spot(config.TrapSize)
			room.Traps = append(room.Traps, entity.NewTrap(x, y, s.Difficulty))
		}
		s.addMonster(room, s.melee())
	case CellTreasure:
		s.addItem(room, goldItem)
		s.addItem(room, goldItem)
		s.addItem(room, potionItem)
	case CellBoss:
		x := float64(config.ArenaWidth)/2 - entity.MedusaStats.Size/2
		y := float64(config.ArenaHeight)/2 - entity.MedusaStats.Size/2
		boss := entity.NewBoss(x, y, s.Difficulty, s.Rand)
		boss.Drops = s.items(goldItem, potionItem)
		room.Monsters = append(room.Monsters, boss)
		for i := 0; i < extra; i++ {
			s.addMonster(room, s.mage())
		}
	}
}

func (s *Spawner) melee() entity.Hostile {
	x, y := s.spot(entity.SkeletonStats.Size)
	m := entity.NewMelee(x, y, s.Difficulty)
	m.Drops = s.items(coinItem)
	return m
}

func (s *Spawner) mage() entity.Hostile {
	x, y := s.spot(entity.MageStats.Size)
	m := entity.NewMage(x, y, s.Difficulty, s.Rand)
	m.Drops = s.items(coinItem)
	return m
}

func (s *Spawner) addMonster(room *Room, m entity.Hostile) {
	room.Monsters = append(room.Monsters, m)
}

func (s *Spawner) addItem(room *Room, name string) {
	for _, it := range s.items(name) {
		x, y := s.spot(config.PlayerSize)
		room.AddItem(entity.NewPickup(it, x, y))
	}
}

// items looks up drops by name. Names missing from the database are skipped.
func (s *Spawner) items(names ...string) []data.Item {
	if s.DB == nil {
		return nil
	}
	var out []data.Item
	for _, n := range names {
		if it, err := s.DB.Item(n); err == nil {
			out = append(out, it)
		}
	}
	return out
}

// spot picks a position away from the walls so nothing spawns in a doorway.
func (s *Spawner) spot(size float64) (float64, float64) {
	const margin = 150
	w := float64(config.ArenaWidth) - 2*margin - size
	h := float64(config.ArenaHeight) - 2*margin - size
	return margin + s.Rand.Float64()*w, margin + s.Rand.Float64()*h
}
