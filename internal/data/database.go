// Package data holds the read-only weapon and item tables.
package data

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed weapons.yaml
var weaponsYAML []byte

//go:embed items.yaml
var itemsYAML []byte

var (
	ErrUnknownWeapon = errors.New("unknown weapon")
	ErrUnknownItem   = errors.New("unknown item")
	ErrEmptyTable    = errors.New("empty table")
)

// WeaponKind separates close-range swings from weapons that fire projectiles.
type WeaponKind string

const (
	WeaponMelee  WeaponKind = "melee"
	WeaponRanged WeaponKind = "ranged"
)

// Weapon describes an equippable weapon.
type Weapon struct {
	Name     string     `yaml:"name"`
	Kind     WeaponKind `yaml:"kind"`
	Damage   float64    `yaml:"damage"`
	Range    float64    `yaml:"range"`    // Reach for melee, travel distance for ranged
	Cooldown int        `yaml:"cooldown"` // Ticks between attacks
	Glyph    string     `yaml:"glyph"`
}

// Ranged reports whether the weapon fires projectiles.
func (w Weapon) Ranged() bool {
	return w.Kind == WeaponRanged
}

// ItemKind identifies what picking an item up does.
type ItemKind string

const (
	ItemCoin   ItemKind = "coin"
	ItemPotion ItemKind = "potion"
)

// Item describes a collectible.
type Item struct {
	Name  string   `yaml:"name"`
	Kind  ItemKind `yaml:"kind"`
	Value int      `yaml:"value"` // Coins granted or health restored
	Glyph string   `yaml:"glyph"`
}

// Database is the weapon and item lookup. It is built once at start-up and
// never mutated afterwards, so it can be shared between sessions.
type Database struct {
	weapons []Weapon
	items   map[string]Item
	order   []string
}

// Load parses the embedded tables.
func Load() (*Database, error) {
	return Parse(weaponsYAML, itemsYAML)
}

// Parse builds a database from raw YAML documents.
func Parse(weaponsDoc, itemsDoc []byte) (*Database, error) {
	var w struct {
		Weapons []Weapon `yaml:"weapons"`
	}
	if err := yaml.Unmarshal(weaponsDoc, &w); err != nil {
		return nil, fmt.Errorf("parse weapons: %w", err)
	}
	if len(w.Weapons) == 0 {
		return nil, fmt.Errorf("weapons: %w", ErrEmptyTable)
	}
	for i, weapon := range w.Weapons {
		if err := validateWeapon(weapon); err != nil {
			return nil, fmt.Errorf("weapon %d: %w", i, err)
		}
	}

	var it struct {
		Items []Item `yaml:"items"`
	}
	if err := yaml.Unmarshal(itemsDoc, &it); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	if len(it.Items) == 0 {
		return nil, fmt.Errorf("items: %w", ErrEmptyTable)
	}

	db := &Database{
		weapons: w.Weapons,
		items:   make(map[string]Item, len(it.Items)),
	}
	for _, item := range it.Items {
		key := strings.ToLower(item.Name)
		if _, dup := db.items[key]; dup {
			return nil, fmt.Errorf("item %q defined twice", item.Name)
		}
		db.items[key] = item
		db.order = append(db.order, key)
	}
	return db, nil
}

func validateWeapon(w Weapon) error {
	if w.Name == "" {
		return errors.New("missing name")
	}
	if w.Kind != WeaponMelee && w.Kind != WeaponRanged {
		return fmt.Errorf("%s: bad kind %q", w.Name, w.Kind)
	}
	if w.Damage <= 0 || w.Range <= 0 || w.Cooldown < 0 {
		return fmt.Errorf("%s: damage and range must be positive", w.Name)
	}
	return nil
}

// Weapon returns the weapon at index i of the selection list.
func (db *Database) Weapon(i int) (Weapon, error) {
	if i < 0 || i >= len(db.weapons) {
		return Weapon{}, fmt.Errorf("index %d: %w", i, ErrUnknownWeapon)
	}
	return db.weapons[i], nil
}

// Weapons returns a copy of the selection list.
func (db *Database) Weapons() []Weapon {
	out := make([]Weapon, len(db.weapons))
	copy(out, db.weapons)
	return out
}

// Item looks an item up by name, case-insensitively.
func (db *Database) Item(name string) (Item, error) {
	item, ok := db.items[strings.ToLower(name)]
	if !ok {
		return Item{}, fmt.Errorf("%q: %w", name, ErrUnknownItem)
	}
	return item, nil
}

// Items returns every item in definition order.
func (db *Database) Items() []Item {
	out := make([]Item, 0, len(db.order))
	for _, key := range db.order {
		out = append(out, db.items[key])
	}
	return out
}
