package dungeon

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var layoutYAML []byte

var (
	ErrEmptyGrid    = errors.New("layout grid is empty")
	ErrRaggedGrid   = errors.New("layout rows differ in length")
	ErrUnknownCell  = errors.New("unknown layout cell")
	ErrStartMissing = errors.New("layout needs exactly one start room")
	ErrBossMissing  = errors.New("layout needs exactly one boss room")
)

// Cell symbols of a layout grid.
const (
	CellNone     = '#'
	CellEmpty    = '.'
	CellStart    = 'S'
	CellBoss     = 'B'
	CellMelee    = 'M'
	CellMage     = 'R'
	CellMixed    = 'X'
	CellTreasure = 'T'
	CellTrap     = '^'
)

// Definition is the textual form of a dungeon.
type Definition struct {
	Name string   `yaml:"name"`
	Grid []string `yaml:"grid"`
}

// LoadDefinition parses the built-in dungeon.
func LoadDefinition() (Definition, error) {
	return ParseDefinition(layoutYAML)
}

// ParseDefinition decodes and validates a YAML dungeon definition.
func ParseDefinition(doc []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(doc, &def); err != nil {
		return Definition{}, fmt.Errorf("parse layout: %w", err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Validate checks the grid is rectangular, uses known symbols and has one
// start and one boss room.
func (d Definition) Validate() error {
	if len(d.Grid) == 0 || len(d.Grid[0]) == 0 {
		return ErrEmptyGrid
	}
	width := len(d.Grid[0])
	starts, bosses := 0, 0
	for r, row := range d.Grid {
		if len(row) != width {
			return fmt.Errorf("row %d: %w", r, ErrRaggedGrid)
		}
		for c, cell := range row {
			if !strings.ContainsRune("#.SBMRXT^", cell) {
				return fmt.Errorf("cell (%d,%d) %q: %w", r, c, cell, ErrUnknownCell)
			}
			switch cell {
			case CellStart:
				starts++
			case CellBoss:
				bosses++
			}
		}
	}
	if starts != 1 {
		return ErrStartMissing
	}
	if bosses != 1 {
		return ErrBossMissing
	}
	return nil
}

func kindOf(cell byte) RoomKind {
	switch cell {
	case CellStart:
		return KindStart
	case CellBoss:
		return KindBoss
	case CellTreasure:
		return KindTreasure
	case CellTrap:
		return KindTrap
	}
	return KindNormal
}
