package loop

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty controls monster strength and the starting purse.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every level in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Code is the scaling factor handed to monster constructors.
func (d Difficulty) Code() int {
	return int(d)
}

// StartingCoins is the purse a new hero begins with.
func (d Difficulty) StartingCoins() int {
	switch d {
	case Easy:
		return 30
	case Medium:
		return 20
	case Hard:
		return 10
	}
	return 0
}

// Next cycles to the following level, wrapping around.
func (d Difficulty) Next() Difficulty {
	return Difficulties[(int(d)+1)%len(Difficulties)]
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty accepts "easy", "medium" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("%q: %w", s, ErrUnknownDifficulty)
}
