package loop

import (
	"errors"
	"testing"
)

func TestDifficultyStartingCoins(t *testing.T) {
	tests := []struct {
		d     Difficulty
		coins int
		code  int
	}{
		{Easy, 30, 0},
		{Medium, 20, 1},
		{Hard, 10, 2},
	}
	for _, tt := range tests {
		if got := tt.d.StartingCoins(); got != tt.coins {
			t.Errorf("%v coins = %d, want %d", tt.d, got, tt.coins)
		}
		if got := tt.d.Code(); got != tt.code {
			t.Errorf("%v code = %d, want %d", tt.d, got, tt.code)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
		err  error
	}{
		{"easy", Easy, nil},
		{"MEDIUM", Medium, nil},
		{" Hard ", Hard, nil},
		{"nightmare", Easy, ErrUnknownDifficulty},
		{"", Easy, ErrUnknownDifficulty},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseDifficulty(%q) err = %v, want %v", tt.in, err, tt.err)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyNextWraps(t *testing.T) {
	if Easy.Next() != Medium || Medium.Next() != Hard || Hard.Next() != Easy {
		t.Error("Next does not cycle Easy -> Medium -> Hard -> Easy")
	}
}
