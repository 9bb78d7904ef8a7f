package loop

import (
	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/data"
	"github.com/tomz197/mythbusters/internal/input"
)

// EmptyNameWarning is shown when the hero name is blank.
const EmptyNameWarning = "Your name cannot be empty or whitespace only!"

// Form is the hero configuration screen.
type Form struct {
	Name       []byte
	Weapon     int
	Difficulty Difficulty
	Warning    string
	weapons    []data.Weapon
}

// NewForm creates an empty form offering weapons.
func NewForm(weapons []data.Weapon) *Form {
	return &Form{weapons: weapons}
}

// Reset clears everything the user entered.
func (f *Form) Reset() {
	f.Name = f.Name[:0]
	f.Weapon = 0
	f.Difficulty = Easy
	f.Warning = ""
}

// Handle applies one frame of input and reports whether the form was
// submitted. Printable keys type into the name; [ and ] pick the weapon and
// Tab cycles the difficulty.
func (f *Form) Handle(in input.Input) bool {
	for _, b := range in.Printable() {
		switch b {
		case '[', ']':
			continue
		}
		if len(f.Name) < config.MaxNameLength {
			f.Name = append(f.Name, b)
			f.Warning = ""
		}
	}
	if in.Backspace && len(f.Name) > 0 {
		f.Name = f.Name[:len(f.Name)-1]
	}
	if n := len(f.weapons); n > 0 {
		if in.NextItem {
			f.Weapon = (f.Weapon + 1) % n
		}
		if in.PrevItem {
			f.Weapon = (f.Weapon + n - 1) % n
		}
	}
	if in.Tab {
		f.Difficulty = f.Difficulty.Next()
	}
	return in.Enter
}

// WeaponName returns the selected weapon's name.
func (f *Form) WeaponName() string {
	if f.Weapon < 0 || f.Weapon >= len(f.weapons) {
		return "?"
	}
	return f.weapons[f.Weapon].Name
}

// Settings returns what the form currently holds.
func (f *Form) Settings() Settings {
	return Settings{
		Name:        string(f.Name),
		WeaponIndex: f.Weapon,
		Difficulty:  f.Difficulty,
	}
}
