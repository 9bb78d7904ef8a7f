package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/mythbusters/internal/dungeon"
	"github.com/tomz197/mythbusters/internal/inventory"
)

// blinkFrames is the half period of blinking prompts.
const blinkFrames = 36

// drawUI draws the text layer for the current phase.
func (g *Game) drawUI() {
	termWidth := g.canvas.TerminalWidth()
	termHeight := g.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch g.session.Phase() {
	case PhaseMenu:
		g.drawMenuScreen(centerX, centerY)
	case PhaseConfiguring:
		g.drawConfigScreen(centerX, centerY)
	case PhasePlaying:
		g.drawPlayingHUD(termWidth, termHeight)
	case PhaseWin:
		g.drawWinScreen(centerX, centerY)
	case PhaseDead:
		g.drawDeadScreen(centerX, centerY)
	}
}

func (g *Game) blinkOn() bool {
	return g.frame/blinkFrames%2 == 0
}

// writeArt writes lines of ASCII art centered on centerX starting at row.
func (g *Game) writeArt(centerX, row int, art []string) int {
	width := 0
	for _, line := range art {
		if len(line) > width {
			width = len(line)
		}
	}
	for i, line := range art {
		g.chunkWriter.WriteAt(centerX-width/2, row+i, line)
	}
	return row + len(art)
}

// drawMenuScreen draws the title screen.
func (g *Game) drawMenuScreen(centerX, centerY int) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		` __  __ _   _ _____ _  _ ___ _   _ ___ _____ ___ ___  ___ `,
		`|  \/  | | | |_   _| || | _ ) | | / __|_   _| __| _ \/ __|`,
		`| |\/| | |_| | | | | __ | _ \ |_| \__ \ | | | _||   /\__ \`,
		`|_|  |_|\__, | |_| |_||_|___/\___/|___/ |_| |___|_|_\|___/`,
		`        |___/                                             `,
	}

	cw := g.chunkWriter
	row := g.writeArt(centerX, centerY-8, titleArt)

	cw.WriteCentered(centerX, row+1, "~ Slay Medusa in the depths of the labyrinth ~")

	controlsY := row + 3
	cw.WriteCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"W A S D / Arrows . . Move",
		"SPACE  . . . . . . Attack",
		"1 - 5  . . . . Use hotbar",
		"Q  . . . . . . . . . Quit",
	}
	if g.session.Debug() {
		controlLines = append(controlLines, "B  . . . . . Boss room (debug)")
	}
	for i, line := range controlLines {
		cw.WriteCentered(centerX, controlsY+1+i, line)
	}

	if g.blinkOn() {
		cw.WriteCentered(centerX, controlsY+len(controlLines)+2, ">>  Press ENTER to Start  <<")
	}
}

// drawConfigScreen draws the hero configuration form.
func (g *Game) drawConfigScreen(centerX, centerY int) {
	cw := g.chunkWriter
	f := g.form

	cw.WriteCentered(centerX, centerY-6, "CREATE YOUR HERO")

	cursor := " "
	if g.blinkOn() {
		cursor = "_"
	}
	left := centerX - 18
	cw.WriteAt(left, centerY-3, fmt.Sprintf("Name:       %s%s", f.Name, cursor))
	cw.WriteAt(left, centerY-1, fmt.Sprintf("Weapon:     < %s >", f.WeaponName()))
	cw.WriteAt(left, centerY+1, fmt.Sprintf("Difficulty: < %s >  (%d coins)", f.Difficulty, f.Difficulty.StartingCoins()))

	cw.WriteCentered(centerX, centerY+4, "Type a name  .  [ ] weapon  .  TAB difficulty  .  ENTER begin")

	if f.Warning != "" {
		cw.WriteCentered(centerX, centerY+6, "! "+f.Warning)
	}
}

// drawPlayingHUD draws the status lines over the arena.
func (g *Game) drawPlayingHUD(termWidth, termHeight int) {
	s := g.session
	p := s.Player()
	if p == nil {
		return
	}
	cw := g.chunkWriter

	status := fmt.Sprintf("%s  |  %s  |  Coins: %-4d |  HP: %3.0f/%-3.0f",
		p.Name, p.Weapon.Name, p.Coins, p.Health, p.MaxHealth)
	cw.WriteAt(2, 1, status)

	if room := s.Room(); room != nil {
		info := room.Info()
		cw.WriteAt(termWidth-len(info)-1, 1, info)
	}

	cw.WriteAt(2, termHeight, hotbarText(s.Inventory()))

	if s.Layout() != nil {
		g.drawMinimap(termWidth, termHeight)
	}
}

// hotbarText renders the unlocked hotbar slots.
func hotbarText(inv *inventory.Inventory) string {
	var b strings.Builder
	for i := 0; i < inv.HotbarSize(); i++ {
		name := "-"
		if it := inv.Hotbar(i); it != nil {
			name = it.Name
		}
		fmt.Fprintf(&b, "[%d:%s] ", i+1, name)
	}
	return strings.TrimSpace(b.String())
}

// drawMinimap draws the dungeon grid in the bottom-right corner: the
// current room, visited rooms and rooms not yet seen.
func (g *Game) drawMinimap(termWidth, termHeight int) {
	lines := minimapLines(g.session.Layout(), g.session.Room())
	if len(lines) == 0 {
		return
	}
	width := len([]rune(lines[0]))
	startCol := termWidth - width - 1
	startRow := termHeight - len(lines)
	if startCol < 1 || startRow < 2 {
		return // Not enough space
	}
	for i, line := range lines {
		g.chunkWriter.WriteAt(startCol, startRow+i, line)
	}
}

// minimapLines renders the layout as a boxed grid, one cell per room:
// '@' current, 'B' boss, '#' visited, '?' unvisited.
func minimapLines(l *dungeon.Layout, current *dungeon.Room) []string {
	rows, cols := l.Size()
	if rows == 0 || cols == 0 {
		return nil
	}
	out := make([]string, 0, rows+2)
	out = append(out, "┌"+strings.Repeat("─", cols)+"┐")
	for r := 0; r < rows; r++ {
		var b strings.Builder
		b.WriteString("│")
		for c := 0; c < cols; c++ {
			room := l.Room(r, c)
			switch {
			case room == nil:
				b.WriteByte(' ')
			case room == current:
				b.WriteByte('@')
			case room.Kind == dungeon.KindBoss && room.Visited:
				b.WriteByte('B')
			case room.Visited:
				b.WriteByte('#')
			default:
				b.WriteByte('?')
			}
		}
		b.WriteString("│")
		out = append(out, b.String())
	}
	out = append(out, "└"+strings.Repeat("─", cols)+"┘")
	return out
}

// drawWinScreen draws the victory screen.
func (g *Game) drawWinScreen(centerX, centerY int) {
	titleArt := []string{
		`__   _____  _   _  __      _____ _  _ `,
		`\ \ / / _ \| | | | \ \    / /_ _| \| |`,
		` \ V / (_) | |_| |  \ \/\/ / | || .' |`,
		`  |_| \___/ \___/    \_/\_/ |___|_|\_|`,
	}
	cw := g.chunkWriter
	row := g.writeArt(centerX, centerY-6, titleArt)

	if p := g.session.Player(); p != nil {
		cw.WriteCentered(centerX, row+1, fmt.Sprintf("%s has slain Medusa!", p.Name))
		cw.WriteCentered(centerX, row+2, fmt.Sprintf("Coins: %d", p.Coins))
	}
	if g.blinkOn() {
		cw.WriteCentered(centerX, row+4, ">>  Press ENTER to play again  <<")
	}
}

// drawDeadScreen draws the death screen.
func (g *Game) drawDeadScreen(centerX, centerY int) {
	titleArt := []string{
		` __   _____  _   _   ___ ___ ___ ___  `,
		` \ \ / / _ \| | | | |   \_ _| __|   \ `,
		`  \ V / (_) | |_| | | |) | || _|| |) |`,
		`   |_| \___/ \___/  |___/___|___|___/ `,
	}
	cw := g.chunkWriter
	row := g.writeArt(centerX, centerY-6, titleArt)

	cw.WriteCentered(centerX, row+1, "The labyrinth claims another hero.")
	if g.blinkOn() {
		cw.WriteCentered(centerX, row+3, ">>  Press ENTER to Restart  <<")
	}
}
