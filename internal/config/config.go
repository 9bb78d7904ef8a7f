package config

import "time"

// Arena - every room shares the same logical playfield.
// Rendering scales these to the terminal size.
const (
	ArenaWidth  = 1200
	ArenaHeight = 800

	// Broad-phase cell size; at least half the largest monster.
	GridCellSize = 128
)

// Doors sit in the middle of each wall.
const (
	DoorThickness = 40
	DoorSpan      = 120
)

// Re-entry offsets: how far from the wall the player lands after walking
// through a door.
const (
	EntryNear = 100 // Distance from the near wall (left/top)
	EntryFar  = 200 // Distance from the far wall (right/bottom)
)

// Simulation clock
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Timer periods in ticks
const (
	PlayerLogicEvery  = 1
	ArrowEvery        = 1
	MonsterLoopEvery  = 1
	ItemLoopEvery     = 1
	ControllerEvery   = 1
	HealthRegenEvery  = 120 // Two seconds per regenerated point
	HealthRegenAmount = 1
)

// Player
const (
	PlayerSize          = 50
	PlayerHealth        = 100
	PlayerSpeed         = 6
	PlayerInvulnerable  = 45 // Ticks of invulnerability after a hit
	MaxNameLength       = 16
	HotbarSlots         = 5
	InitialHotbarSize   = 3
	PotionHealingAmount = 30
)

// Monsters
const (
	TargetThreshold      = 10  // Per-axis distance that counts as "in position"
	MageInitialCooldown  = 15  // Ticks before a fresh mage fires
	MageFireballCooldown = 500 // Ticks between fireballs
	MeleeAttackCooldown  = 60
	BossVolleyCooldown   = 240
	BossRageCooldown     = 150
	BossVolleySize       = 8
	DifficultyScale      = 0.5 // Extra stat multiplier per difficulty step
)

// Projectiles
const (
	FireballSize   = 20
	FireballSpeed  = 7
	FireballDamage = 10
	FireballRange  = 900
	ArrowSize      = 12
	ArrowSpeed     = 14
)

// Traps
const (
	TrapSize     = 40
	TrapDamage   = 5
	TrapCooldown = 90
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Max render resolution; larger terminals get a centered, bordered canvas.
const (
	MaxRenderCols = 160
	MaxRenderRows = 50
)
