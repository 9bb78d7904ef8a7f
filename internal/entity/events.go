package entity

// EventType identifies something an entity reports to the game loop.
type EventType int

const (
	EventPlayerHit EventType = iota
	EventTrapSprung
	EventBossEnraged
	EventMonsterAttack
)

// Event is a notification raised during update. Entities describe what
// happened; the loop decides what it means for the session.
type Event struct {
	Type   EventType
	Source Object
	Amount float64
}
