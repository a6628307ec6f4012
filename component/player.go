package component

// PlayerComponent marks the single player-controlled entity
type PlayerComponent struct{}
