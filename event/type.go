package event

// EventType represents the type of game event
type EventType uint8

const (
	// EventSessionStarted signals a fresh session
	// Trigger: session.New | Payload: SessionPayload
	EventSessionStarted EventType = iota

	// EventDotCollected signals the player picked up a dot
	// Trigger: encounter rules | Payload: CollectPayload
	EventDotCollected

	// EventPelletCollected signals the player picked up a power pellet
	// Trigger: encounter rules | Payload: CollectPayload
	EventPelletCollected

	// EventCollectibleRestored signals a dot or pellet reappeared
	// Trigger: respawn task | Payload: CollectPayload
	EventCollectibleRestored

	// EventModeChanged signals all enemies switched mode
	// Trigger: pellet pickup, frightened countdown expiry | Payload: ModePayload
	EventModeChanged

	// EventEnemySpawned signals a new enemy entered the maze
	// Trigger: spawn timer | Payload: EnemyPayload
	EventEnemySpawned

	// EventEnemyEaten signals the player caught a frightened enemy
	// Trigger: encounter rules | Payload: EnemyPayload
	EventEnemyEaten

	// EventGameOver signals the session ended
	// Trigger: chase-mode contact | Payload: GameOverPayload
	EventGameOver

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventSessionStarted:      "session_started",
	EventDotCollected:        "dot_collected",
	EventPelletCollected:     "pellet_collected",
	EventCollectibleRestored: "collectible_restored",
	EventModeChanged:         "mode_changed",
	EventEnemySpawned:        "enemy_spawned",
	EventEnemyEaten:          "enemy_eaten",
	EventGameOver:            "game_over",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventNames[t]
	}
	return "unknown"
}
