package events

// Event type constants
const (
	// Frame Events
	EventTypeFrameAdded  EventType = "frame_added"
	EventTypeFrameScored EventType = "frame_scored"

	// Game Events
	EventTypeTurkey      EventType = "turkey"
	EventTypePerfectGame EventType = "perfect_game"
	EventTypeGameOver    EventType = "game_over"
)

// AllEventTypes lists every event type a game can emit
var AllEventTypes = []EventType{
	EventTypeFrameAdded,
	EventTypeFrameScored,
	EventTypeTurkey,
	EventTypePerfectGame,
	EventTypeGameOver,
}
