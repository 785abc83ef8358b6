package events

import (
	"fmt"

	"github.com/KirkDiggler/tenpin/internal/domain/frame"
)

// EventType represents the type of game event
type EventType string

// Event is the base interface for all game events
type Event interface {
	GetType() EventType
	GetGameID() string
	GetPlayerName() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type       EventType
	GameID     string
	PlayerName string
	Cancelled  bool
}

func (e *BaseEvent) GetType() EventType    { return e.Type }
func (e *BaseEvent) GetGameID() string     { return e.GameID }
func (e *BaseEvent) GetPlayerName() string { return e.PlayerName }
func (e *BaseEvent) IsCancelled() bool     { return e.Cancelled }
func (e *BaseEvent) Cancel()               { e.Cancelled = true }

// FrameAddedEvent is emitted when a frame joins the game's line
type FrameAddedEvent struct {
	BaseEvent
	Number int // 1 based
	Frame  *frame.Frame
}

// FrameScoredEvent is emitted when a frame's cumulative score is assigned
type FrameScoredEvent struct {
	BaseEvent
	Number int // 1 based
	Frame  *frame.Frame
	Score  int
}

// TurkeyEvent is emitted when the tenth frame is three strikes
type TurkeyEvent struct {
	BaseEvent
	Frame *frame.Frame
}

// PerfectGameEvent is emitted for a finished game worth 300
type PerfectGameEvent struct {
	BaseEvent
}

// GameOverEvent is emitted once all ten frames are recorded
type GameOverEvent struct {
	BaseEvent
	Score int
}

// Describe renders an event for logs and console output
func Describe(e Event) string {
	switch ev := e.(type) {
	case *FrameAddedEvent:
		return fmt.Sprintf("Added frame %d for %s: %s", ev.Number, ev.PlayerName, ev.Frame)
	case *FrameScoredEvent:
		return fmt.Sprintf("Scored frame %d for %s: %d", ev.Number, ev.PlayerName, ev.Score)
	case *TurkeyEvent:
		return "Nice, a TURKEY on the final frame!!!"
	case *PerfectGameEvent:
		return "Congratulations, you have bowled a PERFECT game!!!"
	case *GameOverEvent:
		return fmt.Sprintf("%s's total score: %d", ev.PlayerName, ev.Score)
	default:
		return string(e.GetType())
	}
}
