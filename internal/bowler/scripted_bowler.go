package bowler

import (
	"fmt"
	"sync"
)

// ScriptedBowler plays back predetermined rolls
type ScriptedBowler struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewScriptedBowler creates a bowler that replays the given rolls in order
func NewScriptedBowler(rolls ...int) *ScriptedBowler {
	return &ScriptedBowler{
		rolls: append([]int{}, rolls...),
	}
}

// SetNextRoll queues one more roll
func (s *ScriptedBowler) SetNextRoll(roll int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls = append(s.rolls, roll)
}

// Remaining returns how many scripted rolls have not been used
func (s *ScriptedBowler) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rolls) - s.rollIndex
}

// Bowl implements Bowler.Bowl
func (s *ScriptedBowler) Bowl(standing int) (int, error) {
	if err := validateStanding(standing); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rollIndex >= len(s.rolls) {
		return 0, fmt.Errorf("no more scripted rolls available (used %d of %d)", s.rollIndex, len(s.rolls))
	}

	roll := s.rolls[s.rollIndex]
	if roll < 0 || roll > standing {
		return 0, fmt.Errorf("invalid roll %d with %d pins standing", roll, standing)
	}
	s.rollIndex++
	return roll, nil
}
