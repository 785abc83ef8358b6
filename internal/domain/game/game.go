package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/tenpin/internal/domain/frame"
	"github.com/KirkDiggler/tenpin/internal/domain/rolls"
	"github.com/KirkDiggler/tenpin/internal/domain/rules"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
)

// Game is a single player's line of up to ten frames
type Game struct {
	mu sync.RWMutex

	id         string
	playerName string
	frames     []*frame.Frame
	assembler  *rolls.Assembler
}

// New creates a game for the named player
func New(playerName string) (*Game, error) {
	return NewWithID("", playerName)
}

// NewWithID creates a game with an identifier assigned by the caller
func NewWithID(id, playerName string) (*Game, error) {
	if strings.TrimSpace(playerName) == "" {
		return nil, bowlerr.InvalidArgument("player name is required")
	}

	return &Game{
		id:         id,
		playerName: playerName,
		frames:     make([]*frame.Frame, 0, rules.MaxFrames),
		assembler:  rolls.NewAssembler(),
	}, nil
}

// ID returns the identifier the game was created with, if any
func (g *Game) ID() string { return g.id }

// PlayerName returns the player this game belongs to
func (g *Game) PlayerName() string { return g.playerName }

// Roll records the pins knocked down by one ball. Completed frames are
// appended and scored immediately. A rejected roll changes nothing.
func (g *Game) Roll(pins int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.isOverLocked() {
		return bowlerr.GameOverf("%s's game is over", g.playerName)
	}
	if err := rules.ValidatePins(pins); err != nil {
		return err
	}
	// The tenth frame is checked only for range and bonus eligibility.
	if standing := g.standingPinsLocked(); len(g.frames) < rules.FinalFrameIndex && pins > standing {
		return bowlerr.InvalidFrameTotalf("cannot knock down %d pins with %d standing", pins, standing).
			WithMeta("frame", len(g.frames)+1)
	}

	if err := g.assembler.Push(pins); err != nil {
		return err
	}

	for !g.isOverLocked() {
		f, err := g.assembler.TryAssemble(len(g.frames) == rules.FinalFrameIndex)
		if err != nil {
			return err
		}
		if f == nil {
			break
		}
		g.frames = append(g.frames, f)
		g.scoreLocked()
	}

	return nil
}

// AddFrame appends a frame that was built by the caller. The game keeps its
// own unscored copy; call UpdateScore to score it.
func (g *Game) AddFrame(f *frame.Frame) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.isOverLocked() {
		return bowlerr.GameOverf("%s's game is over", g.playerName)
	}
	if f == nil {
		return bowlerr.InvalidArgument("frame is required")
	}

	index := len(g.frames)
	if err := rules.ValidateSlot(index, f.IsFinal()); err != nil {
		return err
	}
	if !g.assembler.Buffer().IsEmpty() {
		return bowlerr.InvalidFrameSlotf("frame %d already has rolls pending", index+1).
			WithMeta("pending", g.assembler.Buffer().Pins())
	}

	g.frames = append(g.frames, f.Clone())
	return nil
}

// UpdateScore scores every frame whose bonus can now be resolved and returns
// the newly scored frames in order.
func (g *Game) UpdateScore() []*frame.Frame {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.scoreLocked()
}

// Score returns the latest cumulative score, or 0 when nothing is scored
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.scoreValueLocked()
}

func (g *Game) scoreValueLocked() int {
	for i := len(g.frames) - 1; i >= 0; i-- {
		if score, ok := g.frames[i].Score(); ok {
			return score
		}
	}
	return 0
}

// IsOver reports whether all ten frames have been recorded
func (g *Game) IsOver() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.isOverLocked()
}

func (g *Game) isOverLocked() bool {
	return len(g.frames) == rules.MaxFrames
}

// IsPerfect reports a finished game worth 300
func (g *Game) IsPerfect() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.isOverLocked() && g.scoreValueLocked() == rules.PerfectScore
}

// Frames returns the recorded frames in order
func (g *Game) Frames() []*frame.Frame {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*frame.Frame, len(g.frames))
	copy(out, g.frames)
	return out
}

// FrameCount returns the number of recorded frames
func (g *Game) FrameCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.frames)
}

// ScoredCount returns how many frames carry a score. Frames are scored
// strictly in order, so these are always the first ScoredCount frames.
func (g *Game) ScoredCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for _, f := range g.frames {
		if !f.HasScore() {
			break
		}
		count++
	}
	return count
}

// PendingRolls returns rolls that do not belong to a recorded frame yet
func (g *Game) PendingRolls() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.assembler.Buffer().Pins()
}

// StandingPins returns how many pins are standing for the next roll, or 0
// once the game is over.
func (g *Game) StandingPins() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.isOverLocked() {
		return 0
	}
	return g.standingPinsLocked()
}

func (g *Game) standingPinsLocked() int {
	buffer := g.assembler.Buffer()
	first, hasFirst := buffer.Peek(0)
	if !hasFirst {
		return rules.MaxPins
	}

	second, hasSecond := buffer.Peek(1)
	if !hasSecond {
		return rules.StandingAfter(first)
	}

	// Two pending rolls only happen in the final frame while a bonus is owed.
	if first == rules.MaxPins {
		return rules.StandingAfter(second)
	}
	return rules.MaxPins
}

func (g *Game) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fmt.Sprintf("Game [player=%s, frames=%v, pending=%s]", g.playerName, g.frames, g.assembler.Buffer())
}
