package frame

import (
	"fmt"
	"sync/atomic"

	"github.com/KirkDiggler/tenpin/internal/domain/rules"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
)

// Kind tags the two shapes a frame can take
type Kind string

const (
	// KindDefault is one of frames 1 through 9
	KindDefault Kind = "default"

	// KindFinal is frame 10, which may carry a bonus roll
	KindFinal Kind = "final"
)

const unscored int64 = -1

// Frame is the record of one frame's rolls. The rolls never change after
// construction; the score is assigned at most once.
type Frame struct {
	kind   Kind
	first  int
	second int
	bonus  int

	score atomic.Int64
}

func newFrame(kind Kind, first, second, bonus int) *Frame {
	f := &Frame{
		kind:   kind,
		first:  first,
		second: second,
		bonus:  bonus,
	}
	f.score.Store(unscored)
	return f
}

// NewDefault creates one of frames 1 through 9
func NewDefault(first, second int) (*Frame, error) {
	if err := rules.ValidatePins(first); err != nil {
		return nil, err
	}
	if err := rules.ValidatePins(second); err != nil {
		return nil, err
	}
	if err := rules.ValidateDefaultTotal(first, second); err != nil {
		return nil, err
	}

	return newFrame(KindDefault, first, second, 0), nil
}

// Strike creates the canonical strike frame
func Strike() *Frame {
	return newFrame(KindDefault, rules.MaxPins, 0, 0)
}

// NewFinal creates the tenth frame. Pass a bonus of 0 when none was earned.
func NewFinal(first, second, bonus int) (*Frame, error) {
	if err := rules.ValidateFinalRolls(first, second, bonus); err != nil {
		return nil, err
	}

	return newFrame(KindFinal, first, second, bonus), nil
}

// Kind returns the frame's shape
func (f *Frame) Kind() Kind { return f.kind }

// IsFinal reports whether this is the tenth frame
func (f *Frame) IsFinal() bool { return f.kind == KindFinal }

// FirstRoll returns the pins knocked down by the first roll
func (f *Frame) FirstRoll() int { return f.first }

// SecondRoll returns the pins knocked down by the second roll
func (f *Frame) SecondRoll() int { return f.second }

// BonusRoll returns the final frame's bonus roll, always 0 for default frames
func (f *Frame) BonusRoll() int { return f.bonus }

// Total returns the pins knocked down in this frame
func (f *Frame) Total() int {
	switch f.kind {
	case KindFinal:
		return f.first + f.second + f.bonus
	default:
		return f.first + f.second
	}
}

// IsZero reports a frame where no pins fell
func (f *Frame) IsZero() bool {
	return f.Total() == 0
}

// IsOpen reports a frame that left pins standing. A zero frame is open too.
func (f *Frame) IsOpen() bool {
	// A final frame only has a bonus after a strike or spare, so the first
	// two rolls decide it for both shapes.
	return f.first+f.second < rules.MaxPins
}

// IsStrike reports a frame whose first roll took every pin
func (f *Frame) IsStrike() bool {
	return f.first == rules.MaxPins
}

// IsSpare reports a frame that took every pin over its first two rolls
func (f *Frame) IsSpare() bool {
	return !f.IsStrike() && f.first+f.second == rules.MaxPins
}

// IsTurkey reports a final frame of three strikes
func (f *Frame) IsTurkey() bool {
	switch f.kind {
	case KindFinal:
		return f.first == rules.MaxPins && f.second == rules.MaxPins && f.bonus == rules.MaxPins
	default:
		return false
	}
}

// HasScore reports whether the cumulative score has been assigned
func (f *Frame) HasScore() bool {
	return f.score.Load() != unscored
}

// Score returns the cumulative score and whether it has been assigned
func (f *Frame) Score() (int, bool) {
	s := f.score.Load()
	if s == unscored {
		return 0, false
	}
	return int(s), true
}

// UpdateScore assigns the cumulative score once. A default frame scores
// start + total + bonus. A final frame already counts its bonus roll in its
// total, so it only accepts a bonus of 0.
func (f *Frame) UpdateScore(start, bonus int) error {
	if err := rules.ValidatePoints(start, bonus); err != nil {
		return err
	}

	var score int
	switch f.kind {
	case KindFinal:
		if bonus != 0 {
			return bowlerr.InvalidArgumentf("final frame takes no bonus points: %d", bonus)
		}
		score = start + f.Total()
	default:
		score = start + f.Total() + bonus
	}

	if !f.score.CompareAndSwap(unscored, int64(score)) {
		return bowlerr.AlreadyScored("score has already been updated")
	}
	return nil
}

// Equal compares kind and rolls. Scores are not part of a frame's identity.
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.kind == other.kind &&
		f.first == other.first &&
		f.second == other.second &&
		f.bonus == other.bonus
}

// Clone copies the rolls into a new, unscored frame
func (f *Frame) Clone() *Frame {
	return newFrame(f.kind, f.first, f.second, f.bonus)
}

// String renders the frame for logs
func (f *Frame) String() string {
	score := "-"
	if s, ok := f.Score(); ok {
		score = fmt.Sprint(s)
	}

	switch f.kind {
	case KindFinal:
		return fmt.Sprintf("final[%d %d %d] score=%s", f.first, f.second, f.bonus, score)
	default:
		return fmt.Sprintf("default[%d %d] score=%s", f.first, f.second, score)
	}
}
