package game

import (
	"github.com/KirkDiggler/tenpin/internal/domain/frame"
	"github.com/KirkDiggler/tenpin/internal/domain/rules"
)

// scoreLocked walks the frames left to right and scores every frame whose
// bonus is known. It stops at the first frame it cannot score, because every
// later score builds on that one.
func (g *Game) scoreLocked() []*frame.Frame {
	var updated []*frame.Frame

	for i, f := range g.frames {
		if f.HasScore() {
			continue
		}

		start := 0
		if i > 0 {
			prev, ok := g.frames[i-1].Score()
			if !ok {
				break
			}
			start = prev
		}

		bonus, ok := g.bonusFor(i)
		if !ok {
			break
		}

		// Only unscored frames with validated points reach here.
		if err := f.UpdateScore(start, bonus); err != nil {
			break
		}
		updated = append(updated, f)
	}

	return updated
}

// bonusFor returns the look-ahead bonus for frame i, or false when the rolls
// it depends on have not been recorded yet.
func (g *Game) bonusFor(i int) (int, bool) {
	f := g.frames[i]

	switch f.Kind() {
	case frame.KindFinal:
		// The bonus roll is already part of the final frame's total.
		return 0, true

	case frame.KindDefault:
		switch {
		case f.IsZero(), f.IsOpen():
			return 0, true

		case f.IsSpare():
			next, ok := g.frameAt(i + 1)
			if !ok {
				return 0, false
			}
			return next.FirstRoll(), true

		case f.IsStrike():
			next, ok := g.frameAt(i + 1)
			if !ok {
				return 0, false
			}
			if next.IsFinal() || !next.IsStrike() {
				return next.FirstRoll() + next.SecondRoll(), true
			}

			after, ok := g.frameAt(i + 2)
			if !ok {
				return 0, false
			}
			return rules.MaxPins + after.FirstRoll(), true
		}
	}

	return 0, false
}

func (g *Game) frameAt(i int) (*frame.Frame, bool) {
	if i < 0 || i >= len(g.frames) {
		return nil, false
	}
	return g.frames[i], true
}
