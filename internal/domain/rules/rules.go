// Package rules holds the ten-pin constants and the validation rules shared
// by frame construction and roll intake.
package rules

import (
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
)

const (
	// MaxPins is the number of pins racked for a frame
	MaxPins = 10

	// MaxRolls is the number of rolls in a default frame
	MaxRolls = 2

	// MaxRollsWithBonus is the number of rolls in a final frame with a bonus
	MaxRollsWithBonus = MaxRolls + 1

	// MaxFrames is the number of frames in a game
	MaxFrames = 10

	// FinalFrameIndex is the zero based slot of the final frame
	FinalFrameIndex = MaxFrames - 1

	// PerfectScore is twelve strikes in a row
	PerfectScore = 300
)

// ValidatePins checks a single roll is within [0, MaxPins]
func ValidatePins(pins int) error {
	if pins < 0 || pins > MaxPins {
		return bowlerr.InvalidPinCount(pins)
	}
	return nil
}

// ValidateDefaultTotal checks a default frame does not exceed one rack
func ValidateDefaultTotal(first, second int) error {
	if first+second > MaxPins {
		return bowlerr.InvalidFrameTotalf("frame total %d exceeds %d pins", first+second, MaxPins).
			WithMeta("first", first).
			WithMeta("second", second)
	}
	return nil
}

// HasEarnedBonus reports whether the first two rolls of the final frame
// earn a bonus roll.
func HasEarnedBonus(first, second int) bool {
	return first == MaxPins || first+second == MaxPins
}

// ValidateBonus checks a bonus roll was earned
func ValidateBonus(first, second, bonus int) error {
	if bonus > 0 && !HasEarnedBonus(first, second) {
		return bowlerr.BonusNotEarnedf("bonus roll of %d has not been earned by %d and %d", bonus, first, second).
			WithMeta("bonus", bonus)
	}
	return nil
}

// ValidateFinalRolls runs every check that applies to a final frame: each
// roll in range and a bonus only when it was earned.
func ValidateFinalRolls(first, second, bonus int) error {
	for _, pins := range []int{first, second, bonus} {
		if err := ValidatePins(pins); err != nil {
			return err
		}
	}

	return ValidateBonus(first, second, bonus)
}

// StandingAfter returns the pins left after a roll, re-racking on a strike
func StandingAfter(pins int) int {
	if pins >= MaxPins {
		return MaxPins
	}
	return MaxPins - pins
}

// ValidatePoints checks the starting and bonus points handed to a frame
func ValidatePoints(start, bonus int) error {
	if start < 0 {
		return bowlerr.InvalidArgumentf("starting points cannot be negative: %d", start)
	}
	if bonus < 0 {
		return bowlerr.InvalidArgumentf("bonus points cannot be negative: %d", bonus)
	}
	return nil
}

// ValidateSlot checks a frame kind against its zero based slot
func ValidateSlot(index int, final bool) error {
	switch {
	case index == FinalFrameIndex && !final:
		return bowlerr.InvalidFrameSlotf("final frame is required in frame %d", index+1)
	case index < FinalFrameIndex && final:
		return bowlerr.InvalidFrameSlotf("final frame is not allowed in frame %d", index+1)
	}
	return nil
}
