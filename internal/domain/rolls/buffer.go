package rolls

import (
	"fmt"

	"github.com/KirkDiggler/tenpin/internal/domain/rules"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
)

// Buffer is a FIFO of rolls that have not been assembled into a frame yet.
// Only PopFront removes pins; every other method is a read.
type Buffer struct {
	pins []int
}

// NewBuffer creates an empty roll buffer
func NewBuffer() *Buffer {
	return &Buffer{
		pins: []int{},
	}
}

// Push appends a roll
func (b *Buffer) Push(pins int) error {
	if err := rules.ValidatePins(pins); err != nil {
		return err
	}
	b.pins = append(b.pins, pins)
	return nil
}

// PopFront removes and returns the oldest roll
func (b *Buffer) PopFront() (int, error) {
	if len(b.pins) == 0 {
		return 0, bowlerr.Underflow("no rolls found")
	}

	head := b.pins[0]
	b.pins = b.pins[1:]
	return head, nil
}

// Peek returns the roll at position i without removing it
func (b *Buffer) Peek(i int) (int, bool) {
	if i < 0 || i >= len(b.pins) {
		return 0, false
	}
	return b.pins[i], true
}

// HeadIsStrike reports whether the oldest roll took every pin
func (b *Buffer) HeadIsStrike() bool {
	return len(b.pins) > 0 && b.pins[0] == rules.MaxPins
}

// HeadTwoAreSpare reports whether the two oldest rolls make a spare
func (b *Buffer) HeadTwoAreSpare() bool {
	if len(b.pins) < 2 || b.pins[0] == rules.MaxPins {
		return false
	}
	return b.pins[0]+b.pins[1] == rules.MaxPins
}

// Len returns the number of buffered rolls
func (b *Buffer) Len() int {
	return len(b.pins)
}

// Total returns the pins across all buffered rolls
func (b *Buffer) Total() int {
	total := 0
	for _, p := range b.pins {
		total += p
	}
	return total
}

// IsEmpty reports whether no rolls are buffered
func (b *Buffer) IsEmpty() bool {
	return len(b.pins) == 0
}

// Pins returns a copy of the buffered rolls, oldest first
func (b *Buffer) Pins() []int {
	out := make([]int, len(b.pins))
	copy(out, b.pins)
	return out
}

func (b *Buffer) String() string {
	return fmt.Sprintf("rolls%v", b.pins)
}
