package rolls

import (
	"github.com/KirkDiggler/tenpin/internal/domain/frame"
	"github.com/KirkDiggler/tenpin/internal/domain/rules"
)

// Assembler turns buffered rolls into frames
type Assembler struct {
	buffer *Buffer
}

// NewAssembler creates an assembler over its own buffer
func NewAssembler() *Assembler {
	return &Assembler{
		buffer: NewBuffer(),
	}
}

// Buffer returns the rolls waiting to be assembled
func (a *Assembler) Buffer() *Buffer {
	return a.buffer
}

// Push buffers a roll
func (a *Assembler) Push(pins int) error {
	return a.buffer.Push(pins)
}

// TryAssemble emits the next frame once enough rolls are buffered. It
// returns nil, nil while more rolls are needed. The frame is built before
// any roll is popped, so a construction error leaves the buffer as it was.
func (a *Assembler) TryAssemble(finalSlot bool) (*frame.Frame, error) {
	if finalSlot {
		return a.assembleFinal()
	}
	return a.assembleDefault()
}

func (a *Assembler) assembleDefault() (*frame.Frame, error) {
	if a.buffer.HeadIsStrike() {
		return a.consume(frame.Strike(), 1)
	}

	if a.buffer.Len() < rules.MaxRolls {
		return nil, nil
	}

	first, _ := a.buffer.Peek(0)
	second, _ := a.buffer.Peek(1)
	f, err := frame.NewDefault(first, second)
	if err != nil {
		return nil, err
	}
	return a.consume(f, rules.MaxRolls)
}

func (a *Assembler) assembleFinal() (*frame.Frame, error) {
	bonusEarned := a.buffer.HeadIsStrike() || a.buffer.HeadTwoAreSpare()

	switch {
	case !bonusEarned && a.buffer.Len() >= rules.MaxRolls:
		first, _ := a.buffer.Peek(0)
		second, _ := a.buffer.Peek(1)
		f, err := frame.NewFinal(first, second, 0)
		if err != nil {
			return nil, err
		}
		return a.consume(f, rules.MaxRolls)

	case bonusEarned && a.buffer.Len() >= rules.MaxRollsWithBonus:
		first, _ := a.buffer.Peek(0)
		second, _ := a.buffer.Peek(1)
		bonus, _ := a.buffer.Peek(2)
		f, err := frame.NewFinal(first, second, bonus)
		if err != nil {
			return nil, err
		}
		return a.consume(f, rules.MaxRollsWithBonus)
	}

	return nil, nil
}

func (a *Assembler) consume(f *frame.Frame, count int) (*frame.Frame, error) {
	for i := 0; i < count; i++ {
		if _, err := a.buffer.PopFront(); err != nil {
			return nil, err
		}
	}
	return f, nil
}
