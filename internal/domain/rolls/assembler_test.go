package rolls_test

import (
	"testing"

	"github.com/KirkDiggler/tenpin/internal/domain/frame"
	"github.com/KirkDiggler/tenpin/internal/domain/rolls"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assemblerOf(t *testing.T, pins ...int) *rolls.Assembler {
	t.Helper()
	a := rolls.NewAssembler()
	for _, p := range pins {
		require.NoError(t, a.Push(p))
	}
	return a
}

func TestAssembler_DefaultSlot(t *testing.T) {
	tests := []struct {
		name     string
		pins     []int
		want     []int
		leftOver []int
	}{
		{name: "empty", pins: nil, leftOver: []int{}},
		{name: "single roll waits", pins: []int{4}, leftOver: []int{4}},
		{name: "strike", pins: []int{10}, want: []int{10, 0}, leftOver: []int{}},
		{name: "strike leaves next roll", pins: []int{10, 3}, want: []int{10, 0}, leftOver: []int{3}},
		{name: "open", pins: []int{3, 4}, want: []int{3, 4}, leftOver: []int{}},
		{name: "spare", pins: []int{0, 10}, want: []int{0, 10}, leftOver: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assemblerOf(t, tt.pins...)

			f, err := a.TryAssemble(false)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, f)
			} else {
				require.NotNil(t, f)
				assert.Equal(t, frame.KindDefault, f.Kind())
				assert.Equal(t, tt.want, []int{f.FirstRoll(), f.SecondRoll()})
			}
			assert.Equal(t, tt.leftOver, a.Buffer().Pins())
		})
	}
}

func TestAssembler_DefaultSlotTooManyPins(t *testing.T) {
	a := assemblerOf(t, 6, 5)

	f, err := a.TryAssemble(false)

	assert.Nil(t, f)
	assert.True(t, bowlerr.IsInvalidFrameTotal(err))
	assert.Equal(t, []int{6, 5}, a.Buffer().Pins(), "buffer is untouched on error")
}

func TestAssembler_FinalSlot(t *testing.T) {
	tests := []struct {
		name     string
		pins     []int
		want     []int
		leftOver []int
	}{
		{name: "single roll waits", pins: []int{10}, leftOver: []int{10}},
		{name: "open", pins: []int{3, 4}, want: []int{3, 4, 0}, leftOver: []int{}},
		{name: "spare waits for bonus", pins: []int{3, 7}, leftOver: []int{3, 7}},
		{name: "spare with bonus", pins: []int{3, 7, 5}, want: []int{3, 7, 5}, leftOver: []int{}},
		{name: "strike waits for two", pins: []int{10, 10}, leftOver: []int{10, 10}},
		{name: "strike with open bonus rolls", pins: []int{10, 3, 4}, want: []int{10, 3, 4}, leftOver: []int{}},
		{name: "strike strike open", pins: []int{10, 10, 5}, want: []int{10, 10, 5}, leftOver: []int{}},
		{name: "turkey", pins: []int{10, 10, 10}, want: []int{10, 10, 10}, leftOver: []int{}},
		{name: "extra roll after open stays buffered", pins: []int{3, 4, 5}, want: []int{3, 4, 0}, leftOver: []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assemblerOf(t, tt.pins...)

			f, err := a.TryAssemble(true)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, f)
			} else {
				require.NotNil(t, f)
				assert.True(t, f.IsFinal())
				assert.Equal(t, tt.want, []int{f.FirstRoll(), f.SecondRoll(), f.BonusRoll()})
			}
			assert.Equal(t, tt.leftOver, a.Buffer().Pins())
		})
	}
}

func TestAssembler_FinalSlotTakesRollsAsGiven(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		want  [3]int
	}{
		{name: "bonus rolls over ten", rolls: []int{10, 6, 5}, want: [3]int{10, 6, 5}},
		{name: "two rolls over ten", rolls: []int{5, 6}, want: [3]int{5, 6, 0}},
		{name: "two nines", rolls: []int{9, 9}, want: [3]int{9, 9, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assemblerOf(t, tt.rolls...)

			f, err := a.TryAssemble(true)
			require.NoError(t, err)
			require.NotNil(t, f)

			assert.Equal(t, tt.want, [3]int{f.FirstRoll(), f.SecondRoll(), f.BonusRoll()})
			assert.True(t, a.Buffer().IsEmpty())
		})
	}
}

func TestAssembler_SequentialFrames(t *testing.T) {
	a := assemblerOf(t, 10, 10, 7, 3)

	var got []*frame.Frame
	for {
		f, err := a.TryAssemble(false)
		require.NoError(t, err)
		if f == nil {
			break
		}
		got = append(got, f)
	}

	require.Len(t, got, 3)
	assert.True(t, got[0].IsStrike())
	assert.True(t, got[1].IsStrike())
	assert.True(t, got[2].IsSpare())
	assert.True(t, a.Buffer().IsEmpty())
}
