package rolls_test

import (
	"testing"

	"github.com/KirkDiggler/tenpin/internal/domain/rolls"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferOf(t *testing.T, pins ...int) *rolls.Buffer {
	t.Helper()
	b := rolls.NewBuffer()
	for _, p := range pins {
		require.NoError(t, b.Push(p))
	}
	return b
}

func TestBuffer_Push(t *testing.T) {
	b := rolls.NewBuffer()

	require.NoError(t, b.Push(7))
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 7, b.Total())

	assert.True(t, bowlerr.IsInvalidPinCount(b.Push(-1)))
	assert.True(t, bowlerr.IsInvalidPinCount(b.Push(11)))
	assert.Equal(t, []int{7}, b.Pins(), "rejected rolls are not buffered")
}

func TestBuffer_PopFront(t *testing.T) {
	b := bufferOf(t, 3, 4)

	head, err := b.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 3, head)

	head, err = b.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 4, head)
	assert.True(t, b.IsEmpty())

	_, err = b.PopFront()
	assert.True(t, bowlerr.IsUnderflow(err))
}

func TestBuffer_HeadIsStrike(t *testing.T) {
	assert.False(t, rolls.NewBuffer().HeadIsStrike())
	assert.False(t, bufferOf(t, 9).HeadIsStrike())

	b := bufferOf(t, 10, 10)
	assert.True(t, b.HeadIsStrike())
	assert.True(t, b.HeadIsStrike())
	assert.Equal(t, 2, b.Len(), "checking for a strike must not consume it")
}

func TestBuffer_HeadTwoAreSpare(t *testing.T) {
	tests := []struct {
		name string
		pins []int
		want bool
	}{
		{name: "empty", pins: nil},
		{name: "single roll", pins: []int{5}},
		{name: "open", pins: []int{5, 4}},
		{name: "spare", pins: []int{5, 5}, want: true},
		{name: "gutter then ten", pins: []int{0, 10}, want: true},
		{name: "strike then gutter", pins: []int{10, 0}},
		{name: "spare with a trailing roll", pins: []int{2, 8, 6}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bufferOf(t, tt.pins...)
			assert.Equal(t, tt.want, b.HeadTwoAreSpare())
			assert.Equal(t, len(tt.pins), b.Len())
		})
	}
}

func TestBuffer_PinsIsACopy(t *testing.T) {
	b := bufferOf(t, 1, 2)

	pins := b.Pins()
	pins[0] = 9

	peek, ok := b.Peek(0)
	assert.True(t, ok)
	assert.Equal(t, 1, peek)

	_, ok = b.Peek(2)
	assert.False(t, ok)
	assert.Equal(t, "rolls[1 2]", b.String())
}
