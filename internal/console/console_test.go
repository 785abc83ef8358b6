package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/KirkDiggler/tenpin/internal/console"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
	"github.com/KirkDiggler/tenpin/internal/repositories/games"
	"github.com/KirkDiggler/tenpin/internal/services/scoring"
	mockscoring "github.com/KirkDiggler/tenpin/internal/services/scoring/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func lines(values ...string) string {
	return strings.Join(values, "\n") + "\n"
}

func repeat(value string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = value
	}
	return out
}

func run(t *testing.T, input string) (string, games.Repository, error) {
	t.Helper()

	repo := games.NewInMemoryRepository()
	out := &bytes.Buffer{}
	c := console.New(&console.Config{
		Service: scoring.NewService(&scoring.ServiceConfig{Repository: repo}),
		In:      strings.NewReader(input),
		Out:     out,
	})

	err := c.Run(context.Background())
	return out.String(), repo, err
}

func TestConsole_Quit(t *testing.T) {
	out, repo, err := run(t, "QUIT\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Ten Pin Bowling game terminated")
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConsole_Games(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		wantTotal string
		turkey    bool
		perfect   bool
		bonus     bool
	}{
		{
			name:      "all ones",
			input:     append([]string{"Pat"}, repeat("1", 20)...),
			wantTotal: "Pat's total score: 20",
		},
		{
			name:      "perfect game",
			input:     append([]string{"Pat"}, repeat("10", 12)...),
			wantTotal: "Pat's total score: 300",
			turkey:    true,
			perfect:   true,
			bonus:     true,
		},
		{
			name: "mixed game",
			input: []string{"Pat",
				"10", "7", "3", "9", "0", "10", "0", "8", "8", "2",
				"0", "6", "10", "10", "10", "8", "1"},
			wantTotal: "Pat's total score: 167",
			bonus:     true,
		},
		{
			name:      "open tenth skips the bonus",
			input:     append(append([]string{"Pat"}, repeat("0", 18)...), "3", "4"),
			wantTotal: "Pat's total score: 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, lines(tt.input...))
			require.NoError(t, err)

			assert.Contains(t, out, tt.wantTotal)
			assert.Contains(t, out, "Ten Pin Bowling game complete")
			assert.Equal(t, 10, strings.Count(out, "Scored frame for Pat"))
			assert.Equal(t, tt.turkey, strings.Contains(out, "TURKEY"))
			assert.Equal(t, tt.perfect, strings.Contains(out, "PERFECT"))
			assert.Equal(t, tt.bonus, strings.Contains(out, "BONUS attempt of frame #10"))
		})
	}
}

func TestConsole_StrikeSkipsSecondPrompt(t *testing.T) {
	input := append([]string{"Pat", "10"}, repeat("0", 18)...)
	out, _, err := run(t, lines(input...))
	require.NoError(t, err)

	assert.NotContains(t, out, "SECOND attempt of frame #1:")
	assert.Contains(t, out, "SECOND attempt of frame #2:")
}

func TestConsole_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{name: "not a number", input: lines("Pat", "abc"), check: bowlerr.IsInvalidArgument},
		{name: "too many pins", input: lines("Pat", "11"), check: bowlerr.IsInvalidPinCount},
		{name: "negative pins", input: lines("Pat", "-1"), check: bowlerr.IsInvalidPinCount},
		{name: "frame over ten", input: lines("Pat", "7", "5"), check: bowlerr.IsInvalidFrameTotal},
		{name: "blank name", input: lines(""), check: bowlerr.IsInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.input)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestConsole_InputEndsEarly(t *testing.T) {
	_, _, err := run(t, lines("Pat", "3"))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestConsole_ServiceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mockscoring.NewMockService(ctrl)
	svc.EXPECT().
		StartGame(gomock.Any(), "Pat").
		Return(nil, bowlerr.Internalf("store unavailable"))

	c := console.New(&console.Config{
		Service:  svc,
		In:       strings.NewReader(lines("Pat")),
		Out:      io.Discard,
		QuitWord: "exit",
	})

	err := c.Run(context.Background())
	assert.True(t, bowlerr.Is(err, bowlerr.CodeInternal))
}

func TestConsole_CustomQuitWord(t *testing.T) {
	out := &bytes.Buffer{}
	c := console.New(&console.Config{
		Service:  scoring.NewService(&scoring.ServiceConfig{Repository: games.NewInMemoryRepository()}),
		In:       strings.NewReader("exit\n"),
		Out:      out,
		QuitWord: "exit",
	})

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "Enter player name or exit to terminate")
	assert.Contains(t, out.String(), "terminated")
}
