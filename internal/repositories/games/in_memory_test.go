package games_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/tenpin/internal/domain/game"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
	"github.com/KirkDiggler/tenpin/internal/repositories/games"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, id, name string) *game.Game {
	t.Helper()
	g, err := game.NewWithID(id, name)
	require.NoError(t, err)
	return g
}

func TestInMemoryRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := games.NewInMemoryRepository()

	t.Run("Successfully creates game", func(t *testing.T) {
		g := newGame(t, "game-1", "Pat")
		require.NoError(t, repo.Create(ctx, g))

		got, err := repo.Get(ctx, "game-1")
		require.NoError(t, err)
		assert.Same(t, g, got)
	})

	t.Run("Rejects duplicate ID", func(t *testing.T) {
		err := repo.Create(ctx, newGame(t, "game-1", "Sam"))
		assert.True(t, bowlerr.Is(err, bowlerr.CodeAlreadyExists))
	})

	t.Run("Rejects nil game", func(t *testing.T) {
		assert.True(t, bowlerr.IsInvalidArgument(repo.Create(ctx, nil)))
	})

	t.Run("Rejects missing ID", func(t *testing.T) {
		assert.True(t, bowlerr.IsInvalidArgument(repo.Create(ctx, newGame(t, "", "Pat"))))
	})
}

func TestInMemoryRepository_GetMissing(t *testing.T) {
	repo := games.NewInMemoryRepository()

	g, err := repo.Get(context.Background(), "nope")
	assert.Nil(t, g)
	assert.True(t, bowlerr.IsNotFound(err))
}

func TestInMemoryRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := games.NewInMemoryRepository()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, newGame(t, id, "Player "+id)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{list[0].ID(), list[1].ID(), list[2].ID()})

	require.NoError(t, repo.Delete(ctx, "a"))
	assert.True(t, bowlerr.IsNotFound(repo.Delete(ctx, "a")))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].ID())
	assert.Equal(t, "b", list[1].ID())
}
