package games

import (
	"context"

	"github.com/KirkDiggler/tenpin/internal/domain/game"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockgames -source=repository.go

// Repository keeps live games by ID
type Repository interface {
	// Create registers a new game
	Create(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID
	Get(ctx context.Context, id string) (*game.Game, error)

	// List returns every registered game
	List(ctx context.Context) ([]*game.Game, error)

	// Delete removes a game
	Delete(ctx context.Context, id string) error
}
