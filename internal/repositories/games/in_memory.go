package games

import (
	"context"
	"sync"

	"github.com/KirkDiggler/tenpin/internal/domain/game"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage.
// Games are stored by reference since the scoring service mutates them.
type inMemoryRepository struct {
	mu    sync.RWMutex
	games map[string]*game.Game
	order []string
}

// NewInMemoryRepository creates a new in-memory game repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		games: make(map[string]*game.Game),
	}
}

// Create registers a new game
func (r *inMemoryRepository) Create(ctx context.Context, g *game.Game) error {
	if g == nil {
		return bowlerr.InvalidArgument("game cannot be nil")
	}
	if g.ID() == "" {
		return bowlerr.InvalidArgument("game ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[g.ID()]; exists {
		return bowlerr.AlreadyExistsf("game with ID %s already exists", g.ID())
	}

	r.games[g.ID()] = g
	r.order = append(r.order, g.ID())
	return nil
}

// Get retrieves a game by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, exists := r.games[id]
	if !exists {
		return nil, bowlerr.NotFoundf("game not found: %s", id)
	}
	return g, nil
}

// List returns every registered game in creation order
func (r *inMemoryRepository) List(ctx context.Context) ([]*game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]*game.Game, 0, len(r.order))
	for _, id := range r.order {
		games = append(games, r.games[id])
	}
	return games, nil
}

// Delete removes a game
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[id]; !exists {
		return bowlerr.NotFoundf("game not found: %s", id)
	}

	delete(r.games, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
