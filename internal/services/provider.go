package services

import (
	"github.com/KirkDiggler/tenpin/internal/events"
	"github.com/KirkDiggler/tenpin/internal/ids"
	"github.com/KirkDiggler/tenpin/internal/repositories/games"
	"github.com/KirkDiggler/tenpin/internal/services/scoring"
)

// Provider holds all service instances
type Provider struct {
	Bus            *events.Bus
	GameRepository games.Repository
	ScoringService scoring.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	GameRepository games.Repository
	Bus            *events.Bus
	IDGenerator    ids.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	gameRepo := cfg.GameRepository
	if gameRepo == nil {
		gameRepo = games.NewInMemoryRepository()
	}

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}

	scoringService := scoring.NewService(&scoring.ServiceConfig{
		Repository:  gameRepo,
		Bus:         bus,
		IDGenerator: cfg.IDGenerator,
	})

	return &Provider{
		Bus:            bus,
		GameRepository: gameRepo,
		ScoringService: scoringService,
	}
}
