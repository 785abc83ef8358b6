package scoring

//go:generate mockgen -destination=mock/mock_service.go -package=mockscoring -source=service.go

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/tenpin/internal/bowler"
	"github.com/KirkDiggler/tenpin/internal/domain/frame"
	"github.com/KirkDiggler/tenpin/internal/domain/game"
	"github.com/KirkDiggler/tenpin/internal/domain/rules"
	bowlerr "github.com/KirkDiggler/tenpin/internal/errors"
	"github.com/KirkDiggler/tenpin/internal/events"
	"github.com/KirkDiggler/tenpin/internal/ids"
	"github.com/KirkDiggler/tenpin/internal/repositories/games"
	"golang.org/x/sync/errgroup"
)

// Repository is an alias for the games repository interface
type Repository = games.Repository

// Service defines the scoring service interface
type Service interface {
	// StartGame registers a new, empty game for the player
	StartGame(ctx context.Context, playerName string) (*game.Game, error)

	// GetGame retrieves a live game by ID
	GetGame(ctx context.Context, gameID string) (*game.Game, error)

	// EndGame forgets a game
	EndGame(ctx context.Context, gameID string) error

	// Roll records one ball for the game
	Roll(ctx context.Context, gameID string, pins int) (*game.Game, error)

	// AddFrame appends a caller-built frame without scoring it
	AddFrame(ctx context.Context, gameID string, f *frame.Frame) (*game.Game, error)

	// UpdateScore scores whatever the game can now resolve
	UpdateScore(ctx context.Context, gameID string) ([]*frame.Frame, error)

	// ScoreRolls plays a whole roll sequence as a new game. The game is
	// released from the repository once scored.
	ScoreRolls(ctx context.Context, input *ScoreRollsInput) (*game.Game, error)

	// ScoreBatch plays independent roll sequences concurrently
	ScoreBatch(ctx context.Context, inputs []*ScoreRollsInput) ([]*game.Game, error)

	// Simulate lets a bowler play a full game. The game is released from
	// the repository once played.
	Simulate(ctx context.Context, playerName string, b bowler.Bowler) (*game.Game, error)
}

// ScoreRollsInput is one player's flat roll sequence
type ScoreRollsInput struct {
	PlayerName string
	Rolls      []int
}

// service implements the Service interface
type service struct {
	repository  Repository
	bus         *events.Bus
	idGenerator ids.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository  Repository    // Required
	Bus         *events.Bus   // Optional, a private bus is used if nil
	IDGenerator ids.Generator // Optional, random UUIDs if nil
}

// NewService creates a new scoring service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
		bus:        cfg.Bus,
	}

	if svc.bus == nil {
		svc.bus = events.NewBus()
	}

	if cfg.IDGenerator != nil {
		svc.idGenerator = cfg.IDGenerator
	} else {
		svc.idGenerator = ids.NewRandomGenerator()
	}

	return svc
}

// StartGame registers a new, empty game for the player
func (s *service) StartGame(ctx context.Context, playerName string) (*game.Game, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, bowlerr.InvalidArgument("player name is required")
	}

	gameID := s.idGenerator.New()
	g, err := game.NewWithID(gameID, playerName)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Create(ctx, g); err != nil {
		return nil, bowlerr.Wrap(err, "failed to create game").
			WithMeta("game_id", gameID).
			WithMeta("player", playerName)
	}

	log.Printf("Scoring: Started game %s for %s", gameID, playerName)
	return g, nil
}

// GetGame retrieves a live game by ID
func (s *service) GetGame(ctx context.Context, gameID string) (*game.Game, error) {
	if strings.TrimSpace(gameID) == "" {
		return nil, bowlerr.InvalidArgument("game ID is required")
	}

	g, err := s.repository.Get(ctx, gameID)
	if err != nil {
		return nil, bowlerr.Wrapf(err, "failed to get game '%s'", gameID).
			WithMeta("game_id", gameID)
	}

	return g, nil
}

// EndGame forgets a game
func (s *service) EndGame(ctx context.Context, gameID string) error {
	if strings.TrimSpace(gameID) == "" {
		return bowlerr.InvalidArgument("game ID is required")
	}

	if err := s.repository.Delete(ctx, gameID); err != nil {
		return bowlerr.Wrapf(err, "failed to end game '%s'", gameID).
			WithMeta("game_id", gameID)
	}

	log.Printf("Scoring: Ended game %s", gameID)
	return nil
}

// Roll records one ball for the game
func (s *service) Roll(ctx context.Context, gameID string, pins int) (*game.Game, error) {
	g, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := s.roll(g, pins); err != nil {
		return nil, err
	}

	return g, nil
}

// AddFrame appends a caller-built frame without scoring it
func (s *service) AddFrame(ctx context.Context, gameID string, f *frame.Frame) (*game.Game, error) {
	g, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	snap := takeSnapshot(g)
	if err := g.AddFrame(f); err != nil {
		return nil, bowlerr.Wrapf(err, "failed to add frame to game '%s'", gameID).
			WithMeta("game_id", gameID)
	}

	if err := s.publish(g, snap); err != nil {
		return nil, err
	}

	return g, nil
}

// UpdateScore scores whatever the game can now resolve
func (s *service) UpdateScore(ctx context.Context, gameID string) ([]*frame.Frame, error) {
	g, err := s.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	snap := takeSnapshot(g)
	scored := g.UpdateScore()

	if err := s.publish(g, snap); err != nil {
		return nil, err
	}

	return scored, nil
}

// ScoreRolls plays a whole roll sequence as a new game
func (s *service) ScoreRolls(ctx context.Context, input *ScoreRollsInput) (*game.Game, error) {
	if input == nil {
		return nil, bowlerr.InvalidArgument("input cannot be nil")
	}

	g, err := s.StartGame(ctx, input.PlayerName)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, g)

	for i, pins := range input.Rolls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.roll(g, pins); err != nil {
			return nil, bowlerr.Wrapf(err, "roll %d", i+1).WithMeta("roll", i+1)
		}
	}

	return g, nil
}

// ScoreBatch plays independent roll sequences concurrently. Results keep the
// order of the inputs; the first failure cancels the rest.
func (s *service) ScoreBatch(ctx context.Context, inputs []*ScoreRollsInput) ([]*game.Game, error) {
	results := make([]*game.Game, len(inputs))

	eg, ctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		eg.Go(func() error {
			g, err := s.ScoreRolls(ctx, input)
			if err != nil {
				return bowlerr.Wrapf(err, "failed to score game %d", i+1).WithMeta("game", i+1)
			}
			results[i] = g
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Simulate lets a bowler play a full game
func (s *service) Simulate(ctx context.Context, playerName string, b bowler.Bowler) (*game.Game, error) {
	if b == nil {
		return nil, bowlerr.InvalidArgument("bowler is required")
	}

	g, err := s.StartGame(ctx, playerName)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, g)

	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pins, err := b.Bowl(g.StandingPins())
		if err != nil {
			return nil, bowlerr.Wrapf(err, "bowler failed on frame %d", g.FrameCount()+1)
		}
		if err := s.roll(g, pins); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// release drops a game that only lives for the length of one call
func (s *service) release(ctx context.Context, g *game.Game) {
	if err := s.repository.Delete(context.WithoutCancel(ctx), g.ID()); err != nil {
		log.Printf("Scoring: Failed to release game %s: %v", g.ID(), err)
	}
}

// roll applies one ball. A game expects a single writer, so the snapshot
// taken here is still accurate when the events go out.
func (s *service) roll(g *game.Game, pins int) error {
	snap := takeSnapshot(g)
	if err := g.Roll(pins); err != nil {
		return bowlerr.Wrapf(err, "failed to roll %d for game '%s'", pins, g.ID()).
			WithMeta("game_id", g.ID())
	}

	return s.publish(g, snap)
}

type snapshot struct {
	frames int
	scored int
}

func takeSnapshot(g *game.Game) snapshot {
	return snapshot{frames: g.FrameCount(), scored: g.ScoredCount()}
}

// publish emits events for everything that changed since the snapshot
func (s *service) publish(g *game.Game, before snapshot) error {
	frames := g.Frames()
	scored := g.ScoredCount()
	base := events.BaseEvent{GameID: g.ID(), PlayerName: g.PlayerName()}

	var pending []events.Event
	for i := before.frames; i < len(frames); i++ {
		ev := &events.FrameAddedEvent{BaseEvent: base, Number: i + 1, Frame: frames[i]}
		ev.Type = events.EventTypeFrameAdded
		pending = append(pending, ev)
	}

	for i := before.scored; i < scored; i++ {
		score, _ := frames[i].Score()
		ev := &events.FrameScoredEvent{BaseEvent: base, Number: i + 1, Frame: frames[i], Score: score}
		ev.Type = events.EventTypeFrameScored
		pending = append(pending, ev)
	}

	if before.scored < rules.MaxFrames && scored == rules.MaxFrames {
		last := frames[rules.FinalFrameIndex]
		if last.IsTurkey() {
			ev := &events.TurkeyEvent{BaseEvent: base, Frame: last}
			ev.Type = events.EventTypeTurkey
			pending = append(pending, ev)
		}
		if g.IsPerfect() {
			ev := &events.PerfectGameEvent{BaseEvent: base}
			ev.Type = events.EventTypePerfectGame
			pending = append(pending, ev)
		}

		ev := &events.GameOverEvent{BaseEvent: base, Score: g.Score()}
		ev.Type = events.EventTypeGameOver
		pending = append(pending, ev)

		log.Printf("Scoring: Game %s for %s finished with %d", g.ID(), g.PlayerName(), g.Score())
	}

	for _, ev := range pending {
		if err := s.bus.Emit(ev); err != nil {
			return bowlerr.Wrapf(err, "failed to publish %s for game '%s'", ev.GetType(), g.ID())
		}
	}

	return nil
}
