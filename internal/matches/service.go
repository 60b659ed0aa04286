package matches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/starlance/starlance-backend/internal/broker"
	"github.com/starlance/starlance-backend/internal/game"
	"github.com/starlance/starlance-backend/internal/pkg/token"
	"github.com/starlance/starlance-backend/internal/runner"
)

// ErrUnknownOpponent means the requested opponent is not in the catalog.
var ErrUnknownOpponent = errors.New("opponent not found")

const playerKeyLength = 32

// Config holds the tunables of the match lifecycle.
type Config struct {
	// RootURL is the public web root used to construct match links.
	RootURL string
	// MaxTurns bounds match length; TurnTimeout bounds each move.
	MaxTurns    int
	TurnTimeout time.Duration
	// ConnectTimeout bounds how long a match waits for its remote player.
	ConnectTimeout time.Duration
}

// Match is what the caller gets back from CreateMatch: the id, the
// single-use key for connecting the player stream, and a viewable URL.
type Match struct {
	ID        string
	PlayerKey string
	URL       string
}

// Service owns the match lifecycle: it issues player keys, reserves their
// router entries, starts the match task, and records and publishes match
// state.
type Service struct {
	router    *broker.Router
	registry  Registry
	publisher Publisher
	opponents map[string]runner.BotSpec
	cfg       Config
}

// NewService wires the match service. The opponents catalog maps public bot
// names to their specs; the remote player always plays as player 1.
func NewService(router *broker.Router, registry Registry, publisher Publisher, opponents map[string]runner.BotSpec, cfg Config) *Service {
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = 100
	}
	if cfg.TurnTimeout <= 0 {
		cfg.TurnTimeout = time.Second
	}
	return &Service{
		router:    router,
		registry:  registry,
		publisher: publisher,
		opponents: opponents,
		cfg:       cfg,
	}
}

// CreateMatch sets up a match of the remote player against a catalog
// opponent and starts it. The returned player key is routable before this
// returns, so the client can connect immediately, and stays valid until the
// match's connection wait expires.
func (s *Service) CreateMatch(ctx context.Context, opponentName, mapName string) (*Match, error) {
	opponent, ok := s.opponents[opponentName]
	if !ok {
		return nil, ErrUnknownOpponent
	}

	if mapName == "" {
		mapName = game.DefaultMapName
	}
	gameMap, err := game.ByName(mapName)
	if err != nil {
		return nil, err
	}

	matchID := uuid.NewString()
	playerKey := token.Generate(playerKeyLength)
	s.router.Reserve(playerKey)

	if err := s.registry.Put(ctx, MatchRecord{
		MatchID: matchID,
		State:   StatePlaying,
		MapName: mapName,
	}); err != nil {
		slog.Error("Failed to record new match", "matchID", matchID, "error", err)
		return nil, err
	}

	s.publish(ctx, matchID, MatchCreatedEvent{
		MatchID:  matchID,
		Opponent: opponentName,
		MapName:  mapName,
	})

	go s.runMatch(matchID, mapName, gameMap, playerKey, opponent)

	slog.Info("Match created", "matchID", matchID, "opponent", opponentName, "map", mapName)
	return &Match{
		ID:        matchID,
		PlayerKey: playerKey,
		URL:       fmt.Sprintf("%s/matches/%s", s.cfg.RootURL, matchID),
	}, nil
}

// GetMatch reads the live status of a match.
func (s *Service) GetMatch(ctx context.Context, matchID string) (MatchRecord, error) {
	return s.registry.Get(ctx, matchID)
}

// runMatch drives one match to completion. It outlives the CreateMatch
// request on purpose; a match is bounded by its own turn limit, not by the
// caller's deadline.
func (s *Service) runMatch(matchID, mapName string, gameMap game.Map, playerKey string, opponent runner.BotSpec) {
	ctx := context.Background()

	outcome := runner.RunMatch(ctx, runner.MatchConfig{
		MatchID: matchID,
		Players: []runner.BotSpec{
			&broker.RemoteBotSpec{
				PlayerKey:      playerKey,
				Router:         s.router,
				ConnectTimeout: s.cfg.ConnectTimeout,
			},
			opponent,
		},
		Game:        game.NewPlanetWars(gameMap),
		MaxTurns:    s.cfg.MaxTurns,
		TurnTimeout: s.cfg.TurnTimeout,
	})

	if err := s.registry.Put(ctx, MatchRecord{
		MatchID: matchID,
		State:   StateFinished,
		MapName: mapName,
		Winner:  outcome.Winner,
	}); err != nil {
		slog.Error("Failed to record match result", "matchID", matchID, "error", err)
	}

	playerErrors := make([]bool, len(outcome.PlayerOutcomes))
	for i, po := range outcome.PlayerOutcomes {
		playerErrors[i] = po.HadErrors
	}
	s.publish(ctx, matchID, MatchFinishedEvent{
		MatchID:      matchID,
		Winner:       outcome.Winner,
		PlayerErrors: playerErrors,
	})
}

// publish emits one lifecycle event. Event delivery is best effort; a
// broker outage must not take matches down with it.
func (s *Service) publish(ctx context.Context, matchID string, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to marshal match event", "matchID", matchID, "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, matchID, data); err != nil {
		slog.Error("Failed to publish match event", "matchID", matchID, "error", err)
	}
}
