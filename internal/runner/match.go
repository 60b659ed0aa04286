package runner

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Game drives the turn-by-turn simulation of one match. The runner calls it
// from a single goroutine.
type Game interface {
	// Prompt returns the serialized state to send to player for this turn.
	Prompt(turn int, player uint32) []byte
	// Apply feeds back the player's action for this turn. A nil action means
	// the player produced no move (timeout or disconnect).
	Apply(turn int, player uint32, action []byte)
	// EndTurn is called once all actions for turn have been applied.
	EndTurn(turn int)
	// Finished reports whether the game is over.
	Finished() bool
	// Winner returns the 1-based player number of the winner, 0 if none.
	Winner() uint32
}

// MatchConfig describes one match to run.
type MatchConfig struct {
	MatchID     string
	Players     []BotSpec
	Game        Game
	MaxTurns    int
	TurnTimeout time.Duration
}

// PlayerOutcome is the per-player error accounting for one match.
type PlayerOutcome struct {
	HadErrors bool
}

// MatchOutcome is the result of a completed match.
type MatchOutcome struct {
	// 1-based player number, 0 when there is no winner.
	Winner         uint32
	PlayerOutcomes []PlayerOutcome
}

// RunMatch starts every player and drives turns until the game finishes or
// the turn limit is reached. A player that times out plays an empty turn;
// timeouts are recorded but never abort the match.
func RunMatch(ctx context.Context, cfg MatchConfig) MatchOutcome {
	bus := NewEventBus()

	// Players start concurrently: a remote player spec blocks for up to its
	// connection wait, and one absent bot must not delay the others.
	handles := make([]PlayerHandle, len(cfg.Players))
	var startGroup sync.WaitGroup
	for i, spec := range cfg.Players {
		i, spec := i, spec
		startGroup.Add(1)
		go func() {
			defer startGroup.Done()
			handles[i] = spec.RunBot(ctx, uint32(i+1), bus)
		}()
	}
	startGroup.Wait()
	defer func() {
		for _, h := range handles {
			h.Close()
		}
	}()

	slog.Info("Match started", "matchID", cfg.MatchID, "players", len(handles))

	outcomes := make([]PlayerOutcome, len(handles))
	requestIDs := make([]uint32, len(handles))

	for turn := 1; turn <= cfg.MaxTurns && !cfg.Game.Finished(); turn++ {
		if ctx.Err() != nil {
			break
		}

		actions := make([][]byte, len(handles))
		errs := make([]error, len(handles))

		var turnGroup sync.WaitGroup
		for i, h := range handles {
			i, h := i, h
			requestIDs[i]++
			req := RequestMessage{
				RequestID: requestIDs[i],
				Content:   cfg.Game.Prompt(turn, uint32(i+1)),
				Timeout:   cfg.TurnTimeout,
			}
			turnGroup.Add(1)
			go func() {
				defer turnGroup.Done()
				actions[i], errs[i] = h.SendRequest(ctx, req)
			}()
		}
		turnGroup.Wait()

		for i := range handles {
			if errs[i] != nil {
				outcomes[i].HadErrors = true
				cfg.Game.Apply(turn, uint32(i+1), nil)
				continue
			}
			cfg.Game.Apply(turn, uint32(i+1), actions[i])
		}
		cfg.Game.EndTurn(turn)
	}

	outcome := MatchOutcome{
		Winner:         cfg.Game.Winner(),
		PlayerOutcomes: outcomes,
	}
	slog.Info("Match finished", "matchID", cfg.MatchID, "winner", outcome.Winner)
	return outcome
}
