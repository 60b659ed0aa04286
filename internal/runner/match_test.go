package runner

import (
	"context"
	"sync"
	"testing"
	"time"
)

// scriptedGame records runner calls and finishes after a fixed turn count.
type scriptedGame struct {
	mu        sync.Mutex
	endAfter  int
	turnsDone int
	prompts   int
	applied   map[uint32][][]byte
	winner    uint32
}

func newScriptedGame(endAfter int, winner uint32) *scriptedGame {
	return &scriptedGame{
		endAfter: endAfter,
		applied:  make(map[uint32][][]byte),
		winner:   winner,
	}
}

func (g *scriptedGame) Prompt(turn int, player uint32) []byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts++
	return []byte{byte(turn)}
}

func (g *scriptedGame) Apply(turn int, player uint32, action []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.applied[player] = append(g.applied[player], action)
}

func (g *scriptedGame) EndTurn(turn int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.turnsDone++
}

func (g *scriptedGame) Finished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turnsDone >= g.endAfter
}

func (g *scriptedGame) Winner() uint32 { return g.winner }

// timeoutBotSpec is a player whose every request times out.
type timeoutBotSpec struct{}

func (s *timeoutBotSpec) RunBot(ctx context.Context, playerID uint32, bus *EventBus) PlayerHandle {
	return timeoutBotHandle{}
}

type timeoutBotHandle struct{}

func (timeoutBotHandle) SendRequest(ctx context.Context, req RequestMessage) ([]byte, error) {
	return nil, ErrTimeout
}

func (timeoutBotHandle) Close() {}

func TestRunMatchPlaysToGameEnd(t *testing.T) {
	g := newScriptedGame(3, 2)
	echo := &LocalBotSpec{Move: func(state []byte) []byte { return append([]byte("move-"), state...) }}

	outcome := RunMatch(context.Background(), MatchConfig{
		MatchID:     "m1",
		Players:     []BotSpec{echo, echo},
		Game:        g,
		MaxTurns:    100,
		TurnTimeout: time.Second,
	})

	if outcome.Winner != 2 {
		t.Fatalf("winner = %d, want 2", outcome.Winner)
	}
	if g.turnsDone != 3 {
		t.Fatalf("turns = %d, want 3", g.turnsDone)
	}
	if g.prompts != 6 {
		t.Fatalf("prompts = %d, want one per player per turn", g.prompts)
	}
	for player := uint32(1); player <= 2; player++ {
		if len(g.applied[player]) != 3 {
			t.Fatalf("player %d actions = %d, want 3", player, len(g.applied[player]))
		}
		if string(g.applied[player][0]) != "move-\x01" {
			t.Fatalf("player %d first action = %q", player, g.applied[player][0])
		}
	}
	for i, po := range outcome.PlayerOutcomes {
		if po.HadErrors {
			t.Fatalf("player %d flagged with errors", i+1)
		}
	}
}

func TestRunMatchStopsAtTurnLimit(t *testing.T) {
	g := newScriptedGame(1000, 0)
	echo := &LocalBotSpec{Move: func(state []byte) []byte { return state }}

	RunMatch(context.Background(), MatchConfig{
		MatchID:     "m1",
		Players:     []BotSpec{echo, echo},
		Game:        g,
		MaxTurns:    5,
		TurnTimeout: time.Second,
	})

	if g.turnsDone != 5 {
		t.Fatalf("turns = %d, want the configured limit", g.turnsDone)
	}
}

func TestRunMatchRecordsTimeoutsAndContinues(t *testing.T) {
	g := newScriptedGame(2, 1)
	echo := &LocalBotSpec{Move: func(state []byte) []byte { return state }}

	outcome := RunMatch(context.Background(), MatchConfig{
		MatchID:     "m1",
		Players:     []BotSpec{echo, &timeoutBotSpec{}},
		Game:        g,
		MaxTurns:    100,
		TurnTimeout: time.Second,
	})

	if g.turnsDone != 2 {
		t.Fatalf("turns = %d, want 2; a timing-out player must not abort the match", g.turnsDone)
	}
	if outcome.PlayerOutcomes[0].HadErrors {
		t.Fatalf("player 1 flagged with errors")
	}
	if !outcome.PlayerOutcomes[1].HadErrors {
		t.Fatalf("player 2 not flagged despite timing out every turn")
	}

	// The timing-out player still gets an Apply per turn, with a nil action.
	if len(g.applied[2]) != 2 {
		t.Fatalf("player 2 applies = %d, want 2", len(g.applied[2]))
	}
	for i, action := range g.applied[2] {
		if action != nil {
			t.Fatalf("player 2 turn %d action = %q, want nil", i+1, action)
		}
	}
}

func TestRunMatchHonorsContext(t *testing.T) {
	g := newScriptedGame(1000, 0)
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	var once sync.Once
	blocking := &LocalBotSpec{Move: func(state []byte) []byte {
		once.Do(func() { close(started) })
		return state
	}}

	done := make(chan struct{})
	go func() {
		RunMatch(ctx, MatchConfig{
			MatchID:     "m1",
			Players:     []BotSpec{blocking, blocking},
			Game:        g,
			MaxTurns:    1_000_000,
			TurnTimeout: time.Second,
		})
		close(done)
	}()

	<-started
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("RunMatch did not stop after context cancellation")
	}
}
