package matches

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/starlance/starlance-backend/internal/broker"
	"github.com/starlance/starlance-backend/internal/game"
	"github.com/starlance/starlance-backend/internal/runner"
)

type memoryRegistry struct {
	mu      sync.Mutex
	records map[string]MatchRecord
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{records: make(map[string]MatchRecord)}
}

func (r *memoryRegistry) Put(ctx context.Context, rec MatchRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.MatchID] = rec
	return nil
}

func (r *memoryRegistry) Get(ctx context.Context, matchID string) (MatchRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[matchID]
	if !ok {
		return MatchRecord{}, ErrMatchNotFound
	}
	return rec, nil
}

type memoryPublisher struct {
	mu     sync.Mutex
	events []json.RawMessage
}

func (p *memoryPublisher) Publish(ctx context.Context, key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, json.RawMessage(value))
	return nil
}

func (p *memoryPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func (p *memoryPublisher) event(i int) json.RawMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[i]
}

func newTestService(router *broker.Router, registry Registry, publisher Publisher) *Service {
	opponents := map[string]runner.BotSpec{
		"simplebot": &runner.LocalBotSpec{Move: game.SimpleBotMove},
	}
	// Six turns is enough for the bot's opening capture to pay for itself
	// in fleet growth, so the turn-limit tiebreak cannot swing towards the
	// idle remote player.
	return NewService(router, registry, publisher, opponents, Config{
		RootURL:        "http://localhost:8080",
		MaxTurns:       6,
		TurnTimeout:    50 * time.Millisecond,
		ConnectTimeout: 20 * time.Millisecond,
	})
}

func TestCreateMatchUnknownOpponent(t *testing.T) {
	svc := newTestService(broker.NewRouter(), newMemoryRegistry(), &memoryPublisher{})

	if _, err := svc.CreateMatch(context.Background(), "nobody", ""); !errors.Is(err, ErrUnknownOpponent) {
		t.Fatalf("CreateMatch error = %v, want ErrUnknownOpponent", err)
	}
}

func TestCreateMatchUnknownMap(t *testing.T) {
	svc := newTestService(broker.NewRouter(), newMemoryRegistry(), &memoryPublisher{})

	if _, err := svc.CreateMatch(context.Background(), "simplebot", "atlantis"); !errors.Is(err, game.ErrUnknownMap) {
		t.Fatalf("CreateMatch error = %v, want ErrUnknownMap", err)
	}
}

func TestCreateMatchIssuesRoutableKey(t *testing.T) {
	router := broker.NewRouter()
	svc := newTestService(router, newMemoryRegistry(), &memoryPublisher{})

	match, err := svc.CreateMatch(context.Background(), "simplebot", "")
	if err != nil {
		t.Fatalf("CreateMatch error: %v", err)
	}
	if match.ID == "" || len(match.PlayerKey) != playerKeyLength {
		t.Fatalf("match = %+v, want an id and a %d-char player key", match, playerKeyLength)
	}
	if !strings.HasSuffix(match.URL, "/matches/"+match.ID) {
		t.Fatalf("match URL = %q, want a /matches/<id> link", match.URL)
	}

	// The key is routable immediately: the network side can rendezvous with
	// the match that was just started.
	inbound := make(chan broker.ClientMessage, 16)
	out, err := router.ConnectClient(context.Background(), match.PlayerKey, inbound)
	if err != nil {
		t.Fatalf("ConnectClient error: %v", err)
	}
	defer out.Close()
	defer close(inbound)

	select {
	case msg := <-out.Messages():
		if msg.ActionRequest == nil {
			t.Fatalf("first message = %+v, want an action request", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("match never sent an action request")
	}
}

func TestCreateMatchRecordsAndPublishes(t *testing.T) {
	registry := newMemoryRegistry()
	publisher := &memoryPublisher{}
	svc := newTestService(broker.NewRouter(), registry, publisher)

	match, err := svc.CreateMatch(context.Background(), "simplebot", "duel")
	if err != nil {
		t.Fatalf("CreateMatch error: %v", err)
	}

	rec, err := svc.GetMatch(context.Background(), match.ID)
	if err != nil {
		t.Fatalf("GetMatch error: %v", err)
	}
	if rec.State != StatePlaying {
		t.Fatalf("state = %q, want %q", rec.State, StatePlaying)
	}
	if rec.MapName != "duel" {
		t.Fatalf("map = %q, want duel", rec.MapName)
	}

	// The remote player never connects; the match runs out with the bot in
	// disconnected mode and the finished record lands in the registry.
	deadline := time.Now().Add(5 * time.Second)
	for {
		rec, err = svc.GetMatch(context.Background(), match.ID)
		if err == nil && rec.State == StateFinished {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("match never finished; last record: %+v", rec)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// The opponent played every turn; the absent remote player wins nothing.
	if rec.Winner == 1 {
		t.Fatalf("winner = 1, the disconnected player cannot win")
	}

	if got := publisher.count(); got != 2 {
		t.Fatalf("events published = %d, want created and finished", got)
	}
	var created MatchCreatedEvent
	if err := json.Unmarshal(publisher.event(0), &created); err != nil {
		t.Fatalf("unmarshal created event: %v", err)
	}
	if created.MatchID != match.ID || created.Opponent != "simplebot" {
		t.Fatalf("created event = %+v", created)
	}
	var finished MatchFinishedEvent
	if err := json.Unmarshal(publisher.event(1), &finished); err != nil {
		t.Fatalf("unmarshal finished event: %v", err)
	}
	if finished.MatchID != match.ID {
		t.Fatalf("finished event = %+v", finished)
	}
	if len(finished.PlayerErrors) != 2 || !finished.PlayerErrors[0] {
		t.Fatalf("player errors = %v, want the remote player flagged", finished.PlayerErrors)
	}
}

func TestGetMatchUnknownID(t *testing.T) {
	svc := newTestService(broker.NewRouter(), newMemoryRegistry(), &memoryPublisher{})

	if _, err := svc.GetMatch(context.Background(), "missing"); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("GetMatch error = %v, want ErrMatchNotFound", err)
	}
}
