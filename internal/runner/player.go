package runner

import (
	"context"
	"time"
)

// RequestMessage is one turn's action request to a single player.
type RequestMessage struct {
	RequestID uint32
	Content   []byte
	Timeout   time.Duration
}

// PlayerHandle is the capability the match runner holds for one player. The
// runner calls SendRequest exactly once per player per turn and treats the
// result as that turn's move (or the absence of one).
type PlayerHandle interface {
	// SendRequest delivers one action request and blocks until it resolves:
	// a response arrives, the per-request timeout fires, or delivery fails.
	// The only request-level failure is ErrTimeout; it is a turn-level
	// outcome, not a fault.
	SendRequest(ctx context.Context, req RequestMessage) ([]byte, error)

	// Close signals that the match will issue no further requests.
	Close()
}

// BotSpec describes how to start one player of a match.
type BotSpec interface {
	RunBot(ctx context.Context, playerID uint32, bus *EventBus) PlayerHandle
}
