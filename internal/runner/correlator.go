package runner

import (
	"context"
	"errors"
	"sync"
)

// ErrTimeout resolves a request whose answer never arrived: the per-turn
// deadline expired, the bot never connected, or the transport failed while
// sending. All three look the same to the match: a turn without a move.
var ErrTimeout = errors.New("request timed out")

// RequestKey identifies one outstanding action request. Request ids are
// assigned monotonically per player by the match runner, so a key is never
// reused within a match.
type RequestKey struct {
	PlayerID  uint32
	RequestID uint32
}

// PendingRequest is a one-shot resolution slot for a single in-flight
// action request.
type PendingRequest struct {
	done    chan struct{}
	payload []byte
	err     error
}

// Wait blocks until the request resolves.
func (p *PendingRequest) Wait(ctx context.Context) ([]byte, error) {
	select {
	case <-p.done:
		return p.payload, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// EventBus correlates action requests with their eventual resolutions. The
// response relay and the timeout timer race to resolve the same slot; the
// first writer wins and later attempts are no-ops.
type EventBus struct {
	mu      sync.Mutex
	pending map[RequestKey]*PendingRequest
}

func NewEventBus() *EventBus {
	return &EventBus{pending: make(map[RequestKey]*PendingRequest)}
}

// Register creates the pending slot for key. Must be called before the
// request content is pushed towards the bot, so a response can never beat
// its own registration. Registering an already-pending key returns the
// existing slot.
func (b *EventBus) Register(key RequestKey) *PendingRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p, ok := b.pending[key]; ok {
		return p
	}
	p := &PendingRequest{done: make(chan struct{})}
	b.pending[key] = p
	return p
}

// Resolve completes the pending request for key with either a payload or an
// error. It reports whether this call was the resolving one; a false return
// means the key was already resolved (or never registered) and the attempt
// was discarded.
func (b *EventBus) Resolve(key RequestKey, payload []byte, err error) bool {
	b.mu.Lock()
	p, ok := b.pending[key]
	if !ok {
		b.mu.Unlock()
		return false
	}
	delete(b.pending, key)
	b.mu.Unlock()

	p.payload = payload
	p.err = err
	close(p.done)
	return true
}
