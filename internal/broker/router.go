package broker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	// ErrUnknownToken means a rendezvous was requested for a player key that
	// is not present in the routing table: the key was never issued, already
	// used up, or evicted.
	ErrUnknownToken = errors.New("unknown player key")

	// ErrAlreadyConnected means the same side of a player connection showed
	// up twice for one key. The earlier arrival is left untouched.
	ErrAlreadyConnected = errors.New("player already connected")

	// ErrConnectTimeout means the network side never arrived within the
	// match runner's connection wait window.
	ErrConnectTimeout = errors.New("player did not connect in time")
)

type entryState int

const (
	stateReserved entryState = iota
	stateClientArrived
	stateServerArrived
)

// entry is the rendezvous state for one player key. A key moves
// Reserved -> ClientArrived or ServerArrived -> removed; the connected
// state is never stored in the table, it lives in the two endpoints.
type entry struct {
	state     entryState
	createdAt time.Time

	// Set in stateClientArrived: the network side parked its inbound stream
	// and waits on clientHandoff for the outbound pipe.
	inbound       <-chan ClientMessage
	clientHandoff chan *Outbound

	// Set in stateServerArrived: the match runner parked its outbound pipe
	// and waits on serverHandoff for the inbound stream.
	outbound      *Outbound
	serverHandoff chan (<-chan ClientMessage)
}

// Router pairs the two halves of a player connection: the network-initiated
// bot stream and the match-runner-initiated player handle. Whichever side
// arrives first parks and waits; the second arrival completes the handoff.
// Keys are single-use; a completed rendezvous removes the key.
//
// The table lock is never held across a wait. Rendezvous mutates the table
// and extracts a handoff channel inside a short critical section, then
// waits on that channel outside it, so one key's pending handshake never
// blocks rendezvous on other keys.
type Router struct {
	mu    sync.Mutex
	table map[string]*entry
}

func NewRouter() *Router {
	return &Router{table: make(map[string]*entry)}
}

// Reserve registers a player key so that either side may rendezvous on it.
// Called by the match service before the key is handed to the client.
func (r *Router) Reserve(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table[key] = &entry{state: stateReserved, createdAt: time.Now()}
}

// ConnectClient performs the network-side rendezvous. It parks until the
// match runner side arrives (bounded only by ctx) and returns the outbound
// pipe to drain. The inbound channel becomes the property of the runner
// side; the caller must close it when the network peer disconnects.
func (r *Router) ConnectClient(ctx context.Context, key string, inbound <-chan ClientMessage) (*Outbound, error) {
	r.mu.Lock()
	e, ok := r.table[key]
	if !ok {
		r.mu.Unlock()
		return nil, ErrUnknownToken
	}

	switch e.state {
	case stateReserved:
		handoff := make(chan *Outbound, 1)
		r.table[key] = &entry{
			state:         stateClientArrived,
			createdAt:     e.createdAt,
			inbound:       inbound,
			clientHandoff: handoff,
		}
		r.mu.Unlock()

		select {
		case out := <-handoff:
			return out, nil
		case <-ctx.Done():
			if out, completed := r.abandonClient(key, handoff); completed {
				// The runner connected between the cancellation and the
				// cleanup. Mark the pipe dead so its requests time out.
				out.Close()
			}
			return nil, ctx.Err()
		}

	case stateServerArrived:
		delete(r.table, key)
		handoff, out := e.serverHandoff, e.outbound
		r.mu.Unlock()
		handoff <- inbound
		return out, nil

	default: // stateClientArrived
		r.mu.Unlock()
		return nil, ErrAlreadyConnected
	}
}

// ConnectServer performs the match-runner-side rendezvous. Unlike the
// network side its wait is bounded: a match must not stall forever on a bot
// that never shows up.
func (r *Router) ConnectServer(ctx context.Context, key string, out *Outbound, wait time.Duration) (<-chan ClientMessage, error) {
	r.mu.Lock()
	e, ok := r.table[key]
	if !ok {
		r.mu.Unlock()
		return nil, ErrUnknownToken
	}

	switch e.state {
	case stateReserved:
		handoff := make(chan (<-chan ClientMessage), 1)
		r.table[key] = &entry{
			state:         stateServerArrived,
			createdAt:     e.createdAt,
			outbound:      out,
			serverHandoff: handoff,
		}
		r.mu.Unlock()

		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case inbound := <-handoff:
			return inbound, nil
		case <-timer.C:
			if inbound, completed := r.abandonServer(key, handoff); completed {
				return inbound, nil
			}
			return nil, ErrConnectTimeout
		case <-ctx.Done():
			if inbound, completed := r.abandonServer(key, handoff); completed {
				return inbound, nil
			}
			return nil, ctx.Err()
		}

	case stateClientArrived:
		delete(r.table, key)
		handoff, inbound := e.clientHandoff, e.inbound
		r.mu.Unlock()
		handoff <- out
		return inbound, nil

	default: // stateServerArrived
		r.mu.Unlock()
		return nil, ErrAlreadyConnected
	}
}

// abandonClient removes the waiting entry for key if it is still the one
// identified by handoff. It reports whether the peer completed the handoff
// concurrently, in which case the parked value is returned.
func (r *Router) abandonClient(key string, handoff chan *Outbound) (*Outbound, bool) {
	r.mu.Lock()
	if e, ok := r.table[key]; ok && e.clientHandoff == handoff {
		delete(r.table, key)
	}
	r.mu.Unlock()

	select {
	case out := <-handoff:
		return out, true
	default:
		return nil, false
	}
}

func (r *Router) abandonServer(key string, handoff chan (<-chan ClientMessage)) (<-chan ClientMessage, bool) {
	r.mu.Lock()
	if e, ok := r.table[key]; ok && e.serverHandoff == handoff {
		delete(r.table, key)
	}
	r.mu.Unlock()

	select {
	case inbound := <-handoff:
		return inbound, true
	default:
		return nil, false
	}
}

// RunEvictor periodically removes Reserved entries older than ttl. Matches
// that were created but whose runner never started a player would otherwise
// leak table entries forever. Entries past the Reserved state are not
// touched: the runner side bounds its own wait, and the network side's wait
// is unbounded on purpose.
func (r *Router) RunEvictor(ctx context.Context, ttl, interval time.Duration) {
	slog.Info("Router evictor started", "ttl", ttl, "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Router evictor stopped.")
			return
		case <-ticker.C:
			if n := r.evictStale(time.Now().Add(-ttl)); n > 0 {
				slog.Info("Evicted stale player keys", "count", n)
			}
		}
	}
}

func (r *Router) evictStale(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for key, e := range r.table {
		if e.state == stateReserved && e.createdAt.Before(cutoff) {
			delete(r.table, key)
			evicted++
		}
	}
	return evicted
}
