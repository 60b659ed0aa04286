package broker

import (
	"context"
	"log/slog"
	"time"

	"github.com/starlance/starlance-backend/internal/runner"
)

// DefaultConnectTimeout bounds how long a match waits for the remote bot to
// show up before writing the player off.
const DefaultConnectTimeout = 10 * time.Second

// RemoteBotSpec starts a player whose bot connects over the network. It
// performs the match-runner side of the rendezvous against the router entry
// reserved at match creation.
type RemoteBotSpec struct {
	PlayerKey string
	Router    *Router
	// ConnectTimeout overrides DefaultConnectTimeout when positive.
	ConnectTimeout time.Duration
}

// RunBot rendezvouses with the bot's connection and returns the player
// handle for it. If the bot does not connect within the wait window the
// handle is still returned, but in permanently-disconnected mode: every
// request on it resolves as a timeout without attempting delivery. The
// match keeps a deterministic per-turn outcome either way.
func (s *RemoteBotSpec) RunBot(ctx context.Context, playerID uint32, bus *runner.EventBus) runner.PlayerHandle {
	wait := s.ConnectTimeout
	if wait <= 0 {
		wait = DefaultConnectTimeout
	}

	out := newOutbound()
	inbound, err := s.Router.ConnectServer(ctx, s.PlayerKey, out, wait)
	if err != nil {
		slog.Warn("Remote player never connected", "playerID", playerID, "error", err)
		out.Close()
		return &RemoteBotHandle{playerID: playerID, out: out, bus: bus}
	}

	go relayBotMessages(playerID, bus, inbound)
	return &RemoteBotHandle{playerID: playerID, out: out, bus: bus}
}

// relayBotMessages drains the connected bot's inbound stream and resolves
// the matching pending request for each action response. A stale response
// (already timed out, or a request id that was never issued) is discarded
// by the bus. Ends when the transport closes the stream.
func relayBotMessages(playerID uint32, bus *runner.EventBus, inbound <-chan ClientMessage) {
	for msg := range inbound {
		if msg.Action == nil {
			continue
		}
		key := runner.RequestKey{PlayerID: playerID, RequestID: msg.Action.RequestID}
		if !bus.Resolve(key, msg.Action.Content, nil) {
			slog.Debug("Discarded stale action response", "playerID", playerID, "requestID", msg.Action.RequestID)
		}
	}
}

// RemoteBotHandle is the runner.PlayerHandle for a network-connected bot.
type RemoteBotHandle struct {
	playerID uint32
	out      *Outbound
	bus      *runner.EventBus
}

// SendRequest registers the pending request, pushes it onto the outbound
// pipe and arms the per-request timer. The response relay and the timer
// race to resolve the slot; whichever loses is a no-op.
func (h *RemoteBotHandle) SendRequest(ctx context.Context, req runner.RequestMessage) ([]byte, error) {
	key := runner.RequestKey{PlayerID: h.playerID, RequestID: req.RequestID}
	pending := h.bus.Register(key)

	timer := time.AfterFunc(req.Timeout, func() {
		h.bus.Resolve(key, nil, runner.ErrTimeout)
	})
	defer timer.Stop()

	if err := h.out.Send(ServerMessage{ActionRequest: &ActionRequest{
		RequestID: req.RequestID,
		Content:   req.Content,
	}}); err != nil {
		// Cannot reach the bot anymore; a disconnected bot is modeled
		// identically to an unresponsive one.
		h.bus.Resolve(key, nil, runner.ErrTimeout)
	}

	payload, err := pending.Wait(ctx)
	if err != nil {
		// A wait aborted by ctx leaves the slot registered. Discard it so
		// the entry does not linger and a late response cannot resolve a
		// request nobody waits on. No-op when the slot already resolved.
		h.bus.Resolve(key, nil, err)
	}
	return payload, err
}

// Close ends the outbound stream; the transport sees it and closes the
// connection to the bot.
func (h *RemoteBotHandle) Close() {
	h.out.Finish()
}
