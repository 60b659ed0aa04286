package runner

import "context"

// MoveFunc computes a bot's move from the state prompt it was sent.
type MoveFunc func(state []byte) []byte

// LocalBotSpec runs a bot in-process. It serves as the built-in opponent
// for remote players and as a convenient player in tests; there is no
// rendezvous and no correlator involvement, requests resolve immediately.
type LocalBotSpec struct {
	Move MoveFunc
}

func (s *LocalBotSpec) RunBot(ctx context.Context, playerID uint32, bus *EventBus) PlayerHandle {
	return &localBotHandle{move: s.Move}
}

type localBotHandle struct {
	move MoveFunc
}

func (h *localBotHandle) SendRequest(ctx context.Context, req RequestMessage) ([]byte, error) {
	return h.move(req.Content), nil
}

func (h *localBotHandle) Close() {}
