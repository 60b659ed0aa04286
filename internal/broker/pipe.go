package broker

import (
	"errors"
	"sync"
)

// ErrPeerGone is returned by Outbound.Send once the network side of the
// connection has gone away or stopped draining the pipe. A disconnected or
// stalled bot is handled exactly like an unresponsive one: the caller
// resolves the request as a timeout.
var ErrPeerGone = errors.New("peer connection is gone")

// ActionRequest asks the remote player for its action for one turn.
type ActionRequest struct {
	RequestID uint32
	Content   []byte
}

// ActionResponse answers a previously sent ActionRequest.
type ActionResponse struct {
	RequestID uint32
	Content   []byte
}

// ServerMessage is one message travelling from the match runner to the
// remote bot.
type ServerMessage struct {
	ActionRequest *ActionRequest
}

// ClientMessage is one message received from the remote bot. Fields are nil
// for message kinds the broker does not handle.
type ClientMessage struct {
	Action *ActionResponse
}

const outboundBufferSize = 16

// Outbound is the server-to-client half of a connected player pipe. The
// match runner side pushes action requests into it; the transport handler
// drains Messages and writes them to the wire.
//
// The two halves shut down independently: Finish is called by the runner
// side when the match will issue no further requests, Close is called by
// the transport when the network peer disconnects. Send must not be called
// after Finish; the adapter is the only sender and closes in that order.
type Outbound struct {
	ch   chan ServerMessage
	done chan struct{}

	finishOnce sync.Once
	closeOnce  sync.Once
}

func newOutbound() *Outbound {
	return &Outbound{
		ch:   make(chan ServerMessage, outboundBufferSize),
		done: make(chan struct{}),
	}
}

// Send queues one message for delivery to the network peer. It never
// blocks: it fails with ErrPeerGone once the transport has closed the pipe,
// or when the buffer is full because the peer stopped draining it. A send
// that cannot complete must not stall the match's turn loop.
func (o *Outbound) Send(msg ServerMessage) error {
	select {
	case <-o.done:
		return ErrPeerGone
	default:
	}
	select {
	case o.ch <- msg:
		return nil
	case <-o.done:
		return ErrPeerGone
	default:
		return ErrPeerGone
	}
}

// Messages is drained by the transport handler. The channel is closed when
// the match runner is done issuing requests.
func (o *Outbound) Messages() <-chan ServerMessage {
	return o.ch
}

// Finish ends the stream from the server side.
func (o *Outbound) Finish() {
	o.finishOnce.Do(func() { close(o.ch) })
}

// Close marks the network peer as gone, failing all further sends.
func (o *Outbound) Close() {
	o.closeOnce.Do(func() { close(o.done) })
}
