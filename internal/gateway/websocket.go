package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/starlance/starlance-backend/internal/broker"
)

const inboundBufferSize = 16

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Wire frames mirror the gRPC stream messages so a browser bot speaks the
// same protocol over JSON.
type actionRequestFrame struct {
	ActionRequestID uint32 `json:"actionRequestID"`
	Content         []byte `json:"content"`
}

type actionResponseFrame struct {
	ActionRequestID uint32 `json:"actionRequestID"`
	Content         []byte `json:"content"`
}

type serverFrame struct {
	ActionRequest *actionRequestFrame `json:"actionRequest,omitempty"`
}

type clientFrame struct {
	Action *actionResponseFrame `json:"action,omitempty"`
}

// Handler terminates WebSocket player connections and bridges them into the
// rendezvous router, as an alternative edge to the gRPC stream.
type Handler struct {
	router *broker.Router
}

func NewHandler(router *broker.Router) *Handler {
	return &Handler{router: router}
}

// HandlePlayerWS upgrades the HTTP request and runs the player session until
// the socket drops or the match finishes. The player key travels in the
// player_key query parameter since browsers cannot set custom headers on
// WebSocket handshakes.
func (h *Handler) HandlePlayerWS(w http.ResponseWriter, r *http.Request) {
	playerKey := r.URL.Query().Get("player_key")
	if playerKey == "" {
		http.Error(w, "player_key is required", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade websocket connection", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	inbound := make(chan broker.ClientMessage, inboundBufferSize)
	go func() {
		defer close(inbound)
		defer cancel()
		for {
			var frame clientFrame
			if err := conn.ReadJSON(&frame); err != nil {
				return
			}
			var msg broker.ClientMessage
			if frame.Action != nil {
				msg.Action = &broker.ActionResponse{
					RequestID: frame.Action.ActionRequestID,
					Content:   frame.Action.Content,
				}
			}
			select {
			case inbound <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	out, err := h.router.ConnectClient(ctx, playerKey, inbound)
	if err != nil {
		switch {
		case errors.Is(err, broker.ErrUnknownToken):
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "player_key not found"))
		case errors.Is(err, broker.ErrAlreadyConnected):
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "player already connected"))
		}
		return
	}
	defer out.Close()

	for {
		select {
		case msg, ok := <-out.Messages():
			if !ok {
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "match finished"))
				return
			}
			if msg.ActionRequest == nil {
				continue
			}
			frame := serverFrame{
				ActionRequest: &actionRequestFrame{
					ActionRequestID: msg.ActionRequest.RequestID,
					Content:         msg.ActionRequest.Content,
				},
			}
			if err := conn.WriteJSON(frame); err != nil {
				slog.Warn("Failed to write to player websocket", "error", err)
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
