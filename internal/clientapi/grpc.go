package clientapi

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	starlancev1 "github.com/starlance/starlance-backend/api/proto/starlance/v1"
	"github.com/starlance/starlance-backend/internal/broker"
	"github.com/starlance/starlance-backend/internal/game"
	"github.com/starlance/starlance-backend/internal/matches"
)

const inboundBufferSize = 16

// GRPCHandler implements the generated ClientApiServiceServer interface:
// match creation and status for bot clients, and the bidirectional player
// stream that feeds the rendezvous router.
type GRPCHandler struct {
	// UnimplementedClientApiServiceServer is embedded for forward
	// compatibility with additions to the .proto file.
	starlancev1.UnimplementedClientApiServiceServer

	matches *matches.Service
	router  *broker.Router
}

func NewGRPCHandler(matchService *matches.Service, router *broker.Router) *GRPCHandler {
	return &GRPCHandler{matches: matchService, router: router}
}

// CreateMatch handles the incoming gRPC request to start a match against a
// catalog opponent.
func (h *GRPCHandler) CreateMatch(ctx context.Context, req *starlancev1.CreateMatchRequest) (*starlancev1.CreateMatchResponse, error) {
	slog.Info("gRPC CreateMatch request received", "opponent", req.GetOpponentName(), "map", req.GetMapName())

	match, err := h.matches.CreateMatch(ctx, req.GetOpponentName(), req.GetMapName())
	if err != nil {
		switch {
		case errors.Is(err, matches.ErrUnknownOpponent):
			return nil, status.Error(codes.NotFound, "opponent not found")
		case errors.Is(err, game.ErrUnknownMap):
			return nil, status.Error(codes.NotFound, "map not found")
		default:
			return nil, status.Error(codes.Internal, "an unexpected error occurred")
		}
	}

	return &starlancev1.CreateMatchResponse{
		MatchId:   match.ID,
		PlayerKey: match.PlayerKey,
		MatchUrl:  match.URL,
	}, nil
}

// GetMatchStatus handles the incoming gRPC request for a match's live state.
func (h *GRPCHandler) GetMatchStatus(ctx context.Context, req *starlancev1.GetMatchStatusRequest) (*starlancev1.GetMatchStatusResponse, error) {
	rec, err := h.matches.GetMatch(ctx, req.GetMatchId())
	if err != nil {
		if errors.Is(err, matches.ErrMatchNotFound) {
			return nil, status.Error(codes.NotFound, "match not found")
		}
		return nil, status.Error(codes.Internal, "an unexpected error occurred")
	}

	return &starlancev1.GetMatchStatusResponse{
		State:  rec.State,
		Winner: int32(rec.Winner),
	}, nil
}

// ConnectBot terminates the player stream. The connection authenticates
// itself solely with the player_key metadata entry; the handler pumps
// received messages into the broker, rendezvouses against the router entry
// reserved at match creation, and then relays outbound action requests to
// the wire until either side is done.
func (h *GRPCHandler) ConnectBot(stream grpc.BidiStreamingServer[starlancev1.BotClientMessage, starlancev1.BotServerMessage]) error {
	md, _ := metadata.FromIncomingContext(stream.Context())
	keys := md.Get("player_key")
	if len(keys) == 0 {
		return status.Error(codes.Unauthenticated, "no player_key provided")
	}
	playerKey := keys[0]

	inbound := make(chan broker.ClientMessage, inboundBufferSize)
	go func() {
		defer close(inbound)
		for {
			msg, err := stream.Recv()
			if err != nil {
				return
			}
			var out broker.ClientMessage
			if action := msg.GetAction(); action != nil {
				out.Action = &broker.ActionResponse{
					RequestID: uint32(action.GetActionRequestId()),
					Content:   action.GetContent(),
				}
			}
			select {
			case inbound <- out:
			case <-stream.Context().Done():
				return
			}
		}
	}()

	out, err := h.router.ConnectClient(stream.Context(), playerKey, inbound)
	if err != nil {
		switch {
		case errors.Is(err, broker.ErrUnknownToken):
			return status.Error(codes.NotFound, "player_key not found")
		case errors.Is(err, broker.ErrAlreadyConnected):
			slog.Error("Duplicate player connection attempt")
			return status.Error(codes.Internal, "player already connected")
		default:
			return status.FromContextError(err).Err()
		}
	}
	// From here the pipe belongs to this connection; mark the peer gone on
	// the way out so the match side stops waiting on a dead bot.
	defer out.Close()

	for {
		select {
		case msg, ok := <-out.Messages():
			if !ok {
				// The match is done issuing requests; end the stream.
				return nil
			}
			if msg.ActionRequest == nil {
				continue
			}
			err := stream.Send(&starlancev1.BotServerMessage{
				ServerMessage: &starlancev1.BotServerMessage_ActionRequest{
					ActionRequest: &starlancev1.ActionRequest{
						ActionRequestId: int32(msg.ActionRequest.RequestID),
						Content:         msg.ActionRequest.Content,
					},
				},
			})
			if err != nil {
				return err
			}
		case <-stream.Context().Done():
			return status.FromContextError(stream.Context().Err()).Err()
		}
	}
}
