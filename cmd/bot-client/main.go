// Command bot-client runs a local bot process against the client API: it
// creates a match, connects the player stream with the issued key, and
// relays each action request to the bot over stdin/stdout, one JSON line
// per turn.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	starlancev1 "github.com/starlance/starlance-backend/api/proto/starlance/v1"
)

func main() {
	serverAddr := flag.String("server", "localhost:50055", "client API gRPC address")
	opponent := flag.String("opponent", "simplebot", "opponent to play against")
	mapName := flag.String("map", "", "map name (server default when empty)")
	flag.Parse()

	botCmd := flag.Args()
	if len(botCmd) == 0 {
		fmt.Fprintln(os.Stderr, "usage: bot-client [flags] -- <bot command> [args...]")
		os.Exit(2)
	}

	if err := run(context.Background(), *serverAddr, *opponent, *mapName, botCmd); err != nil {
		slog.Error("Bot client failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, serverAddr, opponent, mapName string, botCmd []string) error {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial server: %w", err)
	}
	defer conn.Close()
	client := starlancev1.NewClientApiServiceClient(conn)

	match, err := client.CreateMatch(ctx, &starlancev1.CreateMatchRequest{
		OpponentName: opponent,
		MapName:      mapName,
	})
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	fmt.Printf("Match created: %s\n", match.GetMatchUrl())

	bot, err := startBot(ctx, botCmd)
	if err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}
	defer bot.stop()

	streamCtx := metadata.AppendToOutgoingContext(ctx, "player_key", match.GetPlayerKey())
	stream, err := client.ConnectBot(streamCtx)
	if err != nil {
		return fmt.Errorf("failed to connect player stream: %w", err)
	}

	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			fmt.Println("Match finished.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("player stream failed: %w", err)
		}
		req := msg.GetActionRequest()
		if req == nil {
			continue
		}

		move, err := bot.turn(req.GetContent())
		if err != nil {
			return fmt.Errorf("bot process failed: %w", err)
		}
		err = stream.Send(&starlancev1.BotClientMessage{
			ClientMessage: &starlancev1.BotClientMessage_Action{
				Action: &starlancev1.ActionResponse{
					ActionRequestId: req.GetActionRequestId(),
					Content:         move,
				},
			},
		})
		if err != nil {
			return fmt.Errorf("failed to send action: %w", err)
		}
	}
}

// botProcess wraps the child bot: one JSON line of game state in, one JSON
// line of moves out.
type botProcess struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner
}

func startBot(ctx context.Context, args []string) (*botProcess, error) {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &botProcess{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewScanner(stdout),
	}, nil
}

func (b *botProcess) turn(state []byte) ([]byte, error) {
	line := strings.TrimRight(string(state), "\n")
	if _, err := fmt.Fprintln(b.stdin, line); err != nil {
		return nil, err
	}
	if !b.stdout.Scan() {
		if err := b.stdout.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return append([]byte(nil), b.stdout.Bytes()...), nil
}

func (b *botProcess) stop() {
	b.stdin.Close()
	b.cmd.Wait()
}
