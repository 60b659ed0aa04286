package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"google.golang.org/grpc"

	"github.com/starlance/starlance-backend/internal/broker"
	"github.com/starlance/starlance-backend/internal/clientapi"
	"github.com/starlance/starlance-backend/internal/game"
	"github.com/starlance/starlance-backend/internal/gateway"
	"github.com/starlance/starlance-backend/internal/matches"
	"github.com/starlance/starlance-backend/internal/pkg/kafka"
	"github.com/starlance/starlance-backend/internal/pkg/redis"
	"github.com/starlance/starlance-backend/internal/runner"

	starlancev1 "github.com/starlance/starlance-backend/api/proto/starlance/v1"
)

// Main application struct to hold dependencies.
type application struct {
	grpcServer *grpc.Server
	httpServer *http.Server
	router     *broker.Router
}

func main() {
	// --- Configuration ---
	viper.SetConfigName("client-api-service")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs/development")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		slog.Error("Failed to read configuration file", "error", err)
		os.Exit(1)
	}
	viper.SetDefault("matches.registry_ttl", "24h")
	viper.SetDefault("matches.max_turns", 100)
	viper.SetDefault("matches.turn_timeout", "1s")
	viper.SetDefault("matches.connect_timeout", "10s")
	viper.SetDefault("router.reservation_ttl", "10m")

	// --- Redis Initialization ---
	rdb, err := redis.NewClient(redis.Config{
		Addr:     viper.GetString("redis.addr"),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	})
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	// --- Kafka Initialization ---
	producer := kafka.NewProducer(
		viper.GetStringSlice("kafka.brokers"),
		viper.GetString("kafka.match_events_topic"),
	)
	defer producer.Close()

	// --- Dependency Injection ---
	router := broker.NewRouter()
	registry := matches.NewRegistry(rdb, "match:", viper.GetDuration("matches.registry_ttl"))
	publisher := matches.NewKafkaPublisher(producer)

	// Catalog of server-side opponents a remote player can be matched with.
	opponents := map[string]runner.BotSpec{
		"simplebot": &runner.LocalBotSpec{Move: game.SimpleBotMove},
	}

	matchService := matches.NewService(router, registry, publisher, opponents, matches.Config{
		RootURL:        viper.GetString("server.root_url"),
		MaxTurns:       viper.GetInt("matches.max_turns"),
		TurnTimeout:    viper.GetDuration("matches.turn_timeout"),
		ConnectTimeout: viper.GetDuration("matches.connect_timeout"),
	})
	grpcHandler := clientapi.NewGRPCHandler(matchService, router)
	wsHandler := gateway.NewHandler(router)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/player", wsHandler.HandlePlayerWS)

	app := &application{
		grpcServer: grpc.NewServer(),
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", viper.GetString("http_server.port")),
			Handler: mux,
		},
		router: router,
	}

	// --- Start Servers ---
	ctx, cancel := context.WithCancel(context.Background())

	go app.router.RunEvictor(ctx, viper.GetDuration("router.reservation_ttl"), time.Minute)
	go app.startGRPCServer(grpcHandler, viper.GetString("grpc_server.port"))
	go app.startHTTPServer()

	startDiagnosticsServer(viper.GetString("diagnostics.port"))

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down servers...")
	cancel() // Signal goroutines to stop
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	app.grpcServer.GracefulStop()
	slog.Info("Servers shut down gracefully.")
}

func (app *application) startGRPCServer(handler *clientapi.GRPCHandler, port string) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		slog.Error("Failed to listen on gRPC port", "port", port, "error", err)
		os.Exit(1)
	}

	starlancev1.RegisterClientApiServiceServer(app.grpcServer, handler)

	slog.Info("Client API gRPC server listening", "address", lis.Addr().String())
	if err := app.grpcServer.Serve(lis); err != nil {
		slog.Error("gRPC server failed to serve", "error", err)
	}
}

func (app *application) startHTTPServer() {
	slog.Info("Player WebSocket server listening", "address", app.httpServer.Addr)
	if err := app.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("HTTP server failed to serve", "error", err)
	}
}

func startDiagnosticsServer(port string) {
	go func() {
		slog.Info("Starting diagnostics server", "port", port)
		if err := http.ListenAndServe(fmt.Sprintf(":%s", port), nil); err != nil {
			slog.Error("Diagnostics server failed to start", "error", err)
		}
	}()
}
