package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinabrahms/chessrules/internal/config"
	"github.com/justinabrahms/chessrules/internal/game"
	"github.com/justinabrahms/chessrules/internal/web"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.BoolVar(&showHelp, "h", false, "Show help information")
	flag.Parse()

	if showHelp {
		showHelpMessage()
		return
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	setupLogging(cfg.Development)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := web.NewHub()
	go hub.Run(ctx)

	store := game.NewStore(cfg.Games.MaxActive)
	service := web.NewService(store, hub, cfg)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      web.NewRouter(service),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	cancel()

	log.Info().Msg("Server exited")
}

func setupLogging(dev config.DevelopmentConfig) {
	if dev.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	level, err := zerolog.ParseLevel(dev.LogLevel)
	if err != nil {
		log.Warn().Str("level", dev.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func showHelpMessage() {
	fmt.Println(`chessrules server

DESCRIPTION:
    HTTP and WebSocket front end for the chess rules engine. Games live in
    memory; every move is validated by the engine before it is accepted.

USAGE:
    chessrules-server [OPTIONS]

OPTIONS:
    -h, --help    Show this help message

CONFIGURATION:
    Read from config.yaml in the current directory or ./config. Every key can
    be overridden with a CHESSRULES_ environment variable, for example
    CHESSRULES_SERVER_PORT=9090.

    Example config.yaml:
        server:
          host: localhost
          port: 8080
        development:
          debug: true
          log_level: debug
        analysis:
          workers: 4
          default_depth: 3
        games:
          max_active: 1000

API ENDPOINTS:
    GET  /api/health               - Service health check
    GET  /api/games                - List games (?status=active)
    POST /api/games                - Start a game from the standard position
    GET  /api/games/{id}           - Current board, turn and status
    GET  /api/games/{id}/moves     - Move history and legal moves
    POST /api/games/{id}/moves     - Play {"from": "e2", "to": "e4"}
    POST /api/games/{id}/undo      - Take back the last move
    GET  /api/games/{id}/perft     - Count the move tree (?depth=N)
    GET  /api/games/{id}/ws        - Spectate a game over WebSocket

EXAMPLES:
    curl -X POST http://localhost:8080/api/games
    curl -X POST http://localhost:8080/api/games/<id>/moves \
      -H "Content-Type: application/json" \
      -d '{"from": "e2", "to": "e4"}'`)
}
