package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinabrahms/chessrules/internal/analysis"
	"github.com/justinabrahms/chessrules/internal/chess"
	"github.com/justinabrahms/chessrules/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	depth := flag.Int("depth", cfg.Analysis.DefaultDepth, "Plies to search")
	workers := flag.Int("workers", cfg.Analysis.Workers, "Concurrent root moves (0 = one per CPU)")
	divide := flag.Bool("divide", false, "Print the count below each root move")
	moves := flag.String("moves", "", "Space separated moves to play first, e.g. \"e2e4 e7e5\"")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	board, err := playMoves(chess.NewStandardBoard(), *moves)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up position")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	counter := analysis.NewCounter(*workers)
	start := time.Now()

	entries, err := counter.Divide(ctx, board, *depth)
	if err != nil {
		log.Fatal().Err(err).Int("depth", *depth).Msg("Perft failed")
	}

	total := int64(1)
	if *depth > 0 {
		total = 0
		for _, e := range entries {
			total += e.Nodes
			if *divide {
				fmt.Printf("%s: %d\n", e.Move, e.Nodes)
			}
		}
	}
	if *divide {
		fmt.Println()
	}
	fmt.Printf("Nodes searched: %d\n", total)

	log.Info().
		Int("depth", *depth).
		Int64("nodes", total).
		Dur("elapsed", time.Since(start)).
		Msg("Perft finished")
}
