// Package analysis walks the move tree of a position. Boards are immutable,
// so sibling subtrees are counted on separate goroutines without locking.
package analysis

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/justinabrahms/chessrules/internal/chess"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Counter runs perft searches with a bounded number of goroutines.
type Counter struct {
	workers int
}

// NewCounter returns a Counter using workers goroutines, or one per CPU when
// workers is not positive.
func NewCounter(workers int) *Counter {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Counter{workers: workers}
}

// Perft counts leaf positions with one goroutine per CPU.
func Perft(ctx context.Context, board *chess.Board, depth int) (int64, error) {
	return NewCounter(0).Perft(ctx, board, depth)
}

// Divide reports per-root-move counts with one goroutine per CPU.
func Divide(ctx context.Context, board *chess.Board, depth int) ([]DivideEntry, error) {
	return NewCounter(0).Divide(ctx, board, depth)
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string `json:"move"`
	Nodes int64  `json:"nodes"`
}

// Perft counts the leaf positions depth plies below board, following only
// moves the side to move may legally make.
func (c *Counter) Perft(ctx context.Context, board *chess.Board, depth int) (int64, error) {
	if depth == 0 {
		return 1, nil
	}
	entries, err := c.Divide(ctx, board, depth)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, e := range entries {
		total += e.Nodes
	}
	return total, nil
}

// Divide reports the perft count below each legal root move, sorted by move.
func (c *Counter) Divide(ctx context.Context, board *chess.Board, depth int) ([]DivideEntry, error) {
	if depth < 0 {
		return nil, fmt.Errorf("depth must not be negative, got %d", depth)
	}
	if depth == 0 {
		return nil, nil
	}

	roots := legalTransitions(board.CurrentPlayer())
	entries := make([]DivideEntry, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			nodes, err := count(ctx, root.ToBoard(), depth-1)
			if err != nil {
				return err
			}
			entries[i] = DivideEntry{Move: root.Move().String(), Nodes: nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(a, b int) bool { return entries[a].Move < entries[b].Move })
	log.Debug().Int("depth", depth).Int("roots", len(entries)).Msg("Divide finished")
	return entries, nil
}

func count(ctx context.Context, board *chess.Board, depth int) (int64, error) {
	if depth == 0 {
		return 1, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	transitions := legalTransitions(board.CurrentPlayer())
	if depth == 1 {
		return int64(len(transitions)), nil
	}

	var nodes int64
	for _, t := range transitions {
		n, err := count(ctx, t.ToBoard(), depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

func legalTransitions(player *chess.Player) []chess.MoveTransition {
	var done []chess.MoveTransition
	for _, move := range player.LegalMoves() {
		if t := player.MakeMove(move); t.Status().IsDone() {
			done = append(done, t)
		}
	}
	return done
}
