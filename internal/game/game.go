// Package game keeps a playable session on top of the rules engine: a stack
// of immutable boards, the moves between them and the resulting status.
package game

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/justinabrahms/chessrules/internal/chess"
	"github.com/rs/zerolog/log"
)

type Game struct {
	mu        sync.RWMutex
	id        string
	history   []*chess.Board
	moves     []string
	createdAt time.Time
}

// New starts a game from the standard position.
func New(id string) *Game {
	return NewFromBoard(id, chess.NewStandardBoard())
}

// NewFromBoard starts a game from an arbitrary position.
func NewFromBoard(id string, board *chess.Board) *Game {
	return &Game{
		id:        id,
		history:   []*chess.Board{board},
		createdAt: time.Now().UTC(),
	}
}

func (g *Game) ID() string { return g.id }

func (g *Game) CreatedAt() time.Time { return g.createdAt }

func (g *Game) Board() *chess.Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current()
}

func (g *Game) current() *chess.Board {
	return g.history[len(g.history)-1]
}

func (g *Game) Status() GameStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return statusOf(g.current())
}

func statusOf(board *chess.Board) GameStatus {
	player := board.CurrentPlayer()
	switch {
	case player.IsInCheckMate():
		if player.Alliance().IsWhite() {
			return StatusBlackWon
		}
		return StatusWhiteWon
	case player.IsInStaleMate():
		return StatusDraw
	default:
		return StatusActive
	}
}

// Moves returns the accepted moves in coordinate notation.
func (g *Game) Moves() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string{}, g.moves...)
}

func (g *Game) MaterialCount() chess.MaterialCount {
	return g.Board().MaterialCount()
}

// MakeMove plays from→to for the side to move. The board is unchanged when an
// error is returned.
func (g *Game) MakeMove(from, to string) (*MoveResult, error) {
	origin, ok := chess.CoordinateAt(from)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSquare, from)
	}
	destination, ok := chess.CoordinateAt(to)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSquare, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	board := g.current()
	if status := statusOf(board); status.IsOver() {
		return nil, fmt.Errorf("%w: %s", ErrGameOver, status)
	}

	move := chess.CreateMove(board, origin, destination)
	transition := board.CurrentPlayer().MakeMove(move)
	switch transition.Status() {
	case chess.Done:
	case chess.LeavesPlayerInCheck:
		return nil, fmt.Errorf("%w: %s to %s", ErrLeavesKingInCheck, from, to)
	default:
		return nil, fmt.Errorf("%w: %s to %s", ErrIllegalMove, from, to)
	}

	next := transition.ToBoard()
	g.history = append(g.history, next)
	g.moves = append(g.moves, move.String())

	opponent := next.CurrentPlayer()
	status := statusOf(next)
	result := &MoveResult{
		From:      strings.ToLower(from),
		To:        strings.ToLower(to),
		Move:      move.String(),
		Kind:      move.Kind().String(),
		Capture:   move.IsAttack(),
		Promotion: move.IsPromotion(),
		Check:     opponent.IsInCheck(),
		Checkmate: opponent.IsInCheckMate(),
		Stalemate: opponent.IsInStaleMate(),
		GameOver:  status.IsOver(),
		Status:    status,
	}

	log.Debug().
		Str("gameID", g.id).
		Str("move", result.Move).
		Str("status", string(status)).
		Msg("Move accepted")

	return result, nil
}

// LegalMoves lists the moves the side to move can actually make.
func (g *Game) LegalMoves() []string {
	board := g.Board()
	player := board.CurrentPlayer()

	var moves []string
	for _, move := range player.LegalMoves() {
		if player.MakeMove(move).Status().IsDone() {
			moves = append(moves, move.String())
		}
	}
	return moves
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.history) == 1 {
		return ErrNothingToUndo
	}
	g.history = g.history[:len(g.history)-1]
	undone := g.moves[len(g.moves)-1]
	g.moves = g.moves[:len(g.moves)-1]

	log.Debug().Str("gameID", g.id).Str("move", undone).Msg("Move undone")
	return nil
}

func (g *Game) View() GameView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	board := g.current()
	player := board.CurrentPlayer()

	rows := make([][]string, chess.NumTilesPerRow)
	for c := 0; c < chess.NumTiles; c++ {
		row := c / chess.NumTilesPerRow
		rows[row] = append(rows[row], board.Tile(c).String())
	}

	return GameView{
		ID:       g.id,
		Status:   statusOf(board),
		Turn:     player.Alliance().String(),
		Check:    player.IsInCheck(),
		Board:    rows,
		Moves:    append([]string{}, g.moves...),
		Material: board.MaterialCount(),
	}
}
