package chess

import (
	"strings"
	"testing"
)

// play applies moves given as "e2e4" from the side to move, failing the
// test on anything but a DONE transition.
func play(t *testing.T, board *Board, moves ...string) *Board {
	t.Helper()
	for _, m := range moves {
		move := lookup(t, board, m)
		transition := board.CurrentPlayer().MakeMove(move)
		if !transition.Status().IsDone() {
			t.Fatalf("move %s: expected done, got %s", m, transition.Status())
		}
		board = transition.ToBoard()
	}
	return board
}

func lookup(t *testing.T, board *Board, m string) *Move {
	t.Helper()
	from, ok := CoordinateAt(m[:2])
	if !ok {
		t.Fatalf("bad square in %q", m)
	}
	to, ok := CoordinateAt(m[2:4])
	if !ok {
		t.Fatalf("bad square in %q", m)
	}
	return CreateMove(board, from, to)
}

func sq(t *testing.T, name string) int {
	t.Helper()
	c, ok := CoordinateAt(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return c
}

// build places pieces described as "Ke1", "pa7" (lower case is black).
func build(t *testing.T, next Alliance, pieces ...string) *Board {
	t.Helper()
	b := NewBuilder()
	for _, desc := range pieces {
		alliance := White
		if strings.ToLower(desc[:1]) == desc[:1] {
			alliance = Black
		}
		var kind PieceType
		switch strings.ToUpper(desc[:1]) {
		case "P":
			kind = Pawn
		case "N":
			kind = Knight
		case "B":
			kind = Bishop
		case "R":
			kind = Rook
		case "Q":
			kind = Queen
		case "K":
			kind = King
		default:
			t.Fatalf("bad piece %q", desc)
		}
		b.SetPiece(NewPiece(kind, alliance, sq(t, desc[1:])))
	}
	b.SetMoveMaker(next)
	board, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return board
}

func doneMoves(player *Player) []*Move {
	var done []*Move
	for _, move := range player.LegalMoves() {
		if player.MakeMove(move).Status().IsDone() {
			done = append(done, move)
		}
	}
	return done
}

func hasMove(moves []*Move, kind MoveKind, destination int) bool {
	for _, move := range moves {
		if move.Kind() == kind && move.Destination() == destination {
			return true
		}
	}
	return false
}
