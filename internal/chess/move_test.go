package chess

import (
	"errors"
	"testing"
)

func samplePositions(t *testing.T) map[string]*Board {
	return map[string]*Board{
		"start":       NewStandardBoard(),
		"open center": play(t, NewStandardBoard(), "e2e4", "d7d5", "g1f3", "b8c6"),
		"castling":    build(t, White, "Ke1", "Ra1", "Rh1", "ke8", "ra8", "rh8", "Pa2", "ph7", "Nd4", "bb5"),
		"en passant":  play(t, NewStandardBoard(), "e2e4", "a7a6", "e4e5", "d7d5"),
		"promotion":   build(t, White, "Ke1", "Pb7", "ke8", "ra8"),
	}
}

func TestCreateMoveReturnsNullMoveWhenNothingMatches(t *testing.T) {
	board := NewStandardBoard()
	tests := []struct {
		name string
		from int
		to   int
	}{
		{"Pawn three squares", 52, 28},
		{"Empty origin", 36, 28},
		{"Knight onto own pawn", 62, 52},
		{"Off board origin", -1, 36},
		{"Off board destination", 52, 64},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if move := CreateMove(board, test.from, test.to); move != NullMove {
				t.Errorf("Expected null move, got %s", move)
			}
		})
	}

	if CreateMove(nil, 52, 36) != NullMove {
		t.Error("Expected null move for a nil board")
	}
}

func TestCreateMoveFindsEitherSide(t *testing.T) {
	board := NewStandardBoard()
	white := CreateMove(board, 52, 36)
	if white.IsNull() || white.Kind() != PawnJump || white.MovedPiece().Alliance() != White {
		t.Errorf("Expected a white pawn jump, got %s (%s)", white, white.Kind())
	}
	black := CreateMove(board, 1, 18)
	if black.IsNull() || black.Kind() != MajorMove || black.MovedPiece().Type() != Knight {
		t.Errorf("Expected a black knight move, got %s (%s)", black, black.Kind())
	}
}

func TestNullMoveCannotBeExecuted(t *testing.T) {
	board, err := NullMove.Execute()
	if board != nil || !errors.Is(err, ErrNullMove) {
		t.Errorf("Expected ErrNullMove, got %v, %v", board, err)
	}
	if NullMove.CurrentCoordinate() != -1 || NullMove.Destination() != -1 {
		t.Error("Expected null move coordinates to be -1")
	}
	if NullMove.String() != "0000" {
		t.Errorf("Expected 0000, got %s", NullMove)
	}
}

func TestExecuteNeverAltersTheSourceBoard(t *testing.T) {
	for name, board := range samplePositions(t) {
		t.Run(name, func(t *testing.T) {
			var before [NumTiles]*Tile
			var pieces [NumTiles]*Piece
			for c := 0; c < NumTiles; c++ {
				before[c] = board.Tile(c)
				pieces[c] = board.Tile(c).Piece()
			}
			rendered := board.String()
			current := board.CurrentPlayer()

			for _, move := range board.AllLegalMoves() {
				if _, err := move.Execute(); err != nil {
					t.Fatalf("execute %s: %v", move, err)
				}
			}

			for c := 0; c < NumTiles; c++ {
				if board.Tile(c) != before[c] || board.Tile(c).Piece() != pieces[c] {
					t.Errorf("tile %s changed", PositionAt(c))
				}
			}
			if board.String() != rendered || board.CurrentPlayer() != current {
				t.Error("board changed after executing its moves")
			}
		})
	}
}

func TestDestinationIsEmptyOrEnemy(t *testing.T) {
	for name, board := range samplePositions(t) {
		t.Run(name, func(t *testing.T) {
			for _, move := range board.AllLegalMoves() {
				occupant := board.Tile(move.Destination()).Piece()
				if occupant != nil && occupant.Alliance() == move.MovedPiece().Alliance() {
					t.Errorf("%s lands on own %s", move, occupant)
				}
			}
		})
	}
}

func TestExecutePieceCounts(t *testing.T) {
	for name, board := range samplePositions(t) {
		t.Run(name, func(t *testing.T) {
			for _, move := range board.AllLegalMoves() {
				mover := move.MovedPiece().Alliance()
				next, err := move.Execute()
				if err != nil {
					t.Fatalf("execute %s: %v", move, err)
				}

				own := len(board.ActivePieces(mover))
				opp := len(board.ActivePieces(mover.Opponent()))
				gotOwn := len(next.ActivePieces(mover))
				gotOpp := len(next.ActivePieces(mover.Opponent()))

				if gotOwn != own {
					t.Errorf("%s: mover count %d -> %d", move, own, gotOwn)
				}
				if move.IsAttack() && gotOpp != opp-1 {
					t.Errorf("%s: attack left opponent with %d of %d", move, gotOpp, opp)
				}
				if !move.IsAttack() && gotOpp != opp {
					t.Errorf("%s: quiet move changed opponent count %d -> %d", move, opp, gotOpp)
				}
				if next.CurrentPlayer().Alliance() != mover.Opponent() {
					t.Errorf("%s: expected %s to move next", move, mover.Opponent())
				}
			}
		})
	}
}

func TestMoveEquality(t *testing.T) {
	a := NewStandardBoard()
	b := NewStandardBoard()

	ma := CreateMove(a, 52, 36)
	mb := CreateMove(b, 52, 36)
	if !ma.Equals(mb) || ma.Hash() != mb.Hash() {
		t.Error("Expected the same move on equal boards to be equal")
	}
	if ma.Equals(CreateMove(a, 52, 44)) {
		t.Error("Expected different destinations to differ")
	}
	if ma.Equals(NullMove) || !NullMove.Equals(NullMove) {
		t.Error("Expected null move to equal only itself")
	}

	board := play(t, NewStandardBoard(), "e2e4", "d7d5")
	capture := CreateMove(board, 36, 27)
	if !capture.IsAttack() || capture.AttackedPiece().Type() != Pawn {
		t.Fatalf("Expected exd5 to capture a pawn, got %s", capture.Kind())
	}
	quiet := newMajorMove(board, capture.MovedPiece(), 27)
	if capture.Equals(quiet) || quiet.Equals(capture) {
		t.Error("Expected an attack not to equal a quiet move to the same square")
	}
}

func TestPawnJumpRecordsEnPassantPawnForOneMove(t *testing.T) {
	board := play(t, NewStandardBoard(), "e2e4")
	pawn := board.EnPassantPawn()
	if pawn == nil || pawn.Position() != 36 || pawn.Alliance() != White {
		t.Fatalf("Expected the e4 pawn to be recorded, got %v", pawn)
	}

	board = play(t, board, "g8f6")
	if board.EnPassantPawn() != nil {
		t.Error("Expected the en passant pawn to be cleared by the next move")
	}
}

func TestMoveString(t *testing.T) {
	board := NewStandardBoard()
	if s := CreateMove(board, 52, 36).String(); s != "e2e4" {
		t.Errorf("Expected e2e4, got %s", s)
	}
	board = build(t, White, "Ke1", "Pb7", "ke8")
	if s := CreateMove(board, 9, 1).String(); s != "b7b8q" {
		t.Errorf("Expected b7b8q, got %s", s)
	}
}
