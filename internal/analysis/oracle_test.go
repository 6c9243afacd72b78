package analysis

import (
	"testing"

	"github.com/justinabrahms/chessrules/internal/chess"
	nchess "github.com/notnil/chess"
	"github.com/stretchr/testify/require"
)

// fromFEN builds an engine board from the position notnil parses out of fen.
// Castling rights become first-move flags on the king and rook; pawns keep
// their first-move flag only on their start rank.
func fromFEN(t *testing.T, fen string) (*chess.Board, *nchess.Position) {
	t.Helper()

	opt, err := nchess.FEN(fen)
	require.NoError(t, err)
	pos := nchess.NewGame(opt).Position()
	rights := pos.CastleRights()

	builder := chess.NewBuilder()
	var enPassant *chess.Piece
	epPawn := enPassantPawnSquare(pos)

	for sq, p := range pos.Board().SquareMap() {
		alliance := chess.White
		if p.Color() == nchess.Black {
			alliance = chess.Black
		}
		kind := pieceType(p.Type())
		coordinate := toCoordinate(sq)

		unmoved := false
		switch kind {
		case chess.Pawn:
			unmoved = (alliance.IsWhite() && chess.SecondRank[coordinate]) ||
				(alliance.IsBlack() && chess.SeventhRank[coordinate])
		case chess.King:
			c := p.Color()
			unmoved = rights.CanCastle(c, nchess.KingSide) || rights.CanCastle(c, nchess.QueenSide)
		case chess.Rook:
			c := p.Color()
			unmoved = (chess.EighthColumn[coordinate] && rights.CanCastle(c, nchess.KingSide)) ||
				(chess.FirstColumn[coordinate] && rights.CanCastle(c, nchess.QueenSide))
		}

		var piece *chess.Piece
		if unmoved {
			piece = chess.NewPiece(kind, alliance, coordinate)
		} else {
			piece = chess.NewMovedPiece(kind, alliance, coordinate)
		}
		builder.SetPiece(piece)
		if sq == epPawn {
			enPassant = piece
		}
	}

	if pos.Turn() == nchess.Black {
		builder.SetMoveMaker(chess.Black)
	} else {
		builder.SetMoveMaker(chess.White)
	}
	if enPassant != nil {
		builder.SetEnPassantPawn(enPassant)
	}

	board, err := builder.Build()
	require.NoError(t, err)
	return board, pos
}

func enPassantPawnSquare(pos *nchess.Position) nchess.Square {
	sq := pos.EnPassantSquare()
	if sq == nchess.NoSquare {
		return nchess.NoSquare
	}
	if pos.Turn() == nchess.White {
		return sq - 8
	}
	return sq + 8
}

func toCoordinate(sq nchess.Square) int {
	return (7-int(sq.Rank()))*chess.NumTilesPerRow + int(sq.File())
}

func pieceType(t nchess.PieceType) chess.PieceType {
	switch t {
	case nchess.King:
		return chess.King
	case nchess.Queen:
		return chess.Queen
	case nchess.Rook:
		return chess.Rook
	case nchess.Bishop:
		return chess.Bishop
	case nchess.Knight:
		return chess.Knight
	default:
		return chess.Pawn
	}
}

// referencePerft counts with notnil, keeping only queen promotions since the
// engine always promotes to a queen.
func referencePerft(pos *nchess.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range pos.ValidMoves() {
		if promo := m.Promo(); promo != nchess.NoPieceType && promo != nchess.Queen {
			continue
		}
		nodes += referencePerft(pos.Update(m), depth-1)
	}
	return nodes
}
