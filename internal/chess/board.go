package chess

import (
	"fmt"
	"strings"
)

// Board is an immutable position. Executing a move builds a new Board.
type Board struct {
	tiles         [NumTiles]*Tile
	whitePieces   []*Piece
	blackPieces   []*Piece
	enPassantPawn *Piece

	whitePlayer   *Player
	blackPlayer   *Player
	currentPlayer *Player
}

// MaterialCount represents the material count for both sides
type MaterialCount struct {
	White int `json:"white"`
	Black int `json:"black"`
}

func newBoard(b *Builder) (*Board, error) {
	board := &Board{enPassantPawn: b.enPassantPawn}
	for c := 0; c < NumTiles; c++ {
		board.tiles[c] = NewTile(c, b.config[c])
	}
	board.whitePieces = calculateActivePieces(board.tiles, White)
	board.blackPieces = calculateActivePieces(board.tiles, Black)

	for _, alliance := range []Alliance{White, Black} {
		if n := countKings(board.ActivePieces(alliance)); n != 1 {
			return nil, fmt.Errorf("%w: %s has %d", ErrInvalidKingCount, alliance, n)
		}
	}

	whiteMoves := board.calculateLegalMoves(board.whitePieces)
	blackMoves := board.calculateLegalMoves(board.blackPieces)

	board.whitePlayer = newPlayer(board, White, whiteMoves, blackMoves)
	board.blackPlayer = newPlayer(board, Black, blackMoves, whiteMoves)
	board.currentPlayer = b.nextMoveMaker.choosePlayer(board.whitePlayer, board.blackPlayer)
	return board, nil
}

// NewStandardBoard returns the opening position with white to move.
func NewStandardBoard() *Board {
	b := NewBuilder()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, kind := range backRank {
		b.SetPiece(NewPiece(kind, Black, file))
		b.SetPiece(NewPiece(Pawn, Black, 8+file))
		b.SetPiece(NewPiece(Pawn, White, 48+file))
		b.SetPiece(NewPiece(kind, White, 56+file))
	}
	b.SetMoveMaker(White)

	board, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("chess: standard layout rejected: %v", err))
	}
	return board
}

func calculateActivePieces(tiles [NumTiles]*Tile, alliance Alliance) []*Piece {
	var pieces []*Piece
	for _, tile := range tiles {
		if tile.IsOccupied() && tile.Piece().alliance == alliance {
			pieces = append(pieces, tile.Piece())
		}
	}
	return pieces
}

func countKings(pieces []*Piece) int {
	n := 0
	for _, piece := range pieces {
		if piece.kind.IsKing() {
			n++
		}
	}
	return n
}

func (b *Board) calculateLegalMoves(pieces []*Piece) []*Move {
	var moves []*Move
	for _, piece := range pieces {
		moves = append(moves, piece.CalculateLegalMoves(b)...)
	}
	return moves
}

func (b *Board) Tile(coordinate int) *Tile {
	return b.tiles[coordinate]
}

func (b *Board) CurrentPlayer() *Player { return b.currentPlayer }
func (b *Board) WhitePlayer() *Player { return b.whitePlayer }
func (b *Board) BlackPlayer() *Player { return b.blackPlayer }

func (b *Board) Player(alliance Alliance) *Player {
	return alliance.choosePlayer(b.whitePlayer, b.blackPlayer)
}

// ActivePieces returns the alliance's pieces in coordinate order.
func (b *Board) ActivePieces(alliance Alliance) []*Piece {
	if alliance.IsWhite() {
		return b.whitePieces
	}
	return b.blackPieces
}

func (b *Board) WhitePieces() []*Piece { return b.whitePieces }
func (b *Board) BlackPieces() []*Piece { return b.blackPieces }

// EnPassantPawn is the pawn that jumped on the previous move, or nil.
func (b *Board) EnPassantPawn() *Piece { return b.enPassantPawn }

// AllLegalMoves returns the generated moves of both sides, castles
// included. Moves that would leave a king attacked are only filtered out by
// Player.MakeMove.
func (b *Board) AllLegalMoves() []*Move {
	moves := make([]*Move, 0, len(b.whitePlayer.legalMoves)+len(b.blackPlayer.legalMoves))
	moves = append(moves, b.whitePlayer.legalMoves...)
	moves = append(moves, b.blackPlayer.legalMoves...)
	return moves
}

func (b *Board) MaterialCount() MaterialCount {
	var count MaterialCount
	for _, piece := range b.whitePieces {
		count.White += piece.Value()
	}
	for _, piece := range b.blackPieces {
		count.Black += piece.Value()
	}
	return count
}

// String draws the board rank 8 first, black pieces in lower case.
func (b *Board) String() string {
	var sb strings.Builder
	for i, tile := range b.tiles {
		fmt.Fprintf(&sb, "%3s", tile.String())
		if (i+1)%NumTilesPerRow == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
