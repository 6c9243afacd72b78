package chess

import "fmt"

// Builder stages a position. It is consumed by the first call to Build.
type Builder struct {
	config        map[int]*Piece
	nextMoveMaker Alliance
	enPassantPawn *Piece
	built         bool
}

func NewBuilder() *Builder {
	return &Builder{config: make(map[int]*Piece)}
}

// SetPiece places piece on its own coordinate, replacing any occupant.
func (b *Builder) SetPiece(piece *Piece) *Builder {
	b.config[piece.position] = piece
	return b
}

func (b *Builder) SetMoveMaker(alliance Alliance) *Builder {
	b.nextMoveMaker = alliance
	return b
}

// SetEnPassantPawn records the pawn that just jumped and may be taken en
// passant on the next move.
func (b *Builder) SetEnPassantPawn(pawn *Piece) *Builder {
	b.enPassantPawn = pawn
	return b
}

func (b *Builder) Build() (*Board, error) {
	if b.built {
		return nil, ErrBuilderConsumed
	}
	b.built = true

	for coordinate := range b.config {
		if !IsValidTileCoordinate(coordinate) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCoordinate, coordinate)
		}
	}
	if pawn := b.enPassantPawn; pawn != nil {
		if pawn.kind != Pawn || !pawn.Equals(b.config[pawn.position]) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEnPassant, PositionAt(pawn.position))
		}
	}
	return newBoard(b)
}
