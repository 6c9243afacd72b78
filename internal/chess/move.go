package chess

import "fmt"

// MoveKind tags the variants of Move.
type MoveKind uint8

const (
	MajorMove MoveKind = iota
	AttackMove
	PawnMove
	PawnJump
	PawnAttackMove
	PawnEnPassantAttackMove
	KingSideCastleMove
	QueenSideCastleMove
	NoMove
)

func (k MoveKind) String() string {
	switch k {
	case MajorMove:
		return "major"
	case AttackMove:
		return "attack"
	case PawnMove:
		return "pawn"
	case PawnJump:
		return "pawn_jump"
	case PawnAttackMove:
		return "pawn_attack"
	case PawnEnPassantAttackMove:
		return "en_passant"
	case KingSideCastleMove:
		return "castle_kingside"
	case QueenSideCastleMove:
		return "castle_queenside"
	case NoMove:
		return "null"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Move describes a transition from the board it was generated on. Nothing
// happens until Execute is called, and Execute never touches that board.
type Move struct {
	kind          MoveKind
	board         *Board
	movedPiece    *Piece
	destination   int
	attackedPiece *Piece
	promotion     bool

	castleRook            *Piece
	castleRookStart       int
	castleRookDestination int
}

// NullMove is returned when a lookup finds no legal move. Executing it is an
// error.
var NullMove = &Move{kind: NoMove, destination: -1, castleRookStart: -1, castleRookDestination: -1}

func newMajorMove(board *Board, piece *Piece, destination int) *Move {
	return &Move{kind: MajorMove, board: board, movedPiece: piece, destination: destination}
}

func newAttackMove(board *Board, piece *Piece, destination int, attacked *Piece) *Move {
	return &Move{kind: AttackMove, board: board, movedPiece: piece, destination: destination, attackedPiece: attacked}
}

func newPawnMove(board *Board, piece *Piece, destination int) *Move {
	return &Move{
		kind:        PawnMove,
		board:       board,
		movedPiece:  piece,
		destination: destination,
		promotion:   piece.alliance.IsPawnPromotionSquare(destination),
	}
}

func newPawnJump(board *Board, piece *Piece, destination int) *Move {
	return &Move{kind: PawnJump, board: board, movedPiece: piece, destination: destination}
}

func newPawnAttackMove(board *Board, piece *Piece, destination int, attacked *Piece) *Move {
	return &Move{
		kind:          PawnAttackMove,
		board:         board,
		movedPiece:    piece,
		destination:   destination,
		attackedPiece: attacked,
		promotion:     piece.alliance.IsPawnPromotionSquare(destination),
	}
}

func newPawnEnPassantAttackMove(board *Board, piece *Piece, destination int, attacked *Piece) *Move {
	return &Move{kind: PawnEnPassantAttackMove, board: board, movedPiece: piece, destination: destination, attackedPiece: attacked}
}

func newCastleMove(kind MoveKind, board *Board, king *Piece, destination int, rook *Piece, rookDestination int) *Move {
	return &Move{
		kind:                  kind,
		board:                 board,
		movedPiece:            king,
		destination:           destination,
		castleRook:            rook,
		castleRookStart:       rook.position,
		castleRookDestination: rookDestination,
	}
}

func (m *Move) Kind() MoveKind { return m.kind }
func (m *Move) Board() *Board { return m.board }
func (m *Move) MovedPiece() *Piece { return m.movedPiece }
func (m *Move) Destination() int { return m.destination }
func (m *Move) AttackedPiece() *Piece { return m.attackedPiece }
func (m *Move) CastleRook() *Piece { return m.castleRook }
func (m *Move) CastleRookStart() int { return m.castleRookStart }
func (m *Move) CastleRookDestination() int { return m.castleRookDestination }
func (m *Move) IsPromotion() bool { return m.promotion }
func (m *Move) IsNull() bool { return m.kind == NoMove }

// CurrentCoordinate is the moved piece's origin, -1 for the null move.
func (m *Move) CurrentCoordinate() int {
	if m.movedPiece == nil {
		return -1
	}
	return m.movedPiece.position
}

func (m *Move) IsAttack() bool {
	return m.attackedPiece != nil
}

func (m *Move) IsCastle() bool {
	return m.kind == KingSideCastleMove || m.kind == QueenSideCastleMove
}

// Equals matches on destination and moved piece; attacks also match on the
// captured piece.
func (m *Move) Equals(other *Move) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if m.destination != other.destination || !m.movedPiece.Equals(other.movedPiece) {
		return false
	}
	if m.IsAttack() || other.IsAttack() {
		return m.attackedPiece.Equals(other.attackedPiece)
	}
	return true
}

func (m *Move) Hash() int {
	result := 31 + m.destination
	if m.movedPiece != nil {
		result = 31*result + m.movedPiece.hash
	}
	if m.attackedPiece != nil {
		result += m.attackedPiece.hash
	}
	return result
}

// Execute builds the board that results from this move.
func (m *Move) Execute() (*Board, error) {
	if m.kind == NoMove || m.board == nil {
		return nil, ErrNullMove
	}

	mover := m.movedPiece.alliance
	builder := NewBuilder()

	for _, piece := range m.board.ActivePieces(mover) {
		if m.movedPiece.Equals(piece) || (m.castleRook != nil && m.castleRook.Equals(piece)) {
			continue
		}
		builder.SetPiece(piece)
	}
	for _, piece := range m.board.ActivePieces(mover.Opponent()) {
		if m.attackedPiece != nil && m.attackedPiece.Equals(piece) {
			continue
		}
		builder.SetPiece(piece)
	}

	moved := m.movedPiece.MovePiece(m)
	builder.SetPiece(moved)
	if m.castleRook != nil {
		builder.SetPiece(NewMovedPiece(Rook, m.castleRook.alliance, m.castleRookDestination))
	}
	if m.kind == PawnJump {
		builder.SetEnPassantPawn(moved)
	}
	builder.SetMoveMaker(mover.Opponent())

	return builder.Build()
}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m *Move) String() string {
	if m.kind == NoMove {
		return "0000"
	}
	s := PositionAt(m.CurrentCoordinate()) + PositionAt(m.destination)
	if m.promotion {
		s += "q"
	}
	return s
}

// CreateMove finds the legal move of either side that goes from origin to
// destination. It returns NullMove when there is none.
func CreateMove(board *Board, origin, destination int) *Move {
	if board == nil {
		return NullMove
	}
	for _, move := range board.AllLegalMoves() {
		if move.CurrentCoordinate() == origin && move.destination == destination {
			return move
		}
	}
	return NullMove
}
