package chess

import "fmt"

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// StandardPieceValues maps piece types to their material value.
var StandardPieceValues = map[PieceType]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0, // King has no material value
}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("piece(%d)", t)
	}
}

// Name returns the lower-case English name of the piece type.
func (t PieceType) Name() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

func (t PieceType) Value() int { return StandardPieceValues[t] }

func (t PieceType) IsKing() bool { return t == King }

func (t PieceType) IsRook() bool { return t == Rook }

// Piece is an immutable piece placed on a coordinate. Moving a piece yields a
// new Piece; nothing about an existing Piece ever changes.
type Piece struct {
	kind      PieceType
	alliance  Alliance
	position  int
	firstMove bool
	hash      int
}

// NewPiece returns a piece that has not moved yet.
func NewPiece(kind PieceType, alliance Alliance, position int) *Piece {
	return newPiece(kind, alliance, position, true)
}

// NewMovedPiece returns a piece whose first move is already spent, which
// rules it out of castling and pawn jumps.
func NewMovedPiece(kind PieceType, alliance Alliance, position int) *Piece {
	return newPiece(kind, alliance, position, false)
}

func newPiece(kind PieceType, alliance Alliance, position int, firstMove bool) *Piece {
	p := &Piece{
		kind:      kind,
		alliance:  alliance,
		position:  position,
		firstMove: firstMove,
	}
	p.hash = p.computeHash()
	return p
}

func (p *Piece) computeHash() int {
	result := int(p.kind)
	result = 31*result + int(p.alliance)
	result = 31*result + p.position
	if p.firstMove {
		result = 31*result + 1
	} else {
		result = 31 * result
	}
	return result
}

func (p *Piece) Type() PieceType { return p.kind }
func (p *Piece) Alliance() Alliance { return p.alliance }
func (p *Piece) Position() int { return p.position }
func (p *Piece) IsFirstMove() bool { return p.firstMove }
func (p *Piece) Hash() int { return p.hash }
func (p *Piece) Value() int { return p.kind.Value() }

// Equals compares type, alliance, position and first-move flag.
func (p *Piece) Equals(other *Piece) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.hash == other.hash &&
		p.kind == other.kind &&
		p.alliance == other.alliance &&
		p.position == other.position &&
		p.firstMove == other.firstMove
}

// CalculateLegalMoves generates the piece's moves on board without regard
// to whether they expose the own king. Castles are added by the Player.
func (p *Piece) CalculateLegalMoves(board *Board) []*Move {
	switch p.kind {
	case Pawn:
		return pawnMoves(p, board)
	case Knight:
		return leapingMoves(p, board, knightOffsets, isKnightEdgeExclusion)
	case Bishop:
		return slidingMoves(p, board, bishopOffsets)
	case Rook:
		return slidingMoves(p, board, rookOffsets)
	case Queen:
		return slidingMoves(p, board, queenOffsets)
	case King:
		return leapingMoves(p, board, kingOffsets, isKingEdgeExclusion)
	}
	return nil
}

// MovePiece returns the piece as it stands after move: same type and
// alliance on the destination, first move spent. A promoting pawn comes back
// as a queen.
func (p *Piece) MovePiece(move *Move) *Piece {
	kind := p.kind
	if move.IsPromotion() {
		kind = Queen
	}
	return newPiece(kind, p.alliance, move.Destination(), false)
}

func (p *Piece) String() string {
	return p.kind.String()
}

// leapingMoves handles pieces with a fixed set of single-step offsets.
func leapingMoves(p *Piece, board *Board, offsets []int, excluded func(position, offset int) bool) []*Move {
	var moves []*Move
	for _, offset := range offsets {
		if excluded(p.position, offset) {
			continue
		}
		candidate := p.position + offset
		if !IsValidTileCoordinate(candidate) {
			continue
		}
		if move := classify(p, board, candidate); move != nil {
			moves = append(moves, move)
		}
	}
	return moves
}

// slidingMoves steps along each offset until the board edge or the first
// occupied tile.
func slidingMoves(p *Piece, board *Board, offsets []int) []*Move {
	var moves []*Move
	for _, offset := range offsets {
		candidate := p.position
		for {
			if isSlidingEdgeExclusion(candidate, offset) {
				break
			}
			candidate += offset
			if !IsValidTileCoordinate(candidate) {
				break
			}
			move := classify(p, board, candidate)
			if move != nil {
				moves = append(moves, move)
			}
			if board.Tile(candidate).IsOccupied() {
				break
			}
		}
	}
	return moves
}

// classify returns a quiet move onto an empty tile, an attack onto an enemy
// piece, or nil for an own piece.
func classify(p *Piece, board *Board, candidate int) *Move {
	tile := board.Tile(candidate)
	if !tile.IsOccupied() {
		return newMajorMove(board, p, candidate)
	}
	occupant := tile.Piece()
	if occupant.alliance != p.alliance {
		return newAttackMove(board, p, candidate, occupant)
	}
	return nil
}
