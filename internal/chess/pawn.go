package chess

// Pawn offsets are multiplied by the alliance direction: 8 is a push, 16 a
// jump, 7 and 9 the two diagonals.
var pawnOffsets = []int{8, 16, 7, 9}

func pawnMoves(p *Piece, board *Board) []*Move {
	var moves []*Move
	direction := p.alliance.Direction()

	for _, offset := range pawnOffsets {
		candidate := p.position + direction*offset
		if !IsValidTileCoordinate(candidate) {
			continue
		}

		switch offset {
		case 8:
			if board.Tile(candidate).IsOccupied() {
				continue
			}
			moves = append(moves, newPawnMove(board, p, candidate))
		case 16:
			if !p.firstMove || !isPawnStartSquare(p) {
				continue
			}
			behind := p.position + direction*8
			if board.Tile(behind).IsOccupied() || board.Tile(candidate).IsOccupied() {
				continue
			}
			moves = append(moves, newPawnJump(board, p, candidate))
		case 7, 9:
			if isPawnEdgeExclusion(p, offset) {
				continue
			}
			if move := pawnCapture(p, board, candidate); move != nil {
				moves = append(moves, move)
			}
		}
	}
	return moves
}

func pawnCapture(p *Piece, board *Board, candidate int) *Move {
	tile := board.Tile(candidate)
	if tile.IsOccupied() {
		if occupant := tile.Piece(); occupant.alliance != p.alliance {
			return newPawnAttackMove(board, p, candidate, occupant)
		}
		return nil
	}

	target := board.EnPassantPawn()
	if target != nil && target.alliance != p.alliance && enPassantSquare(target) == candidate {
		return newPawnEnPassantAttackMove(board, p, candidate, target)
	}
	return nil
}

// enPassantSquare is the tile a jumping pawn passed over.
func enPassantSquare(jumped *Piece) int {
	return jumped.position - jumped.alliance.Direction()*8
}

func isPawnStartSquare(p *Piece) bool {
	if p.alliance.IsWhite() {
		return SecondRank[p.position]
	}
	return SeventhRank[p.position]
}

// A white pawn's 7-diagonal heads toward the h-file and its 9-diagonal
// toward the a-file; black's are mirrored.
func isPawnEdgeExclusion(p *Piece, offset int) bool {
	switch offset {
	case 7:
		return (EighthColumn[p.position] && p.alliance.IsWhite()) ||
			(FirstColumn[p.position] && p.alliance.IsBlack())
	case 9:
		return (FirstColumn[p.position] && p.alliance.IsWhite()) ||
			(EighthColumn[p.position] && p.alliance.IsBlack())
	}
	return false
}

// pawnAttacksTile reports whether p covers coordinate diagonally, whether or
// not anything stands there.
func pawnAttacksTile(p *Piece, coordinate int) bool {
	for _, offset := range []int{7, 9} {
		if isPawnEdgeExclusion(p, offset) {
			continue
		}
		if p.position+p.alliance.Direction()*offset == coordinate {
			return true
		}
	}
	return false
}
