package chess

import "sync"

// Player is one side of a Board. Everything it reports is computed from that
// board and never changes.
type Player struct {
	board         *Board
	alliance      Alliance
	king          *Piece
	legalMoves    []*Move
	opponentMoves []*Move
	inCheck       bool

	escapeOnce sync.Once
	hasEscape  bool
}

func newPlayer(board *Board, alliance Alliance, legalMoves, opponentMoves []*Move) *Player {
	p := &Player{
		board:         board,
		alliance:      alliance,
		king:          establishKing(board.ActivePieces(alliance)),
		opponentMoves: opponentMoves,
	}
	p.inCheck = len(calculateAttacksOnTile(p.king.position, opponentMoves)) > 0

	moves := make([]*Move, 0, len(legalMoves)+2)
	moves = append(moves, legalMoves...)
	p.legalMoves = append(moves, p.calculateKingCastles()...)
	return p
}

// establishKing relies on Build having checked there is exactly one king.
func establishKing(pieces []*Piece) *Piece {
	for _, piece := range pieces {
		if piece.kind.IsKing() {
			return piece
		}
	}
	return nil
}

func calculateAttacksOnTile(coordinate int, moves []*Move) []*Move {
	var attacks []*Move
	for _, move := range moves {
		if move.destination == coordinate {
			attacks = append(attacks, move)
		}
	}
	return attacks
}

func (p *Player) Alliance() Alliance { return p.alliance }
func (p *Player) Board() *Board { return p.board }
func (p *Player) King() *Piece { return p.king }
func (p *Player) IsInCheck() bool { return p.inCheck }

func (p *Player) Opponent() *Player {
	return p.board.Player(p.alliance.Opponent())
}

func (p *Player) ActivePieces() []*Piece {
	return p.board.ActivePieces(p.alliance)
}

// LegalMoves returns a copy of the player's generated moves, castles
// included.
func (p *Player) LegalMoves() []*Move {
	moves := make([]*Move, len(p.legalMoves))
	copy(moves, p.legalMoves)
	return moves
}

func (p *Player) IsMoveLegal(move *Move) bool {
	return p.findLegalMove(move) != nil
}

func (p *Player) findLegalMove(move *Move) *Move {
	for _, legal := range p.legalMoves {
		if legal.Equals(move) {
			return legal
		}
	}
	return nil
}

func (p *Player) IsInCheckMate() bool {
	return p.inCheck && !p.hasEscapeMoves()
}

func (p *Player) IsInStaleMate() bool {
	return !p.inCheck && !p.hasEscapeMoves()
}

// hasEscapeMoves tries every legal move once per Player and remembers
// whether any of them was accepted.
func (p *Player) hasEscapeMoves() bool {
	p.escapeOnce.Do(func() {
		for _, move := range p.legalMoves {
			if p.MakeMove(move).Status().IsDone() {
				p.hasEscape = true
				return
			}
		}
	})
	return p.hasEscape
}

// MakeMove attempts move for this player. Rejections are reported in the
// transition status and leave the board untouched.
func (p *Player) MakeMove(move *Move) MoveTransition {
	rejected := func(status MoveStatus) MoveTransition {
		return MoveTransition{fromBoard: p.board, toBoard: p.board, move: move, status: status}
	}

	legal := p.findLegalMove(move)
	if legal == nil {
		return rejected(IllegalMove)
	}
	next, err := legal.Execute()
	if err != nil {
		return rejected(IllegalMove)
	}
	if next.Player(p.alliance).IsInCheck() {
		return rejected(LeavesPlayerInCheck)
	}
	return MoveTransition{fromBoard: p.board, toBoard: next, move: legal, status: Done}
}

// calculateKingCastles generates castles for a king and rook that have never
// moved, across empty squares the opponent does not attack.
func (p *Player) calculateKingCastles() []*Move {
	king := p.king
	if p.inCheck || !king.firstMove || king.position != kingStart(p.alliance) {
		return nil
	}

	var castles []*Move
	k := king.position
	if p.isEmpty(k+1, k+2) {
		if rook := p.castleRookAt(k + 3); rook != nil && !p.isTileAttacked(k+1) && !p.isTileAttacked(k+2) {
			castles = append(castles, newCastleMove(KingSideCastleMove, p.board, king, k+2, rook, k+1))
		}
	}
	if p.isEmpty(k-1, k-2, k-3) {
		if rook := p.castleRookAt(k - 4); rook != nil && !p.isTileAttacked(k-1) && !p.isTileAttacked(k-2) {
			castles = append(castles, newCastleMove(QueenSideCastleMove, p.board, king, k-2, rook, k-1))
		}
	}
	return castles
}

func (p *Player) isEmpty(coordinates ...int) bool {
	for _, c := range coordinates {
		if p.board.Tile(c).IsOccupied() {
			return false
		}
	}
	return true
}

func (p *Player) castleRookAt(coordinate int) *Piece {
	piece := p.board.Tile(coordinate).Piece()
	if piece == nil || !piece.kind.IsRook() || piece.alliance != p.alliance || !piece.firstMove {
		return nil
	}
	return piece
}

// isTileAttacked reports whether the opponent covers coordinate. Pawn
// pushes never attack, and pawns cover their diagonals even when those are
// empty, so pawns are checked by geometry rather than by their moves.
func (p *Player) isTileAttacked(coordinate int) bool {
	for _, move := range calculateAttacksOnTile(coordinate, p.opponentMoves) {
		if move.movedPiece.kind != Pawn {
			return true
		}
	}
	for _, piece := range p.board.ActivePieces(p.alliance.Opponent()) {
		if piece.kind == Pawn && pawnAttacksTile(piece, coordinate) {
			return true
		}
	}
	return false
}

func (p *Player) String() string {
	return p.alliance.String()
}
