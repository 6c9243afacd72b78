package chess

// Alliance identifies a side of the board.
type Alliance uint8

const (
	White Alliance = iota
	Black
)

// Direction is the coordinate sign of a forward step. White moves toward
// coordinate 0 (rank 8), black toward 63 (rank 1).
func (a Alliance) Direction() int {
	if a == White {
		return -1
	}
	return 1
}

func (a Alliance) OppositeDirection() int {
	return -a.Direction()
}

func (a Alliance) IsWhite() bool { return a == White }

func (a Alliance) IsBlack() bool { return a == Black }

func (a Alliance) Opponent() Alliance {
	if a == White {
		return Black
	}
	return White
}

// IsPawnPromotionSquare reports whether a pawn of this alliance promotes on
// the given coordinate.
func (a Alliance) IsPawnPromotionSquare(coordinate int) bool {
	if a == White {
		return EighthRank[coordinate]
	}
	return FirstRank[coordinate]
}

func (a Alliance) choosePlayer(white, black *Player) *Player {
	if a == White {
		return white
	}
	return black
}

func (a Alliance) String() string {
	if a == White {
		return "white"
	}
	return "black"
}
