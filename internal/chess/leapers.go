package chess

var (
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// King start squares; castles are only generated from these.
const (
	whiteKingStart = 60
	blackKingStart = 4
)

func kingStart(alliance Alliance) int {
	if alliance.IsWhite() {
		return whiteKingStart
	}
	return blackKingStart
}

func isKnightEdgeExclusion(position, offset int) bool {
	switch {
	case FirstColumn[position] && (offset == -17 || offset == -10 || offset == 6 || offset == 15):
		return true
	case SecondColumn[position] && (offset == -10 || offset == 6):
		return true
	case SeventhColumn[position] && (offset == -6 || offset == 10):
		return true
	case EighthColumn[position] && (offset == -15 || offset == -6 || offset == 10 || offset == 17):
		return true
	}
	return false
}

// The king steps in the same eight directions a queen slides in, so it
// shares the sliding wrap rules.
func isKingEdgeExclusion(position, offset int) bool {
	return isSlidingEdgeExclusion(position, offset)
}
