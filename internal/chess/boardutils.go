package chess

const (
	NumTiles       = 64
	NumTilesPerRow = 8
)

// Column tables, one per file. FirstColumn is the a-file.
var (
	FirstColumn   = initColumn(0)
	SecondColumn  = initColumn(1)
	ThirdColumn   = initColumn(2)
	FourthColumn  = initColumn(3)
	FifthColumn   = initColumn(4)
	SixthColumn   = initColumn(5)
	SeventhColumn = initColumn(6)
	EighthColumn  = initColumn(7)
)

// Rank tables, named by chess rank. Rank 8 occupies coordinates 0-7 and
// rank 1 occupies 56-63.
var (
	EighthRank  = initRank(0)
	SeventhRank = initRank(1)
	SixthRank   = initRank(2)
	FifthRank   = initRank(3)
	FourthRank  = initRank(4)
	ThirdRank   = initRank(5)
	SecondRank  = initRank(6)
	FirstRank   = initRank(7)
)

var algebraicNotation = initAlgebraicNotation()

func initColumn(column int) [NumTiles]bool {
	var col [NumTiles]bool
	for c := column; c < NumTiles; c += NumTilesPerRow {
		col[c] = true
	}
	return col
}

func initRank(row int) [NumTiles]bool {
	var rank [NumTiles]bool
	start := row * NumTilesPerRow
	for c := start; c < start+NumTilesPerRow; c++ {
		rank[c] = true
	}
	return rank
}

func initAlgebraicNotation() [NumTiles]string {
	var names [NumTiles]string
	for c := 0; c < NumTiles; c++ {
		file := byte('a' + c%NumTilesPerRow)
		rank := byte('8' - c/NumTilesPerRow)
		names[c] = string([]byte{file, rank})
	}
	return names
}

func IsValidTileCoordinate(coordinate int) bool {
	return coordinate >= 0 && coordinate < NumTiles
}

// PositionAt returns the algebraic name ("e2") of a coordinate, or "-" when
// the coordinate is off the board.
func PositionAt(coordinate int) string {
	if !IsValidTileCoordinate(coordinate) {
		return "-"
	}
	return algebraicNotation[coordinate]
}

// CoordinateAt parses an algebraic square name.
func CoordinateAt(position string) (int, bool) {
	if len(position) != 2 {
		return -1, false
	}
	file := position[0]
	rank := position[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return -1, false
	}
	return int('8'-rank)*NumTilesPerRow + int(file-'a'), true
}
