package chess

var (
	bishopOffsets = []int{-9, -7, 7, 9}
	rookOffsets   = []int{-8, -1, 1, 8}
	queenOffsets  = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

func isSlidingEdgeExclusion(position, offset int) bool {
	if FirstColumn[position] && (offset == -9 || offset == -1 || offset == 7) {
		return true
	}
	return EighthColumn[position] && (offset == -7 || offset == 1 || offset == 9)
}
