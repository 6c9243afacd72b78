package chess

import "errors"

var (
	ErrInvalidKingCount  = errors.New("each alliance needs exactly one king")
	ErrInvalidCoordinate = errors.New("coordinate is off the board")
	ErrInvalidEnPassant  = errors.New("en passant pawn is not on the board")
	ErrBuilderConsumed   = errors.New("builder already built a board")
	ErrNullMove          = errors.New("cannot execute the null move")
)
