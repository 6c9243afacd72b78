package game

import "errors"

var (
	ErrInvalidSquare     = errors.New("invalid square")
	ErrIllegalMove       = errors.New("illegal move")
	ErrLeavesKingInCheck = errors.New("move leaves king in check")
	ErrGameOver          = errors.New("game is over")
	ErrNothingToUndo     = errors.New("no moves to undo")
	ErrGameNotFound      = errors.New("game not found")
	ErrTooManyGames      = errors.New("too many active games")
)
