package chess

// MoveStatus is the outcome of Player.MakeMove.
type MoveStatus uint8

const (
	Done MoveStatus = iota
	IllegalMove
	LeavesPlayerInCheck
)

func (s MoveStatus) IsDone() bool {
	return s == Done
}

func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "done"
	case IllegalMove:
		return "illegal_move"
	case LeavesPlayerInCheck:
		return "leaves_player_in_check"
	default:
		return "unknown"
	}
}

// MoveTransition is the result of attempting a move. On failure ToBoard is
// the board the move was attempted on.
type MoveTransition struct {
	fromBoard *Board
	toBoard   *Board
	move      *Move
	status    MoveStatus
}

func (t MoveTransition) FromBoard() *Board { return t.fromBoard }
func (t MoveTransition) ToBoard() *Board { return t.toBoard }
func (t MoveTransition) Move() *Move { return t.move }
func (t MoveTransition) Status() MoveStatus { return t.status }
