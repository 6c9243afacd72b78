package game

import "github.com/justinabrahms/chessrules/internal/chess"

type GameStatus string

const (
	StatusActive   GameStatus = "active"
	StatusDraw     GameStatus = "draw"
	StatusWhiteWon GameStatus = "white_won"
	StatusBlackWon GameStatus = "black_won"
)

func (s GameStatus) IsOver() bool {
	return s != StatusActive
}

type MoveResult struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Move      string     `json:"move"`
	Kind      string     `json:"kind"`
	Capture   bool       `json:"capture"`
	Promotion bool       `json:"promotion"`
	Check     bool       `json:"check"`
	Checkmate bool       `json:"checkmate"`
	Stalemate bool       `json:"stalemate"`
	GameOver  bool       `json:"gameOver"`
	Status    GameStatus `json:"status"`
}

// GameView is the JSON snapshot of a game sent to clients.
type GameView struct {
	ID       string              `json:"id"`
	Status   GameStatus          `json:"status"`
	Turn     string              `json:"turn"`
	Check    bool                `json:"check"`
	Board    [][]string          `json:"board"`
	Moves    []string            `json:"moves"`
	Material chess.MaterialCount `json:"material"`
}
