package main

import (
	"fmt"
	"strings"

	"github.com/justinabrahms/chessrules/internal/chess"
)

// playMoves applies coordinate-notation moves ("e2e4", "e7e8q") in order.
func playMoves(board *chess.Board, moves string) (*chess.Board, error) {
	for _, token := range strings.Fields(moves) {
		if len(token) != 4 && len(token) != 5 {
			return nil, fmt.Errorf("bad move %q", token)
		}
		from, ok := chess.CoordinateAt(token[:2])
		if !ok {
			return nil, fmt.Errorf("bad origin in %q", token)
		}
		to, ok := chess.CoordinateAt(token[2:4])
		if !ok {
			return nil, fmt.Errorf("bad destination in %q", token)
		}

		transition := board.CurrentPlayer().MakeMove(chess.CreateMove(board, from, to))
		if !transition.Status().IsDone() {
			return nil, fmt.Errorf("move %s: %s", token, transition.Status())
		}
		board = transition.ToBoard()
	}
	return board, nil
}
