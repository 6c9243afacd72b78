package web

import (
	"net/http"
	"time"

	"github.com/justinabrahms/chessrules/internal/chess"
	"github.com/justinabrahms/chessrules/internal/game"
)

// GameIndex is the summary of a game shown to spectators choosing a board.
type GameIndex struct {
	GameID         string              `json:"gameId"`
	Status         game.GameStatus     `json:"status"`
	Turn           string              `json:"turn"`
	MoveCount      int                 `json:"moveCount"`
	CreatedAt      time.Time           `json:"createdAt"`
	SpectatorCount int                 `json:"spectatorCount"`
	MaterialCount  chess.MaterialCount `json:"materialCount"`
}

type GameListResponse struct {
	Games []GameIndex `json:"games"`
	Total int         `json:"total"`
}

// ListGamesHandler lists games, oldest first. ?status=active filters by
// status.
func (s *Service) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	filter := game.GameStatus(r.URL.Query().Get("status"))

	games := []GameIndex{}
	for _, g := range s.store.List() {
		view := g.View()
		if filter != "" && view.Status != filter {
			continue
		}
		games = append(games, GameIndex{
			GameID:         view.ID,
			Status:         view.Status,
			Turn:           view.Turn,
			MoveCount:      len(view.Moves),
			CreatedAt:      g.CreatedAt(),
			SpectatorCount: s.hub.SpectatorCount(view.ID),
			MaterialCount:  view.Material,
		})
	}

	writeJSON(w, http.StatusOK, GameListResponse{Games: games, Total: len(games)})
}
