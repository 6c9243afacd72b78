package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/justinabrahms/chessrules/internal/analysis"
	"github.com/justinabrahms/chessrules/internal/config"
	"github.com/justinabrahms/chessrules/internal/game"
	"github.com/rs/zerolog/log"
)

// maxPerftDepth bounds perft requests served over HTTP.
const maxPerftDepth = 5

type Service struct {
	store   *game.Store
	hub     *Hub
	counter *analysis.Counter
	config  *config.Config
}

func NewService(store *game.Store, hub *Hub, cfg *config.Config) *Service {
	return &Service{
		store:   store,
		hub:     hub,
		counter: analysis.NewCounter(cfg.Analysis.Workers),
		config:  cfg,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps game errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrInvalidSquare),
		errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrLeavesKingInCheck):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrNothingToUndo):
		status = http.StatusConflict
	case errors.Is(err, game.ErrTooManyGames):
		status = http.StatusServiceUnavailable
	}
	http.Error(w, err.Error(), status)
}

func (s *Service) gameFromRequest(w http.ResponseWriter, r *http.Request) (*game.Game, bool) {
	g, err := s.store.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return g, true
}

func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"games":  s.store.Len(),
	})
}

func (s *Service) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.Create()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create game")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g.View())
}

func (s *Service) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.gameFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, g.View())
}

type MovesResponse struct {
	History []string `json:"history"`
	Legal   []string `json:"legal"`
}

func (s *Service) ListMovesHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.gameFromRequest(w, r)
	if !ok {
		return
	}
	legal := g.LegalMoves()
	if legal == nil {
		legal = []string{}
	}
	writeJSON(w, http.StatusOK, MovesResponse{
		History: g.Moves(),
		Legal:   legal,
	})
}

type MakeMoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (s *Service) MakeMoveHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.gameFromRequest(w, r)
	if !ok {
		return
	}

	var req MakeMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := g.MakeMove(req.From, req.To)
	if err != nil {
		log.Info().Err(err).Str("gameID", g.ID()).Str("from", req.From).Str("to", req.To).Msg("Move rejected")
		writeError(w, err)
		return
	}

	updateType := "move"
	if result.GameOver {
		updateType = "game_end"
	}
	s.hub.BroadcastGameUpdate(GameUpdate{
		GameID: g.ID(),
		Type:   updateType,
		Data:   g.View(),
	})

	writeJSON(w, http.StatusOK, result)
}

func (s *Service) UndoHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.gameFromRequest(w, r)
	if !ok {
		return
	}
	if err := g.Undo(); err != nil {
		writeError(w, err)
		return
	}

	view := g.View()
	s.hub.BroadcastGameUpdate(GameUpdate{
		GameID: g.ID(),
		Type:   "undo",
		Data:   view,
	})
	writeJSON(w, http.StatusOK, view)
}

type PerftResponse struct {
	Depth  int                    `json:"depth"`
	Nodes  int64                  `json:"nodes"`
	Divide []analysis.DivideEntry `json:"divide"`
}

// PerftHandler counts the move tree below the game's current position.
func (s *Service) PerftHandler(w http.ResponseWriter, r *http.Request) {
	g, ok := s.gameFromRequest(w, r)
	if !ok {
		return
	}

	depth := s.config.Analysis.DefaultDepth
	if raw := r.URL.Query().Get("depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 0 {
			http.Error(w, "depth must be a non-negative integer", http.StatusBadRequest)
			return
		}
		depth = d
	}
	if depth > maxPerftDepth {
		http.Error(w, "depth must not exceed "+strconv.Itoa(maxPerftDepth), http.StatusBadRequest)
		return
	}

	entries, err := s.counter.Divide(r.Context(), g.Board(), depth)
	if err != nil {
		log.Warn().Err(err).Str("gameID", g.ID()).Int("depth", depth).Msg("Perft aborted")
		http.Error(w, "perft aborted", http.StatusServiceUnavailable)
		return
	}

	resp := PerftResponse{Depth: depth, Nodes: 1, Divide: entries}
	if depth > 0 {
		resp.Nodes = 0
		for _, e := range entries {
			resp.Nodes += e.Nodes
		}
	}
	if resp.Divide == nil {
		resp.Divide = []analysis.DivideEntry{}
	}
	writeJSON(w, http.StatusOK, resp)
}
