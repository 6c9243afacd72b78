package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewRouter wires the API routes onto a gorilla/mux router.
func NewRouter(s *Service) *mux.Router {
	router := mux.NewRouter()
	router.Use(corsMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.HealthHandler).Methods(http.MethodGet)
	api.HandleFunc("/games", s.ListGamesHandler).Methods(http.MethodGet)
	api.HandleFunc("/games", s.CreateGameHandler).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", s.GetGameHandler).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/moves", s.ListMovesHandler).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/moves", s.MakeMoveHandler).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/undo", s.UndoHandler).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/perft", s.PerftHandler).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/ws", s.WebSocketHandler).Methods(http.MethodGet)

	// Preflight requests need a matching route for the middleware to run.
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	return router
}
