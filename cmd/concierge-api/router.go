// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/forgelight-studio/concierge/cmd/concierge-api/handlers"
	"github.com/forgelight-studio/concierge/cmd/concierge-api/middleware"
	"github.com/forgelight-studio/concierge/internal/config"
	"github.com/forgelight-studio/concierge/internal/observability"
	"github.com/forgelight-studio/concierge/internal/rag"
	"github.com/forgelight-studio/concierge/internal/session"
)

// NewRouter creates the API router with all routes configured.
func NewRouter(logger *observability.Logger, engine *rag.Engine, sessions session.Store, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"healthy","service":"concierge"}`))
	})

	chatHandler := handlers.NewChatHandler(logger, engine, sessions)

	r.Route("/api", func(r chi.Router) {
		r.Post("/search", chatHandler.Search)
		r.Post("/respond", chatHandler.Respond)
		r.Post("/chat", chatHandler.Chat)
		r.Delete("/chat/{sessionID}", chatHandler.EndSession)
	})

	return r
}
