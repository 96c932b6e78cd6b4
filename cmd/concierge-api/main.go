// Package main provides the concierge API server entrypoint. This is the
// host the website's chat widget talks to; the retrieval engine itself owns
// no network surface.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/forgelight-studio/concierge/internal/config"
	"github.com/forgelight-studio/concierge/internal/knowledge"
	"github.com/forgelight-studio/concierge/internal/observability"
	"github.com/forgelight-studio/concierge/internal/rag"
	"github.com/forgelight-studio/concierge/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: "concierge-api",
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("session_driver", cfg.Session.Driver).
		Msg("Starting concierge API")

	engine := rag.NewEngineWithConfig(
		knowledge.Default(),
		logger,
		rag.DefaultScoringConfig(),
		rag.ContextConfig{
			WindowSize:        cfg.Engine.ContextWindow,
			FullHistoryTopics: cfg.Engine.FullHistoryTopics,
		},
	)

	sessions, err := newSessionStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create session store")
	}
	defer sessions.Close()

	router := NewRouter(logger, engine, sessions, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Fatal().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Graceful shutdown failed, forcing close")
			_ = srv.Close()
		}
	}
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.Session.Driver == "redis" {
		return session.NewRedisStore(session.RedisConfig{
			Addr:       cfg.Session.Redis.Addr,
			Password:   cfg.Session.Redis.Password,
			DB:         cfg.Session.Redis.DB,
			PoolSize:   cfg.Session.Redis.PoolSize,
			TTL:        cfg.Session.TTL,
			MaxHistory: cfg.Session.MaxHistory,
		})
	}

	return session.NewMemoryStore(session.MemoryConfig{
		TTL:        cfg.Session.TTL,
		MaxHistory: cfg.Session.MaxHistory,
	}), nil
}
