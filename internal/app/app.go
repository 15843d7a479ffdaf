package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocab-quiz/internal/config"
	"github.com/heartmarshall/vocab-quiz/internal/transport/middleware"
	"github.com/heartmarshall/vocab-quiz/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires services and
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	warnPendingMigrations(ctx, cfg.Database.DSN, logger)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHTTPHandler(cfg, c, logger, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// newHTTPHandler builds the routed and middleware-wrapped HTTP handler.
func newHTTPHandler(cfg *config.Config, c *Container, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	sessions := rest.NewSessionStore(c.Sessions, cfg.Quiz.SessionCookie, cfg.Quiz.SecureCookie, logger)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(c.Pool, c.Words, BuildVersion()),
		Auth:      rest.NewAuthHandler(c.Auth, logger),
		Words:     rest.NewWordHandler(c.Vocabulary, c.Quiz, logger),
		Quiz:      rest.NewQuizHandler(c.Quiz, sessions, logger),
		Page:      rest.NewQuizPage(c.Quiz, sessions, logger),
		HighScore: rest.NewHighScoreHandler(c.HighScores, logger),
	}, limiter.Limit(cfg.RateLimit.AuthPerMinute))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(c.Auth),
	)(router)
}
