package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-quiz/internal/adapter/postgres"
	hsrepo "github.com/heartmarshall/vocab-quiz/internal/adapter/postgres/highscore"
	"github.com/heartmarshall/vocab-quiz/internal/adapter/postgres/token"
	"github.com/heartmarshall/vocab-quiz/internal/adapter/postgres/user"
	"github.com/heartmarshall/vocab-quiz/internal/adapter/postgres/word"
	jwtauth "github.com/heartmarshall/vocab-quiz/internal/auth"
	"github.com/heartmarshall/vocab-quiz/internal/config"
	"github.com/heartmarshall/vocab-quiz/internal/service/auth"
	"github.com/heartmarshall/vocab-quiz/internal/service/highscore"
	"github.com/heartmarshall/vocab-quiz/internal/service/quiz"
	"github.com/heartmarshall/vocab-quiz/internal/service/vocabulary"
)

// Container holds the database pool, repositories and services shared by
// the HTTP server and the maintenance CLI.
type Container struct {
	Pool     *pgxpool.Pool
	Words    *word.Repo
	Sessions *jwtauth.SessionCodec

	Vocabulary *vocabulary.Service
	Quiz       *quiz.Service
	HighScores *highscore.Service
	Auth       *auth.Service
}

// NewContainer connects to the database and wires every service.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	words := word.New(pool)
	jwtMgr := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return &Container{
		Pool:       pool,
		Words:      words,
		Sessions:   jwtauth.NewSessionCodec(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Quiz.SessionTTL),
		Vocabulary: vocabulary.NewService(logger, words),
		Quiz:       quiz.NewService(logger, words),
		HighScores: highscore.NewService(logger, hsrepo.New(pool)),
		Auth: auth.NewService(
			logger,
			user.New(pool),
			token.New(pool),
			postgres.NewTxManager(pool),
			jwtMgr,
			cfg.Auth,
		),
	}, nil
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}

// warnPendingMigrations logs when the schema is behind the embedded migrations.
func warnPendingMigrations(ctx context.Context, dsn string, logger *slog.Logger) {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		logger.WarnContext(ctx, "migration check skipped", slog.String("error", err.Error()))
		return
	}
	defer m.Close() //nolint:errcheck

	pending, err := m.HasPending(ctx)
	if err != nil {
		logger.WarnContext(ctx, "migration check failed", slog.String("error", err.Error()))
		return
	}
	if pending {
		logger.WarnContext(ctx, "database has pending migrations, run: vocabctl migrate up")
	}
}
