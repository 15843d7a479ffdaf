package app

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-quiz/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-quiz/internal/app/vocabctl"
	"github.com/heartmarshall/vocab-quiz/internal/config"
)

// NewCLI builds the vocabctl command tree backed by the configured database.
func NewCLI() *cobra.Command {
	return vocabctl.NewRootCommand(vocabctl.Options{
		Fs: afero.NewOsFs(),
		Open: func(ctx context.Context) (*vocabctl.Backend, func(), error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, nil, err
			}
			c, err := NewContainer(ctx, cfg, NewLogger(cfg.Log))
			if err != nil {
				return nil, nil, err
			}
			return &vocabctl.Backend{Words: c.Vocabulary, Accounts: c.Auth}, c.Close, nil
		},
		OpenMigrator: func(ctx context.Context) (vocabctl.Migrator, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			return postgres.NewMigrator(ctx, cfg.Database.DSN)
		},
	})
}
