// Package vocabctl implements the maintenance command line: schema
// migrations, bulk word loading and account administration.
package vocabctl

import (
	"context"

	"github.com/pressly/goose/v3"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-quiz/internal/service/vocabulary"
)

type wordStore interface {
	Import(ctx context.Context, items []vocabulary.ImportItem) (*vocabulary.ImportResult, error)
	DeleteAll(ctx context.Context) (int, error)
}

type accountAdmin interface {
	Promote(ctx context.Context, username string) error
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// Migrator applies and reports schema migrations.
type Migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
	Close() error
}

// Backend is what the data commands operate on.
type Backend struct {
	Words    wordStore
	Accounts accountAdmin
}

// Options provides the command tree with its environment. Open and
// OpenMigrator are called lazily so that --help works without a database.
type Options struct {
	Fs           afero.Fs
	Open         func(ctx context.Context) (*Backend, func(), error)
	OpenMigrator func(ctx context.Context) (Migrator, error)
}

// NewRootCommand builds the vocabctl command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	root := &cobra.Command{
		Use:           "vocabctl",
		Short:         "Maintenance tool for the vocabulary quiz",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCommand(opts),
		newLoadWordsCommand(opts),
		newClearWordsCommand(opts),
		newPromoteCommand(opts),
		newCleanupTokensCommand(opts),
	)

	return root
}

// withBackend opens the backend for a single command run.
func withBackend(cmd *cobra.Command, opts Options, fn func(b *Backend) error) error {
	b, closeFn, err := opts.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(b)
}
