package vocabctl

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-quiz/internal/app/wordlist"
)

func newMigrateCommand(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := opts.OpenMigrator(cmd.Context())
				if err != nil {
					return err
				}
				defer m.Close() //nolint:errcheck

				results, err := m.Up(cmd.Context())
				for _, r := range results {
					cmd.Printf("OK   %s (%s)\n", filepath.Base(r.Source.Path), r.Duration)
				}
				if err != nil {
					return err
				}
				if len(results) == 0 {
					cmd.Println("No pending migrations.")
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and their state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := opts.OpenMigrator(cmd.Context())
				if err != nil {
					return err
				}
				defer m.Close() //nolint:errcheck

				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				for _, s := range statuses {
					applied := "-"
					if s.State == goose.StateApplied {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					cmd.Printf("%-8s %-19s %s\n", s.State, applied, filepath.Base(s.Source.Path))
				}
				return nil
			},
		},
	)

	return cmd
}

func newLoadWordsCommand(opts Options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "load-words",
		Short: "Load words from a english__viet1--viet2 word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := wordlist.ParseFile(opts.Fs, file)
			if err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			for _, issue := range parsed.Skipped {
				fmt.Fprintf(errOut, "line %d skipped: %s: %q\n", issue.Line, issue.Reason, issue.Text)
			}
			for _, issue := range parsed.Warnings {
				fmt.Fprintf(errOut, "line %d: %s\n", issue.Line, issue.Reason)
			}

			return withBackend(cmd, opts, func(b *Backend) error {
				res, err := b.Words.Import(cmd.Context(), parsed.Items)
				if err != nil {
					return err
				}
				for _, s := range res.Skipped {
					fmt.Fprintf(errOut, "line %d skipped: %s: %q\n", s.Line, s.Reason, s.EnglishText)
				}
				cmd.Printf("Loaded %s: %d created, %d updated, %d skipped.\n",
					file, res.Created, res.Updated, len(parsed.Skipped)+len(res.Skipped))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "wordlist.txt", "path to the word list")
	return cmd
}

func newClearWordsCommand(opts Options) *cobra.Command {
	var noInput bool

	cmd := &cobra.Command{
		Use:   "clear-words",
		Short: "Delete every word in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !noInput {
				cmd.Print("This will delete ALL words. Type 'yes' to continue: ")
				answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && answer == "" {
					return fmt.Errorf("read confirmation: %w", err)
				}
				if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
					cmd.Println("Aborted.")
					return nil
				}
			}

			return withBackend(cmd, opts, func(b *Backend) error {
				n, err := b.Words.DeleteAll(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("Deleted %d words.\n", n)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noInput, "no-input", false, "do not ask for confirmation")
	return cmd
}

func newPromoteCommand(opts Options) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, opts, func(b *Backend) error {
				if err := b.Accounts.Promote(cmd.Context(), username); err != nil {
					return err
				}
				cmd.Printf("User %q promoted to admin.\n", username)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username to promote")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newCleanupTokensCommand(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, opts, func(b *Backend) error {
				n, err := b.Accounts.CleanupExpiredTokens(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("Deleted %d expired/revoked refresh tokens.\n", n)
				return nil
			})
		},
	}
}
