package cmd

import (
	"errors"
	"fmt"
	"time"

	sessionrender "github.com/bnema/coda-cli/internal/adapters/render/session"
	"github.com/bnema/coda-cli/internal/domain"
	"github.com/spf13/cobra"
)

const sessionStaleAfter = 30 * 24 * time.Hour

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and clear saved sessions",
	}

	cmd.AddCommand(newSessionListCmd(app), newSessionShowCmd(app), newSessionClearCmd(app))

	return cmd
}

func newSessionListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summaries, err := app.sessions.List(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := app.renderList(summaries, sessionrender.RenderOptions{
				Now:        app.now(),
				StaleAfter: sessionStaleAfter,
			})
			if err != nil {
				return fmt.Errorf("render sessions: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newSessionShowCmd(app *app) *cobra.Command {
	var workDir string
	var maxLines int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved transcript for a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveRoot(workDir)
			if err != nil {
				return err
			}

			session, err := app.sessions.Get(cmd.Context(), root)
			if errors.Is(err, domain.ErrSessionNotFound) {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "No saved session for %s\n", root)
				return err
			}
			if err != nil {
				return err
			}

			rendered, err := app.renderTranscript(session, sessionrender.RenderOptions{
				Now:      app.now(),
				MaxLines: maxLines,
			})
			if err != nil {
				return fmt.Errorf("render session: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&workDir, "workdir", "C", "", "Project directory (defaults to the current directory)")
	cmd.Flags().IntVar(&maxLines, "lines", 20, "Lines shown per message (0 shows everything)")

	return cmd
}

func newSessionClearCmd(app *app) *cobra.Command {
	var workDir string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved session for a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveRoot(workDir)
			if err != nil {
				return err
			}

			err = app.sessions.Clear(cmd.Context(), root)
			if errors.Is(err, domain.ErrSessionNotFound) {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "No saved session for %s\n", root)
				return err
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleared session for %s\n", root)
			return err
		},
	}

	cmd.Flags().StringVarP(&workDir, "workdir", "C", "", "Project directory (defaults to the current directory)")

	return cmd
}
