package cmd

import (
	"fmt"

	"github.com/bnema/coda-cli/internal/adapters/workspace"
	"github.com/spf13/cobra"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the project templates scaffold_project can create",
		RunE: func(cmd *cobra.Command, _ []string) error {
			templates, err := workspace.Templates()
			if err != nil {
				return err
			}

			for _, tmpl := range templates {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", tmpl.Type, tmpl.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
