package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the model API key",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var secretKey string
	var secretValue string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the model API key in the secret store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.SetAPIKey(cmd.Context(), secretKey, secretValue); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Stored API key as %s\n", secretKey)
			return err
		},
	}

	cmd.Flags().StringVar(&secretKey, "secret-key", app.cfg.Model.APIKeySecret, "Secret-store key")
	cmd.Flags().StringVar(&secretValue, "value", "", "API key value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	var secretKey string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored model API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.RemoveAPIKey(cmd.Context(), secretKey); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed API key %s\n", secretKey)
			return err
		},
	}

	cmd.Flags().StringVar(&secretKey, "secret-key", app.cfg.Model.APIKeySecret, "Secret-store key")

	return cmd
}
