package auth

import (
	"errors"
	"fmt"

	dnsproviders "simplyctl/internal/dns/providers"
	"simplyctl/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Long: `Show whether Simply.com credentials are stored in the local keychain.

Example:
  simplyctl auth status`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			entries := []struct {
				key   string
				label string
			}{
				{dnsproviders.SimplyAccountStore, "account number"},
				{dnsproviders.SimplyAPIKeyStore, "api key"},
			}

			allPresent := true
			for _, e := range entries {
				_, err := store.GetToken(e.key)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: stored\n", e.label)
				case errors.Is(err, auth.ErrTokenNotFound):
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not stored\n", e.label)
					allPresent = false
				default:
					return fmt.Errorf("keychain error for %s: %w", e.label, err)
				}
			}

			if !allPresent {
				fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'simplyctl auth login' to store credentials.")
			}
			return nil
		},
		SilenceUsage: true,
	}
}
