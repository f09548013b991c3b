package auth

import (
	"errors"
	"fmt"

	dnsproviders "simplyctl/internal/dns/providers"
	"simplyctl/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored Simply.com credentials",
		Long: `Remove the Simply.com account number and API key from the local keychain.

Example:
  simplyctl auth logout`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			removed := false
			for _, key := range []string{dnsproviders.SimplyAccountStore, dnsproviders.SimplyAPIKeyStore} {
				err := store.DeleteToken(key)
				switch {
				case err == nil:
					removed = true
				case errors.Is(err, auth.ErrTokenNotFound):
					// already absent
				default:
					return fmt.Errorf("failed to remove %s: %w", key, err)
				}
			}

			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "Credentials removed.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No stored credentials found.")
			}
			return nil
		},
		SilenceUsage: true,
	}
}
