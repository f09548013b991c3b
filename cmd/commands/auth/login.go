package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	dnsproviders "simplyctl/internal/dns/providers"
	"simplyctl/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Simply.com credentials",
		Long: `Store your Simply.com account number and API key in the local keychain.

The account number and API key can be found under Account settings on
the Simply.com control panel.

Example:
  simplyctl auth login`,
		Args: cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			account, err := cmd.Flags().GetString("account")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			account = strings.TrimSpace(account)
			if account == "" {
				fmt.Fprint(os.Stdout, "Enter account number: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				account = strings.TrimSpace(line)
			}

			if account == "" {
				fmt.Fprintln(os.Stderr, "account number cannot be empty")
				return
			}

			apiKey, err := cmd.Flags().GetString("api-key")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				fmt.Fprint(os.Stdout, "Enter API key: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stdout)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				apiKey = strings.TrimSpace(string(bytes))
			}

			if apiKey == "" {
				fmt.Fprintln(os.Stderr, "api key cannot be empty")
				return
			}

			store := auth.DefaultStore()
			if err := store.SetToken(dnsproviders.SimplyAccountStore, account); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			if err := store.SetToken(dnsproviders.SimplyAPIKeyStore, apiKey); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			fmt.Fprintf(os.Stdout, "Saved credentials for account %s\n", account)
		},
	}

	cmd.Flags().String("account", "", "Simply.com account number (optional, overrides prompt)")
	cmd.Flags().String("api-key", "", "Simply.com API key (optional, overrides prompt)")

	return cmd
}
