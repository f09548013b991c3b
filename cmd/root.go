package cmd

import (
	"os"

	"simplyctl/cmd/commands/audit"
	"simplyctl/cmd/commands/auth"
	cfgcmd "simplyctl/cmd/commands/config"
	"simplyctl/cmd/commands/dns"
	dnsproviders "simplyctl/internal/dns/providers"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "simplyctl",
		Short: "A CLI tool for managing DNS records on Simply.com",
		Long: `simplyctl is a command-line tool for managing DNS records hosted at
Simply.com. It supports listing, creating, updating, and deleting records,
with an interactive record browser for exploring a zone.

Quick start:
  simplyctl auth login                                          # Store your credentials
  simplyctl dns list example.com                                # Browse records
  simplyctl dns create example.com --type A --name www --data 192.168.1.1
  simplyctl dns delete example.com 106926659`,
	}

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(dns.NewCommand())
	cmd.AddCommand(audit.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	dnsproviders.RegisterSimply()

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
