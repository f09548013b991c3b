package dns

import (
	"fmt"
	"strings"

	"simplyctl/internal/config"
	"simplyctl/internal/dns/domain"
	dnsproviders "simplyctl/internal/dns/providers"
	"simplyctl/internal/services/auth"

	"github.com/spf13/cobra"
)

// NewCommand returns the top-level "dns" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records",
		Long:  `Create, list, update, and delete DNS records for your domains.`,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

	cmd.PersistentFlags().String("provider", "simply", "DNS provider to use")
	cmd.PersistentFlags().StringP("output", "o", "", "Output format: table or json (overrides the output config key)")

	return cmd
}

// newProvider constructs the DNS provider selected by the --provider flag.
func newProvider(cmd *cobra.Command) (domain.Provider, error) {
	providerName := cmd.Flag("provider").Value.String()
	return dnsproviders.Get(providerName, auth.DefaultStore())
}

// resolveDomains returns the domain arguments, falling back to the
// default-domain config key when none were given.
func resolveDomains(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DefaultDomain != "" {
		return []string{cfg.DefaultDomain}, nil
	}

	return nil, fmt.Errorf("no domain specified: pass a domain argument or set a default with 'simplyctl config set default-domain <name>'")
}

// outputFormat resolves the output format from the -o flag, falling back to
// the output config key, then to "table".
func outputFormat(cmd *cobra.Command) (string, error) {
	format := strings.TrimSpace(cmd.Flag("output").Value.String())
	if format == "" {
		cfg, err := config.Load()
		if err != nil {
			return "", fmt.Errorf("failed to load config: %w", err)
		}
		format = cfg.Output
	}
	if format == "" {
		format = "table"
	}

	switch format {
	case "table", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (valid: table, json)", format)
	}
}
