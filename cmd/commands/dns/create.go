package dns

import (
	"fmt"
	"time"

	dnsdomain "simplyctl/internal/dns/domain"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "dns create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Create a DNS record",
		Long: `Create a new DNS record for the given domain.

Examples:
  simplyctl dns create example.com --type A --name www --data 192.168.1.1
  simplyctl dns create example.com --type MX --data mail.example.com --priority 10
  simplyctl dns create example.com --type TXT --name _dmarc --data "v=DMARC1; p=none"`,
		Args: cobra.ExactArgs(1),
		Run:  runCreate,
	}

	cmd.Flags().String("type", "", "Record type (A, AAAA, CNAME, MX, TXT, etc.) [required]")
	cmd.Flags().String("name", "", "Subdomain name (leave empty for root domain, use * for wildcard)")
	cmd.Flags().String("data", "", "Record data (IP address, hostname, text value, etc.) [required]")
	cmd.Flags().Int("ttl", 0, "Time-to-live in seconds (default: provider default)")
	cmd.Flags().Int("priority", 0, "Record priority (for MX, SRV, etc.)")
	cmd.Flags().String("comment", "", "Optional comment for the record")

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("data")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) {
	start := time.Now()
	domainName := args[0]
	recordType, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	data, _ := cmd.Flags().GetString("data")
	ttl, _ := cmd.Flags().GetInt("ttl")
	priority, _ := cmd.Flags().GetInt("priority")
	comment, _ := cmd.Flags().GetString("comment")

	provider, err := newProvider(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	providerName := cmd.Flag("provider").Value.String()

	rec, err := provider.CreateRecord(cmd.Context(), domainName, dnsdomain.CreateRecordOpts{
		Name:     name,
		Type:     dnsdomain.RecordType(recordType),
		Data:     data,
		TTL:      ttl,
		Priority: priority,
		Comment:  comment,
	})

	recordID := ""
	if rec != nil {
		recordID = fmt.Sprintf("%d", rec.ID)
	}
	recordAudit(providerName, "simplyctl dns create", args, domainName, recordID, recordType, err, start)

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error creating record: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created record %d (%s %s -> %s)\n",
		rec.ID, rec.Type, rec.Name, rec.Data)
}
