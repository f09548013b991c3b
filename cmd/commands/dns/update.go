package dns

import (
	"fmt"
	"strconv"
	"time"

	dnsdomain "simplyctl/internal/dns/domain"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "dns update" subcommand.
func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <domain> <id>",
		Short: "Update a DNS record",
		Long: `Update an existing DNS record by its ID.

Updates are full replacements: the record is rewritten with exactly the
values given here.

Examples:
  simplyctl dns update example.com 106926659 --type A --name www --data 5.6.7.8
  simplyctl dns update example.com 106926659 --type A --name www --data 5.6.7.8 --ttl 3600`,
		Args: cobra.ExactArgs(2),
		Run:  runUpdate,
	}

	cmd.Flags().String("type", "", "Record type [required]")
	cmd.Flags().String("name", "", "Subdomain name (leave empty for root domain)")
	cmd.Flags().String("data", "", "Record data [required]")
	cmd.Flags().Int("ttl", 0, "Time-to-live in seconds (default: provider default)")
	cmd.Flags().Int("priority", 0, "Record priority")

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("data")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) {
	start := time.Now()
	domainName := args[0]
	recordID, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: invalid record id %q\n", args[1])
		return
	}

	recordType, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	data, _ := cmd.Flags().GetString("data")
	ttl, _ := cmd.Flags().GetInt("ttl")
	priority, _ := cmd.Flags().GetInt("priority")

	provider, err := newProvider(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	providerName := cmd.Flag("provider").Value.String()

	err = provider.UpdateRecord(cmd.Context(), domainName, recordID, dnsdomain.UpdateRecordOpts{
		Name:     name,
		Type:     dnsdomain.RecordType(recordType),
		Data:     data,
		TTL:      ttl,
		Priority: priority,
	})

	recordAudit(providerName, "simplyctl dns update", args, domainName, args[1], recordType, err, start)

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error updating record: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated record %d\n", recordID)
}
