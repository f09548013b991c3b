package dns

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"simplyctl/internal/dns/domain"
	"simplyctl/internal/dns/tui"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// ListCommand returns the "dns list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [domain...]",
		Short: "List DNS records for one or more domains",
		Long: `List all DNS records for the given domains.

With a single domain in an interactive terminal, an interactive record
browser is opened. Pass -o to force plain output.

Examples:
  simplyctl dns list example.com
  simplyctl dns list example.com another.io
  simplyctl dns list example.com --type A
  simplyctl dns list example.com -o json`,
		Args: cobra.ArbitraryArgs,
		Run:  runList,
	}

	cmd.Flags().String("type", "", "Filter records by type (A, AAAA, CNAME, MX, TXT, etc.)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) {
	start := time.Now()
	typeFilter, _ := cmd.Flags().GetString("type")

	domains, err := resolveDomains(args)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	provider, err := newProvider(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	providerName := cmd.Flag("provider").Value.String()

	format, err := outputFormat(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	// Single domain in an interactive terminal: open the record browser,
	// unless the user explicitly asked for a format.
	if len(domains) == 1 && format == "table" && !cmd.Flag("output").Changed &&
		term.IsTerminal(int(os.Stdout.Fd())) {
		if err := tui.Run(provider, domains[0]); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error running record browser: %v\n", err)
		}
		return
	}

	records, err := fetchAll(cmd.Context(), provider, domains)
	recordAudit(providerName, "simplyctl dns list", args, strings.Join(domains, ","), "", typeFilter, err, start)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error listing records: %v\n", err)
		return
	}

	// Apply optional type filter.
	if typeFilter != "" {
		filtered := records[:0]
		for _, r := range records {
			if strings.EqualFold(string(r.Type), typeFilter) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	if format == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if records == nil {
			records = []domain.Record{}
		}
		if err := encoder.Encode(records); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDOMAIN\tNAME\tTYPE\tDATA\tTTL\tPRIORITY")
	fmt.Fprintln(w, "--\t------\t----\t----\t----\t---\t--------")

	for _, r := range records {
		prio := ""
		if r.Priority > 0 {
			prio = fmt.Sprintf("%d", r.Priority)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			r.ID,
			r.Domain,
			r.Name,
			string(r.Type),
			r.Data,
			r.TTL,
			prio,
		)
	}

	w.Flush()
}

// fetchAll lists records for every domain concurrently, preserving the
// order records were returned in for each domain.
func fetchAll(ctx context.Context, provider domain.Provider, domains []string) ([]domain.Record, error) {
	results := make([][]domain.Record, len(domains))
	g, gctx := errgroup.WithContext(ctx)

	for i, d := range domains {
		g.Go(func() error {
			records, err := provider.ListRecords(gctx, d)
			if err != nil {
				return fmt.Errorf("%s: %w", d, err)
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Record
	for _, records := range results {
		all = append(all, records...)
	}
	return all, nil
}
