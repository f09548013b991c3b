package dns

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DeleteCommand returns the "dns delete" subcommand.
func DeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <domain> <id>",
		Short: "Delete a DNS record",
		Long: `Delete a DNS record by its ID.

In an interactive terminal a confirmation prompt is shown first; pass
--yes to skip it.

Examples:
  simplyctl dns delete example.com 106926659
  simplyctl dns delete example.com 106926659 --yes`,
		Args: cobra.ExactArgs(2),
		Run:  runDelete,
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) {
	start := time.Now()
	domainName := args[0]
	recordID, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: invalid record id %q\n", args[1])
		return
	}

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	interactive := !skipConfirm && term.IsTerminal(int(os.Stdin.Fd()))

	if interactive {
		accessible := os.Getenv("ACCESSIBLE") != ""

		confirm := false
		confirmField := huh.NewConfirm().
			Title(fmt.Sprintf("Delete record %d from %s? This action cannot be undone.", recordID, domainName)).
			Affirmative("Yes, delete").
			Negative("Cancel").
			Value(&confirm)

		if err := huh.NewForm(huh.NewGroup(confirmField)).
			WithAccessible(accessible).
			Run(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		if !confirm {
			fmt.Fprintln(cmd.ErrOrStderr(), "Record deletion cancelled.")
			return
		}
	}

	provider, err := newProvider(cmd)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	providerName := cmd.Flag("provider").Value.String()

	var deleteErr error
	if interactive {
		accessible := os.Getenv("ACCESSIBLE") != ""
		spinErr := spinner.New().
			Title("Deleting record...").
			Accessible(accessible).
			Output(cmd.ErrOrStderr()).
			Action(func() {
				deleteErr = provider.DeleteRecord(cmd.Context(), domainName, recordID)
			}).
			Run()
		if spinErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", spinErr)
			return
		}
	} else {
		deleteErr = provider.DeleteRecord(cmd.Context(), domainName, recordID)
	}

	recordAudit(providerName, "simplyctl dns delete", args, domainName, args[1], "", deleteErr, start)

	if deleteErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error deleting record: %v\n", deleteErr)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %d\n", recordID)
}
