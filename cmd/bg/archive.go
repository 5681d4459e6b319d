package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
	"github.com/elias000000000/bg/internal/engine"
)

func archiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect closed periods",
	}

	cmd.AddCommand(archiveListCmd())
	cmd.AddCommand(archiveCloseCmd())

	return cmd
}

func archiveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all closed periods",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			_, store, _, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.ListPeriodRecords(ctx)
			if err != nil {
				return fmt.Errorf("failed to list archive: %w", err)
			}

			if len(records) == 0 {
				fmt.Println(cli.InfoStyle.Render("No closed periods yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Period"),
				cli.BoldStyle.Render("Budget"),
				cli.BoldStyle.Render("Spent"),
				cli.BoldStyle.Render("Saved"),
				cli.BoldStyle.Render("Entries"))

			for _, record := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					record.Label,
					cli.FormatAmount(record.BudgetAtClose),
					cli.FormatAmount(record.SpentAtClose),
					cli.FormatAmount(record.SavedAmount),
					record.TransactionCount)
			}

			return nil
		},
	}
}

func archiveCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Close any elapsed periods now",
		Long: `Close any elapsed periods now.

Rollover also happens automatically before every ledger command; this
exists to trigger it explicitly and report what was archived.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// Skip the automatic rollover so this pass can report it.
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return err
			}
			cli.UseTheme(settings.Theme)

			result, err := engine.New(store).Rollover(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("rollover failed: %w", err)
			}

			if len(result.Archived) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to close; the current period is still running."))
				return nil
			}

			for _, record := range result.Archived {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Closed %s: spent %s, saved %s",
					record.Label,
					cli.FormatAmount(record.SpentAtClose),
					cli.FormatAmount(record.SavedAmount))))
			}
			return nil
		},
	}
}
