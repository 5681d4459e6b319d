package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
)

func listCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the current period's spending entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			_, store, _, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ledger, err := store.ListLedger(ctx)
			if err != nil {
				return fmt.Errorf("failed to list ledger: %w", err)
			}

			if category != "" {
				filtered := ledger[:0]
				for _, txn := range ledger {
					if strings.EqualFold(txn.Category, category) {
						filtered = append(filtered, txn)
					}
				}
				ledger = filtered
			}

			if len(ledger) == 0 {
				fmt.Println(cli.InfoStyle.Render("No entries in the current period."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Description"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("ID"))

			for _, txn := range ledger {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					txn.OccurredAt.Format("2006-01-02"),
					txn.Description,
					txn.Category,
					cli.FormatAmount(txn.Amount),
					cli.SubtleStyle.Render(txn.ID))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show entries in this category")

	return cmd
}
