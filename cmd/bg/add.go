package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
	"github.com/elias000000000/bg/internal/model"
)

func addCmd() *cobra.Command {
	var (
		category string
		dateFlag string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> [description]",
		Short: "Record a spending entry",
		Long: `Record a spending entry in the current period.

The amount is required. Description and category are optional and fall
back to a placeholder and the catch-all category.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			description := "—"
			if len(args) > 1 && strings.TrimSpace(args[1]) != "" {
				description = args[1]
			}

			occurredAt, err := parseDate(dateFlag)
			if err != nil {
				return err
			}

			_, store, settings, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if category == "" {
				category = model.FallbackCategory
			} else if !settings.HasCategory(category) {
				return fmt.Errorf("unknown category %q, see 'bg categories list'", category)
			}

			txn := model.NewTransaction(description, amount, category, occurredAt)
			if err := store.SaveTransaction(ctx, &txn); err != nil {
				return persistFailure("save transaction", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s for %s (%s)",
				cli.FormatAmount(amount), description, category)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category for the entry")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date of the entry (YYYY-MM-DD, default today)")

	return cmd
}
