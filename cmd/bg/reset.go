package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elias000000000/bg/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all spending entries and closed periods",
		Long: `Delete all spending entries and closed periods.

This is a destructive operation. Your settings (budget, payday, theme,
name, and categories) are preserved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

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

			if !force {
				fmt.Print("This will delete all entries and the archive. Are you sure? [y/N]: ")
				reader := bufio.NewReader(os.Stdin)
				response, readErr := reader.ReadString('\n')
				if readErr != nil {
					return fmt.Errorf("failed to read confirmation: %w", readErr)
				}
				response = strings.ToLower(strings.TrimSpace(response))
				if response != "y" && response != "yes" {
					fmt.Println(cli.InfoStyle.Render("Reset canceled."))
					return nil
				}
			}

			if err := store.ResetLedger(ctx); err != nil {
				return persistFailure("reset ledger", err)
			}

			fmt.Println(cli.FormatSuccess("All entries deleted. Settings kept."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
